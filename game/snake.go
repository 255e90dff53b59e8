package game

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// Status is the outcome of a snake update
type Status uint8

const (
	Alive Status = iota
	Dead
)

// UpdateResult reports the outcome of one Update call and the events it produced
type UpdateResult struct {
	Status Status
	Events []core.EventType
}

// Snake is the player: occupied cells head first, heading, growth target and score
type Snake struct {
	Positions []core.Point // Head at index 0
	Length    int          // Target number of cells
	Score     int
	Direction core.Direction
	LastMove  time.Time
	MoveDelay time.Duration

	width, height int
	rng           *rand.Rand
}

// NewSnake creates a snake on a width x height grid and resets it for difficulty d
func NewSnake(width, height int, d Difficulty, rng *rand.Rand, now time.Time) *Snake {
	s := &Snake{
		width:  width,
		height: height,
		rng:    rng,
	}
	s.Reset(d, now)
	return s
}

// Reset puts a one-cell snake at the grid center with a random heading
func (s *Snake) Reset(d Difficulty, now time.Time) {
	s.Length = constants.InitialSnakeLength
	s.Positions = append(s.Positions[:0], core.Point{X: s.width / 2, Y: s.height / 2})
	s.Direction = core.Directions[s.rng.Intn(len(core.Directions))]
	s.Score = 0
	s.LastMove = now
	s.MoveDelay = d.MoveDelay()
}

// Head returns the head cell
func (s *Snake) Head() core.Point {
	return s.Positions[0]
}

// SetDirection changes heading unless d reverses the current one
func (s *Snake) SetDirection(d core.Direction) bool {
	if d == s.Direction.Opposite() {
		return false
	}
	s.Direction = d
	return true
}

// Update advances the snake one cell if MoveDelay has elapsed since the last move.
// The three cells nearest the head are ignored by the self-collision check.
func (s *Snake) Update(now time.Time) UpdateResult {
	if now.Sub(s.LastMove) < s.MoveDelay {
		return UpdateResult{Status: Alive}
	}
	s.LastMove = now

	next := s.Head().Add(s.Direction).Wrap(s.width, s.height)

	if len(s.Positions) > constants.CollisionSkipSegments {
		for _, p := range s.Positions[constants.CollisionSkipSegments:] {
			if p == next {
				return UpdateResult{Status: Dead, Events: []core.EventType{core.EventDied}}
			}
		}
	}

	s.Positions = append(s.Positions, core.Point{})
	copy(s.Positions[1:], s.Positions)
	s.Positions[0] = next

	if len(s.Positions) > s.Length {
		s.Positions = s.Positions[:len(s.Positions)-1]
		return UpdateResult{Status: Alive, Events: []core.EventType{core.EventMoved}}
	}
	return UpdateResult{Status: Alive}
}

// Grow extends the target length by one and adds the food score, returns points gained
func (s *Snake) Grow(d Difficulty) int {
	points := constants.FoodBaseScore * d.ScoreMultiplier()
	s.Length++
	s.Score += points
	return points
}

// Occupies reports whether p is one of the snake's cells
func (s *Snake) Occupies(p core.Point) bool {
	for _, c := range s.Positions {
		if c == p {
			return true
		}
	}
	return false
}
