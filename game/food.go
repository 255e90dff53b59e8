package game

import (
	"math/rand"

	"github.com/lixenwraith/vi-snake/core"
)

// Food is the single edible cell
type Food struct {
	Position core.Point
}

// Randomize moves the food to a uniformly random cell, which may be on the snake
func (f *Food) Randomize(rng *rand.Rand, width, height int) {
	f.Position = core.Point{X: rng.Intn(width), Y: rng.Intn(height)}
}

// Place randomizes until the food is off the snake.
// Falls back to a linear scan once random draws stop being productive.
func (f *Food) Place(rng *rand.Rand, width, height int, s *Snake) {
	attempts := width * height * 4
	for i := 0; i < attempts; i++ {
		f.Randomize(rng, width, height)
		if !s.Occupies(f.Position) {
			return
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := core.Point{X: x, Y: y}
			if !s.Occupies(p) {
				f.Position = p
				return
			}
		}
	}
}
