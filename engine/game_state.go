package engine

import (
	"fmt"
	"log"

	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/highscore"
)

// GamePhase is the top-level play state
type GamePhase uint8

const (
	PhaseRunning GamePhase = iota
	PhasePaused
	PhaseGameOver
)

func (p GamePhase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// validTransitions lists the phase edges reachable through play; restart bypasses it
var validTransitions = map[GamePhase][]GamePhase{
	PhaseRunning:  {PhasePaused, PhaseGameOver},
	PhasePaused:   {PhaseRunning},
	PhaseGameOver: {PhaseRunning},
}

// GameState holds difficulty, high scores and the pause/over/mute flags.
// Owned by the main loop; not safe for concurrent use.
type GameState struct {
	phase      GamePhase
	difficulty game.Difficulty
	muted      bool

	highScores highscore.Table
	store      highscore.Store
}

// NewGameState loads the high score table from store, falling back to zeros on error
func NewGameState(d game.Difficulty, store highscore.Store) *GameState {
	gs := &GameState{
		phase:      PhaseRunning,
		difficulty: d,
		store:      store,
	}

	if store != nil {
		table, err := store.Load()
		if err != nil {
			log.Printf("High score load failed, starting from zero: %v", err)
			table = highscore.Table{}
		}
		gs.highScores = table
	}

	return gs
}

// ===== PHASE =====

// Phase returns the current phase
func (gs *GameState) Phase() GamePhase {
	return gs.phase
}

// IsRunning reports whether the snake should advance and accept direction input
func (gs *GameState) IsRunning() bool {
	return gs.phase == PhaseRunning
}

// CanTransition checks if a phase transition is valid
func (gs *GameState) CanTransition(from, to GamePhase) bool {
	for _, phase := range validTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}

// TransitionPhase attempts a validated transition, returns false if not allowed
func (gs *GameState) TransitionPhase(to GamePhase) bool {
	if !gs.CanTransition(gs.phase, to) {
		return false
	}
	gs.phase = to
	return true
}

// forcePhase sets the phase unconditionally (restart)
func (gs *GameState) forcePhase(to GamePhase) {
	gs.phase = to
}

// ===== DIFFICULTY =====

// Difficulty returns the active difficulty
func (gs *GameState) Difficulty() game.Difficulty {
	return gs.difficulty
}

// CycleDifficulty advances to the next difficulty and returns it
func (gs *GameState) CycleDifficulty() game.Difficulty {
	gs.difficulty = gs.difficulty.Next()
	return gs.difficulty
}

// ===== MUTE =====

// Muted returns the mute flag
func (gs *GameState) Muted() bool {
	return gs.muted
}

// ToggleMute flips the mute flag and returns the new value
func (gs *GameState) ToggleMute() bool {
	gs.muted = !gs.muted
	return gs.muted
}

// SetMuted sets the mute flag
func (gs *GameState) SetMuted(muted bool) {
	gs.muted = muted
}

// ===== HIGH SCORES =====

// HighScore returns the best score for d
func (gs *GameState) HighScore(d game.Difficulty) int {
	return gs.highScores.Get(d)
}

// HighScores returns a copy of the table
func (gs *GameState) HighScores() highscore.Table {
	return gs.highScores
}

// UpdateHighScore records score for the active difficulty if it beats the best and persists the table.
// Returns whether a new best was set; the in-memory table is updated even when saving fails.
func (gs *GameState) UpdateHighScore(score int) (bool, error) {
	if !gs.highScores.Record(gs.difficulty, score) {
		return false, nil
	}
	if gs.store == nil {
		return true, nil
	}
	if err := gs.store.Save(gs.highScores); err != nil {
		return true, fmt.Errorf("save high scores: %w", err)
	}
	return true, nil
}
