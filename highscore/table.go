package highscore

import (
	"github.com/lixenwraith/vi-snake/game"
)

// Table holds the best score per difficulty
type Table struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

// Get returns the best score for d
func (t *Table) Get(d game.Difficulty) int {
	switch d {
	case game.Easy:
		return t.Easy
	case game.Hard:
		return t.Hard
	default:
		return t.Medium
	}
}

// Set stores score for d
func (t *Table) Set(d game.Difficulty, score int) {
	switch d {
	case game.Easy:
		t.Easy = score
	case game.Hard:
		t.Hard = score
	default:
		t.Medium = score
	}
}

// Record stores score for d if it beats the current best, reports whether it did
func (t *Table) Record(d game.Difficulty, score int) bool {
	if score <= t.Get(d) {
		return false
	}
	t.Set(d, score)
	return true
}

// sanitize clamps negative entries from a hand-edited file to zero
func (t *Table) sanitize() {
	for _, d := range game.Difficulties {
		if t.Get(d) < 0 {
			t.Set(d, 0)
		}
	}
}
