package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/vi-snake/constants"
)

// Difficulty bundles movement speed and score multiplier
type Difficulty uint8

const (
	Easy Difficulty = iota
	Medium
	Hard
	difficultyCount
)

// Difficulties lists all levels in cycle order
var Difficulties = [difficultyCount]Difficulty{Easy, Medium, Hard}

// TicksPerSecond returns the number of cell advances per second
func (d Difficulty) TicksPerSecond() int {
	switch d {
	case Easy:
		return constants.EasyTicksPerSecond
	case Hard:
		return constants.HardTicksPerSecond
	default:
		return constants.MediumTicksPerSecond
	}
}

// ScoreMultiplier scales the base food score
func (d Difficulty) ScoreMultiplier() int {
	switch d {
	case Easy:
		return constants.EasyScoreMultiplier
	case Hard:
		return constants.HardScoreMultiplier
	default:
		return constants.MediumScoreMultiplier
	}
}

// MoveDelay is the time between cell advances, truncated to whole milliseconds
func (d Difficulty) MoveDelay() time.Duration {
	return time.Duration(1000/d.TicksPerSecond()) * time.Millisecond
}

// Next returns the following level in the cycle Easy, Medium, Hard, Easy
func (d Difficulty) Next() Difficulty {
	return (d + 1) % difficultyCount
}

// Valid reports whether d is one of the defined levels
func (d Difficulty) Valid() bool {
	return d < difficultyCount
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseDifficulty maps a case-insensitive name to a Difficulty
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties {
		if strings.EqualFold(strings.TrimSpace(s), d.String()) {
			return d, nil
		}
	}
	return Medium, fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
}
