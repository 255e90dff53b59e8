package input

import "github.com/lixenwraith/vi-snake/core"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit            // Esc, Ctrl+C, q
	IntentTogglePause     // p
	IntentToggleMute      // m
	IntentRestart         // r
	IntentCycleDifficulty // 1
	IntentResize          // Terminal resize event

	// Steering
	IntentDirection // arrows, h/j/k/l
)

// Intent is a decoded key press
type Intent struct {
	Type      IntentType
	Direction core.Direction // Valid for IntentDirection
}

func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentTogglePause:
		return "toggle_pause"
	case IntentToggleMute:
		return "toggle_mute"
	case IntentRestart:
		return "restart"
	case IntentCycleDifficulty:
		return "cycle_difficulty"
	case IntentResize:
		return "resize"
	case IntentDirection:
		return "direction"
	default:
		return "none"
	}
}
