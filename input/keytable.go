package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/core"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]Intent

	// Printable rune bindings, matched case-sensitively
	Runes map[rune]Intent
}

func steer(d core.Direction) Intent {
	return Intent{Type: IntentDirection, Direction: d}
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyCtrlC:  {Type: IntentQuit},
			tcell.KeyUp:     steer(core.DirUp),
			tcell.KeyDown:   steer(core.DirDown),
			tcell.KeyLeft:   steer(core.DirLeft),
			tcell.KeyRight:  steer(core.DirRight),
		},
		Runes: map[rune]Intent{
			'q': {Type: IntentQuit},
			'p': {Type: IntentTogglePause},
			'P': {Type: IntentTogglePause},
			'm': {Type: IntentToggleMute},
			'M': {Type: IntentToggleMute},
			'r': {Type: IntentRestart},
			'R': {Type: IntentRestart},
			'1': {Type: IntentCycleDifficulty},
			'k': steer(core.DirUp),
			'j': steer(core.DirDown),
			'h': steer(core.DirLeft),
			'l': steer(core.DirRight),
		},
	}
}

// Clone returns a deep copy with non-nil maps
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
	if c.SpecialKeys == nil {
		c.SpecialKeys = make(map[tcell.Key]Intent)
	}
	if c.Runes == nil {
		c.Runes = make(map[rune]Intent)
	}
	return c
}

// Lookup decodes a key event, IntentNone when unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
