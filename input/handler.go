package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
)

// Handler applies terminal events to the game context
type Handler struct {
	ctx  *engine.GameContext
	keys *KeyTable
}

// NewHandler creates a handler; nil keys uses DefaultKeyTable
func NewHandler(ctx *engine.GameContext, keys *KeyTable) *Handler {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Handler{ctx: ctx, keys: keys}
}

// Decode maps a terminal event to an intent without applying it
func (h *Handler) Decode(ev tcell.Event) Intent {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return h.keys.Lookup(e)
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	default:
		return Intent{}
	}
}

// HandleEvent processes one event, returns false when the game should exit
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	return h.Apply(h.Decode(ev))
}

// Apply executes an intent against the context, returns false on quit.
// Direction input is ignored unless the game is running.
func (h *Handler) Apply(in Intent) bool {
	switch in.Type {
	case IntentQuit:
		return false
	case IntentTogglePause:
		h.ctx.TogglePause()
	case IntentToggleMute:
		h.ctx.ToggleMute()
	case IntentRestart:
		h.ctx.Restart()
	case IntentCycleDifficulty:
		h.ctx.CycleDifficulty()
	case IntentDirection:
		h.ctx.SetDirection(in.Direction)
	}
	return true
}
