package engine

import (
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/highscore"
)

// SoundSink receives audio cues and background track control.
// Implemented by audio.SoundManager; cue calls must not block.
type SoundSink interface {
	Play(core.SoundType)
	SetMuted(bool)
	PauseMusic()
	ResumeMusic()
}

// nopSoundSink is used when no audio backend is configured
type nopSoundSink struct{}

func (nopSoundSink) Play(core.SoundType) {}
func (nopSoundSink) SetMuted(bool)       {}
func (nopSoundSink) PauseMusic()         {}
func (nopSoundSink) ResumeMusic()        {}

// Config carries the collaborators and starting options for a GameContext
type Config struct {
	Width, Height int
	Difficulty    game.Difficulty
	Muted         bool
	SessionID     uuid.UUID // Zero generates a new id

	RNG    *rand.Rand      // Nil seeds from the clock
	Time   TimeProvider    // Nil uses the monotonic clock
	Store  highscore.Store // Nil disables persistence
	Sounds SoundSink       // Nil disables audio
}

// GameContext owns all game state for one process; the main loop passes it around
// instead of reaching for globals. Not safe for concurrent use.
type GameContext struct {
	// ===== Immutable After Init =====
	SessionID     uuid.UUID
	Width, Height int

	// ===== Main-Loop Exclusive =====
	State  *GameState
	Snake  *game.Snake
	Food   *game.Food
	Clock  *PausableClock
	RNG    *rand.Rand
	Sounds SoundSink
}

// NewGameContext builds the context, loads high scores and places the first snake and food
func NewGameContext(cfg Config) *GameContext {
	if cfg.Width <= 0 {
		cfg.Width = constants.GridWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = constants.GridHeight
	}
	if cfg.Time == nil {
		cfg.Time = NewMonotonicTimeProvider()
	}
	if cfg.RNG == nil {
		cfg.RNG = rand.New(rand.NewSource(cfg.Time.Now().UnixNano()))
	}
	if cfg.Sounds == nil {
		cfg.Sounds = nopSoundSink{}
	}
	if cfg.SessionID == uuid.Nil {
		cfg.SessionID = uuid.New()
	}
	if !cfg.Difficulty.Valid() {
		cfg.Difficulty = game.Medium
	}

	ctx := &GameContext{
		SessionID: cfg.SessionID,
		Width:     cfg.Width,
		Height:    cfg.Height,
		State:     NewGameState(cfg.Difficulty, cfg.Store),
		Food:      &game.Food{},
		Clock:     NewPausableClock(cfg.Time),
		RNG:       cfg.RNG,
		Sounds:    cfg.Sounds,
	}

	ctx.State.SetMuted(cfg.Muted)
	ctx.Sounds.SetMuted(cfg.Muted)

	ctx.Snake = game.NewSnake(ctx.Width, ctx.Height, cfg.Difficulty, ctx.RNG, ctx.Clock.Now())
	ctx.Food.Place(ctx.RNG, ctx.Width, ctx.Height, ctx.Snake)

	log.Printf("Session %s started: grid=%dx%d difficulty=%s", ctx.SessionID, ctx.Width, ctx.Height, cfg.Difficulty)
	return ctx
}

// Now returns game time
func (ctx *GameContext) Now() time.Time {
	return ctx.Clock.Now()
}

// ===== COMMANDS =====

// TogglePause flips Running and Paused; ignored after game over
func (ctx *GameContext) TogglePause() {
	switch ctx.State.Phase() {
	case PhaseRunning:
		ctx.State.TransitionPhase(PhasePaused)
		ctx.Clock.Pause()
		ctx.Sounds.PauseMusic()
	case PhasePaused:
		ctx.State.TransitionPhase(PhaseRunning)
		ctx.Clock.Resume()
		ctx.Sounds.ResumeMusic()
	}
}

// ToggleMute flips the mute flag without touching the phase
func (ctx *GameContext) ToggleMute() {
	muted := ctx.State.ToggleMute()
	ctx.Sounds.SetMuted(muted)
}

// Restart starts a fresh run from any phase
func (ctx *GameContext) Restart() {
	if ctx.State.Phase() == PhasePaused {
		ctx.Clock.Resume()
		ctx.Sounds.ResumeMusic()
	}
	ctx.State.forcePhase(PhaseRunning)
	ctx.Snake.Reset(ctx.State.Difficulty(), ctx.Clock.Now())
	ctx.Food.Place(ctx.RNG, ctx.Width, ctx.Height, ctx.Snake)
}

// CycleDifficulty switches to the next difficulty and resets the snake, in any phase
func (ctx *GameContext) CycleDifficulty() {
	d := ctx.State.CycleDifficulty()
	ctx.Snake.Reset(d, ctx.Clock.Now())
	if ctx.Snake.Occupies(ctx.Food.Position) {
		ctx.Food.Place(ctx.RNG, ctx.Width, ctx.Height, ctx.Snake)
	}
	log.Printf("Difficulty set to %s", d)
}

// SetDirection steers the snake; accepted only while running and never into a reversal
func (ctx *GameContext) SetDirection(d core.Direction) bool {
	if !ctx.State.IsRunning() {
		return false
	}
	return ctx.Snake.SetDirection(d)
}

// ===== FRAME UPDATE =====

// Update advances one frame of game logic at the current game time
func (ctx *GameContext) Update() []core.EventType {
	return ctx.UpdateAt(ctx.Clock.Now())
}

// UpdateAt advances one frame at game time now and returns the events that occurred.
// Events are forwarded to the sound sink unless muted.
func (ctx *GameContext) UpdateAt(now time.Time) []core.EventType {
	if !ctx.State.IsRunning() {
		return nil
	}

	res := ctx.Snake.Update(now)
	events := res.Events

	if res.Status == game.Dead {
		ctx.gameOver()
	} else if ctx.Snake.Head() == ctx.Food.Position {
		ctx.Snake.Grow(ctx.State.Difficulty())
		ctx.Food.Place(ctx.RNG, ctx.Width, ctx.Height, ctx.Snake)
		events = append(events, core.EventAte)
	}

	if !ctx.State.Muted() {
		for _, ev := range events {
			ctx.Sounds.Play(ev.Sound())
		}
	}
	return events
}

func (ctx *GameContext) gameOver() {
	ctx.State.TransitionPhase(PhaseGameOver)

	score := ctx.Snake.Score
	d := ctx.State.Difficulty()
	updated, err := ctx.State.UpdateHighScore(score)
	if err != nil {
		log.Printf("High score not persisted: %v", err)
	}
	log.Printf("Session %s game over: difficulty=%s score=%d length=%d new_best=%v paused=%s",
		ctx.SessionID, d, score, len(ctx.Snake.Positions), updated, ctx.Clock.TotalPauseDuration())
}
