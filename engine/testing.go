package engine

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/highscore"
)

// TestEpoch is the fixed start time used by NewTestGameContext
var TestEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// RecordingSoundSink records every call, for asserting audio side effects in tests
type RecordingSoundSink struct {
	Played       []core.SoundType
	Muted        bool
	MusicPaused  bool
	MusicToggles int
}

func (r *RecordingSoundSink) Play(s core.SoundType) { r.Played = append(r.Played, s) }
func (r *RecordingSoundSink) SetMuted(m bool)       { r.Muted = m }
func (r *RecordingSoundSink) PauseMusic()           { r.MusicPaused = true; r.MusicToggles++ }
func (r *RecordingSoundSink) ResumeMusic()          { r.MusicPaused = false; r.MusicToggles++ }

// NewTestGameContext creates a deterministic GameContext on a mock clock with in-memory scores
func NewTestGameContext(d game.Difficulty) (*GameContext, *MockTimeProvider, *RecordingSoundSink, *highscore.MemoryStore) {
	mock := NewMockTimeProvider(TestEpoch)
	sounds := &RecordingSoundSink{}
	store := &highscore.MemoryStore{}

	ctx := NewGameContext(Config{
		Difficulty: d,
		RNG:        rand.New(rand.NewSource(42)),
		Time:       mock,
		Store:      store,
		Sounds:     sounds,
	})
	return ctx, mock, sounds, store
}
