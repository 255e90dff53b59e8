package audio

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// SoundManager manages all game audio: one-shot cues and the looping background track.
// Safe for concurrent use; the speaker goroutine reads the mixer under speaker.Lock.
type SoundManager struct {
	mu     sync.Mutex
	config *AudioConfig
	rate   beep.SampleRate
	mixer  *beep.Mixer

	// File-backed cues, nil entries are no-ops; unused when synthesizing
	buffers map[core.SoundType]*beep.Buffer

	music       *beep.Ctrl
	musicVolume *effects.Volume
	musicFader  *fader

	muted       bool
	initialized bool
}

// NewSoundManager creates a sound manager; nil config uses DefaultAudioConfig
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		config: cfg,
		rate:   beep.SampleRate(cfg.SampleRate),
		mixer:  &beep.Mixer{},
	}
}

// Initialize opens the speaker, prepares cues and starts the background track.
// Missing sound files are logged and their cue becomes a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.config.Enabled {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	music := sm.prepareSources()
	if music != nil {
		sm.musicFader = &fader{streamer: music}
		sm.musicVolume = newVolume(sm.musicFader, sm.config.MusicVolume*sm.config.MasterVolume)
		sm.musicVolume.Silent = sm.musicVolume.Silent || sm.muted
		sm.music = &beep.Ctrl{Streamer: sm.musicVolume}
		sm.mixer.Add(sm.music)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// prepareSources loads WAV cues when a sound dir is configured and returns the music source
func (sm *SoundManager) prepareSources() beep.Streamer {
	if sm.config.SoundDir == "" {
		return NewMusicGenerator(sm.rate)
	}

	sm.buffers = make(map[core.SoundType]*beep.Buffer)
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		path := filepath.Join(sm.config.SoundDir, soundFiles[st.String()])
		buf, err := LoadWAV(path, sm.rate)
		if err != nil {
			log.Printf("Sound %s unavailable, cue disabled: %v", st, err)
			continue
		}
		sm.buffers[st] = buf
	}

	path := filepath.Join(sm.config.SoundDir, soundFiles["music"])
	buf, err := LoadWAV(path, sm.rate)
	if err != nil {
		log.Printf("Background music unavailable: %v", err)
		return nil
	}
	return beep.Loop(-1, buf.Streamer(0, buf.Len()))
}

// cue builds a fresh streamer for a sound, nil when unavailable
func (sm *SoundManager) cue(st core.SoundType) beep.Streamer {
	if sm.buffers == nil {
		return GetSoundEffect(st, sm.config)
	}
	buf := sm.buffers[st]
	if buf == nil {
		return nil
	}
	return newVolume(buf.Streamer(0, buf.Len()), sm.config.EffectVolumes[st]*sm.config.MasterVolume)
}

// Play queues a one-shot cue; no-op when muted, uninitialized or the cue is unavailable
func (sm *SoundManager) Play(st core.SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	s := sm.cue(st)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// SetMuted silences or restores cues and the background track
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if !sm.initialized || sm.musicVolume == nil {
		return
	}

	speaker.Lock()
	sm.musicVolume.Silent = muted || sm.config.MusicVolume*sm.config.MasterVolume <= 0
	speaker.Unlock()
}

// IsMuted returns current mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PauseMusic holds the background track at its current position
func (sm *SoundManager) PauseMusic() {
	sm.setMusicPaused(true)
}

// ResumeMusic continues the background track
func (sm *SoundManager) ResumeMusic() {
	sm.setMusicPaused(false)
}

func (sm *SoundManager) setMusicPaused(paused bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.music == nil {
		return
	}
	speaker.Lock()
	sm.music.Paused = paused
	speaker.Unlock()
}

// FadeOut ramps the background track to silence over d and blocks until done
func (sm *SoundManager) FadeOut(d time.Duration) {
	sm.mu.Lock()
	if !sm.initialized || sm.music == nil || sm.muted {
		sm.mu.Unlock()
		return
	}
	speaker.Lock()
	sm.music.Paused = false
	sm.musicFader.start(sm.rate.N(d))
	speaker.Unlock()
	sm.mu.Unlock()

	time.Sleep(d)
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()

	sm.music = nil
	sm.musicVolume = nil
	sm.musicFader = nil
	sm.initialized = false
}
