package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// TestDefaultAudioConfig verifies default configuration
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.SampleRate != 48000 {
		t.Errorf("Expected default sample rate 48000, got %d", cfg.SampleRate)
	}
	if cfg.MusicVolume != 0.5 {
		t.Errorf("Expected default music volume 0.5, got %f", cfg.MusicVolume)
	}
	if cfg.SoundDir != "" {
		t.Errorf("Expected synthesized cues by default, got SoundDir=%q", cfg.SoundDir)
	}

	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		if _, ok := cfg.EffectVolumes[st]; !ok {
			t.Errorf("Expected volume for %s to be set", st)
		}
	}
}

// TestLoadAudioConfigFromEnv verifies every variable is honored
func TestLoadAudioConfigFromEnv(t *testing.T) {
	t.Setenv("VI_SNAKE_AUDIO_ENABLED", "false")
	t.Setenv("VI_SNAKE_MASTER_VOLUME", "40")
	t.Setenv("VI_SNAKE_MUSIC_VOLUME", "150")
	t.Setenv("VI_SNAKE_SFX_VOLUMES", `{"eat":0.2,"move":0,"bogus":1}`)
	t.Setenv("VI_SNAKE_SAMPLE_RATE", "44100")

	cfg := LoadAudioConfig()

	if cfg.Enabled {
		t.Error("Expected Enabled=false")
	}
	if cfg.MasterVolume != 0.4 {
		t.Errorf("MasterVolume = %f, want 0.4", cfg.MasterVolume)
	}
	if cfg.MusicVolume != 1.0 {
		t.Errorf("MusicVolume = %f, want clamped 1.0", cfg.MusicVolume)
	}
	if cfg.EffectVolumes[core.SoundEat] != 0.2 {
		t.Errorf("Eat volume = %f, want 0.2", cfg.EffectVolumes[core.SoundEat])
	}
	if cfg.EffectVolumes[core.SoundMove] != 0 {
		t.Errorf("Move volume = %f, want 0", cfg.EffectVolumes[core.SoundMove])
	}
	if cfg.EffectVolumes[core.SoundCrash] != 0.9 {
		t.Errorf("Crash volume = %f, want default 0.9", cfg.EffectVolumes[core.SoundCrash])
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", cfg.SampleRate)
	}
}

// TestLoadAudioConfigInvalidValues verifies malformed values keep defaults
func TestLoadAudioConfigInvalidValues(t *testing.T) {
	t.Setenv("VI_SNAKE_AUDIO_ENABLED", "maybe")
	t.Setenv("VI_SNAKE_MASTER_VOLUME", "loud")
	t.Setenv("VI_SNAKE_SFX_VOLUMES", "{broken")
	t.Setenv("VI_SNAKE_SAMPLE_RATE", "-1")

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()

	if cfg.Enabled != def.Enabled || cfg.MasterVolume != def.MasterVolume || cfg.SampleRate != def.SampleRate {
		t.Errorf("Invalid env changed config: %+v", cfg)
	}
	for st, v := range def.EffectVolumes {
		if cfg.EffectVolumes[st] != v {
			t.Errorf("%s volume = %f, want %f", st, cfg.EffectVolumes[st], v)
		}
	}
}

// TestResolveSoundDir verifies flag precedence and the default directory fallback
func TestResolveSoundDir(t *testing.T) {
	t.Chdir(t.TempDir())

	if got := ResolveSoundDir(""); got != "" {
		t.Errorf("Without %s dir = %q, want synthesized", constants.DefaultSoundDir, got)
	}

	if err := os.WriteFile(constants.DefaultSoundDir, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if got := ResolveSoundDir(""); got != "" {
		t.Errorf("Plain file %s accepted as dir: %q", constants.DefaultSoundDir, got)
	}
	if err := os.Remove(constants.DefaultSoundDir); err != nil {
		t.Fatal(err)
	}

	if err := os.Mkdir(constants.DefaultSoundDir, 0755); err != nil {
		t.Fatal(err)
	}
	if got := ResolveSoundDir(""); got != constants.DefaultSoundDir {
		t.Errorf("With %s dir = %q, want it", constants.DefaultSoundDir, got)
	}

	explicit := filepath.Join("custom", "wavs")
	if got := ResolveSoundDir(explicit); got != explicit {
		t.Errorf("Explicit dir = %q, want %q", got, explicit)
	}
}
