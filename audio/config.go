package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// AudioConfig controls output format, volumes and cue sources
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64                    // 0.0-1.0, applies to cues and music
	MusicVolume   float64                    // 0.0-1.0, background track
	EffectVolumes map[core.SoundType]float64 // Per-cue gain
	SampleRate    int

	// SoundDir, when set, loads WAV cues from disk instead of synthesizing them
	SoundDir string
}

// DefaultAudioConfig returns synthesized cues at moderate volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.7,
		MusicVolume:  constants.DefaultMusicVolume,
		EffectVolumes: map[core.SoundType]float64{
			core.SoundEat:   1.0,
			core.SoundCrash: 0.9,
			core.SoundMove:  0.3,
		},
		SampleRate: constants.AudioSampleRate,
	}
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv("VI_SNAKE_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Volumes are 0-100 converted to 0.0-1.0
	if volume := os.Getenv("VI_SNAKE_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampUnit(float64(val) / 100.0)
		}
	}
	if volume := os.Getenv("VI_SNAKE_MUSIC_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MusicVolume = clampUnit(float64(val) / 100.0)
		}
	}

	if effectVols := os.Getenv("VI_SNAKE_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
				if v, ok := volumes[st.String()]; ok {
					cfg.EffectVolumes[st] = clampUnit(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv("VI_SNAKE_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

// ResolveSoundDir picks the WAV directory: an explicit dir wins, otherwise
// constants.DefaultSoundDir when it exists, otherwise "" (synthesized cues)
func ResolveSoundDir(dir string) string {
	if dir != "" {
		return dir
	}
	if info, err := os.Stat(constants.DefaultSoundDir); err == nil && info.IsDir() {
		return constants.DefaultSoundDir
	}
	return ""
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
