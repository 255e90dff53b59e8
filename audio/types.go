package audio

import (
	"errors"
)

// Sentinel errors
var (
	ErrEmptySound = errors.New("sound file contains no samples")
)

// WAV file names looked up in AudioConfig.SoundDir
var soundFiles = map[string]string{
	"eat":   "eat.wav",
	"crash": "game_over.wav",
	"move":  "move.wav",
	"music": "snake_bgm_soft.wav",
}
