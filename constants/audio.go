package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the default output sample rate
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultMusicVolume mirrors a half-volume background track
	DefaultMusicVolume = 0.5

	// ResampleQuality is passed to beep.Resample for WAV files with a foreign rate
	ResampleQuality = 4
)

// Eat Sound Timing
const (
	EatSoundNote1Duration = 60 * time.Millisecond
	EatSoundNote2Duration = 120 * time.Millisecond
	EatSoundAttack        = 5 * time.Millisecond
	EatSoundNote1Release  = 30 * time.Millisecond
	EatSoundNote2Release  = 90 * time.Millisecond
)

// Crash Sound Timing
const (
	CrashSoundDuration = 450 * time.Millisecond
	CrashSoundAttack   = 5 * time.Millisecond
	CrashSoundRelease  = 350 * time.Millisecond
)

// Move Sound Timing
const (
	MoveSoundDuration = 25 * time.Millisecond
	MoveSoundAttack   = 2 * time.Millisecond
	MoveSoundRelease  = 15 * time.Millisecond
)

// Background Track
const (
	// MusicBeatDuration is one beat of the synthesized loop (100 BPM)
	MusicBeatDuration = 600 * time.Millisecond

	// MusicKickDuration is the length of the kick at the start of each beat
	MusicKickDuration = 100 * time.Millisecond
)
