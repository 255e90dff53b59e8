package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundEat   SoundType = iota // Food eaten
	SoundCrash                  // Self-collision
	SoundMove                   // Steady-length step
	SoundTypeCount
)

// String returns the cue name used for config keys and WAV lookup
func (s SoundType) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundCrash:
		return "crash"
	case SoundMove:
		return "move"
	default:
		return "unknown"
	}
}
