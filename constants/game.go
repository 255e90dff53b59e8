package constants

// Difficulty speeds in cell advances per second
const (
	EasyTicksPerSecond   = 8
	MediumTicksPerSecond = 12
	HardTicksPerSecond   = 16
)

// Difficulty score multipliers
const (
	EasyScoreMultiplier   = 1
	MediumScoreMultiplier = 2
	HardScoreMultiplier   = 3
)

// Scoring
const (
	// FoodBaseScore is multiplied by the difficulty multiplier on each food eaten
	FoodBaseScore = 10

	// InitialSnakeLength is the target length after a reset
	InitialSnakeLength = 1
)

// Persistence defaults
const (
	// DefaultHighScoreFile is the high score table path relative to the working directory
	DefaultHighScoreFile = "high_scores.json"

	// DefaultSoundDir is used for WAV cues when present and no directory is given
	DefaultSoundDir = "sounds"
)
