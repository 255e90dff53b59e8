package constants

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = time.Second / 60

	// EventChannelSize is the buffer between the input poller and the main loop
	EventChannelSize = 256

	// QuitFadeDuration is how long the background track fades before exit
	QuitFadeDuration = 1000 * time.Millisecond
)

// Play Field
const (
	// GridWidth is the number of columns of the play field
	GridWidth = 40

	// GridHeight is the number of rows of the play field
	GridHeight = 30

	// CollisionSkipSegments is how many cells nearest the head are ignored by self-collision
	CollisionSkipSegments = 3
)
