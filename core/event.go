package core

// EventType identifies something that happened during a frame
type EventType uint8

const (
	EventMoved EventType = iota // Snake advanced at steady length (tail popped)
	EventAte                    // Head reached food, snake grew
	EventDied                   // Head hit the body
)

func (e EventType) String() string {
	switch e {
	case EventMoved:
		return "moved"
	case EventAte:
		return "ate"
	case EventDied:
		return "died"
	default:
		return "unknown"
	}
}

// Sound returns the cue played for the event
func (e EventType) Sound() SoundType {
	switch e {
	case EventAte:
		return SoundEat
	case EventDied:
		return SoundCrash
	default:
		return SoundMove
	}
}
