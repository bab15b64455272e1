package invasion

// EventKind identifies an input event delivered to the World.
type EventKind int

const (
	EventMoveUpStart EventKind = iota
	EventMoveUpStop
	EventMoveDownStart
	EventMoveDownStop
	EventFire
	EventQuit
	EventPointerClick // X, Y carry the world position
	EventPlay         // Keyboard start
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventMoveUpStart:
		return "MoveUpStart"
	case EventMoveUpStop:
		return "MoveUpStop"
	case EventMoveDownStart:
		return "MoveDownStart"
	case EventMoveDownStop:
		return "MoveDownStop"
	case EventFire:
		return "Fire"
	case EventQuit:
		return "Quit"
	case EventPointerClick:
		return "PointerClick"
	case EventPlay:
		return "Play"
	default:
		return "Unknown"
	}
}

// Event is one abstract input.
type Event struct {
	Kind EventKind
	X, Y float64
}

// NewEvent creates an event without a position.
func NewEvent(kind EventKind) Event {
	return Event{Kind: kind}
}

// PointerClick creates a click event at a world position.
func PointerClick(x, y float64) Event {
	return Event{Kind: EventPointerClick, X: x, Y: y}
}
