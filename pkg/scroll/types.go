package scroll

import "time"

// Point is a screen coordinate in global display space.
type Point struct {
	X float64
	Y float64
}

// Flags mirrors the Quartz CGEventFlags modifier bits.
type Flags uint64

const (
	FlagCapsLock Flags = 0x00010000
	FlagShift    Flags = 0x00020000
	FlagControl  Flags = 0x00040000
	FlagOption   Flags = 0x00080000
	FlagCommand  Flags = 0x00100000
)

// EventType enumerates the input categories the engine understands.
type EventType int

const (
	EventOther EventType = iota
	EventMouseMoved
	EventLeftMouseDown
	EventLeftMouseUp
	EventLeftMouseDragged
	EventRightMouseDown
	EventRightMouseUp
	EventRightMouseDragged
	EventOtherMouseDown
	EventOtherMouseUp
	EventOtherMouseDragged
	EventScrollWheel
	EventFlagsChanged
)

var eventNames = map[EventType]string{
	EventMouseMoved:        "MouseMoved",
	EventLeftMouseDown:     "LeftMouseDown",
	EventLeftMouseUp:       "LeftMouseUp",
	EventLeftMouseDragged:  "LeftMouseDragged",
	EventRightMouseDown:    "RightMouseDown",
	EventRightMouseUp:      "RightMouseUp",
	EventRightMouseDragged: "RightMouseDragged",
	EventOtherMouseDown:    "OtherMouseDown",
	EventOtherMouseUp:      "OtherMouseUp",
	EventOtherMouseDragged: "OtherMouseDragged",
	EventScrollWheel:       "ScrollWheel",
	EventFlagsChanged:      "FlagsChanged",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "Other"
}

// Event is a single decoded input event as delivered by the tap.
type Event struct {
	Type     EventType
	Button   int64
	Location Point
	DeltaX   int64
	DeltaY   int64
	Flags    Flags
}

// ScrollEvent describes a synthetic pixel-unit, two-axis scroll wheel event.
type ScrollEvent struct {
	Vertical   int32
	Horizontal int32
	Location   Point

	// StripFlags reports whether Flags must replace the synthetic event's
	// modifier flags.
	StripFlags bool
	Flags      Flags
}

// Action is the verdict returned to the tap for the current event.
type Action int

const (
	// Propagate passes the original event through unchanged.
	Propagate Action = iota
	// Swallow drops the original event.
	Swallow
	// Replace drops the original event and injects Result.Scroll instead.
	Replace
)

func (a Action) String() string {
	switch a {
	case Propagate:
		return "propagate"
	case Swallow:
		return "swallow"
	case Replace:
		return "replace"
	default:
		return "unknown"
	}
}

// Result is the tagged outcome of Engine.Handle.
type Result struct {
	Action Action
	Scroll ScrollEvent
}

// Cursor is the OS surface used to move the pointer without generating
// motion deltas.
type Cursor interface {
	Warp(p Point)
	SetSuppressionInterval(d time.Duration)
}

// State is the mutable activation state owned by an Engine.
type State struct {
	ButtonActive bool
	KeyActive    bool
	Pinned       Point
	LastDeltaX   int64
	LastDeltaY   int64
}

// Active reports whether either trigger currently holds drag-to-scroll.
func (s State) Active() bool {
	return s.ButtonActive || s.KeyActive
}
