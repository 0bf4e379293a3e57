package protocol

import (
	"errors"
	"fmt"
	"math"
)

// EventType identifies a client UI event.
type EventType string

const (
	// EventScroll carries the window's vertical scroll offset.
	EventScroll EventType = "scroll"

	// EventClick is a click on an element carrying data-action.
	EventClick EventType = "click"

	// EventVisible reports a section's box relative to the viewport.
	EventVisible EventType = "visible"
)

// ErrInvalidEvent is returned for events that fail validation.
var ErrInvalidEvent = errors.New("protocol: invalid event")

// Event is a UI event sent by the client.
type Event struct {
	Type EventType `json:"type"`

	// Scroll
	Y float64 `json:"y,omitempty"`

	// Click
	Action string `json:"action,omitempty"`
	Value  string `json:"value,omitempty"`

	// Visible
	Target   string  `json:"target,omitempty"`
	Top      float64 `json:"top,omitempty"`
	Bottom   float64 `json:"bottom,omitempty"`
	Viewport float64 `json:"viewport,omitempty"`
}

// Validate checks the fields required by the event type.
func (e *Event) Validate() error {
	switch e.Type {
	case EventScroll:
		if !finite(e.Y) {
			return fmt.Errorf("%w: scroll offset not finite", ErrInvalidEvent)
		}
	case EventClick:
		if e.Action == "" {
			return fmt.Errorf("%w: click without action", ErrInvalidEvent)
		}
	case EventVisible:
		if e.Target == "" {
			return fmt.Errorf("%w: visible without target", ErrInvalidEvent)
		}
		if !finite(e.Top) || !finite(e.Bottom) || !finite(e.Viewport) || e.Viewport <= 0 {
			return fmt.Errorf("%w: bad geometry for %q", ErrInvalidEvent, e.Target)
		}
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidEvent, e.Type)
	}
	return nil
}

// DecodeEvent extracts and validates the event carried by an event frame.
func DecodeEvent(f *Frame) (*Event, error) {
	if f.Type != FrameEvent {
		return nil, fmt.Errorf("%w: want %s frame, got %s", ErrInvalidFrameType, FrameEvent, f.Type)
	}
	var e Event
	if err := f.Decode(&e); err != nil {
		return nil, err
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return &e, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
