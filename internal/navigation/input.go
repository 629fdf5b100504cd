package navigation

import (
	"math"
	"strings"
	"sync"
	"time"
)

// Direction is the outcome of interpreting one input event.
type Direction int

const (
	None Direction = iota
	Forward
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "next"
	case Backward:
		return "previous"
	}
	return "none"
}

const (
	// WheelThreshold is the minimum |deltaY| of a wheel event that turns a page.
	WheelThreshold = 50.0
	// SwipeThreshold is the minimum horizontal travel of a swipe.
	SwipeThreshold = 50.0
	// WheelDebounce is the quiet period after a wheel-driven turn.
	WheelDebounce = 300 * time.Millisecond
)

// KeyDirection maps a KeyboardEvent key name to a direction.
func KeyDirection(key string) Direction {
	switch key {
	case "ArrowRight", "ArrowDown", "PageDown", " ", "Space", "Spacebar":
		return Forward
	case "ArrowLeft", "ArrowUp", "PageUp":
		return Backward
	}
	return None
}

// WheelDirection turns scrolling down into Forward once the threshold is met.
func WheelDirection(deltaY float64) Direction {
	if math.Abs(deltaY) < WheelThreshold {
		return None
	}
	if deltaY > 0 {
		return Forward
	}
	return Backward
}

// SwipeDirection interprets a touch gesture from start to end. Only mostly
// horizontal swipes count, so vertical scrolling is left alone. Swiping right
// goes back a page.
func SwipeDirection(deltaX, deltaY float64) Direction {
	if math.Abs(deltaX) <= SwipeThreshold || math.Abs(deltaX) <= math.Abs(deltaY) {
		return None
	}
	if deltaX > 0 {
		return Backward
	}
	return Forward
}

// Debouncer accepts at most one event per interval.
type Debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	now      func() time.Time
	last     time.Time
}

// NewDebouncer uses time.Now when now is nil.
func NewDebouncer(interval time.Duration, now func() time.Time) *Debouncer {
	if now == nil {
		now = time.Now
	}
	return &Debouncer{interval: interval, now: now}
}

// Allow reports whether an event arriving now should be handled.
func (d *Debouncer) Allow() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	t := d.now()
	if !d.last.IsZero() && t.Sub(d.last) < d.interval {
		return false
	}
	d.last = t
	return true
}

// EventType names the input source of an Event.
type EventType string

const (
	EventKey   EventType = "key"
	EventWheel EventType = "wheel"
	EventSwipe EventType = "swipe"
)

// Event is one raw navigation input.
type Event struct {
	Type   EventType `json:"type"`
	Key    string    `json:"key,omitempty"`
	DeltaX float64   `json:"deltaX,omitempty"`
	DeltaY float64   `json:"deltaY,omitempty"`
}

// Direction interprets the event on its own, without debouncing.
func (e Event) Direction() Direction {
	switch e.Type {
	case EventKey:
		return KeyDirection(e.Key)
	case EventWheel:
		return WheelDirection(e.DeltaY)
	case EventSwipe:
		return SwipeDirection(e.DeltaX, e.DeltaY)
	}
	return None
}

// ParseEventType accepts the event type names case-insensitively.
func ParseEventType(s string) (EventType, bool) {
	switch t := EventType(strings.ToLower(strings.TrimSpace(s))); t {
	case EventKey, EventWheel, EventSwipe:
		return t, true
	}
	return "", false
}
