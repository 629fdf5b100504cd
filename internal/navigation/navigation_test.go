package navigation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBook_LatchDropsMoves(t *testing.T) {
	b := NewBook(3)

	assert.True(t, b.Next())
	assert.False(t, b.Next(), "dropped while animating")
	assert.False(t, b.Previous())
	assert.False(t, b.GoTo(0))
	assert.Equal(t, State{CurrentPage: 1, TotalPages: 3, IsAnimating: true}, b.State())

	b.Settle()
	assert.True(t, b.Next())
	b.Settle()
	assert.False(t, b.Next(), "already on last page")
	assert.False(t, b.State().IsAnimating, "rejected move leaves latch clear")
	assert.Equal(t, 2, b.Current())
}

func TestBook_Bounds(t *testing.T) {
	b := NewBook(4)
	assert.False(t, b.Previous())
	assert.False(t, b.GoTo(-1))
	assert.False(t, b.GoTo(4))
	assert.True(t, b.GoTo(3))
	b.Settle()
	assert.True(t, b.Previous())
	assert.Equal(t, 2, b.Current())

	b.Settle()
	b.SetTotal(2)
	assert.Equal(t, 1, b.Current())
	b.SetTotal(0)
	assert.Equal(t, 0, b.Current())
	assert.False(t, b.Next())
}

func TestKeyDirection(t *testing.T) {
	for _, k := range []string{"ArrowRight", "ArrowDown", "PageDown", " "} {
		assert.Equal(t, Forward, KeyDirection(k), k)
	}
	for _, k := range []string{"ArrowLeft", "ArrowUp", "PageUp"} {
		assert.Equal(t, Backward, KeyDirection(k), k)
	}
	assert.Equal(t, None, KeyDirection("Enter"))
}

func TestWheelDirection(t *testing.T) {
	assert.Equal(t, None, WheelDirection(49))
	assert.Equal(t, None, WheelDirection(-10))
	assert.Equal(t, Forward, WheelDirection(50))
	assert.Equal(t, Backward, WheelDirection(-120))
}

func TestSwipeDirection(t *testing.T) {
	assert.Equal(t, Backward, SwipeDirection(80, 10), "swipe right goes back")
	assert.Equal(t, Forward, SwipeDirection(-80, 10))
	assert.Equal(t, None, SwipeDirection(50, 0), "must exceed threshold")
	assert.Equal(t, None, SwipeDirection(-80, 120), "vertical scroll is ignored")
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func TestDebouncer(t *testing.T) {
	c := &clock{t: time.Unix(1000, 0)}
	d := NewDebouncer(300*time.Millisecond, c.now)

	assert.True(t, d.Allow())
	c.t = c.t.Add(299 * time.Millisecond)
	assert.False(t, d.Allow())
	c.t = c.t.Add(time.Millisecond)
	assert.True(t, d.Allow())
}

func TestNavigator_Handle(t *testing.T) {
	c := &clock{t: time.Unix(1000, 0)}
	n := NewNavigator(NewBook(10), c.now)

	assert.True(t, n.Handle(Event{Type: EventWheel, DeltaY: 100}))
	n.Book().Settle()
	assert.False(t, n.Handle(Event{Type: EventWheel, DeltaY: 100}), "debounced")

	assert.True(t, n.Handle(Event{Type: EventKey, Key: "ArrowRight"}), "keys are not debounced")
	n.Book().Settle()
	assert.Equal(t, 2, n.Book().Current())

	c.t = c.t.Add(WheelDebounce)
	assert.True(t, n.Handle(Event{Type: EventWheel, DeltaY: -60}))
	n.Book().Settle()
	assert.True(t, n.Handle(Event{Type: EventSwipe, DeltaX: 90}))
	n.Book().Settle()
	assert.Equal(t, 0, n.Book().Current())

	assert.False(t, n.Handle(Event{Type: EventKey, Key: "Tab"}))
	assert.False(t, n.Handle(Event{Type: "pinch"}))
}

func TestTurn(t *testing.T) {
	assert.Equal(t, 4, Turn(3, 10, Forward))
	assert.Equal(t, 9, Turn(9, 10, Forward))
	assert.Equal(t, 0, Turn(0, 10, Backward))
	assert.Equal(t, 5, Turn(5, 10, None))
	assert.Equal(t, 9, Turn(42, 10, None))
	assert.Equal(t, 0, Turn(3, 0, Forward))
}

func TestParseEventType(t *testing.T) {
	et, ok := ParseEventType(" Wheel ")
	assert.True(t, ok)
	assert.Equal(t, EventWheel, et)
	_, ok = ParseEventType("pinch")
	assert.False(t, ok)
}
