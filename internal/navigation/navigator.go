package navigation

import "time"

// Navigator feeds input events into a Book. Wheel events are debounced;
// keys and swipes are discrete and only limited by the animating latch.
type Navigator struct {
	book  *Book
	wheel *Debouncer
}

// NewNavigator wires a book with a wheel debouncer using now as its clock.
func NewNavigator(book *Book, now func() time.Time) *Navigator {
	return &Navigator{book: book, wheel: NewDebouncer(WheelDebounce, now)}
}

func (n *Navigator) Book() *Book { return n.book }

// Handle applies ev and reports whether the page changed.
func (n *Navigator) Handle(ev Event) bool {
	dir := ev.Direction()
	if dir == None {
		return false
	}
	if ev.Type == EventWheel && !n.wheel.Allow() {
		return false
	}
	return n.move(dir)
}

func (n *Navigator) move(dir Direction) bool {
	switch dir {
	case Forward:
		return n.book.Next()
	case Backward:
		return n.book.Previous()
	}
	return false
}

// Turn resolves a single direction against a page position without any
// state: the result is current moved by one and clamped to [0, total).
func Turn(current, total int, dir Direction) int {
	if total <= 0 {
		return 0
	}
	next := current
	switch dir {
	case Forward:
		next++
	case Backward:
		next--
	}
	return min(max(next, 0), total-1)
}
