package navigation

import "sync"

// State is a snapshot of a Book.
type State struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	IsAnimating bool `json:"isAnimating"`
}

// Book tracks the open page. A successful move sets the animating latch and
// further moves are dropped until the caller clears it with Settle.
type Book struct {
	mu        sync.Mutex
	current   int
	total     int
	animating bool
}

func NewBook(total int) *Book {
	return &Book{total: total}
}

// Next moves forward one page. It reports whether the move happened.
func (b *Book) Next() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.animating || b.current >= b.total-1 {
		return false
	}
	b.animating = true
	b.current++
	return true
}

// Previous moves back one page.
func (b *Book) Previous() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.animating || b.current <= 0 {
		return false
	}
	b.animating = true
	b.current--
	return true
}

// GoTo jumps to page n.
func (b *Book) GoTo(n int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.animating || n < 0 || n >= b.total {
		return false
	}
	b.animating = true
	b.current = n
	return true
}

// SetTotal changes the page count. The current page is kept in range.
func (b *Book) SetTotal(total int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.total = total
	if b.current >= total {
		b.current = max(total-1, 0)
	}
}

// Settle clears the animating latch once the page turn has finished.
func (b *Book) Settle() {
	b.mu.Lock()
	b.animating = false
	b.mu.Unlock()
}

func (b *Book) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return State{CurrentPage: b.current, TotalPages: b.total, IsAnimating: b.animating}
}

func (b *Book) Current() int { return b.State().CurrentPage }
