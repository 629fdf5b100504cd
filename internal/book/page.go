package book

import "encoding/json"

// Side is the half of an open spread a page sits on.
type Side string

const (
	Left  Side = "left"
	Right Side = "right"
)

// SideOf returns the side of page number n: even pages are left, odd right.
func SideOf(n int) Side {
	if n%2 == 0 {
		return Left
	}
	return Right
}

// Page is one page of the book. Number is zero-based and gap-free across the
// sequence returned by Map.
type Page struct {
	ID      string
	Number  int
	Title   string
	Content Content
}

func (p Page) Side() Side { return SideOf(p.Number) }

// Kind is shorthand for p.Content.Kind().
func (p Page) Kind() Kind { return p.Content.Kind() }

type contentJSON struct {
	Type Kind    `json:"type"`
	Data Content `json:"data"`
}

type pageJSON struct {
	ID         string      `json:"id"`
	PageNumber int         `json:"pageNumber"`
	Title      string      `json:"title"`
	Side       Side        `json:"side"`
	Content    contentJSON `json:"content"`
}

func (p Page) MarshalJSON() ([]byte, error) {
	return json.Marshal(pageJSON{
		ID:         p.ID,
		PageNumber: p.Number,
		Title:      p.Title,
		Side:       p.Side(),
		Content:    contentJSON{Type: p.Content.Kind(), Data: p.Content},
	})
}
