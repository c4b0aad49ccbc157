package entity

import (
	"strings"
	"time"
)

// Todo is a single task item owned by a user.
type Todo struct {
	ID          int64
	Title       string
	Description string
	UserID      int64 // Owner, always taken from the authenticated session.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TodoPatch carries the fields of a partial update; nil fields are left untouched.
type TodoPatch struct {
	Title       *string
	Description *string
}

// IsEmpty reports whether the patch changes nothing.
func (p TodoPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil
}

// SortOrder is the direction used when a sort field is given.
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// ParseSortOrder accepts ASC or DESC in any case and falls back to ASC.
func ParseSortOrder(raw string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(raw), string(SortDesc)) {
		return SortDesc
	}

	return SortAsc
}

// TodoFilter describes one page of a todo listing.
type TodoFilter struct {
	Limit     int
	Offset    int
	Search    string // Case-insensitive substring matched against title or description; empty disables.
	SortField string // Column to order by; empty leaves the order to the database.
	SortOrder SortOrder
}

// TodoPage is a page of todos plus the total number of matching rows.
type TodoPage struct {
	Rows  []*Todo
	Count int64
}
