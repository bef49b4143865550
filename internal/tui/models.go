package tui

import "github.com/pders01/quip/internal/quotes"

// Focus is the part of the screen receiving keys.
type Focus int

const (
	FocusInput Focus = iota
	FocusResults
)

// searchResultMsg carries the outcome of one search back to Update.
type searchResultMsg struct {
	topic   string
	records []quotes.Record
	err     error
}
