// Package search indexes the quote document for full-text lookups across
// quote text, authors and topics.
package search

import "github.com/pders01/quip/internal/quotes"

// Hit is one matching quote.
type Hit struct {
	Topic  string
	Record quotes.Record
	Score  float64
}

// Searcher is the search API used by the command line.
type Searcher interface {
	Search(query string, limit int) ([]Hit, error)
}

// DebugStatser reports index statistics for diagnostics.
type DebugStatser interface {
	DocCount() (int, error)
}
