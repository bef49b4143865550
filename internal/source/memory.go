package source

import (
	"context"
	"sync"

	"github.com/pders01/quip/internal/quotes"
)

// MemorySource serves a fixed document, or a fixed error, from memory.
type MemorySource struct {
	mu    sync.Mutex
	doc   quotes.Document
	err   error
	loads int
}

func NewMemorySource(doc quotes.Document) *MemorySource {
	return &MemorySource{doc: doc}
}

// NewFailingSource returns a source whose every Load fails with err.
func NewFailingSource(err error) *MemorySource {
	return &MemorySource{err: err}
}

func (s *MemorySource) Location() string { return "memory://quotes.json" }

func (s *MemorySource) Load(ctx context.Context) (quotes.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.doc, nil
}

// Loads reports how many times Load was called.
func (s *MemorySource) Loads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loads
}
