package source

import (
	"context"
	"time"

	"github.com/pders01/quip/internal/quotes"
	"github.com/pders01/quip/internal/storage"
	"github.com/pders01/quip/internal/validation"
)

// BoltSource reads a document imported into a bbolt database. The database
// is opened read-only for each Load and closed afterwards.
type BoltSource struct {
	path    string
	timeout time.Duration
}

func NewBoltSource(path string, timeout time.Duration) *BoltSource {
	return &BoltSource{path: path, timeout: timeout}
}

func (s *BoltSource) Location() string { return "bolt://" + s.path }

func (s *BoltSource) Load(ctx context.Context) (quotes.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	store, err := storage.OpenReadOnly(s.path, s.timeout)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return store.Document()
}

type boltProvider struct {
	opts Options
}

func (p *boltProvider) Name() string  { return "bolt" }
func (p *boltProvider) Priority() int { return 10 }

func (p *boltProvider) CanHandle(location string) bool {
	return hasScheme(location, "bolt")
}

func (p *boltProvider) Open(location string) (Source, error) {
	path, err := validation.NewPathValidator().ValidateFile(location[len("bolt://"):])
	if err != nil {
		return nil, err
	}
	return NewBoltSource(path, p.opts.DBTimeout), nil
}
