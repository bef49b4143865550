package quotes

import (
	"context"
	"fmt"

	"github.com/pders01/quip/internal/debuglog"
)

// Source retrieves the quote document. Implementations fetch a fresh copy
// on every call.
type Source interface {
	Load(ctx context.Context) (Document, error)
	Location() string
}

// Searcher runs one topic search against a Source.
type Searcher struct {
	source Source
}

func NewSearcher(source Source) *Searcher {
	return &Searcher{source: source}
}

// Source returns the document source the searcher reads from.
func (s *Searcher) Source() Source {
	return s.source
}

// Search validates the topic, loads the document and looks the topic up.
// Errors wrap ErrTopicTooShort, ErrLoad or ErrNotFound. A panic while
// loading or looking up is reported as ErrLoad.
func (s *Searcher) Search(ctx context.Context, input string) (records []Record, err error) {
	topic, err := ValidateTopic(input)
	if err != nil {
		return nil, err
	}

	log := debuglog.WithFields(map[string]interface{}{
		"location": s.source.Location(),
		"topic":    topic,
	})

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("search panicked: %v", r)
			records = nil
			err = fmt.Errorf("%w: %v", ErrLoad, r)
		}
	}()

	doc, loadErr := s.source.Load(ctx)
	if loadErr != nil {
		log.Errorf("failed to load quotes: %v", loadErr)
		return nil, fmt.Errorf("%w: %w", ErrLoad, loadErr)
	}

	records, err = doc.Lookup(topic)
	if err != nil {
		log.Infof("no quotes found")
		return nil, err
	}
	log.Debugf("found %d quotes", len(records))
	return records, nil
}
