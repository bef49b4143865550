package source

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pders01/quip/internal/quotes"
	"github.com/pders01/quip/internal/validation"
)

// FileSource reads the document from a local JSON file on every Load.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Location() string { return s.path }

func (s *FileSource) Load(ctx context.Context) (quotes.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}
	defer f.Close()
	return quotes.Decode(f)
}

type fileProvider struct{}

func (p *fileProvider) Name() string  { return "file" }
func (p *fileProvider) Priority() int { return 0 }

// CanHandle accepts file:// locations and anything without a scheme.
func (p *fileProvider) CanHandle(location string) bool {
	return hasScheme(location, "file") || !strings.Contains(location, "://")
}

func (p *fileProvider) Open(location string) (Source, error) {
	if hasScheme(location, "file") {
		location = location[len("file://"):]
	}
	path, err := validation.NewPathValidator().ValidateFile(location)
	if err != nil {
		return nil, err
	}
	return NewFileSource(path), nil
}
