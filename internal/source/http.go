package source

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pders01/quip/internal/quotes"
	"github.com/pders01/quip/internal/validation"
)

// HTTPSource fetches the document with a plain GET on every Load.
type HTTPSource struct {
	url       string
	userAgent string
	client    *http.Client
}

func NewHTTPSource(url string, opts Options) *HTTPSource {
	return &HTTPSource{
		url:       url,
		userAgent: opts.UserAgent,
		client: &http.Client{
			Timeout: opts.HTTPTimeout,
		},
	}
}

func (s *HTTPSource) Location() string { return s.url }

func (s *HTTPSource) Load(ctx context.Context) (quotes.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("HTTP error: %d", resp.StatusCode)
	}

	return quotes.Decode(resp.Body)
}

type httpProvider struct {
	opts Options
}

func (p *httpProvider) Name() string  { return "http" }
func (p *httpProvider) Priority() int { return 10 }

func (p *httpProvider) CanHandle(location string) bool {
	return hasScheme(location, "http") || hasScheme(location, "https")
}

func (p *httpProvider) Open(location string) (Source, error) {
	v := validation.NewSourceURLValidator()
	if p.opts.AllowPrivate {
		v = validation.NewPermissiveSourceURLValidator()
	}
	url, err := v.ValidateAndNormalize(location)
	if err != nil {
		return nil, err
	}
	return NewHTTPSource(url, p.opts), nil
}
