// Package source provides the ways quip can retrieve a quote document.
package source

import (
	"fmt"
	"strings"
	"time"
)

// Options configures the built-in providers.
type Options struct {
	// HTTPTimeout of zero disables the client timeout.
	HTTPTimeout  time.Duration
	UserAgent    string
	AllowPrivate bool

	// DBTimeout bounds how long a bolt source waits for the database lock.
	DBTimeout time.Duration
}

// Provider opens sources for the locations it understands.
type Provider interface {
	Name() string
	CanHandle(location string) bool
	Open(location string) (Source, error)
	// Priority breaks ties when several providers accept a location.
	Priority() int
}

// Registry picks a provider for a location.
type Registry struct {
	providers []Provider
}

func NewRegistry() *Registry {
	return &Registry{}
}

// DefaultRegistry registers the http, file and bolt providers.
func DefaultRegistry(opts Options) *Registry {
	r := NewRegistry()
	r.Register(&httpProvider{opts: opts})
	r.Register(&boltProvider{opts: opts})
	r.Register(&fileProvider{})
	return r
}

func (r *Registry) Register(p Provider) {
	r.providers = append(r.providers, p)
}

// Find returns the highest priority provider accepting location, or nil.
func (r *Registry) Find(location string) Provider {
	var best Provider
	highest := -1
	for _, p := range r.providers {
		if p.CanHandle(location) && p.Priority() > highest {
			best = p
			highest = p.Priority()
		}
	}
	return best
}

// Open resolves location to a Source.
func (r *Registry) Open(location string) (Source, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, fmt.Errorf("no document location configured")
	}
	p := r.Find(location)
	if p == nil {
		return nil, fmt.Errorf("no source can handle %q", location)
	}
	src, err := p.Open(location)
	if err != nil {
		return nil, fmt.Errorf("%s source: %w", p.Name(), err)
	}
	return src, nil
}

// Providers returns the registered providers.
func (r *Registry) Providers() []Provider {
	return append([]Provider(nil), r.providers...)
}

func hasScheme(location, scheme string) bool {
	return strings.HasPrefix(strings.ToLower(location), scheme+"://")
}
