package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pders01/quip/internal/quotes"
	"github.com/pders01/quip/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Open(t *testing.T) {
	r := DefaultRegistry(Options{AllowPrivate: true, DBTimeout: time.Second})

	src, err := r.Open("http://localhost:3000/quotes.json")
	require.NoError(t, err)
	assert.IsType(t, &HTTPSource{}, src)
	assert.Equal(t, "http://localhost:3000/quotes.json", src.Location())

	src, err = r.Open("HTTPS://quotes.dev/quotes.json")
	require.NoError(t, err)
	assert.IsType(t, &HTTPSource{}, src)

	dir := t.TempDir()
	src, err = r.Open(filepath.Join(dir, "quotes.json"))
	require.NoError(t, err)
	assert.IsType(t, &FileSource{}, src)

	src, err = r.Open("file://" + filepath.Join(dir, "quotes.json"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "quotes.json"), src.Location())

	src, err = r.Open("bolt://" + filepath.Join(dir, "quip.db"))
	require.NoError(t, err)
	assert.IsType(t, &BoltSource{}, src)
}

func TestRegistry_OpenErrors(t *testing.T) {
	strict := DefaultRegistry(Options{})

	_, err := strict.Open("")
	assert.Error(t, err)

	_, err = strict.Open("http://localhost:3000/quotes.json")
	assert.Error(t, err, "strict registry rejects localhost")

	_, err = strict.Open("ftp://quotes.dev/quotes.json")
	assert.Error(t, err, "no provider for ftp")

	_, err = NewRegistry().Open("http://quotes.dev/quotes.json")
	assert.Error(t, err, "empty registry")
}

type fakeProvider struct {
	name     string
	priority int
}

func (p *fakeProvider) Name() string                { return p.name }
func (p *fakeProvider) Priority() int               { return p.priority }
func (p *fakeProvider) CanHandle(string) bool       { return true }
func (p *fakeProvider) Open(string) (Source, error) { return NewMemorySource(nil), nil }

func TestRegistry_FindPrefersPriority(t *testing.T) {
	r := NewRegistry()
	low := &fakeProvider{name: "low", priority: 1}
	high := &fakeProvider{name: "high", priority: 5}
	r.Register(low)
	r.Register(high)

	assert.Equal(t, high, r.Find("anything"))
	assert.Len(t, r.Providers(), 2)
}

func TestFileSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"focus":[{"quote":"One thing.","author":"D"}]}`), 0o644))

	src := NewFileSource(path)
	doc, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, quotes.Document{"focus": {{Quote: "One thing.", Author: "D"}}}, doc)

	// Edits are picked up by the next load.
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))
	doc, err = src.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, doc)

	_, err = NewFileSource(filepath.Join(t.TempDir(), "missing.json")).Load(context.Background())
	assert.Error(t, err)
}

func TestBoltSource_Load(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "quip.db")
	src := NewBoltSource(dbPath, time.Second)

	_, err := src.Load(context.Background())
	assert.Error(t, err, "database does not exist yet")

	store, err := storage.NewStore(dbPath, time.Second)
	require.NoError(t, err)
	doc := quotes.Document{"success": {{Quote: "Do it.", Author: "A"}}}
	_, err = store.ImportDocument(doc, "test")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	got, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, doc, got)
	assert.Equal(t, "bolt://"+dbPath, src.Location())
}

func TestMemorySource(t *testing.T) {
	doc := quotes.Document{"success": {{Quote: "Do it.", Author: "A"}}}
	src := NewMemorySource(doc)

	got, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, doc, got)
	assert.Equal(t, 1, src.Loads())

	failing := NewFailingSource(assert.AnError)
	_, err = failing.Load(context.Background())
	assert.ErrorIs(t, err, assert.AnError)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = src.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
