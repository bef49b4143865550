package search

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/mapping"
	bleveQuery "github.com/blevesearch/bleve/v2/search/query"

	"github.com/pders01/quip/internal/quotes"
)

type entry struct {
	topic  string
	record quotes.Record
}

// Engine is an in-memory bleve index over one document.
type Engine struct {
	idx     bleve.Index
	entries map[string]entry
}

var (
	_ Searcher     = (*Engine)(nil)
	_ DebugStatser = (*Engine)(nil)
)

// NewEngine indexes every record of doc.
func NewEngine(doc quotes.Document) (*Engine, error) {
	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("creating index: %w", err)
	}

	e := &Engine{idx: idx, entries: make(map[string]entry)}
	batch := idx.NewBatch()
	for topic, records := range doc {
		for i, r := range records {
			id := docID(topic, i)
			e.entries[id] = entry{topic: topic, record: r}
			if err := batch.Index(id, map[string]any{
				"topic":  topic,
				"quote":  r.Quote,
				"author": r.Author,
			}); err != nil {
				return nil, fmt.Errorf("indexing %s: %w", id, err)
			}
		}
	}
	if err := idx.Batch(batch); err != nil {
		return nil, fmt.Errorf("indexing document: %w", err)
	}
	return e, nil
}

func buildIndexMapping() mapping.IndexMapping {
	im := bleve.NewIndexMapping()
	im.DefaultAnalyzer = standard.Name

	dm := bleve.NewDocumentMapping()

	quote := bleve.NewTextFieldMapping()
	quote.Analyzer = standard.Name
	quote.IncludeTermVectors = true

	author := bleve.NewTextFieldMapping()
	author.Analyzer = standard.Name

	topic := bleve.NewTextFieldMapping()
	topic.Analyzer = keyword.Name

	dm.AddFieldMappingsAt("quote", quote)
	dm.AddFieldMappingsAt("author", author)
	dm.AddFieldMappingsAt("topic", topic)

	im.DefaultMapping = dm
	return im
}

// Search matches query terms against quote text (boosted), authors and
// topics. Queries shorter than two characters return nothing.
func (e *Engine) Search(query string, limit int) ([]Hit, error) {
	if len(strings.TrimSpace(query)) < 2 {
		return []Hit{}, nil
	}
	if limit <= 0 {
		limit = 10
	}

	var qs []bleveQuery.Query
	for _, tok := range tokenize(query) {
		qq := bleve.NewMatchQuery(tok)
		qq.SetField("quote")
		qq.SetBoost(3.0)
		qs = append(qs, qq)

		qqp := bleve.NewPrefixQuery(tok)
		qqp.SetField("quote")
		qqp.SetBoost(1.5)
		qs = append(qs, qqp)

		qa := bleve.NewMatchQuery(tok)
		qa.SetField("author")
		qa.SetBoost(2.0)
		qs = append(qs, qa)

		qt := bleve.NewTermQuery(tok)
		qt.SetField("topic")
		qt.SetBoost(1.0)
		qs = append(qs, qt)
	}
	if len(qs) == 0 {
		return []Hit{}, nil
	}

	req := bleve.NewSearchRequestOptions(bleve.NewDisjunctionQuery(qs...), limit, 0, false)
	req.SortBy([]string{"-_score", "_id"})
	res, err := e.idx.Search(req)
	if err != nil {
		return nil, err
	}

	out := make([]Hit, 0, len(res.Hits))
	for _, h := range res.Hits {
		ent, ok := e.entries[h.ID]
		if !ok {
			continue
		}
		out = append(out, Hit{Topic: ent.topic, Record: ent.record, Score: h.Score})
	}
	return out, nil
}

// DocCount reports the number of indexed quotes.
func (e *Engine) DocCount() (int, error) {
	n, err := e.idx.DocCount()
	return int(n), err
}

func (e *Engine) Close() error {
	return e.idx.Close()
}

// tokenize lowercases and splits on anything that is not a letter or digit.
func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func docID(topic string, position int) string {
	return fmt.Sprintf("%s#%04d", topic, position)
}
