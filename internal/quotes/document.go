package quotes

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pders01/quip/internal/debuglog"
)

type rawRecord struct {
	Quote  *string `json:"quote"`
	Author *string `json:"author"`
}

// Decode reads a quote document. The body must be a JSON object; a value
// that is not an array of records with string quote and author fields is
// dropped so that its topic reads as not found while the rest of the
// document stays usable.
func Decode(r io.Reader) (Document, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return Parse(body)
}

// Parse decodes a document already held in memory. See Decode.
func Parse(body []byte) (Document, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("decoding document: not a JSON object")
	}

	doc := make(Document, len(raw))
	for topic, value := range raw {
		records, ok := parseRecords(value)
		if !ok {
			debuglog.WithFields(map[string]interface{}{"topic": topic}).
				Warnf("skipping malformed topic value")
			continue
		}
		doc[topic] = records
	}
	return doc, nil
}

func parseRecords(value json.RawMessage) ([]Record, bool) {
	var raws []rawRecord
	if err := json.Unmarshal(value, &raws); err != nil {
		return nil, false
	}
	records := make([]Record, 0, len(raws))
	for _, r := range raws {
		if r.Quote == nil || r.Author == nil {
			return nil, false
		}
		records = append(records, Record{Quote: *r.Quote, Author: *r.Author})
	}
	return records, true
}

// Encode writes doc as indented JSON.
func Encode(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
