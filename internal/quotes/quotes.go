// Package quotes holds the quote document model and the topic search flow
// shared by the TUI and the command line.
package quotes

import (
	"errors"
	"sort"
	"strings"
	"unicode/utf8"
)

// MinTopicLength is the minimum number of characters a topic must have
// after surrounding whitespace is trimmed.
const MinTopicLength = 2

// User-facing messages. The underlying causes never reach the screen.
const (
	MsgTopicTooShort = "Topic must be at least 2 characters."
	MsgLoadFailed    = "Failed to load quotes."
	MsgNotFound      = "No quotes found for this topic."
)

var (
	ErrTopicTooShort = errors.New("topic too short")
	ErrNotFound      = errors.New("no quotes for topic")
	ErrLoad          = errors.New("loading quote document")
)

// Record is a single quote and its author.
type Record struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

// Document maps a lowercase topic to its quotes in document order.
type Document map[string][]Record

// ValidateTopic trims the input and checks its length. The trimmed topic is
// returned so callers search with exactly what was validated.
func ValidateTopic(input string) (string, error) {
	topic := strings.TrimSpace(input)
	if utf8.RuneCountInString(topic) < MinTopicLength {
		return "", ErrTopicTooShort
	}
	return topic, nil
}

// NormalizeTopic returns the document key for a topic.
func NormalizeTopic(topic string) string {
	return strings.ToLower(strings.TrimSpace(topic))
}

// Lookup returns the quotes stored under topic. An absent key and an empty
// list both report ErrNotFound.
func (d Document) Lookup(topic string) ([]Record, error) {
	records, ok := d[NormalizeTopic(topic)]
	if !ok || len(records) == 0 {
		return nil, ErrNotFound
	}
	out := make([]Record, len(records))
	copy(out, records)
	return out, nil
}

// Topics returns the document keys in sorted order.
func (d Document) Topics() []string {
	topics := make([]string, 0, len(d))
	for topic := range d {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics
}

// UserMessage maps a search error to the text shown to the user.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTopicTooShort):
		return MsgTopicTooShort
	case errors.Is(err, ErrNotFound):
		return MsgNotFound
	default:
		return MsgLoadFailed
	}
}
