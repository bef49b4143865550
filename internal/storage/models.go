package storage

import (
	"time"
)

// ImportInfo describes the document currently held in the store.
type ImportInfo struct {
	Origin     string    `json:"origin"`
	ImportedAt time.Time `json:"imported_at"`
	Topics     int       `json:"topics"`
	Quotes     int       `json:"quotes"`
}
