package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pders01/quip/internal/quotes"
	bolt "go.etcd.io/bbolt"
)

var (
	topicsBucket = []byte("topics")
	metaBucket   = []byte("metadata")

	importInfoKey = []byte("import")
)

// ErrEmpty is returned when no document has been imported yet.
var ErrEmpty = errors.New("no quote document imported")

// Store keeps one imported quote document in a bbolt database.
type Store struct {
	db *bolt.DB
}

func NewStore(dbPath string, timeout time.Duration) (*Store, error) {
	if timeout <= 0 {
		timeout = time.Second
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := bolt.Open(dbPath, 0o600, &bolt.Options{Timeout: timeout})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{topicsBucket, metaBucket} {
			if _, createErr := tx.CreateBucketIfNotExists(bucket); createErr != nil {
				return createErr
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating buckets: %w", err)
	}

	return &Store{db: db}, nil
}

// OpenReadOnly opens an existing database without taking the write lock,
// so several readers can share it.
func OpenReadOnly(dbPath string, timeout time.Duration) (*Store, error) {
	if timeout <= 0 {
		timeout = time.Second
	}
	db, err := bolt.Open(dbPath, 0o600, &bolt.Options{Timeout: timeout, ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// ImportDocument replaces the stored document with doc.
func (s *Store) ImportDocument(doc quotes.Document, origin string) (*ImportInfo, error) {
	info := &ImportInfo{
		Origin:     origin,
		ImportedAt: time.Now(),
		Topics:     len(doc),
	}
	for _, records := range doc {
		info.Quotes += len(records)
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(topicsBucket); err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
			return err
		}
		b, err := tx.CreateBucket(topicsBucket)
		if err != nil {
			return err
		}
		for topic, records := range doc {
			data, err := json.Marshal(records)
			if err != nil {
				return err
			}
			if err := b.Put([]byte(topic), data); err != nil {
				return err
			}
		}

		data, err := json.Marshal(info)
		if err != nil {
			return err
		}
		return tx.Bucket(metaBucket).Put(importInfoKey, data)
	})
	if err != nil {
		return nil, fmt.Errorf("importing document: %w", err)
	}
	return info, nil
}

// Document reads the whole stored document.
func (s *Store) Document() (quotes.Document, error) {
	doc := quotes.Document{}
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(topicsBucket)
		if b == nil {
			return ErrEmpty
		}
		return b.ForEach(func(k, v []byte) error {
			var records []quotes.Record
			if err := json.Unmarshal(v, &records); err != nil {
				return fmt.Errorf("topic %q: %w", k, err)
			}
			doc[string(k)] = records
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	if len(doc) == 0 {
		return nil, ErrEmpty
	}
	return doc, nil
}

// Info returns metadata about the last import.
func (s *Store) Info() (*ImportInfo, error) {
	var info ImportInfo
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(metaBucket)
		if b == nil {
			return ErrEmpty
		}
		data := b.Get(importInfoKey)
		if data == nil {
			return ErrEmpty
		}
		return json.Unmarshal(data, &info)
	})
	if err != nil {
		return nil, err
	}
	return &info, nil
}
