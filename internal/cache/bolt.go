package cache

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketLibrary = []byte("library")

// BoltStore persists entries in a bbolt file. Reads are promoted into an
// in-memory map so repeated lookups skip the file.
type BoltStore struct {
	db *bolt.DB

	mu  sync.RWMutex
	hot map[string][]byte
}

var _ Store = (*BoltStore)(nil)

// OpenBolt opens (or creates) the bbolt file at path.
func OpenBolt(path string) (*BoltStore, error) {
	if path == "" {
		return nil, errors.New("bolt path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt db: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketLibrary)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}
	return &BoltStore{db: db, hot: make(map[string][]byte)}, nil
}

func (s *BoltStore) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	if v, ok := s.hot[key]; ok {
		s.mu.RUnlock()
		return v, true, nil
	}
	s.mu.RUnlock()

	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketLibrary).Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if data == nil {
		return nil, false, nil
	}

	s.mu.Lock()
	s.hot[key] = data
	s.mu.Unlock()
	return data, true, nil
}

func (s *BoltStore) Put(key string, value []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketLibrary).Put([]byte(key), value)
	})
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.hot[key] = append([]byte(nil), value...)
	s.mu.Unlock()
	return nil
}

func (s *BoltStore) Delete(key string) error {
	s.mu.Lock()
	delete(s.hot, key)
	s.mu.Unlock()
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketLibrary).Delete([]byte(key))
	})
}

func (s *BoltStore) DeletePrefix(prefix string) (int, error) {
	s.mu.Lock()
	for k := range s.hot {
		if strings.HasPrefix(k, prefix) {
			delete(s.hot, k)
		}
	}
	s.mu.Unlock()

	n := 0
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketLibrary)
		p := []byte(prefix)
		var doomed [][]byte
		c := b.Cursor()
		for k, _ := c.Seek(p); k != nil && bytes.HasPrefix(k, p); k, _ = c.Next() {
			doomed = append(doomed, append([]byte(nil), k...))
		}
		for _, k := range doomed {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		n = len(doomed)
		return nil
	})
	return n, err
}

// Each visits entries in key order.
func (s *BoltStore) Each(fn func(key string, value []byte) error) error {
	return s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketLibrary).ForEach(func(k, v []byte) error {
			return fn(string(k), v)
		})
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
