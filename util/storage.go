package util

import (
	"sync"
)

/*
 * Storage is the in-memory registry of seen content, used when no
 * database file is configured. Content is keyed by its Digest.
 */
type Storage struct {
	storage map[string][]string
	mtx     sync.Mutex
}

func NewStorage() *Storage {
	return &Storage{
		storage: map[string][]string{},
	}
}

// Add remembers that content was seen under name.
func (s *Storage) Add(name string, content []byte) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	hash := Digest(content)
	s.storage[hash] = append(s.storage[hash], name)
	return nil
}

func (s *Storage) Find(content []byte) []string {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.storage[Digest(content)]
}

func (s *Storage) IsInDB(content []byte) (bool, error) {
	return len(s.Find(content)) > 0, nil
}

func (s *Storage) Remove(content []byte) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	delete(s.storage, Digest(content))
}

func (s *Storage) Close() error {
	return nil
}
