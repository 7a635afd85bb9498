package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// persistedSession is the on-disk document. Field names are the fixed
// storage keys the console has always used.
type persistedSession struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// FileStore keeps the session in a JSON file so it survives restarts.
type FileStore struct {
	path string

	mu      sync.RWMutex
	current Session
}

// NewFileStore builds a store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the persisted session. Malformed content (including the
// literal "undefined" some writers leave behind) yields an empty session
// and removes the stale file.
func (s *FileStore) Load() (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		s.current = Session{}
		return s.current, nil
	}

	if string(raw) == "undefined" {
		_ = os.Remove(s.path)
		s.current = Session{}
		return s.current, nil
	}

	var doc persistedSession
	if err := json.Unmarshal(raw, &doc); err != nil || doc.User == nil {
		_ = os.Remove(s.path)
		s.current = Session{}
		return s.current, nil
	}

	s.current = Session{Token: doc.Token, User: doc.User}
	return s.current, nil
}

// Current returns the in-memory session.
func (s *FileStore) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set persists token and user atomically via a temp-file rename.
func (s *FileStore) Set(token string, user User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = Session{Token: token, User: &user}

	raw, err := json.Marshal(persistedSession{Token: token, User: &user})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Clear removes the persisted session and resets the in-memory copy.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = Session{}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
