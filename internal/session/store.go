// Package session is the client's credential store: the persisted
// (token, user) pair every view and the HTTP client read.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// User is the profile half of a session.
type User struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Pincode string `json:"pincode"`
}

// Session is an authenticated (token, user) pair.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Store persists the session to a single JSON file. Token and user are
// written together in one atomic replace, so no reader ever observes one
// without the other.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Set persists both token and user.
func (s *Store) Set(token string, user User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := Session{Token: token, User: user}
	data, err := json.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	dir := filepath.Dir(s.path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("create session file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close session file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

// Get returns the current session. ok is false when no token is stored;
// a user without a token does not count as a session.
func (s *Store) Get() (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return Session{}, false
	}
	var doc Session
	if err := json.Unmarshal(data, &doc); err != nil {
		return Session{}, false
	}
	if doc.Token == "" {
		return Session{}, false
	}
	return doc, true
}

// Token returns just the bearer token, empty when unauthenticated.
func (s *Store) Token() string {
	doc, ok := s.Get()
	if !ok {
		return ""
	}
	return doc.Token
}

// Clear removes both token and user.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
