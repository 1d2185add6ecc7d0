package session

import (
	"errors"
	"strconv"
	"sync"
)

// Store owns the current session. It mirrors every mutation into durable
// storage so identity survives a restart, and re-hydrates from storage at
// construction time.
//
// Store is safe for concurrent use, although the client normally drives it
// from a single goroutine.
type Store struct {
	mu      sync.RWMutex
	storage Storage
	current Session
}

// NewStore creates a store over the given durable storage, loading any
// previously persisted session fields. Absent or malformed fields fall back
// to zero values.
func NewStore(storage Storage) (*Store, error) {
	if storage == nil {
		return nil, ErrNoStorage
	}

	s := &Store{storage: storage}
	s.current = Session{
		UserID:   readInt64(storage, KeyUserID),
		Username: readString(storage, KeyUsername),
		Name:     readString(storage, KeyName),
		Token:    readString(storage, KeyToken),
	}
	return s, nil
}

// Current returns a snapshot of the in-memory session.
func (s *Store) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Token returns the persisted bearer token, or "" when none is stored.
// It always reads durable storage so callers observe external removals,
// such as the request pipeline clearing an expired token.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return readString(s.storage, KeyToken)
}

// SetUserInfo replaces the whole session after a successful login. All four
// fields are updated together, in memory and in durable storage.
func (s *Store) SetUserInfo(info UserInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := errors.Join(
		s.storage.Set(KeyUserID, strconv.FormatInt(info.ID, 10)),
		s.storage.Set(KeyUsername, info.Username),
		s.storage.Set(KeyName, info.Name),
		s.storage.Set(KeyToken, info.Token),
	); err != nil {
		return err
	}

	s.current = Session{
		UserID:   info.ID,
		Username: info.Username,
		Name:     info.Name,
		Token:    info.Token,
	}
	return nil
}

// SetToken updates only the bearer token, leaving identity fields intact.
func (s *Store) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Set(KeyToken, token); err != nil {
		return err
	}
	s.current.Token = token
	return nil
}

// ClearToken removes only the persisted token. Identity fields stay in
// place; the next guarded navigation will route to login. Used by the
// request pipeline when the backend reports the session as expired.
func (s *Store) ClearToken() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Delete(KeyToken); err != nil {
		return err
	}
	s.current.Token = ""
	return nil
}

// Logout resets the in-memory session to zero values and removes all
// persisted keys.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := errors.Join(
		s.storage.Delete(KeyUserID),
		s.storage.Delete(KeyUsername),
		s.storage.Delete(KeyName),
		s.storage.Delete(KeyToken),
	); err != nil {
		return err
	}

	s.current = Session{}
	return nil
}

func readString(storage Storage, key string) string {
	value, err := storage.Get(key)
	if err != nil {
		return ""
	}
	return value
}

func readInt64(storage Storage, key string) int64 {
	value, err := storage.Get(key)
	if err != nil {
		return 0
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
