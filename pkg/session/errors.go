package session

import "errors"

var (
	// ErrKeyNotFound indicates the requested key has no persisted value
	ErrKeyNotFound = errors.New("session.key_not_found")

	// ErrInvalidKey indicates a storage key that is empty or not a plain name
	ErrInvalidKey = errors.New("session.invalid_key")

	// ErrNoStorage indicates a Store was constructed without durable storage
	ErrNoStorage = errors.New("session.no_storage")
)
