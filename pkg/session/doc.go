// Package session is the single source of truth for the logged-in user.
//
// A Store keeps the current identity (user id, username, display name and
// bearer token) in memory and mirrors every mutation into a durable Storage
// so that the session survives a restart. Storage is a plain string-keyed
// key-value abstraction; FileStorage persists one file per key under a state
// directory, MemoryStorage backs tests and fakes.
//
// The store performs no network access. The token is re-read from durable
// storage on every Token call, so components that consume it (the API
// request pipeline, the navigation guard) always observe the persisted
// value, including removals made behind the store's back.
//
// # Usage
//
//	storage, _ := session.NewFileStorage(stateDir)
//	store, _ := session.NewStore(storage)
//
//	// after a successful login
//	_ = store.SetUserInfo(session.UserInfo{
//		ID:       resp.ID,
//		Username: resp.Username,
//		Name:     resp.Name,
//		Token:    resp.Token,
//	})
//
//	// on logout
//	_ = store.Logout()
package session
