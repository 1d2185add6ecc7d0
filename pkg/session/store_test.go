package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinetick/cinetick/pkg/session"
)

func TestNewStore_EmptyStorage(t *testing.T) {
	t.Parallel()

	store, err := session.NewStore(session.NewMemoryStorage())
	require.NoError(t, err)

	current := store.Current()
	assert.Equal(t, int64(0), current.UserID)
	assert.Empty(t, current.Username)
	assert.Empty(t, current.Name)
	assert.Empty(t, current.Token)
	assert.False(t, current.IsAuthenticated())
}

func TestNewStore_NilStorage(t *testing.T) {
	t.Parallel()

	store, err := session.NewStore(nil)
	assert.Nil(t, store)
	assert.ErrorIs(t, err, session.ErrNoStorage)
}

func TestNewStore_HydratesFromStorage(t *testing.T) {
	t.Parallel()

	storage := session.NewMemoryStorage()
	require.NoError(t, storage.Set(session.KeyUserID, "42"))
	require.NoError(t, storage.Set(session.KeyUsername, "alice"))
	require.NoError(t, storage.Set(session.KeyName, "Alice"))
	require.NoError(t, storage.Set(session.KeyToken, "tok-abc"))

	store, err := session.NewStore(storage)
	require.NoError(t, err)

	current := store.Current()
	assert.Equal(t, int64(42), current.UserID)
	assert.Equal(t, "alice", current.Username)
	assert.Equal(t, "Alice", current.Name)
	assert.Equal(t, "tok-abc", current.Token)
	assert.True(t, current.IsAuthenticated())
}

func TestNewStore_MalformedUserID(t *testing.T) {
	t.Parallel()

	storage := session.NewMemoryStorage()
	require.NoError(t, storage.Set(session.KeyUserID, "not-a-number"))

	store, err := session.NewStore(storage)
	require.NoError(t, err)
	assert.Equal(t, int64(0), store.Current().UserID)
}

func TestStore_SetUserInfo(t *testing.T) {
	t.Parallel()

	storage := session.NewMemoryStorage()
	store, err := session.NewStore(storage)
	require.NoError(t, err)

	require.NoError(t, store.SetUserInfo(session.UserInfo{
		ID:       7,
		Username: "alice",
		Name:     "Alice",
		Token:    "tok-7",
	}))

	current := store.Current()
	assert.Equal(t, int64(7), current.UserID)
	assert.Equal(t, "alice", current.Username)
	assert.Equal(t, "Alice", current.Name)
	assert.Equal(t, "tok-7", current.Token)

	// Every field is mirrored into durable storage.
	for key, want := range map[string]string{
		session.KeyUserID:   "7",
		session.KeyUsername: "alice",
		session.KeyName:     "Alice",
		session.KeyToken:    "tok-7",
	} {
		got, err := storage.Get(key)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestStore_SetToken(t *testing.T) {
	t.Parallel()

	storage := session.NewMemoryStorage()
	store, err := session.NewStore(storage)
	require.NoError(t, err)

	require.NoError(t, store.SetUserInfo(session.UserInfo{ID: 1, Username: "u", Name: "n", Token: "old"}))
	require.NoError(t, store.SetToken("refreshed"))

	assert.Equal(t, "refreshed", store.Token())
	current := store.Current()
	assert.Equal(t, "refreshed", current.Token)
	assert.Equal(t, "u", current.Username)
}

func TestStore_Token_ReadsStorage(t *testing.T) {
	t.Parallel()

	storage := session.NewMemoryStorage()
	store, err := session.NewStore(storage)
	require.NoError(t, err)
	require.NoError(t, store.SetToken("tok"))

	// Remove the token behind the store's back; Token must observe it.
	require.NoError(t, storage.Delete(session.KeyToken))
	assert.Empty(t, store.Token())
}

func TestStore_ClearToken(t *testing.T) {
	t.Parallel()

	storage := session.NewMemoryStorage()
	store, err := session.NewStore(storage)
	require.NoError(t, err)
	require.NoError(t, store.SetUserInfo(session.UserInfo{ID: 5, Username: "u", Name: "n", Token: "t"}))

	require.NoError(t, store.ClearToken())

	_, err = storage.Get(session.KeyToken)
	assert.ErrorIs(t, err, session.ErrKeyNotFound)

	// Identity fields are untouched.
	current := store.Current()
	assert.Equal(t, int64(5), current.UserID)
	assert.Equal(t, "u", current.Username)
	assert.Empty(t, current.Token)
}

func TestStore_Logout(t *testing.T) {
	t.Parallel()

	storage := session.NewMemoryStorage()
	store, err := session.NewStore(storage)
	require.NoError(t, err)
	require.NoError(t, store.SetUserInfo(session.UserInfo{ID: 9, Username: "bob", Name: "Bob", Token: "tok"}))

	require.NoError(t, store.Logout())

	assert.Equal(t, session.Session{}, store.Current())
	for _, key := range []string{session.KeyUserID, session.KeyUsername, session.KeyName, session.KeyToken} {
		_, err := storage.Get(key)
		assert.ErrorIs(t, err, session.ErrKeyNotFound, "key %s should be absent", key)
	}
}

func TestStore_Logout_Idempotent(t *testing.T) {
	t.Parallel()

	store, err := session.NewStore(session.NewMemoryStorage())
	require.NoError(t, err)

	require.NoError(t, store.Logout())
	require.NoError(t, store.Logout())
	assert.Equal(t, session.Session{}, store.Current())
}
