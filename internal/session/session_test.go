package session

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func tokenWithExp(exp int64) string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(fmt.Sprintf(`{"exp":%d}`, exp)))
	return header + "." + payload + ".sig"
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "session.json")
	store := NewFileStore(path)

	// Empty store loads as absent.
	sess, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, sess)

	saved := &Session{
		AccessToken: "token-abc",
		Username:    "picklekim",
		Name:        "Kim",
		AccountType: "MEMBER",
	}
	require.NoError(t, store.Save(saved))

	// The credential file must be owner-only.
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, saved, loaded)

	require.NoError(t, store.Clear())
	sess, err = store.Load()
	require.NoError(t, err)
	require.Nil(t, sess)

	// Clearing twice is fine.
	require.NoError(t, store.Clear())
}

func TestFileStore_IncompleteSessionIsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"username":"picklekim"}`), 0600))

	sess, err := NewFileStore(path).Load()
	require.NoError(t, err)
	require.Nil(t, sess)
}

func TestMemoryStore_CopiesOnLoad(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save(&Session{AccessToken: "t", Username: "u"}))

	first, err := store.Load()
	require.NoError(t, err)
	first.Username = "mutated"

	second, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, "u", second.Username)
}

func TestManager_CurrentKeepsLiveSession(t *testing.T) {
	now := time.Unix(1770000000, 0)
	store := NewMemoryStore()
	mgr := NewManagerWithClock(store, 30*time.Second, func() time.Time { return now })

	require.NoError(t, mgr.SignIn(Session{
		AccessToken: tokenWithExp(now.Unix() + 3600),
		Username:    "picklekim",
	}))

	sess, err := mgr.Current()
	require.NoError(t, err)
	require.NotNil(t, sess)
	require.Equal(t, "picklekim", sess.Username)
}

func TestManager_CurrentClearsExpiredSession(t *testing.T) {
	now := time.Unix(1770000000, 0)
	store := NewMemoryStore()
	mgr := NewManagerWithClock(store, 30*time.Second, func() time.Time { return now })

	require.NoError(t, mgr.SignIn(Session{
		AccessToken: tokenWithExp(now.Unix() - 10),
		Username:    "picklekim",
	}))

	sess, err := mgr.Current()
	require.NoError(t, err)
	require.Nil(t, sess)

	// The expired session must be gone from the underlying store too.
	stored, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, stored)
}

func TestManager_CurrentKeepsUndecodableToken(t *testing.T) {
	// The bare expiry check fails open; a token we cannot decode is kept
	// and left for the backend to reject.
	now := time.Unix(1770000000, 0)
	store := NewMemoryStore()
	mgr := NewManagerWithClock(store, 30*time.Second, func() time.Time { return now })

	require.NoError(t, mgr.SignIn(Session{AccessToken: "opaque-token", Username: "picklekim"}))

	sess, err := mgr.Current()
	require.NoError(t, err)
	require.NotNil(t, sess)
}

func TestManager_SignOut(t *testing.T) {
	store := NewMemoryStore()
	mgr := NewManager(store)

	require.NoError(t, mgr.SignIn(Session{AccessToken: "t", Username: "u"}))
	require.NoError(t, mgr.SignOut())

	sess, err := mgr.Current()
	require.NoError(t, err)
	require.Nil(t, sess)
}
