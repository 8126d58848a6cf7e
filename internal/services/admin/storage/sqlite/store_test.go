package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/doubtsclear/console/internal/services/admin/storage"
)

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestPutAndGetSession(t *testing.T) {
	store := openTempStore(t)
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	want := storage.Session{
		ID:         "session-1",
		Token:      "token-1",
		AdminID:    "65f0c0ffee0000000000abcd",
		AdminName:  "Root",
		AdminEmail: "root@example.com",
		CreatedAt:  now,
		ExpiresAt:  now.Add(time.Hour),
	}
	if err := store.PutSession(context.Background(), want); err != nil {
		t.Fatalf("put session: %v", err)
	}

	got, err := store.GetSession(context.Background(), "session-1", now)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got != want {
		t.Fatalf("session = %+v, want %+v", got, want)
	}
}

func TestPutSessionReplacesToken(t *testing.T) {
	store := openTempStore(t)
	now := time.Now().UTC()

	session := storage.Session{ID: "session-1", Token: "old", ExpiresAt: now.Add(time.Hour)}
	if err := store.PutSession(context.Background(), session); err != nil {
		t.Fatalf("put session: %v", err)
	}
	session.Token = "new"
	if err := store.PutSession(context.Background(), session); err != nil {
		t.Fatalf("replace session: %v", err)
	}
	got, err := store.GetSession(context.Background(), "session-1", now)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got.Token != "new" {
		t.Fatalf("token = %q, want %q", got.Token, "new")
	}
}

func TestGetSessionExpiredIsNotFound(t *testing.T) {
	store := openTempStore(t)
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	if err := store.PutSession(context.Background(), storage.Session{ID: "s", Token: "t", ExpiresAt: now}); err != nil {
		t.Fatalf("put session: %v", err)
	}
	if _, err := store.GetSession(context.Background(), "s", now); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get expired = %v, want ErrNotFound", err)
	}
	if _, err := store.GetSession(context.Background(), "missing", now); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get missing = %v, want ErrNotFound", err)
	}
}

func TestDeleteSession(t *testing.T) {
	store := openTempStore(t)
	now := time.Now().UTC()

	if err := store.PutSession(context.Background(), storage.Session{ID: "s", Token: "t", ExpiresAt: now.Add(time.Hour)}); err != nil {
		t.Fatalf("put session: %v", err)
	}
	if err := store.DeleteSession(context.Background(), "s"); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	if _, err := store.GetSession(context.Background(), "s", now); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get deleted = %v, want ErrNotFound", err)
	}
	if err := store.DeleteSession(context.Background(), "unknown"); err != nil {
		t.Fatalf("delete unknown: %v", err)
	}
}

func TestDeleteExpiredSessions(t *testing.T) {
	store := openTempStore(t)
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	sessions := []storage.Session{
		{ID: "expired", Token: "t", ExpiresAt: now.Add(-time.Minute)},
		{ID: "boundary", Token: "t", ExpiresAt: now},
		{ID: "fractional", Token: "t", ExpiresAt: now.Add(500 * time.Millisecond)},
		{ID: "live", Token: "t", ExpiresAt: now.Add(time.Hour)},
	}
	for _, session := range sessions {
		if err := store.PutSession(context.Background(), session); err != nil {
			t.Fatalf("put session %s: %v", session.ID, err)
		}
	}

	removed, err := store.DeleteExpiredSessions(context.Background(), now)
	if err != nil {
		t.Fatalf("delete expired: %v", err)
	}
	if removed != 2 {
		t.Fatalf("removed = %d, want 2", removed)
	}
	var remaining int
	if err := store.sqlDB.QueryRow("SELECT COUNT(*) FROM admin_sessions").Scan(&remaining); err != nil {
		t.Fatalf("count sessions: %v", err)
	}
	if remaining != 2 {
		t.Fatalf("remaining = %d, want 2", remaining)
	}
}

func TestPutSessionValidation(t *testing.T) {
	store := openTempStore(t)
	expires := time.Now().Add(time.Hour)

	tests := []struct {
		name    string
		session storage.Session
	}{
		{name: "missing id", session: storage.Session{Token: "t", ExpiresAt: expires}},
		{name: "missing token", session: storage.Session{ID: "s", ExpiresAt: expires}},
		{name: "missing expiry", session: storage.Session{ID: "s", Token: "t"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := store.PutSession(context.Background(), tc.session); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestNilStoreErrors(t *testing.T) {
	var store *Store
	if err := store.PutSession(context.Background(), storage.Session{ID: "s", Token: "t", ExpiresAt: time.Now()}); err == nil {
		t.Fatal("expected error for nil store")
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close nil store: %v", err)
	}
}

func TestOpenIsIdempotentAcrossRestarts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "admin.db")
	first, err := Open(path)
	if err != nil {
		t.Fatalf("open first: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close first: %v", err)
	}
	second, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	_ = second.Close()
}

func openTempStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "admin.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil && err != sql.ErrConnDone {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}
