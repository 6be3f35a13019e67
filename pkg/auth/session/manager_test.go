package session

import (
	"context"
	"testing"
	"time"

	redislib "github.com/redis/go-redis/v9"
)

type memStore struct {
	values map[string]string
}

func newMemStore() *memStore {
	return &memStore{values: map[string]string{}}
}

func (m *memStore) Set(_ context.Context, key string, value any, _ time.Duration) error {
	m.values[key] = value.(string)
	return nil
}

func (m *memStore) Get(_ context.Context, key string) (string, error) {
	if v, ok := m.values[key]; ok {
		return v, nil
	}
	return "", redislib.Nil
}

func (m *memStore) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.values, k)
	}
	return nil
}

type prefixKeyer struct{}

func (prefixKeyer) SessionKey(accessID string) string { return "mm:session:access:" + accessID }

func testManager() (*Manager, *memStore) {
	store := newMemStore()
	return &Manager{store: store, keyer: prefixKeyer{}, ttl: time.Hour}, store
}

func TestGrantThenHasSession(t *testing.T) {
	mgr, _ := testManager()
	ctx := context.Background()

	if err := mgr.Grant(ctx, "jti-1"); err != nil {
		t.Fatalf("grant: %v", err)
	}

	ok, err := mgr.HasSession(ctx, "jti-1")
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if !ok {
		t.Fatal("expected session to be live")
	}
}

func TestHasSessionMissingIsFalseNotError(t *testing.T) {
	mgr, _ := testManager()

	ok, err := mgr.HasSession(context.Background(), "unknown")
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if ok {
		t.Fatal("expected no session")
	}
}

func TestRevokeRemovesSession(t *testing.T) {
	mgr, _ := testManager()
	ctx := context.Background()

	if err := mgr.Grant(ctx, "jti-2"); err != nil {
		t.Fatalf("grant: %v", err)
	}
	if err := mgr.Revoke(ctx, "jti-2"); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	ok, err := mgr.HasSession(ctx, "jti-2")
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if ok {
		t.Fatal("expected session revoked")
	}
}

func TestBlankAccessIDRejected(t *testing.T) {
	mgr, _ := testManager()
	if err := mgr.Grant(context.Background(), "  "); err == nil {
		t.Fatal("expected error for blank access id")
	}
	if _, err := mgr.HasSession(context.Background(), ""); err == nil {
		t.Fatal("expected error for blank access id")
	}
}
