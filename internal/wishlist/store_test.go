package wishlist

import (
	"testing"
	"time"
)

func TestToggleAddsThenRemoves(t *testing.T) {
	store := NewStore()
	item := Item{ID: "p1", Name: "Rooibos Tea", Price: 49.99}

	if added := store.Toggle(item); !added {
		t.Fatal("expected first toggle to add the item")
	}
	if store.Count() != 1 {
		t.Fatalf("expected count 1, got %d", store.Count())
	}

	if added := store.Toggle(item); added {
		t.Fatal("expected second toggle to remove the item")
	}
	if store.Count() != 0 {
		t.Fatalf("expected count 0, got %d", store.Count())
	}
}

func TestToggleKeepsInsertionOrder(t *testing.T) {
	store := NewStore()
	store.Toggle(Item{ID: "p1", Name: "Rooibos Tea", Price: 49.99})
	store.Toggle(Item{ID: "p2", Name: "Biltong", Price: 120})
	store.Toggle(Item{ID: "p3", Name: "Amarula", Price: 250})
	store.Toggle(Item{ID: "p2", Name: "Biltong", Price: 120})

	items := store.Items()
	if len(items) != 2 || items[0].ID != "p1" || items[1].ID != "p3" {
		t.Fatalf("unexpected items %+v", items)
	}
}

func TestRemoveItemAndClear(t *testing.T) {
	store := NewStore()
	store.Toggle(Item{ID: "p1", Name: "Rooibos Tea", Price: 49.99})
	store.Toggle(Item{ID: "p2", Name: "Biltong", Price: 120})

	store.RemoveItem("p1")
	store.RemoveItem("missing")
	if store.Count() != 1 {
		t.Fatalf("expected count 1, got %d", store.Count())
	}

	store.Clear()
	if store.Count() != 0 {
		t.Fatalf("expected empty wishlist, got %d", store.Count())
	}
}

func TestRegistryPurgesIdleSessions(t *testing.T) {
	registry := NewRegistry()
	current := time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)
	registry.now = func() time.Time { return current }

	registry.Session("stale").Toggle(Item{ID: "p1", Name: "Rooibos Tea", Price: 49.99})
	current = current.Add(3 * time.Hour)
	registry.Session("fresh")

	if removed := registry.Purge(2 * time.Hour); removed != 1 {
		t.Fatalf("expected 1 purged session, got %d", removed)
	}
	if registry.Session("stale").Count() != 0 {
		t.Fatal("expected stale session to restart empty after purge")
	}
}
