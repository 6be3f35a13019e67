package cart

import (
	"testing"
	"time"
)

func TestAddItemIncrementsExistingLine(t *testing.T) {
	store := NewStore()
	store.AddItem(ItemInput{ID: "p1", Name: "Rooibos Tea", Price: 49.99})
	store.AddItem(ItemInput{ID: "p2", Name: "Biltong", Price: 120})
	store.AddItem(ItemInput{ID: "p1", Name: "Rooibos Tea", Price: 49.99})

	items := store.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(items))
	}
	if items[0].ID != "p1" || items[0].Quantity != 2 {
		t.Fatalf("expected p1 first with quantity 2, got %+v", items[0])
	}
	if items[1].ID != "p2" || items[1].Quantity != 1 {
		t.Fatalf("unexpected second line %+v", items[1])
	}
}

func TestDecrementRemovesLineAtZero(t *testing.T) {
	store := NewStore()
	store.AddItem(ItemInput{ID: "p1", Name: "Rooibos Tea", Price: 49.99})
	store.AddItem(ItemInput{ID: "p1", Name: "Rooibos Tea", Price: 49.99})

	store.Decrement("p1")
	if got := store.Items(); len(got) != 1 || got[0].Quantity != 1 {
		t.Fatalf("expected quantity 1 after decrement, got %+v", got)
	}

	store.Decrement("p1")
	if got := store.Items(); len(got) != 0 {
		t.Fatalf("expected empty cart, got %+v", got)
	}
}

func TestIncrementAndDecrementIgnoreUnknownIDs(t *testing.T) {
	store := NewStore()
	store.AddItem(ItemInput{ID: "p1", Name: "Rooibos Tea", Price: 49.99})

	store.Increment("missing")
	store.Decrement("missing")

	items := store.Items()
	if len(items) != 1 || items[0].Quantity != 1 {
		t.Fatalf("expected cart untouched, got %+v", items)
	}
}

func TestSummaryTracksQuantityAndTotal(t *testing.T) {
	store := NewStore()
	store.AddItem(ItemInput{ID: "p1", Name: "Rooibos Tea", Price: 50})
	store.AddItem(ItemInput{ID: "p1", Name: "Rooibos Tea", Price: 50})
	store.AddItem(ItemInput{ID: "p2", Name: "Biltong", Price: 120})

	summary := store.Summary()
	if summary.Count != 3 {
		t.Fatalf("expected count 3, got %d", summary.Count)
	}
	if summary.Total != 220 {
		t.Fatalf("expected total 220, got %v", summary.Total)
	}

	store.Clear()
	summary = store.Summary()
	if summary.Count != 0 || summary.Total != 0 {
		t.Fatalf("expected empty summary, got %+v", summary)
	}
}

func TestRemoveItemDropsWholeLine(t *testing.T) {
	store := NewStore()
	store.AddItem(ItemInput{ID: "p1", Name: "Rooibos Tea", Price: 50})
	store.AddItem(ItemInput{ID: "p1", Name: "Rooibos Tea", Price: 50})

	store.RemoveItem("p1")
	if got := store.Items(); len(got) != 0 {
		t.Fatalf("expected empty cart, got %+v", got)
	}
}

func TestRegistryIsolatesSessions(t *testing.T) {
	registry := NewRegistry()
	registry.Session("alpha").AddItem(ItemInput{ID: "p1", Name: "Rooibos Tea", Price: 50})

	if got := registry.Session("beta").Items(); len(got) != 0 {
		t.Fatalf("expected empty cart for new session, got %+v", got)
	}
	if got := registry.Session("alpha").Items(); len(got) != 1 {
		t.Fatalf("expected alpha cart to persist, got %+v", got)
	}
}

func TestRegistryPurgesIdleSessions(t *testing.T) {
	registry := NewRegistry()
	current := time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)
	registry.now = func() time.Time { return current }

	registry.Session("stale")
	current = current.Add(3 * time.Hour)
	registry.Session("fresh")

	removed := registry.Purge(2 * time.Hour)
	if removed != 1 {
		t.Fatalf("expected 1 purged session, got %d", removed)
	}
	if registry.Len() != 1 {
		t.Fatalf("expected 1 live session, got %d", registry.Len())
	}
}
