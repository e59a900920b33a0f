package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jzaletel/tradepost/internal/model"
)

func TestItems(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	items, err := Items(ctx, db)
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 6 {
		t.Fatalf("expected 6 seeded items, got %d", len(items))
	}

	byID := make(map[string]model.Item)
	for _, item := range items {
		if !model.ValidCategory(item.Type) {
			t.Errorf("item %s has unknown type %q", item.ID, item.Type)
		}
		byID[item.ID] = item
	}

	potion, ok := byID["3"]
	if !ok {
		t.Fatal("expected item 3 in catalog")
	}
	if potion.Value != 15 {
		t.Errorf("expected item 3 value 15, got %d", potion.Value)
	}
	if potion.Stats["Health"] != 50 {
		t.Errorf("expected item 3 Health stat 50, got %d", potion.Stats["Health"])
	}
}

func TestAuctions(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	auctions, err := Auctions(ctx, db)
	if err != nil {
		t.Fatalf("Auctions: %v", err)
	}
	if len(auctions) != 3 {
		t.Fatalf("expected 3 seeded auctions, got %d", len(auctions))
	}

	for _, a := range auctions {
		if err := a.Validate(); err != nil {
			t.Errorf("seeded auction failed validation: %v", err)
		}
		if a.Status != model.StatusActive {
			t.Errorf("auction %s: expected Active status, got %s", a.ID, a.Status)
		}
		if !a.EndTime.After(time.Now()) {
			t.Errorf("auction %s: expected future end time, got %v", a.ID, a.EndTime)
		}
	}

	// Seed order is by end time, so the sword auction comes first.
	first := auctions[0]
	if first.ID != "auc1" {
		t.Fatalf("expected auc1 first, got %s", first.ID)
	}
	if first.CurrentPrice != 150 {
		t.Errorf("expected auc1 current price 150, got %d", first.CurrentPrice)
	}
	if len(first.Bids) != 2 {
		t.Fatalf("expected 2 bids on auc1, got %d", len(first.Bids))
	}
	if first.Bids[0].Bidder != "Elara" || first.Bids[0].Amount != 150 {
		t.Errorf("expected newest bid Elara/150, got %s/%d", first.Bids[0].Bidder, first.Bids[0].Amount)
	}
}

func TestLoadFromEmptyDatabase(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// No schema: loads must report the catalog as unavailable.
	if _, err := Items(context.Background(), db); !errors.Is(err, model.ErrCatalogUnavailable) {
		t.Errorf("expected ErrCatalogUnavailable, got %v", err)
	}
	if _, err := Auctions(context.Background(), db); !errors.Is(err, model.ErrCatalogUnavailable) {
		t.Errorf("expected ErrCatalogUnavailable, got %v", err)
	}
}
