package sim

import (
	"testing"
	"time"

	"github.com/jzaletel/tradepost/internal/events"
	"github.com/jzaletel/tradepost/internal/model"
	"github.com/jzaletel/tradepost/internal/store"
)

func TestSweeperClosesEndedAuctions(t *testing.T) {
	bus := events.NewBus()
	house := store.NewAuctionHouse(store.NewWallet(0), bus)
	house.SetAuctions([]model.Auction{{
		ID: "auc1", ItemName: "Epic Iron Sword",
		StartingPrice: 100, CurrentPrice: 100,
		EndTime: time.Now().Add(-time.Minute), Status: model.StatusActive,
	}})

	ch, cancel := bus.Subscribe(4)
	defer cancel()

	s := NewSweeper(house, time.Millisecond)
	s.Start()
	defer s.Stop()

	select {
	case env := <-ch:
		if env.EventType != events.TypeAuctionEnded {
			t.Fatalf("expected AuctionEnded event, got %q", env.EventType)
		}
		payload := env.Payload.(events.AuctionEndedPayload)
		if payload.AuctionID != "auc1" || payload.Status != string(model.StatusExpired) {
			t.Errorf("unexpected payload %+v", payload)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the sweeper to close the auction")
	}

	a, _ := house.Auction("auc1")
	if a.Status != model.StatusExpired {
		t.Errorf("expected Expired status, got %s", a.Status)
	}
}

func TestSweeperStartStopIdempotent(t *testing.T) {
	s := NewSweeper(store.NewAuctionHouse(store.NewWallet(0), nil), time.Millisecond)

	s.Start()
	s.Start()
	s.Stop()
	s.Stop()
}
