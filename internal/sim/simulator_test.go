package sim

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/jzaletel/tradepost/internal/model"
	"github.com/jzaletel/tradepost/internal/store"
)

func newTestHouse(auctions []model.Auction) *store.AuctionHouse {
	h := store.NewAuctionHouse(store.NewWallet(5000), nil)
	h.SetAuctions(auctions)
	return h
}

func singleAuction(now time.Time, price int) []model.Auction {
	return []model.Auction{{
		ID: "auc1", ItemName: "Epic Iron Sword",
		StartingPrice: price, CurrentPrice: price,
		EndTime: now.Add(time.Hour), Status: model.StatusActive,
	}}
}

func deterministic(s *Simulator) {
	s.rng = rand.New(rand.NewPCG(1, 2))
}

func TestTickPlacesOneBid(t *testing.T) {
	house := newTestHouse(singleAuction(time.Now(), 150))
	s := NewSimulator(house, 0, 0)
	deterministic(s)

	s.tick()

	a, err := house.Auction("auc1")
	if err != nil {
		t.Fatalf("Auction: %v", err)
	}
	if a.CurrentPrice != 165 { // ceil(150 * 1.10)
		t.Errorf("expected price 165 after one tick, got %d", a.CurrentPrice)
	}
	if len(a.Bids) != 1 {
		t.Errorf("expected 1 bid after one tick, got %d", len(a.Bids))
	}
	if a.Bids[0].Bidder == "" || a.Bids[0].Bidder == model.LocalBidder {
		t.Errorf("expected a synthetic bidder name, got %q", a.Bids[0].Bidder)
	}
}

func TestRepeatedTicksCompoundPrice(t *testing.T) {
	const k = 5
	house := newTestHouse(singleAuction(time.Now(), 150))
	s := NewSimulator(house, 0, 0)
	deterministic(s)

	// With a single open auction every tick hits it.
	expected := 150
	for range k {
		expected = int(math.Ceil(float64(expected) * 1.10))
		s.tick()
	}

	a, _ := house.Auction("auc1")
	if a.CurrentPrice != expected {
		t.Errorf("expected price %d after %d ticks, got %d", expected, k, a.CurrentPrice)
	}
	if len(a.Bids) != k {
		t.Errorf("expected %d bids after %d ticks, got %d", k, k, len(a.Bids))
	}
	if err := a.Validate(); err != nil {
		t.Errorf("auction invalid after ticks: %v", err)
	}
}

func TestTickWithNoAuctions(t *testing.T) {
	house := newTestHouse(nil)
	s := NewSimulator(house, 0, 0)
	deterministic(s)

	s.tick() // must not panic
}

func TestTickSkipsClosedAuctions(t *testing.T) {
	now := time.Now()
	auctions := singleAuction(now, 150)
	auctions[0].EndTime = now.Add(-time.Minute)
	house := newTestHouse(auctions)
	s := NewSimulator(house, 0, 0)
	deterministic(s)

	s.tick()

	a, _ := house.Auction("auc1")
	if len(a.Bids) != 0 {
		t.Errorf("expected no bids on an ended auction, got %d", len(a.Bids))
	}
}

func TestStartStopIdempotent(t *testing.T) {
	house := newTestHouse(singleAuction(time.Now(), 150))
	s := NewSimulator(house, time.Millisecond, 1.10)

	s.Start()
	s.Start() // second start is a no-op
	s.Stop()
	s.Stop() // second stop is a no-op

	// After Stop returns the loop has exited; the price must stay put.
	a, _ := house.Auction("auc1")
	price := a.CurrentPrice
	time.Sleep(10 * time.Millisecond)
	a, _ = house.Auction("auc1")
	if a.CurrentPrice != price {
		t.Errorf("price advanced after Stop: %d -> %d", price, a.CurrentPrice)
	}

	// The simulator can be started again after stopping.
	s.Start()
	s.Stop()
}

func TestSimulatorDefaults(t *testing.T) {
	s := NewSimulator(nil, 0, 0)
	if s.interval != DefaultInterval {
		t.Errorf("expected default interval %v, got %v", DefaultInterval, s.interval)
	}
	if s.increment != DefaultIncrement {
		t.Errorf("expected default increment %v, got %v", DefaultIncrement, s.increment)
	}
}
