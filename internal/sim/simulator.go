// Package sim contains the background processes that act on the auction
// house without a user intent: the bid simulator, which stands in for other
// players while there is no real backend, and the sweeper, which closes
// auctions whose end time has passed.
package sim

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/jzaletel/tradepost/internal/store"
)

// Defaults applied when a Simulator is constructed with zero values.
const (
	DefaultInterval  = 10 * time.Second
	DefaultIncrement = 1.10
)

// Simulator periodically injects a synthetic competing bid into a randomly
// chosen open auction.
type Simulator struct {
	house     *store.AuctionHouse
	interval  time.Duration
	increment float64
	rng       *rand.Rand

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// NewSimulator creates a simulator bidding on the given auction house every
// interval, raising prices by the multiplicative increment. Non-positive
// parameters fall back to the defaults.
func NewSimulator(house *store.AuctionHouse, interval time.Duration, increment float64) *Simulator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if increment <= 1 {
		increment = DefaultIncrement
	}
	return &Simulator{
		house:     house,
		interval:  interval,
		increment: increment,
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Start launches the tick loop. Calling Start while running is a no-op.
func (s *Simulator) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		return
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.run(s.stop, s.done)
}

// Stop halts the tick loop and waits for it to exit: once Stop returns, no
// further tick will fire. A tick already in progress completes. Calling
// Stop while stopped is a no-op.
func (s *Simulator) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop == nil {
		return
	}
	close(s.stop)
	<-s.done
	s.stop = nil
	s.done = nil
}

func (s *Simulator) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

// tick places one synthetic bid on a randomly chosen open auction. Nothing
// happens when no auction is open.
func (s *Simulator) tick() {
	ids := s.house.ActiveAuctionIDs()
	if len(ids) == 0 {
		return
	}

	id := ids[s.rng.IntN(len(ids))]
	bidder := fmt.Sprintf("Player%d", s.rng.IntN(100))

	// The auction may close between the snapshot and the bid; losing a
	// simulated bid to that race is fine.
	_, _ = s.house.Outbid(id, bidder, s.increment)
}
