package sim

import (
	"log/slog"
	"sync"
	"time"

	"github.com/jzaletel/tradepost/internal/store"
)

// DefaultSweepInterval is how often the sweeper checks for ended auctions.
const DefaultSweepInterval = 15 * time.Second

// Sweeper periodically closes auctions whose end time has passed, driving
// the Active -> Sold / Active -> Expired transitions.
type Sweeper struct {
	house    *store.AuctionHouse
	interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// NewSweeper creates a sweeper over the given auction house. A non-positive
// interval falls back to the default.
func NewSweeper(house *store.AuctionHouse, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &Sweeper{house: house, interval: interval}
}

// Start launches the sweep loop. Calling Start while running is a no-op.
func (s *Sweeper) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		return
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.run(s.stop, s.done)
}

// Stop halts the sweep loop and waits for it to exit.
func (s *Sweeper) Stop() {
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

func (s *Sweeper) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			for _, a := range s.house.CloseExpired(time.Now()) {
				slog.Info("auction closed", "auction", a.ID, "item", a.ItemName, "status", a.Status)
			}
		}
	}
}
