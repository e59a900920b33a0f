// Package events carries the domain events the stores publish: new bids
// (user or simulated) and auction closings. The bus is in-process; a real
// deployment would attach a push transport as another subscriber.
package events

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event types.
const (
	TypeNewBid       = "NewBid"
	TypeAuctionEnded = "AuctionEnded"
)

// Envelope wraps a single domain event.
type Envelope struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// NewBidPayload describes a bid placed on an auction.
type NewBidPayload struct {
	AuctionID string    `json:"auction_id"`
	Bidder    string    `json:"bidder"`
	Amount    int       `json:"amount"`
	BidTime   time.Time `json:"bid_time"`
}

// AuctionEndedPayload describes an auction reaching its end time.
type AuctionEndedPayload struct {
	AuctionID string `json:"auction_id"`
	Status    string `json:"status"`
}

// Bus fans events out to subscribers. Publishing never blocks: a subscriber
// whose channel is full misses the event, so a slow consumer cannot stall a
// store mutation.
type Bus struct {
	mu   sync.Mutex
	subs map[int]chan Envelope
	next int
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan Envelope)}
}

// Subscribe registers a subscriber with the given channel buffer size and
// returns the event channel plus an unsubscribe function. Unsubscribing
// closes the channel.
func (b *Bus) Subscribe(buffer int) (<-chan Envelope, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan Envelope, buffer)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish delivers an event to every subscriber. A nil bus discards events,
// so stores can run without one in tests.
func (b *Bus) Publish(eventType string, payload any) {
	if b == nil {
		return
	}

	env := Envelope{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- env:
		default:
		}
	}
}
