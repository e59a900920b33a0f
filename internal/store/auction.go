package store

import (
	"math"
	"sync"
	"time"

	"github.com/jzaletel/tradepost/internal/events"
	"github.com/jzaletel/tradepost/internal/model"
)

// AuctionHouse holds the live auction list and the current selection. User
// bids and simulated bids both funnel through the same mutex-guarded update
// path, so no two mutations of the same auction can interleave.
type AuctionHouse struct {
	mu       sync.Mutex
	auctions []model.Auction
	selected string // auction ID, empty when nothing is selected
	wallet   *Wallet
	bus      *events.Bus
	now      func() time.Time
}

// NewAuctionHouse creates an empty auction house. The bus may be nil, in
// which case events are discarded.
func NewAuctionHouse(wallet *Wallet, bus *events.Bus) *AuctionHouse {
	return &AuctionHouse{wallet: wallet, bus: bus, now: time.Now}
}

// SetAuctions replaces the auction list. If nothing is selected yet, the
// first auction in the list becomes selected.
func (h *AuctionHouse) SetAuctions(list []model.Auction) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.auctions = make([]model.Auction, len(list))
	for i, a := range list {
		h.auctions[i] = a.Clone()
	}
	if h.selected == "" && len(h.auctions) > 0 {
		h.selected = h.auctions[0].ID
	}
}

// Select sets the current selection to the auction with the given ID.
func (h *AuctionHouse) Select(id string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.index(id) < 0 {
		return model.ErrAuctionNotFound
	}
	h.selected = id
	return nil
}

// Update replaces the auction whose ID matches the given one. Selection
// follows the update: reading the selection afterwards sees the new value.
func (h *AuctionHouse) Update(a model.Auction) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	i := h.index(a.ID)
	if i < 0 {
		return model.ErrAuctionNotFound
	}
	h.auctions[i] = a.Clone()
	return nil
}

// PlaceBid places a bid by the local player and returns the updated
// auction. The bid must exceed the auction's current price and the auction
// must still be open; on failure the store is unchanged.
func (h *AuctionHouse) PlaceBid(id string, amount int) (model.Auction, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	i := h.index(id)
	if i < 0 {
		return model.Auction{}, model.ErrAuctionNotFound
	}
	a := &h.auctions[i]
	if a.Status != model.StatusActive || a.Ended(h.now()) {
		return model.Auction{}, model.ErrAuctionClosed
	}
	if amount <= a.CurrentPrice {
		return model.Auction{}, model.ErrBidTooLow
	}

	h.applyBid(a, model.LocalBidder, amount)
	return a.Clone(), nil
}

// Outbid places a synthetic competing bid at ceil(currentPrice × increment).
// The amount is computed inside the critical section, so a user bid landing
// first is never overwritten with a stale price.
func (h *AuctionHouse) Outbid(id, bidder string, increment float64) (model.Bid, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	i := h.index(id)
	if i < 0 {
		return model.Bid{}, model.ErrAuctionNotFound
	}
	a := &h.auctions[i]
	if a.Status != model.StatusActive || a.Ended(h.now()) {
		return model.Bid{}, model.ErrAuctionClosed
	}

	amount := int(math.Ceil(float64(a.CurrentPrice) * increment))
	if amount <= a.CurrentPrice {
		return model.Bid{}, model.ErrBidTooLow
	}

	return h.applyBid(a, bidder, amount), nil
}

// applyBid prepends a new bid and advances the current price. Caller holds
// the mutex.
func (h *AuctionHouse) applyBid(a *model.Auction, bidder string, amount int) model.Bid {
	bid := model.Bid{Bidder: bidder, Amount: amount, Time: h.now().UTC()}
	a.CurrentPrice = amount
	a.Bids = append([]model.Bid{bid}, a.Bids...)

	h.bus.Publish(events.TypeNewBid, events.NewBidPayload{
		AuctionID: a.ID,
		Bidder:    bid.Bidder,
		Amount:    bid.Amount,
		BidTime:   bid.Time,
	})
	return bid
}

// CloseExpired transitions every active auction whose end time has passed
// to Sold (when it has bids) or Expired (when it has none), publishing an
// AuctionEnded event exactly once per auction. It returns the auctions
// closed by this call.
func (h *AuctionHouse) CloseExpired(now time.Time) []model.Auction {
	h.mu.Lock()
	defer h.mu.Unlock()

	var closed []model.Auction
	for i := range h.auctions {
		a := &h.auctions[i]
		if a.Status != model.StatusActive || !a.Ended(now) {
			continue
		}

		to := model.StatusExpired
		if len(a.Bids) > 0 {
			to = model.StatusSold
		}
		if !model.CanTransition(a.Status, to) {
			continue
		}
		a.Status = to

		h.bus.Publish(events.TypeAuctionEnded, events.AuctionEndedPayload{
			AuctionID: a.ID,
			Status:    string(to),
		})
		closed = append(closed, a.Clone())
	}
	return closed
}

// ActiveAuctionIDs returns the IDs of auctions that are still open for
// bidding at this moment.
func (h *AuctionHouse) ActiveAuctionIDs() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.now()
	var ids []string
	for i := range h.auctions {
		if h.auctions[i].Status == model.StatusActive && !h.auctions[i].Ended(now) {
			ids = append(ids, h.auctions[i].ID)
		}
	}
	return ids
}

// Auctions returns a copy of the auction list.
func (h *AuctionHouse) Auctions() []model.Auction {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]model.Auction, len(h.auctions))
	for i, a := range h.auctions {
		out[i] = a.Clone()
	}
	return out
}

// Auction returns the auction with the given ID.
func (h *AuctionHouse) Auction(id string) (model.Auction, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	i := h.index(id)
	if i < 0 {
		return model.Auction{}, model.ErrAuctionNotFound
	}
	return h.auctions[i].Clone(), nil
}

// Selected returns a copy of the currently selected auction, or nil when
// nothing is selected.
func (h *AuctionHouse) Selected() *model.Auction {
	h.mu.Lock()
	defer h.mu.Unlock()
	i := h.index(h.selected)
	if i < 0 {
		return nil
	}
	clone := h.auctions[i].Clone()
	return &clone
}

// Gold returns the wallet balance.
func (h *AuctionHouse) Gold() int {
	return h.wallet.Gold()
}

// index returns the position of the auction with the given ID, or -1.
// Caller holds the mutex.
func (h *AuctionHouse) index(id string) int {
	if id == "" {
		return -1
	}
	for i := range h.auctions {
		if h.auctions[i].ID == id {
			return i
		}
	}
	return -1
}
