package model

import (
	"fmt"
	"time"
)

// Bid is a single offer attached to an auction. Immutable once created.
type Bid struct {
	Bidder string    `json:"bidderName"`
	Amount int       `json:"amount"`
	Time   time.Time `json:"bidTime"`
}

// LocalBidder is the bidder name recorded for bids placed by the player.
const LocalBidder = "You"

// Status is an auction's lifecycle state.
type Status string

const (
	StatusActive  Status = "Active"
	StatusSold    Status = "Sold"
	StatusExpired Status = "Expired"
)

var validNext = map[Status]map[Status]bool{
	StatusActive:  {StatusSold: true, StatusExpired: true},
	StatusSold:    {},
	StatusExpired: {},
}

// CanTransition reports whether an auction may move from one status to another.
func CanTransition(from, to Status) bool {
	return validNext[from][to]
}

// Auction is a time-bounded sale of one item via competitive bidding,
// optionally with a buyout price (0 means none). Bids are ordered newest
// first, and Bids[0].Amount always equals CurrentPrice when bids exist.
type Auction struct {
	ID            string    `json:"id"`
	ItemID        string    `json:"itemId"`
	ItemName      string    `json:"itemName"`
	Seller        string    `json:"sellerName"`
	SellerID      string    `json:"sellerId"`
	StartingPrice int       `json:"startingPrice"`
	BuyoutPrice   int       `json:"buyoutPrice,omitempty"`
	CurrentPrice  int       `json:"currentPrice"`
	EndTime       time.Time `json:"endTime"`
	Status        Status    `json:"status"`
	Bids          []Bid     `json:"bids"`
}

// Ended reports whether the auction's end time has passed.
func (a *Auction) Ended(now time.Time) bool {
	return !a.EndTime.After(now)
}

// Clone returns a deep copy of the auction.
func (a Auction) Clone() Auction {
	out := a
	if a.Bids != nil {
		out.Bids = make([]Bid, len(a.Bids))
		copy(out.Bids, a.Bids)
	}
	return out
}

// Validate checks the auction's pricing invariants.
func (a *Auction) Validate() error {
	if a.CurrentPrice < a.StartingPrice {
		return fmt.Errorf("auction %s: current price %d below starting price %d",
			a.ID, a.CurrentPrice, a.StartingPrice)
	}
	if a.BuyoutPrice != 0 && a.BuyoutPrice < a.StartingPrice {
		return fmt.Errorf("auction %s: buyout price %d below starting price %d",
			a.ID, a.BuyoutPrice, a.StartingPrice)
	}
	if len(a.Bids) > 0 && a.Bids[0].Amount != a.CurrentPrice {
		return fmt.Errorf("auction %s: newest bid %d does not match current price %d",
			a.ID, a.Bids[0].Amount, a.CurrentPrice)
	}
	return nil
}
