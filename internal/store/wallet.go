package store

import (
	"sync"

	"github.com/jzaletel/tradepost/internal/model"
)

// Wallet holds the player's gold balance for the session. There is exactly
// one wallet per process, shared by the shop and the auction house.
type Wallet struct {
	mu   sync.Mutex
	gold int
}

// NewWallet creates a wallet with the given starting balance. Negative
// balances are clamped to zero.
func NewWallet(gold int) *Wallet {
	if gold < 0 {
		gold = 0
	}
	return &Wallet{gold: gold}
}

// Gold returns the current balance.
func (w *Wallet) Gold() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.gold
}

// Spend deducts amount from the balance. The balance is unchanged when the
// wallet cannot cover the amount.
func (w *Wallet) Spend(amount int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if amount > w.gold {
		return model.ErrInsufficientGold
	}
	w.gold -= amount
	return nil
}
