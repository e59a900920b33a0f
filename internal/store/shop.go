// Package store holds the session state containers behind the shop and
// auction house views. All mutation goes through store methods under a
// single mutex per store, so user intents and the background simulator are
// serialized through one arbitration point.
package store

import (
	"sync"

	"github.com/jzaletel/tradepost/internal/model"
)

// Shop holds the item catalog, the active category filter, and the
// currently inspected item.
type Shop struct {
	mu       sync.Mutex
	items    []model.Item
	filtered []model.Item
	selected *model.Item
	filter   string
	wallet   *Wallet
}

// NewShop creates an empty shop backed by the given wallet.
func NewShop(wallet *Wallet) *Shop {
	return &Shop{filter: model.CategoryAll, wallet: wallet}
}

// Load replaces the catalog with items, resets the filter to CategoryAll,
// and selects the first item if nothing is selected yet.
func (s *Shop) Load(items []model.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = cloneItems(items)
	s.filter = model.CategoryAll
	s.filtered = cloneItems(items)
	if s.selected == nil && len(s.items) > 0 {
		first := s.items[0].Clone()
		s.selected = &first
	}
}

// SetFilter recomputes the visible items for the given category. Categories
// form a closed set; unknown values are rejected rather than silently
// yielding an empty list.
func (s *Shop) SetFilter(category string) error {
	if !model.ValidCategory(category) {
		return model.ErrUnknownCategory
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = category
	s.filtered = filterItems(s.items, category)
	return nil
}

// Select sets the currently inspected item. A nil item clears the selection.
func (s *Shop) Select(item *model.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item == nil {
		s.selected = nil
		return
	}
	clone := item.Clone()
	s.selected = &clone
}

// Buy purchases the item with the given ID and returns the remaining gold.
// On failure the catalog and the wallet are unchanged, and the error
// distinguishes a missing item from an unaffordable one.
func (s *Shop) Buy(itemID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var item *model.Item
	for i := range s.items {
		if s.items[i].ID == itemID {
			item = &s.items[i]
			break
		}
	}
	if item == nil {
		return s.wallet.Gold(), model.ErrItemNotFound
	}
	if err := s.wallet.Spend(item.Value); err != nil {
		return s.wallet.Gold(), err
	}
	return s.wallet.Gold(), nil
}

// Item returns the catalog item with the given ID.
func (s *Shop) Item(itemID string) (model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == itemID {
			return s.items[i].Clone(), nil
		}
	}
	return model.Item{}, model.ErrItemNotFound
}

// Items returns a copy of the full catalog.
func (s *Shop) Items() []model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneItems(s.items)
}

// Filtered returns a copy of the items visible under the active filter.
func (s *Shop) Filtered() []model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneItems(s.filtered)
}

// ItemsByCategory returns the catalog items matching category without
// touching the session's active filter.
func (s *Shop) ItemsByCategory(category string) ([]model.Item, error) {
	if !model.ValidCategory(category) {
		return nil, model.ErrUnknownCategory
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneItems(filterItems(s.items, category)), nil
}

// Selected returns a copy of the currently inspected item, or nil.
func (s *Shop) Selected() *model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return nil
	}
	clone := s.selected.Clone()
	return &clone
}

// Filter returns the active category filter.
func (s *Shop) Filter() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// Gold returns the wallet balance.
func (s *Shop) Gold() int {
	return s.wallet.Gold()
}

func filterItems(items []model.Item, category string) []model.Item {
	if category == model.CategoryAll {
		return items
	}
	var out []model.Item
	for _, item := range items {
		if item.Type == category {
			out = append(out, item)
		}
	}
	return out
}

func cloneItems(items []model.Item) []model.Item {
	out := make([]model.Item, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}
