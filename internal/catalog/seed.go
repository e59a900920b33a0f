package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jzaletel/tradepost/internal/model"
)

type seedBid struct {
	bidder string
	amount int
	age    time.Duration // how long before the seed time the bid was placed
}

type seedAuction struct {
	id       string
	itemID   string
	itemName string
	seller   string
	sellerID string
	starting int
	buyout   int // 0 = none
	current  int
	duration time.Duration // end time relative to the seed time
	bids     []seedBid     // newest first
}

var seedItems = []model.Item{
	{ID: "1", Name: "Iron Sword", Description: "A basic but reliable sword.", Type: model.ItemTypeWeapon, Value: 50, Stats: map[string]int{"Strength": 5}},
	{ID: "2", Name: "Leather Chestplate", Description: "Offers modest protection.", Type: model.ItemTypeArmor, Value: 75, Stats: map[string]int{"Armor": 10, "Vitality": 5}},
	{ID: "3", Name: "Minor Health Potion", Description: "Restores 50 health points.", Type: model.ItemTypeConsumable, Value: 15, Stats: map[string]int{"Health": 50}},
	{ID: "4", Name: "Hunter's Bow", Description: "A light and quick bow.", Type: model.ItemTypeWeapon, Value: 65, Stats: map[string]int{"Dexterity": 7}},
	{ID: "5", Name: "Steel Helm", Description: "Solid protection for the head.", Type: model.ItemTypeArmor, Value: 120, Stats: map[string]int{"Armor": 15}},
	{ID: "6", Name: "Ring of Agility", Description: "Increases the wearer's dexterity.", Type: model.ItemTypeArmor, Value: 250, Stats: map[string]int{"Dexterity": 10}},
}

var seedAuctions = []seedAuction{
	{
		id: "auc1", itemID: "1", itemName: "Epic Iron Sword",
		seller: "Gorok", sellerID: "1",
		starting: 100, buyout: 500, current: 150, duration: 5 * time.Minute,
		bids: []seedBid{
			{bidder: "Elara", amount: 150, age: 2 * time.Minute},
			{bidder: "Roric", amount: 125, age: 4 * time.Minute},
		},
	},
	{
		id: "auc2", itemID: "2", itemName: "Mithril Chestplate",
		seller: "Ironhand", sellerID: "2",
		starting: 300, buyout: 1200, current: 300, duration: time.Hour,
	},
	{
		id: "auc3", itemID: "6", itemName: "Legendary Ring of Agility",
		seller: "Shadow", sellerID: "3",
		starting: 1000, current: 1500, duration: 2 * time.Hour,
		bids: []seedBid{
			{bidder: "Nightblade", amount: 1500, age: 10 * time.Minute},
		},
	},
}

// Seed populates an empty catalog with the fixed item set and the initial
// auctions. Auction end times are anchored to now, so auctions seeded at
// server init start out live.
func Seed(ctx context.Context, db *sql.DB, now time.Time) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, item := range seedItems {
		stats, err := json.Marshal(item.Stats)
		if err != nil {
			return fmt.Errorf("encoding stats for item %s: %w", item.ID, err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO items (id, name, description, item_type, value, stats)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			item.ID, item.Name, item.Description, item.Type, item.Value, string(stats),
		)
		if err != nil {
			return fmt.Errorf("seeding item %s: %w", item.ID, err)
		}
	}

	for _, a := range seedAuctions {
		var buyout any
		if a.buyout > 0 {
			buyout = a.buyout
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO auctions (id, item_id, item_name, seller_name, seller_id,
			                       starting_price, buyout_price, current_price, end_time, status)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			a.id, a.itemID, a.itemName, a.seller, a.sellerID,
			a.starting, buyout, a.current, now.Add(a.duration).UTC(), string(model.StatusActive),
		)
		if err != nil {
			return fmt.Errorf("seeding auction %s: %w", a.id, err)
		}

		for _, b := range a.bids {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO bids (auction_id, bidder_name, amount, bid_time)
				 VALUES (?, ?, ?, ?)`,
				a.id, b.bidder, b.amount, now.Add(-b.age).UTC(),
			)
			if err != nil {
				return fmt.Errorf("seeding bid on auction %s: %w", a.id, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed: %w", err)
	}
	return nil
}
