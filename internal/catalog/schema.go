package catalog

import (
	"database/sql"
	"fmt"
)

// schema is the full catalog schema.
const schema = `
CREATE TABLE IF NOT EXISTS items (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    description TEXT,
    item_type   TEXT NOT NULL CHECK (item_type IN ('Weapon', 'Armor', 'Consumible')),
    value       INTEGER NOT NULL CHECK (value >= 0),
    stats       TEXT NOT NULL DEFAULT '{}'
);

CREATE TABLE IF NOT EXISTS auctions (
    id             TEXT PRIMARY KEY,
    item_id        TEXT NOT NULL REFERENCES items(id),
    item_name      TEXT NOT NULL,
    seller_name    TEXT NOT NULL,
    seller_id      TEXT NOT NULL,
    starting_price INTEGER NOT NULL CHECK (starting_price >= 0),
    buyout_price   INTEGER,
    current_price  INTEGER NOT NULL,
    end_time       DATETIME NOT NULL,
    status         TEXT NOT NULL DEFAULT 'Active' CHECK (status IN ('Active', 'Sold', 'Expired'))
);

CREATE TABLE IF NOT EXISTS bids (
    auction_id  TEXT NOT NULL REFERENCES auctions(id),
    bidder_name TEXT NOT NULL,
    amount      INTEGER NOT NULL CHECK (amount > 0),
    bid_time    DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_bids_auction ON bids(auction_id);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
