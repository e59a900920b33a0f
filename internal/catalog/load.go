package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jzaletel/tradepost/internal/model"
)

// Items loads the full item catalog. Failures are reported as
// model.ErrCatalogUnavailable so callers can distinguish "the data source
// is down" from store-level logic errors.
func Items(ctx context.Context, db *sql.DB) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, description, item_type, value, stats FROM items ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: listing items: %v", model.ErrCatalogUnavailable, err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		var description sql.NullString
		var stats string
		if err := rows.Scan(&item.ID, &item.Name, &description, &item.Type, &item.Value, &stats); err != nil {
			return nil, fmt.Errorf("%w: scanning item: %v", model.ErrCatalogUnavailable, err)
		}
		item.Description = description.String
		if err := json.Unmarshal([]byte(stats), &item.Stats); err != nil {
			return nil, fmt.Errorf("%w: decoding stats for item %s: %v", model.ErrCatalogUnavailable, item.ID, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading items: %v", model.ErrCatalogUnavailable, err)
	}
	return items, nil
}

// Auctions loads all auctions with their bid histories, newest bid first.
func Auctions(ctx context.Context, db *sql.DB) ([]model.Auction, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, item_id, item_name, seller_name, seller_id,
		        starting_price, buyout_price, current_price, end_time, status
		 FROM auctions ORDER BY end_time`,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: listing auctions: %v", model.ErrCatalogUnavailable, err)
	}
	defer rows.Close()

	var auctions []model.Auction
	for rows.Next() {
		var a model.Auction
		var buyout sql.NullInt64
		var status string
		if err := rows.Scan(&a.ID, &a.ItemID, &a.ItemName, &a.Seller, &a.SellerID,
			&a.StartingPrice, &buyout, &a.CurrentPrice, &a.EndTime, &status); err != nil {
			return nil, fmt.Errorf("%w: scanning auction: %v", model.ErrCatalogUnavailable, err)
		}
		a.BuyoutPrice = int(buyout.Int64)
		a.Status = model.Status(status)
		auctions = append(auctions, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading auctions: %v", model.ErrCatalogUnavailable, err)
	}

	for i := range auctions {
		bids, err := auctionBids(ctx, db, auctions[i].ID)
		if err != nil {
			return nil, err
		}
		auctions[i].Bids = bids
	}
	return auctions, nil
}

// auctionBids loads an auction's bid history, newest first.
func auctionBids(ctx context.Context, db *sql.DB, auctionID string) ([]model.Bid, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT bidder_name, amount, bid_time FROM bids
		 WHERE auction_id = ? ORDER BY bid_time DESC, amount DESC`, auctionID,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: listing bids for auction %s: %v", model.ErrCatalogUnavailable, auctionID, err)
	}
	defer rows.Close()

	var bids []model.Bid
	for rows.Next() {
		var b model.Bid
		if err := rows.Scan(&b.Bidder, &b.Amount, &b.Time); err != nil {
			return nil, fmt.Errorf("%w: scanning bid: %v", model.ErrCatalogUnavailable, err)
		}
		bids = append(bids, b)
	}
	return bids, rows.Err()
}
