package api

import (
	"net/http"

	"github.com/jzaletel/tradepost/internal/store"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(shop *store.Shop, house *store.AuctionHouse) http.Handler {
	mux := http.NewServeMux()

	shopHandler := &ShopHandler{Shop: shop}
	auctionsHandler := &AuctionsHandler{House: house}

	// Shop.
	mux.HandleFunc("GET /api/items", shopHandler.List)
	mux.HandleFunc("GET /api/items/{id}", shopHandler.Get)
	mux.HandleFunc("POST /api/items/{id}/buy", shopHandler.Buy)
	mux.HandleFunc("GET /api/gold", shopHandler.Gold)

	// Auction house.
	mux.HandleFunc("GET /api/auctions", auctionsHandler.List)
	mux.HandleFunc("GET /api/auctions/{id}", auctionsHandler.Get)
	mux.HandleFunc("POST /api/auctions/{id}/bids", auctionsHandler.PlaceBid)

	return mux
}
