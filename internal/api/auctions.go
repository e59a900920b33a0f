package api

import (
	"errors"
	"net/http"

	"github.com/jzaletel/tradepost/internal/model"
	"github.com/jzaletel/tradepost/internal/store"
)

// AuctionsHandler handles auction listing and bidding endpoints.
type AuctionsHandler struct {
	House *store.AuctionHouse
}

type placeBidRequest struct {
	Amount int `json:"amount"`
}

// List handles GET /api/auctions.
func (h *AuctionsHandler) List(w http.ResponseWriter, r *http.Request) {
	auctions := h.House.Auctions()
	if auctions == nil {
		auctions = []model.Auction{}
	}
	jsonResponse(w, http.StatusOK, auctions)
}

// Get handles GET /api/auctions/{id}.
func (h *AuctionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	auction, err := h.House.Auction(r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusNotFound, "auction not found")
		return
	}
	jsonResponse(w, http.StatusOK, auction)
}

// PlaceBid handles POST /api/auctions/{id}/bids.
func (h *AuctionsHandler) PlaceBid(w http.ResponseWriter, r *http.Request) {
	var req placeBidRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Amount <= 0 {
		jsonError(w, http.StatusBadRequest, "amount must be positive")
		return
	}

	auction, err := h.House.PlaceBid(r.PathValue("id"), req.Amount)
	switch {
	case errors.Is(err, model.ErrAuctionNotFound):
		jsonError(w, http.StatusNotFound, "auction not found")
		return
	case errors.Is(err, model.ErrBidTooLow):
		jsonError(w, http.StatusConflict, "bid too low")
		return
	case errors.Is(err, model.ErrAuctionClosed):
		jsonError(w, http.StatusGone, "auction closed")
		return
	case err != nil:
		jsonError(w, http.StatusInternalServerError, "bid failed")
		return
	}
	jsonResponse(w, http.StatusCreated, auction)
}
