package web

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jzaletel/tradepost/internal/model"
)

// AuctionsPage handles GET /auctions. The ?select= query parameter is the
// view's selection intent.
func (s *Server) AuctionsPage(w http.ResponseWriter, r *http.Request) {
	errMsg := r.URL.Query().Get("error")

	if id := r.URL.Query().Get("select"); id != "" {
		if err := s.House.Select(id); err != nil {
			errMsg = "That auction no longer exists."
		}
	}

	s.Templates.Render(w, "auctions.html", &struct {
		PageData
		Auctions []model.Auction
		Selected *model.Auction
	}{
		PageData: PageData{
			Title:   "Auction House",
			Gold:    s.House.Gold(),
			Error:   errMsg,
			Success: r.URL.Query().Get("success"),
		},
		Auctions: s.House.Auctions(),
		Selected: s.House.Selected(),
	})
}

// AuctionBidSubmit handles POST /auctions/{id}/bid.
func (s *Server) AuctionBidSubmit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	amount, err := strconv.Atoi(r.FormValue("amount"))
	if err != nil || amount <= 0 {
		redirectAuctions(w, r, "error", "Enter a valid bid amount.")
		return
	}

	_, err = s.House.PlaceBid(id, amount)
	switch {
	case errors.Is(err, model.ErrAuctionNotFound):
		redirectAuctions(w, r, "error", "That auction no longer exists.")
	case errors.Is(err, model.ErrBidTooLow):
		redirectAuctions(w, r, "error", "Your bid must exceed the current price.")
	case errors.Is(err, model.ErrAuctionClosed):
		redirectAuctions(w, r, "error", "This auction has ended.")
	case err != nil:
		slog.Error("failed to place bid", "auction", id, "error", err)
		redirectAuctions(w, r, "error", "Bid failed.")
	default:
		slog.Info("bid placed", "auction", id, "amount", amount)
		redirectAuctions(w, r, "success", "Bid placed.")
	}
}

func redirectAuctions(w http.ResponseWriter, r *http.Request, key, message string) {
	http.Redirect(w, r, "/auctions?"+key+"="+url.QueryEscape(message), http.StatusSeeOther)
}
