package web

import (
	"net/http"
	"sort"
	"time"

	"github.com/jzaletel/tradepost/internal/model"
)

// recentBid is a bid joined with its auction for the dashboard feed.
type recentBid struct {
	AuctionID string
	ItemName  string
	Bidder    string
	Amount    int
	Time      time.Time
}

// Dashboard handles GET /.
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	auctions := s.House.Auctions()

	active := 0
	var recent []recentBid
	for _, a := range auctions {
		if a.Status == model.StatusActive {
			active++
		}
		for _, b := range a.Bids {
			recent = append(recent, recentBid{
				AuctionID: a.ID,
				ItemName:  a.ItemName,
				Bidder:    b.Bidder,
				Amount:    b.Amount,
				Time:      b.Time,
			})
		}
	}

	sort.Slice(recent, func(i, j int) bool { return recent[i].Time.After(recent[j].Time) })
	if len(recent) > 10 {
		recent = recent[:10]
	}

	s.Templates.Render(w, "dashboard.html", &struct {
		PageData
		ItemCount      int
		ActiveAuctions int
		TotalAuctions  int
		RecentBids     []recentBid
	}{
		PageData:       PageData{Title: "Dashboard", Gold: s.Shop.Gold()},
		ItemCount:      len(s.Shop.Items()),
		ActiveAuctions: active,
		TotalAuctions:  len(auctions),
		RecentBids:     recent,
	})
}
