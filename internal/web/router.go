package web

import (
	"net/http"

	"github.com/jzaletel/tradepost/internal/store"
	webembed "github.com/jzaletel/tradepost/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(shop *store.Shop, house *store.AuctionHouse) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		Shop:      shop,
		House:     house,
		Templates: templates,
	}

	mux := http.NewServeMux()

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	mux.HandleFunc("GET /{$}", s.Dashboard)

	mux.HandleFunc("GET /shop", s.ShopPage)
	mux.HandleFunc("POST /shop/buy", s.ShopBuySubmit)

	mux.HandleFunc("GET /auctions", s.AuctionsPage)
	mux.HandleFunc("POST /auctions/{id}/bid", s.AuctionBidSubmit)

	return mux, nil
}
