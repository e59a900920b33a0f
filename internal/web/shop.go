package web

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jzaletel/tradepost/internal/model"
)

// ShopPage handles GET /shop. The ?type= and ?select= query parameters are
// the view's filter and selection intents, dispatched into the shop store.
func (s *Server) ShopPage(w http.ResponseWriter, r *http.Request) {
	errMsg := r.URL.Query().Get("error")

	if category := r.URL.Query().Get("type"); category != "" {
		if err := s.Shop.SetFilter(category); err != nil {
			errMsg = "Unknown item category."
		}
	}
	if id := r.URL.Query().Get("select"); id != "" {
		if item, err := s.Shop.Item(id); err == nil {
			s.Shop.Select(&item)
		}
	}

	s.Templates.Render(w, "shop.html", &struct {
		PageData
		Items      []model.Item
		Selected   *model.Item
		Filter     string
		Categories []string
	}{
		PageData: PageData{
			Title:   "Shop",
			Gold:    s.Shop.Gold(),
			Error:   errMsg,
			Success: r.URL.Query().Get("success"),
		},
		Items:      s.Shop.Filtered(),
		Selected:   s.Shop.Selected(),
		Filter:     s.Shop.Filter(),
		Categories: model.Categories(),
	})
}

// ShopBuySubmit handles POST /shop/buy.
func (s *Server) ShopBuySubmit(w http.ResponseWriter, r *http.Request) {
	itemID := r.FormValue("item_id")

	_, err := s.Shop.Buy(itemID)
	switch {
	case errors.Is(err, model.ErrItemNotFound):
		redirectShop(w, r, "error", "That item no longer exists.")
	case errors.Is(err, model.ErrInsufficientGold):
		redirectShop(w, r, "error", "Not enough gold.")
	case err != nil:
		slog.Error("failed to buy item", "item", itemID, "error", err)
		redirectShop(w, r, "error", "Purchase failed.")
	default:
		slog.Info("item purchased", "item", itemID)
		redirectShop(w, r, "success", "Purchase complete.")
	}
}

func redirectShop(w http.ResponseWriter, r *http.Request, key, message string) {
	http.Redirect(w, r, "/shop?"+key+"="+url.QueryEscape(message), http.StatusSeeOther)
}
