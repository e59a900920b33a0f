package api

import (
	"errors"
	"net/http"

	"github.com/jzaletel/tradepost/internal/model"
	"github.com/jzaletel/tradepost/internal/store"
)

// ShopHandler handles catalog and purchase endpoints.
type ShopHandler struct {
	Shop *store.Shop
}

// List handles GET /api/items. An optional ?type= query restricts the list
// to one item type.
func (h *ShopHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("type")
	if category == "" {
		category = model.CategoryAll
	}

	items, err := h.Shop.ItemsByCategory(category)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "unknown item type")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Get handles GET /api/items/{id}.
func (h *ShopHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.Shop.Item(r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Buy handles POST /api/items/{id}/buy.
func (h *ShopHandler) Buy(w http.ResponseWriter, r *http.Request) {
	gold, err := h.Shop.Buy(r.PathValue("id"))
	switch {
	case errors.Is(err, model.ErrItemNotFound):
		jsonError(w, http.StatusNotFound, "item not found")
		return
	case errors.Is(err, model.ErrInsufficientGold):
		jsonError(w, http.StatusConflict, "not enough gold")
		return
	case err != nil:
		jsonError(w, http.StatusInternalServerError, "purchase failed")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]int{"gold": gold})
}

// Gold handles GET /api/gold.
func (h *ShopHandler) Gold(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]int{"gold": h.Shop.Gold()})
}
