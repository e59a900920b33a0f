package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jzaletel/tradepost/internal/catalog"
	"github.com/jzaletel/tradepost/internal/model"
	"github.com/jzaletel/tradepost/internal/store"
)

func setupTestServer(t *testing.T, gold int) *httptest.Server {
	t.Helper()

	db := catalog.NewTestDB(t)
	ctx := context.Background()

	items, err := catalog.Items(ctx, db)
	if err != nil {
		t.Fatalf("loading items: %v", err)
	}
	auctions, err := catalog.Auctions(ctx, db)
	if err != nil {
		t.Fatalf("loading auctions: %v", err)
	}

	wallet := store.NewWallet(gold)
	shop := store.NewShop(wallet)
	shop.Load(items)
	house := store.NewAuctionHouse(wallet, nil)
	house.SetAuctions(auctions)

	server := httptest.NewServer(NewRouter(shop, house))
	t.Cleanup(server.Close)
	return server
}

func getJSON(t *testing.T, url string, target any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if target != nil {
		json.NewDecoder(resp.Body).Decode(target)
	}
	return resp.StatusCode
}

func postJSON(t *testing.T, url string, body, target any) int {
	t.Helper()
	data, _ := json.Marshal(body)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()
	if target != nil {
		json.NewDecoder(resp.Body).Decode(target)
	}
	return resp.StatusCode
}

func TestListItems(t *testing.T) {
	server := setupTestServer(t, 5000)

	var items []model.Item
	if status := getJSON(t, server.URL+"/api/items", &items); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if len(items) != 6 {
		t.Errorf("expected 6 items, got %d", len(items))
	}
}

func TestListItemsByType(t *testing.T) {
	server := setupTestServer(t, 5000)

	var items []model.Item
	if status := getJSON(t, server.URL+"/api/items?type=Weapon", &items); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if len(items) == 0 {
		t.Fatal("expected at least one weapon")
	}
	for _, item := range items {
		if item.Type != model.ItemTypeWeapon {
			t.Errorf("filter leaked item of type %q", item.Type)
		}
	}
}

func TestListItemsUnknownType(t *testing.T) {
	server := setupTestServer(t, 5000)

	if status := getJSON(t, server.URL+"/api/items?type=Potion", nil); status != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown type, got %d", status)
	}
}

func TestGetItem(t *testing.T) {
	server := setupTestServer(t, 5000)

	var item model.Item
	if status := getJSON(t, server.URL+"/api/items/3", &item); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if item.Name != "Minor Health Potion" || item.Value != 15 {
		t.Errorf("unexpected item %+v", item)
	}

	if status := getJSON(t, server.URL+"/api/items/99", nil); status != http.StatusNotFound {
		t.Errorf("expected 404 for unknown item, got %d", status)
	}
}

func TestBuyItem(t *testing.T) {
	server := setupTestServer(t, 5000)

	var result map[string]int
	if status := postJSON(t, server.URL+"/api/items/3/buy", nil, &result); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if result["gold"] != 4985 {
		t.Errorf("expected 4985 gold after purchase, got %d", result["gold"])
	}
}

func TestBuyItemInsufficientGold(t *testing.T) {
	server := setupTestServer(t, 10)

	if status := postJSON(t, server.URL+"/api/items/3/buy", nil, nil); status != http.StatusConflict {
		t.Errorf("expected 409 for insufficient gold, got %d", status)
	}

	var result map[string]int
	getJSON(t, server.URL+"/api/gold", &result)
	if result["gold"] != 10 {
		t.Errorf("failed purchase changed gold: got %d", result["gold"])
	}
}

func TestBuyItemNotFound(t *testing.T) {
	server := setupTestServer(t, 5000)

	if status := postJSON(t, server.URL+"/api/items/99/buy", nil, nil); status != http.StatusNotFound {
		t.Errorf("expected 404 for unknown item, got %d", status)
	}
}

func TestListAuctions(t *testing.T) {
	server := setupTestServer(t, 5000)

	var auctions []model.Auction
	if status := getJSON(t, server.URL+"/api/auctions", &auctions); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if len(auctions) != 3 {
		t.Errorf("expected 3 auctions, got %d", len(auctions))
	}
}

func TestPlaceBid(t *testing.T) {
	server := setupTestServer(t, 5000)

	var auction model.Auction
	status := postJSON(t, server.URL+"/api/auctions/auc1/bids", placeBidRequest{Amount: 200}, &auction)
	if status != http.StatusCreated {
		t.Fatalf("expected 201, got %d", status)
	}
	if auction.CurrentPrice != 200 {
		t.Errorf("expected current price 200, got %d", auction.CurrentPrice)
	}
	if auction.Bids[0].Bidder != model.LocalBidder || auction.Bids[0].Amount != 200 {
		t.Errorf("expected newest bid You/200, got %s/%d", auction.Bids[0].Bidder, auction.Bids[0].Amount)
	}
}

func TestPlaceBidTooLow(t *testing.T) {
	server := setupTestServer(t, 5000)

	status := postJSON(t, server.URL+"/api/auctions/auc1/bids", placeBidRequest{Amount: 100}, nil)
	if status != http.StatusConflict {
		t.Errorf("expected 409 for low bid, got %d", status)
	}

	var auction model.Auction
	getJSON(t, server.URL+"/api/auctions/auc1", &auction)
	if auction.CurrentPrice != 150 {
		t.Errorf("rejected bid changed current price to %d", auction.CurrentPrice)
	}
}

func TestPlaceBidUnknownAuction(t *testing.T) {
	server := setupTestServer(t, 5000)

	status := postJSON(t, server.URL+"/api/auctions/missing/bids", placeBidRequest{Amount: 200}, nil)
	if status != http.StatusNotFound {
		t.Errorf("expected 404 for unknown auction, got %d", status)
	}
}

func TestPlaceBidInvalidBody(t *testing.T) {
	server := setupTestServer(t, 5000)

	status := postJSON(t, server.URL+"/api/auctions/auc1/bids", placeBidRequest{Amount: -5}, nil)
	if status != http.StatusBadRequest {
		t.Errorf("expected 400 for non-positive amount, got %d", status)
	}
}
