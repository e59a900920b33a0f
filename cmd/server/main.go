package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/jzaletel/tradepost/internal/api"
	"github.com/jzaletel/tradepost/internal/catalog"
	"github.com/jzaletel/tradepost/internal/config"
	"github.com/jzaletel/tradepost/internal/events"
	"github.com/jzaletel/tradepost/internal/sim"
	"github.com/jzaletel/tradepost/internal/store"
	"github.com/jzaletel/tradepost/internal/web"
)

func main() {
	// Optional .env file for local overrides.
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: tradepost <init|serve>")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "init":
		cmdInit(os.Args[2:])
	case "serve":
		cmdServe(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\nUsage: tradepost <init|serve>\n", os.Args[1])
		os.Exit(1)
	}
}

func cmdInit(args []string) {
	cfg := config.Load()

	fs := flag.NewFlagSet("init", flag.ExitOnError)
	dbPath := fs.String("db", cfg.CatalogPath, "path to catalog SQLite file")
	fs.Parse(args)

	if _, err := os.Stat(*dbPath); err == nil {
		fmt.Fprintf(os.Stderr, "Error: catalog file %s already exists\n", *dbPath)
		os.Exit(1)
	}

	database, err := initCatalog(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	database.Close()

	fmt.Printf("Catalog created: %s\n", *dbPath)
	fmt.Println("Schema initialized and seed data loaded.")
}

func cmdServe(args []string) {
	cfg := config.Load()

	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	dbPath := fs.String("db", cfg.CatalogPath, "path to catalog SQLite file")
	addr := fs.String("addr", cfg.Addr, "listen address")
	fs.Parse(args)

	// Check if the catalog exists, auto-init if not.
	if _, err := os.Stat(*dbPath); os.IsNotExist(err) {
		database, err := initCatalog(*dbPath)
		if err != nil {
			log.Fatalf("Failed to initialize catalog: %v", err)
		}
		database.Close()
		fmt.Printf("Catalog created: %s\n", *dbPath)
	}

	database, err := catalog.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open catalog: %v", err)
	}
	defer database.Close()

	if err := catalog.EnsureSchema(database); err != nil {
		log.Fatalf("Failed to ensure catalog schema: %v", err)
	}

	ctx := context.Background()

	items, err := catalog.Items(ctx, database)
	if err != nil {
		log.Fatalf("Failed to load items: %v", err)
	}
	auctions, err := catalog.Auctions(ctx, database)
	if err != nil {
		log.Fatalf("Failed to load auctions: %v", err)
	}

	// One wallet shared by the shop and the auction house.
	wallet := store.NewWallet(cfg.StartingGold)
	bus := events.NewBus()

	shop := store.NewShop(wallet)
	shop.Load(items)

	house := store.NewAuctionHouse(wallet, bus)
	house.SetAuctions(auctions)

	// Log every domain event the stores publish.
	eventCh, unsubscribe := bus.Subscribe(64)
	defer unsubscribe()
	go func() {
		for env := range eventCh {
			slog.Info("event", "id", env.EventID, "type", env.EventType, "payload", env.Payload)
		}
	}()

	simulator := sim.NewSimulator(house, cfg.SimInterval, cfg.SimIncrement)
	simulator.Start()
	defer simulator.Stop()

	sweeper := sim.NewSweeper(house, cfg.SweepInterval)
	sweeper.Start()
	defer sweeper.Stop()

	// Set up routers.
	apiRouter := api.NewRouter(shop, house)
	webRouter, err := web.NewRouter(shop, house)
	if err != nil {
		log.Fatalf("Failed to set up web router: %v", err)
	}

	// Combine: API routes take priority, web routes handle the rest.
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	mux.Handle("/", webRouter)

	handler := api.LoggingMiddleware(mux)

	fmt.Printf("Server listening on %s\n", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initCatalog creates a new catalog database, applies the schema, and loads
// the seed items and auctions.
func initCatalog(path string) (*sql.DB, error) {
	database, err := catalog.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}

	if err := catalog.EnsureSchema(database); err != nil {
		database.Close()
		os.Remove(path)
		return nil, fmt.Errorf("applying schema: %w", err)
	}

	if err := catalog.Seed(context.Background(), database, time.Now()); err != nil {
		database.Close()
		os.Remove(path)
		return nil, fmt.Errorf("seeding catalog: %w", err)
	}

	return database, nil
}
