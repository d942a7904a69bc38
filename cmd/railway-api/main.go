// README: Entry point; loads config, wires stores and services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"railway/internal/ai"
	"railway/internal/config"
	railhttp "railway/internal/http"
	"railway/internal/infra"
	"railway/internal/modules/booking"
	"railway/internal/modules/catalog"
	"railway/internal/modules/pricing"
	"railway/internal/modules/profile"
	"railway/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	trains, bookings, users, err := openStores(ctx, cfg)
	if err != nil {
		log.Fatalf("open stores: %v", err)
	}

	catalogSvc := catalog.NewService(trains)
	if err := catalogSvc.SeedIfEmpty(ctx); err != nil {
		log.Fatalf("seed catalog: %v", err)
	}

	pricingSvc := pricing.NewService()

	quotes := pricing.NewQuoteCache(nil)
	if cfg.Redis.Addr != "" {
		quotes = pricing.NewQuoteCache(infra.NewRedis(cfg.Redis.Addr))
	}

	bookingSvc := booking.NewService(bookings)
	profileSvc := profile.NewService(users)

	var assistant ai.LLMProvider
	if cfg.AI.GeminiKey != "" {
		gemini, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer gemini.Close()
		assistant = gemini
	}

	router := railhttp.NewRouter(railhttp.ServerDeps{
		Catalog:   catalogSvc,
		Pricing:   pricingSvc,
		Quotes:    quotes,
		Booking:   bookingSvc,
		Profile:   profileSvc,
		Assistant: assistant,
	})

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := router.Run(cfg.HTTP.Addr); err != nil {
		log.Fatal(err)
	}
}

// openStores picks the persistence medium: Postgres when a DSN is
// configured, flat JSON files in the data dir otherwise. Both satisfy the
// same repository contract.
func openStores(ctx context.Context, cfg config.Config) (
	store.Repository[catalog.Train],
	store.Repository[booking.Reservation],
	store.Repository[profile.UserProfile],
	error,
) {
	if cfg.Store.DSN != "" {
		pool, err := infra.NewDB(ctx, cfg.Store.DSN)
		if err != nil {
			return nil, nil, nil, err
		}

		trains := store.NewPG(pool, "trains", catalog.TrainID)
		bookings := store.NewPG(pool, "bookings", booking.ReservationID)
		users := store.NewPG(pool, "users", profile.ProfileID)
		for _, ensure := range []func(context.Context) error{
			trains.EnsureTable, bookings.EnsureTable, users.EnsureTable,
		} {
			if err := ensure(ctx); err != nil {
				return nil, nil, nil, err
			}
		}
		return trains, bookings, users, nil
	}

	trains, err := store.OpenJSON(filepath.Join(cfg.Store.DataDir, "trains.json"), catalog.TrainID)
	if err != nil {
		return nil, nil, nil, err
	}
	bookings, err := store.OpenJSON(filepath.Join(cfg.Store.DataDir, "bookings.json"), booking.ReservationID)
	if err != nil {
		return nil, nil, nil, err
	}
	users, err := store.OpenJSON(filepath.Join(cfg.Store.DataDir, "users.json"), profile.ProfileID)
	if err != nil {
		return nil, nil, nil, err
	}
	return trains, bookings, users, nil
}
