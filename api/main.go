package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/reev-boutik/produit/internal/auth"
	"github.com/reev-boutik/produit/internal/config"
	"github.com/reev-boutik/produit/internal/db"
	router "github.com/reev-boutik/produit/internal/http"
	"github.com/reev-boutik/produit/internal/http/handlers"
	"github.com/reev-boutik/produit/internal/http/ratelimit"
	"github.com/reev-boutik/produit/internal/rates"
	"github.com/reev-boutik/produit/internal/repo"
	"github.com/reev-boutik/produit/internal/scanlog"
	"github.com/reev-boutik/produit/internal/search"
)

// @title Produit Price Lookup API
// @version 1.0
// @description REST API for barcode price lookup and ranked product search.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("could not load configuration: %v", err)
	}

	auth.SetSecret(cfg.JWTSecret)
	ratelimit.Configure(cfg.RateLimit, cfg.RateBurst)
	go ratelimit.StartVisitorCleanupLoop()

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("could not connect to database: ", err)
	}
	defer database.Close()

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		ctx := context.Background()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("could not connect to Redis: %v", err)
		}
		defer rdb.Close()

		scanService := scanlog.NewService(rdb, ctx)
		handlers.SetScanService(scanService)
		go scanService.StartDailySummary(cfg.ScanSummaryHour)
	}

	handlers.SetProductRepo(repo.NewPostgresProductRepository(database))
	handlers.SetPriceHistoryRepo(repo.NewPostgresPriceHistoryRepository(database))
	handlers.SetScanRepo(repo.NewPostgresScanRepository(database))
	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))

	store := repo.NewPostgresSearchStore(database, cfg.CandidateCap)
	handlers.SetSearchEngine(search.NewEngine(store))

	handlers.SetRatesService(rates.New(rates.WithURL(cfg.RatesURL)))

	r := router.NewRouter()
	log.Println("server running on", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}
