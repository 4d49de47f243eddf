package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "tripbooking/internal/config"
	router "tripbooking/internal/http"
	"tripbooking/internal/http/handlers"
	"tripbooking/internal/landingapi"
	"tripbooking/internal/repositories"
	"tripbooking/internal/services"
	"tripbooking/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	env := intconfig.LoadEnv()
	log := utils.InitLogger(env.IsProduction())
	defer func() { _ = log.Sync() }()

	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db, err := intconfig.ConnectDB(env.DBDSN)
	if err != nil {
		log.Fatal("Gagal konek ke database", zap.Error(err))
	}
	defer intconfig.CloseDB()

	rdb, err := intconfig.ConnectRedis(env)
	if err != nil {
		log.Fatal("Gagal konek ke Redis", zap.Error(err))
	}
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
	}

	client := landingapi.NewClient(env.LandingAPIBaseURL, env.LandingAPITimeout)
	catalog, err := buildCatalog(env, client, rdb)
	if err != nil {
		log.Fatal("Gagal menyiapkan katalog", zap.Error(err))
	}

	var drafts repositories.DraftStore = repositories.NewMemoryDraftStore()
	if rdb != nil {
		drafts = repositories.RedisDraftStore{Client: rdb, TTL: env.DraftTTL}
	}

	ledger := repositories.SubmissionRepo{DB: db}
	if ledger.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := ledger.EnsureTable(ctx); err != nil {
			log.Warn("Tabel booking_submissions belum siap", zap.Error(err))
		}
		cancel()
	}

	booking := services.BookingService{
		Catalog:  catalog,
		Drafts:   drafts,
		Bookings: client,
		Ledger:   ledger,
		Payments: services.PaymentTokens{
			Secret:  []byte(env.PaymentTokenSecret),
			TTL:     env.PaymentTokenTTL,
			BaseURL: env.PaymentBaseURL,
		},
	}

	r := router.NewRouter(env, handlers.BookingHandler{Booking: booking, Submissions: ledger})

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("Server berjalan", zap.String("addr", env.AppAddr), zap.String("catalog", env.CatalogSource))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Gagal menjalankan server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Mematikan server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Shutdown server gagal", zap.Error(err))
		return
	}

	log.Info("Server berhenti dengan aman.")
}

// buildCatalog picks the catalog source and puts the Redis cache in front when available.
func buildCatalog(env intconfig.Env, client *landingapi.Client, rdb *redis.Client) (repositories.Catalog, error) {
	normalizer := landingapi.Normalizer{
		Assets: landingapi.AssetResolver{BaseURL: env.AssetBaseURL, Placeholder: env.PlaceholderImageURL},
	}

	if env.CatalogSource == "memory" {
		return repositories.LoadCatalogFixture(env.CatalogFixture, normalizer)
	}

	var catalog repositories.Catalog = repositories.HTTPCatalog{Client: client, Normalizer: normalizer}
	if rdb != nil {
		catalog = repositories.CachedCatalog{
			Source: catalog,
			Cache:  repositories.RedisCache{Client: rdb},
			TTL:    env.CatalogCacheTTL,
		}
	}
	return catalog, nil
}
