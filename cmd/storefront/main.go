package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fjod/storefront/internal/cart"
	"github.com/fjod/storefront/internal/checkout"
	"github.com/fjod/storefront/internal/config"
	h "github.com/fjod/storefront/internal/http"
	"github.com/fjod/storefront/internal/kv"
	"github.com/fjod/storefront/internal/ledger"
	"github.com/fjod/storefront/internal/profile"
	"github.com/fjod/storefront/internal/session"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// logNotifier is the process-wide fallback for profile notifications;
// per-session checkout notifications go through the session flash.
type logNotifier struct{}

func (logNotifier) Notify(kind, message string) {
	log.Printf("notify [%s]: %s", kind, message)
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	store, cleanup, err := buildStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to set up %s storage: %v", cfg.StorageBackend, err)
	}
	defer cleanup()
	log.Printf("Using %s storage backend", cfg.StorageBackend)

	orderLedger := ledger.New(store)
	profiles := profile.New(store, logNotifier{})
	gateway := checkout.NewSimulatedGateway(cfg.PaymentDelay)

	sessions := session.NewManager(func(id string) *session.Session {
		flash := &session.Flash{}
		cartStore := cart.NewStore()
		return &session.Session{
			ID:       id,
			Cart:     cartStore,
			Checkout: checkout.New(cartStore, orderLedger, gateway, flash, flash),
			Flash:    flash,
		}
	})

	router := h.NewRouter(cfg, sessions, orderLedger, profiles)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: router,
	}

	go func() {
		log.Printf("Storefront listening on port %s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down storefront...")
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	log.Println("Storefront stopped")
}

// buildStore selects the kv backend from configuration and returns it
// with its cleanup function.
func buildStore(ctx context.Context, cfg *config.Config) (kv.Store, func(), error) {
	switch cfg.StorageBackend {
	case "memory":
		return kv.NewMemory(), func() {}, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, nil, fmt.Errorf("redis connection failed: %w", err)
		}
		return kv.NewRedis(client), func() { client.Close() }, nil

	case "mongo":
		db, err := kv.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDBName)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := db.Client().Disconnect(ctx); err != nil {
				log.Printf("mongo disconnect error: %v", err)
			}
		}
		return kv.NewMongo(db), cleanup, nil

	case "postgres":
		cred := &kv.Credentials{
			Host:              cfg.PostgresHost,
			Port:              cfg.PostgresPort,
			User:              cfg.PostgresUser,
			Password:          cfg.PostgresPassword,
			DBName:            cfg.PostgresDB,
			MigrationsDirPath: cfg.MigrationsDir,
		}
		pg, err := kv.NewPostgres(cred)
		if err != nil {
			return nil, nil, err
		}
		if err := pg.RunMigrations(cred); err != nil {
			pg.Close()
			return nil, nil, err
		}
		cleanup := func() {
			if err := pg.Close(); err != nil {
				log.Printf("postgres close error: %v", err)
			}
		}
		return pg, cleanup, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
