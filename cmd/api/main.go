package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/bookeasy-app/booking-api/internal/bookeo"
	"github.com/bookeasy-app/booking-api/internal/config"
	dbpkg "github.com/bookeasy-app/booking-api/internal/db"
	"github.com/bookeasy-app/booking-api/internal/identity"
	"github.com/bookeasy-app/booking-api/internal/infra/sessionstore"
	"github.com/bookeasy-app/booking-api/internal/routes"
	"github.com/bookeasy-app/booking-api/internal/wizard"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	// the scheduling provider is mandatory, the app cannot book without it
	scheduler, err := bookeo.NewClient(cfg.BookeoAppID, cfg.BookeoSecretKey, cfg.BookeoBaseURL)
	if err != nil {
		log.Fatalf("bookeo credentials missing: %v", err)
	}

	var provider identity.Provider
	switch cfg.AuthMode {
	case "mock":
		provider = identity.NewMockProvider()
	default:
		provider = identity.NewGormProvider(db)
	}

	var store wizard.Store
	if opts, err := redis.ParseURL(cfg.RedisURL); err == nil {
		store = sessionstore.NewRedisStore(redis.NewClient(opts))
	} else {
		log.Printf("invalid REDIS_URL, wizard sessions held in memory: %v", err)
		store = wizard.NewMemoryStore()
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, routes.Deps{
		Scheduler:    scheduler,
		Provider:     provider,
		SessionStore: store,
	})

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
