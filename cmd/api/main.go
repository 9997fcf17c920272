package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"marketplace-catalog/internal/cache"
	"marketplace-catalog/internal/config"
	"marketplace-catalog/internal/database"
	"marketplace-catalog/internal/handlers"
	"marketplace-catalog/internal/middleware"
	"marketplace-catalog/internal/repository"
	"marketplace-catalog/internal/routes"
	"marketplace-catalog/internal/seed"
)

func main() {
	cfg := config.LoadConfig()

	var repo repository.Repository
	switch cfg.CatalogBackend {
	case "mongo":
		client := database.Connect(cfg.MongoURI)
		repo = repository.NewMongoRepository(client.Database(cfg.MongoDB))
		log.Println("📦 Catalog backend: mongo")
	default:
		mem := repository.NewMemoryRepository(seed.Storefronts())
		mem.StartShuffle(cfg.ShuffleInterval)
		defer mem.StopShuffle()
		repo = mem
		log.Println("📦 Catalog backend: memory")
	}

	var store cache.Store
	if cfg.RedisURL != "" {
		redisStore, err := cache.NewRedis(context.Background(), cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			log.Fatal("❌ Could not connect to Redis:", err)
		}
		defer redisStore.Close()
		store = redisStore
		log.Println("🗄️ Cache backend: redis")
	} else {
		mem := cache.NewMemory(cfg.CacheTTL)
		defer mem.Close()
		store = mem
		log.Println("🗄️ Cache backend: memory")
	}

	h := &handlers.StorefrontHandler{
		Repo:     repo,
		Cache:    store,
		PageSize: cfg.PageSize,
	}

	router := gin.Default()
	router.Use(cors.Default())
	router.Use(middleware.RequestID())
	routes.RegisterRoutes(router, h)

	log.Println("🚀 Server running on port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("❌ Server stopped:", err)
	}
}
