package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	CatalogBackend  string // "memory" or "mongo"
	MongoURI        string
	MongoDB         string
	RedisURL        string // empty = in-process cache
	CacheTTL        time.Duration
	PageSize        int
	ShuffleInterval time.Duration // 0 disables the cosmetic vendor shuffle
}

func LoadConfig() *Config {
	// Only load .env when running locally; deployed environments inject
	// their variables directly.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Error loading .env file:", err)
		} else {
			log.Println("✅ .env file loaded successfully")
		}
	} else {
		log.Println("🌐 Using system environment variables")
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		CatalogBackend:  getEnv("CATALOG_BACKEND", "memory"),
		MongoURI:        getEnv("MONGO_URI", ""),
		MongoDB:         getEnv("MONGO_DB", "marketplaceCatalog"),
		RedisURL:        getEnv("REDIS_URL", ""),
		CacheTTL:        getDuration("CACHE_TTL", 5*time.Minute),
		PageSize:        getInt("PAGE_SIZE", 6),
		ShuffleInterval: getDuration("SHUFFLE_INTERVAL", 0),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
		log.Printf("⚠️ Ignoring invalid %s=%q", key, value)
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil && d >= 0 {
			return d
		}
		log.Printf("⚠️ Ignoring invalid %s=%q", key, value)
	}
	return fallback
}
