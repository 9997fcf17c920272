// Command seed imports the static storefront catalogs into MongoDB so the
// API can run with CATALOG_BACKEND=mongo.
package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"marketplace-catalog/internal/config"
	"marketplace-catalog/internal/database"
	"marketplace-catalog/internal/seed"
)

func main() {
	cfg := config.LoadConfig()
	client := database.Connect(cfg.MongoURI)
	db := client.Database(cfg.MongoDB)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	storefronts := db.Collection("storefronts")
	taxonomies := db.Collection("taxonomies")
	vendors := db.Collection("vendors")

	upsert := options.Replace().SetUpsert(true)

	total := 0
	for _, s := range seed.Storefronts() {
		if _, err := storefronts.ReplaceOne(ctx, bson.M{"key": s.Info.Key}, s.Info, upsert); err != nil {
			log.Fatalf("❌ Could not upsert storefront %s: %v", s.Info.Key, err)
		}
		if _, err := taxonomies.ReplaceOne(ctx, bson.M{"storefront": s.Info.Key}, s.Taxonomy, upsert); err != nil {
			log.Fatalf("❌ Could not upsert taxonomy %s: %v", s.Info.Key, err)
		}
		for _, v := range s.Vendors {
			filter := bson.M{"storefront": v.Storefront, "id": v.ID}
			if _, err := vendors.ReplaceOne(ctx, filter, v, upsert); err != nil {
				log.Fatalf("❌ Could not upsert vendor %s: %v", v.ID, err)
			}
			total++
		}
		log.Printf("✅ Seeded storefront %s (%d vendors)", s.Info.Key, len(s.Vendors))
	}
	log.Printf("🌱 Done: %d vendors across %d storefronts", total, len(seed.Storefronts()))

	if err := client.Disconnect(context.Background()); err != nil {
		log.Println("⚠️ Disconnect failed:", err)
	}
}
