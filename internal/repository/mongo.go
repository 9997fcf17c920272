package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"marketplace-catalog/internal/models"
)

const (
	vendorsCollection     = "vendors"
	taxonomiesCollection  = "taxonomies"
	storefrontsCollection = "storefronts"
)

// MongoRepository reads the catalog from MongoDB, for deployments where the
// seed data has been imported with cmd/seed instead of living in-process.
type MongoRepository struct {
	vendors     *mongo.Collection
	taxonomies  *mongo.Collection
	storefronts *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{
		vendors:     db.Collection(vendorsCollection),
		taxonomies:  db.Collection(taxonomiesCollection),
		storefronts: db.Collection(storefrontsCollection),
	}
}

func (r *MongoRepository) Storefronts(ctx context.Context) ([]models.StorefrontInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.storefronts.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "key", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	infos := make([]models.StorefrontInfo, 0)
	if err := cursor.All(ctx, &infos); err != nil {
		return nil, err
	}
	return infos, nil
}

func (r *MongoRepository) Vendors(ctx context.Context, storefront string) ([]models.Vendor, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := r.requireStorefront(ctx, storefront); err != nil {
		return nil, err
	}

	cursor, err := r.vendors.Find(ctx, bson.M{"storefront": storefront})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	vendors := make([]models.Vendor, 0)
	if err := cursor.All(ctx, &vendors); err != nil {
		return nil, err
	}
	return vendors, nil
}

func (r *MongoRepository) Vendor(ctx context.Context, storefront, vendorID string) (*models.Vendor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var vendor models.Vendor
	err := r.vendors.FindOne(ctx, bson.M{"storefront": storefront, "id": vendorID}).Decode(&vendor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *MongoRepository) Taxonomy(ctx context.Context, storefront string) (*models.Taxonomy, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var tax models.Taxonomy
	err := r.taxonomies.FindOne(ctx, bson.M{"storefront": storefront}).Decode(&tax)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tax, nil
}

func (r *MongoRepository) requireStorefront(ctx context.Context, key string) error {
	n, err := r.storefronts.CountDocuments(ctx, bson.M{"key": key})
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
