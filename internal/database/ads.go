package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront/internal/catalog"
	"storefront/internal/models"
)

type MongoAdStore struct {
	db *mongo.Database
}

// activeValues matches the spellings of "active" that catalog normalization
// accepts as true.
var activeValues = bson.A{true, "true", "True", "TRUE", "t", "T", "1"}

func NewAdStore(db *mongo.Database) *MongoAdStore {
	return &MongoAdStore{db: db}
}

func (s *MongoAdStore) Active(ctx context.Context) ([]models.Ad, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.db.Collection(AdsCollection).Find(ctx, bson.M{"active": bson.M{"$in": activeValues}}, opts)
	if err != nil {
		return nil, fmt.Errorf("find ads: %w", err)
	}
	defer cursor.Close(ctx)

	ads := make([]models.Ad, 0)
	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode ad: %w", err)
		}
		if ad, ok := catalog.NormalizeAdDocument(raw); ok {
			ads = append(ads, ad)
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate ads: %w", err)
	}
	return ads, nil
}
