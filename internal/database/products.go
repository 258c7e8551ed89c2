package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront/internal/catalog"
	"storefront/internal/models"
)

type MongoProductStore struct {
	db *mongo.Database
}

func NewProductStore(db *mongo.Database) *MongoProductStore {
	return &MongoProductStore{db: db}
}

// visibleFilter narrows the query on deletion flags and status. Moderation
// is checked after decoding, since legacy documents store it inconsistently.
func visibleFilter() bson.M {
	return bson.M{
		"isDeleted":         bson.M{"$ne": true},
		"isDeletedByAdmin":  bson.M{"$ne": true},
		"isDeletedBySeller": bson.M{"$ne": true},
		"status":            bson.M{"$nin": bson.A{models.StatusArchived, models.StatusInactive}},
	}
}

func idFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": bson.M{"$in": bson.A{oid, id}}}
	}
	return bson.M{"_id": id}
}

func (s *MongoProductStore) Visible(ctx context.Context, source Source) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.db.Collection(string(source)).Find(ctx, visibleFilter(), opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", source, err)
	}
	defer cursor.Close(ctx)

	products, err := decodeProducts(ctx, cursor)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", source, err)
	}
	return catalog.FilterBuyerVisible(products), nil
}

func (s *MongoProductStore) FindVisible(ctx context.Context, id string) (models.Product, error) {
	if id == "" {
		return models.Product{}, ErrNotFound
	}

	filter := visibleFilter()
	for key, value := range idFilter(id) {
		filter[key] = value
	}

	for _, source := range []Source{SourceMarketplace, SourceOfficial} {
		var raw bson.M
		err := s.db.Collection(string(source)).FindOne(ctx, filter).Decode(&raw)
		if errors.Is(err, mongo.ErrNoDocuments) {
			continue
		}
		if err != nil {
			return models.Product{}, fmt.Errorf("find %s %s: %w", source, id, err)
		}

		product, ok := catalog.NormalizeDocument(raw)
		if !ok || !catalog.IsBuyerVisible(product) {
			continue
		}
		return product, nil
	}

	return models.Product{}, ErrNotFound
}

// Upsert replaces each product by id, inserting the ones not stored yet.
// Products without an id get a fresh ObjectID.
func (s *MongoProductStore) Upsert(ctx context.Context, source Source, products []models.Product) (UpsertResult, error) {
	if len(products) == 0 {
		return UpsertResult{}, nil
	}

	writes := make([]mongo.WriteModel, 0, len(products))
	for _, p := range products {
		doc, err := replacementDocument(p)
		if err != nil {
			return UpsertResult{}, fmt.Errorf("encode product %s: %w", p.ID, err)
		}

		var filter bson.M
		if p.ID == "" {
			filter = bson.M{"_id": primitive.NewObjectID()}
		} else if oid, err := primitive.ObjectIDFromHex(p.ID); err == nil {
			filter = bson.M{"_id": oid}
		} else {
			filter = bson.M{"_id": p.ID}
		}

		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(filter).
			SetReplacement(doc).
			SetUpsert(true))
	}

	res, err := s.db.Collection(string(source)).BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return UpsertResult{}, fmt.Errorf("upsert %s: %w", source, err)
	}

	return UpsertResult{
		Inserted: int(res.UpsertedCount),
		Updated:  int(res.MatchedCount),
	}, nil
}

func replacementDocument(p models.Product) (bson.M, error) {
	data, err := bson.Marshal(p)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	delete(doc, "_id")
	return doc, nil
}

func decodeProducts(ctx context.Context, cursor *mongo.Cursor) ([]models.Product, error) {
	products := make([]models.Product, 0)

	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return nil, err
		}

		product, ok := catalog.NormalizeDocument(raw)
		if !ok {
			continue
		}
		products = append(products, product)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return products, nil
}
