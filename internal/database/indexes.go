package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureProductIndexes indexes both product collections for the deal and
// listing queries.
func EnsureProductIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	models := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "promotionKey", Value: 1}},
			Options: options.Index().
				SetName("promotionKey_index").
				SetPartialFilterExpression(bson.M{
					"promotionKey": bson.M{
						"$exists": true,
					},
				}),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("createdAt_desc"),
		},
	}

	for _, name := range []string{ProductsCollection, OfficialProductsCollection} {
		log.Printf("EnsureProductIndexes: creating %s indexes", name)
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			log.Printf("EnsureProductIndexes: %s index error: %v", name, err)
			return err
		}
	}
	log.Println("EnsureProductIndexes: product indexes created")
	return nil
}

func EnsureAdIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection(AdsCollection).Indexes()

	activeIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "active", Value: 1}, {Key: "type", Value: 1}},
		Options: options.Index().SetName("active_type_index"),
	}

	log.Println("EnsureAdIndexes: creating active_type_index index")
	_, err := indexes.CreateOne(ctx, activeIndex)
	if err != nil {
		log.Println("EnsureAdIndexes: active_type index error:", err)
		return err
	}
	log.Println("EnsureAdIndexes: active_type_index index created")
	return nil
}

func EnsureAdminIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection(AdminsCollection).Indexes()

	emailIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetName("email_unique").
			SetUnique(true),
	}

	log.Println("EnsureAdminIndexes: creating email_unique index")
	_, err := indexes.CreateOne(ctx, emailIndex)
	if err != nil {
		log.Println("EnsureAdminIndexes: email index error:", err)
		return err
	}
	log.Println("EnsureAdminIndexes: email_unique index created")
	return nil
}
