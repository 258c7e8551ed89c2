package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront/internal/models"
)

type MongoAdminStore struct {
	db *mongo.Database
}

func NewAdminStore(db *mongo.Database) *MongoAdminStore {
	return &MongoAdminStore{db: db}
}

func (s *MongoAdminStore) FindAdminByEmail(ctx context.Context, email string) (models.Admin, error) {
	var admin models.Admin
	err := s.db.Collection(AdminsCollection).FindOne(
		ctx,
		bson.M{
			"email": email,
			"role":  models.RoleAdmin,
		},
	).Decode(&admin)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Admin{}, ErrNotFound
	}
	if err != nil {
		return models.Admin{}, fmt.Errorf("find admin: %w", err)
	}
	return admin, nil
}
