package repository

import (
	"context"
	"time"

	"github.com/mehrbod2002/capitalmarket/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AdminRepository interface {
	SaveAdmin(ctx context.Context, admin *models.AdminAccount) error
	GetAdminByUsername(ctx context.Context, username string) (*models.AdminAccount, error)
}

type MongoAdminRepository struct {
	collection *mongo.Collection
}

func NewAdminRepository(client *mongo.Client, dbName, collectionName string) AdminRepository {
	collection := client.Database(dbName).Collection(collectionName)
	return &MongoAdminRepository{collection: collection}
}

func (r *MongoAdminRepository) SaveAdmin(ctx context.Context, admin *models.AdminAccount) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, admin)
	return err
}

func (r *MongoAdminRepository) GetAdminByUsername(ctx context.Context, username string) (*models.AdminAccount, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var admin models.AdminAccount
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&admin)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
