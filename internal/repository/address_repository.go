package repository

import (
	"context"
	"time"

	"github.com/mehrbod2002/capitalmarket/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AddressRepository interface {
	GetAddresses(ctx context.Context) (*models.DepositAddresses, error)
	SaveAddresses(ctx context.Context, addresses *models.DepositAddresses) error
}

type MongoAddressRepository struct {
	collection *mongo.Collection
}

func NewAddressRepository(client *mongo.Client, dbName, collectionName string) AddressRepository {
	collection := client.Database(dbName).Collection(collectionName)
	return &MongoAddressRepository{collection: collection}
}

// GetAddresses returns the most recently inserted address document.
func (r *MongoAddressRepository) GetAddresses(ctx context.Context) (*models.DepositAddresses, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var addresses models.DepositAddresses
	opts := options.FindOne().SetSort(bson.M{"_id": -1})
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&addresses)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &addresses, nil
}

func (r *MongoAddressRepository) SaveAddresses(ctx context.Context, addresses *models.DepositAddresses) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, addresses)
	return err
}
