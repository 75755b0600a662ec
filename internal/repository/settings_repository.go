package repository

import (
	"context"
	"time"

	"github.com/mehrbod2002/capitalmarket/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SettingsRepository interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
	SaveSettings(ctx context.Context, settings *models.Settings) error
}

type MongoSettingsRepository struct {
	collection *mongo.Collection
}

func NewSettingsRepository(client *mongo.Client, dbName, collectionName string) SettingsRepository {
	collection := client.Database(dbName).Collection(collectionName)
	return &MongoSettingsRepository{collection: collection}
}

// GetSettings returns nil, nil when no settings document has been saved yet.
func (r *MongoSettingsRepository) GetSettings(ctx context.Context) (*models.Settings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var settings models.Settings
	err := r.collection.FindOne(ctx, bson.M{"_id": models.SettingsID}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *MongoSettingsRepository) SaveSettings(ctx context.Context, settings *models.Settings) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	settings.ID = models.SettingsID
	settings.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": models.SettingsID}, settings, options.Replace().SetUpsert(true))
	return err
}
