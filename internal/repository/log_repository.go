package repository

import (
	"context"
	"time"

	"github.com/mehrbod2002/capitalmarket/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LogRepository interface {
	SaveLog(ctx context.Context, log *models.LogEntry) error
	GetAllLogs(ctx context.Context, page, limit int) ([]*models.LogEntry, error)
	GetLogsByUserEmail(ctx context.Context, email string, page, limit int) ([]*models.LogEntry, error)
}

type MongoLogRepository struct {
	collection *mongo.Collection
}

func NewLogRepository(client *mongo.Client, dbName, collectionName string) LogRepository {
	collection := client.Database(dbName).Collection(collectionName)
	return &MongoLogRepository{collection: collection}
}

func (r *MongoLogRepository) SaveLog(ctx context.Context, log *models.LogEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	log.ID = primitive.NewObjectID()
	log.Timestamp = time.Now()
	_, err := r.collection.InsertOne(ctx, log)
	return err
}

func (r *MongoLogRepository) GetAllLogs(ctx context.Context, page, limit int) ([]*models.LogEntry, error) {
	return r.find(ctx, bson.M{}, page, limit)
}

func (r *MongoLogRepository) GetLogsByUserEmail(ctx context.Context, email string, page, limit int) ([]*models.LogEntry, error) {
	return r.find(ctx, bson.M{"user_email": email}, page, limit)
}

func (r *MongoLogRepository) find(ctx context.Context, filter bson.M, page, limit int) ([]*models.LogEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	logs := []*models.LogEntry{}
	skip := (page - 1) * limit
	findOptions := options.Find().SetSort(bson.M{"timestamp": -1}).SetSkip(int64(skip)).SetLimit(int64(limit))
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
