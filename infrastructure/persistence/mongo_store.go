package persistence

import (
	"context"
	"errors"

	"creatorflow/infrastructure/logger"
	"creatorflow/infrastructure/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var errMongoUnavailable = errors.New("mongo client is not configured")

type mongoEntry struct {
	Key       string        `bson:"_id"`
	Value     string        `bson:"value"`
	UpdatedAt bson.DateTime `bson:"updatedAt"`
}

// MongoStore keeps client storage as one document per key.
type MongoStore struct {
	client     *mongo.Client
	database   string
	collection string
}

func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	if database == "" {
		database = "creatorflow"
	}
	return &MongoStore{client: client, database: database, collection: storageTable}
}

func (s *MongoStore) coll() (*mongo.Collection, error) {
	if s.client == nil {
		return nil, errMongoUnavailable
	}
	return s.client.Database(s.database).Collection(s.collection), nil
}

func (s *MongoStore) Get(ctx context.Context, key string) (string, bool, error) {
	coll, err := s.coll()
	if err != nil {
		return "", false, err
	}
	var entry mongoEntry
	err = coll.FindOne(ctx, bson.D{{Key: "_id", Value: key}}).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		logger.GetLogger().WithField("error", err).WithField("key", key).Error("Error while reading client storage (mongo)")
		return "", false, err
	}
	return entry.Value, true, nil
}

func (s *MongoStore) Set(ctx context.Context, key string, value string) error {
	coll, err := s.coll()
	if err != nil {
		return err
	}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "value", Value: value},
		{Key: "updatedAt", Value: bson.NewDateTimeFromTime(utils.GetCurrentTime())},
	}}}
	_, err = coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: key}}, update, options.UpdateOne().SetUpsert(true))
	if err != nil {
		logger.GetLogger().WithField("error", err).WithField("key", key).Error("Error while writing client storage (mongo)")
	}
	return err
}

func (s *MongoStore) Delete(ctx context.Context, key string) error {
	coll, err := s.coll()
	if err != nil {
		return err
	}
	if _, err := coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: key}}); err != nil {
		logger.GetLogger().WithField("error", err).WithField("key", key).Error("Error while deleting client storage (mongo)")
		return err
	}
	return nil
}
