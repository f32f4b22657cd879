package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPersistence backs the Persistence contract with a MongoDB database.
// Collection names map straight onto MongoDB collections.
type MongoPersistence struct {
	client *mongo.Client
	db     *mongo.Database
}

// ConnectMongo dials MongoDB and verifies it is reachable before the first
// order write. The pool is sized for a session-scoped core, not a fleet of
// request handlers.
func ConnectMongo(ctx context.Context, uri, database string) (*MongoPersistence, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(20)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongodb ping: %w", err)
	}

	return &MongoPersistence{client: client, db: client.Database(database)}, nil
}

// Close disconnects the underlying client.
func (m *MongoPersistence) Close() error {
	return m.client.Disconnect(context.Background())
}

func (m *MongoPersistence) Create(ctx context.Context, collection string, record interface{}) (string, error) {
	res, err := m.db.Collection(collection).InsertOne(ctx, record)
	if err != nil {
		return "", fmt.Errorf("failed to create record in %s: %w", collection, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprintf("%v", res.InsertedID), nil
	}
	return oid.Hex(), nil
}

func (m *MongoPersistence) Update(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid record id %q: %w", id, err)
	}

	res, err := m.db.Collection(collection).UpdateByID(ctx, oid, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update record %s in %s: %w", id, collection, err)
	}
	if res.MatchedCount == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (m *MongoPersistence) Find(ctx context.Context, collection, id string, out interface{}) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid record id %q: %w", id, err)
	}

	err = m.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrRecordNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to find record %s in %s: %w", id, collection, err)
	}
	return nil
}
