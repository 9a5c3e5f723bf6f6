package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/yigit/placementportal/internal/config"
	"github.com/yigit/placementportal/internal/pkg/helpers"
	"github.com/yigit/placementportal/internal/pkg/logger"
)

// MongoDB holds the client and the selected database
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// NewMongoDB connects to MongoDB and verifies the connection with a ping
func NewMongoDB(cfg *config.Config) (*MongoDB, error) {
	timeout := helpers.ParseDuration(cfg.Database.ConnectTimeout, 10*time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(cfg.Database.URI).
		SetConnectTimeout(timeout)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	return &MongoDB{
		Client:   client,
		Database: client.Database(cfg.Database.Name),
	}, nil
}

// Collection returns the named collection
func (m *MongoDB) Collection(name string) Collection {
	return &mongoCollection{coll: m.Database.Collection(name)}
}

// Ping checks the primary is reachable
func (m *MongoDB) Ping(ctx context.Context) error {
	return m.Client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client
func (m *MongoDB) Close(ctx context.Context) error {
	if m.Client == nil {
		return nil
	}
	return m.Client.Disconnect(ctx)
}

type mongoCollection struct {
	coll *mongo.Collection
}

func (c *mongoCollection) InsertOne(ctx context.Context, doc interface{}) (primitive.ObjectID, error) {
	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		logger.Error().Err(err).Str("collection", c.coll.Name()).Msg("Error inserting document")
		return primitive.NilObjectID, fmt.Errorf("error inserting into %s: %w", c.coll.Name(), err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected _id type %T in %s", res.InsertedID, c.coll.Name())
	}
	return id, nil
}

func (c *mongoCollection) Find(ctx context.Context, filter bson.M, opts FindOptions, results interface{}) error {
	if filter == nil {
		filter = bson.M{}
	}

	findOpts := options.Find()
	if keys := opts.sortKeys(); keys != nil {
		findOpts.SetSort(keys)
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}

	cursor, err := c.coll.Find(ctx, filter, findOpts)
	if err != nil {
		logger.Error().Err(err).Str("collection", c.coll.Name()).Msg("Error executing find")
		return fmt.Errorf("error querying %s: %w", c.coll.Name(), err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, results); err != nil {
		return fmt.Errorf("error decoding %s documents: %w", c.coll.Name(), err)
	}
	return nil
}

func (c *mongoCollection) FindOne(ctx context.Context, filter bson.M, result interface{}) error {
	err := c.coll.FindOne(ctx, filter).Decode(result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNoDocument
		}
		return fmt.Errorf("error finding document in %s: %w", c.coll.Name(), err)
	}
	return nil
}

func (c *mongoCollection) UpdateOne(ctx context.Context, filter bson.M, set interface{}, result interface{}) error {
	fields, err := setFields(set)
	if err != nil {
		return err
	}

	// Nothing to set: the call only reports whether the document exists
	if len(fields) == 0 {
		if result == nil {
			result = &bson.M{}
		}
		return c.FindOne(ctx, filter, result)
	}

	update := bson.M{"$set": fields}

	if result != nil {
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		err := c.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(result)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return ErrNoDocument
			}
			return fmt.Errorf("error updating document in %s: %w", c.coll.Name(), err)
		}
		return nil
	}

	res, err := c.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating document in %s: %w", c.coll.Name(), err)
	}
	if res.MatchedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

func (c *mongoCollection) DeleteOne(ctx context.Context, filter bson.M) error {
	res, err := c.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("error deleting document from %s: %w", c.coll.Name(), err)
	}
	if res.DeletedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

func (c *mongoCollection) EnsureIndex(ctx context.Context, field string) error {
	_, err := c.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: field, Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("error creating index on %s.%s: %w", c.coll.Name(), field, err)
	}
	return nil
}

var _ Database = (*MongoDB)(nil)
