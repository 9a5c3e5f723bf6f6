package db

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNoDocument is returned when a filter matches no document
var ErrNoDocument = errors.New("no document matches the filter")

// SortOrder selects the direction of a sorted find
type SortOrder int

const (
	Ascending  SortOrder = 1
	Descending SortOrder = -1
)

// FindOptions narrows a Find call. The zero value returns every match in store order.
// A sort on any field other than _id breaks ties on _id in the same direction, so
// documents written in the same millisecond keep their insertion order.
type FindOptions struct {
	SortField string
	Order     SortOrder
	Limit     int64
}

// Collection is the subset of document-store operations the repositories rely on.
// Filters are field-equality only.
type Collection interface {
	// InsertOne stores doc and returns the generated _id
	InsertOne(ctx context.Context, doc interface{}) (primitive.ObjectID, error)

	// Find decodes every matching document into results, a pointer to a slice
	Find(ctx context.Context, filter bson.M, opts FindOptions, results interface{}) error

	// FindOne decodes the first match into result or returns ErrNoDocument
	FindOne(ctx context.Context, filter bson.M, result interface{}) error

	// UpdateOne applies a $set of every non-empty field of set to the first match.
	// When result is non-nil the updated document is decoded into it.
	UpdateOne(ctx context.Context, filter bson.M, set interface{}, result interface{}) error

	// DeleteOne removes the first match or returns ErrNoDocument
	DeleteOne(ctx context.Context, filter bson.M) error

	// EnsureIndex creates a non-unique ascending index on field
	EnsureIndex(ctx context.Context, field string) error
}

// Database hands out named collections and owns the underlying connection
type Database interface {
	Collection(name string) Collection
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// sortKeys returns the sort document for opts, or nil when opts does not sort
func (opts FindOptions) sortKeys() bson.D {
	if opts.SortField == "" {
		return nil
	}
	order := opts.Order
	if order == 0 {
		order = Ascending
	}
	keys := bson.D{{Key: opts.SortField, Value: int(order)}}
	if opts.SortField != "_id" {
		keys = append(keys, bson.E{Key: "_id", Value: int(order)})
	}
	return keys
}

// ByID builds the _id equality filter
func ByID(id primitive.ObjectID) bson.M {
	return bson.M{"_id": id}
}

// toDocument converts a struct or map into a fresh bson.M, honouring omitempty
// tags and normalising Go values (time.Time becomes primitive.DateTime)
func toDocument(v interface{}) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	doc := bson.M{}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return doc, nil
}

// setFields strips _id so a $set never touches the immutable key
func setFields(set interface{}) (bson.M, error) {
	doc, err := toDocument(set)
	if err != nil {
		return nil, err
	}
	fields := make(bson.M, len(doc))
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		fields[k] = v
	}
	return fields, nil
}
