package db

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryDB is an in-memory document store. Documents round-trip through BSON so
// decoding behaves like the Mongo driver. It is safe for concurrent use.
type MemoryDB struct {
	mu          sync.Mutex
	collections map[string]*memoryCollection
}

// NewMemoryDB creates an empty in-memory database
func NewMemoryDB() *MemoryDB {
	return &MemoryDB{collections: make(map[string]*memoryCollection)}
}

// Collection returns the named collection, creating it on first use
func (m *MemoryDB) Collection(name string) Collection {
	m.mu.Lock()
	defer m.mu.Unlock()

	coll, ok := m.collections[name]
	if !ok {
		coll = &memoryCollection{name: name}
		m.collections[name] = coll
	}
	return coll
}

// Ping always succeeds
func (m *MemoryDB) Ping(ctx context.Context) error {
	return nil
}

// Close is a no-op
func (m *MemoryDB) Close(ctx context.Context) error {
	return nil
}

type memoryCollection struct {
	name string
	mu   sync.RWMutex
	docs []bson.M // insertion order
}

func (c *memoryCollection) InsertOne(ctx context.Context, doc interface{}) (primitive.ObjectID, error) {
	stored, err := toDocument(doc)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id, ok := stored["_id"].(primitive.ObjectID)
	if !ok || id.IsZero() {
		id = primitive.NewObjectID()
		stored["_id"] = id
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexOf(bson.M{"_id": id}) >= 0 {
		return primitive.NilObjectID, fmt.Errorf("duplicate _id %s in %s", id.Hex(), c.name)
	}
	c.docs = append(c.docs, stored)
	return id, nil
}

func (c *memoryCollection) Find(ctx context.Context, filter bson.M, opts FindOptions, results interface{}) error {
	c.mu.RLock()
	matches := make([]bson.M, 0, len(c.docs))
	for _, doc := range c.docs {
		if matchesFilter(doc, filter) {
			matches = append(matches, doc)
		}
	}
	c.mu.RUnlock()

	if keys := opts.sortKeys(); keys != nil {
		sort.SliceStable(matches, func(i, j int) bool {
			for _, key := range keys {
				cmp := compareValues(matches[i][key.Key], matches[j][key.Key])
				if cmp == 0 {
					continue
				}
				if key.Value.(int) < 0 {
					return cmp > 0
				}
				return cmp < 0
			}
			return false
		})
	}
	if opts.Limit > 0 && int64(len(matches)) > opts.Limit {
		matches = matches[:opts.Limit]
	}

	return decodeAll(matches, results)
}

func (c *memoryCollection) FindOne(ctx context.Context, filter bson.M, result interface{}) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx := c.indexOf(filter)
	if idx < 0 {
		return ErrNoDocument
	}
	return decodeInto(c.docs[idx], result)
}

func (c *memoryCollection) UpdateOne(ctx context.Context, filter bson.M, set interface{}, result interface{}) error {
	fields, err := setFields(set)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(filter)
	if idx < 0 {
		return ErrNoDocument
	}

	updated := make(bson.M, len(c.docs[idx])+len(fields))
	for k, v := range c.docs[idx] {
		updated[k] = v
	}
	for k, v := range fields {
		updated[k] = v
	}
	c.docs[idx] = updated

	if result == nil {
		return nil
	}
	return decodeInto(updated, result)
}

func (c *memoryCollection) DeleteOne(ctx context.Context, filter bson.M) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(filter)
	if idx < 0 {
		return ErrNoDocument
	}
	c.docs = append(c.docs[:idx], c.docs[idx+1:]...)
	return nil
}

func (c *memoryCollection) EnsureIndex(ctx context.Context, field string) error {
	return nil
}

// indexOf returns the position of the first match; callers hold the lock
func (c *memoryCollection) indexOf(filter bson.M) int {
	for i, doc := range c.docs {
		if matchesFilter(doc, filter) {
			return i
		}
	}
	return -1
}

func matchesFilter(doc, filter bson.M) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok {
			if want != nil {
				return false
			}
			continue
		}
		if !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

// compareValues orders BSON scalars the way a single-field sort needs:
// missing and null values first, then numbers, strings, ids and dates.
func compareValues(a, b interface{}) int {
	ra, rb := typeRank(a), typeRank(b)
	if ra != rb {
		return ra - rb
	}

	switch av := a.(type) {
	case nil:
		return 0
	case string:
		return strings.Compare(av, b.(string))
	case primitive.ObjectID:
		bv := b.(primitive.ObjectID)
		return strings.Compare(av.Hex(), bv.Hex())
	case primitive.DateTime:
		bv := b.(primitive.DateTime)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case bool:
		bv := b.(bool)
		switch {
		case av == bv:
			return 0
		case !av:
			return -1
		}
		return 1
	}

	af, bf := toFloat(a), toFloat(b)
	switch {
	case af < bf:
		return -1
	case af > bf:
		return 1
	}
	return 0
}

func typeRank(v interface{}) int {
	switch v.(type) {
	case nil:
		return 0
	case int32, int64, float64:
		return 1
	case string:
		return 2
	case primitive.ObjectID:
		return 3
	case bool:
		return 4
	case primitive.DateTime:
		return 5
	default:
		return 6
	}
}

func toFloat(v interface{}) float64 {
	switch n := v.(type) {
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case float64:
		return n
	}
	return 0
}

func decodeInto(doc bson.M, result interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := bson.Unmarshal(raw, result); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	return nil
}

// decodeAll fills results, a pointer to a slice, with one decoded element per document
func decodeAll(docs []bson.M, results interface{}) error {
	ptr := reflect.ValueOf(results)
	if ptr.Kind() != reflect.Ptr || ptr.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("results argument must be a pointer to a slice, got %T", results)
	}

	slice := ptr.Elem()
	elemType := slice.Type().Elem()
	out := reflect.MakeSlice(slice.Type(), 0, len(docs))
	for _, doc := range docs {
		elem := reflect.New(elemType)
		if err := decodeInto(doc, elem.Interface()); err != nil {
			return err
		}
		out = reflect.Append(out, elem.Elem())
	}
	slice.Set(out)
	return nil
}

var _ Database = (*MemoryDB)(nil)
