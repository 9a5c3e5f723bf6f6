package db

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type testDoc struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  *string            `bson:"name,omitempty"`
	Score *float64           `bson:"score,omitempty"`
	At    time.Time          `bson:"at,omitempty"`
}

func strPtr(s string) *string      { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestMemoryCollection_InsertAndFindOne(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryDB().Collection("things")

	id, err := coll.InsertOne(ctx, testDoc{Name: strPtr("alpha")})
	if err != nil {
		t.Fatalf("InsertOne() unexpected error: %v", err)
	}
	if id.IsZero() {
		t.Fatal("InsertOne() should generate an _id")
	}

	var got testDoc
	if err := coll.FindOne(ctx, ByID(id), &got); err != nil {
		t.Fatalf("FindOne() unexpected error: %v", err)
	}
	if got.ID != id || got.Name == nil || *got.Name != "alpha" {
		t.Errorf("FindOne() = %+v", got)
	}
	if got.Score != nil {
		t.Errorf("absent field should decode as nil, got %v", *got.Score)
	}

	if err := coll.FindOne(ctx, bson.M{"name": "beta"}, &got); !errors.Is(err, ErrNoDocument) {
		t.Errorf("FindOne(missing) error = %v, want ErrNoDocument", err)
	}
}

func TestMemoryCollection_FindSortLimit(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryDB().Collection("things")

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, offset := range []int{3, 1, 4, 0, 2} {
		doc := testDoc{Name: strPtr("n"), At: base.Add(time.Duration(offset) * time.Hour)}
		if _, err := coll.InsertOne(ctx, doc); err != nil {
			t.Fatalf("InsertOne() unexpected error: %v", err)
		}
	}

	var asc []testDoc
	if err := coll.Find(ctx, nil, FindOptions{SortField: "at", Order: Ascending}, &asc); err != nil {
		t.Fatalf("Find() unexpected error: %v", err)
	}
	if len(asc) != 5 {
		t.Fatalf("Find() returned %d docs, want 5", len(asc))
	}
	for i := 1; i < len(asc); i++ {
		if asc[i].At.Before(asc[i-1].At) {
			t.Errorf("ascending order broken at %d: %v before %v", i, asc[i].At, asc[i-1].At)
		}
	}

	var top []testDoc
	if err := coll.Find(ctx, bson.M{}, FindOptions{SortField: "at", Order: Descending, Limit: 2}, &top); err != nil {
		t.Fatalf("Find() unexpected error: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("Find(limit 2) returned %d docs", len(top))
	}
	if !top[0].At.Equal(base.Add(4 * time.Hour)) {
		t.Errorf("newest first expected, got %v", top[0].At)
	}
}

func TestMemoryCollection_FindSortTiesFollowID(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryDB().Collection("things")

	same := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	var ids []primitive.ObjectID
	for i := 0; i < 5; i++ {
		id, err := coll.InsertOne(ctx, testDoc{At: same})
		if err != nil {
			t.Fatalf("InsertOne() unexpected error: %v", err)
		}
		ids = append(ids, id)
	}

	tests := []struct {
		name  string
		order SortOrder
		limit int64
		want  []primitive.ObjectID
	}{
		{"descending keeps newest insert first", Descending, 3, []primitive.ObjectID{ids[4], ids[3], ids[2]}},
		{"ascending keeps oldest insert first", Ascending, 2, []primitive.ObjectID{ids[0], ids[1]}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []testDoc
			if err := coll.Find(ctx, nil, FindOptions{SortField: "at", Order: tt.order, Limit: tt.limit}, &got); err != nil {
				t.Fatalf("Find() unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Find() returned %d docs, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i].ID != tt.want[i] {
					t.Errorf("doc[%d] = %s, want %s", i, got[i].ID.Hex(), tt.want[i].Hex())
				}
			}
		})
	}
}

func TestFindOptions_SortKeys(t *testing.T) {
	tests := []struct {
		name string
		opts FindOptions
		want bson.D
	}{
		{"no sort", FindOptions{}, nil},
		{"default ascending", FindOptions{SortField: "start"}, bson.D{{Key: "start", Value: 1}, {Key: "_id", Value: 1}}},
		{"descending", FindOptions{SortField: "time", Order: Descending}, bson.D{{Key: "time", Value: -1}, {Key: "_id", Value: -1}}},
		{"by id only", FindOptions{SortField: "_id", Order: Descending}, bson.D{{Key: "_id", Value: -1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.opts.sortKeys()
			if len(got) != len(tt.want) {
				t.Fatalf("sortKeys() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i].Key != tt.want[i].Key || got[i].Value != tt.want[i].Value {
					t.Errorf("sortKeys()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMemoryCollection_FindEmptyIsNotNil(t *testing.T) {
	var docs []testDoc
	if err := NewMemoryDB().Collection("empty").Find(context.Background(), nil, FindOptions{}, &docs); err != nil {
		t.Fatalf("Find() unexpected error: %v", err)
	}
	if docs == nil || len(docs) != 0 {
		t.Errorf("Find() on empty collection = %#v, want empty non-nil slice", docs)
	}
}

func TestMemoryCollection_UpdateMergesFields(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryDB().Collection("things")

	id, _ := coll.InsertOne(ctx, testDoc{Name: strPtr("acme"), Score: floatPtr(7.5)})

	var updated testDoc
	err := coll.UpdateOne(ctx, ByID(id), testDoc{ID: primitive.NewObjectID(), Score: floatPtr(9)}, &updated)
	if err != nil {
		t.Fatalf("UpdateOne() unexpected error: %v", err)
	}
	if updated.ID != id {
		t.Errorf("UpdateOne() must not change _id, got %s want %s", updated.ID.Hex(), id.Hex())
	}
	if *updated.Name != "acme" || *updated.Score != 9 {
		t.Errorf("UpdateOne() merged doc = name %q score %v", *updated.Name, *updated.Score)
	}

	if err := coll.UpdateOne(ctx, bson.M{"name": "acme"}, bson.M{}, nil); err != nil {
		t.Errorf("empty update of an existing doc should succeed, got %v", err)
	}
	if err := coll.UpdateOne(ctx, ByID(primitive.NewObjectID()), bson.M{"name": "x"}, nil); !errors.Is(err, ErrNoDocument) {
		t.Errorf("UpdateOne(missing) error = %v, want ErrNoDocument", err)
	}
}

func TestMemoryCollection_Delete(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryDB().Collection("things")

	id, _ := coll.InsertOne(ctx, testDoc{Name: strPtr("gone")})
	if err := coll.DeleteOne(ctx, ByID(id)); err != nil {
		t.Fatalf("DeleteOne() unexpected error: %v", err)
	}
	if err := coll.DeleteOne(ctx, ByID(id)); !errors.Is(err, ErrNoDocument) {
		t.Errorf("second DeleteOne() error = %v, want ErrNoDocument", err)
	}
}

func TestMemoryCollection_ConcurrentInserts(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryDB().Collection("things")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := coll.InsertOne(ctx, testDoc{Name: strPtr("c")}); err != nil {
				t.Errorf("InsertOne() unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	var docs []testDoc
	if err := coll.Find(ctx, bson.M{"name": "c"}, FindOptions{}, &docs); err != nil {
		t.Fatalf("Find() unexpected error: %v", err)
	}
	if len(docs) != 50 {
		t.Errorf("expected 50 documents, got %d", len(docs))
	}
}

func TestMemoryDB_SameCollectionInstance(t *testing.T) {
	mdb := NewMemoryDB()
	ctx := context.Background()

	if _, err := mdb.Collection("a").InsertOne(ctx, testDoc{Name: strPtr("x")}); err != nil {
		t.Fatal(err)
	}
	var docs []testDoc
	if err := mdb.Collection("a").Find(ctx, nil, FindOptions{}, &docs); err != nil || len(docs) != 1 {
		t.Errorf("collection handles should share storage, got %d docs, err %v", len(docs), err)
	}
}
