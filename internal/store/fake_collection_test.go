package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// fakeCollection is an in-process stand-in for a mongo collection. It keeps
// documents as bson.M in insertion order, understands equality filters and
// $set updates, and optionally enforces a unique field.
type fakeCollection struct {
	mu        sync.Mutex
	docs      []bson.M
	uniqueKey string

	// err, when set, is returned by every operation.
	err error
}

func newFakeCollection(uniqueKey string) *fakeCollection {
	return &fakeCollection{uniqueKey: uniqueKey}
}

func toBsonM(v any) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}

	var m bson.M
	if err = bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}

	return m, nil
}

func matches(doc bson.M, filter any) bool {
	for k, v := range filter.(bson.M) {
		if doc[k] != v {
			return false
		}
	}

	return true
}

func (f *fakeCollection) Find(_ context.Context, filter any, _ ...*options.FindOptions) (*mongo.Cursor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}

	found := make([]any, 0, len(f.docs))
	for _, doc := range f.docs {
		if matches(doc, filter) {
			found = append(found, doc)
		}
	}

	return mongo.NewCursorFromDocuments(found, nil, nil)
}

func (f *fakeCollection) FindOne(_ context.Context, filter any, _ ...*options.FindOneOptions) *mongo.SingleResult {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return mongo.NewSingleResultFromDocument(bson.M{}, f.err, nil)
	}

	for _, doc := range f.docs {
		if matches(doc, filter) {
			return mongo.NewSingleResultFromDocument(doc, nil, nil)
		}
	}

	return mongo.NewSingleResultFromDocument(bson.M{}, mongo.ErrNoDocuments, nil)
}

func (f *fakeCollection) InsertOne(_ context.Context, document any, _ ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}

	doc, err := toBsonM(document)
	if err != nil {
		return nil, err
	}
	if _, ok := doc["_id"]; !ok {
		doc["_id"] = primitive.NewObjectID()
	}

	if f.uniqueKey != "" {
		for _, existing := range f.docs {
			if existing[f.uniqueKey] == doc[f.uniqueKey] {
				return nil, mongo.WriteException{
					WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
				}
			}
		}
	}

	f.docs = append(f.docs, doc)

	return &mongo.InsertOneResult{InsertedID: doc["_id"]}, nil
}

func (f *fakeCollection) UpdateOne(_ context.Context, filter any, update any, _ ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}

	set, err := toBsonM(update.(bson.M)["$set"])
	if err != nil {
		return nil, err
	}

	for _, doc := range f.docs {
		if !matches(doc, filter) {
			continue
		}

		var modified int64
		for k, v := range set {
			if doc[k] != v {
				doc[k] = v
				modified = 1
			}
		}

		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: modified}, nil
	}

	return &mongo.UpdateResult{}, nil
}

func (f *fakeCollection) DeleteOne(_ context.Context, filter any, _ ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}

	for i, doc := range f.docs {
		if matches(doc, filter) {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}

	return &mongo.DeleteResult{}, nil
}
