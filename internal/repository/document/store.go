// Package document implements listctl.Store over a mongo collection.
package document

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
	"github.com/syazwan-nazri/AD-XPDC-sub000/platform/logger"
)

const fieldUpdatedAt = "updatedAt"

// Codec maps a domain model to its stored entity and back.
type Codec[T any, E any] struct {
	ToModel   func(E) T
	FromModel func(T) E
	ID        func(T) string
	WithID    func(T, string) T
	// Fields converts a partial update into stored values. Nil keeps the
	// values as given, which is enough for scalar fields.
	Fields func(model.Fields) bson.M
}

type Store[T any, E any] struct {
	coll  *mongo.Collection
	codec Codec[T, E]
	newID func() string
	now   func() time.Time
}

type Option func(*storeOptions)

type storeOptions struct {
	newID func() string
	now   func() time.Time
}

// WithIDGenerator replaces the default uuid ids.
func WithIDGenerator(fn func() string) Option {
	return func(o *storeOptions) { o.newID = fn }
}

func WithClock(fn func() time.Time) Option {
	return func(o *storeOptions) { o.now = fn }
}

func New[T any, E any](coll *mongo.Collection, codec Codec[T, E], opts ...Option) *Store[T, E] {
	o := storeOptions{newID: uuid.NewString, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	return &Store[T, E]{coll: coll, codec: codec, newID: o.newID, now: o.now}
}

func (s *Store[T, E]) List(ctx context.Context) ([]T, error) {
	const op = "document.List"

	cur, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", op, s.coll.Name(), err)
	}
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			logger.Warn(ctx, "close cursor",
				logger.String("collection", s.coll.Name()),
				logger.ErrorF(cerr),
			)
		}
	}()

	out := make([]T, 0)
	for cur.Next(ctx) {
		var ent E
		if err := cur.Decode(&ent); err != nil {
			return nil, fmt.Errorf("%s %s decode: %w", op, s.coll.Name(), err)
		}
		out = append(out, s.codec.ToModel(ent))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s %s cursor: %w", op, s.coll.Name(), err)
	}

	return out, nil
}

func (s *Store[T, E]) Get(ctx context.Context, id string) (T, error) {
	const op = "document.Get"

	var (
		zero T
		ent  E
	)
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, model.ErrNotFound
		}
		return zero, fmt.Errorf("%s %s: %w", op, s.coll.Name(), err)
	}

	return s.codec.ToModel(ent), nil
}

// Add inserts item and returns its id. An item without an id gets one from
// the configured generator.
func (s *Store[T, E]) Add(ctx context.Context, item T) (string, error) {
	const op = "document.Add"

	id := s.codec.ID(item)
	if id == "" {
		id = s.newID()
		item = s.codec.WithID(item, id)
	}

	if _, err := s.coll.InsertOne(ctx, s.codec.FromModel(item)); err != nil {
		return "", fmt.Errorf("%s %s: %w", op, s.coll.Name(), err)
	}

	return id, nil
}

// Update sets the given fields and bumps updatedAt.
func (s *Store[T, E]) Update(ctx context.Context, id string, fields model.Fields) error {
	const op = "document.Update"

	set := bson.M{}
	if s.codec.Fields != nil {
		set = s.codec.Fields(fields)
	} else {
		for k, v := range fields {
			set[k] = v
		}
	}
	set[fieldUpdatedAt] = s.now()

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("%s %s: %w", op, s.coll.Name(), err)
	}
	if res.MatchedCount == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (s *Store[T, E]) Delete(ctx context.Context, id string) error {
	const op = "document.Delete"

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%s %s: %w", op, s.coll.Name(), err)
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}

	return nil
}

// CreateBatch inserts items unordered, assigning ids where missing.
func (s *Store[T, E]) CreateBatch(ctx context.Context, items []T) error {
	const op = "document.CreateBatch"

	docs := make([]any, 0, len(items))
	for _, it := range items {
		if s.codec.ID(it) == "" {
			it = s.codec.WithID(it, s.newID())
		}
		docs = append(docs, s.codec.FromModel(it))
	}
	if len(docs) == 0 {
		return nil
	}

	_, err := s.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil {
		return fmt.Errorf("%s %s: %w", op, s.coll.Name(), err)
	}

	return nil
}

// Count reports the number of stored documents.
func (s *Store[T, E]) Count(ctx context.Context) (int64, error) {
	n, err := s.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("document.Count %s: %w", s.coll.Name(), err)
	}
	return n, nil
}

// EnsureIndexes creates ascending, non-unique indexes on keys. Uniqueness
// of business codes is checked by the list controllers, not here.
func EnsureIndexes(ctx context.Context, coll *mongo.Collection, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	models := make([]mongo.IndexModel, 0, len(keys))
	for _, k := range keys {
		models = append(models, mongo.IndexModel{Keys: bson.D{{Key: k, Value: 1}}})
	}

	if _, err := coll.Indexes().CreateMany(ctx, models, options.CreateIndexes()); err != nil {
		return fmt.Errorf("document.EnsureIndexes %s: %w", coll.Name(), err)
	}
	return nil
}
