package destinations

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"travelshowcase/internal/cards"
)

// Store is a source of destinations in display order.
type Store interface {
	List(ctx context.Context) ([]*Destination, error)
}

// Repo stores destinations in MongoDB.
type Repo struct {
	coll *mongo.Collection
}

func NewRepo(db *mongo.Database) *Repo {
	return &Repo{coll: db.Collection("destinations")}
}

// EnsureIndexes creates necessary indexes for the destinations collection
func (r *Repo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "position", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "category", Value: 1},
				{Key: "position", Value: 1},
			},
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("create indexes: %w", err)
	}
	return nil
}

// List retrieves every destination ordered by position
func (r *Repo) List(ctx context.Context) ([]*Destination, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}
	defer cursor.Close(ctx)

	var list []*Destination
	if err := cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode destinations: %w", err)
	}
	return list, nil
}

// ReplaceAll swaps the collection contents for list, renumbering
// positions in slice order.
func (r *Repo) ReplaceAll(ctx context.Context, list []*Destination) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear destinations: %w", err)
	}
	if len(list) == 0 {
		return nil
	}

	docs := make([]any, len(list))
	for i, d := range list {
		doc := *d
		doc.ID = primitive.NilObjectID
		doc.Position = i
		docs[i] = doc
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert destinations: %w", err)
	}
	return nil
}

// ListCategories returns all categories with counts, in order of first
// appearance
func (r *Repo) ListCategories(ctx context.Context) ([]*Category, error) {
	pipeline := []bson.M{
		{
			"$group": bson.M{
				"_id":   "$category",
				"count": bson.M{"$sum": 1},
				"first": bson.M{"$min": "$position"},
			},
		},
		{
			"$sort": bson.M{"first": 1},
		},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []*Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	for _, c := range categories {
		c.Label = cards.CategoryLabel(c.Name)
	}
	return categories, nil
}

// Count returns the number of destinations, optionally within one
// category
func (r *Repo) Count(ctx context.Context, category string) (int64, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count destinations: %w", err)
	}
	return n, nil
}
