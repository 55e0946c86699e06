package db

import (
	"context"
	"fmt"

	"github.com/Syed-Muaarij-Nadeem/LabFinalWeb/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SeedData is the fixed demo dataset inserted by Seed
type SeedData struct {
	Attractions []models.Attraction
	Visitors    []models.Visitor
	Reviews     []models.Review
}

// SeedDataset builds the demo dataset with ids generated up front so the
// visitor and review references resolve within the same run.
func SeedDataset() SeedData {
	attractions := []models.Attraction{
		{ID: primitive.NewObjectID(), Name: "Eiffel Tower", Location: "Paris, France", EntryFee: 25, Rating: 4.8},
		{ID: primitive.NewObjectID(), Name: "Great Wall of China", Location: "China", EntryFee: 30, Rating: 4.7},
		{ID: primitive.NewObjectID(), Name: "Colosseum", Location: "Rome, Italy", EntryFee: 20, Rating: 4.6},
		{ID: primitive.NewObjectID(), Name: "Taj Mahal", Location: "Agra, India", EntryFee: 15, Rating: 4.9},
	}

	visitors := []models.Visitor{
		{
			ID:                 primitive.NewObjectID(),
			Name:               "Alice Johnson",
			Email:              "alice.johnson@example.com",
			VisitedAttractions: []primitive.ObjectID{attractions[0].ID, attractions[2].ID},
		},
		{
			ID:                 primitive.NewObjectID(),
			Name:               "Bob Smith",
			Email:              "bob.smith@example.com",
			VisitedAttractions: []primitive.ObjectID{attractions[1].ID, attractions[3].ID},
		},
		{
			ID:                 primitive.NewObjectID(),
			Name:               "Charlie Brown",
			Email:              "charlie.brown@example.com",
			VisitedAttractions: []primitive.ObjectID{attractions[0].ID, attractions[1].ID},
		},
	}

	reviews := []models.Review{
		{ID: primitive.NewObjectID(), Attraction: attractions[0].ID, Visitor: visitors[0].ID, Score: 5, Comment: "Amazing experience at the Eiffel Tower!"},
		{ID: primitive.NewObjectID(), Attraction: attractions[2].ID, Visitor: visitors[1].ID, Score: 4, Comment: "The Colosseum is full of history."},
		{ID: primitive.NewObjectID(), Attraction: attractions[3].ID, Visitor: visitors[2].ID, Score: 5, Comment: "The Taj Mahal is breathtaking."},
		{ID: primitive.NewObjectID(), Attraction: attractions[1].ID, Visitor: visitors[2].ID, Score: 4, Comment: "Great Wall of China is a must-see!"},
	}

	return SeedData{
		Attractions: attractions,
		Visitors:    visitors,
		Reviews:     reviews,
	}
}

// Seed wipes all three collections and repopulates them with the demo
// dataset, returning what was inserted. There is no partial cleanup on
// failure.
func (r *Repository) Seed(ctx context.Context) (SeedData, error) {
	collections := []string{CollectionAttractions, CollectionVisitors, CollectionReviews}
	for _, name := range collections {
		if _, err := r.db.Database().Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			return SeedData{}, fmt.Errorf("failed to clear %s: %w", name, err)
		}
	}

	data := SeedDataset()

	attractions := make([]interface{}, len(data.Attractions))
	for i, a := range data.Attractions {
		attractions[i] = a
	}
	if _, err := r.db.Attractions().InsertMany(ctx, attractions); err != nil {
		return SeedData{}, fmt.Errorf("failed to seed attractions: %w", err)
	}

	visitors := make([]interface{}, len(data.Visitors))
	for i, v := range data.Visitors {
		visitors[i] = v
	}
	if _, err := r.db.Visitors().InsertMany(ctx, visitors); err != nil {
		return SeedData{}, fmt.Errorf("failed to seed visitors: %w", err)
	}

	reviews := make([]interface{}, len(data.Reviews))
	for i, rv := range data.Reviews {
		reviews[i] = rv
	}
	if _, err := r.db.Reviews().InsertMany(ctx, reviews); err != nil {
		return SeedData{}, fmt.Errorf("failed to seed reviews: %w", err)
	}

	return data, nil
}
