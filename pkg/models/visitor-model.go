package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Visitor represents a traveller with a list of visited attractions.
// The visited list holds attraction references and is untouched by the
// update endpoint.
type Visitor struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`

	VisitedAttractions []primitive.ObjectID `bson:"visitedAttractions,omitempty" json:"visitedAttractions,omitempty"`
}

// VisitorActivity is one row of the review-count-per-visitor report
type VisitorActivity struct {
	VisitorName string `bson:"visitorName" json:"visitorName"`
	ReviewCount int    `bson:"reviewCount" json:"reviewCount"`
}
