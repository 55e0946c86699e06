package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review references one visitor and one attraction. Both references are
// immutable after creation; the update path only touches score and comment.
// Deleting a visitor or attraction leaves dangling references behind.
type Review struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	Visitor    primitive.ObjectID `bson:"visitor" json:"visitor"`
	Attraction primitive.ObjectID `bson:"attraction" json:"attraction"`

	Score   int    `bson:"score" json:"score"`
	Comment string `bson:"comment" json:"comment"`
}

// ReviewDetail is the read shape of a review with both references resolved
// into full documents. A dangling reference resolves to a zero-value document.
type ReviewDetail struct {
	ID primitive.ObjectID `bson:"_id" json:"id"`

	Visitor    Visitor    `bson:"visitorDoc" json:"visitor"`
	Attraction Attraction `bson:"attractionDoc" json:"attraction"`

	Score   int    `bson:"score" json:"score"`
	Comment string `bson:"comment" json:"comment"`
}
