package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attraction represents a place travellers can visit
type Attraction struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	Name     string  `bson:"name" json:"name"`
	Location string  `bson:"location" json:"location,omitempty"`
	EntryFee float64 `bson:"entryFee" json:"entryFee"`
	Rating   float64 `bson:"rating" json:"rating"`
}
