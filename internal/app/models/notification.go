package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification is a broadcast message. Time is set by the server on creation.
type Notification struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id,omitempty" swaggertype:"string"`
	Message string             `json:"message" bson:"message" example:"Acme Corp drive on Friday"`
	Time    time.Time          `json:"time" bson:"time"`
}
