package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session is an interview or placement event in the 'sessions' collection
type Session struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id,omitempty" swaggertype:"string" example:"665f1c2e8b3e4a1d2c3b4a61"`
	Company string             `json:"company" bson:"company" example:"Acme Corp"`
	Start   time.Time          `json:"start" bson:"start" example:"2025-03-14T10:00:00Z"`
}
