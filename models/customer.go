package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer is keyed by the external identity issued by the storefront's auth
// provider. Orders is the only back-reference from customers to orders.
type Customer struct {
	ID         primitive.ObjectID   `json:"_id,omitempty" bson:"_id,omitempty"`
	ExternalID string               `json:"externalId" bson:"external_id"`
	Name       string               `json:"name" bson:"name"`
	Email      string               `json:"email" bson:"email"`
	Orders     []primitive.ObjectID `json:"orders" bson:"orders"`
	CreatedAt  time.Time            `json:"createdAt" bson:"created_at"`
}
