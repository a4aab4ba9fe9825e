package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is one purchased line of an order. Product holds the internal
// product id recorded in the checkout session's product metadata.
type OrderItem struct {
	Product  string `json:"product" bson:"product"`
	Color    string `json:"color" bson:"color"`
	Size     string `json:"size" bson:"size"`
	Quantity int64  `json:"quantity" bson:"quantity"`
}

type ShippingAddress struct {
	Street     string `json:"street" bson:"street"`
	City       string `json:"city" bson:"city"`
	State      string `json:"state" bson:"state"`
	PostalCode string `json:"postalCode" bson:"postal_code"`
	Country    string `json:"country" bson:"country"`
}

// Order is materialized exactly once per completed checkout session and is
// never mutated afterwards.
type Order struct {
	ID                 primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	CustomerExternalID string             `json:"customerExternalId" bson:"customer_external_id"`
	Products           []OrderItem        `json:"products" bson:"products"`
	ShippingAddress    ShippingAddress    `json:"shippingAddress" bson:"shipping_address"`
	ShippingRate       string             `json:"shippingRate" bson:"shipping_rate"`
	TotalAmount        float64            `json:"totalAmount" bson:"total_amount"`
	CreatedAt          time.Time          `json:"createdAt" bson:"created_at"`
}
