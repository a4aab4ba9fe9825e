package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID          primitive.ObjectID   `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       string               `json:"title" bson:"title"`
	Description string               `json:"description" bson:"description"`
	Media       []string             `json:"media" bson:"media"`
	Category    string               `json:"category" bson:"category"`
	Collections []primitive.ObjectID `json:"collections" bson:"collections"`
	Tags        []string             `json:"tags" bson:"tags"`
	Sizes       []string             `json:"sizes" bson:"sizes"`
	Colors      []string             `json:"colors" bson:"colors"`
	Price       float64              `json:"price" bson:"price"`
	Expense     float64              `json:"expense" bson:"expense"`
	CreatedAt   time.Time            `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time            `json:"updatedAt" bson:"updated_at"`
}
