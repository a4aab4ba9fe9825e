package repository

import (
	"context"
	"time"

	"admin-service/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CustomerRepository interface {
	// FindByExternalID returns (nil, nil) when no customer exists for the id.
	FindByExternalID(ctx context.Context, externalID string) (*models.Customer, error)
	Create(ctx context.Context, customer *models.Customer) error
	AddOrder(ctx context.Context, customerID, orderID primitive.ObjectID) error
	FindAllSorted(ctx context.Context) ([]models.Customer, error)
	Count(ctx context.Context) (int64, error)
}

type mongoCustomerRepo struct {
	collection *mongo.Collection
}

func NewMongoCustomerRepo(db *mongo.Database) CustomerRepository {
	return &mongoCustomerRepo{collection: db.Collection("customers")}
}

func (r *mongoCustomerRepo) FindByExternalID(ctx context.Context, externalID string) (*models.Customer, error) {
	var customer models.Customer
	err := r.collection.FindOne(ctx, bson.M{"external_id": externalID}).Decode(&customer)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *mongoCustomerRepo) Create(ctx context.Context, customer *models.Customer) error {
	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = time.Now().UTC()
	}
	res, err := r.collection.InsertOne(ctx, customer)
	if err != nil {
		return err
	}
	customer.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// AddOrder appends an order reference to an existing customer.
func (r *mongoCustomerRepo) AddOrder(ctx context.Context, customerID, orderID primitive.ObjectID) error {
	update := bson.M{"$push": bson.M{"orders": orderID}}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": customerID}, update)
	return err
}

func (r *mongoCustomerRepo) FindAllSorted(ctx context.Context) ([]models.Customer, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var customers []models.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *mongoCustomerRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
