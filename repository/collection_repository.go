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

type CollectionRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Collection, error)
	FindAllSorted(ctx context.Context) ([]models.Collection, error)
	Create(ctx context.Context, collection *models.Collection) error
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type mongoCollectionRepo struct {
	collection *mongo.Collection
}

func NewMongoCollectionRepo(db *mongo.Database) CollectionRepository {
	return &mongoCollectionRepo{collection: db.Collection("collections")}
}

func (r *mongoCollectionRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Collection, error) {
	var col models.Collection
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&col)
	if err != nil {
		return nil, err
	}
	return &col, nil
}

func (r *mongoCollectionRepo) FindAllSorted(ctx context.Context) ([]models.Collection, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var collections []models.Collection
	if err := cursor.All(ctx, &collections); err != nil {
		return nil, err
	}
	return collections, nil
}

func (r *mongoCollectionRepo) Create(ctx context.Context, collection *models.Collection) error {
	now := time.Now().UTC()
	collection.CreatedAt = now
	collection.UpdatedAt = now
	res, err := r.collection.InsertOne(ctx, collection)
	if err != nil {
		return err
	}
	collection.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoCollectionRepo) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) error {
	updates["updated_at"] = time.Now().UTC()
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	return err
}

func (r *mongoCollectionRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
