package asset

import (
	"context"
	"errors"
	"fmt"

	"asset-tracker/feature/asset/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store persists asset records.
type Store interface {
	// Insert stores a new record and returns it with its generated ID.
	Insert(ctx context.Context, a *models.Asset) (*models.Asset, error)
	// FindByID returns the record with the given ID or ErrNotFound.
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Asset, error)
	// FindByEmployee returns every record owned by employeeID, oldest first.
	FindByEmployee(ctx context.Context, employeeID string) ([]models.Asset, error)
	// Update applies u to the record and returns the result, or ErrNotFound.
	Update(ctx context.Context, id primitive.ObjectID, u models.Update) (*models.Asset, error)
	// Delete removes the record, or returns ErrNotFound.
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// MongoStore is a Store backed by a single MongoDB collection.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore creates a store over coll.
func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

func (s *MongoStore) Insert(ctx context.Context, a *models.Asset) (*models.Asset, error) {
	doc := *a
	doc.ID = primitive.NilObjectID

	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, storeError("insert", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert: unexpected id type %T: %w", res.InsertedID, ErrStoreUnavailable)
	}
	doc.ID = id
	return &doc, nil
}

func (s *MongoStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Asset, error) {
	var a models.Asset
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return nil, storeError("find", err)
	}
	return &a, nil
}

func (s *MongoStore) FindByEmployee(ctx context.Context, employeeID string) ([]models.Asset, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := s.coll.Find(ctx, bson.M{"employee_id": employeeID}, opts)
	if err != nil {
		return nil, storeError("find by employee", err)
	}
	defer cursor.Close(ctx)

	assets := make([]models.Asset, 0)
	if err := cursor.All(ctx, &assets); err != nil {
		return nil, storeError("decode", err)
	}
	return assets, nil
}

func (s *MongoStore) Update(ctx context.Context, id primitive.ObjectID, u models.Update) (*models.Asset, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var a models.Asset
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, u.SetDocument(), opts).Decode(&a)
	if err != nil {
		return nil, storeError("update", err)
	}
	return &a, nil
}

func (s *MongoStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storeError("delete", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// storeError maps driver errors onto the package's error taxonomy.
func storeError(op string, err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}
