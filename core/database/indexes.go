package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EmployeeIndexName is the name of the secondary index on employee_id.
const EmployeeIndexName = "employee_id_1"

// EnsureIndexes creates the indexes the asset queries rely on.
// Creating an index that already exists with the same keys is a no-op on the
// server, so this is safe to call on every start.
func EnsureIndexes(ctx context.Context, coll *mongo.Collection) ([]string, error) {
	models := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "employee_id", Value: 1}},
			Options: options.Index().SetName(EmployeeIndexName),
		},
	}

	names, err := coll.Indexes().CreateMany(ctx, models)
	if err != nil {
		return nil, fmt.Errorf("failed to create indexes on %s: %w", coll.Name(), err)
	}
	return names, nil
}
