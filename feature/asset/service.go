package asset

import (
	"context"
	"fmt"

	"asset-tracker/feature/asset/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Service implements the asset operations on top of a Store.
type Service struct {
	store  Store
	logger *zap.Logger
}

// NewService creates a new asset service.
func NewService(store Store, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Create validates f and stores it as a new record.
func (s *Service) Create(ctx context.Context, f models.Fields) (*models.Asset, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return s.store.Insert(ctx, &models.Asset{Fields: f})
}

// Get returns the record identified by id.
func (s *Service) Get(ctx context.Context, id string) (*models.Asset, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.store.FindByID(ctx, oid)
}

// ListByEmployee returns every record whose employee_id equals employeeID.
// No match is an empty slice, not an error.
func (s *Service) ListByEmployee(ctx context.Context, employeeID string) ([]models.Asset, error) {
	return s.store.FindByEmployee(ctx, employeeID)
}

// Update overwrites the fields present in u and returns the updated record.
func (s *Service) Update(ctx context.Context, id string, u models.Update) (*models.Asset, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if len(u) == 0 {
		return nil, ErrEmptyUpdate
	}
	return s.store.Update(ctx, oid, u)
}

// Delete removes the record identified by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	return s.store.Delete(ctx, oid)
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}
