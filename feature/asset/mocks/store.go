package mocks

import (
	"context"

	"asset-tracker/feature/asset/models"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is a mock implementation of asset.Store
type Store struct {
	mock.Mock
}

func (m *Store) Insert(ctx context.Context, a *models.Asset) (*models.Asset, error) {
	args := m.Called(ctx, a)
	if out, ok := args.Get(0).(*models.Asset); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Asset, error) {
	args := m.Called(ctx, id)
	if out, ok := args.Get(0).(*models.Asset); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) FindByEmployee(ctx context.Context, employeeID string) ([]models.Asset, error) {
	args := m.Called(ctx, employeeID)
	if out, ok := args.Get(0).([]models.Asset); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) Update(ctx context.Context, id primitive.ObjectID, u models.Update) (*models.Asset, error) {
	args := m.Called(ctx, id, u)
	if out, ok := args.Get(0).(*models.Asset); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
