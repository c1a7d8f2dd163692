package asset

import (
	"context"
	"testing"

	"asset-tracker/feature/asset/mocks"
	"asset-tracker/feature/asset/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestService() (*Service, *mocks.Store) {
	store := new(mocks.Store)
	return NewService(store, zap.NewNop()), store
}

func sampleFields() models.Fields {
	date, serial, condition := "2023-01-15", "SN12345", "Good"
	return models.Fields{
		EmployeeID:   "EMP001",
		AssetNames:   []string{"Laptop"},
		AssetIDs:     []string{"LAP-001"},
		PurchaseDate: &date,
		SerialNumber: &serial,
		Condition:    &condition,
	}
}

func TestService_Create(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		svc, store := newTestService()
		id := primitive.NewObjectID()
		store.On("Insert", mock.Anything, &models.Asset{Fields: sampleFields()}).
			Return(&models.Asset{ID: id, Fields: sampleFields()}, nil)

		created, err := svc.Create(context.Background(), sampleFields())
		require.NoError(t, err)
		assert.Equal(t, id, created.ID)
		store.AssertExpectations(t)
	})

	t.Run("Invalid", func(t *testing.T) {
		svc, store := newTestService()

		f := sampleFields()
		f.EmployeeID = ""
		_, err := svc.Create(context.Background(), f)

		var ve *models.ValidationError
		assert.ErrorAs(t, err, &ve)
		store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})
}

func TestService_Get(t *testing.T) {
	t.Run("InvalidID", func(t *testing.T) {
		svc, store := newTestService()

		_, err := svc.Get(context.Background(), "not-an-object-id")
		assert.ErrorIs(t, err, ErrInvalidID)
		store.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, store := newTestService()
		id := primitive.NewObjectID()
		store.On("FindByID", mock.Anything, id).Return(nil, ErrNotFound)

		_, err := svc.Get(context.Background(), id.Hex())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Found", func(t *testing.T) {
		svc, store := newTestService()
		id := primitive.NewObjectID()
		store.On("FindByID", mock.Anything, id).Return(&models.Asset{ID: id, Fields: sampleFields()}, nil)

		a, err := svc.Get(context.Background(), id.Hex())
		require.NoError(t, err)
		assert.Equal(t, id, a.ID)
	})
}

func TestService_ListByEmployee(t *testing.T) {
	svc, store := newTestService()
	store.On("FindByEmployee", mock.Anything, "EMP404").Return([]models.Asset{}, nil)

	assets, err := svc.ListByEmployee(context.Background(), "EMP404")
	require.NoError(t, err)
	assert.Empty(t, assets)
}

func TestService_Update(t *testing.T) {
	t.Run("InvalidIDBeforeEmpty", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Update(context.Background(), "xyz", models.Update{})
		assert.ErrorIs(t, err, ErrInvalidID)
	})

	t.Run("Empty", func(t *testing.T) {
		svc, store := newTestService()

		_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), models.Update{})
		assert.ErrorIs(t, err, ErrEmptyUpdate)
		store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Applied", func(t *testing.T) {
		svc, store := newTestService()
		id := primitive.NewObjectID()
		u := models.Update{"condition": "Fair"}
		store.On("Update", mock.Anything, id, u).Return(&models.Asset{ID: id}, nil)

		a, err := svc.Update(context.Background(), id.Hex(), u)
		require.NoError(t, err)
		assert.Equal(t, id, a.ID)
		store.AssertExpectations(t)
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("InvalidID", func(t *testing.T) {
		svc, _ := newTestService()
		assert.ErrorIs(t, svc.Delete(context.Background(), ""), ErrInvalidID)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, store := newTestService()
		id := primitive.NewObjectID()
		store.On("Delete", mock.Anything, id).Return(ErrNotFound)

		assert.ErrorIs(t, svc.Delete(context.Background(), id.Hex()), ErrNotFound)
	})
}
