package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

type mockPinger struct {
	mock.Mock
}

func (m *mockPinger) Ping(ctx context.Context, rp *readpref.ReadPref) error {
	args := m.Called(ctx, rp)
	return args.Error(0)
}

func setupTestApp(db Pinger) *fiber.App {
	app := fiber.New()
	f := NewFeature(db, time.Second, zap.NewNop())
	_ = f.Load(app)
	return app
}

func TestHandleHealthCheck(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		db := new(mockPinger)
		db.On("Ping", mock.Anything, readpref.Primary()).Return(nil)
		app := setupTestApp(db)

		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "ok", body["status"])
		db.AssertExpectations(t)
	})

	t.Run("Unreachable", func(t *testing.T) {
		db := new(mockPinger)
		db.On("Ping", mock.Anything, mock.Anything).Return(errors.New("no reachable servers"))
		app := setupTestApp(db)

		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, 503, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "unavailable", body["status"])
		assert.Contains(t, body["error"], "no reachable servers")
	})

	t.Run("NotConfigured", func(t *testing.T) {
		app := setupTestApp(nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, 503, resp.StatusCode)
	})
}

func TestService_CheckDatabaseAppliesTimeout(t *testing.T) {
	db := new(mockPinger)
	db.On("Ping", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	}), mock.Anything).Return(nil)

	svc := NewService(db, 50*time.Millisecond, zap.NewNop())
	assert.NoError(t, svc.CheckDatabase(context.Background()))
	db.AssertExpectations(t)
}
