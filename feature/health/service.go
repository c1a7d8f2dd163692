package health

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Pinger is satisfied by *mongo.Client.
type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// Service checks the health of the service's dependencies.
type Service struct {
	db      Pinger
	timeout time.Duration
	logger  *zap.Logger
}

// NewService creates a new health service.
func NewService(db Pinger, timeout time.Duration, logger *zap.Logger) *Service {
	return &Service{
		db:      db,
		timeout: timeout,
		logger:  logger,
	}
}

// CheckDatabase pings the primary within the configured timeout.
func (s *Service) CheckDatabase(ctx context.Context) error {
	if s.db == nil {
		return errors.New("database not configured")
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	if err := s.db.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}
