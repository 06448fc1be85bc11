package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sweetshop/sweet-inventory/internal/pkg/metrics"
	"github.com/sweetshop/sweet-inventory/internal/core/domain"
	"github.com/sweetshop/sweet-inventory/internal/core/ports"
)

const movementListLimit = 100

// MovementService records and lists the stock movement audit trail.
type MovementService struct {
	repo   ports.MovementRepository
	sweets ports.SweetRepository
	log    zerolog.Logger
}

// NewMovementService returns a MovementService backed by repo.
func NewMovementService(repo ports.MovementRepository, sweets ports.SweetRepository, log zerolog.Logger) *MovementService {
	return &MovementService{repo: repo, sweets: sweets, log: log}
}

// Record persists a movement to the audit trail.
func (s *MovementService) Record(ctx context.Context, m domain.StockMovement) error {
	if err := s.repo.Insert(ctx, &m); err != nil {
		metrics.MovementsRecordedTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("record movement: %w", err)
	}
	metrics.MovementsRecordedTotal.WithLabelValues("ok").Inc()

	s.log.Debug().
		Str("sweet_id", m.SweetID).
		Str("kind", string(m.Kind)).
		Int("amount", m.Amount).
		Msg("movement recorded")
	return nil
}

// List returns the newest movements of an existing sweet.
func (s *MovementService) List(ctx context.Context, sweetID string) ([]*domain.StockMovement, error) {
	if _, err := s.sweets.FindByID(ctx, sweetID); err != nil {
		return nil, err
	}
	return s.repo.ListBySweet(ctx, sweetID, movementListLimit)
}
