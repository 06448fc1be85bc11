package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/sweetshop/sweet-inventory/internal/pkg/metrics"
	"github.com/sweetshop/sweet-inventory/internal/core/domain"
	"github.com/sweetshop/sweet-inventory/internal/core/ports"
)

// InventoryService is the only code path that adjusts stock. Every change is
// delegated to a single conditional update in the store.
type InventoryService struct {
	stock     ports.StockRepository
	movements ports.MovementPublisher
	log       zerolog.Logger
}

// NewInventoryService builds the service. movements may be nil.
func NewInventoryService(stock ports.StockRepository, movements ports.MovementPublisher, log zerolog.Logger) *InventoryService {
	return &InventoryService{stock: stock, movements: movements, log: log}
}

// Purchase removes amount units if at least that many are in stock.
// A missing sweet and insufficient stock are reported as the same error.
func (s *InventoryService) Purchase(ctx context.Context, actor domain.Identity, id string, amount int) (*domain.Sweet, error) {
	if amount < 1 {
		return nil, domain.NewValidationError("amount", "amount must be at least 1")
	}

	updated, err := s.stock.Decrement(ctx, id, amount)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStockOrNotFound) {
			metrics.PurchasesTotal.WithLabelValues("rejected").Inc()
		}
		return nil, err
	}

	metrics.PurchasesTotal.WithLabelValues("success").Inc()
	metrics.UnitsPurchasedTotal.Add(float64(amount))
	s.record(actor, updated, domain.MovementPurchase, amount)

	s.log.Info().
		Str("sweet_id", updated.ID).
		Str("user_id", actor.ID).
		Int("amount", amount).
		Int("quantity", updated.Quantity).
		Msg("stock purchased")

	return updated, nil
}

// Restock adds amount units. Role enforcement happens before this call.
func (s *InventoryService) Restock(ctx context.Context, actor domain.Identity, id string, amount int) (*domain.Sweet, error) {
	if amount <= 0 {
		return nil, domain.NewValidationError("amount", "amount must be a positive number")
	}

	updated, err := s.stock.Increment(ctx, id, amount)
	if err != nil {
		return nil, err
	}

	metrics.RestocksTotal.Inc()
	s.record(actor, updated, domain.MovementRestock, amount)

	s.log.Info().
		Str("sweet_id", updated.ID).
		Str("user_id", actor.ID).
		Int("amount", amount).
		Int("quantity", updated.Quantity).
		Msg("stock restocked")

	return updated, nil
}

func (s *InventoryService) record(actor domain.Identity, sweet *domain.Sweet, kind domain.MovementKind, amount int) {
	if s.movements == nil {
		return
	}
	s.movements.Publish(domain.StockMovement{
		SweetID:       sweet.ID,
		Kind:          kind,
		Amount:        amount,
		QuantityAfter: sweet.Quantity,
		ActorID:       actor.ID,
		At:            time.Now().UTC(),
	})
}
