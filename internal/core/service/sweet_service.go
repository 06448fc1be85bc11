package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/sweetshop/sweet-inventory/internal/core/domain"
	"github.com/sweetshop/sweet-inventory/internal/core/ports"
)

// SweetService implements catalogue CRUD and search.
type SweetService struct {
	repo ports.SweetRepository
	log  zerolog.Logger
}

func NewSweetService(repo ports.SweetRepository, log zerolog.Logger) *SweetService {
	return &SweetService{repo: repo, log: log}
}

// Create inserts a new sweet. Names are unique; the store's unique index
// settles a concurrent duplicate with the same ErrSweetExists.
func (s *SweetService) Create(ctx context.Context, in ports.CreateSweetInput) (*domain.Sweet, error) {
	switch {
	case in.Name == "":
		return nil, domain.NewValidationError("name", "name is required")
	case in.Category == "":
		return nil, domain.NewValidationError("category", "category is required")
	case in.Price < 0:
		return nil, domain.NewValidationError("price", "price must be a non-negative number")
	case in.Quantity < 0:
		return nil, domain.NewValidationError("quantity", "quantity must be a non-negative integer")
	}

	exists, err := s.repo.ExistsByName(ctx, in.Name)
	if err != nil {
		return nil, fmt.Errorf("create sweet: %w", err)
	}
	if exists {
		return nil, domain.ErrSweetExists
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Sweet{
		Name:      in.Name,
		Category:  in.Category,
		Price:     in.Price,
		Quantity:  in.Quantity,
		ImageURL:  in.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("sweet_id", created.ID).Str("name", created.Name).Msg("sweet created")
	return created, nil
}

func (s *SweetService) Get(ctx context.Context, id string) (*domain.Sweet, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SweetService) List(ctx context.Context) ([]*domain.Sweet, error) {
	return s.repo.List(ctx, domain.SweetFilter{})
}

func (s *SweetService) Search(ctx context.Context, filter domain.SweetFilter) ([]*domain.Sweet, error) {
	if !validPriceBound(filter.MinPrice) {
		return nil, domain.NewValidationError("minPrice", "minPrice must be a non-negative number")
	}
	if !validPriceBound(filter.MaxPrice) {
		return nil, domain.NewValidationError("maxPrice", "maxPrice must be a non-negative number")
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return nil, domain.NewValidationError("minPrice", "minPrice must not exceed maxPrice")
	}
	return s.repo.List(ctx, filter)
}

// validPriceBound rejects negative and non-finite bounds. NaN would sort below
// every number in Mongo and match the whole catalogue.
func validPriceBound(v *float64) bool {
	if v == nil {
		return true
	}
	return !math.IsNaN(*v) && !math.IsInf(*v, 0) && *v >= 0
}

// Update applies a partial update. A quantity in the patch overwrites stock
// without the purchase guard (last write wins).
func (s *SweetService) Update(ctx context.Context, id string, patch domain.SweetPatch) (*domain.Sweet, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	if patch.Quantity != nil {
		s.log.Warn().Str("sweet_id", id).Int("quantity", *patch.Quantity).Msg("quantity overwritten by update")
	}
	return updated, nil
}

func (s *SweetService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("sweet_id", id).Msg("sweet deleted")
	return nil
}
