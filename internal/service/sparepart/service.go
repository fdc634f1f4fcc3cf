package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/you-humble/repair-fulfillment/internal/model"
	"github.com/you-humble/repair-fulfillment/internal/service/variantstats"
	"github.com/you-humble/repair-fulfillment/platform/logger"
)

type SparePartRepository interface {
	SparePartByID(ctx context.Context, id uuid.UUID) (*model.SparePart, error)
	AdjustQuantity(ctx context.Context, id uuid.UUID, delta int64) (int64, error)
	Variants(ctx context.Context, sparePartID uuid.UUID) ([]*model.SparePartVariant, error)
	ReplaceVariants(ctx context.Context, sparePartID uuid.UUID, variants []*model.SparePartVariant, rollup model.VariantRollup) ([]*model.SparePartVariant, error)
	CategoryExists(ctx context.Context, id uuid.UUID) (bool, error)
	SupplierExists(ctx context.Context, id uuid.UUID) (bool, error)
}

type service struct {
	repo           SparePartRepository
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewSparePartService(
	repo SparePartRepository,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repo,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (s *service) SparePartByID(ctx context.Context, id uuid.UUID) (*model.SparePart, error) {
	const op = "sparepart.service.SparePartByID"
	log := logger.With(
		logger.String("spare_part_id", id.String()),
	)

	if id == uuid.Nil {
		log.Error(ctx, "validation: empty spare part id")
		return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	sp, err := s.repo.SparePartByID(ctx, id)
	if err != nil {
		log.Error(ctx, "repository spare part by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sp, nil
}

// AdjustQuantity moves the on-hand quantity by delta and returns the new
// value. The store rejects any adjustment that would go negative.
func (s *service) AdjustQuantity(ctx context.Context, id uuid.UUID, delta int64) (int64, error) {
	const op = "sparepart.service.AdjustQuantity"
	log := logger.With(
		logger.String("spare_part_id", id.String()),
		logger.Int64("delta", delta),
	)

	if id == uuid.Nil || delta == 0 {
		log.Error(ctx, "validation: empty id or zero delta")
		return 0, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	newQuantity, err := s.repo.AdjustQuantity(ctx, id, delta)
	if err != nil {
		log.Error(ctx, "repository adjust quantity", logger.ErrorF(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return newQuantity, nil
}

func (s *service) Variants(ctx context.Context, sparePartID uuid.UUID) ([]*model.SparePartVariant, error) {
	const op = "sparepart.service.Variants"
	log := logger.With(
		logger.String("spare_part_id", sparePartID.String()),
	)

	if sparePartID == uuid.Nil {
		log.Error(ctx, "validation: empty spare part id")
		return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	variants, err := s.repo.Variants(ctx, sparePartID)
	if err != nil {
		log.Error(ctx, "repository variants", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return variants, nil
}

func (s *service) SearchVariants(
	ctx context.Context,
	sparePartID uuid.UUID,
	query string,
	attrs map[string]string,
) ([]*model.SparePartVariant, error) {
	const op = "sparepart.service.SearchVariants"

	variants, err := s.Variants(ctx, sparePartID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return variantstats.Filter(variants, query, attrs), nil
}

func (s *service) VariantStats(ctx context.Context, sparePartID uuid.UUID) (*model.VariantStats, error) {
	const op = "sparepart.service.VariantStats"

	variants, err := s.Variants(ctx, sparePartID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	stats := variantstats.Aggregate(variants)

	return &stats, nil
}

// ReplaceVariants swaps the whole variant set of a spare part. The set is
// validated up front (non-empty names, unique SKUs, valid category and
// supplier refs on the parent); the store then applies delete + insert +
// parent rollup in one transaction, so the stored metadata always matches
// the aggregate of the stored set.
func (s *service) ReplaceVariants(
	ctx context.Context,
	sparePartID uuid.UUID,
	variants []*model.SparePartVariant,
	actor uuid.UUID,
) ([]*model.SparePartVariant, error) {
	const op = "sparepart.service.ReplaceVariants"
	log := logger.With(
		logger.String("spare_part_id", sparePartID.String()),
		logger.String("actor_id", actor.String()),
		logger.Int("variant_count", len(variants)),
	)

	if sparePartID == uuid.Nil {
		log.Error(ctx, "validation: empty spare part id")
		return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	for _, v := range variants {
		if v == nil || v.Name == "" || v.SKU == "" || v.Quantity < 0 || v.MinQuantity < 0 {
			log.Error(ctx, "validation: malformed variant")
			return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
		}
	}

	skus := lo.Map(variants, func(v *model.SparePartVariant, _ int) string { return v.SKU })
	if len(lo.Uniq(skus)) != len(skus) {
		log.Error(ctx, "validation: duplicate sku in variant set")
		return nil, fmt.Errorf("%s: %w", op, model.ErrDuplicateSKU)
	}

	rdbCtx, rdbCancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer rdbCancel()

	parent, err := s.repo.SparePartByID(rdbCtx, sparePartID)
	if err != nil {
		log.Error(ctx, "repository spare part by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.validateRefs(rdbCtx, parent); err != nil {
		log.Error(ctx, "validate parent refs", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer wdbCancel()

	inserted, err := s.repo.ReplaceVariants(
		wdbCtx,
		sparePartID,
		variants,
		variantstats.Rollup(variants),
	)
	if err != nil {
		log.Error(ctx, "repository replace variants", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "variant set replaced")

	return inserted, nil
}

func (s *service) validateRefs(ctx context.Context, sp *model.SparePart) error {
	if sp.CategoryID != nil {
		ok, err := s.repo.CategoryExists(ctx, *sp.CategoryID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("category %s: %w", sp.CategoryID, model.ErrValidation)
		}
	}

	if sp.SupplierID != nil {
		ok, err := s.repo.SupplierExists(ctx, *sp.SupplierID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("supplier %s: %w", sp.SupplierID, model.ErrValidation)
		}
	}

	return nil
}
