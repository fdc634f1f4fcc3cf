package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/repair-fulfillment/internal/model"
	"github.com/you-humble/repair-fulfillment/platform/logger"
)

type RepairPartStatusReader interface {
	StatusesForDevice(ctx context.Context, deviceID uuid.UUID) ([]model.RepairPartStatus, error)
}

type service struct {
	parts         RepairPartStatusReader
	readDBTimeout time.Duration
}

func NewReadinessService(parts RepairPartStatusReader, readDBTimeout time.Duration) *service {
	return &service{parts: parts, readDBTimeout: readDBTimeout}
}

// Evaluate derives the all-parts-ready signal for one device. A device
// with zero reserved parts is never ready: no reservations is
// indistinguishable from not yet assessed.
func (s *service) Evaluate(ctx context.Context, deviceID uuid.UUID) (*model.Readiness, error) {
	const op = "readiness.service.Evaluate"
	log := logger.With(
		logger.String("device_id", deviceID.String()),
	)

	if deviceID == uuid.Nil {
		log.Error(ctx, "validation: empty device id")
		return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	statuses, err := s.parts.StatusesForDevice(ctx, deviceID)
	if err != nil {
		log.Error(ctx, "repository statuses for device", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res := &model.Readiness{TotalParts: len(statuses)}
	for _, st := range statuses {
		if model.ReadyStatus(st) {
			res.ReadyParts++
		}
	}

	res.Ready = res.TotalParts > 0 && res.ReadyParts == res.TotalParts
	if res.Ready {
		res.Message = fmt.Sprintf("All %d parts are ready", res.TotalParts)
	} else {
		res.Message = fmt.Sprintf("%d/%d parts are ready", res.ReadyParts, res.TotalParts)
	}

	return res, nil
}
