package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/you-humble/repair-fulfillment/internal/model"
	"github.com/you-humble/repair-fulfillment/platform/logger"
)

const usageReason = "repair attachment"

type RepairPartRepository interface {
	CreateBatch(ctx context.Context, parts []*model.RepairPart) ([]*model.RepairPart, error)
	RepairPartByID(ctx context.Context, id uuid.UUID) (*model.RepairPart, error)
	UpdateStatus(ctx context.Context, ids []uuid.UUID, upd model.StatusUpdate) ([]*model.RepairPart, error)
	MarkUsed(ctx context.Context, id uuid.UUID, actor uuid.UUID) (*model.RepairPart, error)
	ListForDevice(ctx context.Context, deviceID uuid.UUID) ([]*model.RepairPartDetails, error)
	ListByStatus(ctx context.Context, status model.RepairPartStatus, deviceID *uuid.UUID) ([]*model.RepairPartDetails, error)
}

type StockRepository interface {
	SparePartsByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.SparePart, error)
	AdjustQuantity(ctx context.Context, id uuid.UUID, delta int64) (int64, error)
}

type UsageRepository interface {
	Append(ctx context.Context, rec *model.UsageRecord) (uuid.UUID, error)
}

type StockEventSender interface {
	SendStockMoved(ctx context.Context, event model.StockMovedEvent) error
}

type service struct {
	parts          RepairPartRepository
	stock          StockRepository
	ledger         UsageRepository
	events         StockEventSender
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewRepairPartService(
	parts RepairPartRepository,
	stock StockRepository,
	ledger UsageRepository,
	events StockEventSender,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		parts:          parts,
		stock:          stock,
		ledger:         ledger,
		events:         events,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

// CreateMany reserves spare parts for device repairs. The whole batch is
// pre-checked against on-hand stock and inserted all-or-nothing; the
// follow-up stock decrement, ledger append and event publish run per item
// and are best effort. Their failures come back as aux outcomes, never as
// an operation error.
func (svc *service) CreateMany(
	ctx context.Context,
	params []model.CreateRepairPartParams,
	actor uuid.UUID,
) (*model.CreateRepairPartsResult, error) {
	const op = "repairpart.service.CreateMany"
	log := logger.With(
		logger.String("actor_id", actor.String()),
		logger.Int("items", len(params)),
	)

	if len(params) == 0 {
		log.Error(ctx, "validation: empty batch")
		return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}
	for _, p := range params {
		if p.DeviceID == uuid.Nil || p.SparePartID == uuid.Nil ||
			p.QuantityNeeded <= 0 || p.CostPerUnit < 0 {
			log.Error(ctx, "validation: malformed create params")
			return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
		}
	}

	if err := svc.precheckStock(ctx, params); err != nil {
		log.Warn(ctx, "stock pre-check failed", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows := make([]*model.RepairPart, 0, len(params))
	for _, p := range params {
		rows = append(rows, &model.RepairPart{
			DeviceID:       p.DeviceID,
			SparePartID:    p.SparePartID,
			VariantID:      p.VariantID,
			QuantityNeeded: p.QuantityNeeded,
			CostPerUnit:    p.CostPerUnit,
			TotalCost:      float64(p.QuantityNeeded) * p.CostPerUnit,
			Status:         model.StatusNeeded,
			Notes:          p.Notes,
			CreatedBy:      actor,
			UpdatedBy:      actor,
		})
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	created, err := svc.parts.CreateBatch(wdbCtx, rows)
	wdbCancel()
	if err != nil {
		log.Error(ctx, "repository create batch", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := &model.CreateRepairPartsResult{Parts: created}
	for _, part := range created {
		result.Aux = append(result.Aux, svc.reserveStock(ctx, part, actor)...)
	}

	log.Info(ctx, "repair parts created",
		logger.Int("created", len(created)),
		logger.Int("aux_failures", len(result.Aux)),
	)

	return result, nil
}

// Create is the single-item path over CreateMany.
func (svc *service) Create(
	ctx context.Context,
	params model.CreateRepairPartParams,
	actor uuid.UUID,
) (*model.RepairPart, []model.AuxOutcome, error) {
	const op = "repairpart.service.Create"

	res, err := svc.CreateMany(ctx, []model.CreateRepairPartParams{params}, actor)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return res.Parts[0], res.Aux, nil
}

// precheckStock verifies every requested quantity against on-hand stock
// before anything is written. Quantities are summed per spare part so a
// batch cannot pass by splitting one oversized request into small ones.
func (svc *service) precheckStock(ctx context.Context, params []model.CreateRepairPartParams) error {
	needed := make(map[uuid.UUID]int64)
	for _, p := range params {
		needed[p.SparePartID] += p.QuantityNeeded
	}

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	spareParts, err := svc.stock.SparePartsByIDs(ctx, lo.Keys(needed))
	if err != nil {
		return err
	}
	if len(spareParts) != len(needed) {
		return model.ErrSparePartNotFound
	}

	for _, sp := range spareParts {
		if want := needed[sp.ID]; sp.Quantity < want {
			return &model.InsufficientStockError{
				PartName:  sp.Name,
				Available: sp.Quantity,
				Needed:    want,
			}
		}
	}

	return nil
}

// reserveStock runs the per-item auxiliary chain: conditional decrement,
// ledger append, reserved event. Ledger and event are skipped when the
// decrement failed, so the ledger never records stock that did not move.
func (svc *service) reserveStock(ctx context.Context, part *model.RepairPart, actor uuid.UUID) []model.AuxOutcome {
	log := logger.With(
		logger.String("repair_part_id", part.ID.String()),
		logger.String("spare_part_id", part.SparePartID.String()),
	)

	var aux []model.AuxOutcome

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	_, err := svc.stock.AdjustQuantity(wdbCtx, part.SparePartID, -part.QuantityNeeded)
	wdbCancel()
	if err != nil {
		log.Warn(ctx, "stock decrement failed", logger.ErrorF(err))
		return append(aux, auxOutcome(model.AuxStepStockDecrement, part, err))
	}

	wdbCtx, wdbCancel = context.WithTimeout(ctx, svc.writeDBTimeout)
	_, err = svc.ledger.Append(wdbCtx, &model.UsageRecord{
		SparePartID: part.SparePartID,
		Quantity:    part.QuantityNeeded,
		DeviceID:    part.DeviceID,
		Reason:      usageReason,
		Notes:       part.Notes,
		UsedBy:      actor,
	})
	wdbCancel()
	if err != nil {
		log.Warn(ctx, "usage record append failed", logger.ErrorF(err))
		aux = append(aux, auxOutcome(model.AuxStepUsageRecord, part, err))
	}

	if err := svc.sendStockEvent(ctx, part, actor, model.StockEventReserved); err != nil {
		log.Warn(ctx, "stock event publish failed", logger.ErrorF(err))
		aux = append(aux, auxOutcome(model.AuxStepStockEvent, part, err))
	}

	return aux
}

func (svc *service) RepairPartByID(ctx context.Context, id uuid.UUID) (*model.RepairPart, error) {
	const op = "repairpart.service.RepairPartByID"

	if id == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	part, err := svc.parts.RepairPartByID(ctx, id)
	if err != nil {
		logger.Error(ctx, "repository repair part by id",
			logger.String("repair_part_id", id.String()), logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return part, nil
}

func (svc *service) Accept(ctx context.Context, ids []uuid.UUID, actor uuid.UUID) ([]*model.RepairPart, error) {
	const op = "repairpart.service.Accept"

	return svc.bulkStatus(ctx, op, ids, actor, model.StatusUpdate{
		Status:    model.StatusAccepted,
		UpdatedBy: actor,
	})
}

// Reject sends parts back to needed. A non-empty reason overwrites the
// notes field.
func (svc *service) Reject(ctx context.Context, ids []uuid.UUID, actor uuid.UUID, reason string) ([]*model.RepairPart, error) {
	const op = "repairpart.service.Reject"

	upd := model.StatusUpdate{
		Status:    model.StatusNeeded,
		UpdatedBy: actor,
	}
	if reason != "" {
		upd.Notes = lo.ToPtr("Rejected by customer care: " + reason)
	}

	return svc.bulkStatus(ctx, op, ids, actor, upd)
}

func (svc *service) MarkReceived(ctx context.Context, ids []uuid.UUID, actor uuid.UUID) ([]*model.RepairPart, error) {
	const op = "repairpart.service.MarkReceived"

	return svc.bulkStatus(ctx, op, ids, actor, model.StatusUpdate{
		Status:    model.StatusReceived,
		UpdatedBy: actor,
	})
}

func (svc *service) bulkStatus(
	ctx context.Context,
	op string,
	ids []uuid.UUID,
	actor uuid.UUID,
	upd model.StatusUpdate,
) ([]*model.RepairPart, error) {
	log := logger.With(
		logger.String("actor_id", actor.String()),
		logger.String("status", string(upd.Status)),
		logger.Int("ids_count", len(ids)),
	)

	if actor == uuid.Nil {
		log.Error(ctx, "missing actor")
		return nil, fmt.Errorf("%s: %w", op, model.ErrUnauthenticated)
	}
	if len(ids) == 0 {
		log.Error(ctx, "validation: empty id list")
		return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	updated, err := svc.parts.UpdateStatus(ctx, ids, upd)
	if err != nil {
		log.Error(ctx, "repository update status", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "repair parts status updated", logger.Int("updated", len(updated)))

	return updated, nil
}

// MarkUsed finalizes a single repair part: status=used and quantity_used
// set to the reserved quantity. Stock was already decremented when the
// reservation was created, so no second decrement happens here; only a
// best-effort "used" event goes out.
func (svc *service) MarkUsed(ctx context.Context, id uuid.UUID, actor uuid.UUID) (*model.RepairPart, []model.AuxOutcome, error) {
	const op = "repairpart.service.MarkUsed"
	log := logger.With(
		logger.String("repair_part_id", id.String()),
		logger.String("actor_id", actor.String()),
	)

	if actor == uuid.Nil {
		log.Error(ctx, "missing actor")
		return nil, nil, fmt.Errorf("%s: %w", op, model.ErrUnauthenticated)
	}
	if id == uuid.Nil {
		log.Error(ctx, "validation: empty repair part id")
		return nil, nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	part, err := svc.parts.MarkUsed(wdbCtx, id, actor)
	wdbCancel()
	if err != nil {
		log.Error(ctx, "repository mark used", logger.ErrorF(err))
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	var aux []model.AuxOutcome
	if err := svc.sendStockEvent(ctx, part, actor, model.StockEventUsed); err != nil {
		log.Warn(ctx, "stock event publish failed", logger.ErrorF(err))
		aux = append(aux, auxOutcome(model.AuxStepStockEvent, part, err))
	}

	return part, aux, nil
}

func (svc *service) ListForDevice(ctx context.Context, deviceID uuid.UUID) ([]*model.RepairPartDetails, error) {
	const op = "repairpart.service.ListForDevice"
	log := logger.With(
		logger.String("device_id", deviceID.String()),
	)

	if deviceID == uuid.Nil {
		log.Error(ctx, "validation: empty device id")
		return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	out, err := svc.parts.ListForDevice(ctx, deviceID)
	if err != nil {
		log.Error(ctx, "repository list for device", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (svc *service) ListByStatus(
	ctx context.Context,
	status model.RepairPartStatus,
	deviceID *uuid.UUID,
) ([]*model.RepairPartDetails, error) {
	const op = "repairpart.service.ListByStatus"
	log := logger.With(
		logger.String("status", string(status)),
	)

	if !model.KnownStatus(status) {
		log.Error(ctx, "unknown repair part status")
		return nil, fmt.Errorf("%s: %w", op, model.ErrUnknownStatus)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	out, err := svc.parts.ListByStatus(ctx, status, deviceID)
	if err != nil {
		log.Error(ctx, "repository list by status", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (svc *service) StatsForDevice(ctx context.Context, deviceID uuid.UUID) (*model.RepairPartsStats, error) {
	const op = "repairpart.service.StatsForDevice"

	parts, err := svc.ListForDevice(ctx, deviceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	stats := &model.RepairPartsStats{TotalParts: len(parts)}
	for _, p := range parts {
		stats.TotalCost += p.TotalCost

		switch p.Status {
		case model.StatusNeeded:
			stats.PartsNeeded++
		case model.StatusOrdered:
			stats.PartsOrdered++
		case model.StatusAccepted:
			stats.PartsAccepted++
		case model.StatusReceived:
			stats.PartsReceived++
		case model.StatusUsed:
			stats.PartsUsed++
		}
	}

	if stats.TotalParts > 0 {
		stats.ProgressPercentage = int(math.Round(
			float64(stats.PartsUsed) / float64(stats.TotalParts) * 100,
		))
	}

	return stats, nil
}

func (svc *service) sendStockEvent(
	ctx context.Context,
	part *model.RepairPart,
	actor uuid.UUID,
	kind model.StockEventKind,
) error {
	return svc.events.SendStockMoved(ctx, model.StockMovedEvent{
		EventID:     uuid.New(),
		Kind:        kind,
		SparePartID: part.SparePartID,
		DeviceID:    part.DeviceID,
		Quantity:    part.QuantityNeeded,
		ActorID:     actor,
		OccurredAt:  time.Now().UTC(),
	})
}

func auxOutcome(step string, part *model.RepairPart, err error) model.AuxOutcome {
	id := part.ID

	return model.AuxOutcome{
		Step:        step,
		SparePartID: part.SparePartID,
		RepairPart:  &id,
		Err:         err,
		Message:     err.Error(),
	}
}
