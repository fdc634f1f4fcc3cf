package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/you-humble/repair-fulfillment/internal/model"
)

const repairPartColumns = "id, device_id, spare_part_id, variant_id, " +
	"quantity_needed, quantity_used, cost_per_unit, total_cost, status, notes, " +
	"created_by, updated_by, created_at, updated_at"

type Repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewRepairPartRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateBatch inserts all rows in one statement and returns them with
// generated ids and timestamps, in input order.
func (r *Repository) CreateBatch(ctx context.Context, parts []*model.RepairPart) ([]*model.RepairPart, error) {
	const op = "repository.CreateBatch"

	if len(parts) == 0 {
		return []*model.RepairPart{}, nil
	}

	q := r.sb.
		Insert("repair_parts").
		Columns("device_id", "spare_part_id", "variant_id", "quantity_needed",
			"quantity_used", "cost_per_unit", "total_cost", "status", "notes",
			"created_by", "updated_by")

	for _, p := range parts {
		q = q.Values(p.DeviceID, p.SparePartID, p.VariantID, p.QuantityNeeded,
			p.QuantityUsed, p.CostPerUnit, p.TotalCost, p.Status, p.Notes,
			p.CreatedBy, p.UpdatedBy)
	}
	q = q.Suffix("RETURNING id, created_at, updated_at")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := make([]*model.RepairPart, 0, len(parts))
	i := 0
	for rows.Next() {
		if i >= len(parts) {
			return nil, fmt.Errorf("%s: more rows returned than inserted", op)
		}
		row := *parts[i]
		if err := rows.Scan(&row.ID, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		out = append(out, &row)
		i++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s rows: %w", op, err)
	}

	return out, nil
}

func (r *Repository) RepairPartByID(ctx context.Context, id uuid.UUID) (*model.RepairPart, error) {
	const op = "repository.RepairPartByID"

	sqlStr, args, err := r.sb.
		Select(repairPartColumns).
		From("repair_parts").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rp, err := scanRepairPart(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrRepairPartNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rp, nil
}

// UpdateStatus applies one bulk status mutation to all ids and returns the
// mutated rows. Unknown ids are silently skipped.
func (r *Repository) UpdateStatus(ctx context.Context, ids []uuid.UUID, upd model.StatusUpdate) ([]*model.RepairPart, error) {
	const op = "repository.UpdateStatus"

	if len(ids) == 0 {
		return []*model.RepairPart{}, nil
	}

	q := r.sb.
		Update("repair_parts").
		Set("status", upd.Status).
		Set("updated_by", upd.UpdatedBy).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": ids})

	if upd.Notes != nil {
		q = q.Set("notes", *upd.Notes)
	}
	if upd.QuantityUsed != nil {
		q = q.Set("quantity_used", *upd.QuantityUsed)
	}
	q = q.Suffix("RETURNING " + repairPartColumns)

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := make([]*model.RepairPart, 0, len(ids))
	for rows.Next() {
		rp, err := scanRepairPart(rows)
		if err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		out = append(out, rp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s rows: %w", op, err)
	}

	return out, nil
}

// MarkUsed sets status=used and copies quantity_needed into quantity_used
// for a single repair part.
func (r *Repository) MarkUsed(ctx context.Context, id uuid.UUID, actor uuid.UUID) (*model.RepairPart, error) {
	const op = "repository.MarkUsed"

	q := r.sb.
		Update("repair_parts").
		Set("status", model.StatusUsed).
		Set("quantity_used", sq.Expr("quantity_needed")).
		Set("updated_by", actor).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + repairPartColumns)

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rp, err := scanRepairPart(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrRepairPartNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rp, nil
}

func (r *Repository) ListForDevice(ctx context.Context, deviceID uuid.UUID) ([]*model.RepairPartDetails, error) {
	return r.listDetails(ctx, sq.Eq{"rp.device_id": deviceID})
}

func (r *Repository) ListByStatus(
	ctx context.Context,
	status model.RepairPartStatus,
	deviceID *uuid.UUID,
) ([]*model.RepairPartDetails, error) {
	where := sq.And{sq.Eq{"rp.status": status}}
	if deviceID != nil {
		where = append(where, sq.Eq{"rp.device_id": *deviceID})
	}

	return r.listDetails(ctx, where)
}

// StatusesForDevice returns just the statuses of all repair parts reserved
// for a device, for readiness evaluation.
func (r *Repository) StatusesForDevice(ctx context.Context, deviceID uuid.UUID) ([]model.RepairPartStatus, error) {
	const op = "repository.StatusesForDevice"

	sqlStr, args, err := r.sb.
		Select("status").
		From("repair_parts").
		Where(sq.Eq{"device_id": deviceID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := make([]model.RepairPartStatus, 0)
	for rows.Next() {
		var s model.RepairPartStatus
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s rows: %w", op, err)
	}

	return out, nil
}

func (r *Repository) listDetails(ctx context.Context, where any) ([]*model.RepairPartDetails, error) {
	const op = "repository.listDetails"

	q := r.sb.
		Select(
			"rp.id", "rp.device_id", "rp.spare_part_id", "rp.variant_id",
			"rp.quantity_needed", "rp.quantity_used", "rp.cost_per_unit",
			"rp.total_cost", "rp.status", "rp.notes",
			"rp.created_by", "rp.updated_by", "rp.created_at", "rp.updated_at",
			"sp.name", "sp.part_number", "sp.quantity", "sp.min_quantity",
			"sp.cost_price", "sp.selling_price", "sp.is_active",
			"c.name", "s.name",
			"v.id", "v.name", "v.sku", "v.quantity", "v.selling_price",
		).
		From("repair_parts rp").
		Join("spare_parts sp ON sp.id = rp.spare_part_id").
		LeftJoin("categories c ON c.id = sp.category_id").
		LeftJoin("suppliers s ON s.id = sp.supplier_id").
		LeftJoin("spare_part_variants v ON v.id = rp.variant_id").
		Where(where).
		OrderBy("rp.created_at DESC")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := make([]*model.RepairPartDetails, 0)
	for rows.Next() {
		var (
			det model.RepairPartDetails

			vID           *uuid.UUID
			vName         *string
			vSKU          *string
			vQuantity     *int64
			vSellingPrice *float64
		)

		err := rows.Scan(
			&det.ID, &det.DeviceID, &det.SparePartID, &det.VariantID,
			&det.QuantityNeeded, &det.QuantityUsed, &det.CostPerUnit,
			&det.TotalCost, &det.Status, &det.Notes,
			&det.CreatedBy, &det.UpdatedBy, &det.CreatedAt, &det.UpdatedAt,
			&det.SparePart.Name, &det.SparePart.PartNumber,
			&det.SparePart.Quantity, &det.SparePart.MinQuantity,
			&det.SparePart.CostPrice, &det.SparePart.SellingPrice,
			&det.SparePart.IsActive,
			&det.SparePart.CategoryName, &det.SparePart.SupplierName,
			&vID, &vName, &vSKU, &vQuantity, &vSellingPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}

		det.SparePart.ID = det.SparePartID
		if vID != nil {
			det.Variant = &model.VariantSummary{
				ID:           *vID,
				Name:         *vName,
				SKU:          *vSKU,
				Quantity:     *vQuantity,
				SellingPrice: *vSellingPrice,
			}
		}

		out = append(out, &det)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s rows: %w", op, err)
	}

	return out, nil
}

func scanRepairPart(row pgx.Row) (*model.RepairPart, error) {
	var rp model.RepairPart
	err := row.Scan(
		&rp.ID,
		&rp.DeviceID,
		&rp.SparePartID,
		&rp.VariantID,
		&rp.QuantityNeeded,
		&rp.QuantityUsed,
		&rp.CostPerUnit,
		&rp.TotalCost,
		&rp.Status,
		&rp.Notes,
		&rp.CreatedBy,
		&rp.UpdatedBy,
		&rp.CreatedAt,
		&rp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &rp, nil
}
