package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/you-humble/repair-fulfillment/internal/model"
)

type Repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewUsageRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Append writes one immutable usage record. The ledger has no update or
// delete path.
func (r *Repository) Append(ctx context.Context, rec *model.UsageRecord) (uuid.UUID, error) {
	const op = "repository.Append"

	q := r.sb.
		Insert("spare_part_usage").
		Columns("spare_part_id", "quantity", "device_id", "reason", "notes", "used_by").
		Values(rec.SparePartID, rec.Quantity, rec.DeviceID, rec.Reason, rec.Notes, rec.UsedBy).
		Suffix("RETURNING id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// ForSparePart lists usage records for one spare part, newest first.
func (r *Repository) ForSparePart(ctx context.Context, sparePartID uuid.UUID) ([]*model.UsageRecord, error) {
	const op = "repository.ForSparePart"

	q := r.sb.
		Select("id", "spare_part_id", "quantity", "device_id", "reason", "notes", "used_by", "created_at").
		From("spare_part_usage").
		Where(sq.Eq{"spare_part_id": sparePartID}).
		OrderBy("created_at DESC")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := make([]*model.UsageRecord, 0)
	for rows.Next() {
		var rec model.UsageRecord
		err := rows.Scan(
			&rec.ID,
			&rec.SparePartID,
			&rec.Quantity,
			&rec.DeviceID,
			&rec.Reason,
			&rec.Notes,
			&rec.UsedBy,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		out = append(out, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s rows: %w", op, err)
	}

	return out, nil
}
