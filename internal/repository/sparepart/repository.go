package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/you-humble/repair-fulfillment/internal/model"
)

const sparePartColumns = "id, name, part_number, cost_price, selling_price, " +
	"quantity, min_quantity, is_active, category_id, supplier_id, metadata, " +
	"created_at, updated_at"

type Repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewSparePartRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *Repository) SparePartByID(ctx context.Context, id uuid.UUID) (*model.SparePart, error) {
	const op = "repository.SparePartByID"

	q := r.sb.
		Select(sparePartColumns).
		From("spare_parts").
		Where(sq.Eq{"id": id})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sp, err := scanSparePart(r.pool.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSparePartNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return sp, nil
}

func (r *Repository) SparePartsByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.SparePart, error) {
	const op = "repository.SparePartsByIDs"

	if len(ids) == 0 {
		return []*model.SparePart{}, nil
	}

	q := r.sb.
		Select(sparePartColumns).
		From("spare_parts").
		Where(sq.Eq{"id": ids})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := make([]*model.SparePart, 0, len(ids))
	for rows.Next() {
		sp, err := scanSparePart(rows)
		if err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		out = append(out, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s rows: %w", op, err)
	}

	return out, nil
}

// AdjustQuantity applies delta to the on-hand quantity in a single
// conditional UPDATE, so the quantity can never go below zero even under
// concurrent adjustments. Zero affected rows is resolved to either
// ErrSparePartNotFound or an InsufficientStockError.
func (r *Repository) AdjustQuantity(ctx context.Context, id uuid.UUID, delta int64) (int64, error) {
	const op = "repository.AdjustQuantity"

	q := r.sb.
		Update("spare_parts").
		Set("quantity", sq.Expr("quantity + ?", delta)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Where(sq.Expr("quantity + ? >= 0", delta)).
		Suffix("RETURNING quantity")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var newQuantity int64
	err = r.pool.QueryRow(ctx, sqlStr, args...).Scan(&newQuantity)
	if err == nil {
		return newQuantity, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	// The guarded update matched nothing: either the part does not exist
	// or the decrement would have gone negative.
	var (
		name      string
		available int64
	)
	selSQL, selArgs, err := r.sb.
		Select("name", "quantity").
		From("spare_parts").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	err = r.pool.QueryRow(ctx, selSQL, selArgs...).Scan(&name, &available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, model.ErrSparePartNotFound
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return 0, &model.InsufficientStockError{
		PartName:  name,
		Available: available,
		Needed:    -delta,
	}
}

func (r *Repository) Variants(ctx context.Context, sparePartID uuid.UUID) ([]*model.SparePartVariant, error) {
	const op = "repository.Variants"

	q := r.sb.
		Select("id", "spare_part_id", "name", "sku", "cost_price", "selling_price",
			"quantity", "min_quantity", "attributes", "image_url", "created_at", "updated_at").
		From("spare_part_variants").
		Where(sq.Eq{"spare_part_id": sparePartID}).
		OrderBy("position", "id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := make([]*model.SparePartVariant, 0)
	for rows.Next() {
		var v model.SparePartVariant
		err := rows.Scan(
			&v.ID,
			&v.SparePartID,
			&v.Name,
			&v.SKU,
			&v.CostPrice,
			&v.SellingPrice,
			&v.Quantity,
			&v.MinQuantity,
			&v.Attributes,
			&v.ImageURL,
			&v.CreatedAt,
			&v.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s rows: %w", op, err)
	}

	return out, nil
}

// ReplaceVariants swaps the whole variant set of a spare part and rewrites
// the parent's derived rollup in the same transaction. The parent's own
// stock and price fields are zeroed: with variants in use they live on
// the variant rows.
func (r *Repository) ReplaceVariants(
	ctx context.Context,
	sparePartID uuid.UUID,
	variants []*model.SparePartVariant,
	rollup model.VariantRollup,
) ([]*model.SparePartVariant, error) {
	const op = "repository.ReplaceVariants"

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("%s begin: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	delSQL, delArgs, err := r.sb.
		Delete("spare_part_variants").
		Where(sq.Eq{"spare_part_id": sparePartID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if _, err := tx.Exec(ctx, delSQL, delArgs...); err != nil {
		return nil, fmt.Errorf("%s delete: %w", op, err)
	}

	inserted := make([]*model.SparePartVariant, 0, len(variants))
	for i, v := range variants {
		// position preserves the caller's ordering: created_at is the same
		// tx-start timestamp for every row and ids are random.
		insQ := r.sb.
			Insert("spare_part_variants").
			Columns("spare_part_id", "name", "sku", "cost_price", "selling_price",
				"quantity", "min_quantity", "attributes", "image_url", "position").
			Values(sparePartID, v.Name, v.SKU, v.CostPrice, v.SellingPrice,
				v.Quantity, v.MinQuantity, v.Attributes, v.ImageURL, i).
			Suffix("RETURNING id, created_at, updated_at")

		insSQL, insArgs, err := insQ.ToSql()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		row := *v
		row.SparePartID = sparePartID
		if err := tx.QueryRow(ctx, insSQL, insArgs...).
			Scan(&row.ID, &row.CreatedAt, &row.UpdatedAt); err != nil {
			if isUniqueViolation(err) {
				return nil, model.ErrDuplicateSKU
			}
			return nil, fmt.Errorf("%s insert: %w", op, err)
		}
		inserted = append(inserted, &row)
	}

	meta := map[string]any{
		model.MetaUseVariants:   rollup.UseVariants,
		model.MetaVariantCount:  rollup.VariantCount,
		model.MetaTotalQuantity: rollup.TotalQuantity,
		model.MetaTotalValue:    rollup.TotalValue,
	}

	updQ := r.sb.
		Update("spare_parts").
		Set("quantity", 0).
		Set("min_quantity", 0).
		Set("cost_price", 0).
		Set("selling_price", 0).
		Set("metadata", sq.Expr("coalesce(metadata, '{}'::jsonb) || ?", meta)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": sparePartID})

	updSQL, updArgs, err := updQ.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ct, err := tx.Exec(ctx, updSQL, updArgs...)
	if err != nil {
		return nil, fmt.Errorf("%s update parent: %w", op, err)
	}
	if ct.RowsAffected() == 0 {
		return nil, model.ErrSparePartNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s commit: %w", op, err)
	}

	return inserted, nil
}

func (r *Repository) CategoryExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.exists(ctx, "categories", id)
}

func (r *Repository) SupplierExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.exists(ctx, "suppliers", id)
}

func (r *Repository) exists(ctx context.Context, table string, id uuid.UUID) (bool, error) {
	const op = "repository.exists"

	sqlStr, args, err := r.sb.
		Select("1").
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%s %s: %w", op, table, err)
	}

	var one int
	err = r.pool.QueryRow(ctx, sqlStr, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("%s %s: %w", op, table, err)
	}

	return true, nil
}

// 23505 is the postgres unique_violation class; the only unique
// constraint on spare_part_variants is the sku one.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func scanSparePart(row pgx.Row) (*model.SparePart, error) {
	var sp model.SparePart
	err := row.Scan(
		&sp.ID,
		&sp.Name,
		&sp.PartNumber,
		&sp.CostPrice,
		&sp.SellingPrice,
		&sp.Quantity,
		&sp.MinQuantity,
		&sp.IsActive,
		&sp.CategoryID,
		&sp.SupplierID,
		&sp.Metadata,
		&sp.CreatedAt,
		&sp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &sp, nil
}
