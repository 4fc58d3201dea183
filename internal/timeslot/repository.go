package timeslot

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, ts *TimeSlot) error
	GetByID(ctx context.Context, id string) (*TimeSlot, error)
	GetByLabel(ctx context.Context, venueID, label string) (*TimeSlot, error)
	List(ctx context.Context, filter Filter) ([]*TimeSlot, int, error)
	Update(ctx context.Context, ts *TimeSlot) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, ts *TimeSlot) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.time_slots").
		Columns("venue_id", "label", "display_order", "rental_only").
		Values(ts.VenueID, ts.Label, ts.DisplayOrder, ts.RentalOnly).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create time slot query failed: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&ts.ID, &ts.CreatedAt)
	if err != nil {
		return fmt.Errorf("create time slot failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*TimeSlot, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "venue_id", "label", "display_order", "rental_only", "created_at",
	).
		From("public.time_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get time slot query failed: %w", err)
	}

	return r.scanOne(ctx, query, args)
}

func (r *pgxRepository) GetByLabel(ctx context.Context, venueID, label string) (*TimeSlot, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "venue_id", "label", "display_order", "rental_only", "created_at",
	).
		From("public.time_slots").
		Where(squirrel.Eq{"venue_id": venueID, "label": label}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get time slot by label query failed: %w", err)
	}

	return r.scanOne(ctx, query, args)
}

func (r *pgxRepository) scanOne(ctx context.Context, query string, args []any) (*TimeSlot, error) {
	row := r.pool.QueryRow(ctx, query, args...)

	var ts TimeSlot
	if err := row.Scan(&ts.ID, &ts.VenueID, &ts.Label, &ts.DisplayOrder, &ts.RentalOnly, &ts.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get time slot failed: %w", err)
	}
	return &ts, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*TimeSlot, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	queryBuilder := psql.Select(
		"id", "venue_id", "label", "display_order", "rental_only", "created_at",
		"count(*) OVER() as total_count",
	).
		From("public.time_slots")

	if filter.VenueID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"venue_id": filter.VenueID})
	}

	queryBuilder = queryBuilder.OrderBy("display_order ASC", "label ASC")

	// Pagination
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 50
	}
	offset := (filter.Page - 1) * filter.PageSize

	queryBuilder = queryBuilder.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list time slots query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list time slots failed: %w", err)
	}
	defer rows.Close()

	var result []*TimeSlot
	var total int

	for rows.Next() {
		var ts TimeSlot
		if err := rows.Scan(
			&ts.ID, &ts.VenueID, &ts.Label, &ts.DisplayOrder, &ts.RentalOnly, &ts.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan time slot failed: %w", err)
		}
		result = append(result, &ts)
	}

	return result, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, ts *TimeSlot) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.time_slots").
		Set("label", ts.Label).
		Set("display_order", ts.DisplayOrder).
		Set("rental_only", ts.RentalOnly).
		Where(squirrel.Eq{"id": ts.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update time slot query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update time slot failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.time_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete time slot query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete time slot failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
