package venue

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, v *Venue) error
	GetByID(ctx context.Context, id string) (*Venue, error)
	List(ctx context.Context, filter Filter) ([]*Venue, int, error)
	Update(ctx context.Context, v *Venue) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, v *Venue) error {
	const query = `
		INSERT INTO public.venues (name, address, phone, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query, v.Name, v.Address, v.Phone, v.OwnerID).
		Scan(&v.ID, &v.CreatedAt)
	if err != nil {
		return fmt.Errorf("create venue failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Venue, error) {
	const query = `
		SELECT id, name, address, phone, owner_id, created_at
		FROM public.venues
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var v Venue
	if err := row.Scan(&v.ID, &v.Name, &v.Address, &v.Phone, &v.OwnerID, &v.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get venue failed: %w", err)
	}
	return &v, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Venue, int, error) {
	query := `
		SELECT id, name, address, phone, owner_id, created_at, count(*) OVER() as total_count
		FROM public.venues
		WHERE 1=1
	`
	var args []any
	paramIndex := 1

	if filter.Keyword != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR address ILIKE $%d)", paramIndex, paramIndex)
		args = append(args, "%"+filter.Keyword+"%")
		paramIndex++
	}
	if filter.OwnerID != "" {
		query += fmt.Sprintf(" AND owner_id = $%d", paramIndex)
		args = append(args, filter.OwnerID)
		paramIndex++
	}

	query += " ORDER BY created_at DESC"

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", paramIndex, paramIndex+1)
	args = append(args, filter.PageSize, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list venues failed: %w", err)
	}
	defer rows.Close()

	var venues []*Venue
	var total int

	for rows.Next() {
		var v Venue
		if err := rows.Scan(&v.ID, &v.Name, &v.Address, &v.Phone, &v.OwnerID, &v.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan venue failed: %w", err)
		}
		venues = append(venues, &v)
	}

	return venues, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, v *Venue) error {
	const query = `
		UPDATE public.venues
		SET name = $1, address = $2, phone = $3
		WHERE id = $4
	`
	ct, err := r.pool.Exec(ctx, query, v.Name, v.Address, v.Phone, v.ID)
	if err != nil {
		return fmt.Errorf("update venue failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM public.venues WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete venue failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
