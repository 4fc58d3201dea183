package member

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing member data from storage.
type Repository interface {
	GetByUsername(ctx context.Context, username string) (*Member, error)
	GetByID(ctx context.Context, id string) (*Member, error)
	Create(ctx context.Context, m *Member) error
	UpdateLastLogin(ctx context.Context, id string, t time.Time) error
	List(ctx context.Context, filter Filter) ([]*Member, int, error)
	Update(ctx context.Context, m *Member) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const memberColumns = `
	id, username, password_hash, name, account_type,
	level, dupr_rating, sex, suspended, agreed_terms_at, created_at, last_login_at
`

func scanMember(row pgx.Row) (*Member, error) {
	var m Member
	if err := row.Scan(
		&m.ID, &m.Username, &m.PasswordHash, &m.Name, &m.AccountType,
		&m.Level, &m.DuprRating, &m.Sex, &m.Suspended, &m.AgreedTermsAt,
		&m.CreatedAt, &m.LastLoginAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan member failed: %w", err)
	}
	return &m, nil
}

func (r *pgxRepository) GetByUsername(ctx context.Context, username string) (*Member, error) {
	query := `SELECT` + memberColumns + `FROM public.members WHERE username = $1`
	return scanMember(r.pool.QueryRow(ctx, query, username))
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Member, error) {
	query := `SELECT` + memberColumns + `FROM public.members WHERE id = $1`
	return scanMember(r.pool.QueryRow(ctx, query, id))
}

func (r *pgxRepository) Create(ctx context.Context, m *Member) error {
	const query = `
		INSERT INTO public.members
			(username, password_hash, name, account_type, level, dupr_rating, sex, agreed_terms_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	if err := r.pool.QueryRow(
		ctx, query,
		m.Username, m.PasswordHash, m.Name, m.AccountType,
		m.Level, m.DuprRating, m.Sex, m.AgreedTermsAt,
	).Scan(&m.ID, &m.CreatedAt); err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrUsernameExists
		}
		return fmt.Errorf("create member failed: %w", err)
	}

	return nil
}

func (r *pgxRepository) UpdateLastLogin(ctx context.Context, id string, t time.Time) error {
	const query = `UPDATE public.members SET last_login_at = $1 WHERE id = $2`

	ct, err := r.pool.Exec(ctx, query, t, id)
	if err != nil {
		return fmt.Errorf("update last login failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Member, int, error) {
	query := `SELECT` + memberColumns + `, count(*) OVER() AS total_count
		FROM public.members WHERE 1=1`

	var args []any
	paramIndex := 1

	if filter.Username != "" {
		query += fmt.Sprintf(" AND username ILIKE $%d", paramIndex)
		args = append(args, "%"+filter.Username+"%")
		paramIndex++
	}
	if filter.AccountType != "" {
		query += fmt.Sprintf(" AND account_type = $%d", paramIndex)
		args = append(args, filter.AccountType)
		paramIndex++
	}
	if filter.Suspended != nil {
		query += fmt.Sprintf(" AND suspended = $%d", paramIndex)
		args = append(args, *filter.Suspended)
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
		return nil, 0, fmt.Errorf("list members failed: %w", err)
	}
	defer rows.Close()

	var members []*Member
	var total int

	for rows.Next() {
		var m Member
		if err := rows.Scan(
			&m.ID, &m.Username, &m.PasswordHash, &m.Name, &m.AccountType,
			&m.Level, &m.DuprRating, &m.Sex, &m.Suspended, &m.AgreedTermsAt,
			&m.CreatedAt, &m.LastLoginAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan member failed: %w", err)
		}
		members = append(members, &m)
	}

	return members, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, m *Member) error {
	const query = `
		UPDATE public.members
		SET name = $1, level = $2, dupr_rating = $3, sex = $4, suspended = $5
		WHERE id = $6
	`

	ct, err := r.pool.Exec(ctx, query, m.Name, m.Level, m.DuprRating, m.Sex, m.Suspended, m.ID)
	if err != nil {
		return fmt.Errorf("update member failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
