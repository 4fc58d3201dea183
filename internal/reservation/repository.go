package reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, r *Reservation) error
	GetByID(ctx context.Context, id string) (*Reservation, error)
	FindBySlot(ctx context.Context, courtID, gameDate, timeSlot string) (*Reservation, error)
	List(ctx context.Context, filter Filter) ([]*Reservation, int, error)
	ListByVenueDate(ctx context.Context, venueID, gameDate string) ([]*Reservation, error)
	AddPlayer(ctx context.Context, reservationID, memberID string) (int, error)
	RemovePlayer(ctx context.Context, reservationID, memberID string) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, res *Reservation) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.reservations").
		Columns("court_id", "game_date", "time_slot").
		Values(res.CourtID, res.GameDate, res.TimeSlot).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create reservation query failed: %w", err)
	}

	err = r.pool.QueryRow(ctx, query, args...).
		Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create reservation failed: %w", err)
	}
	return nil
}

const reservationColumns = `r.id, r.court_id, c.name, c.venue_id,
	to_char(r.game_date, 'YYYY-MM-DD'), r.time_slot, r.created_at, r.updated_at`

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Reservation, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(reservationColumns).
		From("public.reservations r").
		Join("public.courts c ON r.court_id = c.id").
		Where(squirrel.Eq{"r.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get reservation query failed: %w", err)
	}

	return r.scanOne(ctx, query, args)
}

func (r *pgxRepository) FindBySlot(ctx context.Context, courtID, gameDate, timeSlot string) (*Reservation, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(reservationColumns).
		From("public.reservations r").
		Join("public.courts c ON r.court_id = c.id").
		Where(squirrel.Eq{"r.court_id": courtID, "r.game_date": gameDate, "r.time_slot": timeSlot}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find reservation query failed: %w", err)
	}

	return r.scanOne(ctx, query, args)
}

func (r *pgxRepository) scanOne(ctx context.Context, query string, args []any) (*Reservation, error) {
	row := r.pool.QueryRow(ctx, query, args...)

	var res Reservation
	err := row.Scan(
		&res.ID, &res.CourtID, &res.CourtName, &res.VenueID,
		&res.GameDate, &res.TimeSlot, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get reservation failed: %w", err)
	}

	if err := r.loadPlayers(ctx, []*Reservation{&res}); err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Reservation, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	queryBuilder := psql.Select(reservationColumns, "count(*) OVER() as total_count").
		From("public.reservations r").
		Join("public.courts c ON r.court_id = c.id")

	if filter.MemberID != "" {
		queryBuilder = queryBuilder.Where(
			"EXISTS (SELECT 1 FROM public.reservation_players rp WHERE rp.reservation_id = r.id AND rp.member_id = ?)",
			filter.MemberID,
		)
	}
	if filter.CourtID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"r.court_id": filter.CourtID})
	}
	if filter.VenueID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"c.venue_id": filter.VenueID})
	}
	if filter.GameDate != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"r.game_date": filter.GameDate})
	}
	if filter.FromDate != "" {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"r.game_date": filter.FromDate})
	}

	queryBuilder = queryBuilder.OrderBy("r.game_date ASC", "r.time_slot ASC")

	// Pagination
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	queryBuilder = queryBuilder.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list reservations query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reservations failed: %w", err)
	}
	defer rows.Close()

	var result []*Reservation
	var total int

	for rows.Next() {
		var res Reservation
		err := rows.Scan(
			&res.ID, &res.CourtID, &res.CourtName, &res.VenueID,
			&res.GameDate, &res.TimeSlot, &res.CreatedAt, &res.UpdatedAt, &total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan reservation failed: %w", err)
		}
		result = append(result, &res)
	}

	if err := r.loadPlayers(ctx, result); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *pgxRepository) ListByVenueDate(ctx context.Context, venueID, gameDate string) ([]*Reservation, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(reservationColumns).
		From("public.reservations r").
		Join("public.courts c ON r.court_id = c.id").
		Where(squirrel.Eq{"c.venue_id": venueID, "r.game_date": gameDate}).
		OrderBy("r.time_slot ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list venue reservations query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list venue reservations failed: %w", err)
	}
	defer rows.Close()

	var result []*Reservation
	for rows.Next() {
		var res Reservation
		err := rows.Scan(
			&res.ID, &res.CourtID, &res.CourtName, &res.VenueID,
			&res.GameDate, &res.TimeSlot, &res.CreatedAt, &res.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan reservation failed: %w", err)
		}
		result = append(result, &res)
	}

	if err := r.loadPlayers(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// loadPlayers fills the rosters of the given reservations in one query,
// ordered by join position.
func (r *pgxRepository) loadPlayers(ctx context.Context, reservations []*Reservation) error {
	if len(reservations) == 0 {
		return nil
	}

	ids := make([]string, len(reservations))
	byID := make(map[string]*Reservation, len(reservations))
	for i, res := range reservations {
		ids[i] = res.ID
		byID[res.ID] = res
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"rp.reservation_id", "rp.member_id", "m.username", "m.name", "rp.position",
	).
		From("public.reservation_players rp").
		Join("public.members m ON rp.member_id = m.id").
		Where(squirrel.Eq{"rp.reservation_id": ids}).
		OrderBy("rp.reservation_id", "rp.position ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("build load players query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("load players failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var reservationID string
		var p Player
		if err := rows.Scan(&reservationID, &p.MemberID, &p.Username, &p.Name, &p.Position); err != nil {
			return fmt.Errorf("scan player failed: %w", err)
		}
		if res, ok := byID[reservationID]; ok {
			res.Players = append(res.Players, p)
		}
	}
	return nil
}

func (r *pgxRepository) AddPlayer(ctx context.Context, reservationID, memberID string) (int, error) {
	// Position is the next free index on the roster. The SELECT and INSERT
	// run as one statement so concurrent joins cannot share a position.
	query := `
		INSERT INTO public.reservation_players (reservation_id, member_id, position)
		SELECT $1, $2, COALESCE(MAX(position) + 1, 0)
		FROM public.reservation_players
		WHERE reservation_id = $1
		RETURNING position`

	var position int
	err := r.pool.QueryRow(ctx, query, reservationID, memberID).Scan(&position)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return 0, ErrAlreadyReserved
		}
		return 0, fmt.Errorf("add player failed: %w", err)
	}
	return position, nil
}

func (r *pgxRepository) RemovePlayer(ctx context.Context, reservationID, memberID string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.reservation_players").
		Where(squirrel.Eq{"reservation_id": reservationID, "member_id": memberID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build remove player query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("remove player failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotOwner
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete reservation query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete reservation failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
