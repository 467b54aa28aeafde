package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-gin-event-booking/internal/model"
	apperrors "go-gin-event-booking/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// 訂單編號碰撞時最多重新產生的次數
const maxReferenceAttempts = 5

const uniqueViolation = "23505"

type BookingRepository interface {
	// Create 鎖住活動列並檢查剩餘名額後寫入
	Create(ctx context.Context, booking *model.Booking) (*model.Booking, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Booking, error)
	FindByReference(ctx context.Context, reference string) (*model.Booking, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID, filter model.BookingFilter) ([]*model.Booking, error)
	UpdateStatusWithLock(ctx context.Context, id uuid.UUID, status model.BookingStatus) (*model.StatusChange, error)
}

type BookingRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &BookingRepositoryImpl{
		pool: pool,
	}
}

const bookingColumns = `id, reference, event_id, ticket_type_id, ticket_type_name, unit_price,
	quantity, total_price, status, payment, customer_name, customer_email, version,
	created_at, paid_at, updated_at`

func scanBooking(row pgx.Row) (*model.Booking, error) {
	var booking model.Booking
	err := row.Scan(
		&booking.ID,
		&booking.Reference,
		&booking.EventID,
		&booking.TicketTypeID,
		&booking.TicketTypeName,
		&booking.UnitPrice,
		&booking.Quantity,
		&booking.TotalPrice,
		&booking.Status,
		&booking.Payment,
		&booking.Customer.Name,
		&booking.Customer.Email,
		&booking.Version,
		&booking.CreatedAt,
		&booking.PaidAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepositoryImpl) Create(ctx context.Context, booking *model.Booking) (*model.Booking, error) {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	if booking.Reference == "" {
		booking.Reference = model.NewBookingReference()
	}

	var err error
	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		err = r.create(ctx, booking)
		if !isReferenceConflict(err) {
			break
		}
		booking.Reference = model.NewBookingReference()
	}
	if err != nil {
		return nil, err
	}
	return booking, nil
}

func (r *BookingRepositoryImpl) create(ctx context.Context, booking *model.Booking) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// 1. 鎖住活動列，同一活動的寫入依序進行
	var totalTickets int
	err = tx.QueryRow(ctx, `SELECT total_tickets FROM events WHERE id = $1 FOR UPDATE`, booking.EventID).Scan(&totalTickets)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrEventNotFound
		}
		return fmt.Errorf("failed to lock event: %w", err)
	}

	// 2. Redis 計數器之後的第二道防線
	if booking.Status.IsActive() {
		var booked int
		err = tx.QueryRow(ctx, `
			SELECT COALESCE(SUM(quantity), 0)
			FROM bookings
			WHERE event_id = $1 AND status != $2
		`, booking.EventID, model.BookingStatusCancelled).Scan(&booked)
		if err != nil {
			return fmt.Errorf("failed to sum booked quantity: %w", err)
		}
		if booked+booking.Quantity > totalTickets {
			return apperrors.ErrCapacityExceeded
		}
	}

	createdAt := booking.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	query := `
		INSERT INTO bookings (
			id, reference, event_id, ticket_type_id, ticket_type_name, unit_price,
			quantity, total_price, status, payment, customer_name, customer_email,
			created_at, paid_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $13)
		RETURNING ` + bookingColumns

	created, err := scanBooking(tx.QueryRow(ctx, query,
		booking.ID, booking.Reference, booking.EventID, booking.TicketTypeID, booking.TicketTypeName,
		booking.UnitPrice, booking.Quantity, booking.TotalPrice, booking.Status, booking.Payment,
		booking.Customer.Name, booking.Customer.Email, createdAt, booking.PaidAt,
	))
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	*booking = *created
	return nil
}

func isReferenceConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == uniqueViolation &&
		pgErr.ConstraintName == "bookings_reference_key"
}

func (r *BookingRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (r *BookingRepositoryImpl) FindByReference(ctx context.Context, reference string) (*model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE reference = $1`

	booking, err := scanBooking(r.pool.QueryRow(ctx, query, strings.ToUpper(reference)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (r *BookingRepositoryImpl) ListByEvent(ctx context.Context, eventID uuid.UUID, filter model.BookingFilter) ([]*model.Booking, error) {
	conds := []string{"event_id = $1"}
	args := []interface{}{eventID}
	argPos := 2

	if filter.Status != "" {
		conds = append(conds, fmt.Sprintf("status = $%d", argPos))
		args = append(args, filter.Status)
		argPos++
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		conds = append(conds, fmt.Sprintf(
			`(reference ILIKE $%[1]d ESCAPE '\' OR customer_name ILIKE $%[1]d ESCAPE '\' OR customer_email ILIKE $%[1]d ESCAPE '\')`,
			argPos))
		args = append(args, likePattern(search))
		argPos++
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM bookings
		WHERE %s
		ORDER BY created_at DESC
	`, bookingColumns, strings.Join(conds, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]*model.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingRepositoryImpl) UpdateStatusWithLock(
	ctx context.Context,
	id uuid.UUID,
	status model.BookingStatus,
) (*model.StatusChange, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// 1. 鎖住訂單
	current, err := scanBooking(tx.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to lock booking: %w", err)
	}

	// 2. 檢查狀態轉換
	if !current.Status.CanTransitionTo(status) {
		return nil, apperrors.ErrInvalidTransition
	}

	// 3. 更新狀態，version 做樂觀鎖
	query := `
		UPDATE bookings
		SET status = $1,
		    paid_at = CASE WHEN $1 = 'paid' THEN COALESCE(paid_at, $2) ELSE paid_at END,
		    updated_at = $2,
		    version = version + 1
		WHERE id = $3 AND version = $4
		RETURNING ` + bookingColumns

	updated, err := scanBooking(tx.QueryRow(ctx, query, status, time.Now().UTC(), id, current.Version))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInvalidTransition
		}
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &model.StatusChange{Previous: current.Status, Booking: updated}, nil
}
