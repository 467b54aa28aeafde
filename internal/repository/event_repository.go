package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-gin-event-booking/internal/model"
	apperrors "go-gin-event-booking/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository interface {
	// Create 在同一個 transaction 內寫入活動與票種
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	List(ctx context.Context, filter model.EventFilter) ([]*model.Event, error)
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
	// SumActiveQuantity 未取消訂單的總張數
	SumActiveQuantity(ctx context.Context, eventID uuid.UUID) (int, error)
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

const eventColumns = `id, title, description, category, event_date, start_time, end_time,
	location, organizer, image_url, base_price, total_tickets, created_at`

func scanEvent(row pgx.Row) (*model.Event, error) {
	var event model.Event
	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Category,
		&event.Date,
		&event.StartTime,
		&event.EndTime,
		&event.Location,
		&event.Organizer,
		&event.ImageURL,
		&event.BasePrice,
		&event.TotalTickets,
		&event.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	event.TicketTypes = []model.TicketType{}
	return &event, nil
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO events (id, title, description, category, event_date, start_time, end_time,
			location, organizer, image_url, base_price, total_tickets)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at
	`
	err = tx.QueryRow(ctx, query,
		event.ID, event.Title, event.Description, event.Category, event.Date,
		event.StartTime, event.EndTime, event.Location, event.Organizer, event.ImageURL,
		event.BasePrice, event.TotalTickets,
	).Scan(&event.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	batch := &pgx.Batch{}
	for i := range event.TicketTypes {
		tt := &event.TicketTypes[i]
		if !tt.IsValid() {
			return nil, apperrors.ErrInvalidInput
		}
		tt.EventID = event.ID
		tt.Position = i
		batch.Queue(`
			INSERT INTO ticket_types (event_id, id, name, price, description, position)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, tt.EventID, tt.ID, tt.Name, tt.Price, tt.Description, tt.Position)
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return nil, fmt.Errorf("failed to create ticket types: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) List(ctx context.Context, filter model.EventFilter) ([]*model.Event, error) {
	conds := []string{}
	args := []interface{}{}
	argPos := 1

	if filter.HasCategory() {
		conds = append(conds, fmt.Sprintf("category = $%d", argPos))
		args = append(args, strings.TrimSpace(filter.Category))
		argPos++
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		conds = append(conds, fmt.Sprintf(
			`(title ILIKE $%[1]d ESCAPE '\' OR description ILIKE $%[1]d ESCAPE '\' OR location ILIKE $%[1]d ESCAPE '\')`,
			argPos))
		args = append(args, likePattern(search))
		argPos++
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		%s
		ORDER BY event_date, title
	`, eventColumns, where)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	byID := make(map[uuid.UUID]*model.Event)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
		byID[event.ID] = event
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(events) == 0 {
		return events, nil
	}

	ids := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID.String())
	}
	ticketTypes, err := r.listTicketTypes(ctx, `WHERE event_id = ANY($1::uuid[])`, ids)
	if err != nil {
		return nil, err
	}
	for _, tt := range ticketTypes {
		if event, ok := byID[tt.EventID]; ok {
			event.TicketTypes = append(event.TicketTypes, tt)
		}
	}

	return events, nil
}

func (r *EventRepositoryImpl) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM events ORDER BY event_date`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
}

func (r *EventRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE id = $1
	`, eventColumns)

	event, err := scanEvent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	ticketTypes, err := r.listTicketTypes(ctx, `WHERE event_id = $1`, id)
	if err != nil {
		return nil, err
	}
	event.TicketTypes = ticketTypes

	return event, nil
}

func (r *EventRepositoryImpl) SumActiveQuantity(ctx context.Context, eventID uuid.UUID) (int, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0)
		FROM bookings
		WHERE event_id = $1
		  AND status != $2
	`

	var total int
	err := r.pool.QueryRow(ctx, query, eventID, model.BookingStatusCancelled).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *EventRepositoryImpl) listTicketTypes(ctx context.Context, where string, args ...interface{}) ([]model.TicketType, error) {
	query := `
		SELECT event_id, id, name, price, description, position
		FROM ticket_types
	` + where + `
		ORDER BY event_id, position
	`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ticketTypes := make([]model.TicketType, 0)
	for rows.Next() {
		var tt model.TicketType
		if err := rows.Scan(&tt.EventID, &tt.ID, &tt.Name, &tt.Price, &tt.Description, &tt.Position); err != nil {
			return nil, err
		}
		ticketTypes = append(ticketTypes, tt)
	}
	return ticketTypes, rows.Err()
}

// likePattern 轉義 LIKE 特殊字元後包成 %...%
func likePattern(s string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
	return "%" + escaped + "%"
}
