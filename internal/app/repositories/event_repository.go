package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/halit/campushub/internal/app/models"
	"github.com/halit/campushub/internal/pkg/apperrors"
	"github.com/halit/campushub/internal/pkg/dberrors"
)

// EventRepository handles database operations for events and their
// registration lists.
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

// Create creates a new event. The club link is the club_id foreign key, so
// the club's event list needs no separate write.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) (int64, error) {
	query := `
		INSERT INTO events (title, description, date, location, image, status, created_by, club_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		event.Title, event.Description, event.Date, event.Location,
		event.Image, event.Status, event.CreatedBy, event.ClubID,
	).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrClubNotFound
		}
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return event.ID, nil
}

// GetAll retrieves events, optionally filtered by club, with the owning club
// and creator resolved.
func (r *EventRepository) GetAll(ctx context.Context, clubID *int64) ([]*models.Event, error) {
	queryBuilder := squirrel.Select(
		"e.id", "e.title", "e.description", "e.date", "e.location", "e.image", "e.status",
		"e.created_by", "e.club_id", "e.created_at",
		"c.id", "c.name", "c.description", "c.created_at",
		"u.id", "u.email", "u.name", "u.role_type", "u.created_at",
	).
		From("events e").
		Join("clubs c ON c.id = e.club_id").
		LeftJoin("users u ON u.id = e.created_by").
		OrderBy("e.date").
		PlaceholderFormat(squirrel.Dollar)
	if clubID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"e.club_id": *clubID})
	}

	sql, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	events := []*models.Event{}
	for rows.Next() {
		e, err := scanEventWithRelations(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return events, nil
}

// GetByID retrieves an event with club, creator and registered users resolved
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	query := `
		SELECT e.id, e.title, e.description, e.date, e.location, e.image, e.status,
			e.created_by, e.club_id, e.created_at,
			c.id, c.name, c.description, c.created_at,
			u.id, u.email, u.name, u.role_type, u.created_at
		FROM events e
		JOIN clubs c ON c.id = e.club_id
		LEFT JOIN users u ON u.id = e.created_by
		WHERE e.id = $1
	`

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("error executing query: %w", err)
		}
		return nil, apperrors.ErrEventNotFound
	}

	event, err := scanEventWithRelations(rows)
	if err != nil {
		return nil, err
	}
	rows.Close()

	registered, err := r.GetRegisteredUsers(ctx, id)
	if err != nil {
		return nil, err
	}
	event.RegisteredUsers = registered

	return event, nil
}

// Update applies a partial field replace and returns nothing; callers re-fetch
// to drive notification fan-out.
func (r *EventRepository) Update(ctx context.Context, id int64, changes map[string]interface{}) error {
	if len(changes) == 0 {
		return nil
	}

	sql, args, err := buildEventUpdateQuery(id, changes)
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

// buildEventUpdateQuery assembles the partial update statement. Only known
// columns make it into the SET list, in a fixed order.
func buildEventUpdateQuery(id int64, changes map[string]interface{}) (string, []interface{}, error) {
	queryBuilder := squirrel.Update("events").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)
	for _, col := range []string{"title", "description", "date", "location", "image", "status"} {
		if v, ok := changes[col]; ok {
			queryBuilder = queryBuilder.Set(col, v)
		}
	}
	return queryBuilder.ToSql()
}

// Delete removes an event row
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

// Subscribe atomically appends the user to the event's registered list.
// The conditional insert closes the double-subscribe race: a duplicate is
// reported as a conflict without a prior read.
func (r *EventRepository) Subscribe(ctx context.Context, eventID, userID int64) error {
	query := `
		INSERT INTO event_registrations (event_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (event_id, user_id) DO NOTHING
	`

	result, err := r.db.Exec(ctx, query, eventID, userID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrEventNotFound
		}
		return fmt.Errorf("error executing query: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrAlreadySubscribed
	}
	return nil
}

// Unsubscribe removes the user from the registered list. Removing an absent
// entry is a no-op.
func (r *EventRepository) Unsubscribe(ctx context.Context, eventID, userID int64) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM event_registrations WHERE event_id = $1 AND user_id = $2`, eventID, userID)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	return nil
}

// GetRegisteredUsers retrieves the identities registered on an event
func (r *EventRepository) GetRegisteredUsers(ctx context.Context, eventID int64) ([]*models.User, error) {
	query := `
		SELECT u.id, u.email, u.name, u.role_type, u.created_at
		FROM event_registrations er
		JOIN users u ON u.id = er.user_id
		WHERE er.event_id = $1
		ORDER BY er.created_at
	`

	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.RoleType, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		users = append(users, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return users, nil
}

func scanEventWithRelations(rows pgx.Rows) (*models.Event, error) {
	var e models.Event
	var c models.Club
	var uID *int64
	var uEmail, uName *string
	var uRole *models.RoleType
	var uCreatedAt *time.Time

	// Creator columns come from a LEFT JOIN and may all be NULL
	err := rows.Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.Location, &e.Image, &e.Status,
		&e.CreatedBy, &e.ClubID, &e.CreatedAt,
		&c.ID, &c.Name, &c.Description, &c.CreatedAt,
		&uID, &uEmail, &uName, &uRole, &uCreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("error scanning row: %w", err)
	}

	e.Club = &c
	if uID != nil {
		e.Creator = &models.User{ID: *uID, Email: *uEmail, Name: *uName, RoleType: *uRole, CreatedAt: *uCreatedAt}
	}

	return &e, nil
}
