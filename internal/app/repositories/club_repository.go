package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/halit/campushub/internal/app/models"
	"github.com/halit/campushub/internal/pkg/apperrors"
	"github.com/halit/campushub/internal/pkg/dberrors"
)

// ClubRepository handles database operations for clubs, their members and
// their interest lists.
type ClubRepository struct {
	db *pgxpool.Pool
}

// NewClubRepository creates a new ClubRepository
func NewClubRepository(db *pgxpool.Pool) *ClubRepository {
	return &ClubRepository{db: db}
}

// Create creates a new club. Duplicate names are a conflict.
func (r *ClubRepository) Create(ctx context.Context, club *models.Club) (int64, error) {
	query := `
		INSERT INTO clubs (name, description)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, club.Name, club.Description).Scan(&club.ID, &club.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "clubs_name_key") {
			return 0, apperrors.ErrClubAlreadyExists
		}
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return club.ID, nil
}

// GetAll retrieves all clubs with member identities resolved
func (r *ClubRepository) GetAll(ctx context.Context) ([]*models.Club, error) {
	query := `
		SELECT id, name, description, created_at
		FROM clubs
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	clubs := []*models.Club{}
	byID := map[int64]*models.Club{}
	for rows.Next() {
		var club models.Club
		if err := rows.Scan(&club.ID, &club.Name, &club.Description, &club.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		club.Members = []*models.ClubMember{}
		clubs = append(clubs, &club)
		byID[club.ID] = &club
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	members, err := r.getMembers(ctx, nil)
	if err != nil {
		return nil, err
	}
	for _, m := range members {
		if club, ok := byID[m.ClubID]; ok {
			club.Members = append(club.Members, m)
		}
	}

	return clubs, nil
}

// GetByID retrieves a club by ID with members, events and interested users
// resolved.
func (r *ClubRepository) GetByID(ctx context.Context, id int64) (*models.Club, error) {
	query := `
		SELECT id, name, description, created_at
		FROM clubs
		WHERE id = $1
	`

	var club models.Club
	err := r.db.QueryRow(ctx, query, id).Scan(&club.ID, &club.Name, &club.Description, &club.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClubNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	members, err := r.getMembers(ctx, &id)
	if err != nil {
		return nil, err
	}
	club.Members = members

	events, err := r.getEvents(ctx, id)
	if err != nil {
		return nil, err
	}
	club.Events = events

	interested, err := r.getInterestedUsers(ctx, id)
	if err != nil {
		return nil, err
	}
	club.InterestedUsers = interested

	return &club, nil
}

// AddMember adds a {user, role} pair to a club. Set semantics: adding an
// existing member again is a no-op.
func (r *ClubRepository) AddMember(ctx context.Context, clubID, userID int64, role models.ClubRole) error {
	query := `
		INSERT INTO club_members (club_id, user_id, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (club_id, user_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, clubID, userID, role)
	if err != nil {
		if dberrors.IsForeignKeyViolationOnConstraint(err, "club_members_club_id_fkey") {
			return apperrors.ErrClubNotFound
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error executing query: %w", err)
	}
	return nil
}

// RemoveMember removes a member by user id
func (r *ClubRepository) RemoveMember(ctx context.Context, clubID, userID int64) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM club_members WHERE club_id = $1 AND user_id = $2`, clubID, userID)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrMemberNotFound
	}
	return nil
}

// AddInterest registers a user's interest in a club. Idempotent set-add.
func (r *ClubRepository) AddInterest(ctx context.Context, clubID, userID int64) error {
	query := `
		INSERT INTO club_interests (club_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (club_id, user_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, clubID, userID)
	if err != nil {
		if dberrors.IsForeignKeyViolationOnConstraint(err, "club_interests_club_id_fkey") {
			return apperrors.ErrClubNotFound
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error executing query: %w", err)
	}
	return nil
}

// getMembers loads members with identities resolved. A nil clubID loads the
// members of every club. Members whose user row is gone are skipped.
func (r *ClubRepository) getMembers(ctx context.Context, clubID *int64) ([]*models.ClubMember, error) {
	queryBuilder := squirrel.Select(
		"cm.club_id", "cm.user_id", "cm.role",
		"u.id", "u.email", "u.name", "u.role_type", "u.created_at",
	).
		From("club_members cm").
		Join("users u ON u.id = cm.user_id").
		OrderBy("u.name").
		PlaceholderFormat(squirrel.Dollar)
	if clubID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"cm.club_id": *clubID})
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

	members := []*models.ClubMember{}
	for rows.Next() {
		var m models.ClubMember
		var u models.User
		if err := rows.Scan(&m.ClubID, &m.UserID, &m.Role,
			&u.ID, &u.Email, &u.Name, &u.RoleType, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		m.User = &u
		members = append(members, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return members, nil
}

func (r *ClubRepository) getEvents(ctx context.Context, clubID int64) ([]*models.Event, error) {
	query := `
		SELECT id, title, description, date, location, image, status, created_by, club_id, created_at
		FROM events
		WHERE club_id = $1
		ORDER BY date
	`

	rows, err := r.db.Query(ctx, query, clubID)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	events := []*models.Event{}
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Location,
			&e.Image, &e.Status, &e.CreatedBy, &e.ClubID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		events = append(events, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return events, nil
}

func (r *ClubRepository) getInterestedUsers(ctx context.Context, clubID int64) ([]*models.User, error) {
	query := `
		SELECT u.id, u.email, u.name, u.role_type, u.created_at
		FROM club_interests ci
		JOIN users u ON u.id = ci.user_id
		WHERE ci.club_id = $1
		ORDER BY u.name
	`

	rows, err := r.db.Query(ctx, query, clubID)
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
