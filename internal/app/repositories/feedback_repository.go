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
)

// FeedbackRepository handles database operations for feedback and grievances
type FeedbackRepository struct {
	db *pgxpool.Pool
}

// NewFeedbackRepository creates a new FeedbackRepository
func NewFeedbackRepository(db *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Create creates a new feedback entry
func (r *FeedbackRepository) Create(ctx context.Context, fb *models.Feedback) (int64, error) {
	query := `
		INSERT INTO feedback (user_id, name, email, type, subject, message, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		fb.UserID, fb.Name, fb.Email, fb.Type, fb.Subject, fb.Message, fb.Status,
	).Scan(&fb.ID, &fb.CreatedAt, &fb.UpdatedAt)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return fb.ID, nil
}

// GetAll retrieves feedback newest-first. A non-nil userID scopes the listing
// to that author's submissions.
func (r *FeedbackRepository) GetAll(ctx context.Context, userID *int64) ([]*models.Feedback, error) {
	queryBuilder := squirrel.Select(
		"f.id", "f.user_id", "f.name", "f.email", "f.type", "f.subject", "f.message",
		"f.status", "f.response", "f.created_at", "f.updated_at",
		"u.id", "u.email", "u.name", "u.role_type", "u.created_at",
	).
		From("feedback f").
		LeftJoin("users u ON u.id = f.user_id").
		OrderBy("f.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)
	if userID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"f.user_id": *userID})
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

	items := []*models.Feedback{}
	for rows.Next() {
		fb, err := scanFeedbackWithAuthor(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, fb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, nil
}

// GetByID retrieves one feedback entry with author resolved
func (r *FeedbackRepository) GetByID(ctx context.Context, id int64) (*models.Feedback, error) {
	query := `
		SELECT f.id, f.user_id, f.name, f.email, f.type, f.subject, f.message,
			f.status, f.response, f.created_at, f.updated_at,
			u.id, u.email, u.name, u.role_type, u.created_at
		FROM feedback f
		LEFT JOIN users u ON u.id = f.user_id
		WHERE f.id = $1
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
		return nil, apperrors.ErrResourceNotFound
	}

	return scanFeedbackWithAuthor(rows)
}

// Respond sets the admin response and/or status
func (r *FeedbackRepository) Respond(ctx context.Context, id int64, response *string, status *models.FeedbackStatus) error {
	query := `
		UPDATE feedback
		SET response = COALESCE($1, response),
			status = COALESCE($2, status),
			updated_at = NOW()
		WHERE id = $3
	`

	result, err := r.db.Exec(ctx, query, response, status, id)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

func scanFeedbackWithAuthor(rows pgx.Rows) (*models.Feedback, error) {
	var fb models.Feedback
	var uID *int64
	var uEmail, uName *string
	var uRole *models.RoleType
	var uCreatedAt *time.Time

	err := rows.Scan(
		&fb.ID, &fb.UserID, &fb.Name, &fb.Email, &fb.Type, &fb.Subject, &fb.Message,
		&fb.Status, &fb.Response, &fb.CreatedAt, &fb.UpdatedAt,
		&uID, &uEmail, &uName, &uRole, &uCreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("error scanning row: %w", err)
	}

	if uID != nil {
		fb.Author = &models.User{ID: *uID, Email: *uEmail, Name: *uName, RoleType: *uRole, CreatedAt: *uCreatedAt}
	}

	return &fb, nil
}
