package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/halit/campushub/internal/app/models"
	"github.com/halit/campushub/internal/pkg/apperrors"
	"github.com/halit/campushub/internal/pkg/dberrors"
)

// LostFoundRepository handles database operations for lost-and-found items
// and their claims.
type LostFoundRepository struct {
	db *pgxpool.Pool
}

// NewLostFoundRepository creates a new LostFoundRepository
func NewLostFoundRepository(db *pgxpool.Pool) *LostFoundRepository {
	return &LostFoundRepository{db: db}
}

// CreateItem creates a new lost-and-found item
func (r *LostFoundRepository) CreateItem(ctx context.Context, item *models.LostFoundItem) (int64, error) {
	query := `
		INSERT INTO lost_found_items (user_id, tag, location, description, image)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		item.UserID, item.Tag, item.Location, item.Description, item.Image,
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return item.ID, nil
}

// GetAllItems retrieves all items newest-first with poster identity resolved
func (r *LostFoundRepository) GetAllItems(ctx context.Context) ([]*models.LostFoundItem, error) {
	query := `
		SELECT i.id, i.user_id, i.tag, i.location, i.description, i.image, i.created_at,
			u.id, u.email, u.name, u.role_type, u.created_at
		FROM lost_found_items i
		JOIN users u ON u.id = i.user_id
		ORDER BY i.created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	items := []*models.LostFoundItem{}
	for rows.Next() {
		var item models.LostFoundItem
		var u models.User
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Tag, &item.Location, &item.Description,
			&item.Image, &item.CreatedAt,
			&u.ID, &u.Email, &u.Name, &u.RoleType, &u.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		item.Poster = &u
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, nil
}

// GetItemByID retrieves an item by ID
func (r *LostFoundRepository) GetItemByID(ctx context.Context, id int64) (*models.LostFoundItem, error) {
	query := `
		SELECT id, user_id, tag, location, description, image, created_at
		FROM lost_found_items
		WHERE id = $1
	`

	var item models.LostFoundItem
	err := r.db.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.UserID, &item.Tag, &item.Location,
		&item.Description, &item.Image, &item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrItemNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &item, nil
}

// DeleteItem hard-deletes an item; its claims cascade away with it
func (r *LostFoundRepository) DeleteItem(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM lost_found_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrItemNotFound
	}
	return nil
}

// CreateClaim appends a pending claim. The unique index on (item, claimant)
// makes the duplicate check atomic: a second claim from the same user is a
// conflict regardless of interleaving.
func (r *LostFoundRepository) CreateClaim(ctx context.Context, claim *models.Claim) (int64, error) {
	query := `
		INSERT INTO lost_found_claims (item_id, claimant_id, message, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		claim.ItemID, claim.ClaimantID, claim.Message, claim.Status,
	).Scan(&claim.ID, &claim.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "lost_found_claims_item_claimant_key") {
			return 0, apperrors.ErrDuplicateClaim
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrItemNotFound
		}
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return claim.ID, nil
}

// GetClaimsByItem retrieves all claims on an item with claimant identity
// resolved, oldest first.
func (r *LostFoundRepository) GetClaimsByItem(ctx context.Context, itemID int64) ([]*models.Claim, error) {
	query := `
		SELECT c.id, c.item_id, c.claimant_id, c.message, c.status, c.created_at,
			u.id, u.email, u.name, u.role_type, u.created_at
		FROM lost_found_claims c
		JOIN users u ON u.id = c.claimant_id
		WHERE c.item_id = $1
		ORDER BY c.created_at
	`

	rows, err := r.db.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	claims := []*models.Claim{}
	for rows.Next() {
		var c models.Claim
		var u models.User
		if err := rows.Scan(
			&c.ID, &c.ItemID, &c.ClaimantID, &c.Message, &c.Status, &c.CreatedAt,
			&u.ID, &u.Email, &u.Name, &u.RoleType, &u.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		c.Claimant = &u
		claims = append(claims, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return claims, nil
}

// GetClaim retrieves one claim on an item
func (r *LostFoundRepository) GetClaim(ctx context.Context, itemID, claimID int64) (*models.Claim, error) {
	query := `
		SELECT id, item_id, claimant_id, message, status, created_at
		FROM lost_found_claims
		WHERE id = $1 AND item_id = $2
	`

	var c models.Claim
	err := r.db.QueryRow(ctx, query, claimID, itemID).Scan(
		&c.ID, &c.ItemID, &c.ClaimantID, &c.Message, &c.Status, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClaimNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &c, nil
}

// UpdateClaimStatus sets a claim's status
func (r *LostFoundRepository) UpdateClaimStatus(ctx context.Context, claimID int64, status models.ClaimStatus) error {
	result, err := r.db.Exec(ctx,
		`UPDATE lost_found_claims SET status = $1 WHERE id = $2`, status, claimID)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrClaimNotFound
	}
	return nil
}
