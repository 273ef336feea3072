package dberrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/halit/campushub/internal/pkg/dberrors"
)

func TestIsUniqueViolation(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: "clubs_name_key"}

	assert.True(t, dberrors.IsUniqueViolation(uniqueErr))
	assert.True(t, dberrors.IsUniqueViolation(fmt.Errorf("insert failed: %w", uniqueErr)))
	assert.False(t, dberrors.IsUniqueViolation(errors.New("connection refused")))
}

func TestIsDuplicateConstraintError(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: "clubs_name_key"}

	assert.True(t, dberrors.IsDuplicateConstraintError(uniqueErr, "clubs_name_key"))
	assert.False(t, dberrors.IsDuplicateConstraintError(uniqueErr, "lost_found_claims_item_claimant_key"))
}

func TestForeignKeyViolationIsNotADuplicate(t *testing.T) {
	// A missing referenced row raises 23503, never 23505, so the unique
	// helpers must not match it even when the constraint name lines up.
	fkErr := &pgconn.PgError{Code: "23503", ConstraintName: "club_members_club_id_fkey"}

	assert.False(t, dberrors.IsDuplicateConstraintError(fkErr, "club_members_club_id_fkey"))
	assert.False(t, dberrors.IsUniqueViolation(fkErr))
	assert.True(t, dberrors.IsForeignKeyViolation(fkErr))
}

func TestIsForeignKeyViolationOnConstraint(t *testing.T) {
	clubFK := &pgconn.PgError{Code: "23503", ConstraintName: "club_members_club_id_fkey"}
	userFK := &pgconn.PgError{Code: "23503", ConstraintName: "club_members_user_id_fkey"}

	assert.True(t, dberrors.IsForeignKeyViolationOnConstraint(clubFK, "club_members_club_id_fkey"))
	assert.False(t, dberrors.IsForeignKeyViolationOnConstraint(userFK, "club_members_club_id_fkey"))
	assert.True(t, dberrors.IsForeignKeyViolationOnConstraint(
		fmt.Errorf("insert failed: %w", clubFK), "club_members_club_id_fkey"))

	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: "club_members_club_id_fkey"}
	assert.False(t, dberrors.IsForeignKeyViolationOnConstraint(uniqueErr, "club_members_club_id_fkey"))
}
