package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/halit/campushub/internal/app/models"
	"github.com/halit/campushub/internal/pkg/apperrors"
)

func testService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    exp,
		TokenIssuer: "test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testService(time.Hour)
	user := &models.User{ID: 42, Email: "jamie@campus.edu", RoleType: models.RoleFaculty}

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)

	claims, err := svc.ValidateAndExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "jamie@campus.edu", claims.Email)
	assert.Equal(t, "faculty", claims.Role)
	assert.Equal(t, "test", claims.Issuer)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := testService(-time.Minute)

	token, err := svc.GenerateToken(&models.User{ID: 1, Email: "a@campus.edu", RoleType: models.RoleStudent})
	require.NoError(t, err)

	_, err = svc.ValidateAndExtractClaims(token)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := testService(time.Hour).GenerateToken(&models.User{ID: 1, Email: "a@campus.edu"})
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "different-secret", TokenExp: time.Hour})
	_, err = other.ValidateAndExtractClaims(token)
	assert.Error(t, err)
}

func TestValidateEmptyToken(t *testing.T) {
	_, err := testService(time.Hour).ValidateAndExtractClaims("")
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	// Raw tokens without the scheme are accepted as-is.
	token, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, apperrors.ErrInvalidFormat)
}
