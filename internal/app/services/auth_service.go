package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/halit/campushub/internal/app/models"
	"github.com/halit/campushub/internal/pkg/apperrors"
	"github.com/halit/campushub/internal/pkg/auth"
	"github.com/halit/campushub/internal/pkg/oauth"
)

// identityProvider abstracts the OAuth authorization-code flow.
type identityProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth.Profile, error)
}

// userStore is the persistence surface the auth service needs.
type userStore interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
	UpsertByEmail(ctx context.Context, email, name string, role models.RoleType) (*models.User, error)
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	// LoginURL returns the provider consent page URL for the given state.
	LoginURL(state string) string
	// HandleCallback exchanges the authorization code, enforces the allowed
	// email domain, upserts the user and issues a session token.
	HandleCallback(ctx context.Context, code string) (string, *models.User, error)
	CurrentUser(ctx context.Context, userID int64) (*models.User, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	provider      identityProvider
	userRepo      userStore
	jwtService    *auth.JWTService
	allowedDomain string
	logger        zerolog.Logger
}

// NewAuthService creates a new AuthService. allowedDomain restricts sign-in
// to one email domain when non-empty.
func NewAuthService(
	provider identityProvider,
	userRepo userStore,
	jwtService *auth.JWTService,
	allowedDomain string,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		provider:      provider,
		userRepo:      userRepo,
		jwtService:    jwtService,
		allowedDomain: allowedDomain,
		logger:        logger,
	}
}

// LoginURL returns the provider consent page URL.
func (s *authServiceImpl) LoginURL(state string) string {
	return s.provider.AuthCodeURL(state)
}

// HandleCallback completes the sign-in. New users are created with the
// student role; returning users keep their stored role and get their display
// name refreshed from the provider.
func (s *authServiceImpl) HandleCallback(ctx context.Context, code string) (string, *models.User, error) {
	profile, err := s.provider.Exchange(ctx, code)
	if err != nil {
		s.logger.Warn().Err(err).Msg("OAuth code exchange failed")
		return "", nil, apperrors.ErrUnauthenticated
	}

	email := strings.ToLower(profile.Email)
	if s.allowedDomain != "" && !strings.HasSuffix(email, "@"+s.allowedDomain) {
		s.logger.Warn().Str("email", email).Msg("Sign-in rejected for disallowed email domain")
		return "", nil, apperrors.NewForbiddenError("email domain not allowed")
	}

	user, err := s.userRepo.UpsertByEmail(ctx, email, profile.Name, models.RoleStudent)
	if err != nil {
		return "", nil, err
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Str("email", user.Email).Msg("User signed in")
	return token, user, nil
}

// CurrentUser resolves the authenticated user's profile.
func (s *authServiceImpl) CurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}
