package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/halit/campushub/internal/app/models"
	"github.com/halit/campushub/internal/app/models/dto"
)

// clubStore is the persistence surface the club service needs.
type clubStore interface {
	Create(ctx context.Context, club *models.Club) (int64, error)
	GetAll(ctx context.Context) ([]*models.Club, error)
	GetByID(ctx context.Context, id int64) (*models.Club, error)
	AddMember(ctx context.Context, clubID, userID int64, role models.ClubRole) error
	RemoveMember(ctx context.Context, clubID, userID int64) error
	AddInterest(ctx context.Context, clubID, userID int64) error
}

// ClubService defines the interface for club operations
type ClubService interface {
	CreateClub(ctx context.Context, req *dto.CreateClubRequest) (*models.Club, error)
	GetAllClubs(ctx context.Context) ([]*models.Club, error)
	GetClubByID(ctx context.Context, id int64) (*models.Club, error)
	AddMember(ctx context.Context, clubID int64, req *dto.AddMemberRequest) error
	RemoveMember(ctx context.Context, clubID, userID int64) error
	MarkInterest(ctx context.Context, clubID, userID int64) error
}

// clubServiceImpl implements ClubService
type clubServiceImpl struct {
	clubRepo clubStore
	logger   zerolog.Logger
}

// NewClubService creates a new ClubService
func NewClubService(clubRepo clubStore, logger zerolog.Logger) ClubService {
	return &clubServiceImpl{
		clubRepo: clubRepo,
		logger:   logger,
	}
}

// CreateClub creates a new club with an empty roster.
func (s *clubServiceImpl) CreateClub(ctx context.Context, req *dto.CreateClubRequest) (*models.Club, error) {
	club := &models.Club{
		Name:        req.Name,
		Description: req.Description,
	}

	id, err := s.clubRepo.Create(ctx, club)
	if err != nil {
		return nil, err
	}
	club.ID = id

	s.logger.Info().Int64("clubID", id).Str("name", club.Name).Msg("Club created")
	return club, nil
}

// GetAllClubs lists every club with its member roster resolved.
func (s *clubServiceImpl) GetAllClubs(ctx context.Context) ([]*models.Club, error) {
	return s.clubRepo.GetAll(ctx)
}

// GetClubByID returns one club with members, events and interested users.
func (s *clubServiceImpl) GetClubByID(ctx context.Context, id int64) (*models.Club, error) {
	return s.clubRepo.GetByID(ctx, id)
}

// AddMember adds a user to the club roster with the given role. Adding a user
// who is already a member leaves the roster unchanged.
func (s *clubServiceImpl) AddMember(ctx context.Context, clubID int64, req *dto.AddMemberRequest) error {
	if err := s.clubRepo.AddMember(ctx, clubID, req.UserID, models.ClubRole(req.Role)); err != nil {
		return err
	}
	s.logger.Info().
		Int64("clubID", clubID).
		Int64("userID", req.UserID).
		Str("role", req.Role).
		Msg("Club member added")
	return nil
}

// RemoveMember removes a user from the club roster.
func (s *clubServiceImpl) RemoveMember(ctx context.Context, clubID, userID int64) error {
	return s.clubRepo.RemoveMember(ctx, clubID, userID)
}

// MarkInterest records that a user is interested in the club. Repeated calls
// are idempotent.
func (s *clubServiceImpl) MarkInterest(ctx context.Context, clubID, userID int64) error {
	return s.clubRepo.AddInterest(ctx, clubID, userID)
}
