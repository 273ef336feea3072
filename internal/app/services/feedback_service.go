package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/halit/campushub/internal/app/models"
	"github.com/halit/campushub/internal/app/models/dto"
	"github.com/halit/campushub/internal/pkg/apperrors"
)

// feedbackStore is the persistence surface the feedback service needs.
type feedbackStore interface {
	Create(ctx context.Context, fb *models.Feedback) (int64, error)
	GetAll(ctx context.Context, userID *int64) ([]*models.Feedback, error)
	GetByID(ctx context.Context, id int64) (*models.Feedback, error)
	Respond(ctx context.Context, id int64, response *string, status *models.FeedbackStatus) error
}

// FeedbackService defines the interface for feedback and grievance intake
type FeedbackService interface {
	// Submit records a submission. authorID is nil for anonymous senders.
	Submit(ctx context.Context, req *dto.CreateFeedbackRequest, authorID *int64) (*models.Feedback, error)
	// List returns the caller's own submissions, or everything for admins.
	List(ctx context.Context, callerID int64, isAdmin bool) ([]*models.Feedback, error)
	Get(ctx context.Context, id, callerID int64, isAdmin bool) (*models.Feedback, error)
	Respond(ctx context.Context, id int64, req *dto.RespondFeedbackRequest) (*models.Feedback, error)
}

// feedbackServiceImpl implements FeedbackService
type feedbackServiceImpl struct {
	feedbackRepo feedbackStore
	logger       zerolog.Logger
}

// NewFeedbackService creates a new FeedbackService
func NewFeedbackService(feedbackRepo feedbackStore, logger zerolog.Logger) FeedbackService {
	return &feedbackServiceImpl{
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

// Submit stores a feedback or grievance entry. The type defaults to plain
// feedback when omitted.
func (s *feedbackServiceImpl) Submit(ctx context.Context, req *dto.CreateFeedbackRequest, authorID *int64) (*models.Feedback, error) {
	fbType := models.TypeFeedback
	if req.Type != "" {
		fbType = models.FeedbackType(req.Type)
	}

	fb := &models.Feedback{
		UserID:  authorID,
		Name:    req.Name,
		Email:   req.Email,
		Type:    fbType,
		Subject: req.Subject,
		Message: req.Message,
		Status:  models.FeedbackOpen,
	}

	id, err := s.feedbackRepo.Create(ctx, fb)
	if err != nil {
		return nil, err
	}
	fb.ID = id

	s.logger.Info().
		Int64("feedbackID", id).
		Str("type", string(fb.Type)).
		Bool("anonymous", authorID == nil).
		Msg("Feedback submitted")
	return fb, nil
}

// List returns submissions visible to the caller, newest first.
func (s *feedbackServiceImpl) List(ctx context.Context, callerID int64, isAdmin bool) ([]*models.Feedback, error) {
	if isAdmin {
		return s.feedbackRepo.GetAll(ctx, nil)
	}
	return s.feedbackRepo.GetAll(ctx, &callerID)
}

// Get returns a single submission. Non-admin callers may only read their own.
func (s *feedbackServiceImpl) Get(ctx context.Context, id, callerID int64, isAdmin bool) (*models.Feedback, error) {
	fb, err := s.feedbackRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && (fb.UserID == nil || *fb.UserID != callerID) {
		return nil, apperrors.NewForbiddenError("you can only view your own submissions")
	}
	return fb, nil
}

// Respond sets the admin response and/or advances the intake status.
func (s *feedbackServiceImpl) Respond(ctx context.Context, id int64, req *dto.RespondFeedbackRequest) (*models.Feedback, error) {
	var response *string
	if req.Response != "" {
		response = &req.Response
	}
	var status *models.FeedbackStatus
	if req.Status != "" {
		st := models.FeedbackStatus(req.Status)
		status = &st
	}
	if response == nil && status == nil {
		return nil, apperrors.NewValidationError("nothing to update")
	}

	if err := s.feedbackRepo.Respond(ctx, id, response, status); err != nil {
		return nil, err
	}
	return s.feedbackRepo.GetByID(ctx, id)
}
