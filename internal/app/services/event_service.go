package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/rs/zerolog"
	"github.com/halit/campushub/internal/app/models"
	"github.com/halit/campushub/internal/app/models/dto"
	"github.com/halit/campushub/internal/pkg/apperrors"
	"github.com/halit/campushub/internal/pkg/email"
	"github.com/halit/campushub/internal/pkg/filestorage"
)

// eventStore is the persistence surface the event service needs.
type eventStore interface {
	Create(ctx context.Context, event *models.Event) (int64, error)
	GetAll(ctx context.Context, clubID *int64) ([]*models.Event, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	Update(ctx context.Context, id int64, changes map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
	Subscribe(ctx context.Context, eventID, userID int64) error
	Unsubscribe(ctx context.Context, eventID, userID int64) error
	GetRegisteredUsers(ctx context.Context, eventID int64) ([]*models.User, error)
}

// EventService defines the interface for event operations
type EventService interface {
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest, creatorID int64, image *multipart.FileHeader) (*models.Event, error)
	GetAllEvents(ctx context.Context, clubID *int64) ([]*models.Event, error)
	GetEventByID(ctx context.Context, id int64) (*models.Event, error)
	UpdateEvent(ctx context.Context, id int64, req *dto.UpdateEventRequest, image *multipart.FileHeader) (*models.Event, error)
	DeleteEvent(ctx context.Context, id int64) error
	Subscribe(ctx context.Context, eventID, userID int64) error
	Unsubscribe(ctx context.Context, eventID, userID int64) error
}

// eventServiceImpl implements EventService
type eventServiceImpl struct {
	eventRepo     eventStore
	notifications NotificationService
	mailer        email.Sender
	fileStorage   filestorage.Storage
	logger        zerolog.Logger
	now           func() time.Time
}

// NewEventService creates a new EventService
func NewEventService(
	eventRepo eventStore,
	notifications NotificationService,
	mailer email.Sender,
	fileStorage filestorage.Storage,
	logger zerolog.Logger,
) EventService {
	return &eventServiceImpl{
		eventRepo:     eventRepo,
		notifications: notifications,
		mailer:        mailer,
		fileStorage:   fileStorage,
		logger:        logger,
		now:           time.Now,
	}
}

// CreateEvent creates a new event under a club. The club must exist.
func (s *eventServiceImpl) CreateEvent(ctx context.Context, req *dto.CreateEventRequest, creatorID int64, image *multipart.FileHeader) (*models.Event, error) {
	event := &models.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		Status:      models.EventUpcoming,
		CreatedBy:   &creatorID,
		ClubID:      req.ClubID,
	}

	if image != nil {
		path, err := s.fileStorage.SaveFile(image, "events")
		if err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("failed to save event image: %v", err))
		}
		event.Image = &path
	}

	id, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		return nil, err
	}
	event.ID = id

	s.logger.Info().
		Int64("eventID", id).
		Int64("clubID", event.ClubID).
		Str("title", event.Title).
		Msg("Event created")
	return event, nil
}

// GetAllEvents lists events, optionally filtered to one club.
func (s *eventServiceImpl) GetAllEvents(ctx context.Context, clubID *int64) ([]*models.Event, error) {
	return s.eventRepo.GetAll(ctx, clubID)
}

// GetEventByID returns one event with its club, creator and registered users.
func (s *eventServiceImpl) GetEventByID(ctx context.Context, id int64) (*models.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

// UpdateEvent applies a partial update, then notifies every registered user of
// the change. Notification and email failures never fail the update itself.
func (s *eventServiceImpl) UpdateEvent(ctx context.Context, id int64, req *dto.UpdateEventRequest, image *multipart.FileHeader) (*models.Event, error) {
	changes := map[string]interface{}{}
	if req.Title != nil {
		changes["title"] = *req.Title
	}
	if req.Description != nil {
		changes["description"] = *req.Description
	}
	if req.Date != nil {
		changes["date"] = *req.Date
	}
	if req.Location != nil {
		changes["location"] = *req.Location
	}
	if req.Status != nil {
		changes["status"] = *req.Status
	}
	var replacedImage *string
	if image != nil {
		current, err := s.eventRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		replacedImage = current.Image

		path, err := s.fileStorage.SaveFile(image, "events")
		if err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("failed to save event image: %v", err))
		}
		changes["image"] = path
	}

	if len(changes) > 0 {
		if err := s.eventRepo.Update(ctx, id, changes); err != nil {
			return nil, err
		}
	}

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if replacedImage != nil {
		if err := s.fileStorage.DeleteFile(*replacedImage); err != nil {
			s.logger.Warn().Err(err).Str("path", *replacedImage).Msg("Failed to remove replaced event image")
		}
	}

	s.fanOutUpdate(ctx, event)
	return event, nil
}

// fanOutUpdate notifies every registered user about a change to the event and
// sends each of them a best-effort email.
func (s *eventServiceImpl) fanOutUpdate(ctx context.Context, event *models.Event) {
	users, err := s.eventRepo.GetRegisteredUsers(ctx, event.ID)
	if err != nil {
		s.logger.Error().Err(err).Int64("eventID", event.ID).Msg("Failed to load registered users for update fan-out")
		return
	}
	if len(users) == 0 {
		return
	}

	link := fmt.Sprintf("/events/%d", event.ID)
	title := "Event updated"
	message := fmt.Sprintf("%q has been updated. Check the latest details.", event.Title)
	recipients := make([]string, 0, len(users))
	for _, u := range users {
		s.notifications.Notify(ctx, u.ID, title, message, &link)
		recipients = append(recipients, u.Email)
	}

	subject := fmt.Sprintf("Update: %s", event.Title)
	text := fmt.Sprintf("The event %q on %s at %s has been updated.",
		event.Title, event.Date.Format("Jan 2, 2006 15:04"), event.Location)
	results := s.mailer.SendBulk(ctx, recipients, subject, text, "")
	for _, res := range results {
		if res.Err != nil {
			s.logger.Warn().Err(res.Err).Str("recipient", res.To).Msg("Failed to send event update email")
		}
	}
}

// DeleteEvent removes an event that has not started yet. Once the event date
// has passed, deletion is rejected.
func (s *eventServiceImpl) DeleteEvent(ctx context.Context, id int64) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !s.now().Before(event.Date) {
		return apperrors.ErrEventStarted
	}
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return err
	}

	if event.Image != nil {
		if err := s.fileStorage.DeleteFile(*event.Image); err != nil {
			s.logger.Warn().Err(err).Str("path", *event.Image).Msg("Failed to remove deleted event image")
		}
	}
	return nil
}

// Subscribe registers the user for the event and notifies them.
func (s *eventServiceImpl) Subscribe(ctx context.Context, eventID, userID int64) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if err := s.eventRepo.Subscribe(ctx, eventID, userID); err != nil {
		return err
	}

	link := fmt.Sprintf("/events/%d", eventID)
	s.notifications.Notify(ctx, userID, "Registered for event",
		fmt.Sprintf("You are registered for %q on %s.", event.Title, event.Date.Format("Jan 2, 2006 15:04")), &link)
	return nil
}

// Unsubscribe removes the user's registration and notifies them. Removing a
// registration that does not exist still succeeds.
func (s *eventServiceImpl) Unsubscribe(ctx context.Context, eventID, userID int64) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if err := s.eventRepo.Unsubscribe(ctx, eventID, userID); err != nil {
		return err
	}

	s.notifications.Notify(ctx, userID, "Registration cancelled",
		fmt.Sprintf("You are no longer registered for %q.", event.Title), nil)
	return nil
}
