package services

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/halit/campushub/internal/app/models"
	"github.com/halit/campushub/internal/app/models/dto"
	"github.com/halit/campushub/internal/pkg/apperrors"
	"github.com/halit/campushub/internal/pkg/email"
)

func newEventService(store *MockEventStore, notifStore *MockNotificationStore, mailer *MockMailer) EventService {
	notifSvc := NewNotificationService(notifStore, zerolog.Nop())
	return NewEventService(store, notifSvc, mailer, fakeStorage{}, zerolog.Nop())
}

func upcomingEvent(id int64) *models.Event {
	return &models.Event{
		ID:     id,
		Title:  "Hack Night",
		Date:   time.Now().Add(48 * time.Hour),
		Status: models.EventUpcoming,
		ClubID: 1,
	}
}

func TestSubscribe(t *testing.T) {
	store := new(MockEventStore)
	notifStore := new(MockNotificationStore)
	svc := newEventService(store, notifStore, new(MockMailer))

	store.On("GetByID", mock.Anything, int64(5)).Return(upcomingEvent(5), nil)
	store.On("Subscribe", mock.Anything, int64(5), int64(42)).Return(nil)
	notifStore.On("Create", mock.Anything, mock.MatchedBy(func(n *models.Notification) bool {
		return n.UserID == 42
	})).Return(nil)

	require.NoError(t, svc.Subscribe(context.Background(), 5, 42))
	store.AssertExpectations(t)
	notifStore.AssertExpectations(t)
}

func TestSubscribeTwiceConflicts(t *testing.T) {
	store := new(MockEventStore)
	svc := newEventService(store, new(MockNotificationStore), new(MockMailer))

	store.On("GetByID", mock.Anything, int64(5)).Return(upcomingEvent(5), nil)
	store.On("Subscribe", mock.Anything, int64(5), int64(42)).Return(apperrors.ErrAlreadySubscribed)

	err := svc.Subscribe(context.Background(), 5, 42)
	assert.ErrorIs(t, err, apperrors.ErrAlreadySubscribed)
}

func TestSubscribeSucceedsWhenNotificationFails(t *testing.T) {
	store := new(MockEventStore)
	notifStore := new(MockNotificationStore)
	svc := newEventService(store, notifStore, new(MockMailer))

	store.On("GetByID", mock.Anything, int64(5)).Return(upcomingEvent(5), nil)
	store.On("Subscribe", mock.Anything, int64(5), int64(42)).Return(nil)
	notifStore.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

	require.NoError(t, svc.Subscribe(context.Background(), 5, 42))
}

func TestUnsubscribeRoundTrip(t *testing.T) {
	store := new(MockEventStore)
	notifStore := new(MockNotificationStore)
	svc := newEventService(store, notifStore, new(MockMailer))

	store.On("GetByID", mock.Anything, int64(5)).Return(upcomingEvent(5), nil)
	store.On("Subscribe", mock.Anything, int64(5), int64(42)).Return(nil).Once()
	store.On("Unsubscribe", mock.Anything, int64(5), int64(42)).Return(nil).Twice()
	notifStore.On("Create", mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, svc.Subscribe(context.Background(), 5, 42))
	require.NoError(t, svc.Unsubscribe(context.Background(), 5, 42))
	// A second cancellation of the same registration still succeeds.
	require.NoError(t, svc.Unsubscribe(context.Background(), 5, 42))
	store.AssertExpectations(t)
}

func TestDeleteEventBeforeStart(t *testing.T) {
	store := new(MockEventStore)
	svc := newEventService(store, new(MockNotificationStore), new(MockMailer))

	store.On("GetByID", mock.Anything, int64(5)).Return(upcomingEvent(5), nil)
	store.On("Delete", mock.Anything, int64(5)).Return(nil)

	require.NoError(t, svc.DeleteEvent(context.Background(), 5))
	store.AssertExpectations(t)
}

func TestDeleteEventAfterStartRejected(t *testing.T) {
	store := new(MockEventStore)
	svc := newEventService(store, new(MockNotificationStore), new(MockMailer))

	started := upcomingEvent(5)
	started.Date = time.Now().Add(-time.Hour)
	store.On("GetByID", mock.Anything, int64(5)).Return(started, nil)

	err := svc.DeleteEvent(context.Background(), 5)
	assert.ErrorIs(t, err, apperrors.ErrEventStarted)
	store.AssertNotCalled(t, "Delete", mock.Anything, int64(5))
}

func TestUpdateEventFansOutToRegisteredUsers(t *testing.T) {
	store := new(MockEventStore)
	notifStore := new(MockNotificationStore)
	mailer := new(MockMailer)
	svc := newEventService(store, notifStore, mailer)

	registered := []*models.User{
		{ID: 1, Email: "a@campus.edu"},
		{ID: 2, Email: "b@campus.edu"},
	}

	newLocation := "Lab 204"
	store.On("Update", mock.Anything, int64(5), mock.MatchedBy(func(changes map[string]interface{}) bool {
		return changes["location"] == newLocation
	})).Return(nil)
	store.On("GetByID", mock.Anything, int64(5)).Return(upcomingEvent(5), nil)
	store.On("GetRegisteredUsers", mock.Anything, int64(5)).Return(registered, nil)
	notifStore.On("Create", mock.Anything, mock.Anything).Return(nil).Times(len(registered))
	mailer.On("SendBulk", mock.Anything, []string{"a@campus.edu", "b@campus.edu"}, mock.Anything, mock.Anything, mock.Anything).
		Return([]email.SendResult{{To: "a@campus.edu"}, {To: "b@campus.edu"}})

	event, err := svc.UpdateEvent(context.Background(), 5, &dto.UpdateEventRequest{Location: &newLocation}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(5), event.ID)
	notifStore.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestUpdateEventSucceedsWhenEveryEmailFails(t *testing.T) {
	store := new(MockEventStore)
	notifStore := new(MockNotificationStore)
	mailer := new(MockMailer)
	svc := newEventService(store, notifStore, mailer)

	registered := []*models.User{{ID: 1, Email: "a@campus.edu"}}
	title := "Hack Night v2"

	store.On("Update", mock.Anything, int64(5), mock.Anything).Return(nil)
	store.On("GetByID", mock.Anything, int64(5)).Return(upcomingEvent(5), nil)
	store.On("GetRegisteredUsers", mock.Anything, int64(5)).Return(registered, nil)
	notifStore.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))
	mailer.On("SendBulk", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]email.SendResult{{To: "a@campus.edu", Err: errors.New("smtp refused")}})

	_, err := svc.UpdateEvent(context.Background(), 5, &dto.UpdateEventRequest{Title: &title}, nil)
	require.NoError(t, err)
}

func TestUpdateEventNoRegisteredUsersSkipsEmail(t *testing.T) {
	store := new(MockEventStore)
	mailer := new(MockMailer)
	svc := newEventService(store, new(MockNotificationStore), mailer)

	title := "Renamed"
	store.On("Update", mock.Anything, int64(5), mock.Anything).Return(nil)
	store.On("GetByID", mock.Anything, int64(5)).Return(upcomingEvent(5), nil)
	store.On("GetRegisteredUsers", mock.Anything, int64(5)).Return([]*models.User{}, nil)

	_, err := svc.UpdateEvent(context.Background(), 5, &dto.UpdateEventRequest{Title: &title}, nil)
	require.NoError(t, err)
	mailer.AssertNotCalled(t, "SendBulk", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateEventReplacingImageReapsOldFile(t *testing.T) {
	store := new(MockEventStore)
	storage := new(MockStorage)
	svc := NewEventService(store, NewNotificationService(new(MockNotificationStore), zerolog.Nop()),
		new(MockMailer), storage, zerolog.Nop())

	oldPath := "/uploads/events/old.png"
	withImage := upcomingEvent(5)
	withImage.Image = &oldPath
	newPath := "/uploads/events/new.png"
	updated := upcomingEvent(5)
	updated.Image = &newPath
	header := &multipart.FileHeader{Filename: "new.png"}

	store.On("GetByID", mock.Anything, int64(5)).Return(withImage, nil).Once()
	storage.On("SaveFile", header, "events").Return(newPath, nil)
	store.On("Update", mock.Anything, int64(5), mock.MatchedBy(func(changes map[string]interface{}) bool {
		return changes["image"] == newPath
	})).Return(nil)
	store.On("GetByID", mock.Anything, int64(5)).Return(updated, nil).Once()
	storage.On("DeleteFile", oldPath).Return(nil).Once()
	store.On("GetRegisteredUsers", mock.Anything, int64(5)).Return([]*models.User{}, nil)

	event, err := svc.UpdateEvent(context.Background(), 5, &dto.UpdateEventRequest{}, header)
	require.NoError(t, err)
	assert.Equal(t, newPath, *event.Image)
	storage.AssertExpectations(t)
}

func TestUpdateEventSucceedsWhenImageReapFails(t *testing.T) {
	store := new(MockEventStore)
	storage := new(MockStorage)
	svc := NewEventService(store, NewNotificationService(new(MockNotificationStore), zerolog.Nop()),
		new(MockMailer), storage, zerolog.Nop())

	oldPath := "/uploads/events/old.png"
	withImage := upcomingEvent(5)
	withImage.Image = &oldPath
	header := &multipart.FileHeader{Filename: "new.png"}

	store.On("GetByID", mock.Anything, int64(5)).Return(withImage, nil)
	storage.On("SaveFile", header, "events").Return("/uploads/events/new.png", nil)
	store.On("Update", mock.Anything, int64(5), mock.Anything).Return(nil)
	storage.On("DeleteFile", oldPath).Return(errors.New("permission denied"))
	store.On("GetRegisteredUsers", mock.Anything, int64(5)).Return([]*models.User{}, nil)

	_, err := svc.UpdateEvent(context.Background(), 5, &dto.UpdateEventRequest{}, header)
	require.NoError(t, err)
}

func TestDeleteEventReapsImage(t *testing.T) {
	store := new(MockEventStore)
	storage := new(MockStorage)
	svc := NewEventService(store, NewNotificationService(new(MockNotificationStore), zerolog.Nop()),
		new(MockMailer), storage, zerolog.Nop())

	imagePath := "/uploads/events/poster.png"
	event := upcomingEvent(5)
	event.Image = &imagePath

	store.On("GetByID", mock.Anything, int64(5)).Return(event, nil)
	store.On("Delete", mock.Anything, int64(5)).Return(nil)
	storage.On("DeleteFile", imagePath).Return(nil).Once()

	require.NoError(t, svc.DeleteEvent(context.Background(), 5))
	storage.AssertExpectations(t)
}

func TestCreateEventClubMissing(t *testing.T) {
	store := new(MockEventStore)
	svc := newEventService(store, new(MockNotificationStore), new(MockMailer))

	store.On("Create", mock.Anything, mock.Anything).Return(int64(0), apperrors.ErrClubNotFound)

	_, err := svc.CreateEvent(context.Background(), &dto.CreateEventRequest{
		Title:  "Orphan Event",
		Date:   time.Now().Add(time.Hour),
		ClubID: 999,
	}, 1, nil)
	assert.ErrorIs(t, err, apperrors.ErrClubNotFound)
}
