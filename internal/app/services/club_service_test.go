package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/halit/campushub/internal/app/models"
	"github.com/halit/campushub/internal/app/models/dto"
	"github.com/halit/campushub/internal/pkg/apperrors"
)

func newClubService(store *MockClubStore) ClubService {
	return NewClubService(store, zerolog.Nop())
}

func TestCreateClub(t *testing.T) {
	store := new(MockClubStore)
	svc := newClubService(store)

	store.On("Create", mock.Anything, mock.AnythingOfType("*models.Club")).Return(int64(7), nil)

	club, err := svc.CreateClub(context.Background(), &dto.CreateClubRequest{
		Name:        "Chess Club",
		Description: "Weekly blitz nights",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), club.ID)
	assert.Equal(t, "Chess Club", club.Name)
	store.AssertExpectations(t)
}

func TestCreateClubDuplicateName(t *testing.T) {
	store := new(MockClubStore)
	svc := newClubService(store)

	store.On("Create", mock.Anything, mock.AnythingOfType("*models.Club")).
		Return(int64(0), apperrors.ErrClubAlreadyExists)

	_, err := svc.CreateClub(context.Background(), &dto.CreateClubRequest{Name: "Chess Club"})
	assert.ErrorIs(t, err, apperrors.ErrClubAlreadyExists)
}

func TestAddMember(t *testing.T) {
	store := new(MockClubStore)
	svc := newClubService(store)

	store.On("AddMember", mock.Anything, int64(1), int64(42), models.ClubRoleTreasurer).Return(nil)

	err := svc.AddMember(context.Background(), 1, &dto.AddMemberRequest{
		UserID: 42,
		Role:   "Treasurer",
	})
	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestRemoveMemberNotFound(t *testing.T) {
	store := new(MockClubStore)
	svc := newClubService(store)

	store.On("RemoveMember", mock.Anything, int64(1), int64(42)).Return(apperrors.ErrMemberNotFound)

	err := svc.RemoveMember(context.Background(), 1, 42)
	assert.ErrorIs(t, err, apperrors.ErrMemberNotFound)
}

func TestMarkInterestIdempotent(t *testing.T) {
	store := new(MockClubStore)
	svc := newClubService(store)

	store.On("AddInterest", mock.Anything, int64(1), int64(42)).Return(nil).Twice()

	require.NoError(t, svc.MarkInterest(context.Background(), 1, 42))
	require.NoError(t, svc.MarkInterest(context.Background(), 1, 42))
	store.AssertExpectations(t)
}

// A club created with an event under it shows that event when fetched back.
func TestClubEventLinkRoundTrip(t *testing.T) {
	clubStore := new(MockClubStore)
	eventStore := new(MockEventStore)
	clubSvc := newClubService(clubStore)
	notifSvc := NewNotificationService(new(MockNotificationStore), zerolog.Nop())
	mailer := new(MockMailer)
	eventSvc := NewEventService(eventStore, notifSvc, mailer, fakeStorage{}, zerolog.Nop())

	clubStore.On("Create", mock.Anything, mock.AnythingOfType("*models.Club")).Return(int64(3), nil)
	club, err := clubSvc.CreateClub(context.Background(), &dto.CreateClubRequest{Name: "Film Society"})
	require.NoError(t, err)

	eventStore.On("Create", mock.Anything, mock.MatchedBy(func(e *models.Event) bool {
		return e.ClubID == club.ID
	})).Return(int64(11), nil)
	event, err := eventSvc.CreateEvent(context.Background(), &dto.CreateEventRequest{
		Title:  "Screening Night",
		ClubID: club.ID,
	}, 1, nil)
	require.NoError(t, err)

	clubStore.On("GetByID", mock.Anything, club.ID).Return(&models.Club{
		ID:     club.ID,
		Name:   club.Name,
		Events: []*models.Event{{ID: event.ID, Title: event.Title, ClubID: club.ID}},
	}, nil)

	fetched, err := clubSvc.GetClubByID(context.Background(), club.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Events, 1)
	assert.Equal(t, event.ID, fetched.Events[0].ID)
}
