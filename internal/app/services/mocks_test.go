package services

import (
	"context"
	"mime/multipart"

	"github.com/stretchr/testify/mock"
	"github.com/halit/campushub/internal/app/models"
	"github.com/halit/campushub/internal/pkg/email"
	"github.com/halit/campushub/internal/pkg/oauth"
)

// MockClubStore is a mock implementation of clubStore
type MockClubStore struct {
	mock.Mock
}

func (m *MockClubStore) Create(ctx context.Context, club *models.Club) (int64, error) {
	args := m.Called(ctx, club)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClubStore) GetAll(ctx context.Context) ([]*models.Club, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Club), args.Error(1)
}

func (m *MockClubStore) GetByID(ctx context.Context, id int64) (*models.Club, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Club), args.Error(1)
}

func (m *MockClubStore) AddMember(ctx context.Context, clubID, userID int64, role models.ClubRole) error {
	args := m.Called(ctx, clubID, userID, role)
	return args.Error(0)
}

func (m *MockClubStore) RemoveMember(ctx context.Context, clubID, userID int64) error {
	args := m.Called(ctx, clubID, userID)
	return args.Error(0)
}

func (m *MockClubStore) AddInterest(ctx context.Context, clubID, userID int64) error {
	args := m.Called(ctx, clubID, userID)
	return args.Error(0)
}

// MockEventStore is a mock implementation of eventStore
type MockEventStore struct {
	mock.Mock
}

func (m *MockEventStore) Create(ctx context.Context, event *models.Event) (int64, error) {
	args := m.Called(ctx, event)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEventStore) GetAll(ctx context.Context, clubID *int64) ([]*models.Event, error) {
	args := m.Called(ctx, clubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Event), args.Error(1)
}

func (m *MockEventStore) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventStore) Update(ctx context.Context, id int64, changes map[string]interface{}) error {
	args := m.Called(ctx, id, changes)
	return args.Error(0)
}

func (m *MockEventStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEventStore) Subscribe(ctx context.Context, eventID, userID int64) error {
	args := m.Called(ctx, eventID, userID)
	return args.Error(0)
}

func (m *MockEventStore) Unsubscribe(ctx context.Context, eventID, userID int64) error {
	args := m.Called(ctx, eventID, userID)
	return args.Error(0)
}

func (m *MockEventStore) GetRegisteredUsers(ctx context.Context, eventID int64) ([]*models.User, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

// MockLostFoundStore is a mock implementation of lostFoundStore
type MockLostFoundStore struct {
	mock.Mock
}

func (m *MockLostFoundStore) CreateItem(ctx context.Context, item *models.LostFoundItem) (int64, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLostFoundStore) GetAllItems(ctx context.Context) ([]*models.LostFoundItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.LostFoundItem), args.Error(1)
}

func (m *MockLostFoundStore) GetItemByID(ctx context.Context, id int64) (*models.LostFoundItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LostFoundItem), args.Error(1)
}

func (m *MockLostFoundStore) DeleteItem(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLostFoundStore) CreateClaim(ctx context.Context, claim *models.Claim) (int64, error) {
	args := m.Called(ctx, claim)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLostFoundStore) GetClaimsByItem(ctx context.Context, itemID int64) ([]*models.Claim, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Claim), args.Error(1)
}

func (m *MockLostFoundStore) GetClaim(ctx context.Context, itemID, claimID int64) (*models.Claim, error) {
	args := m.Called(ctx, itemID, claimID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Claim), args.Error(1)
}

func (m *MockLostFoundStore) UpdateClaimStatus(ctx context.Context, claimID int64, status models.ClaimStatus) error {
	args := m.Called(ctx, claimID, status)
	return args.Error(0)
}

// MockFeedbackStore is a mock implementation of feedbackStore
type MockFeedbackStore struct {
	mock.Mock
}

func (m *MockFeedbackStore) Create(ctx context.Context, fb *models.Feedback) (int64, error) {
	args := m.Called(ctx, fb)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFeedbackStore) GetAll(ctx context.Context, userID *int64) ([]*models.Feedback, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Feedback), args.Error(1)
}

func (m *MockFeedbackStore) GetByID(ctx context.Context, id int64) (*models.Feedback, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Feedback), args.Error(1)
}

func (m *MockFeedbackStore) Respond(ctx context.Context, id int64, response *string, status *models.FeedbackStatus) error {
	args := m.Called(ctx, id, response, status)
	return args.Error(0)
}

// MockNotificationStore is a mock implementation of notificationStore
type MockNotificationStore struct {
	mock.Mock
}

func (m *MockNotificationStore) Create(ctx context.Context, n *models.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationStore) ListByUser(ctx context.Context, userID int64, limit int) ([]models.Notification, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockNotificationStore) MarkRead(ctx context.Context, userID, notificationID int64) error {
	args := m.Called(ctx, userID, notificationID)
	return args.Error(0)
}

func (m *MockNotificationStore) MarkAllRead(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockUserStore is a mock implementation of userStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) FindByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) UpsertByEmail(ctx context.Context, emailAddr, name string, role models.RoleType) (*models.User, error) {
	args := m.Called(ctx, emailAddr, name, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockProvider is a mock implementation of identityProvider
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) AuthCodeURL(state string) string {
	args := m.Called(state)
	return args.String(0)
}

func (m *MockProvider) Exchange(ctx context.Context, code string) (*oauth.Profile, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth.Profile), args.Error(1)
}

// MockMailer is a mock implementation of email.Sender
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendEmail(ctx context.Context, to, subject, text, html string) error {
	args := m.Called(ctx, to, subject, text, html)
	return args.Error(0)
}

func (m *MockMailer) SendBulk(ctx context.Context, recipients []string, subject, text, html string) []email.SendResult {
	args := m.Called(ctx, recipients, subject, text, html)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]email.SendResult)
}

// MockStorage is a mock implementation of filestorage.Storage
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	args := m.Called(fileHeader, subPath)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) DeleteFile(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

// fakeStorage is a no-op filestorage.Storage for tests that never upload
type fakeStorage struct{}

func (fakeStorage) SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	return "/uploads/" + subPath + "/test", nil
}

func (fakeStorage) DeleteFile(path string) error { return nil }
