package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	ClubRepository         *ClubRepository
	EventRepository        *EventRepository
	LostFoundRepository    *LostFoundRepository
	FeedbackRepository     *FeedbackRepository
	NotificationRepository *NotificationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		ClubRepository:         NewClubRepository(db),
		EventRepository:        NewEventRepository(db),
		LostFoundRepository:    NewLostFoundRepository(db),
		FeedbackRepository:     NewFeedbackRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
