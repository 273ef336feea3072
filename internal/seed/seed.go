package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/halit/campushub/internal/app/models"
	appRepos "github.com/halit/campushub/internal/app/repositories"
	"github.com/halit/campushub/internal/pkg/apperrors"
)

// CreateDefaultData seeds a demo admin and sample clubs with events when the
// database is empty. Seeding failures never block startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	clubRepo := appRepos.NewClubRepository(dbPool)
	eventRepo := appRepos.NewEventRepository(dbPool)

	count, err := userRepo.Count(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking user count for seeding")
		return err
	}
	if count > 0 {
		lgr.Debug().Msg("Database already has users, skipping seed")
		return nil
	}

	lgr.Info().Msg("Empty database detected, creating default data...")
	var finalErr error

	admin, err := userRepo.UpsertByEmail(ctx, "admin@campus.edu", "Campus Admin", appModels.RoleAdmin)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin")
		return errors.Join(finalErr, err)
	}
	lgr.Info().Str("email", admin.Email).Msg("Default admin created")

	sampleClubs := []struct {
		name        string
		description string
		eventTitle  string
	}{
		{"Robotics Club", "Build and race robots with fellow tinkerers.", "Line Follower Workshop"},
		{"Drama Society", "Stage productions, improv nights and script readings.", "Auditions: Autumn Play"},
		{"Coding Circle", "Weekly problem solving and hack nights.", "Intro to Open Source"},
	}

	for _, sc := range sampleClubs {
		club := &appModels.Club{Name: sc.name, Description: sc.description}
		clubID, err := clubRepo.Create(ctx, club)
		if err != nil {
			if !errors.Is(err, apperrors.ErrClubAlreadyExists) {
				lgr.Error().Err(err).Str("club", sc.name).Msg("Error creating sample club")
				finalErr = errors.Join(finalErr, err)
			}
			continue
		}

		event := &appModels.Event{
			Title:       sc.eventTitle,
			Description: "Kick-off event for " + sc.name + ".",
			Date:        time.Now().AddDate(0, 0, 14),
			Location:    "Main Auditorium",
			Status:      appModels.EventUpcoming,
			CreatedBy:   &admin.ID,
			ClubID:      clubID,
		}
		if _, err := eventRepo.Create(ctx, event); err != nil {
			lgr.Error().Err(err).Str("event", sc.eventTitle).Msg("Error creating sample event")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data created")
	}
	return finalErr
}
