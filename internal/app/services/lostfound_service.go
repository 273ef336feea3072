package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/rs/zerolog"
	"github.com/halit/campushub/internal/app/models"
	"github.com/halit/campushub/internal/app/models/dto"
	"github.com/halit/campushub/internal/pkg/apperrors"
	"github.com/halit/campushub/internal/pkg/filestorage"
)

// lostFoundStore is the persistence surface the lost-and-found service needs.
type lostFoundStore interface {
	CreateItem(ctx context.Context, item *models.LostFoundItem) (int64, error)
	GetAllItems(ctx context.Context) ([]*models.LostFoundItem, error)
	GetItemByID(ctx context.Context, id int64) (*models.LostFoundItem, error)
	DeleteItem(ctx context.Context, id int64) error
	CreateClaim(ctx context.Context, claim *models.Claim) (int64, error)
	GetClaimsByItem(ctx context.Context, itemID int64) ([]*models.Claim, error)
	GetClaim(ctx context.Context, itemID, claimID int64) (*models.Claim, error)
	UpdateClaimStatus(ctx context.Context, claimID int64, status models.ClaimStatus) error
}

// LostFoundService defines the interface for lost-and-found operations
type LostFoundService interface {
	CreateItem(ctx context.Context, req *dto.CreateItemRequest, posterID int64, image *multipart.FileHeader) (*models.LostFoundItem, error)
	GetAllItems(ctx context.Context) ([]*models.LostFoundItem, error)
	SubmitClaim(ctx context.Context, itemID, claimantID int64, req *dto.SubmitClaimRequest) (*models.Claim, error)
	ListClaims(ctx context.Context, itemID, requesterID int64) ([]*models.Claim, error)
	VerifyClaim(ctx context.Context, itemID, claimID, requesterID int64, req *dto.VerifyClaimRequest) error
}

// lostFoundServiceImpl implements LostFoundService
type lostFoundServiceImpl struct {
	lostFoundRepo lostFoundStore
	notifications NotificationService
	fileStorage   filestorage.Storage
	logger        zerolog.Logger
}

// NewLostFoundService creates a new LostFoundService
func NewLostFoundService(
	lostFoundRepo lostFoundStore,
	notifications NotificationService,
	fileStorage filestorage.Storage,
	logger zerolog.Logger,
) LostFoundService {
	return &lostFoundServiceImpl{
		lostFoundRepo: lostFoundRepo,
		notifications: notifications,
		fileStorage:   fileStorage,
		logger:        logger,
	}
}

// CreateItem posts a found item on behalf of the poster.
func (s *lostFoundServiceImpl) CreateItem(ctx context.Context, req *dto.CreateItemRequest, posterID int64, image *multipart.FileHeader) (*models.LostFoundItem, error) {
	item := &models.LostFoundItem{
		UserID:      posterID,
		Tag:         req.Tag,
		Location:    req.Location,
		Description: req.Description,
	}

	if image != nil {
		path, err := s.fileStorage.SaveFile(image, "lostfound")
		if err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("failed to save item image: %v", err))
		}
		item.Image = &path
	}

	id, err := s.lostFoundRepo.CreateItem(ctx, item)
	if err != nil {
		return nil, err
	}
	item.ID = id

	s.logger.Info().Int64("itemID", id).Str("tag", item.Tag).Msg("Lost-and-found item posted")
	return item, nil
}

// GetAllItems lists items newest first with poster identities resolved.
func (s *lostFoundServiceImpl) GetAllItems(ctx context.Context) ([]*models.LostFoundItem, error) {
	return s.lostFoundRepo.GetAllItems(ctx)
}

// SubmitClaim records a claim on an item. The poster cannot claim their own
// item, and each user gets at most one claim per item. The claim is written
// before the poster is notified; a failed notification never undoes the claim.
func (s *lostFoundServiceImpl) SubmitClaim(ctx context.Context, itemID, claimantID int64, req *dto.SubmitClaimRequest) (*models.Claim, error) {
	item, err := s.lostFoundRepo.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.UserID == claimantID {
		return nil, apperrors.ErrSelfClaim
	}

	claim := &models.Claim{
		ItemID:     itemID,
		ClaimantID: claimantID,
		Message:    req.Message,
		Status:     models.ClaimPending,
	}
	id, err := s.lostFoundRepo.CreateClaim(ctx, claim)
	if err != nil {
		return nil, err
	}
	claim.ID = id

	link := fmt.Sprintf("/lostfound/%d/claims", itemID)
	s.notifications.Notify(ctx, item.UserID, "New claim on your item",
		fmt.Sprintf("Someone claimed your item %q. Review the claim.", item.Tag), &link)
	return claim, nil
}

// ListClaims returns an item's claims to the item's poster only.
func (s *lostFoundServiceImpl) ListClaims(ctx context.Context, itemID, requesterID int64) ([]*models.Claim, error) {
	item, err := s.lostFoundRepo.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.UserID != requesterID {
		return nil, apperrors.NewForbiddenError("only the item poster can view claims")
	}
	return s.lostFoundRepo.GetClaimsByItem(ctx, itemID)
}

// VerifyClaim applies the poster's decision to a claim and notifies the
// claimant. Approving a claim resolves the item and deletes it; the item's
// other claims disappear with it.
func (s *lostFoundServiceImpl) VerifyClaim(ctx context.Context, itemID, claimID, requesterID int64, req *dto.VerifyClaimRequest) error {
	item, err := s.lostFoundRepo.GetItemByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item.UserID != requesterID {
		return apperrors.NewForbiddenError("only the item poster can verify claims")
	}

	claim, err := s.lostFoundRepo.GetClaim(ctx, itemID, claimID)
	if err != nil {
		return err
	}

	status := models.ClaimStatus(req.Decision)
	if err := s.lostFoundRepo.UpdateClaimStatus(ctx, claimID, status); err != nil {
		return err
	}

	switch status {
	case models.ClaimApproved:
		s.notifications.Notify(ctx, claim.ClaimantID, "Claim approved",
			fmt.Sprintf("Your claim on %q was approved. Arrange pickup with the poster.", item.Tag), nil)
		if err := s.lostFoundRepo.DeleteItem(ctx, itemID); err != nil {
			return err
		}
		s.logger.Info().Int64("itemID", itemID).Int64("claimID", claimID).Msg("Item resolved and removed")
	case models.ClaimRejected:
		s.notifications.Notify(ctx, claim.ClaimantID, "Claim rejected",
			fmt.Sprintf("Your claim on %q was rejected.", item.Tag), nil)
	}
	return nil
}
