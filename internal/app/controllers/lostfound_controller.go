package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/halit/campushub/internal/app/models/dto"
	"github.com/halit/campushub/internal/app/services"
	"github.com/halit/campushub/internal/middleware"
	"github.com/halit/campushub/internal/pkg/helpers"
)

// LostFoundController handles lost-and-found related operations
type LostFoundController struct {
	lostFoundService services.LostFoundService
}

// NewLostFoundController creates a new LostFoundController
func NewLostFoundController(lostFoundService services.LostFoundService) *LostFoundController {
	return &LostFoundController{
		lostFoundService: lostFoundService,
	}
}

// CreateItem handles posting a found item
func (c *LostFoundController) CreateItem(ctx *gin.Context) {
	var req dto.CreateItemRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body: "+err.Error()))
		return
	}

	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	image, _ := ctx.FormFile("image")

	item, err := c.lostFoundService.CreateItem(ctx.Request.Context(), &req, userID, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, item)
}

// GetAllItems handles listing items newest first
func (c *LostFoundController) GetAllItems(ctx *gin.Context) {
	items, err := c.lostFoundService.GetAllItems(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// SubmitClaim handles claiming an item
func (c *LostFoundController) SubmitClaim(ctx *gin.Context) {
	itemID, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid item ID"))
		return
	}

	var req dto.SubmitClaimRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body: "+err.Error()))
		return
	}

	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	claim, err := c.lostFoundService.SubmitClaim(ctx.Request.Context(), itemID, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, claim)
}

// ListClaims handles listing an item's claims for its poster
func (c *LostFoundController) ListClaims(ctx *gin.Context) {
	itemID, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid item ID"))
		return
	}
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	claims, err := c.lostFoundService.ListClaims(ctx.Request.Context(), itemID, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, claims)
}

// VerifyClaim handles the poster's decision on a claim
func (c *LostFoundController) VerifyClaim(ctx *gin.Context) {
	itemID, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid item ID"))
		return
	}
	claimID, ok := helpers.ParseIDParam(ctx, "claimId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid claim ID"))
		return
	}

	var req dto.VerifyClaimRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body: "+err.Error()))
		return
	}

	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	if err := c.lostFoundService.VerifyClaim(ctx.Request.Context(), itemID, claimID, userID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Claim " + req.Decision})
}
