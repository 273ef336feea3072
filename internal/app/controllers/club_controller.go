package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/halit/campushub/internal/app/models/dto"
	"github.com/halit/campushub/internal/app/services"
	"github.com/halit/campushub/internal/middleware"
	"github.com/halit/campushub/internal/pkg/helpers"
)

// ClubController handles club related operations
type ClubController struct {
	clubService services.ClubService
}

// NewClubController creates a new ClubController
func NewClubController(clubService services.ClubService) *ClubController {
	return &ClubController{
		clubService: clubService,
	}
}

// CreateClub handles creating a new club
func (c *ClubController) CreateClub(ctx *gin.Context) {
	var req dto.CreateClubRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body: "+err.Error()))
		return
	}

	club, err := c.clubService.CreateClub(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, club)
}

// GetAllClubs handles listing every club
func (c *ClubController) GetAllClubs(ctx *gin.Context) {
	clubs, err := c.clubService.GetAllClubs(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, clubs)
}

// GetClubByID handles retrieving one club with its relations
func (c *ClubController) GetClubByID(ctx *gin.Context) {
	id, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid club ID"))
		return
	}

	club, err := c.clubService.GetClubByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, club)
}

// AddMember handles adding a user to a club roster
func (c *ClubController) AddMember(ctx *gin.Context) {
	id, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid club ID"))
		return
	}

	var req dto.AddMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body: "+err.Error()))
		return
	}

	if err := c.clubService.AddMember(ctx.Request.Context(), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Member added"})
}

// RemoveMember handles removing a user from a club roster
func (c *ClubController) RemoveMember(ctx *gin.Context) {
	clubID, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid club ID"))
		return
	}
	userID, ok := helpers.ParseIDParam(ctx, "userId")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid user ID"))
		return
	}

	if err := c.clubService.RemoveMember(ctx.Request.Context(), clubID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Member removed"})
}

// MarkInterest handles recording the caller's interest in a club
func (c *ClubController) MarkInterest(ctx *gin.Context) {
	clubID, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid club ID"))
		return
	}
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	if err := c.clubService.MarkInterest(ctx.Request.Context(), clubID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Interest recorded"})
}
