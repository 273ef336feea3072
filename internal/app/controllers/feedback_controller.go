package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/halit/campushub/internal/app/models/dto"
	"github.com/halit/campushub/internal/app/services"
	"github.com/halit/campushub/internal/middleware"
	"github.com/halit/campushub/internal/pkg/helpers"
)

// FeedbackController handles feedback and grievance intake
type FeedbackController struct {
	feedbackService services.FeedbackService
}

// NewFeedbackController creates a new FeedbackController
func NewFeedbackController(feedbackService services.FeedbackService) *FeedbackController {
	return &FeedbackController{
		feedbackService: feedbackService,
	}
}

// Submit handles a feedback or grievance submission. Anonymous senders are
// accepted; the author is attached only when the request is authenticated.
func (c *FeedbackController) Submit(ctx *gin.Context) {
	var req dto.CreateFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body: "+err.Error()))
		return
	}

	var authorID *int64
	if userID, ok := middleware.CurrentUserID(ctx); ok {
		authorID = &userID
	}

	fb, err := c.feedbackService.Submit(ctx.Request.Context(), &req, authorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, fb)
}

// List handles listing submissions visible to the caller
func (c *FeedbackController) List(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	items, err := c.feedbackService.List(ctx.Request.Context(), userID, middleware.IsAdmin(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// Get handles retrieving a single submission
func (c *FeedbackController) Get(ctx *gin.Context) {
	id, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid feedback ID"))
		return
	}
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	fb, err := c.feedbackService.Get(ctx.Request.Context(), id, userID, middleware.IsAdmin(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, fb)
}

// Respond handles the admin response to a submission
func (c *FeedbackController) Respond(ctx *gin.Context) {
	id, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid feedback ID"))
		return
	}

	var req dto.RespondFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body: "+err.Error()))
		return
	}

	fb, err := c.feedbackService.Respond(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, fb)
}
