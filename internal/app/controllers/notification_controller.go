package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/halit/campushub/internal/app/models/dto"
	"github.com/halit/campushub/internal/app/services"
	"github.com/halit/campushub/internal/middleware"
	"github.com/halit/campushub/internal/pkg/helpers"
)

// NotificationController handles in-app notification reads
type NotificationController struct {
	notificationService services.NotificationService
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService services.NotificationService) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
	}
}

// List handles listing the caller's notifications, newest first
func (c *NotificationController) List(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	limit := helpers.ParseLimitQuery(ctx, services.NotificationListLimit, services.NotificationListLimit)
	notifications, err := c.notificationService.ListForUser(ctx.Request.Context(), userID, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, notifications)
}

// MarkRead handles marking one of the caller's notifications as read
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	id, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid notification ID"))
		return
	}
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	if err := c.notificationService.MarkRead(ctx.Request.Context(), userID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Notification marked read"})
}

// MarkAllRead handles marking all of the caller's notifications as read
func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	if err := c.notificationService.MarkAllRead(ctx.Request.Context(), userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "All notifications marked read"})
}
