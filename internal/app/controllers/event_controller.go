package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/halit/campushub/internal/app/models/dto"
	"github.com/halit/campushub/internal/app/services"
	"github.com/halit/campushub/internal/middleware"
	"github.com/halit/campushub/internal/pkg/helpers"
)

// EventController handles event related operations
type EventController struct {
	eventService services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

// CreateEvent handles creating a new event under a club
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body: "+err.Error()))
		return
	}

	creatorID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	image, _ := ctx.FormFile("image")

	event, err := c.eventService.CreateEvent(ctx.Request.Context(), &req, creatorID, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, event)
}

// GetAllEvents handles listing events, optionally scoped to one club
func (c *EventController) GetAllEvents(ctx *gin.Context) {
	var clubID *int64
	if clubIDStr := ctx.Query("clubId"); clubIDStr != "" {
		id, err := strconv.ParseInt(clubIDStr, 10, 64)
		if err != nil || id <= 0 {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid club ID"))
			return
		}
		clubID = &id
	}

	events, err := c.eventService.GetAllEvents(ctx.Request.Context(), clubID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, events)
}

// GetEventByID handles retrieving one event with its relations
func (c *EventController) GetEventByID(ctx *gin.Context) {
	id, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid event ID"))
		return
	}

	event, err := c.eventService.GetEventByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, event)
}

// UpdateEvent handles a partial event update
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	id, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid event ID"))
		return
	}

	var req dto.UpdateEventRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body: "+err.Error()))
		return
	}

	image, _ := ctx.FormFile("image")

	event, err := c.eventService.UpdateEvent(ctx.Request.Context(), id, &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, event)
}

// DeleteEvent handles deleting an event that has not started yet
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	id, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid event ID"))
		return
	}

	if err := c.eventService.DeleteEvent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Event deleted"})
}

// Subscribe handles registering the caller for an event
func (c *EventController) Subscribe(ctx *gin.Context) {
	eventID, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid event ID"))
		return
	}
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	if err := c.eventService.Subscribe(ctx.Request.Context(), eventID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Registered for event"})
}

// Unsubscribe handles cancelling the caller's event registration
func (c *EventController) Unsubscribe(ctx *gin.Context) {
	eventID, ok := helpers.ParseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid event ID"))
		return
	}
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	if err := c.eventService.Unsubscribe(ctx.Request.Context(), eventID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Registration cancelled"})
}
