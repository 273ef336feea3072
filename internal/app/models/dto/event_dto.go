package dto

import "time"

// CreateEventRequest is the multipart payload for creating an event. An image
// file may accompany it under the "image" form field.
type CreateEventRequest struct {
	Title       string    `form:"title" binding:"required"`
	Description string    `form:"description"`
	Date        time.Time `form:"date" time_format:"2006-01-02T15:04:05Z07:00" binding:"required"`
	Location    string    `form:"location"`
	ClubID      int64     `form:"clubId" binding:"required"`
}

// UpdateEventRequest is a partial field replace; nil fields are left untouched
type UpdateEventRequest struct {
	Title       *string    `form:"title"`
	Description *string    `form:"description"`
	Date        *time.Time `form:"date" time_format:"2006-01-02T15:04:05Z07:00"`
	Location    *string    `form:"location"`
	Status      *string    `form:"status" binding:"omitempty,oneof=Upcoming Ongoing Completed"`
}
