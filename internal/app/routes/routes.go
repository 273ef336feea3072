package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/halit/campushub/internal/app/controllers"
	"github.com/halit/campushub/internal/app/models"
	"github.com/halit/campushub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	clubController *controllers.ClubController,
	eventController *controllers.EventController,
	lostFoundController *controllers.LostFoundController,
	feedbackController *controllers.FeedbackController,
	notificationController *controllers.NotificationController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.GET("/google", authController.GoogleLogin)
		auth.GET("/google/callback", authController.GoogleCallback)
		auth.POST("/logout", authController.Logout)
	}

	// --- Public read routes ---
	clubs := v1.Group("/clubs")
	{
		clubs.GET("", clubController.GetAllClubs)
		clubs.GET("/:id", clubController.GetClubByID)
	}

	events := v1.Group("/events")
	{
		events.GET("", eventController.GetAllEvents)
		events.GET("/:id", eventController.GetEventByID)
	}

	lostfound := v1.Group("/lostfound")
	{
		lostfound.GET("", lostFoundController.GetAllItems)
	}

	// Feedback intake accepts anonymous submissions; the author is attached
	// only when a valid credential accompanies the request.
	v1.POST("/feedback", authMiddleware.OptionalAuth(), feedbackController.Submit)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.Me)

		authenticated.POST("/clubs/:id/interest", clubController.MarkInterest)

		authenticated.POST("/events/:id/subscribe", eventController.Subscribe)
		authenticated.DELETE("/events/:id/subscribe", eventController.Unsubscribe)

		authenticated.POST("/lostfound", lostFoundController.CreateItem)
		authenticated.POST("/lostfound/:id/claims", lostFoundController.SubmitClaim)
		authenticated.GET("/lostfound/:id/claims", lostFoundController.ListClaims)
		authenticated.PUT("/lostfound/:id/claims/:claimId", lostFoundController.VerifyClaim)

		authenticated.GET("/feedback", feedbackController.List)
		authenticated.GET("/feedback/:id", feedbackController.Get)

		authenticated.GET("/notifications", notificationController.List)
		authenticated.PUT("/notifications/:id/read", notificationController.MarkRead)
		authenticated.PUT("/notifications/read-all", notificationController.MarkAllRead)

		// Admin-only routes
		admin := authenticated.Group("")
		admin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			admin.POST("/clubs", clubController.CreateClub)
			admin.POST("/clubs/:id/members", clubController.AddMember)
			admin.DELETE("/clubs/:id/members/:userId", clubController.RemoveMember)

			admin.POST("/events", eventController.CreateEvent)
			admin.PUT("/events/:id", eventController.UpdateEvent)
			admin.DELETE("/events/:id", eventController.DeleteEvent)

			admin.PUT("/feedback/:id/respond", feedbackController.Respond)
		}
	}
}
