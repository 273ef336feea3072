package controllers

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/halit/campushub/internal/app/models/dto"
	"github.com/halit/campushub/internal/app/services"
	"github.com/halit/campushub/internal/middleware"
)

const stateCookieName = "oauth_state"

// AuthController handles the Google sign-in flow and session endpoints
type AuthController struct {
	authService services.AuthService
	frontendURL string
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, frontendURL string) *AuthController {
	return &AuthController{
		authService: authService,
		frontendURL: frontendURL,
	}
}

// GoogleLogin redirects the browser to the provider consent page. The
// anti-forgery state is stored in a short-lived cookie and checked on return.
func (c *AuthController) GoogleLogin(ctx *gin.Context) {
	state := uuid.NewString()
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(stateCookieName, state, 600, "/", "", false, true)
	ctx.Redirect(http.StatusTemporaryRedirect, c.authService.LoginURL(state))
}

// GoogleCallback completes the sign-in: it validates the state, exchanges the
// code and hands the session token back to the frontend.
func (c *AuthController) GoogleCallback(ctx *gin.Context) {
	expectedState, err := ctx.Cookie(stateCookieName)
	if err != nil || expectedState == "" || ctx.Query("state") != expectedState {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid OAuth state"))
		return
	}
	ctx.SetCookie(stateCookieName, "", -1, "/", "", false, true)

	code := ctx.Query("code")
	if code == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Missing authorization code"))
		return
	}

	token, user, err := c.authService.HandleCallback(ctx.Request.Context(), code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie("token", token, 86400, "/", "", false, true)

	if c.frontendURL != "" {
		ctx.Redirect(http.StatusTemporaryRedirect,
			fmt.Sprintf("%s?token=%s", c.frontendURL, url.QueryEscape(token)))
		return
	}
	ctx.JSON(http.StatusOK, dto.LoginResponse{Token: token, User: user})
}

// Me returns the authenticated user's profile
func (c *AuthController) Me(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	user, err := c.authService.CurrentUser(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// Logout clears the session cookie
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetCookie("token", "", -1, "/", "", false, true)
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}
