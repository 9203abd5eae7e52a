package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/campussphere/internal/app/models/dto"
	"github.com/yigit/campussphere/internal/app/services"
	"github.com/yigit/campussphere/internal/middleware"
	"github.com/yigit/campussphere/internal/pkg/auth"
)

// AuthController handles registration, login, logout and the current-user
// endpoint
type AuthController struct {
	authService    *services.AuthService
	sessionService *auth.SessionService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, sessionService *auth.SessionService) *AuthController {
	return &AuthController{
		authService:    authService,
		sessionService: sessionService,
	}
}

// Register handles POST /api/register
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Missing required fields"))
		return
	}

	resp, err := c.authService.Register(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// Login handles POST /api/login. On success the session token is set as an
// HTTP-only cookie.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Email and password are required"))
		return
	}

	token, resp, err := c.authService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.sessionService.CookieName(), token, c.sessionService.TokenMaxAge(), "/", "", false, true)

	ctx.JSON(http.StatusOK, resp)
}

// Logout handles POST /api/logout by expiring the session cookie
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.sessionService.CookieName(), "", -1, "/", "", false, true)

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Logged out successfully"))
}

// GetCurrentUser handles GET /api/profile
func (c *AuthController) GetCurrentUser(ctx *gin.Context) {
	principal := middleware.GetPrincipal(ctx)

	user, err := c.authService.GetCurrentUser(ctx, principal)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}
