package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/campussphere/internal/app/models/dto"
	"github.com/yigit/campussphere/internal/app/services"
	"github.com/yigit/campussphere/internal/middleware"
)

// AdminController handles the admin dashboard endpoints
type AdminController struct {
	adminService *services.AdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService *services.AdminService) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

// GetAnalytics handles GET /api/admin/analytics
func (c *AdminController) GetAnalytics(ctx *gin.Context) {
	principal := middleware.GetPrincipal(ctx)

	analytics, err := c.adminService.GetAnalytics(ctx, principal)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, analytics)
}

// ListUsers handles GET /api/admin/users with optional role and status filters
func (c *AdminController) ListUsers(ctx *gin.Context) {
	principal := middleware.GetPrincipal(ctx)

	users, err := c.adminService.ListUsers(ctx, principal, ctx.Query("role"), ctx.Query("status"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, users)
}

// HandleUserAction handles POST /api/admin/users/:id/action
func (c *AdminController) HandleUserAction(ctx *gin.Context) {
	principal := middleware.GetPrincipal(ctx)

	userID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid user ID"))
		return
	}

	var req dto.UserActionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Action is required"))
		return
	}

	message, err := c.adminService.HandleUserAction(ctx, principal, userID, req.Action)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse(message))
}

// ListEvents handles GET /api/admin/events
func (c *AdminController) ListEvents(ctx *gin.Context) {
	principal := middleware.GetPrincipal(ctx)

	events, err := c.adminService.ListAllEvents(ctx, principal)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// FeatureEvent handles POST /api/admin/events/:id/feature
func (c *AdminController) FeatureEvent(ctx *gin.Context) {
	principal := middleware.GetPrincipal(ctx)

	eventID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid event ID"))
		return
	}

	var req dto.FeatureEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Featured status is required"))
		return
	}

	message, err := c.adminService.FeatureEvent(ctx, principal, eventID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse(message))
}

// ListAnnouncements handles GET /api/admin/announcements
func (c *AdminController) ListAnnouncements(ctx *gin.Context) {
	principal := middleware.GetPrincipal(ctx)

	announcements, err := c.adminService.ListAnnouncements(ctx, principal)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, announcements)
}

// CreateAnnouncement handles POST /api/admin/announcements
func (c *AdminController) CreateAnnouncement(ctx *gin.Context) {
	principal := middleware.GetPrincipal(ctx)

	var req dto.CreateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Missing required fields"))
		return
	}

	if err := c.adminService.CreateAnnouncement(ctx, principal, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Announcement created successfully!"))
}

// GetSettings handles GET /api/admin/settings
func (c *AdminController) GetSettings(ctx *gin.Context) {
	principal := middleware.GetPrincipal(ctx)

	settings, err := c.adminService.GetSettings(ctx, principal)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, settings)
}

// UpdateSettings handles PUT /api/admin/settings
func (c *AdminController) UpdateSettings(ctx *gin.Context) {
	principal := middleware.GetPrincipal(ctx)

	var settings map[string]string
	if err := ctx.ShouldBindJSON(&settings); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("No settings data provided"))
		return
	}

	if err := c.adminService.UpdateSettings(ctx, principal, settings); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Settings updated successfully!"))
}
