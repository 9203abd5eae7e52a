package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/campussphere/internal/app/models/dto"
	"github.com/yigit/campussphere/internal/app/services"
	"github.com/yigit/campussphere/internal/middleware"
)

// PlatformController handles the unauthenticated utility endpoints
type PlatformController struct {
	profileService *services.ProfileService
}

// NewPlatformController creates a new PlatformController
func NewPlatformController(profileService *services.ProfileService) *PlatformController {
	return &PlatformController{
		profileService: profileService,
	}
}

// HealthCheck handles GET /api/test
func (c *PlatformController) HealthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewHealthResponse("CampusSphere backend is running!"))
}

// ListDepartments handles GET /api/departments, used by the form dropdowns
func (c *PlatformController) ListDepartments(ctx *gin.Context) {
	departments, err := c.profileService.ListDepartments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, departments)
}
