package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/campussphere/internal/app/models/dto"
	"github.com/yigit/campussphere/internal/app/services"
	"github.com/yigit/campussphere/internal/middleware"
)

// StudentController handles the student dashboard endpoints
type StudentController struct {
	profileService       *services.ProfileService
	eventService         *services.EventService
	collaborationService *services.CollaborationService
}

// NewStudentController creates a new StudentController
func NewStudentController(
	profileService *services.ProfileService,
	eventService *services.EventService,
	collaborationService *services.CollaborationService,
) *StudentController {
	return &StudentController{
		profileService:       profileService,
		eventService:         eventService,
		collaborationService: collaborationService,
	}
}

// GetProfile handles GET /api/student/profile
func (c *StudentController) GetProfile(ctx *gin.Context) {
	principal := middleware.GetPrincipal(ctx)

	user, err := c.profileService.GetStudentProfile(ctx, principal)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// UpdateProfile handles PUT /api/student/profile
func (c *StudentController) UpdateProfile(ctx *gin.Context) {
	principal := middleware.GetPrincipal(ctx)

	var req dto.StudentProfileUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("No valid fields to update"))
		return
	}

	if err := c.profileService.UpdateStudentProfile(ctx, principal, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Profile updated successfully!"))
}

// ListEvents handles GET /api/student/events
func (c *StudentController) ListEvents(ctx *gin.Context) {
	principal := middleware.GetPrincipal(ctx)

	events, err := c.eventService.ListStudentEvents(ctx, principal)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// RegisterForEvent handles POST /api/student/events/:id/register
func (c *StudentController) RegisterForEvent(ctx *gin.Context) {
	principal := middleware.GetPrincipal(ctx)

	eventID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid event ID"))
		return
	}

	if err := c.eventService.RegisterForEvent(ctx, principal, eventID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Successfully registered for event!"))
}

// ListCollaborations handles GET /api/student/collaborate
func (c *StudentController) ListCollaborations(ctx *gin.Context) {
	principal := middleware.GetPrincipal(ctx)

	posts, err := c.collaborationService.ListPosts(ctx, principal)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, posts)
}

// CreateCollaboration handles POST /api/student/collaborate
func (c *StudentController) CreateCollaboration(ctx *gin.Context) {
	principal := middleware.GetPrincipal(ctx)

	var req dto.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Missing required fields"))
		return
	}

	if err := c.collaborationService.CreatePost(ctx, principal, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Collaboration post created successfully!"))
}

// ExpressInterest handles POST /api/student/collaborate/:id/interest
func (c *StudentController) ExpressInterest(ctx *gin.Context) {
	principal := middleware.GetPrincipal(ctx)

	postID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid post ID"))
		return
	}

	// Message is optional; an absent or invalid body means no message
	var req dto.InterestRequest
	_ = ctx.ShouldBindJSON(&req)

	if err := c.collaborationService.ExpressInterest(ctx, principal, postID, req.Message); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Interest expressed successfully!"))
}

// SubmitProposal handles POST /api/student/organize
func (c *StudentController) SubmitProposal(ctx *gin.Context) {
	principal := middleware.GetPrincipal(ctx)

	var req dto.SubmitEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Missing required fields"))
		return
	}

	message, err := c.eventService.SubmitProposal(ctx, principal, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse(message))
}

// ListOrganizedEvents handles GET /api/student/organized-events
func (c *StudentController) ListOrganizedEvents(ctx *gin.Context) {
	principal := middleware.GetPrincipal(ctx)

	events, err := c.eventService.ListOrganizedEvents(ctx, principal)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, events)
}
