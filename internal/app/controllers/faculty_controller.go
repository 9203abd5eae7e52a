package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/campussphere/internal/app/models/dto"
	"github.com/yigit/campussphere/internal/app/services"
	"github.com/yigit/campussphere/internal/middleware"
)

// FacultyController handles the faculty dashboard endpoints
type FacultyController struct {
	profileService    *services.ProfileService
	eventService      *services.EventService
	mentorshipService *services.MentorshipService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(
	profileService *services.ProfileService,
	eventService *services.EventService,
	mentorshipService *services.MentorshipService,
) *FacultyController {
	return &FacultyController{
		profileService:    profileService,
		eventService:      eventService,
		mentorshipService: mentorshipService,
	}
}

// GetProfile handles GET /api/faculty/profile
func (c *FacultyController) GetProfile(ctx *gin.Context) {
	principal := middleware.GetPrincipal(ctx)

	view, err := c.profileService.GetFacultyProfile(ctx, principal)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, view)
}

// UpdateProfile handles PUT /api/faculty/profile
func (c *FacultyController) UpdateProfile(ctx *gin.Context) {
	principal := middleware.GetPrincipal(ctx)

	var req dto.FacultyProfileUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("No valid fields to update"))
		return
	}

	if err := c.profileService.UpdateFacultyProfile(ctx, principal, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Profile updated successfully!"))
}

// ListEvents handles GET /api/faculty/events
func (c *FacultyController) ListEvents(ctx *gin.Context) {
	principal := middleware.GetPrincipal(ctx)

	events, err := c.eventService.ListFacultyEvents(ctx, principal)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// CreateEvent handles POST /api/faculty/create-event
func (c *FacultyController) CreateEvent(ctx *gin.Context) {
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

// ListProposals handles GET /api/faculty/proposals
func (c *FacultyController) ListProposals(ctx *gin.Context) {
	principal := middleware.GetPrincipal(ctx)

	proposals, err := c.eventService.ListProposals(ctx, principal)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, proposals)
}

// HandleProposalAction handles POST /api/faculty/proposals/:id/action
func (c *FacultyController) HandleProposalAction(ctx *gin.Context) {
	principal := middleware.GetPrincipal(ctx)

	proposalID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid proposal ID"))
		return
	}

	var req dto.ProposalActionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Action is required"))
		return
	}

	message, err := c.eventService.ReviewProposal(ctx, principal, proposalID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse(message))
}

// GetMentorshipInfo handles GET /api/faculty/mentorship
func (c *FacultyController) GetMentorshipInfo(ctx *gin.Context) {
	principal := middleware.GetPrincipal(ctx)

	info, err := c.mentorshipService.GetMentorshipInfo(ctx, principal)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, info)
}
