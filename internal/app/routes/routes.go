package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yigit/campussphere/internal/app/controllers"
	"github.com/yigit/campussphere/internal/app/models"
	"github.com/yigit/campussphere/internal/app/models/dto"
	"github.com/yigit/campussphere/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	platformController *controllers.PlatformController,
	studentController *controllers.StudentController,
	facultyController *controllers.FacultyController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public routes ---
	api.GET("/test", platformController.HealthCheck)
	api.GET("/departments", platformController.ListDepartments)
	api.POST("/register", authController.Register)
	api.POST("/login", authController.Login)

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.RequireAuth())
	{
		authenticated.POST("/logout", authController.Logout)
		authenticated.GET("/profile", authController.GetCurrentUser)

		student := authenticated.Group("/student")
		student.Use(authMiddleware.RequireRoles(models.RoleStudent))
		{
			student.GET("/profile", studentController.GetProfile)
			student.PUT("/profile", studentController.UpdateProfile)
			student.GET("/events", studentController.ListEvents)
			student.POST("/events/:id/register", studentController.RegisterForEvent)
			student.GET("/collaborate", studentController.ListCollaborations)
			student.POST("/collaborate", studentController.CreateCollaboration)
			student.POST("/collaborate/:id/interest", studentController.ExpressInterest)
			student.POST("/organize", studentController.SubmitProposal)
			student.GET("/organized-events", studentController.ListOrganizedEvents)
		}

		faculty := authenticated.Group("/faculty")
		faculty.Use(authMiddleware.RequireRoles(models.RoleFaculty))
		{
			faculty.GET("/profile", facultyController.GetProfile)
			faculty.PUT("/profile", facultyController.UpdateProfile)
			faculty.GET("/events", facultyController.ListEvents)
			faculty.POST("/create-event", facultyController.CreateEvent)
			faculty.GET("/proposals", facultyController.ListProposals)
			faculty.POST("/proposals/:id/action", facultyController.HandleProposalAction)
			faculty.GET("/mentorship", facultyController.GetMentorshipInfo)
		}

		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.RequireRoles(models.RoleAdmin))
		{
			admin.GET("/analytics", adminController.GetAnalytics)
			admin.GET("/users", adminController.ListUsers)
			admin.POST("/users/:id/action", adminController.HandleUserAction)
			admin.GET("/events", adminController.ListEvents)
			admin.POST("/events/:id/feature", adminController.FeatureEvent)
			admin.GET("/announcements", adminController.ListAnnouncements)
			admin.POST("/announcements", adminController.CreateAnnouncement)
			admin.GET("/settings", adminController.GetSettings)
			admin.PUT("/settings", adminController.UpdateSettings)
		}
	}

	// Unknown routes get the same envelope as everything else
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Endpoint not found"))
	})
}
