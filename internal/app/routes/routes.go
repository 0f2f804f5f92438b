package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mcardenas/campuswatch/internal/app/controllers"
	"github.com/mcardenas/campuswatch/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	violationController *controllers.ViolationController,
	profileController *controllers.ProfileController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		students := authenticated.Group("/students")
		{
			students.POST("", studentController.CreateStudent)
			students.GET("", studentController.ListStudents)
			students.PATCH("/:id/profile-pic", studentController.UpdateProfilePic)
			students.DELETE("/:id/profile-pic", studentController.RemoveProfilePic)
		}

		violations := authenticated.Group("/violations")
		{
			// The stats route must be registered before :id so gin does not
			// treat "stats" as an id parameter.
			violations.GET("/stats", violationController.GetStats)
			violations.POST("", violationController.CreateViolation)
			violations.GET("", violationController.ListViolations)
			violations.PUT("/:id", violationController.UpdateViolation)
			violations.DELETE("/:id", violationController.DeleteViolation)
		}

		profile := authenticated.Group("/profile")
		{
			profile.POST("/upload/:id", profileController.UploadProfilePic)
			profile.DELETE("/delete/:id", profileController.DeleteProfilePic)
		}
	}

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger and static upload routes are set up in bootstrap.go
}
