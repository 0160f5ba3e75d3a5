package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devang/profmatch/internal/app/controllers"
	"github.com/devang/profmatch/internal/app/models"
	"github.com/devang/profmatch/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	adminController *controllers.AdminController,
	professorController *controllers.ProfessorController,
	studentController *controllers.StudentController,
	userController *controllers.UserController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "profmatch api"})
	})

	api := router.Group("/api")

	// --- Admin routes ---
	admin := api.Group("/admin")
	{
		admin.POST("/register", adminController.Register)
		admin.POST("/login", adminController.Login)
	}

	// --- Professor routes ---
	professor := api.Group("/professor")
	{
		// Public
		professor.POST("/login", professorController.Login)
		professor.GET("/all", professorController.List)
		professor.GET("/:id", professorController.GetByID)

		// Admin-gated account management
		professorAdmin := professor.Group("")
		professorAdmin.Use(authMiddleware.RequireAuth(models.RoleAdmin))
		{
			professorAdmin.POST("/register", professorController.Register)
			professorAdmin.PUT("/update/:id", professorController.AdminUpdate)
			professorAdmin.DELETE("/delete/:id", professorController.Delete)
		}

		// Owner-gated profile and publication sub-resource
		professorOwner := professor.Group("")
		professorOwner.Use(authMiddleware.RequireAuth(models.RoleProfessor))
		{
			professorOwner.PATCH("/update", professorController.UpdateSelf)
			professorOwner.GET("/publications", professorController.ListPublications)
			professorOwner.POST("/publication", professorController.AddPublication)
			professorOwner.GET("/publication/:id", professorController.GetPublication)
			professorOwner.PUT("/publication/:id", professorController.UpdatePublication)
			professorOwner.DELETE("/publication/:id", professorController.DeletePublication)
		}
	}

	// --- Student routes ---
	student := api.Group("/student")
	{
		student.POST("/login", studentController.Login)

		studentAdmin := student.Group("")
		studentAdmin.Use(authMiddleware.RequireAuth(models.RoleAdmin))
		{
			studentAdmin.POST("/register", studentController.Register)
			studentAdmin.GET("/all", studentController.List)
			studentAdmin.GET("/:id", studentController.GetByID)
			studentAdmin.PUT("/update/:id", studentController.AdminUpdate)
			studentAdmin.DELETE("/delete/:id", studentController.Delete)
		}

		studentOwner := student.Group("")
		studentOwner.Use(authMiddleware.RequireAuth(models.RoleStudent))
		{
			studentOwner.PATCH("/update", studentController.UpdateWishlist)
			studentOwner.GET("/wishlist", studentController.GetWishlist)
		}
	}

	// --- Shared session routes (any authenticated role) ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.RequireAuth())
	{
		authenticated.GET("/user", userController.GetProfile)
		authenticated.GET("/logout", userController.Logout)
	}
}
