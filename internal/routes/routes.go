package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hopehr/hr-api/internal/auth"
	"github.com/hopehr/hr-api/internal/config"
	"github.com/hopehr/hr-api/internal/handlers"
	infraRepo "github.com/hopehr/hr-api/internal/infra/repository"
	"github.com/hopehr/hr-api/internal/middleware"
	"github.com/hopehr/hr-api/internal/storage"
	ucEmployee "github.com/hopehr/hr-api/internal/usecase/employee"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, signer storage.UploadSigner) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewEmployeeGormRepository(db)
	tokens := auth.NewTokenService(cfg.JWTSecret, auth.DefaultTokenTTL)

	// ======================================================
	// USE CASES
	// ======================================================
	createEmployeeUC := ucEmployee.NewCreateEmployee(repo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(repo, tokens)
	employeeHandler := handlers.NewEmployeeHandler(repo, createEmployeeUC)
	profileHandler := handlers.NewProfileHandler(repo)
	uploadHandler := handlers.NewUploadHandler(signer)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens))
		{
			secured.GET("/auth/me", authHandler.Me)
			secured.POST("/auth/logout", authHandler.Logout)

			// ------------------------------
			// EMPLOYEES (admin CRUD)
			// ------------------------------
			secured.GET("/employees", employeeHandler.List)
			secured.POST("/employees", employeeHandler.Create)
			secured.GET("/employees/stats/departments", employeeHandler.DepartmentStats)
			secured.GET("/employees/:id", employeeHandler.GetByID)
			secured.PUT("/employees/:id", employeeHandler.Update)
			secured.DELETE("/employees/:id", employeeHandler.Delete)

			// ------------------------------
			// SELF-SERVICE PROFILE
			// ------------------------------
			secured.GET("/employees/profile", profileHandler.Get)
			secured.PATCH("/employees/profile", profileHandler.UpdateImage)

			// ------------------------------
			// UPLOADS
			// ------------------------------
			secured.POST("/upload/image", uploadHandler.PresignImage)
		}
	}
}
