package routes

import (
	"context"
	"log"

	"foodbank-backend/internal/api/handlers"
	"foodbank-backend/internal/api/middleware"
	"foodbank-backend/internal/auth"
	"foodbank-backend/internal/config"
	"foodbank-backend/internal/logger"
	"foodbank-backend/internal/mailer"
	"foodbank-backend/internal/repository"
	"foodbank-backend/internal/service"
	"foodbank-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	appLogger := logger.New()

	// Initialize repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	userRepo := repository.NewUserRepository(db)
	shiftCategoryRepo := repository.NewShiftCategoryRepository(db)
	recurringShiftRepo := repository.NewRecurringShiftRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	shiftSignupRepo := repository.NewShiftSignupRepository(db)
	donorRepo := repository.NewDonorRepository(db)
	donationCategoryRepo := repository.NewDonationCategoryRepository(db)
	donationRepo := repository.NewDonationRepository(db)
	passwordResetRepo := repository.NewPasswordResetRepository(db)

	// Initialize services
	organizationService := service.NewOrganizationService(organizationRepo, validator)
	userService := service.NewUserService(userRepo, organizationRepo, validator)
	shiftCategoryService := service.NewShiftCategoryService(shiftCategoryRepo, organizationRepo, validator)
	recurringShiftService := service.NewRecurringShiftService(recurringShiftRepo, shiftRepo, shiftSignupRepo, shiftCategoryRepo, organizationRepo, db, validator)
	shiftService := service.NewShiftService(shiftRepo, shiftCategoryRepo, organizationRepo, shiftSignupRepo, validator)
	shiftSignupService := service.NewShiftSignupService(shiftSignupRepo, shiftRepo, userRepo, validator)
	donorService := service.NewDonorService(donorRepo, organizationRepo, validator)
	donationCategoryService := service.NewDonationCategoryService(donationCategoryRepo, organizationRepo, validator)
	donationService := service.NewDonationService(donationRepo, donorRepo, donationCategoryRepo, organizationRepo, validator)
	reportService := service.NewReportService(shiftSignupRepo, donationRepo, shiftCategoryRepo, donationCategoryRepo, donorRepo)

	// Initialize auth service
	resetMailer := mailer.New(cfg, appLogger)
	authService := auth.NewAuthService(userRepo, organizationRepo, passwordResetRepo, resetMailer, cfg.JWTSecret, validator, appLogger)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize file storage. Uploads are optional: without a bucket the
	// file routes are simply not registered.
	var fileHandler *handlers.FileHandler
	if cfg.S3BucketName != "" {
		s3Storage, err := storage.NewS3Storage(context.Background(), cfg)
		if err != nil {
			log.Printf("Warning: Failed to initialize S3 storage: %v", err)
		} else {
			fileHandler = handlers.NewFileHandler(s3Storage)
		}
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	userHandler := handlers.NewUserHandler(userService)
	shiftCategoryHandler := handlers.NewShiftCategoryHandler(shiftCategoryService)
	recurringShiftHandler := handlers.NewRecurringShiftHandler(recurringShiftService)
	shiftHandler := handlers.NewShiftHandler(shiftService)
	shiftSignupHandler := handlers.NewShiftSignupHandler(shiftSignupService)
	donorHandler := handlers.NewDonorHandler(donorService)
	donationCategoryHandler := handlers.NewDonationCategoryHandler(donationCategoryService)
	donationHandler := handlers.NewDonationHandler(donationService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes (public)
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/forgot-password", authHandler.ForgotPassword)
		authGroup.POST("/reset-password", authHandler.ResetPassword)
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Organization routes
		organizations := v1.Group("/organizations")
		{
			organizations.POST("", organizationHandler.CreateOrganization)
			organizations.GET("", organizationHandler.ListOrganizations)
			organizations.GET("/:id", organizationHandler.GetOrganization)
			organizations.PUT("/:id", organizationHandler.UpdateOrganization)
			organizations.DELETE("/:id", organizationHandler.DeleteOrganization)
			organizations.GET("/:id/users", userHandler.GetUsersByOrganization)
			organizations.GET("/:id/shift-categories", shiftCategoryHandler.GetShiftCategoriesByOrganization)
			organizations.GET("/:id/recurring-shifts", recurringShiftHandler.GetRecurringShiftsByOrganization)
			organizations.POST("/:id/recurring-shifts/:shiftId/materialize", recurringShiftHandler.MaterializeRecurringShift)
			organizations.GET("/:id/shifts", shiftHandler.GetShiftsByOrganization)
			organizations.GET("/:id/donors", donorHandler.GetDonorsByOrganization)
			organizations.GET("/:id/donation-categories", donationCategoryHandler.GetDonationCategoriesByOrganization)
			organizations.GET("/:id/donations", donationHandler.GetDonationsByOrganization)
			organizations.GET("/:id/reports/:report", reportHandler.GetReport)
			organizations.GET("/:id/reports/:report/export", reportHandler.ExportReport)
		}

		// User routes
		users := v1.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
			users.GET("/:id/signups", shiftSignupHandler.GetSignupsByUser)
		}

		// Shift category routes
		shiftCategories := v1.Group("/shift-categories")
		{
			shiftCategories.POST("", shiftCategoryHandler.CreateShiftCategory)
			shiftCategories.GET("/:id", shiftCategoryHandler.GetShiftCategory)
			shiftCategories.PUT("/:id", shiftCategoryHandler.UpdateShiftCategory)
			shiftCategories.DELETE("/:id", shiftCategoryHandler.DeleteShiftCategory)
		}

		// Recurring shift routes
		recurringShifts := v1.Group("/recurring-shifts")
		{
			recurringShifts.POST("", recurringShiftHandler.CreateRecurringShift)
			recurringShifts.GET("/:id", recurringShiftHandler.GetRecurringShift)
			recurringShifts.PUT("/:id", recurringShiftHandler.UpdateRecurringShift)
			recurringShifts.DELETE("/:id", recurringShiftHandler.DeleteRecurringShift)
		}

		// Shift routes
		shifts := v1.Group("/shifts")
		{
			shifts.POST("", shiftHandler.CreateShift)
			shifts.GET("/:id", shiftHandler.GetShift)
			shifts.PUT("/:id", shiftHandler.UpdateShift)
			shifts.DELETE("/:id", shiftHandler.DeleteShift)
			shifts.GET("/:id/signups", shiftSignupHandler.GetSignupsByShift)
		}

		// Shift signup routes
		shiftSignups := v1.Group("/shift-signups")
		{
			shiftSignups.POST("", shiftSignupHandler.CreateShiftSignup)
			shiftSignups.GET("/:id", shiftSignupHandler.GetShiftSignup)
			shiftSignups.PUT("/:id", shiftSignupHandler.UpdateShiftSignup)
			shiftSignups.DELETE("/:id", shiftSignupHandler.DeleteShiftSignup)
		}

		// Donor routes
		donors := v1.Group("/donors")
		{
			donors.POST("", donorHandler.CreateDonor)
			donors.GET("/:id", donorHandler.GetDonor)
			donors.PUT("/:id", donorHandler.UpdateDonor)
			donors.DELETE("/:id", donorHandler.DeleteDonor)
		}

		// Donation category routes
		donationCategories := v1.Group("/donation-categories")
		{
			donationCategories.POST("", donationCategoryHandler.CreateDonationCategory)
			donationCategories.GET("/:id", donationCategoryHandler.GetDonationCategory)
			donationCategories.PUT("/:id", donationCategoryHandler.UpdateDonationCategory)
			donationCategories.DELETE("/:id", donationCategoryHandler.DeleteDonationCategory)
		}

		// Donation routes
		donations := v1.Group("/donations")
		{
			donations.POST("", donationHandler.CreateDonation)
			donations.GET("/:id", donationHandler.GetDonation)
			donations.PUT("/:id", donationHandler.UpdateDonation)
			donations.DELETE("/:id", donationHandler.DeleteDonation)
		}

		// File routes
		if fileHandler != nil {
			files := v1.Group("/files")
			{
				files.POST("", fileHandler.UploadFile)
				files.DELETE("/*key", fileHandler.DeleteFile)
			}
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
