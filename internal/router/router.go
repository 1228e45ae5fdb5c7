package router

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/sagarp07/college-portal/backend/internal/handlers"
	"github.com/sagarp07/college-portal/backend/internal/middleware"
	"github.com/sagarp07/college-portal/backend/internal/models"
	"github.com/sagarp07/college-portal/backend/internal/repositories"
	"github.com/sagarp07/college-portal/backend/internal/storage"
	"github.com/sagarp07/college-portal/backend/pkg/config"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *config.DB, cfg *config.Config) error {
	// AutoMigrate PostgreSQL models
	if err := db.Postgres.AutoMigrate(&models.AdminUser{}); err != nil {
		return err
	}
	log.Println("PostgreSQL auto-migration completed.")

	mongoDB := db.Mongo.Database("collegeportal")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresAdminUserRepository(db.Postgres)
	activityRepo := repositories.NewMongoActivityRepository(mongoDB)
	donationRepo := repositories.NewMongoClothDonationRepository(mongoDB)
	farewellRepo := repositories.NewMongoFarewellRepository(mongoDB)
	alumniRepo := repositories.NewMongoAlumniRepository(mongoDB)

	// The farewell date uniqueness lives in the store, not in a
	// handler pre-check; create the index before serving traffic.
	if err := farewellRepo.EnsureIndexes(context.Background()); err != nil {
		return err
	}
	log.Println("MongoDB indexes ensured.")

	// --- Media Resolver ---
	resolver, err := buildResolver(cfg)
	if err != nil {
		return err
	}

	// Local uploads are served back under /uploads/
	if cfg.MediaBackend == "local" {
		e.Static("/uploads", cfg.UploadDir)
	}

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected admin dashboard routes ---
	admin := e.Group("/api/admin/dashboard")
	admin.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	log.Println("JWT authentication middleware applied to /api/admin/dashboard group.")

	activityHandler := handlers.NewActivityHandler(activityRepo, resolver)
	activityHandler.RegisterActivityRoutes(admin)
	log.Println("Activity routes configured.")

	donationHandler := handlers.NewClothDonationHandler(donationRepo, resolver)
	donationHandler.RegisterDonationRoutes(admin)
	log.Println("Cloth donation routes configured.")

	farewellHandler := handlers.NewFarewellHandler(farewellRepo, resolver)
	farewellHandler.RegisterFarewellRoutes(admin)
	log.Println("Farewell routes configured.")

	alumniHandler := handlers.NewAlumniHandler(alumniRepo, resolver)
	alumniHandler.RegisterAlumniRoutes(admin)
	log.Println("Alumni routes configured.")

	log.Println("All routes configured.")
	return nil
}

func buildResolver(cfg *config.Config) (storage.Resolver, error) {
	if cfg.MediaBackend == "s3" {
		resolver, err := storage.NewS3Resolver(context.Background(),
			cfg.S3Bucket, cfg.S3Region, cfg.S3Prefix, cfg.S3PublicURL)
		if err != nil {
			return nil, err
		}
		log.Println("S3 media resolver configured.")
		return resolver, nil
	}
	log.Println("Local media resolver configured.")
	return storage.NewLocalResolver(cfg.UploadDir, cfg.APIOrigin+"/uploads"), nil
}
