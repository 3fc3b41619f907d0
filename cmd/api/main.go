package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"assetpipe/internal/config"
	"assetpipe/internal/database"
	"assetpipe/internal/middleware"
	"assetpipe/internal/modules/apikey"
	"assetpipe/internal/modules/auth"
	"assetpipe/internal/modules/catalog"
	"assetpipe/internal/modules/review"
	"assetpipe/internal/modules/submission"
	jwtsvc "assetpipe/internal/pkg/jwt"
	"assetpipe/internal/repository"
	"assetpipe/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	staging, err := storage.NewDiskBucket(cfg.StagingDir)
	if err != nil {
		log.Fatal(err)
	}
	production, err := storage.NewDiskBucket(cfg.LogosDir)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	logoRepo := repository.NewLogoRepository(db)
	brandKitRepo := repository.NewBrandKitRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)
	apiKeyRepo := repository.NewAPIKeyRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(companyRepo, logoRepo, brandKitRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	submissionService := submission.NewService(submissionRepo, staging)
	submissionHandler := submission.NewHandler(submissionService)

	reviewService := review.NewService(submissionRepo, companyRepo, logoRepo, staging, production)
	reviewHandler := review.NewHandler(reviewService)

	apiKeyService := apikey.NewService(apiKeyRepo)
	apiKeyHandler := apikey.NewHandler(apiKeyService)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitWindow, cfg.RateLimitMax)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	api := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(api)

		// session-protected
		protected := api.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			submissionHandler.RegisterRoutes(protected)
			apiKeyHandler.RegisterRoutes(protected)

			admin := protected.Group("/admin")
			admin.Use(middleware.AdminOnly())
			{
				reviewHandler.RegisterRoutes(admin)
			}
		}
	}

	// public directory, keyed and rate limited
	v1 := r.Group("/v1")
	v1.Use(rateLimiter.Handler())
	v1.Use(middleware.APIKeyAuth(apiKeyRepo))
	{
		catalogHandler.RegisterRoutes(v1)
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
