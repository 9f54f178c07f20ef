package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"petkey/database"
	"petkey/internal/controllers"
	"petkey/internal/middleware"
	"petkey/internal/repository"
	"petkey/internal/utils"
	"petkey/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment variables")
	}

	log.SetFormatter(&log.JSONFormatter{})
	if os.Getenv("LOG_LEVEL") == "debug" {
		log.SetLevel(log.DebugLevel)
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.WithError(err).Fatal("Failed to run database migrations")
	}

	mailConfig := utils.LoadMailConfig()

	// Repositories
	vetRepo := repository.NewVeterinarianRepository(database.DB)
	blogRepo := repository.NewBlogPostRepository(database.DB)
	appointmentRepo := repository.NewAppointmentRepository(database.DB)
	contactRepo := repository.NewContactMessageRepository(database.DB)
	galleryRepo := repository.NewGalleryImageRepository(database.DB)
	pageContentRepo := repository.NewPageContentRepository(database.DB)
	reviewRepo := repository.NewGoogleReviewRepository(database.DB)
	seoRepo := repository.NewSEOSettingsRepository(database.DB)
	userRepo := repository.NewUserRepository(database.DB)
	aboutRepo := repository.NewAboutPageRepository(database.DB)
	contactPageRepo := repository.NewContactPageRepository(database.DB)
	servicesPageRepo := repository.NewServicesPageRepository(database.DB)
	homePageRepo := repository.NewHomePageRepository(database.DB)
	siteSettingsRepo := repository.NewSiteSettingsRepository(database.DB)

	// The service catalog is the hottest read path; cache it when Redis
	// is configured.
	var serviceRepo repository.ServiceRepository
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.WithError(err).Fatal("Invalid REDIS_URL")
		}
		serviceRepo = repository.NewCachedServiceRepository(database.DB, redis.NewClient(opts))
		log.Info("Service repository running with Redis cache")
	} else {
		serviceRepo = repository.NewServiceRepository(database.DB)
	}

	// Controllers
	vetController := controllers.NewVeterinarianController(vetRepo)
	blogController := controllers.NewBlogController(blogRepo)
	appointmentController := controllers.NewAppointmentController(appointmentRepo, mailConfig)
	contactController := controllers.NewContactController(contactRepo, mailConfig)
	galleryController := controllers.NewGalleryController(galleryRepo)
	pageContentController := controllers.NewPageContentController(pageContentRepo)
	serviceController := controllers.NewServiceController(serviceRepo)
	reviewController := controllers.NewReviewController(reviewRepo)
	seoController := controllers.NewSEOController(seoRepo)
	sitemapController := controllers.NewSitemapController(blogRepo, serviceRepo, vetRepo)
	authController := controllers.NewAuthController(userRepo)
	userController := controllers.NewUserController(userRepo)
	aboutController := controllers.NewAboutPageController(aboutRepo)
	contactPageController := controllers.NewContactPageController(contactPageRepo)
	servicesPageController := controllers.NewServicesPageController(servicesPageRepo)
	homePageController := controllers.NewHomePageController(homePageRepo)
	siteSettingsController := controllers.NewSiteSettingsController(siteSettingsRepo)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.Use(middleware.CORSMiddleware())

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "PetKey API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	router.Static("/media", utils.MediaRoot())

	routes.RegisterVeterinarianRoutes(router, vetController)
	routes.RegisterBlogRoutes(router, blogController)
	routes.RegisterAppointmentRoutes(router, appointmentController)
	routes.RegisterContactRoutes(router, contactController)
	routes.RegisterGalleryRoutes(router, galleryController)
	routes.RegisterPageContentRoutes(router, pageContentController)
	routes.RegisterServiceRoutes(router, serviceController)
	routes.RegisterReviewRoutes(router, reviewController)
	routes.RegisterSEORoutes(router, seoController)
	routes.RegisterSitemapRoutes(router, sitemapController)
	routes.RegisterAuthRoutes(router, authController, userController)
	routes.RegisterPageRoutes(router,
		aboutController,
		contactPageController,
		servicesPageController,
		homePageController,
		siteSettingsController,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.WithField("port", port).Info("Starting PetKey API server")
	if err := router.Run(":" + port); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}
