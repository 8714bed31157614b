package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron"

	config "socialpulse/configs"
	"socialpulse/internal/api/handlers"
	"socialpulse/internal/api/middleware"
	job "socialpulse/internal/jobs"
	"socialpulse/internal/queue"
	"socialpulse/internal/repository"
	"socialpulse/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB(db)

	if err := db.Ping(); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}

	redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
	client := asynq.NewClient(redisConn)
	defer client.Close()

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Minute,
		WriteTimeout: time.Minute,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	socialAccountRepo := repository.NewSocialAccountRepository(db)
	analyticsCacheRepo := repository.NewAnalyticsCacheRepository(db)

	authService := service.NewAuthService(*cfg, userRepo)
	accountService := service.NewAccountService(socialAccountRepo, analyticsCacheRepo)
	postService := service.NewPostService(postRepo, socialAccountRepo)
	insightService := service.NewInsightService(postRepo, socialAccountRepo)
	analyticsService := service.NewAnalyticsService(postRepo, socialAccountRepo)
	cacheService := service.NewCacheService(postRepo, analyticsCacheRepo)
	storageService := service.NewStorageService(*cfg)
	exportService := service.NewExportService(postRepo, storageService)

	authMiddleware := middleware.NewAuthMiddleware(*cfg)

	auth := handlers.NewAuthHandler(authService)
	app.Post("/api/auth/register", auth.Register)
	app.Post("/api/auth/login", auth.Login)

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	})

	api := app.Group("/api")
	api.Use(authMiddleware.AuthMiddleware())

	account := handlers.NewAccountHandler(accountService)
	api.Post("/accounts/connect", account.Connect)
	api.Get("/accounts", account.List)
	api.Delete("/accounts/:id", account.Disconnect)

	post := handlers.NewPostHandler(postService, client)
	api.Get("/posts", post.List)
	api.Post("/posts", post.Create)
	api.Put("/posts/:id", post.Update)
	api.Get("/posts/trending", post.Trending)

	insight := handlers.NewInsightHandler(insightService)
	api.Post("/analyze", insight.Analyze)
	api.Get("/insights", insight.Insights)
	api.Get("/analytics/summary", insight.Summary)
	api.Get("/recommendations", insight.Recommendations)
	api.Get("/stats", insight.Stats)

	analytics := handlers.NewAnalyticsHandler(analyticsService)
	api.Get("/analytics/hashtags", analytics.Hashtags)
	api.Post("/analytics/predict-engagement", analytics.PredictEngagement)
	api.Get("/analytics/audience-insights", analytics.AudienceInsights)
	api.Get("/analytics/competitor-analysis", analytics.CompetitorAnalysis)
	api.Get("/analytics/content-calendar", analytics.ContentCalendar)
	api.Get("/analytics/anomalies", analytics.Anomalies)
	api.Get("/analytics/forecast", analytics.Forecast)

	export := handlers.NewExportHandler(exportService)
	api.Get("/export", export.Export)

	// cron jobs
	cacheRefreshJob := job.NewCacheRefreshJob(analyticsCacheRepo, cacheService)

	// queue
	queueW := queue.NewQueue(cacheService)

	c := cron.New()
	c.AddFunc("@every 00h10m00s", cacheRefreshJob.RefreshStale)
	c.Start()

	go func() {
		server := asynq.NewServer(redisConn, asynq.Config{
			Concurrency: 10,
		})

		mux := asynq.NewServeMux()
		mux.HandleFunc(queue.TaskTypeRecomputeAnalytics, queueW.HandleRecomputeTask)

		log.Println("Starting the Asynq server...")
		if err := server.Run(mux); err != nil {
			log.Fatalf("Could not start Asynq server: %v", err)
		}
	}()

	go func() {
		if err := app.Listen(cfg.ListenAddr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on %s", cfg.ListenAddr)

	gracefulShutdown(app, db)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, db *sql.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	closeDB(db)
	log.Println("Server shutdown complete.")
}
