package main

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/hibiken/asynq"
	_ "github.com/lib/pq"
	config "github.com/maheshrc27/shutterpost/configs"
	"github.com/maheshrc27/shutterpost/internal/api/handlers"
	"github.com/maheshrc27/shutterpost/internal/api/middleware"
	"github.com/maheshrc27/shutterpost/internal/cache"
	"github.com/maheshrc27/shutterpost/internal/generation"
	job "github.com/maheshrc27/shutterpost/internal/jobs"
	"github.com/maheshrc27/shutterpost/internal/queue"
	"github.com/maheshrc27/shutterpost/internal/repository"
	"github.com/maheshrc27/shutterpost/internal/service"
	"github.com/maheshrc27/shutterpost/pkg/logging"
	"github.com/robfig/cron"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	if err := logging.InitLogger(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	log := logging.GetLogger()

	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration", zap.Error(err))
	}

	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := db.Ping(); err != nil {
		log.Fatal("Database is unreachable", zap.Error(err))
	}

	if err := runMigrations(db, cfg.MigrationsPath); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	contentRepo := repository.NewContentRepository(db)
	scheduledPostRepo := repository.NewScheduledPostRepository(db)
	contentIdeaRepo := repository.NewContentIdeaRepository(db)
	mediaRepo := repository.NewMediaRepository(db)

	redisCache, err := cache.New(cfg.RedisURI)
	if err != nil {
		log.Warn("Continuing without Redis cache", zap.Error(err))
	}

	var (
		asynqClient    *asynq.Client
		asynqInspector *asynq.Inspector
		asynqServer    *asynq.Server
		scheduler      service.PostScheduler
	)
	if cfg.RedisURI != "" {
		redisConn, err := asynq.ParseRedisURI(cfg.RedisURI)
		if err != nil {
			log.Fatal("Invalid REDIS_URI", zap.Error(err))
		}
		asynqClient = asynq.NewClient(redisConn)
		asynqInspector = asynq.NewInspector(redisConn)
		asynqServer = asynq.NewServer(redisConn, asynq.Config{
			Concurrency: 10,
			Logger:      log.Sugar().Named("asynq"),
		})
		scheduler = queue.NewScheduler(asynqClient, asynqInspector)
	} else {
		log.Info("REDIS_URI not set, scheduled posts will not be queued")
	}

	var analyticsCache service.AnalyticsCache
	if redisCache != nil {
		analyticsCache = redisCache
	}

	var objectStore service.ObjectStore
	if cfg.R2.Enabled() {
		objectStore = service.NewR2Service(cfg.R2)
	}

	textGen, imageGens := buildGenerators(cfg.Generation, log)

	analyticsService := service.NewAnalyticsService(contentRepo, contentIdeaRepo, analyticsCache, cfg.AnalyticsCacheTTL)
	contentService := service.NewContentService(contentRepo, analyticsService)
	calendarService := service.NewCalendarService(contentRepo, scheduledPostRepo, scheduler, analyticsService)
	generationService := service.NewGenerationService(textGen, imageGens, contentIdeaRepo, cfg.Generation.TextTimeout, cfg.Generation.ImageTimeout)
	mediaService := service.NewMediaService(mediaRepo, objectStore)

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		BodyLimit:    100 * 1024 * 1024, // 100 MB
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(middleware.Recover(log))
	app.Use(middleware.RequestLogger(logging.WithComponent("http")))
	app.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	api := app.Group("/api")

	reference := handlers.NewReferenceHandler()
	api.Get("/", reference.Root)
	api.Get("/niches", reference.Niches)
	api.Get("/hashtags/:niche", reference.Hashtags)
	api.Get("/tips", reference.Tips)
	api.Get("/tips/:category", reference.TipsByCategory)
	api.Get("/content-mix", reference.ContentMix)
	api.Get("/content-mix/:category", reference.ContentMixByCategory)
	api.Get("/seasonal", reference.Seasonal)
	api.Get("/seasonal/:month", reference.SeasonalByMonth)

	gen := handlers.NewGenerationHandler(generationService)
	api.Post("/content/generate-caption", gen.GenerateCaption)
	api.Post("/content/generate-image", gen.GenerateImage)
	api.Post("/content/generate-ideas", gen.GenerateIdeas)
	api.Post("/tips/generate", gen.GenerateTips)
	api.Post("/content-mix/generate", gen.GenerateContentMix)

	media := handlers.NewMediaHandler(mediaService)
	api.Post("/content/upload-media", media.UploadMedia)
	api.Get("/media/:id", media.GetMedia)

	content := handlers.NewContentHandler(contentService)
	api.Post("/content", content.CreateContent)
	api.Get("/content", content.ListContent)
	api.Get("/content/:id", content.GetContent)
	api.Put("/content/:id", content.UpdateContent)
	api.Delete("/content/:id", content.DeleteContent)

	calendar := handlers.NewCalendarHandler(calendarService)
	api.Post("/calendar/schedule", calendar.SchedulePost)
	api.Get("/calendar", calendar.GetCalendar)
	api.Delete("/calendar/:id", calendar.CancelScheduledPost)

	analytics := handlers.NewAnalyticsHandler(analyticsService)
	api.Get("/analytics", analytics.GetAnalytics)

	// cron jobs
	overdueJob := job.NewOverdueSweepJob(calendarService)

	c := cron.New()
	if err := c.AddFunc(cfg.OverdueSweepSchedule, overdueJob.Sweep); err != nil {
		log.Fatal("Invalid OVERDUE_SWEEP_SCHEDULE", zap.Error(err))
	}
	c.Start()

	if asynqServer != nil {
		mux := asynq.NewServeMux()
		queue.NewQueue(calendarService).Register(mux)

		go func() {
			log.Info("Starting the Asynq server...")
			if err := asynqServer.Run(mux); err != nil {
				log.Fatal("Could not start Asynq server", zap.Error(err))
			}
		}()
	}

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()
	log.Info("Server is running", zap.String("addr", "http://localhost:"+cfg.Port))

	gracefulShutdown(app, db, c, asynqServer, asynqClient, asynqInspector, redisCache)
}

func runMigrations(db *sql.DB, path string) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migrate driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(path, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// buildGenerators skips providers whose key is missing so the generation
// service sees a nil text generator or a missing image entry.
func buildGenerators(gc config.Generation, log *zap.Logger) (generation.TextGenerator, map[string]generation.ImageGenerator) {
	var text generation.TextGenerator
	images := make(map[string]generation.ImageGenerator)

	if gc.GeminiAPIKey != "" {
		gemini, err := generation.NewGeminiClient(gc.GeminiAPIKey, gc.GeminiBaseURL, gc.GeminiTextModel, gc.GeminiImageModel, nil)
		if err != nil {
			log.Warn("Gemini client unavailable", zap.Error(err))
		} else {
			text = gemini
			images[generation.ProviderGemini] = gemini
		}
	} else {
		log.Warn("GEMINI_API_KEY not set, text generation disabled")
	}

	if gc.OpenAIAPIKey != "" {
		openai, err := generation.NewOpenAIImageClient(gc.OpenAIAPIKey, gc.OpenAIBaseURL, gc.OpenAIImageModel, nil)
		if err != nil {
			log.Warn("OpenAI image client unavailable", zap.Error(err))
		} else {
			images[generation.ProviderOpenAI] = openai
		}
	}

	return text, images
}

func corsConfig(origins []string) cors.Config {
	allowAll := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
	}

	c := cors.Config{
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		MaxAge:       3600,
	}
	if allowAll {
		c.AllowOrigins = "*"
		return c
	}
	c.AllowOrigins = strings.Join(origins, ",")
	c.AllowCredentials = true
	return c
}

func closeDB(db *sql.DB) {
	log := logging.GetLogger()
	if err := db.Close(); err != nil {
		log.Error("Failed to close database", zap.Error(err))
		return
	}
	log.Info("Database connection closed")
}

func gracefulShutdown(app *fiber.App, db *sql.DB, c *cron.Cron, srv *asynq.Server, client *asynq.Client, inspector *asynq.Inspector, redisCache *cache.Cache) {
	log := logging.GetLogger()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Error("Failed to shut down server", zap.Error(err))
	}

	c.Stop()

	if srv != nil {
		srv.Shutdown()
	}
	if client != nil {
		client.Close()
	}
	if inspector != nil {
		inspector.Close()
	}
	if redisCache != nil {
		if err := redisCache.Close(); err != nil {
			log.Warn("Failed to close Redis cache", zap.Error(err))
		}
	}

	closeDB(db)
	log.Info("Server shutdown complete.")
}
