package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	config "github.com/bagritech/studio-api/configs"
	"github.com/bagritech/studio-api/internal/api/handlers"
	"github.com/bagritech/studio-api/internal/gemini"
	job "github.com/bagritech/studio-api/internal/jobs"
	"github.com/bagritech/studio-api/internal/queue"
	"github.com/bagritech/studio-api/internal/service"
	"github.com/bagritech/studio-api/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()
	ctx := context.Background()

	var snapshots store.SnapshotStore
	var db *sql.DB
	if cfg.PostgresURI != "" {
		var err error
		db, err = sql.Open("postgres", cfg.PostgresURI)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		if err := db.Ping(); err != nil {
			log.Fatalf("Database is unreachable: %v", err)
		}
		snapshots, err = store.NewPostgresStore(ctx, db)
		if err != nil {
			log.Fatalf("Failed to init snapshot store: %v", err)
		}
	} else {
		var err error
		snapshots, err = store.NewJSONStore(cfg.DataDir)
		if err != nil {
			log.Fatalf("Failed to open snapshot store: %v", err)
		}
	}

	gateway, err := gemini.NewClient(ctx, *cfg)
	if err != nil {
		log.Fatalf("Failed to init Gemini client: %v", err)
	}

	boardService := service.NewBoardService(snapshots)
	if err := boardService.Load(ctx); err != nil {
		log.Fatalf("Failed to load snapshots: %v", err)
	}

	mediaService := service.NewMediaService(*cfg)
	veilleService := service.NewVeilleService(gateway, boardService)
	campaignService := service.NewCampaignService(gateway, boardService)
	visualService := service.NewVisualService(gateway, boardService, mediaService)

	// First boot has no veille yet; fetch it in the background so startup
	// does not wait on the gateway.
	go func() {
		fetchCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := veilleService.EnsureLoaded(fetchCtx); err != nil {
			log.Printf("Initial veille fetch failed: %v", err)
		}
	}()

	redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
	client := asynq.NewClient(redisConn)
	defer client.Close()

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		BodyLimit:    100 * 1024 * 1024, // 100 MB
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return cfg.FrontendURL == "" || origin == cfg.FrontendURL
		},
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	if cfg.R2.BucketName == "" {
		app.Static("/media", filepath.Join(cfg.DataDir, "media"))
	}

	api := app.Group("/api")

	board := handlers.NewBoardHandler(boardService)
	api.Get("/dashboard", board.Summary)
	api.Get("/posts", board.ListPosts)
	api.Get("/board", board.Board)
	api.Post("/posts/status", board.UpdateStatus)
	api.Post("/posts/clear", board.ClearPosts)
	api.Get("/days", board.Days)
	api.Post("/days/toggle", board.ToggleDay)

	veille := handlers.NewVeilleHandler(veilleService)
	api.Get("/veille", veille.List)
	api.Post("/veille/refresh", veille.Refresh)

	campaign := handlers.NewCampaignHandler(campaignService, boardService)
	api.Post("/campaign/generate", campaign.Generate)

	visual := handlers.NewVisualHandler(visualService, boardService, client)
	api.Post("/posts/visual", visual.Generate)
	api.Get("/posts/:id/visual", visual.Status)
	api.Get("/posts/:id/audio", visual.Audio)

	// cron jobs
	veilleJob := job.NewVeilleRefreshJob(veilleService)

	c := cron.New()
	c.AddFunc(cfg.VeilleRefreshSpec, veilleJob.Refresh)
	c.Start()

	// queue
	queueW := queue.NewQueue(visualService)

	go func() {
		server := asynq.NewServer(redisConn, asynq.Config{
			Concurrency: 10,
		})

		mux := asynq.NewServeMux()
		mux.HandleFunc(queue.TaskTypeGenerateVisual, queueW.HandleGenerateVisualTask)

		log.Println("Starting the Asynq server...")
		if err := server.Run(mux); err != nil {
			log.Fatalf("Could not start Asynq server: %v", err)
		}
	}()

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on http://localhost:%s", cfg.Port)

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

	if db != nil {
		closeDB(db)
	}
	log.Println("Server shutdown complete.")
}
