package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"hiring-intel/internal/config"
	"hiring-intel/internal/handlers"
	"hiring-intel/internal/logger"
	"hiring-intel/internal/repositories"
	"hiring-intel/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	logger.Info().Msg("config loaded")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize database")
	}
	logger.Info().Msg("database connected")

	// Initialize repositories
	interviewRepo := repositories.NewInterviewRepository(db)
	candidateRepo := repositories.NewCandidateRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	negotiationRepo := repositories.NewNegotiationRepository(db)

	// Initialize services
	pdfParser := services.NewPDFParserService()
	fetcher := services.NewResumeFetcher(cfg.Fetcher.Timeout, cfg.Fetcher.MaxResumeSize, pdfParser)
	ranker := services.NewRankerService(fetcher, cfg.Scoring.SummaryMaxLength)
	riskAnalyzer := services.NewRiskAnalyzerService(
		interviewRepo,
		candidateRepo,
		applicationRepo,
		negotiationRepo,
	)
	logger.Info().Msg("services initialized")

	// Initialize handlers
	resumeHandler := handlers.NewResumeHandler(ranker)
	riskHandler := handlers.NewRiskHandler(riskAnalyzer)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Intelligence API",
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "resume-intelligence-engine",
		})
	})

	app.Post("/process-resume", resumeHandler.HandleProcessResume)
	app.Post("/analyze-risk", riskHandler.HandleAnalyzeRisk)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info().Msg("shutting down server")
		if err := app.Shutdown(); err != nil {
			logger.Error().Err(err).Msg("server forced to shutdown")
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info().Str("addr", addr).Msg("server starting")

	if err := app.Listen(addr); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
