package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"data-recon/core/config"
	"data-recon/core/database"
	"data-recon/core/loader"
	"data-recon/core/logger"
	"data-recon/core/middleware/auth"
	"data-recon/core/middleware/requestid"
	"data-recon/core/storage"

	"data-recon/feature/recon"
	"data-recon/feature/report"
	"data-recon/feature/source"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "data-recon/docs/swagger"
)

// @title Data Reconciliation API
// @version 1.0
// @description API for comparing datasets across files, databases, and object storage.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the reconciliation server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (Optional)
		// Table and query sources dial on demand; this connection only
		// feeds the health probe.
		var db database.Conn
		if conn, err := database.Connect(cmd.Context(), cfg.Database, logg); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			defer db.Close()
			logg.Info("Connected to database", zap.String("driver", string(cfg.Database.Driver)))
		}

		// 3. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
			BodyLimit:             cfg.Server.BodyLimitBytes(),
		})

		// 3. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 4. Initialize Source Loader and Report Writer
		sources := source.NewLoader(source.Options{
			Store:    store,
			Bucket:   cfg.Storage.Bucket,
			Database: cfg.Database,
		}, logg)

		reports, err := report.NewWriter(report.Options{
			Dir:    cfg.Reports.Dir,
			Prefix: cfg.Reports.Prefix,
			Store:  store,
			Bucket: cfg.Storage.Bucket,
			Upload: cfg.Reports.Upload,
		}, logg)
		if err != nil {
			logg.Fatal("Failed to create report writer", zap.Error(err))
		}

		// 5. Initialize Feature Loader
		mgr := loader.NewManager(logg)

		// Register Features
		mgr.Register(recon.NewFeature(sources, reports, recon.Probes{
			DB:     db,
			Store:  store,
			Bucket: cfg.Storage.Bucket,
		}, logg))

		// Middleware Registration
		// 1. Request ID (Must be first to trace everything)
		app.Use(requestid.New())

		// 2. Logging Middleware (Custom to use Zap + Request ID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRequestID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			// Log error if happened
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
