package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hiringplatform/backend/auth"
	"github.com/hiringplatform/backend/handlers"
	"github.com/hiringplatform/backend/resume"
	"github.com/hiringplatform/backend/storage"
	"github.com/hiringplatform/backend/tools"
)

const shutdownTimeout = 30 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("port", "p", "", "port to listen on (overrides PORT)")
	serveCmd.Flags().Bool("migrate", false, "apply pending database migrations before serving")

	viper.BindPFlag("port", serveCmd.Flags().Lookup("port"))
	viper.BindPFlag("migrate", serveCmd.Flags().Lookup("migrate"))
	viper.BindEnv("migrate", "AUTO_MIGRATE")
}

func serve(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := newLogger()
	defer logger.Sync() //nolint:errcheck

	cfg, err := loadConfig()
	if err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return err
	}

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := storage.NewPostgresClient(ctx, cfg)
	if err != nil {
		logger.Error("failed to connect to database", zap.Error(err))
		return err
	}
	defer db.Close()
	logger.Info("database connected")

	if viper.GetBool("migrate") {
		applied, err := db.Migrate(ctx, logger.Named("migrate"))
		if err != nil {
			logger.Error("migrations failed", zap.Error(err))
			return err
		}
		logger.Info("migrations done", zap.Strings("applied", applied))
	}

	var resumes storage.ResumeStore
	if cfg.ResumeBucketName != "" {
		gcs, err := storage.NewCloudStorageClient(ctx, cfg)
		if err != nil {
			logger.Error("failed to initialize Cloud Storage client", zap.Error(err))
			return err
		}
		defer gcs.Close()
		resumes = gcs
		logger.Info("resume archiving enabled", zap.String("bucket", cfg.ResumeBucketName))
	} else {
		logger.Info("resume archiving disabled", zap.String("reason", "RESUME_BUCKET_NAME is not set"))
	}

	googleAuth, err := auth.NewGoogleAuthService(ctx, cfg)
	if err != nil {
		logger.Error("failed to initialize Google sign-in", zap.Error(err))
		return err
	}

	parser := resume.NewParser()

	router := handlers.NewRouter(handlers.RouterConfig{
		Config:     cfg,
		Store:      db,
		Resumes:    resumes,
		JWT:        auth.NewJWTService(cfg),
		GoogleAuth: googleAuth,
		Hasher:     auth.NewPasswordHasher(cfg.BcryptCost),
		Parser:     parser,
		Tools:      tools.NewScoringRegistry(parser),
		Logger:     logger,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting server", zap.String("addr", srv.Addr), zap.String("app", cfg.AppName))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}
