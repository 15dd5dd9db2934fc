package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/hrflo/hrflo-backend/internal/config"
	appHTTP "github.com/hrflo/hrflo-backend/internal/handler/http"
	"github.com/hrflo/hrflo-backend/internal/pkg/cron"
	"github.com/hrflo/hrflo-backend/internal/pkg/database"
	"github.com/hrflo/hrflo-backend/internal/pkg/email"
	"github.com/hrflo/hrflo-backend/internal/pkg/jwt"
	"github.com/hrflo/hrflo-backend/internal/pkg/oauth"
	"github.com/hrflo/hrflo-backend/internal/pkg/storage"
	"github.com/hrflo/hrflo-backend/internal/repository/postgresql"
	serviceAuth "github.com/hrflo/hrflo-backend/internal/service/auth"
	dashboardService "github.com/hrflo/hrflo-backend/internal/service/dashboard"
	documentService "github.com/hrflo/hrflo-backend/internal/service/document"
	employeeService "github.com/hrflo/hrflo-backend/internal/service/employee"
	"github.com/hrflo/hrflo-backend/internal/service/file"
	jobService "github.com/hrflo/hrflo-backend/internal/service/job"
	onboardingService "github.com/hrflo/hrflo-backend/internal/service/onboarding"
	promotionService "github.com/hrflo/hrflo-backend/internal/service/promotion"
	recruitmentService "github.com/hrflo/hrflo-backend/internal/service/recruitment"
	successionService "github.com/hrflo/hrflo-backend/internal/service/succession"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var runMigrations bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().BoolVar(&runMigrations, "migrate", false, "apply pending migrations before serving")
}

func serve(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if runMigrations {
		if err := migrateWith(cfg, func(m *database.Migrator) error { return m.Up() }); err != nil {
			return err
		}
		slog.Info("Migrations applied")
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	fileStorage, err := newFileStorage(ctx, cfg.Storage)
	if err != nil {
		return err
	}

	userRepo := postgresql.NewUserRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)
	jobRepo := postgresql.NewJobRepository(db)
	candidateRepo := postgresql.NewCandidateRepository(db)
	applicationRepo := postgresql.NewApplicationRepository(db)
	onboardingRepo := postgresql.NewOnboardingRepository(db)
	promotionRepo := postgresql.NewPromotionRepository(db)
	successionRepo := postgresql.NewSuccessionRepository(db)
	documentRepo := postgresql.NewDocumentRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration, cfg.IsProduction())
	if err != nil {
		return fmt.Errorf("init jwt: %w", err)
	}

	var googleService oauth.GoogleService
	if cfg.OAuth2Google.Enabled() {
		googleService = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	} else {
		slog.Info("Google sign-in disabled")
	}

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		return fmt.Errorf("init email service: %w", err)
	}

	fileService := file.NewFileService(fileStorage)
	authService := serviceAuth.NewAuthService(db, userRepo, JWTService, JWTRepository)
	employeeSvc := employeeService.NewEmployeeService(userRepo)
	jobSvc := jobService.NewJobService(jobRepo)
	recruitmentSvc := recruitmentService.NewRecruitmentService(db, jobRepo, candidateRepo, applicationRepo, fileService)
	onboardingSvc := onboardingService.NewOnboardingService(db, userRepo, onboardingRepo, emailService, cfg.Onboarding.DefaultPassword, cfg.App.FrontendURL+"/login")
	promotionSvc := promotionService.NewPromotionService(db, userRepo, promotionRepo)
	successionSvc := successionService.NewSuccessionService(successionRepo)
	documentSvc := documentService.NewDocumentService(documentRepo, userRepo, fileService, cfg.UploadMaxBytes())
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)

	router := appHTTP.NewRouter(JWTService, appHTTP.Handlers{
		Auth:      appHTTP.NewAuthHandler(JWTService, authService, googleService, cfg.App.FrontendURL, cfg.IsProduction()),
		User:      appHTTP.NewUserHandler(authService),
		Employee:  appHTTP.NewEmployeeHandler(employeeSvc),
		Job:       appHTTP.NewJobHandler(jobSvc, recruitmentSvc, cfg.UploadMaxBytes()),
		Talent:    appHTTP.NewTalentHandler(onboardingSvc, promotionSvc, successionSvc),
		Document:  appHTTP.NewDocumentHandler(documentSvc, cfg.UploadMaxBytes()),
		Dashboard: appHTTP.NewDashboardHandler(dashboardSvc),
	}, appHTTP.RouterOptions{
		Env:            cfg.App.Env,
		Version:        version,
		AllowedOrigins: cfg.App.CORSAllowedOrigins,
		LogLevel:       parseLogLevel(cfg.App.LogLevel),
	})

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scheduler := cron.NewScheduler()
	cron.NewRecruitmentJobs(jobSvc, cfg.App.JobExpiryInterval).RegisterJobs(scheduler)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "address", server.Addr, "env", cfg.App.Env, "version", version)
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		slog.Info("Shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("Server stopped")
	return nil
}

func newFileStorage(ctx context.Context, cfg config.StorageConfig) (storage.FileStorage, error) {
	switch cfg.Type {
	case config.StorageLocal:
		local, err := storage.NewLocalStorage(cfg.BasePath)
		if err != nil {
			return nil, fmt.Errorf("init local storage: %w", err)
		}
		return local, nil
	case config.StorageMinio:
		minioStorage, err := storage.NewMinioStorage(storage.MinioConfig{
			Endpoint:  cfg.Minio.Endpoint,
			AccessKey: cfg.Minio.AccessKey,
			SecretKey: cfg.Minio.SecretKey,
			Bucket:    cfg.Minio.Bucket,
			UseSSL:    cfg.Minio.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("init minio storage: %w", err)
		}
		if err := minioStorage.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return minioStorage, nil
	default:
		return nil, fmt.Errorf("unsupported storage type %q", cfg.Type)
	}
}
