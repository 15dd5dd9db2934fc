package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/hrflo/hrflo-backend/internal/domain/user"
	"github.com/hrflo/hrflo-backend/internal/handler/http/middleware"
	"github.com/hrflo/hrflo-backend/internal/pkg/jwt"
)

// Handlers groups every HTTP handler mounted by NewRouter.
type Handlers struct {
	Auth      AuthHandler
	User      UserHandler
	Employee  EmployeeHandler
	Job       JobHandler
	Talent    TalentHandler
	Document  DocumentHandler
	Dashboard DashboardHandler
}

type RouterOptions struct {
	Env            string
	Version        string
	AllowedOrigins []string
	LogLevel       slog.Level
	// Quiet disables request logging, used by tests.
	Quiet bool
}

func NewRouter(JWTService jwt.Service, h Handlers, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	if !opts.Quiet {
		logFormat := httplog.SchemaECS.Concise(opts.Env != "production")
		logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			ReplaceAttr: logFormat.ReplaceAttr,
		})).With(
			slog.String("app", "hrflo"),
			slog.String("version", opts.Version),
			slog.String("env", opts.Env),
		)

		r.Use(httplog.RequestLogger(logger, &httplog.Options{
			Level:  opts.LogLevel,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Get("/oauth/callback/google", h.Auth.OAuthCallbackGoogle)

			r.Route("/login", func(r chi.Router) {
				r.Post("/", h.Auth.Login)
				r.Get("/oauth/google", h.Auth.LoginWithGoogle)
			})
		})

		// Public careers page
		r.Get("/jobs", h.Job.ListOpenJobs)
		r.Get("/jobs/{id}", h.Job.GetJob)
		r.Post("/jobs/{id}/apply", h.Job.Apply)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Post("/auth/change-password", h.Auth.ChangePassword)

			r.With(middleware.RequirePermission(user.PermissionUserManage)).Post("/users", h.User.CreateUser)

			// Owner or HR, checked by the service
			r.Get("/employees/{id}", h.Employee.GetEmployee)
			r.Get("/managers", h.Employee.ListManagers)
			r.Route("/users/{id}/documents", func(r chi.Router) {
				r.Get("/", h.Document.ListByOwner)
				r.Post("/", h.Document.Upload)
			})
			r.Get("/documents/{id}/download", h.Document.Download)

			r.With(middleware.RequirePermission(user.PermissionEmployeeViewAll)).Get("/employees", h.Employee.ListEmployees)
			r.With(middleware.RequirePermission(user.PermissionDashboardView)).Get("/dashboard", h.Dashboard.GetDashboard)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionJobManage))
				r.Get("/jobs/all", h.Job.ListAllJobs)
				r.Post("/jobs", h.Job.CreateJob)
				r.Patch("/jobs/{id}/status", h.Job.UpdateJobStatus)
			})

			r.With(middleware.RequirePermission(user.PermissionApplicationManage)).
				Get("/jobs/{id}/applicants", h.Job.ListApplicants)
			r.With(middleware.RequirePermission(user.PermissionApplicationManage)).
				Patch("/applications/{id}/status", h.Job.UpdateApplicationStatus)

			r.Route("/onboarding", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionOnboardingManage))
				r.Get("/", h.Talent.ListOnboarding)
				r.Post("/", h.Talent.Onboard)
				r.Patch("/{userId}", h.Talent.UpdateOnboarding)
			})

			r.Route("/promotions", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionPromotionManage))
				r.Get("/", h.Talent.ListPromotions)
				r.Post("/", h.Talent.Promote)
			})

			r.Route("/succession-plans", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionSuccessionManage))
				r.Get("/", h.Talent.ListSuccessionPlans)
				r.Post("/", h.Talent.CreateSuccessionPlan)
			})
		})
	})

	return r
}
