package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/crewpay/crewpay-backend-go/internal/config"
	"github.com/crewpay/crewpay-backend-go/internal/handler/http/middleware"
	"github.com/crewpay/crewpay-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	timeClockHandler TimeClockHandler,
	payoutHandler PayoutHandler,
	settingHandler SettingHandler,
	webhookHandler WebhookHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "crewpay-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// External webhook, outside /api/v1 and outside JWT auth. The
	// project management tool calls cross-origin, so it gets its own
	// wide-open CORS policy and an explicit preflight answer.
	r.Group(func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Webhook-Secret"},
			MaxAge:         300,
		}))
		r.Post("/project-webhook", webhookHandler.ProjectWebhook)
		r.Options("/project-webhook", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
				})
			})

			r.Route("/time-entries", func(r chi.Router) {
				r.Post("/check-in", timeClockHandler.CheckIn)
				r.Post("/check-out", timeClockHandler.CheckOut)
				r.Get("/", timeClockHandler.List)
				r.Get("/today", timeClockHandler.ListToday)
				r.Get("/{id}", timeClockHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/{id}", timeClockHandler.Update)
					r.Delete("/{id}", timeClockHandler.Delete)
				})
			})

			r.Route("/payouts", func(r chi.Router) {
				r.Get("/", payoutHandler.List)
				r.Get("/{id}", payoutHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", payoutHandler.Create)
					r.Put("/{id}", payoutHandler.Update)
					r.Delete("/{id}", payoutHandler.Delete)
				})
			})

			// Admin only
			r.Route("/settings", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", settingHandler.GetBonusSettings)
				r.Put("/", settingHandler.UpdateBonusSettings)
			})
		})
	})
	return r
}
