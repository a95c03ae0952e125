package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/techcreator/ems-backend-go/internal/config"
	"github.com/techcreator/ems-backend-go/internal/handler/http/middleware"
)

func NewRouter(
	cfg *config.Config,
	notifHandler NotificationHandler,
	slackHandler SlackHandler,
	emailHandler EmailHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ems-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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

	r.Route("/api/v1", func(r chi.Router) {
		// Slack event callbacks must stay reachable for Slack's verification
		// handshake regardless of auth config.
		r.Post("/slack/events", slackHandler.Events)

		r.Group(func(r chi.Router) {
			// Bearer-token guard, active only when a secret is configured.
			// Tokens are issued by the external identity provider.
			if cfg.JWT.Secret != "" {
				ja := jwtauth.New("HS256", []byte(cfg.JWT.Secret), nil)
				r.Use(jwtauth.Verifier(ja))
				r.Use(middleware.AuthRequired(ja))
			}

			r.Route("/notifications", func(r chi.Router) {
				r.Post("/broadcast", notifHandler.Broadcast)
				r.Post("/send", notifHandler.Send)
			})

			r.Route("/slack", func(r chi.Router) {
				r.Post("/approval", slackHandler.Approval)
				r.Post("/rejection", slackHandler.Rejection)
				r.Post("/daily-log", slackHandler.DailyLog)
				r.Post("/messages", slackHandler.Messages)
			})

			r.Route("/emails", func(r chi.Router) {
				r.Post("/leave-request", emailHandler.LeaveRequest)
				r.Post("/approval", emailHandler.LeaveApproval)
				r.Post("/rejection", emailHandler.LeaveRejection)
				r.Post("/alert", emailHandler.Alert)
			})

			r.Route("/reports/attendance", func(r chi.Router) {
				r.Post("/daily", reportHandler.Daily)
				r.Post("/weekly", reportHandler.Weekly)
				r.Post("/monthly", reportHandler.Monthly)
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	return r
}
