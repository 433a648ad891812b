package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	config "github.com/apriori/backend/config/web"
	"github.com/apriori/backend/gateways/web/clients/elevenlabs"
	interviewClient "github.com/apriori/backend/gateways/web/clients/interview"
	ssoClient "github.com/apriori/backend/gateways/web/clients/sso"
	"github.com/apriori/backend/gateways/web/handler"
	"github.com/apriori/backend/pkg/logger"
)

func main() {
	log := logger.New(logger.Config{
		Level:      slog.LevelDebug,
		Output:     os.Stderr,
		AddSource:  true,
		JSONFormat: false,
	})

	cfg := config.MustLoad()

	sso, err := ssoClient.New(&cfg.SsoService)
	if err != nil {
		log.Error("failed to create sso client", "error", err)
		return
	}
	defer sso.Close()

	interviews, err := interviewClient.New(&cfg.InterviewService)
	if err != nil {
		log.Error("failed to create interview client", "error", err)
		return
	}
	defer interviews.Close()

	eleven := elevenlabs.New(&cfg.ElevenLabs, log)

	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.URLFormat)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	h := handler.NewHandler(cfg, sso, interviews, eleven, log)

	router.Route("/api/v1", func(apiRouter chi.Router) {
		apiRouter.Route("/auth", func(authRouter chi.Router) {
			authRouter.Post("/login", h.LoginHandler)
			authRouter.Post("/register", h.RegisterHandler)
			authRouter.Get("/me", h.MeHandler)
		})
		apiRouter.Get("/organization", h.GetOrganizationHandler)
		apiRouter.Route("/interviews", func(interviewRouter chi.Router) {
			interviewRouter.Get("/", h.ListInterviewsHandler)
			interviewRouter.Get("/{id}", h.GetInterviewHandler)
			interviewRouter.Post("/{id}/rescore", h.RescoreHandler)
			interviewRouter.Post("/outbound", h.OutboundCallHandler)
		})
		apiRouter.Get("/dashboard/stats", h.DashboardStatsHandler)
		apiRouter.Get("/health", h.HealthHandler)
	})

	log.Info("web gateway running", "port", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", cfg.Port), router); err != nil {
		log.Error("failed to http.ListenAndServe", "error", err)
		return
	}
}
