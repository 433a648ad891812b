package webhook

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	config "github.com/apriori/backend/config/webhook"
	interviewClient "github.com/apriori/backend/gateways/webhook/clients/interview"
	"github.com/apriori/backend/gateways/webhook/handler"
	"github.com/apriori/backend/pkg/signature"
)

type Server struct {
	cfg        *config.Config
	log        *slog.Logger
	interviews *interviewClient.Client
	handler    *handler.Handler
}

func New(cfg *config.Config, log *slog.Logger) (*Server, error) {
	interviews, err := interviewClient.New(&cfg.InterviewService)
	if err != nil {
		return nil, err
	}

	var verifier *signature.Verifier
	if cfg.WebhookSecret != "" {
		verifier = signature.NewVerifier(cfg.WebhookSecret)
	} else if cfg.RequireSignature {
		return nil, fmt.Errorf("signature verification required but no webhook secret configured")
	}

	h := handler.New(cfg, verifier, interviews, log)

	return &Server{
		cfg:        cfg,
		log:        log,
		interviews: interviews,
		handler:    h,
	}, nil
}

func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	s.handler.RegisterRoutes(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.log.Info("webhook gateway started", slog.String("address", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		s.log.Info("shutting down webhook gateway")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			srv.Close()
			return fmt.Errorf("failed to gracefully shutdown server: %w", err)
		}
	}

	s.interviews.Close()

	return nil
}
