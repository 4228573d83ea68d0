package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	forecasthandlers "github.com/bev-tools/guidance/pkg/handlers/forecast"
	guidancemiddleware "github.com/bev-tools/guidance/pkg/server/middleware"
	guidancestore "github.com/bev-tools/guidance/pkg/store/guidance"
)

type Dependencies struct {
	Definitions *guidancestore.Store
	Logger      zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// ConfigureRouter wires the forecast handlers onto a chi router.
func ConfigureRouter(config Config) *chi.Mux {
	handler := forecasthandlers.NewHandler(config.Dependencies.Definitions)

	router := chi.NewRouter()
	router.Use(guidancemiddleware.Logger(&config.Dependencies.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/forecast/aggregate", handler.Aggregate)
		r.Post("/forecast/rollup", handler.RollUp)

		r.Route("/guidance/{context}", func(r chi.Router) {
			r.Get("/definitions", handler.ListDefinitions)
			r.Post("/definitions", handler.AddDefinition)
			r.Delete("/definitions/{id}", handler.DeleteDefinition)
			r.Post("/evaluate", handler.Evaluate)
		})
	})

	return router
}

type WebAPI struct {
	logger *zerolog.Logger
	server *http.Server
	config Config
}

func NewWebAPI(config Config) *WebAPI {
	router := ConfigureRouter(config)
	return &WebAPI{
		logger: &config.Dependencies.Logger,
		config: config,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

// Start serves until an error occurs or SIGINT/SIGTERM arrives, then shuts
// down gracefully within the configured timeout.
func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		timeout := w.config.ShutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := w.server.Shutdown(ctx); err != nil {
			_ = w.server.Close()
			return err
		}
		return nil
	}
}
