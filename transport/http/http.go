package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"alora/config"
	"alora/infras/otel"
	"alora/infras/postgres"
	"alora/internal/jobs"
	"alora/shared/constant"
	"alora/transport/http/middleware"
	"alora/transport/http/response"
	"alora/transport/http/router"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const (
	defaultHost       = "0.0.0.0"
	defaultPort       = "8000"
	readHeaderTimeout = 10 * time.Second
)

type HTTP struct {
	Config        *config.Config
	Router        router.Router
	AppMiddleware middleware.AppMiddleware
	Otel          otel.Otel
	DB            *postgres.Connection
	Scheduler     jobs.Scheduler

	state atomic.Int32
	mux   *chi.Mux
	once  sync.Once
}

func New(cfg *config.Config, r router.Router, appMiddleware middleware.AppMiddleware, otel otel.Otel, db *postgres.Connection, scheduler jobs.Scheduler) *HTTP {
	return &HTTP{
		Config:        cfg,
		Router:        r,
		AppMiddleware: appMiddleware,
		Otel:          otel,
		DB:            db,
		Scheduler:     scheduler,
	}
}

func (h *HTTP) Serve() {
	h.setup()

	server := &http.Server{
		Addr:              h.address(),
		Handler:           h.mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	if h.Scheduler != nil {
		if err := h.Scheduler.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start scheduler")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)

	go func() {
		log.Info().Str("address", server.Addr).Msg("Starting up HTTP server.")

		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	case <-ctx.Done():
		h.shutdown(server)
	}
}

// ServeHTTP lets the server run behind another http.Server or a serverless runtime.
func (h *HTTP) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	h.setup()
	h.mux.ServeHTTP(writer, request)
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

func (h *HTTP) setup() {
	h.once.Do(func() {
		response.SetDebug(h.Config.Server.Debug)

		h.mux = chi.NewRouter()
		h.mux.Use(
			chiMiddleware.RequestID,
			chiMiddleware.Recoverer,
			h.rejectWhenShuttingDown,
			h.AppMiddleware.Tracing,
			h.AppMiddleware.CORS(),
			h.AppMiddleware.RateLimit(),
		)

		h.Router.SetupRoutes(h.mux)
		h.state.Store(int32(ServerStateReady))
	})
}

func (h *HTTP) address() string {
	host := h.Config.Server.Host
	if host == "" {
		host = defaultHost
	}

	port := h.Config.Server.Port
	if port == "" {
		port = defaultPort
	}

	return net.JoinHostPort(host, port)
}

func (h *HTTP) rejectWhenShuttingDown(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if h.State() != ServerStateReady {
			response.WithPreparingShutdown(writer)

			return
		}

		next.ServeHTTP(writer, request)
	})
}

func (h *HTTP) shutdown(server *http.Server) {
	shutdownConfig := h.Config.Server.Shutdown
	cleanup := time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")
	} else {
		log.Info().Msg("Received SIGTERM.")
		log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

		h.state.Store(int32(ServerStateInGracePeriod))

		time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

		log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

		h.state.Store(int32(ServerStateInCleanupPeriod))
	}

	ctx, cancel := context.WithTimeout(context.Background(), max(cleanup, time.Second))
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to drain HTTP connections")
	}

	if h.Scheduler != nil {
		h.Scheduler.Stop(ctx)
	}

	if err := h.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}

	if h.DB != nil {
		if err := h.DB.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database connections")
		}
	}

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}
