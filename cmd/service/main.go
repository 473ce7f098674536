package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	_ "github.com/bulatminnakhmetov/webhook-client/docs"
	"github.com/bulatminnakhmetov/webhook-client/internal/config"
	echohandler "github.com/bulatminnakhmetov/webhook-client/internal/handler/echo"
	"github.com/bulatminnakhmetov/webhook-client/internal/logging"
	"github.com/bulatminnakhmetov/webhook-client/internal/metrics"
	"github.com/bulatminnakhmetov/webhook-client/internal/server"
	echoservice "github.com/bulatminnakhmetov/webhook-client/internal/service/echo"
)

// @title           Example POST API
// @version         1.0.0
// @description     A simple example of a POST endpoint that echoes arbitrary JSON
// @BasePath        /
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg)

	echoService := echoservice.NewService(logger)
	echoHandler := echohandler.NewEchoHandler(echoService)

	apiServer := &http.Server{
		Addr:    cfg.HTTPListenAddr,
		Handler: server.NewRouter(logger, echoHandler),
	}

	var adminServer *http.Server
	if cfg.AdminListenAddr != "" {
		adminServer = metrics.NewServer(cfg.AdminListenAddr)
		go serve(logger, "admin", adminServer)
	}

	go serve(logger, "api", apiServer)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	sig := <-stop

	logger.Info().Str("signal", sig.String()).Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := apiServer.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("api server forced to shutdown")
	}
	if adminServer != nil {
		if err := adminServer.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("admin server forced to shutdown")
		}
	}

	logger.Info().Msg("server gracefully stopped")
}

func serve(logger zerolog.Logger, name string, srv *http.Server) {
	logger.Info().Str("listener", name).Str("addr", srv.Addr).Msg("server is starting")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal().Err(err).Str("listener", name).Str("addr", srv.Addr).Msg("could not listen")
	}
}
