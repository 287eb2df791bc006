// Package app wires the sqlrepo sample aggregate (the "recipe" domain) into
// a runnable HTTP service: configuration, a Postgres-backed connection, the
// generic repository core, and a thin chi adapter.
package app

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/bugielektrik/sqlrepo/internal/config"
	handlerhttp "github.com/bugielektrik/sqlrepo/internal/handler/http"
	"github.com/bugielektrik/sqlrepo/internal/repository"
	"github.com/bugielektrik/sqlrepo/pkg/log"
	"github.com/bugielektrik/sqlrepo/pkg/server"
	"github.com/bugielektrik/sqlrepo/pkg/server/router"
)

// Run initializes the whole application.
func Run() {
	logger := log.New()

	configs, err := config.New()
	if err != nil {
		logger.Error("ERR_INIT_CONFIG", zap.Error(err))
		return
	}

	repositories, err := repository.New(
		repository.WithPostgresRepository(configs.POSTGRES.DSN),
		repository.WithRecipeRepository(configs.REPOSITORY),
	)
	if err != nil {
		logger.Error("ERR_INIT_REPOSITORY", zap.Error(err))
		return
	}
	defer repositories.Close()

	r := router.New()
	r.Mount("/recipes", handlerhttp.NewRecipeHandler(repositories.Recipe).Routes())

	srv, err := server.New(server.WithHTTPServer(r, configs.APP.Port))
	if err != nil {
		logger.Error("ERR_INIT_SERVER", zap.Error(err))
		return
	}

	if err = srv.Run(logger); err != nil {
		logger.Error("ERR_RUN_SERVER", zap.Error(err))
		return
	}

	logger.Info("server started", zap.String("port", configs.APP.Port))

	var wait time.Duration
	flag.DurationVar(&wait, "graceful-timeout", time.Second*15, "the duration for which the server gracefully waits for existing connections to finish - e.g. 15s or 1m")
	flag.Parse()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	fmt.Println("Gracefully shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()

	if err = srv.Stop(ctx); err != nil && err != http.ErrServerClosed {
		logger.Error("ERR_STOP_SERVER", zap.Error(err))
	}

	fmt.Println("Server was successfully shut down.")
}
