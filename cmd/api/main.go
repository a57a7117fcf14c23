package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"
	_ "time/tzdata"

	"feeds.xdoubleu.com/internal/config"
	"feeds.xdoubleu.com/internal/repositories"
	"feeds.xdoubleu.com/internal/services"
	"feeds.xdoubleu.com/pkg/feedclient"
	"github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"github.com/xdoubleu/essentia/v2/pkg/sentrytools"
)

type Application struct {
	logger      *slog.Logger
	config      config.Config
	services    *services.Services
	cache       repositories.ResponseCache
	cacheWrites sync.WaitGroup
}

//	@title			feeds
//	@version		1.0
//	@license.name	GPL-3.0
//	@Produce		json

func main() {
	cfg := config.New(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	logger := slog.New(sentrytools.NewLogHandler(cfg.Env,
		slog.NewTextHandler(os.Stdout, nil)))

	app := NewApplication(logger, cfg)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,  //nolint:mnd //no magic number
		WriteTimeout: 10 * time.Second, //nolint:mnd //no magic number
	}
	err := httptools.Serve(logger, srv, cfg.Env)
	if err != nil {
		logger.Error("failed to serve server", logging.ErrAttr(err))
	}
}

func NewApplication(logger *slog.Logger, cfg config.Config) *Application {
	return NewInner(logger, cfg, feedclient.New(logger), time.Now, time.Local)
}

// NewInner takes the upstream client and the ambient clock/zone so
// tests can pin them.
func NewInner(
	logger *slog.Logger,
	cfg config.Config,
	client feedclient.Client,
	now func() time.Time,
	loc *time.Location,
) *Application {
	repos := repositories.New(cfg.CacheMaxAge + cfg.CacheSWR)

	//nolint:exhaustruct //other fields are optional
	return &Application{
		logger:   logger,
		config:   cfg,
		services: services.New(logger, cfg, client, now, loc),
		cache:    repos.Responses,
	}
}
