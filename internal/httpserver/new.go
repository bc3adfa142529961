package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"giftlist/internal/repository"
	"giftlist/pkg/events"
	"giftlist/pkg/imagestore"
	"giftlist/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	repo            repository.Repository
	images          imagestore.Provider
	events          events.Recorder
	maxItemsPerList int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Repository      repository.Repository
	Images          imagestore.Provider
	Events          events.Recorder
	MaxItemsPerList int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		repo:            cfg.Repository,
		images:          cfg.Images,
		events:          cfg.Events,
		maxItemsPerList: cfg.MaxItemsPerList,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.repo == nil {
		return errors.New("repository is required")
	}
	return nil
}
