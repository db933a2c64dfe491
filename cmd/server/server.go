package main

import (
	"time"

	"github.com/JaimeStill/movies-api/internal/config"
	"github.com/JaimeStill/movies-api/internal/infrastructure"
	"github.com/JaimeStill/movies-api/pkg/module"
)

// Server coordinates the lifecycle of all subsystems.
type Server struct {
	infra   *infrastructure.Infrastructure
	modules *Modules
	router  *module.Router
	http    *httpServer
}

// NewServer creates and initializes the service with all subsystems.
// Infrastructure is started here because the SQLite store migrates its
// schema while the modules are built.
func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	if err := infra.Start(); err != nil {
		return nil, err
	}

	modules, err := NewModules(infra, cfg)
	if err != nil {
		infra.Lifecycle.Shutdown(cfg.ShutdownTimeoutDuration())
		return nil, err
	}

	router := buildRouter(infra.Lifecycle)
	modules.Mount(router)

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"store", cfg.Store.Backend,
	)

	return &Server{
		infra:   infra,
		modules: modules,
		router:  router,
		http:    newHTTPServer(&cfg.Server, router, infra.Logger),
	}, nil
}

// Start begins serving HTTP and returns once the listener is bound.
func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")
	}()

	return nil
}

// Shutdown gracefully stops all subsystems within timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}
