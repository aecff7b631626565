package server

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/stoq-client/internal/config"
	"github.com/MKhiriev/stoq-client/internal/discovery"
	"github.com/MKhiriev/stoq-client/internal/handler"
	"github.com/MKhiriev/stoq-client/internal/logger"
	"github.com/MKhiriev/stoq-client/internal/workers"
)

type server struct {
	httpServer *httpServer
	address    string

	instance    string
	serviceType string
	domain      string
	properties  map[string]string

	mu     sync.Mutex
	cancel context.CancelFunc

	logger *logger.Logger
}

// NewServer prepares the publisher. The announcement carries version as a
// TXT property.
func NewServer(handlers *handler.Handlers, cfg config.PublisherConfig, version string, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.Address == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer:  newHTTPServer(handlers.HTTP.Init(), cfg.Address, logger),
		address:     cfg.Address,
		instance:    cfg.Instance,
		serviceType: cfg.ServiceType,
		domain:      cfg.Domain,
		properties:  map[string]string{"version": version},
		logger:      logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
		return
	}
	s.logger.Info().Msg("server Shutdown gracefully")
}

func (s *server) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
}

func (s *server) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.address, err)
	}
	s.logger.Info().Str("address", listener.Addr().String()).Msg("Launching HTTP server")

	group := workers.New(workers.Func(func(ctx context.Context) error {
		return s.httpServer.serve(ctx, listener)
	}))

	if s.instance != "" {
		port := listener.Addr().(*net.TCPAddr).Port
		group.Add(discovery.NewAnnouncer(s.instance, s.serviceType, s.domain, port, s.properties, s.logger))
	}

	return group.Run(ctx)
}
