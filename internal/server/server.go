package server

import (
	"context"
	"fmt"
	"net"
	"sync"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/handler"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer

	mu       sync.Mutex
	listener net.Listener
	stopOnce sync.Once
	done     chan struct{}

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.ClientAuth, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.CallbackAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg.CallbackAddress, logger),
		done:       make(chan struct{}),
		logger:     logger,
	}, nil
}

func (s *server) Start(ctx context.Context) error {
	l, err := net.Listen("tcp", s.httpServer.server.Addr)
	if err != nil {
		return fmt.Errorf("callback listener on %s: %w", s.httpServer.server.Addr, err)
	}

	s.mu.Lock()
	s.listener = l
	s.mu.Unlock()

	s.logger.Info().Str("addr", l.Addr().String()).Msg("Launching HTTP server")
	go s.httpServer.RunServer(l)

	go func() {
		select {
		case <-ctx.Done():
			s.Stop()
		case <-s.done:
		}
	}()

	return nil
}

func (s *server) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)

		s.mu.Lock()
		started := s.listener != nil
		s.mu.Unlock()

		if !started {
			s.logger.Debug().Err(errServerNotStarted).Msg("server Stop")
			return
		}

		s.httpServer.Shutdown()
		s.logger.Info().Msg("server Shutdown gracefully")
	})
}

func (s *server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}
