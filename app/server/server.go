package server

import (
	"context"
	"net"
	"net/http"

	"blogapi/app/repositories"
	"blogapi/app/routes"
	"blogapi/config"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog/log"
)

// Server owns the process-wide datastore connection and the HTTP
// listener. Both are opened once at startup and torn down once at
// shutdown; there is no per-request connection lifecycle.
type Server struct {
	db   *badger.DB
	http *http.Server
	ln   net.Listener
}

// New opens the datastore and wires the request-handling stack. The
// listener is not bound until Start.
func New(cfg config.Config) (*Server, error) {
	db, err := repositories.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	return &Server{
		db: db,
		http: &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: routes.SetupWithDB(db),
		},
	}, nil
}

// Start binds the HTTP listener and begins serving in the background.
// It returns once the listener is bound; a bind failure closes the
// datastore and propagates.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		s.db.Close()
		return err
	}
	s.ln = ln

	log.Info().Str("addr", ln.Addr().String()).Msg("listening")

	go func() {
		if err := s.http.Serve(ln); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("http server")
		}
	}()
	return nil
}

// Addr returns the bound listener address, or "" before Start.
func (s *Server) Addr() string {
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// Stop closes the datastore connection and then shuts the HTTP server
// down, in that order.
func (s *Server) Stop(ctx context.Context) error {
	if err := s.db.Close(); err != nil {
		return err
	}
	return s.http.Shutdown(ctx)
}
