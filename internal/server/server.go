// Package server exposes the theorem checkers as a small JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/firebird-suite/lemma/internal/algebra"
	"github.com/simonhull/firebird-suite/lemma/internal/locfree"
	"github.com/simonhull/firebird-suite/lemma/internal/logger"
)

const shutdownTimeout = 5 * time.Second

// Options configures a Server.
type Options struct {
	Addr         string
	Ring         func() *algebra.NoetherianRing
	PrimesModule string
	Logger       logger.Logger
}

// Server serves the API until its context is cancelled.
type Server struct {
	addr string
	http *http.Server
	log  logger.Logger
}

// New creates a server. Ring is called once per /verify request so handlers
// never share a ring value; nil means the built-in ring.
func New(opts Options) *Server {
	log := opts.Logger
	if log == nil {
		log = logger.NewSilentLogger()
	}
	ring := opts.Ring
	if ring == nil {
		ring = locfree.DefaultRing
	}

	h := &handler{
		ring:         ring,
		primesModule: opts.PrimesModule,
		log:          log,
		now:          time.Now,
	}
	mux := http.NewServeMux()
	h.routes(mux)

	return &Server{
		addr: opts.Addr,
		http: &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: log,
	}
}

// Handler returns the server's routes.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// ListenAndServe listens on the configured address and serves until ctx is
// done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully. The listener is closed on return.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("serving", logger.F("addr", ln.Addr().String()))
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		s.log.Info("shutting down")
		if err := s.http.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return nil
	})

	return g.Wait()
}
