package app

import (
	"context"
	"errors"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/sudobility/whisperly-web/internal/platform/timeouts"
)

// Server runs the composed web handler with graceful shutdown.
type Server struct {
	httpServer *http.Server
}

// NewServer builds a server listening on addr.
func NewServer(addr string, handler http.Handler) *Server {
	return &Server{httpServer: &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}}
}

// Run serves until ctx is canceled, then drains in-flight requests within
// the shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		err := s.httpServer.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	})
	return group.Wait()
}
