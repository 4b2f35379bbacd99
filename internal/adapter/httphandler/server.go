package httphandler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

type ServerTimeouts struct {
	Handler    time.Duration
	ReadHeader time.Duration
	Idle       time.Duration
}

type HTTPServer struct {
	httpServer *http.Server
}

func NewHTTPServer(
	addr string, handler http.Handler, timeouts ServerTimeouts,
) HTTPServer {
	if timeouts.Handler > 0 {
		handler = http.TimeoutHandler(handler, timeouts.Handler, `{"error":"unavailable"}`)
	}
	s := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
		IdleTimeout:       timeouts.Idle,
	}
	return HTTPServer{s}
}

// Run blocks until the server stops and then calls stopFn.
func (s HTTPServer) Run(stopFn context.CancelFunc) {
	const op = "HTTPServer.Run"
	log := slog.With("op", op)

	defer stopFn()

	log.Info("listening", "addr", s.httpServer.Addr)
	err := s.httpServer.ListenAndServe()
	if err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			return
		}
		log.Error("unexpected server shutdown", "err", err)
	}
}

func (s HTTPServer) Close(ctx context.Context) {
	const op = "HTTPServer.Close"
	log := slog.With("op", op)

	log.Info("closing http server...")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		log.Error("failed to shutdown gracefully", "err", err)
	}
	log.Info("http server is closed")
}
