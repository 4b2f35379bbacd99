package httphandler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPServerRunClose(t *testing.T) {
	s := NewHTTPServer("127.0.0.1:0", http.NewServeMux(), ServerTimeouts{})

	runCtx, stop := context.WithCancel(t.Context())
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Run(stop)
	}()

	closeCtx, cancel := context.WithTimeout(t.Context(), time.Second)
	defer cancel()
	s.Close(closeCtx)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Close")
	}
	assert.ErrorIs(t, runCtx.Err(), context.Canceled)
}

func TestHTTPServerHandlerTimeout(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	})
	s := NewHTTPServer(":0", slow, ServerTimeouts{Handler: 10 * time.Millisecond})

	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":"unavailable"}`, rec.Body.String())
}
