// Package httpapi exposes the conversion service over HTTP. It is the
// stateless front end: a request carries transliteration text, the
// response carries the converted output, and nothing persists between
// requests.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/tpgillam/cuneifyplus/internal/core/domain"
	"github.com/tpgillam/cuneifyplus/internal/core/ports/driving"
	"github.com/tpgillam/cuneifyplus/internal/logger"
)

const (
	// maxBodyBytes bounds the request body; a tablet transliteration is
	// tiny, anything larger is abuse.
	maxBodyBytes = 1 << 20

	// requestRate throttles conversion requests per second.
	requestRate = 20

	// requestBurst is the rate limiter burst size.
	requestBurst = 40
)

// Server is the HTTP front end for the conversion service.
type Server struct {
	mu       sync.Mutex
	renderer driving.CuneifyService
	limiter  *rate.Limiter
	port     int
	server   *http.Server
	listener net.Listener
}

// NewServer creates a server for the given renderer. If port is 0, a
// random available port is chosen at Start.
func NewServer(port int, renderer driving.CuneifyService) *Server {
	return &Server{
		renderer: renderer,
		limiter:  rate.NewLimiter(rate.Limit(requestRate), requestBurst),
		port:     port,
	}
}

// Handler returns the route table. Exposed for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /cuneify", s.handleCuneify)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	return mux
}

// Start starts the server on the configured port.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.server = &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	addr := fmt.Sprintf("127.0.0.1:%d", s.port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.listener = listener

	// Store the actual port (important when port was 0)
	if tcpAddr, ok := listener.Addr().(*net.TCPAddr); ok {
		s.port = tcpAddr.Port
	}

	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Warn("http server: %v", err)
		}
	}()

	return nil
}

// Stop shuts down the server gracefully.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.server.Shutdown(ctx)
	}
	return nil
}

// Port returns the port the server is listening on.
func (s *Server) Port() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.port
}

// handleCuneify converts the transliteration in the request body and
// writes the result as UTF-8 plain text. Query parameters: atf=1
// selects ATF mode, show=1 adds the aligned transliteration rows, and
// unrecognised overrides the indicator for unmapped signs.
func (s *Server) handleCuneify(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.New().String()

	if !s.limiter.Allow() {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "reading request body", http.StatusBadRequest)
		return
	}

	// A form submission carries the text in the "text" field; anything
	// else is treated as the raw transliteration.
	text := string(body)
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if form, err := url.ParseQuery(text); err == nil {
			text = form.Get("text")
		}
	}

	opts := domain.DefaultRenderOptions()
	opts.ATF = queryFlag(r, "atf")
	opts.ShowTransliteration = queryFlag(r, "show")
	if v := r.URL.Query().Get("unrecognised"); v != "" {
		opts.UnrecognisedIndicator = v
	}

	logger.Debug("request %s: %d bytes, atf=%v", reqID, len(text), opts.ATF)

	res, err := s.renderer.Render(r.Context(), strings.NewReader(text), opts)
	if err != nil {
		logger.Warn("request %s failed: %v", reqID, err)
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, domain.ErrInvalidEncoding):
			status = http.StatusBadRequest
		case errors.Is(err, domain.ErrConverterUnavailable):
			status = http.StatusServiceUnavailable
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Request-ID", reqID)
	for _, sign := range res.Unrecognised {
		w.Header().Add("X-Unrecognised-Sign", sign)
	}
	_, _ = io.WriteString(w, res.Output)
}

// handleHealthz reports liveness.
func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok\n")
}

// queryFlag reads a boolean query parameter ("1", "true" or "yes").
func queryFlag(r *http.Request, name string) bool {
	switch strings.ToLower(r.URL.Query().Get(name)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
