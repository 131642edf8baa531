// Package server provides the optional HTTP surface: a JSON multiplication
// endpoint, a health check, and Prometheus metrics.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	apperrors "github.com/agbru/polymul/internal/errors"
	"github.com/agbru/polymul/internal/logging"
	"github.com/agbru/polymul/internal/poly"
	"github.com/agbru/polymul/internal/transform"
)

// Request size and timing limits. The multiplication endpoint is CPU-bound,
// so the limits are conservative: a request larger than MaxRequestBytes would
// decode to operands the accelerator backend cannot finish interactively.
const (
	MaxRequestBytes   = 1 << 20
	ReadHeaderTimeout = 5 * time.Second
	ShutdownTimeout   = 5 * time.Second
)

// Server serves polynomial multiplication over HTTP.
type Server struct {
	addr    string
	factory transform.Factory
	logger  logging.Logger
	metrics *Metrics
}

// New creates a Server listening on addr once started.
//
// Parameters:
//   - addr: The listen address (host:port).
//   - factory: The transform factory providing the backends.
//   - logger: The structured logger.
//
// Returns:
//   - *Server: The configured server.
func New(addr string, factory transform.Factory, logger logging.Logger) *Server {
	return &Server{addr: addr, factory: factory, logger: logger, metrics: NewMetrics()}
}

// Handler returns the HTTP handler with all routes registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/multiply", s.handleMultiply)
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.HandleFunc("/metrics", s.metrics.WritePrometheus)
	return mux
}

// ListenAndServe runs the server until ctx is canceled, then shuts down
// gracefully within ShutdownTimeout.
//
// Parameters:
//   - ctx: Cancellation triggers graceful shutdown.
//
// Returns:
//   - error: The listener error, or nil after a clean shutdown.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", logging.String("addr", s.addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return apperrors.WrapError(err, "http server shutdown")
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return apperrors.WrapError(err, "http server")
	}
}

// multiplyRequest is the JSON body of POST /multiply.
type multiplyRequest struct {
	// P and Q are operand coefficient sequences, constant term first.
	P []int64 `json:"p"`
	Q []int64 `json:"q"`
	// Backend selects the transform backend; defaults to "iterative".
	Backend string `json:"backend,omitempty"`
	// Power, when ≥ 1, computes P^Power and ignores Q.
	Power uint `json:"power,omitempty"`
	// CheckPrecision enables the rounding diagnostic.
	CheckPrecision bool `json:"check_precision,omitempty"`
}

// multiplyResponse is the JSON body of a successful multiplication.
type multiplyResponse struct {
	Result     []int64 `json:"result"`
	Backend    string  `json:"backend"`
	DurationMs float64 `json:"duration_ms"`
}

// errorResponse is the JSON body of a failed request.
type errorResponse struct {
	Error string `json:"error"`
}

// handleMultiply serves POST /multiply.
func (s *Server) handleMultiply(w http.ResponseWriter, r *http.Request) {
	s.metrics.IncrementActiveRequests()
	defer s.metrics.DecrementActiveRequests()

	if r.Method != http.MethodPost {
		s.writeError(w, "multiply", http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBytes)
	var req multiplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "multiply", http.StatusBadRequest, apperrors.WrapError(err, "decoding request"))
		return
	}

	backendName := req.Backend
	if backendName == "" {
		backendName = transform.BackendIterative
	}
	backend, err := s.factory.Get(backendName)
	if err != nil {
		s.writeError(w, "multiply", http.StatusBadRequest, err)
		return
	}

	opts := poly.Options{Backend: backend, CheckPrecision: req.CheckPrecision}
	start := time.Now()
	var result []int64
	if req.Power >= 1 {
		result, err = poly.Power(r.Context(), req.P, req.Power, opts)
	} else {
		result, err = poly.Multiply(r.Context(), req.P, req.Q, opts)
	}
	duration := time.Since(start)

	if err != nil {
		status := http.StatusInternalServerError
		var validationErr apperrors.ValidationError
		if errors.As(err, &validationErr) {
			status = http.StatusBadRequest
		}
		var precisionErr apperrors.PrecisionError
		if errors.As(err, &precisionErr) {
			status = http.StatusUnprocessableEntity
		}
		s.writeError(w, "multiply", status, err)
		return
	}

	s.metrics.ObserveMultiplication(backendName, duration)
	s.metrics.CountRequest("multiply", strconv.Itoa(http.StatusOK))
	s.logger.Info("multiplication served",
		logging.String("backend", backendName),
		logging.Int("result_len", len(result)),
		logging.Duration("duration", duration))

	s.writeJSON(w, http.StatusOK, multiplyResponse{
		Result:     result,
		Backend:    backendName,
		DurationMs: float64(duration.Microseconds()) / 1000,
	})
}

// handleHealthz serves GET /healthz.
func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	s.metrics.CountRequest("healthz", strconv.Itoa(http.StatusOK))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// writeError logs the failure, counts it, and writes the JSON error body.
func (s *Server) writeError(w http.ResponseWriter, endpoint string, status int, err error) {
	s.metrics.CountRequest(endpoint, strconv.Itoa(status))
	s.logger.Warn("request failed",
		logging.String("endpoint", endpoint),
		logging.Int("status", status),
		logging.Err(err))
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

// writeJSON serializes v with the given status code.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response", logging.Err(err))
	}
}
