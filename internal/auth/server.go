package auth

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/manav03panchal/lifedash/internal/config"
	"github.com/manav03panchal/lifedash/internal/errors"
	"github.com/manav03panchal/lifedash/internal/logging"
	"github.com/manav03panchal/lifedash/internal/model"
)

// Routes served by the auth server.
const (
	LoginPath  = "/api/auth/login"
	HealthPath = "/healthz"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// maxBodyBytes bounds the login request body.
const maxBodyBytes = 1 << 20

// LoginResponse is the success body of the login endpoint.
type LoginResponse struct {
	Success bool       `json:"success"`
	Token   string     `json:"token"`
	User    model.User `json:"user"`
}

// ErrorResponse is the failure body of every endpoint.
type ErrorResponse struct {
	Message string `json:"message"`
}

// Handler serves the login and health endpoints.
type Handler struct {
	gate   *Gate
	health *Health
	mux    *http.ServeMux
}

// NewHandler creates the HTTP handler for gate.
func NewHandler(gate *Gate, health *Health) *Handler {
	h := &Handler{gate: gate, health: health, mux: http.NewServeMux()}
	h.mux.HandleFunc(LoginPath, h.handleLogin)
	h.mux.HandleFunc(HealthPath, h.handleHealth)
	return h
}

// ServeHTTP implements http.Handler, wrapping every route in request logging.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	withRequestLogging(h.mux).ServeHTTP(w, r)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Message: "Method not allowed"})
		return
	}

	ctx := r.Context()
	session, err := h.login(ctx, w, r)
	h.health.Record(err)
	if err != nil {
		status := errors.HTTPStatus(err)
		if status >= http.StatusInternalServerError {
			logging.FromContext(ctx).Error("login failed",
				logging.KeyError, err,
				logging.KeyCause, errors.RootCause(err))
		}
		writeJSON(w, status, ErrorResponse{Message: errors.PublicMessage(err)})
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		Success: true,
		Token:   session.Token,
		User:    session.User,
	})
}

// login decodes the body and runs the gate. A body that is not exactly one
// JSON object is an internal error, reported after the same delay as any
// other call.
func (h *Handler) login(ctx context.Context, w http.ResponseWriter, r *http.Request) (*model.Session, error) {
	creds, err := decodeCredentials(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		if perr := h.gate.Pause(ctx); perr != nil {
			return nil, errors.Internal("auth.login", perr)
		}
		return nil, errors.Internal("auth.login", errors.Join(errors.ErrMalformedRequest, err))
	}
	return h.gate.Login(ctx, *creds)
}

// decodeCredentials reads a single credentials object from body.
func decodeCredentials(body io.Reader) (*Credentials, error) {
	var creds *Credentials
	dec := json.NewDecoder(body)
	if err := dec.Decode(&creds); err != nil {
		return nil, err
	}
	if creds == nil {
		return nil, errors.New("body is null")
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, errors.New("unexpected data after credentials")
	}
	return creds, nil
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Message: "Method not allowed"})
		return
	}
	writeJSON(w, http.StatusOK, h.health.Check())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Warn("failed to write response", logging.KeyError, err)
	}
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// withRequestLogging tags each request with an id and logs its outcome.
func withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > 64 {
			id = logging.GenerateRequestID()
		}
		w.Header().Set(RequestIDHeader, id)

		ctx := logging.WithRequestID(r.Context(), id)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r.WithContext(ctx))

		logging.FromContext(ctx).Info("request",
			logging.KeyMethod, r.Method,
			logging.KeyPath, r.URL.Path,
			logging.KeyStatus, rec.status,
			logging.KeyDuration, time.Since(start).Milliseconds(),
		)
	})
}

// Server runs the auth endpoint over HTTP.
type Server struct {
	srv    *http.Server
	health *Health
}

// NewServer creates a server for the given configuration.
func NewServer(cfg config.RuntimeConfig, version string) *Server {
	health := NewHealth(version)
	gate := NewGate(cfg.Auth.Delay)

	writeTimeout := cfg.Server.WriteTimeout
	if writeTimeout <= gate.Delay() {
		writeTimeout = gate.Delay() + 5*time.Second
	}

	return &Server{
		srv: &http.Server{
			Addr:              cfg.Server.Addr,
			Handler:           NewHandler(gate, health),
			ReadTimeout:       cfg.Server.ReadTimeout,
			ReadHeaderTimeout: cfg.Server.ReadTimeout,
			WriteTimeout:      writeTimeout,
		},
		health: health,
	}
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.srv.Addr
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully, letting in-flight logins finish.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.srv.Serve(ln)
	}()

	logging.Info("auth server listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.NewSystemErrorWithOp("auth.Serve", "server stopped", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.srv.WriteTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return errors.NewSystemErrorWithOp("auth.Serve", "shutdown failed", err)
	}
	logging.Info("auth server stopped", "uptime", s.health.Uptime().Round(time.Second).String())
	return nil
}

// ListenAndServe listens on the configured address and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return errors.NewSystemErrorWithOp("auth.ListenAndServe", "failed to listen on "+s.srv.Addr, err)
	}
	return s.Serve(ctx, ln)
}
