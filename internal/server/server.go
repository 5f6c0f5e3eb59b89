// Package server implements the Caesar cipher HTTP API.
package server

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/caesar/internal/store"
	"github.com/verte-zerg/caesar/pkg/logger"
)

// Service identity reported by the health endpoint.
const (
	ServiceName = "Caesar Cipher Server"
	Version     = "1.0.0"
)

// Config holds HTTP server settings.
type Config struct {
	Host      string
	Port      int
	StaticDir string
}

// Server serves the cipher API and the static web page.
type Server struct {
	cfg Config
	log *logger.Logger
	st  *store.Store
	mux *http.ServeMux
}

// New constructs a Server. The store may be nil, in which case operations
// are not recorded.
func New(cfg Config, log *logger.Logger, st *store.Store) *Server {
	s := &Server{
		cfg: cfg,
		log: log,
		st:  st,
		mux: http.NewServeMux(),
	}
	s.mux.HandleFunc("/api/caesar-cipher", s.handleCipher)
	s.mux.HandleFunc("/api/analyze", s.handleAnalyze)
	s.mux.HandleFunc("/api/brute-force", s.handleBruteForce)
	s.mux.HandleFunc("/api/health", s.handleHealth)
	s.mux.HandleFunc("/api/", s.handleNotFound)
	s.mux.HandleFunc("/", s.handleStatic)
	return s
}

// Handler returns the full middleware-wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.withRecover(s.withCORS(s.withLogging(s.mux)))
}

// Start runs the HTTP server until it fails.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.log.Info().Str("addr", addr).Msg("server listening")
	return srv.ListenAndServe()
}

func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	name := strings.TrimPrefix(filepath.Clean(r.URL.Path), "/")
	if name == "" || name == "." {
		name = "index.html"
	}
	path := filepath.Join(s.cfg.StaticDir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		writeError(w, http.StatusNotFound, "Endpoint not found")
		return
	}
	http.ServeFile(w, r, path)
}

func (s *Server) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, "Endpoint not found")
}
