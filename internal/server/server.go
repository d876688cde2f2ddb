package server

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/claude/tb3/internal/schedule"
	"github.com/claude/tb3/internal/storage"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db     *storage.DB
	log    *slog.Logger
	apiKey string
	router chi.Router

	// Schedule generation is memoized on the hash of its inputs. A single
	// entry suffices since inputs only change on profile or program edits.
	schedMu   sync.Mutex
	schedHash string
	sched     *schedule.ComputedSchedule
}

// New creates a new Server with all routes configured.
func New(db *storage.DB, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		db:     db,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Import and export move whole backups; API key required.
	s.router.Route("/api/v1/backup", func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/import", s.handleImport)
		r.Get("/export", s.handleExport)
	})

	// App API endpoints (no auth — tsnet handles access)
	s.router.Get("/api/v1/schedule", s.handleSchedule)
	s.router.Get("/api/v1/lifts", s.handleLifts)
	s.router.Get("/api/v1/percentages", s.handlePercentages)
	s.router.Get("/api/v1/plates", s.handlePlates)
	s.router.Get("/api/v1/templates", s.handleTemplates)
	s.router.Get("/api/v1/templates/{id}", s.handleGetTemplate)
	s.router.Get("/api/v1/profile", s.handleGetProfile)
	s.router.Put("/api/v1/profile", s.handlePutProfile)
	s.router.Get("/api/v1/program", s.handleGetProgram)
	s.router.Put("/api/v1/program", s.handlePutProgram)
	s.router.Delete("/api/v1/program", s.handleDeleteProgram)
	s.router.Get("/api/v1/maxtests", s.handleListMaxTests)
	s.router.Post("/api/v1/maxtests", s.handleAddMaxTest)
	s.router.Get("/api/v1/sessions", s.handleListSessions)
	s.router.Post("/api/v1/sessions", s.handleAddSession)
	s.router.Get("/api/v1/validate", s.handleValidate)
}

// invalidateSchedule drops the memoized schedule after any state mutation.
func (s *Server) invalidateSchedule() {
	s.schedMu.Lock()
	s.schedHash = ""
	s.sched = nil
	s.schedMu.Unlock()
}
