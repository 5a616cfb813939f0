package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ManuWo94/verwaltungssystem-scarlethorizon-sub000/pkg/usecase"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

type Options func(*Server)

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api/cases", func(r chi.Router) {
		r.Use(callerMiddleware)

		r.Get("/", s.handleListCases)
		r.Post("/", s.handleCreateCase)

		r.Route("/{caseID}", func(r chi.Router) {
			r.Get("/", s.handleGetCase)
			r.Get("/indictment", s.handleGetIndictment)

			r.Post("/update", s.handleUpdateCase)
			r.Post("/indictment", s.handleSubmitIndictment)
			r.Post("/revision", s.handleRequestRevision)
			r.Post("/verdict", s.handleAddVerdict)
			r.Post("/revision-verdict", s.handleAddRevisionVerdict)
			r.Post("/close", s.handleCloseCase)
			r.Post("/settlement", s.handleSettlement)
			r.Post("/plea-deal", s.handleProcessPleaDeal)
			r.Post("/rename", s.handleUpdateCaseID)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK")) //nolint:errcheck // header already committed
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
