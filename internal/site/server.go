// Package site serves the public website: the six content pages, the three
// submission forms (as HTML posts and as a JSON API), an optional admin
// listing API and health endpoints.
package site

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/samarpantrust/outreach/internal/config"
	"github.com/samarpantrust/outreach/internal/domain"
	"github.com/samarpantrust/outreach/internal/form"
	"github.com/samarpantrust/outreach/internal/pkg/logger"
)

// Submissions is the submission gateway as seen by the site.
type Submissions interface {
	form.Gateway

	ListVolunteerInterests(ctx context.Context) ([]domain.VolunteerInterest, error)
	ListContactMessages(ctx context.Context) ([]domain.ContactMessage, error)
	ListDonationPledges(ctx context.Context) ([]domain.DonationPledge, error)
	GetVolunteerInterestByEmail(ctx context.Context, email string) (*domain.VolunteerInterest, error)
	GetContactMessageByEmail(ctx context.Context, email string) (*domain.ContactMessage, error)
	GetDonationPledgeByEmail(ctx context.Context, email string) (*domain.DonationPledge, error)

	Available() bool
}

// CacheChecker reports on the listing cache for /health.
type CacheChecker interface {
	Enabled() bool
	Ping(ctx context.Context) error
}

// Server represents the site HTTP server.
type Server struct {
	cfg     config.ServerConfig
	site    config.SiteConfig
	subs    Submissions
	cache   CacheChecker
	log     logger.Logger
	pages   pages
	router  *chi.Mux
	server  *http.Server
	started time.Time
}

// NewServer creates the site server. cc may be nil.
func NewServer(cfg *config.Config, subs Submissions, cc CacheChecker, log logger.Logger) (*Server, error) {
	p, err := parsePages()
	if err != nil {
		return nil, err
	}
	s := &Server{
		cfg:     cfg.Server,
		site:    cfg.Site,
		subs:    subs,
		cache:   cc,
		log:     log,
		pages:   p,
		started: time.Now(),
	}
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(accessLog(s.log))
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Get("/health/live", s.handleLiveness)
	r.Get("/health/ready", s.handleReadiness)

	r.Get("/", s.handleHome)
	r.Get("/about", s.handleAbout)
	r.Get("/programs", s.handlePrograms)
	r.Get("/get-involved", s.handleGetInvolved)
	r.Post("/get-involved", s.handleGetInvolvedPost)
	r.Get("/donate", s.handleDonate)
	r.Post("/donate", s.handleDonatePost)
	r.Get("/contact", s.handleContact)
	r.Post("/contact", s.handleContactPost)

	origins := s.site.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         300,
		}))

		r.Post("/volunteer-interests", s.handleVolunteerAPI)
		r.Post("/contact-messages", s.handleContactAPI)
		r.Post("/donation-pledges", s.handleDonationAPI)

		// Listings expose submitter PII; they only exist when a token is configured.
		if s.site.AdminToken != "" {
			r.Route("/admin", func(r chi.Router) {
				r.Use(s.requireAdmin)
				r.Get("/volunteer-interests", s.handleAdminVolunteerInterests)
				r.Get("/contact-messages", s.handleAdminContactMessages)
				r.Get("/donation-pledges", s.handleAdminDonationPledges)
			})
		}
	})

	return r
}

// ListenAndServe starts the HTTP server on the configured host and port.
func (s *Server) ListenAndServe() error {
	s.server = &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.router,
		ReadTimeout:       s.cfg.ReadTimeout(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      s.cfg.WriteTimeout(),
		IdleTimeout:       s.cfg.IdleTimeout(),
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Handler returns the HTTP handler for testing.
func (s *Server) Handler() http.Handler {
	return s.router
}
