package site

import (
	"errors"
	"net/http"

	"github.com/samarpantrust/outreach/internal/pkg/httputil"
	"github.com/samarpantrust/outreach/internal/service/submission"
)

type listResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

// respondRead writes the outcome of a gateway read.
func respondRead[T any](s *Server, w http.ResponseWriter, v T, err error) {
	switch {
	case err == nil:
		httputil.OK(w, v)
	case errors.Is(err, submission.ErrNotFound):
		httputil.NotFound(w, "no submission for that email")
	case errors.Is(err, submission.ErrNotAvailable):
		httputil.SafeError(w, s.log, http.StatusServiceUnavailable, err, httputil.SafeMessage(http.StatusServiceUnavailable, err))
	default:
		httputil.SafeError(w, s.log, http.StatusBadGateway, err, httputil.SafeMessage(http.StatusBadGateway, err))
	}
}

func respondList[T any](s *Server, w http.ResponseWriter, items []T, err error) {
	if err != nil {
		respondRead[any](s, w, nil, err)
		return
	}
	respondRead(s, w, listResponse[T]{Items: items, Count: len(items)}, nil)
}

// GET /api/admin/volunteer-interests[?email=]
func (s *Server) handleAdminVolunteerInterests(w http.ResponseWriter, r *http.Request) {
	if email := r.URL.Query().Get("email"); email != "" {
		v, err := s.subs.GetVolunteerInterestByEmail(r.Context(), email)
		respondRead(s, w, v, err)
		return
	}
	items, err := s.subs.ListVolunteerInterests(r.Context())
	respondList(s, w, items, err)
}

// GET /api/admin/contact-messages[?email=]
func (s *Server) handleAdminContactMessages(w http.ResponseWriter, r *http.Request) {
	if email := r.URL.Query().Get("email"); email != "" {
		v, err := s.subs.GetContactMessageByEmail(r.Context(), email)
		respondRead(s, w, v, err)
		return
	}
	items, err := s.subs.ListContactMessages(r.Context())
	respondList(s, w, items, err)
}

// GET /api/admin/donation-pledges[?email=]
func (s *Server) handleAdminDonationPledges(w http.ResponseWriter, r *http.Request) {
	if email := r.URL.Query().Get("email"); email != "" {
		v, err := s.subs.GetDonationPledgeByEmail(r.Context(), email)
		respondRead(s, w, v, err)
		return
	}
	items, err := s.subs.ListDonationPledges(r.Context())
	respondList(s, w, items, err)
}
