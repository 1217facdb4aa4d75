package site

import (
	"context"
	"errors"
	"net/http"

	"github.com/samarpantrust/outreach/internal/form"
	"github.com/samarpantrust/outreach/internal/pkg/httputil"
	"github.com/samarpantrust/outreach/internal/pkg/logger"
)

// formResult is the JSON body of a form API response.
type formResult[F any] struct {
	Status form.Status  `json:"status"`
	Banner *form.Banner `json:"banner,omitempty"`
	Fields F            `json:"fields"`
}

// submitForm runs one submission through a fresh controller and returns
// the HTTP status for its outcome. The controller is closed on return.
func submitForm[F any](ctx context.Context, l logger.Logger, c *form.Controller[F], fields F) (int, formResult[F]) {
	defer c.Close()

	c.SetFields(fields)
	err := c.Submit(ctx)
	res := formResult[F]{Status: c.Status(), Banner: c.Banner(), Fields: c.Fields()}

	var verr *form.ValidationError
	var serr *form.SubmissionError
	switch {
	case err == nil:
		return http.StatusCreated, res
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity, res
	case errors.As(err, &serr):
		l.Warn().Str("err", logger.RedactText(serr.Err.Error())).Msg("form submission failed")
		return http.StatusBadGateway, res
	default:
		l.Error().Err(err).Msg("form submission aborted")
		return http.StatusInternalServerError, res
	}
}

// pageStatus maps a form API status onto the status of a re-rendered page.
func pageStatus(code int) int {
	if code == http.StatusCreated {
		return http.StatusOK
	}
	return code
}

func (s *Server) handleContactPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}
	c := form.NewContactForm(s.subs)
	code, _ := submitForm(r.Context(), s.log, c, form.ContactFields{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Subject: r.PostFormValue("subject"),
		Message: r.PostFormValue("message"),
	})
	s.render(w, pageStatus(code), "contact", s.contactView(r, c))
}

func (s *Server) handleDonatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}
	c := form.NewDonateForm(s.subs)
	code, _ := submitForm(r.Context(), s.log, c, form.DonateFields{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Amount:  r.PostFormValue("amount"),
		Message: r.PostFormValue("message"),
	})
	s.render(w, pageStatus(code), "donate", s.donateView(r, c))
}

func (s *Server) handleGetInvolvedPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}
	c := form.NewVolunteerForm(s.subs)
	code, _ := submitForm(r.Context(), s.log, c, form.VolunteerFields{
		Name:           r.PostFormValue("name"),
		Email:          r.PostFormValue("email"),
		AreaOfInterest: r.PostFormValue("areaOfInterest"),
		Availability:   r.PostFormValue("availability"),
		Message:        r.PostFormValue("message"),
	})
	s.render(w, pageStatus(code), "get_involved", s.getInvolvedView(r, c))
}

// POST /api/contact-messages
func (s *Server) handleContactAPI(w http.ResponseWriter, r *http.Request) {
	var fields form.ContactFields
	if !httputil.Decode(w, r, &fields) {
		return
	}
	code, res := submitForm(r.Context(), s.log, form.NewContactForm(s.subs), fields)
	httputil.JSON(w, code, res)
}

// POST /api/donation-pledges
func (s *Server) handleDonationAPI(w http.ResponseWriter, r *http.Request) {
	var fields form.DonateFields
	if !httputil.Decode(w, r, &fields) {
		return
	}
	code, res := submitForm(r.Context(), s.log, form.NewDonateForm(s.subs), fields)
	httputil.JSON(w, code, res)
}

// POST /api/volunteer-interests
func (s *Server) handleVolunteerAPI(w http.ResponseWriter, r *http.Request) {
	var fields form.VolunteerFields
	if !httputil.Decode(w, r, &fields) {
		return
	}
	code, res := submitForm(r.Context(), s.log, form.NewVolunteerForm(s.subs), fields)
	httputil.JSON(w, code, res)
}
