package site

import (
	"net/http"

	"github.com/samarpantrust/outreach/internal/form"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "home", s.view(r, "Home", struct {
		Stats    []stat
		Programs []program
		Updates  []update
	}{homeStats, featuredPrograms, latestUpdates}))
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "about", s.view(r, "About", struct {
		Values []titled
		Team   []person
	}{values, team}))
}

func (s *Server) handlePrograms(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "programs", s.view(r, "Programs & Impact", struct {
		Programs []program
	}{programs}))
}

func (s *Server) getInvolvedView(r *http.Request, f *form.VolunteerForm) pageView {
	v := s.view(r, "Get Involved", struct {
		Opportunities []titled
		Benefits      []titled
	}{opportunities, volunteerBenefits})
	v.Fields = f.Fields()
	v.Banner = f.Banner()
	return v
}

func (s *Server) handleGetInvolved(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "get_involved", s.getInvolvedView(r, form.NewVolunteerForm(s.subs)))
}

func (s *Server) donateView(r *http.Request, f *form.DonateForm) pageView {
	v := s.view(r, "Donate", struct {
		Examples []impactExample
	}{impactExamples})
	v.Fields = f.Fields()
	v.Banner = f.Banner()
	return v
}

func (s *Server) handleDonate(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "donate", s.donateView(r, form.NewDonateForm(s.subs)))
}

func (s *Server) contactView(r *http.Request, f *form.ContactForm) pageView {
	v := s.view(r, "Contact", struct {
		FAQs []faq
	}{faqs})
	v.Fields = f.Fields()
	v.Banner = f.Banner()
	return v
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "contact", s.contactView(r, form.NewContactForm(s.subs)))
}
