package form

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/samarpantrust/outreach/internal/domain"
)

// ContactFields are the raw inputs of the contact form.
type ContactFields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// DonateFields are the raw inputs of the donate form. Amount is kept as
// typed so that an invalid entry survives a failed submit.
type DonateFields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Amount  string `json:"amount"`
	Message string `json:"message"`
}

// VolunteerFields are the raw inputs of the get-involved form.
type VolunteerFields struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	AreaOfInterest string `json:"areaOfInterest"`
	Availability   string `json:"availability"`
	Message        string `json:"message"`
}

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

func validEmail(email string) bool {
	return strings.Contains(email, "@")
}

// ValidateContact checks f and returns nil or a *ValidationError.
func ValidateContact(f ContactFields) error {
	if blank(f.Name, f.Email, f.Message) {
		return invalid(MsgContactRequired)
	}
	if !validEmail(f.Email) {
		return invalid(MsgInvalidEmail)
	}
	return nil
}

// ValidateDonation checks f and returns the pledged amount floored to a
// whole number, or a *ValidationError.
func ValidateDonation(f DonateFields) (uint64, error) {
	if blank(f.Name, f.Email, f.Amount) {
		return 0, invalid(MsgDonateRequired)
	}
	if !validEmail(f.Email) {
		return 0, invalid(MsgInvalidEmail)
	}
	amount, ok := parseAmount(f.Amount)
	if !ok {
		return 0, invalid(MsgInvalidAmount)
	}
	return amount, nil
}

// decimalRegex admits plain decimal notation only. ParseFloat on its own
// would also take hex floats, digit separators, NaN and Inf.
var decimalRegex = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// parseAmount accepts a positive finite decimal and floors it. Values that
// do not fit in a uint64 are rejected.
func parseAmount(s string) (uint64, bool) {
	s = strings.TrimSpace(s)
	if !decimalRegex.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	v = math.Floor(v)
	if v >= math.Exp2(64) {
		return 0, false
	}
	return uint64(v), true
}

// ValidateVolunteer checks f and returns nil or a *ValidationError.
func ValidateVolunteer(f VolunteerFields) error {
	if blank(f.Name, f.Email, f.AreaOfInterest, f.Availability) {
		return invalid(MsgVolunteerRequired)
	}
	if !validEmail(f.Email) {
		return invalid(MsgInvalidEmail)
	}
	return nil
}

func contactRecord(f ContactFields) (domain.ContactMessage, error) {
	if err := ValidateContact(f); err != nil {
		return domain.ContactMessage{}, err
	}
	return domain.ContactMessage{
		Subject: f.Subject,
		Name:    f.Name,
		Email:   f.Email,
		Message: f.Message,
	}, nil
}

func donationRecord(f DonateFields) (domain.DonationPledge, error) {
	amount, err := ValidateDonation(f)
	if err != nil {
		return domain.DonationPledge{}, err
	}
	p := domain.DonationPledge{
		Name:   f.Name,
		Email:  f.Email,
		Amount: amount,
	}
	if f.Message != "" {
		msg := f.Message
		p.Message = &msg
	}
	return p, nil
}

func volunteerRecord(f VolunteerFields) (domain.VolunteerInterest, error) {
	if err := ValidateVolunteer(f); err != nil {
		return domain.VolunteerInterest{}, err
	}
	return domain.VolunteerInterest{
		Name:           f.Name,
		Email:          f.Email,
		Availability:   f.Availability,
		Message:        f.Message,
		AreaOfInterest: f.AreaOfInterest,
	}, nil
}
