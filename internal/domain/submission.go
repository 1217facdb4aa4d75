package domain

// VolunteerInterest is a get-involved form submission.
type VolunteerInterest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Availability   string `json:"availability"`
	Message        string `json:"message"`
	AreaOfInterest string `json:"areaOfInterest"`
}

// ContactMessage is a contact form submission. Subject may be empty.
type ContactMessage struct {
	Subject string `json:"subject"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// DonationPledge is a donate form submission. Amount is a whole number of
// currency units; Message is nil when the donor left it blank.
type DonationPledge struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Message *string `json:"message,omitempty"`
	Amount  uint64  `json:"amount"`
}

// MessageText returns the pledge message or "" when none was given.
func (p DonationPledge) MessageText() string {
	if p.Message == nil {
		return ""
	}
	return *p.Message
}

// Kind names the three submission flows.
type Kind string

const (
	KindVolunteerInterest Kind = "volunteer_interest"
	KindContactMessage    Kind = "contact_message"
	KindDonationPledge    Kind = "donation_pledge"
)
