package form

// Visitor-facing texts.
const (
	MsgInvalidEmail  = "Please enter a valid email address."
	MsgInvalidAmount = "Please enter a valid donation amount."

	MsgContactRequired = "Please fill in all required fields (Name, Email, and Message)."
	MsgContactSuccess  = "Thank you for contacting us! We will respond to your message within 24-48 hours."
	MsgContactFailure  = "Failed to send your message. Please try again or contact us directly via email."

	MsgDonateRequired = "Please fill in all required fields (Name, Email, and Amount)."
	MsgDonateSuccess  = "Thank you for your pledge! We will contact you shortly with payment details."
	MsgDonateFailure  = "Failed to submit your pledge. Please try again or contact us at samarpantrust2@gmail.com."

	MsgVolunteerRequired = "Please fill in all required fields."
	MsgVolunteerSuccess  = "Thank you for your interest! We will contact you soon with volunteer opportunities."
	MsgVolunteerFailure  = "Failed to submit your interest. Please try again."
)
