package types

import "time"

// Interest identifies which offering a contact inquiry is about.
// Unknown values are rejected at the handler; an empty value defaults
// to InterestGeneral.
type Interest string

const (
	InterestGeneral      Interest = "general"
	InterestCoffeePrince Interest = "coffeeprince"
	InterestOther        Interest = "other"
)

// Valid reports whether the interest is one of the allowed values.
func (i Interest) Valid() bool {
	switch i {
	case InterestGeneral, InterestCoffeePrince, InterestOther:
		return true
	}
	return false
}

// ContactInquiry represents the request body of a contact form submission.
// Required-field enforcement happens in the handler so that a missing
// field produces the intake endpoint's own error message rather than a
// binding error.
type ContactInquiry struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	InterestedIn string `json:"interestedIn,omitempty"`
	Message      string `json:"message"`
}

// CatalogueRequest represents the request body of a catalogue download
// registration.
type CatalogueRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CatalogueReceipt echoes the accepted catalogue request back to the
// caller together with the server-side timestamp recorded for it.
type CatalogueReceipt struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}
