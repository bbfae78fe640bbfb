package types

import "context"

// EmailSender dispatches a single outbound notification email.
// One attempt, synchronous; the caller decides whether a failure is
// fatal to the request.
type EmailSender interface {
	SendEmail(ctx context.Context, data EmailData) error
}

// EmailData describes one notification message. Template identifies the
// registered body template; TemplateData supplies its fields.
type EmailData struct {
	To           string
	Subject      string
	Template     EmailTemplate
	TemplateData map[string]interface{}
}

// EmailTemplate names one of the registered notification bodies.
type EmailTemplate string

const (
	// TemplateContactConfirmation thanks the submitter and sets the
	// response-window expectation.
	TemplateContactConfirmation EmailTemplate = "contact_confirmation"
	// TemplateContactAlert forwards the full inquiry to the operator.
	TemplateContactAlert EmailTemplate = "contact_alert"
	// TemplateCatalogueAlert notifies the operator of a catalogue
	// download registration.
	TemplateCatalogueAlert EmailTemplate = "catalogue_alert"
)
