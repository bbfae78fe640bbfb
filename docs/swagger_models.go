package docs

// This file contains models used by Swagger documentation
// It doesn't affect the actual application logic, just documentation

// SubmissionSuccessResponse is used for Swagger documentation
// @Description Successful intake submission
type SubmissionSuccessResponse struct {
	// Whether the submission was accepted
	Success bool `json:"success" example:"true"`

	// Human-readable confirmation message
	Message string `json:"message" example:"Your message has been sent successfully. We will get back to you soon!"`
}

// CatalogueSuccessResponse is used for Swagger documentation
// @Description Successful catalogue registration with receipt data
type CatalogueSuccessResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Catalogue download request received. Check your email for confirmation."`

	// Echo of the registered request with a server timestamp
	Data CatalogueReceiptDoc `json:"data"`
}

// CatalogueReceiptDoc is used for Swagger documentation
type CatalogueReceiptDoc struct {
	Name      string `json:"name" example:"Asha Rao"`
	Email     string `json:"email" example:"asha@example.com"`
	Timestamp string `json:"timestamp" example:"2025-03-14T09:26:53Z"`
}

// ErrorResponseDoc is used for Swagger documentation
// @Description Error body produced by the error middleware
type ErrorResponseDoc struct {
	// Machine-readable error category
	Type string `json:"type" example:"VALIDATION_ERROR"`

	// Human-readable error message
	Error string `json:"error" example:"Missing required fields"`

	// HTTP status code as a string
	Code string `json:"code" example:"400"`

	// Optional extra detail, present for validation errors
	Details string `json:"details,omitempty" example:"name, email, phone and message are required"`
}
