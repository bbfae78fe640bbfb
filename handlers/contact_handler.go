package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/motherproperties/website-backend/config"
	"github.com/motherproperties/website-backend/errors"
	"github.com/motherproperties/website-backend/logger"
	"github.com/motherproperties/website-backend/types"
)

// ContactHandler handles contact inquiry intake.
type ContactHandler struct {
	emailSvc types.EmailSender
	cfg      *config.Config
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(emailSvc types.EmailSender, cfg *config.Config) *ContactHandler {
	return &ContactHandler{emailSvc: emailSvc, cfg: cfg}
}

// SubmitContact godoc
// @Summary      Submit a contact inquiry
// @Description  Accepts a contact form submission and notifies the submitter and the operator by email
// @Tags         intake
// @Accept       json
// @Produce      json
// @Param        body  body      types.ContactInquiry  true  "Contact inquiry payload"
// @Success      200   {object}  types.SubmissionResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      429   {object}  types.ErrorResponse
// @Failure      500   {object}  types.ErrorResponse
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req types.ContactInquiry
	if !bindJSONOrError(c, &req) {
		return
	}

	// Trim whitespace before validating presence
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Message = strings.TrimSpace(req.Message)

	// Presence-only validation: the email shape is deliberately not
	// checked here, mirroring the catalogue endpoint asymmetry.
	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Message == "" {
		_ = c.Error(errors.ValidationFailed("Missing required fields", "name, email, phone and message are required"))
		return
	}

	// Default the interest to "general" if not provided
	interest := types.Interest(strings.TrimSpace(req.InterestedIn))
	if interest == "" {
		interest = types.InterestGeneral
	}
	if !interest.Valid() {
		_ = c.Error(errors.ValidationFailed("Invalid interest selection", "interestedIn must be one of: general, coffeeprince, other"))
		return
	}

	log := logger.GetLogger()
	log.Infow("Contact form submission",
		"name", req.Name,
		"email", logger.MaskEmail(req.Email),
		"phone", logger.MaskPhone(req.Phone),
		"interested_in", interest)

	ctx := c.Request.Context()

	// Confirmation to the submitter
	err := h.emailSvc.SendEmail(ctx, types.EmailData{
		To:       req.Email,
		Subject:  "Thank you for contacting Mother Properties",
		Template: types.TemplateContactConfirmation,
		TemplateData: map[string]interface{}{
			"Name":    req.Name,
			"BaseURL": h.cfg.Site.BaseURL,
		},
	})
	if err != nil {
		_ = c.Error(errors.NewDispatchError(err))
		return
	}

	// Alert to the operator with the full inquiry
	err = h.emailSvc.SendEmail(ctx, types.EmailData{
		To:       h.cfg.Email.OperatorAddress,
		Subject:  fmt.Sprintf("New Contact Inquiry from %s", req.Name),
		Template: types.TemplateContactAlert,
		TemplateData: map[string]interface{}{
			"Name":         req.Name,
			"Email":        req.Email,
			"Phone":        req.Phone,
			"InterestedIn": string(interest),
			"Message":      req.Message,
		},
	})
	if err != nil {
		_ = c.Error(errors.NewDispatchError(err))
		return
	}

	c.JSON(http.StatusOK, types.SubmissionResponse{
		Success: true,
		Message: "Your message has been sent successfully. We will get back to you soon!",
	})
}
