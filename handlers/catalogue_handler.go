package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/motherproperties/website-backend/config"
	"github.com/motherproperties/website-backend/errors"
	"github.com/motherproperties/website-backend/logger"
	"github.com/motherproperties/website-backend/types"
	"github.com/motherproperties/website-backend/validation"
)

// CatalogueHandler handles catalogue download registrations. The catalogue
// document itself is delivered by the client from a fixed asset path; this
// endpoint only records the request and alerts the operator.
type CatalogueHandler struct {
	emailSvc types.EmailSender
	cfg      *config.Config
}

// NewCatalogueHandler creates a new CatalogueHandler.
func NewCatalogueHandler(emailSvc types.EmailSender, cfg *config.Config) *CatalogueHandler {
	return &CatalogueHandler{emailSvc: emailSvc, cfg: cfg}
}

// RegisterDownload godoc
// @Summary      Register a catalogue download
// @Description  Accepts a catalogue download registration and notifies the operator by email
// @Tags         intake
// @Accept       json
// @Produce      json
// @Param        body  body      types.CatalogueRequest  true  "Catalogue request payload"
// @Success      200   {object}  types.SubmissionResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      429   {object}  types.ErrorResponse
// @Failure      500   {object}  types.ErrorResponse
// @Router       /catalogue-download [post]
func (h *CatalogueHandler) RegisterDownload(c *gin.Context) {
	var req types.CatalogueRequest
	if !bindJSONOrError(c, &req) {
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)

	if req.Name == "" || req.Email == "" || req.Phone == "" {
		_ = c.Error(errors.ValidationFailed("Missing required fields", "name, email and phone are required"))
		return
	}

	if !validation.IsValidEmail(req.Email) {
		_ = c.Error(errors.ValidationFailed("Invalid email format", "email must look like local@domain.tld"))
		return
	}

	timestamp := time.Now().UTC()
	log := logger.GetLogger()
	log.Infow("Catalogue download request",
		"name", req.Name,
		"email", logger.MaskEmail(req.Email),
		"phone", logger.MaskPhone(req.Phone),
		"timestamp", timestamp)

	// The download already happened client-side, so a failed operator
	// notification must not fail the request. Log and carry on.
	err := h.emailSvc.SendEmail(c.Request.Context(), types.EmailData{
		To:       h.cfg.Email.OperatorAddress,
		Subject:  fmt.Sprintf("New Catalogue Download Request - %s", req.Name),
		Template: types.TemplateCatalogueAlert,
		TemplateData: map[string]interface{}{
			"Name":      req.Name,
			"Email":     req.Email,
			"Phone":     req.Phone,
			"Timestamp": timestamp.Format(time.RFC1123),
		},
	})
	if err != nil {
		log.Warnw("Catalogue notification dispatch failed; request still succeeds",
			"error", err,
			"name", req.Name,
			"email", logger.MaskEmail(req.Email))
	}

	c.JSON(http.StatusOK, types.SubmissionResponse{
		Success: true,
		Message: "Catalogue download request received. Check your email for confirmation.",
		Data: types.CatalogueReceipt{
			Name:      req.Name,
			Email:     req.Email,
			Timestamp: timestamp,
		},
	})
}
