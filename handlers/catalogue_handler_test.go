package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/motherproperties/website-backend/middleware"
	"github.com/motherproperties/website-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupCatalogueRouter(sender types.EmailSender) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	h := NewCatalogueHandler(sender, testConfig())
	r.POST("/v1/catalogue-download", h.RegisterDownload)
	return r
}

func validCatalogueBody() map[string]string {
	return map[string]string{
		"name":  "Asha Rao",
		"email": "asha@example.com",
		"phone": "+91 98765 43210",
	}
}

func TestRegisterDownload_Success(t *testing.T) {
	sender := new(MockEmailSender)
	sender.On("SendEmail", mock.Anything, mock.MatchedBy(func(d types.EmailData) bool {
		return d.Template == types.TemplateCatalogueAlert &&
			d.To == "motherpropertiesblr@gmail.com" &&
			d.TemplateData["Name"] == "Asha Rao"
	})).Return(nil).Once()

	r := setupCatalogueRouter(sender)
	w := postJSON(t, r, "/v1/catalogue-download", validCatalogueBody())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp types.SubmissionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Catalogue download request received. Check your email for confirmation.", resp.Message)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Asha Rao", data["name"])
	assert.Equal(t, "asha@example.com", data["email"])
	assert.NotEmpty(t, data["timestamp"])
	sender.AssertExpectations(t)
}

func TestRegisterDownload_MissingFields(t *testing.T) {
	for _, field := range []string{"name", "email", "phone"} {
		t.Run("no "+field, func(t *testing.T) {
			sender := new(MockEmailSender)
			r := setupCatalogueRouter(sender)

			body := validCatalogueBody()
			body[field] = ""
			w := postJSON(t, r, "/v1/catalogue-download", body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var resp types.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "Missing required fields", resp.Error)
			sender.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
		})
	}
}

// The catalogue endpoint checks the email shape, which the contact
// endpoint deliberately does not.
func TestRegisterDownload_InvalidEmailRejected(t *testing.T) {
	cases := []string{"not-an-email", "no@tld", "spaces in@mail.com", "@missing.local"}
	for _, email := range cases {
		t.Run(email, func(t *testing.T) {
			sender := new(MockEmailSender)
			r := setupCatalogueRouter(sender)

			body := validCatalogueBody()
			body["email"] = email
			w := postJSON(t, r, "/v1/catalogue-download", body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var resp types.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "Invalid email format", resp.Error)
			sender.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
		})
	}
}

// A failed operator alert is logged and swallowed; the caller still
// gets a 200 because the download already happened client-side.
func TestRegisterDownload_DispatchFailureStillSucceeds(t *testing.T) {
	sender := new(MockEmailSender)
	sender.On("SendEmail", mock.Anything, mock.Anything).
		Return(errors.New("provider unavailable")).Once()

	r := setupCatalogueRouter(sender)
	w := postJSON(t, r, "/v1/catalogue-download", validCatalogueBody())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp types.SubmissionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	sender.AssertExpectations(t)
}

func TestRegisterDownload_InvalidJSON(t *testing.T) {
	sender := new(MockEmailSender)
	r := setupCatalogueRouter(sender)

	req := httptest.NewRequest(http.MethodPost, "/v1/catalogue-download", bytes.NewReader([]byte("[")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	sender.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
}
