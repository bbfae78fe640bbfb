package formclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Errors must not appear while the user is typing, only on blur or on
// a submit attempt.
func TestForm_QuietWhileTyping(t *testing.T) {
	form := NewContactForm()

	form.SetValue("name", "A")
	assert.Equal(t, FieldUntouched, form.State("name"))
	assert.Empty(t, form.FieldError("name"))

	form.Blur("name")
	assert.Equal(t, FieldInvalid, form.State("name"))
	assert.Equal(t, "Name must be at least 2 characters", form.FieldError("name"))
}

func TestForm_EditClearsStandingError(t *testing.T) {
	form := NewContactForm()

	form.SetValue("email", "bad")
	form.Blur("email")
	assert.Equal(t, FieldInvalid, form.State("email"))

	// Typing again suppresses the error until the next validation point
	form.SetValue("email", "bad@")
	assert.Equal(t, FieldUntouched, form.State("email"))
	assert.Empty(t, form.FieldError("email"))

	form.Blur("email")
	assert.Equal(t, FieldInvalid, form.State("email"))
}

func TestForm_BlurValidField(t *testing.T) {
	form := NewContactForm()

	form.SetValue("phone", "9876543210")
	form.Blur("phone")
	assert.Equal(t, FieldValid, form.State("phone"))
	assert.Empty(t, form.FieldError("phone"))
}

func TestForm_SubmitSurfacesAllErrors(t *testing.T) {
	form := NewContactForm()
	form.SetValue("name", "Asha Rao")

	ok := form.SubmitValidate()
	assert.False(t, ok)

	errs := form.Errors()
	assert.NotContains(t, errs, "name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "phone")
	assert.Contains(t, errs, "message")
}

func TestForm_MessageLengthBoundary(t *testing.T) {
	form := NewContactForm()
	form.SetValue("name", "Asha Rao")
	form.SetValue("email", "asha@example.com")
	form.SetValue("phone", "9876543210")

	form.SetValue("message", "123456789") // 9 chars
	assert.False(t, form.SubmitValidate())
	assert.Equal(t, "Message must be at least 10 characters", form.FieldError("message"))

	form.SetValue("message", "1234567890") // 10 chars
	assert.True(t, form.SubmitValidate())
}

func TestForm_CatalogueHasNoMessageField(t *testing.T) {
	form := NewCatalogueForm()
	form.SetValue("name", "Asha Rao")
	form.SetValue("email", "asha@example.com")
	form.SetValue("phone", "9876543210")

	assert.True(t, form.SubmitValidate())
	assert.NotContains(t, form.Values(), "message")
}

func TestForm_Reset(t *testing.T) {
	form := NewContactForm()
	form.SetValue("name", "A")
	form.Blur("name")

	form.Reset()
	assert.Empty(t, form.Value("name"))
	assert.Equal(t, FieldUntouched, form.State("name"))
	assert.Empty(t, form.Errors())
}
