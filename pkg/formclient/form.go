// Package formclient models the intake forms as they behave in the site
// frontend: per-field validation state, quiet-while-typing error display,
// and a submission client that talks to the intake endpoints.
package formclient

import (
	"sync"

	"github.com/motherproperties/website-backend/validation"
)

// FieldState describes where a field is in its validation lifecycle.
type FieldState int

const (
	// FieldUntouched means the field has not been validated since its
	// last edit. No error is shown in this state.
	FieldUntouched FieldState = iota
	FieldValid
	FieldInvalid
)

type fieldEntry struct {
	kind  validation.FieldKind
	value string
	state FieldState
	err   string
}

// Form tracks values and validation state for one form instance. Errors
// stay quiet while the user types and only surface on blur or on a
// submit attempt. Safe for concurrent use.
type Form struct {
	mu     sync.Mutex
	fields map[string]*fieldEntry
	order  []string
}

// NewContactForm returns a form with the contact page's fields.
func NewContactForm() *Form {
	return newForm(map[string]validation.FieldKind{
		"name":         validation.FieldName,
		"email":        validation.FieldEmail,
		"phone":        validation.FieldPhone,
		"message":      validation.FieldMessage,
		"interestedIn": validation.FieldKind("select"),
	}, []string{"name", "email", "phone", "message", "interestedIn"})
}

// NewCatalogueForm returns a form with the catalogue dialog's fields.
func NewCatalogueForm() *Form {
	return newForm(map[string]validation.FieldKind{
		"name":  validation.FieldName,
		"email": validation.FieldEmail,
		"phone": validation.FieldPhone,
	}, []string{"name", "email", "phone"})
}

func newForm(kinds map[string]validation.FieldKind, order []string) *Form {
	fields := make(map[string]*fieldEntry, len(kinds))
	for name, kind := range kinds {
		fields[name] = &fieldEntry{kind: kind}
	}
	return &Form{fields: fields, order: order}
}

// SetValue updates a field's value. If the field currently shows an
// error, it drops back to untouched so the error disappears while the
// user edits. Unknown fields are ignored.
func (f *Form) SetValue(name, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entry, ok := f.fields[name]
	if !ok {
		return
	}
	entry.value = value
	if entry.state == FieldInvalid {
		entry.state = FieldUntouched
		entry.err = ""
	}
}

// Blur validates one field, as when its input loses focus.
func (f *Form) Blur(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if entry, ok := f.fields[name]; ok {
		f.validateEntry(entry)
	}
}

// Value returns the current value of a field.
func (f *Form) Value(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if entry, ok := f.fields[name]; ok {
		return entry.value
	}
	return ""
}

// FieldError returns the error currently shown for a field, or "" when
// the field is valid or not yet validated.
func (f *Form) FieldError(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if entry, ok := f.fields[name]; ok {
		return entry.err
	}
	return ""
}

// State returns a field's validation state.
func (f *Form) State(name string) FieldState {
	f.mu.Lock()
	defer f.mu.Unlock()

	if entry, ok := f.fields[name]; ok {
		return entry.state
	}
	return FieldUntouched
}

// SubmitValidate validates every field at once, as on a submit attempt.
// It returns true when all fields pass; otherwise every failing field
// carries its error simultaneously.
func (f *Form) SubmitValidate() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	ok := true
	for _, name := range f.order {
		entry := f.fields[name]
		f.validateEntry(entry)
		if entry.state == FieldInvalid {
			ok = false
		}
	}
	return ok
}

// Errors returns the currently surfaced errors keyed by field name.
func (f *Form) Errors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	errs := make(map[string]string)
	for name, entry := range f.fields {
		if entry.state == FieldInvalid {
			errs[name] = entry.err
		}
	}
	return errs
}

// Values returns a copy of the current field values.
func (f *Form) Values() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	values := make(map[string]string, len(f.fields))
	for name, entry := range f.fields {
		values[name] = entry.value
	}
	return values
}

// Reset clears every field back to an empty, untouched state.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, entry := range f.fields {
		entry.value = ""
		entry.state = FieldUntouched
		entry.err = ""
	}
}

func (f *Form) validateEntry(entry *fieldEntry) {
	if msg := validation.ValidateField(entry.kind, entry.value); msg != "" {
		entry.state = FieldInvalid
		entry.err = msg
		return
	}
	entry.state = FieldValid
	entry.err = ""
}
