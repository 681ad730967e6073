package view

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() ContactForm {
	return ContactForm{
		Name:      "Ana",
		Email:     "ana@example.com",
		Subject:   SubjectSession,
		Message:   "Quisiera agendar una sesión de fotos.",
		Subscribe: true,
	}
}

func TestContactForm_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ContactForm)
		field  string
		reason string
	}{
		{"missing name", func(f *ContactForm) { f.Name = "  " }, FieldName, ReasonRequired},
		{"missing email", func(f *ContactForm) { f.Email = "" }, FieldEmail, ReasonRequired},
		{"malformed email", func(f *ContactForm) { f.Email = "ana.example.com" }, FieldEmail, ReasonEmail},
		{"display name email", func(f *ContactForm) { f.Email = "Ana <ana@example.com>" }, FieldEmail, ReasonEmail},
		{"missing message", func(f *ContactForm) { f.Message = "" }, FieldMessage, ReasonRequired},
		{"short message", func(f *ContactForm) { f.Message = "Hola" }, FieldMessage, ReasonMinLength},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			tc.mutate(&form)

			errs := form.Validate()
			require.Len(t, errs, 1)
			assert.Equal(t, FieldError{Field: tc.field, Reason: tc.reason}, errs[0])
		})
	}

	assert.Empty(t, validForm().Validate())
}

func TestContactForm_MessageLengthCountsRunes(t *testing.T) {
	form := validForm()
	form.Message = "ñññññññññ" // 9 runes, 18 bytes
	assert.True(t, form.Validate().Has(FieldMessage))

	form.Message = "ññññññññññ"
	assert.False(t, form.Validate().Has(FieldMessage))
}

func TestContact_SubmitInvalidTouchesAllFields(t *testing.T) {
	c := NewContact(zerolog.Nop())

	assert.False(t, c.Invalid(FieldName), "untouched fields show no error")

	_, err := c.Submit()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidForm))

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has(FieldName))
	assert.True(t, verrs.Has(FieldEmail))
	assert.True(t, verrs.Has(FieldMessage))

	assert.True(t, c.Invalid(FieldName))
	assert.True(t, c.Invalid(FieldEmail))
	assert.True(t, c.Invalid(FieldMessage))
	assert.False(t, c.Invalid(FieldSubject))
}

func TestContact_SubmitValidResets(t *testing.T) {
	c := NewContact(zerolog.Nop())
	fixed := time.Date(2024, 6, 20, 10, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return fixed }

	c.Update(validForm())
	sub, err := c.Submit()
	require.NoError(t, err)

	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, fixed, sub.SentAt)
	assert.Equal(t, validForm(), sub.Form)

	assert.Equal(t, DefaultContactForm(), c.Form())
	assert.False(t, c.Invalid(FieldName))
}

func TestContact_UpdateTouchesChangedFields(t *testing.T) {
	c := NewContact(zerolog.Nop())

	form := c.Form()
	form.Email = "nope"
	c.Update(form)

	assert.True(t, c.Invalid(FieldEmail))
	assert.False(t, c.Invalid(FieldName), "unchanged field stays untouched")

	c.Touch(FieldName)
	assert.True(t, c.Invalid(FieldName))
}

func TestSubjectOptions(t *testing.T) {
	opts := SubjectOptions()
	assert.Equal(t, SubjectInfo, opts[0])
	assert.Len(t, opts, 4)
	assert.Equal(t, SubjectInfo, DefaultContactForm().Subject)
}
