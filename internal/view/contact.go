package view

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Contact form fields
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// Subject options offered by the form
const (
	SubjectInfo          = "info"
	SubjectSession       = "session"
	SubjectCollaboration = "collaboration"
	SubjectOther         = "other"
)

// MinMessageLength is the shortest accepted message
const MinMessageLength = 10

// Validation reasons
const (
	ReasonRequired  = "required"
	ReasonEmail     = "email"
	ReasonMinLength = "minlength"
)

// ErrInvalidForm is matched by the error returned from Submit for an invalid form
var ErrInvalidForm = errors.New("invalid contact form")

// SubjectOptions returns the subject values in display order
func SubjectOptions() []string {
	return []string{SubjectInfo, SubjectSession, SubjectCollaboration, SubjectOther}
}

// ContactForm holds the form values
type ContactForm struct {
	Name      string
	Email     string
	Subject   string
	Message   string
	Subscribe bool
}

// DefaultContactForm returns an empty form with the default subject
func DefaultContactForm() ContactForm {
	return ContactForm{Subject: SubjectInfo}
}

// FieldError describes why a field is invalid
type FieldError struct {
	Field  string
	Reason string
}

// ValidationErrors lists every invalid field
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Field+": "+fe.Reason)
	}
	return fmt.Sprintf("%s (%s)", ErrInvalidForm, strings.Join(parts, ", "))
}

func (v ValidationErrors) Unwrap() error {
	return ErrInvalidForm
}

// Has reports whether field failed validation
func (v ValidationErrors) Has(field string) bool {
	for _, fe := range v {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Validate checks the form: name required, email required and well formed,
// message required and at least MinMessageLength characters
func (f ContactForm) Validate() ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(f.Name) == "" {
		errs = append(errs, FieldError{Field: FieldName, Reason: ReasonRequired})
	}

	email := strings.TrimSpace(f.Email)
	switch {
	case email == "":
		errs = append(errs, FieldError{Field: FieldEmail, Reason: ReasonRequired})
	case !validEmail(email):
		errs = append(errs, FieldError{Field: FieldEmail, Reason: ReasonEmail})
	}

	switch {
	case f.Message == "":
		errs = append(errs, FieldError{Field: FieldMessage, Reason: ReasonRequired})
	case len([]rune(f.Message)) < MinMessageLength:
		errs = append(errs, FieldError{Field: FieldMessage, Reason: ReasonMinLength})
	}

	return errs
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	// reject display-name forms such as "Ana <ana@x.com>"
	return addr.Address == s
}

// Submission is an accepted contact message
type Submission struct {
	ID     string
	Form   ContactForm
	SentAt time.Time
}

// Contact is the contact page controller
type Contact struct {
	logger zerolog.Logger
	now    func() time.Time

	mu      sync.Mutex
	form    ContactForm
	touched map[string]bool
}

// NewContact returns a controller holding the default form
func NewContact(logger zerolog.Logger) *Contact {
	return &Contact{
		logger:  logger,
		now:     time.Now,
		form:    DefaultContactForm(),
		touched: make(map[string]bool),
	}
}

// Form returns the current values
func (c *Contact) Form() ContactForm {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// Update replaces the form values and marks changed fields as touched
func (c *Contact) Update(form ContactForm) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if form.Name != c.form.Name {
		c.touched[FieldName] = true
	}
	if form.Email != c.form.Email {
		c.touched[FieldEmail] = true
	}
	if form.Subject != c.form.Subject {
		c.touched[FieldSubject] = true
	}
	if form.Message != c.form.Message {
		c.touched[FieldMessage] = true
	}
	c.form = form
}

// Touch marks a field as visited
func (c *Contact) Touch(field string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touched[field] = true
}

// Invalid reports whether field should show an error: it is invalid and was
// touched
func (c *Contact) Invalid(field string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.touched[field] && c.form.Validate().Has(field)
}

// Submit accepts a valid form and resets it to defaults. An invalid form
// marks every field touched and returns ValidationErrors.
func (c *Contact) Submit() (Submission, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if errs := c.form.Validate(); len(errs) > 0 {
		for _, f := range []string{FieldName, FieldEmail, FieldSubject, FieldMessage} {
			c.touched[f] = true
		}
		return Submission{}, errs
	}

	sub := Submission{
		ID:     uuid.NewString(),
		Form:   c.form,
		SentAt: c.now(),
	}
	c.logger.Info().
		Str("submission", sub.ID).
		Str("subject", sub.Form.Subject).
		Bool("newsletter", sub.Form.Subscribe).
		Msg("contact message accepted")

	c.form = DefaultContactForm()
	c.touched = make(map[string]bool)
	return sub, nil
}
