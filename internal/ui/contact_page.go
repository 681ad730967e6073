package ui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/kleyver/kleyver-app/internal/view"
)

// ContactPage renders the contact form backed by view.Contact
type ContactPage struct {
	contact      *view.Contact
	localization *Localization
	logger       zerolog.Logger
	notify       func(message string)

	// subject display label <-> value
	subjectLabels map[string]string
	subjectValues map[string]string

	nameEntry      *fieldEntry
	emailEntry     *fieldEntry
	subjectSelect  *widget.Select
	messageEntry   *fieldEntry
	subscribeCheck *widget.Check
	sendBtn        *widget.Button
	errorLabels    map[string]*widget.Label

	// set while widgets are written programmatically
	syncing bool

	content fyne.CanvasObject
}

// NewContactPage builds the form
func NewContactPage(contact *view.Contact, localization *Localization, logger zerolog.Logger, notify func(string)) *ContactPage {
	cp := &ContactPage{
		contact:       contact,
		localization:  localization,
		logger:        logger,
		notify:        notify,
		subjectLabels: make(map[string]string),
		subjectValues: make(map[string]string),
		errorLabels:   make(map[string]*widget.Label),
	}
	cp.createUI()
	cp.load(contact.Form())
	return cp
}

// Content returns the page root object
func (cp *ContactPage) Content() fyne.CanvasObject {
	return cp.content
}

func subjectTextKey(subject string) string {
	switch subject {
	case view.SubjectSession:
		return KeySubjectSession
	case view.SubjectCollaboration:
		return KeySubjectCollab
	case view.SubjectOther:
		return KeySubjectOther
	default:
		return KeySubjectInfo
	}
}

func (cp *ContactPage) createUI() {
	l := cp.localization

	options := make([]string, 0, len(view.SubjectOptions()))
	for _, value := range view.SubjectOptions() {
		label := l.GetText(subjectTextKey(value))
		cp.subjectLabels[value] = label
		cp.subjectValues[label] = value
		options = append(options, label)
	}

	cp.nameEntry = newFieldEntry(false, func() { cp.onBlur(view.FieldName) })
	cp.nameEntry.SetPlaceHolder(l.GetText(KeyFieldName))
	cp.nameEntry.OnChanged = func(string) { cp.onChanged() }

	cp.emailEntry = newFieldEntry(false, func() { cp.onBlur(view.FieldEmail) })
	cp.emailEntry.SetPlaceHolder(l.GetText(KeyFieldEmail))
	cp.emailEntry.OnChanged = func(string) { cp.onChanged() }

	cp.subjectSelect = widget.NewSelect(options, func(string) { cp.onChanged() })

	cp.messageEntry = newFieldEntry(true, func() { cp.onBlur(view.FieldMessage) })
	cp.messageEntry.SetPlaceHolder(l.GetText(KeyFieldMessage))
	cp.messageEntry.Wrapping = fyne.TextWrapWord
	cp.messageEntry.SetMinRowsVisible(4)
	cp.messageEntry.OnChanged = func(string) { cp.onChanged() }

	cp.subscribeCheck = widget.NewCheck(l.GetText(KeyFieldSubscribe), func(bool) { cp.onChanged() })

	for _, field := range []string{view.FieldName, view.FieldEmail, view.FieldMessage} {
		label := widget.NewLabel("")
		label.Importance = widget.DangerImportance
		label.Hide()
		cp.errorLabels[field] = label
	}

	cp.sendBtn = widget.NewButton(IconSend+" "+l.GetText(KeySend), cp.onSubmit)
	cp.sendBtn.Importance = widget.HighImportance

	title := widget.NewLabelWithStyle(l.GetText(KeyContactTitle), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	cp.content = container.NewVScroll(container.NewVBox(
		title,
		widget.NewLabel(l.GetText(KeyFieldName)), cp.nameEntry, cp.errorLabels[view.FieldName],
		widget.NewLabel(l.GetText(KeyFieldEmail)), cp.emailEntry, cp.errorLabels[view.FieldEmail],
		widget.NewLabel(l.GetText(KeyFieldSubject)), cp.subjectSelect,
		widget.NewLabel(l.GetText(KeyFieldMessage)), cp.messageEntry, cp.errorLabels[view.FieldMessage],
		cp.subscribeCheck,
		cp.sendBtn,
	))
}

// load writes form into the widgets without feeding changes back
func (cp *ContactPage) load(form view.ContactForm) {
	cp.syncing = true
	defer func() { cp.syncing = false }()

	cp.nameEntry.SetText(form.Name)
	cp.emailEntry.SetText(form.Email)
	cp.subjectSelect.SetSelected(cp.subjectLabels[form.Subject])
	cp.messageEntry.SetText(form.Message)
	cp.subscribeCheck.SetChecked(form.Subscribe)
}

func (cp *ContactPage) readForm() view.ContactForm {
	return view.ContactForm{
		Name:      cp.nameEntry.Text,
		Email:     cp.emailEntry.Text,
		Subject:   cp.subjectValues[cp.subjectSelect.Selected],
		Message:   cp.messageEntry.Text,
		Subscribe: cp.subscribeCheck.Checked,
	}
}

func (cp *ContactPage) onChanged() {
	if cp.syncing {
		return
	}
	cp.contact.Update(cp.readForm())
	cp.refreshErrors()
}

// onBlur marks field visited so its error shows even before it changes
func (cp *ContactPage) onBlur(field string) {
	cp.contact.Touch(field)
	cp.refreshErrors()
}

func (cp *ContactPage) onSubmit() {
	cp.contact.Update(cp.readForm())

	sub, err := cp.contact.Submit()
	if err != nil {
		if !errors.Is(err, view.ErrInvalidForm) {
			cp.logger.Error().Err(err).Msg("contact submit failed")
		}
		cp.refreshErrors()
		cp.notifyText(KeyFormInvalid)
		return
	}

	cp.logger.Debug().Str("submission", sub.ID).Msg("contact form reset")
	cp.load(cp.contact.Form())
	cp.refreshErrors()
	cp.notifyText(KeyMessageSent)
}

func (cp *ContactPage) notifyText(key string) {
	if cp.notify != nil {
		cp.notify(cp.localization.GetText(key))
	}
}

// refreshErrors shows the message for every touched invalid field
func (cp *ContactPage) refreshErrors() {
	errs := cp.contact.Form().Validate()

	for field, label := range cp.errorLabels {
		if !cp.contact.Invalid(field) {
			label.Hide()
			continue
		}
		label.SetText(cp.reasonText(errs, field))
		label.Show()
	}
}

func (cp *ContactPage) reasonText(errs view.ValidationErrors, field string) string {
	for _, fe := range errs {
		if fe.Field != field {
			continue
		}
		switch fe.Reason {
		case view.ReasonEmail:
			return cp.localization.GetText(KeyErrEmail)
		case view.ReasonMinLength:
			return cp.localization.GetText(KeyErrMinLength)
		default:
			return cp.localization.GetText(KeyErrRequired)
		}
	}
	return ""
}

// ErrorShown reports whether the error label for field is visible
func (cp *ContactPage) ErrorShown(field string) bool {
	label, ok := cp.errorLabels[field]
	return ok && label.Visible()
}

// fieldEntry is an Entry that reports losing focus
type fieldEntry struct {
	widget.Entry
	onBlur func()
}

func newFieldEntry(multiLine bool, onBlur func()) *fieldEntry {
	e := &fieldEntry{onBlur: onBlur}
	e.MultiLine = multiLine
	e.ExtendBaseWidget(e)
	return e
}

// FocusLost implements fyne.Focusable
func (e *fieldEntry) FocusLost() {
	e.Entry.FocusLost()
	if e.onBlur != nil {
		e.onBlur()
	}
}
