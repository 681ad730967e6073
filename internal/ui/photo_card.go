package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/kleyver/kleyver-app/internal/model"
)

// PhotoCard renders one gallery record. A tap opens the record; the heart
// button, a double tap or a long press toggle its favorite flag.
type PhotoCard struct {
	widget.BaseWidget

	record     model.MediaRecord
	hasRecord  bool
	onFavorite func(id int)
	onOpen     func(rec model.MediaRecord)
	gestures   *GestureHandler

	// UI components
	background *canvas.Rectangle
	titleLabel *widget.Label
	metaLabel  *widget.Label
	descLabel  *widget.Label
	favBtn     *widget.Button
}

// NewPhotoCard creates an empty card; SetRecord fills it
func NewPhotoCard(onFavorite func(id int), onOpen func(rec model.MediaRecord)) *PhotoCard {
	pc := &PhotoCard{onFavorite: onFavorite, onOpen: onOpen}
	pc.ExtendBaseWidget(pc)
	pc.gestures = NewGestureHandler(pc.onGesture)
	pc.createUI()
	return pc
}

func (pc *PhotoCard) createUI() {
	pc.background = canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	pc.background.CornerRadius = theme.Size(theme.SizeNameInputRadius)

	pc.titleLabel = widget.NewLabel("")
	pc.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	pc.titleLabel.Truncation = fyne.TextTruncateEllipsis

	pc.metaLabel = widget.NewLabel("")
	pc.metaLabel.Importance = widget.LowImportance
	pc.metaLabel.Truncation = fyne.TextTruncateEllipsis

	pc.descLabel = widget.NewLabel("")
	pc.descLabel.Wrapping = fyne.TextWrapWord

	pc.favBtn = widget.NewButton(IconHeartOpen, pc.toggleFavorite)
	pc.favBtn.Importance = widget.LowImportance
}

// SetRecord shows rec on the card
func (pc *PhotoCard) SetRecord(rec model.MediaRecord) {
	pc.record = rec
	pc.hasRecord = true

	pc.titleLabel.SetText(rec.GetDisplayTitle())
	meta := IconPin + " " + rec.Location
	if rec.Date != "" {
		meta += MiddleDotSeparator + rec.Date
	}
	if rec.HasCategory() {
		meta += MiddleDotSeparator + rec.Category.String()
	}
	pc.metaLabel.SetText(meta)
	pc.descLabel.SetText(rec.Description)

	if rec.Favorite {
		pc.favBtn.SetText(IconHeart)
		pc.favBtn.Importance = widget.DangerImportance
	} else {
		pc.favBtn.SetText(IconHeartOpen)
		pc.favBtn.Importance = widget.LowImportance
	}
	pc.favBtn.Refresh()
}

// Record returns the record shown and whether one was set
func (pc *PhotoCard) Record() (model.MediaRecord, bool) {
	return pc.record, pc.hasRecord
}

func (pc *PhotoCard) toggleFavorite() {
	if !pc.hasRecord || pc.onFavorite == nil {
		return
	}
	pc.onFavorite(pc.record.ID)
}

func (pc *PhotoCard) onGesture(g GestureType) {
	if g == GestureLongPress {
		pc.toggleFavorite()
	}
}

// Tapped opens the record
func (pc *PhotoCard) Tapped(*fyne.PointEvent) {
	if !pc.hasRecord || pc.onOpen == nil {
		return
	}
	pc.onOpen(pc.record)
}

// DoubleTapped toggles the favorite flag
func (pc *PhotoCard) DoubleTapped(*fyne.PointEvent) {
	pc.toggleFavorite()
}

// TouchDown handles touch down events
func (pc *PhotoCard) TouchDown(event *mobile.TouchEvent) {
	pc.gestures.TouchDown(event)
}

// TouchUp handles touch up events
func (pc *PhotoCard) TouchUp(event *mobile.TouchEvent) {
	pc.gestures.TouchUp(event)
}

// TouchCancel handles touch cancel events
func (pc *PhotoCard) TouchCancel(event *mobile.TouchEvent) {
	pc.gestures.TouchCancel(event)
}

// CreateRenderer implements fyne.Widget
func (pc *PhotoCard) CreateRenderer() fyne.WidgetRenderer {
	header := container.NewBorder(nil, nil, nil, pc.favBtn, container.NewVBox(pc.titleLabel, pc.metaLabel))
	body := container.NewPadded(container.NewVBox(header, pc.descLabel))
	return widget.NewSimpleRenderer(container.NewStack(pc.background, body))
}

// MinSize keeps cards at least CardMinWidth x CardMinHeight, taller for
// records with a tall or large layout hint
func (pc *PhotoCard) MinSize() fyne.Size {
	_, rows := pc.record.Size.Span()
	return pc.BaseWidget.MinSize().Max(fyne.NewSize(CardMinWidth, CardMinHeight*float32(rows)))
}
