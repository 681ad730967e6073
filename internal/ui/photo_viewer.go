package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/kleyver/kleyver-app/internal/model"
)

// PhotoViewer shows one record's details in a modal pop-up
type PhotoViewer struct {
	localization *Localization
	onFavorite   func(id int)

	record  model.MediaRecord
	showing bool

	titleLabel    *widget.Label
	metaLabel     *widget.Label
	categoryLabel *widget.Label
	descLabel     *widget.Label
	favBtn        *widget.Button
	closeBtn      *widget.Button
	popUp         *widget.PopUp
}

// NewPhotoViewer creates a hidden viewer on canvas
func NewPhotoViewer(canvas fyne.Canvas, localization *Localization, onFavorite func(id int)) *PhotoViewer {
	pv := &PhotoViewer{localization: localization, onFavorite: onFavorite}

	pv.titleLabel = widget.NewLabel("")
	pv.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	pv.titleLabel.Wrapping = fyne.TextWrapWord

	pv.metaLabel = widget.NewLabel("")
	pv.metaLabel.Importance = widget.LowImportance

	pv.categoryLabel = widget.NewLabel("")
	pv.categoryLabel.Importance = widget.LowImportance

	pv.descLabel = widget.NewLabel("")
	pv.descLabel.Wrapping = fyne.TextWrapWord

	pv.favBtn = widget.NewButton(IconHeartOpen, pv.toggleFavorite)
	pv.favBtn.Importance = widget.LowImportance

	pv.closeBtn = widget.NewButton(localization.GetText(KeyClose), pv.Hide)

	header := container.NewBorder(nil, nil, nil, pv.favBtn, pv.titleLabel)
	body := container.NewVBox(header, pv.metaLabel, pv.categoryLabel, widget.NewSeparator(), pv.descLabel)
	content := container.NewBorder(nil, container.NewCenter(pv.closeBtn), nil, nil, container.NewVScroll(body))

	pv.popUp = widget.NewModalPopUp(content, canvas)
	return pv
}

// Show fills the viewer with rec and displays it
func (pv *PhotoViewer) Show(rec model.MediaRecord) {
	pv.SetRecord(rec)
	pv.showing = true

	size := pv.popUp.Canvas.Size()
	pv.popUp.Resize(fyne.NewSize(size.Width*ViewerSizeRatio, size.Height*ViewerSizeRatio).Max(pv.popUp.MinSize()))
	pv.popUp.Show()
}

// Hide closes the viewer
func (pv *PhotoViewer) Hide() {
	pv.showing = false
	pv.popUp.Hide()
}

// Visible reports whether the viewer is open
func (pv *PhotoViewer) Visible() bool {
	return pv.showing
}

// Record returns the record last shown
func (pv *PhotoViewer) Record() model.MediaRecord {
	return pv.record
}

// SetRecord refreshes the labels for rec without changing visibility
func (pv *PhotoViewer) SetRecord(rec model.MediaRecord) {
	pv.record = rec

	pv.titleLabel.SetText(rec.GetDisplayTitle())
	meta := IconPin + " " + rec.Location
	if rec.Date != "" {
		meta += MiddleDotSeparator + rec.Date
	}
	pv.metaLabel.SetText(meta)
	if rec.HasCategory() {
		pv.categoryLabel.SetText(rec.Category.String())
		pv.categoryLabel.Show()
	} else {
		pv.categoryLabel.Hide()
	}
	pv.descLabel.SetText(rec.Description)

	if rec.Favorite {
		pv.favBtn.SetText(IconHeart)
		pv.favBtn.Importance = widget.DangerImportance
	} else {
		pv.favBtn.SetText(IconHeartOpen)
		pv.favBtn.Importance = widget.LowImportance
	}
	pv.favBtn.Refresh()
}

func (pv *PhotoViewer) toggleFavorite() {
	if pv.onFavorite != nil {
		pv.onFavorite(pv.record.ID)
	}
}
