package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureNone GestureType = iota
	GestureTap
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
)

// Gesture thresholds constants
const (
	DefaultSwipeThreshold    float32 = 50.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)

// ClassifyGesture maps a touch from start to end held for the given duration
// to a gesture. Movement is compared to threshold in pixels.
func ClassifyGesture(start, end fyne.Position, held time.Duration, threshold float32, longPress time.Duration) GestureType {
	dx := end.X - start.X
	dy := end.Y - start.Y
	absDx, absDy := abs32(dx), abs32(dy)

	if absDx < threshold && absDy < threshold {
		if held >= longPress {
			return GestureLongPress
		}
		return GestureTap
	}

	if absDx > absDy {
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}
	if dy > 0 {
		return GestureSwipeDown
	}
	return GestureSwipeUp
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// GestureHandler turns mobile touch events into gestures
type GestureHandler struct {
	onGesture func(GestureType)
	now       func() time.Time

	touchStartTime time.Time
	touchStartPos  fyne.Position
	tracking       bool

	swipeThreshold    float32
	longPressDuration time.Duration
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:         onGesture,
		now:               time.Now,
		swipeThreshold:    DefaultSwipeThreshold,
		longPressDuration: DefaultLongPressDuration,
	}
}

// TouchDown starts tracking a touch
func (gh *GestureHandler) TouchDown(event *mobile.TouchEvent) {
	gh.touchStartTime = gh.now()
	gh.touchStartPos = event.Position
	gh.tracking = true
}

// TouchUp classifies the finished touch and fires the callback
func (gh *GestureHandler) TouchUp(event *mobile.TouchEvent) {
	if !gh.tracking {
		return
	}
	gh.tracking = false

	gesture := ClassifyGesture(gh.touchStartPos, event.Position, gh.now().Sub(gh.touchStartTime),
		gh.swipeThreshold, gh.longPressDuration)
	if gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}

// TouchCancel drops the touch in progress
func (gh *GestureHandler) TouchCancel(*mobile.TouchEvent) {
	gh.tracking = false
}

// TabSwiper returns a gesture callback that moves between tabs on
// horizontal swipes. Other gestures are ignored.
func TabSwiper(tabs *container.AppTabs) func(GestureType) {
	return func(g GestureType) {
		count := len(tabs.Items)
		if count == 0 {
			return
		}
		current := tabs.SelectedIndex()
		switch g {
		case GestureSwipeLeft:
			if current < count-1 {
				tabs.SelectIndex(current + 1)
			}
		case GestureSwipeRight:
			if current > 0 {
				tabs.SelectIndex(current - 1)
			}
		}
	}
}
