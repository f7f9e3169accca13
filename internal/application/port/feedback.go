package port

import "github.com/bnema/tabdrag/internal/domain/geometry"

// FeedbackEvent is a discrete cue the engine emits for the platform feedback
// layer (haptics, sound, highlight) to act on.
type FeedbackEvent int

const (
	FeedbackDragBegan FeedbackEvent = iota
	FeedbackZoneEntered
	FeedbackInsertionChanged
	FeedbackEnteredWindow
	FeedbackLeftAllWindows
	FeedbackDragCancelled
	FeedbackDropCommitted
)

func (e FeedbackEvent) String() string {
	switch e {
	case FeedbackDragBegan:
		return "drag_began"
	case FeedbackZoneEntered:
		return "zone_entered"
	case FeedbackInsertionChanged:
		return "insertion_changed"
	case FeedbackEnteredWindow:
		return "entered_window"
	case FeedbackLeftAllWindows:
		return "left_all_windows"
	case FeedbackDragCancelled:
		return "drag_cancelled"
	case FeedbackDropCommitted:
		return "drop_committed"
	default:
		return "unknown"
	}
}

// FeedbackSink receives feedback events. Implementations must be cheap and
// non-blocking; the engine fires these from pointer-event handlers.
type FeedbackSink interface {
	Emit(event FeedbackEvent)
}

// IndicatorPublisher renders the insertion indicator for one drop zone.
// Frames arrive in the overlay's coordinate space.
type IndicatorPublisher interface {
	PublishIndicator(frame geometry.Rect)
	ClearIndicator()
}
