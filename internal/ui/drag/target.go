package drag

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/tabdrag/internal/application/port"
	"github.com/bnema/tabdrag/internal/domain/entity"
	"github.com/bnema/tabdrag/internal/domain/geometry"
)

// TargetAdapter handles pointer traffic for one registered drop zone:
// zone enter/exit bookkeeping, insertion-index resolution on movement,
// indicator publication, and the final commit on drop.
type TargetAdapter struct {
	zone      ZoneID
	session   *Session
	registry  *ZoneRegistry
	emitter   *CommitEmitter
	indicator port.IndicatorPublisher
	logger    zerolog.Logger

	// fallbackFrame supplies a zone-local indicator frame for empty zones,
	// where no boundary can be derived from item frames.
	fallbackFrame func() geometry.Rect

	// toOverlay converts a zone-local rect into the indicator overlay's
	// coordinate space. nil means the spaces coincide.
	toOverlay func(geometry.Rect) geometry.Rect
}

// TargetConfig carries the optional hooks of a TargetAdapter.
type TargetConfig struct {
	Indicator     port.IndicatorPublisher
	FallbackFrame func() geometry.Rect
	ToOverlay     func(geometry.Rect) geometry.Rect
}

// NewTargetAdapter creates the drop handler for one zone.
func NewTargetAdapter(zone ZoneID, session *Session, registry *ZoneRegistry, emitter *CommitEmitter, cfg TargetConfig, logger zerolog.Logger) *TargetAdapter {
	return &TargetAdapter{
		zone:          zone,
		session:       session,
		registry:      registry,
		emitter:       emitter,
		indicator:     cfg.Indicator,
		fallbackFrame: cfg.FallbackFrame,
		toOverlay:     cfg.ToOverlay,
		logger:        logger.With().Str("component", "target-adapter").Str("zone_id", string(zone)).Logger(),
	}
}

// Zone returns the zone this adapter serves.
func (t *TargetAdapter) Zone() ZoneID {
	return t.zone
}

// PointerEntered marks the zone active and publishes an initial indicator.
// Stale events after session end are ignored.
func (t *TargetAdapter) PointerEntered(local geometry.Point) {
	if !t.accepts(local) {
		return
	}
	t.session.EnterZone(t.zone)
	t.publishFor(local)
}

// PointerMoved re-resolves the insertion index and refreshes the indicator.
func (t *TargetAdapter) PointerMoved(local geometry.Point) {
	if !t.accepts(local) {
		return
	}
	t.publishFor(local)
}

// PointerExited clears the zone's session state and the indicator.
func (t *TargetAdapter) PointerExited() {
	if t.session.IsDragging() {
		t.session.ExitZone(t.zone)
	}
	t.clearIndicator()
}

// Drop finalizes the insertion index one last time and commits: a reorder
// when the drag started in this zone, a cross-container move otherwise.
// An unresolvable index cancels instead of committing a bogus move.
func (t *TargetAdapter) Drop(ctx context.Context, local geometry.Point) (*entity.DragOperation, error) {
	defer t.clearIndicator()

	if !t.accepts(local) {
		return nil, nil
	}

	update := t.session.UpdateInsertionIndex(t.zone, local)
	if !update.OK || update.Index < 0 {
		t.logger.Debug().Msg("drop with unresolvable index, cancelling")
		t.session.Cancel()
		return nil, nil
	}

	var op *entity.DragOperation
	if t.session.SourceZone() == t.zone {
		op = t.session.CompleteReorder()
	} else {
		op = t.session.CompleteDrop(t.zone, update.Index)
	}
	if op == nil {
		return nil, nil
	}
	if t.emitter != nil {
		if err := t.emitter.Dispatch(ctx, *op); err != nil {
			return op, err
		}
	}
	return op, nil
}

// accepts guards every entry point against stale delivery and bad input:
// the session must be actively dragging and the point finite.
func (t *TargetAdapter) accepts(local geometry.Point) bool {
	if !t.session.IsDragging() {
		return false
	}
	if !local.IsFinite() {
		t.logger.Debug().Msg("rejected non-finite pointer position")
		return false
	}
	return true
}

// publishFor resolves the index for a pointer position and publishes the
// matching indicator frame, falling back to the zone-relative default frame
// when the zone is empty.
func (t *TargetAdapter) publishFor(local geometry.Point) {
	update := t.session.UpdateInsertionIndex(t.zone, local)
	if !update.OK || t.indicator == nil {
		return
	}

	frame := update.Indicator
	if frame.W == 0 && frame.H == 0 {
		if t.fallbackFrame == nil {
			return
		}
		frame = t.fallbackFrame()
	}
	if t.toOverlay != nil {
		frame = t.toOverlay(frame)
	}
	t.indicator.PublishIndicator(frame)
}

func (t *TargetAdapter) clearIndicator() {
	if t.indicator != nil {
		t.indicator.ClearIndicator()
	}
}
