package drag

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabdrag/internal/domain/entity"
	"github.com/bnema/tabdrag/internal/domain/geometry"
	"github.com/bnema/tabdrag/internal/domain/repository"
)

// stubMover records applied operations and optionally fails.
type stubMover struct {
	applied []entity.DragOperation
	err     error
}

func (m *stubMover) ApplyDragOperation(_ context.Context, op entity.DragOperation) error {
	if m.err != nil {
		return m.err
	}
	m.applied = append(m.applied, op)
	return nil
}

// failingHistory always fails its writes.
type failingHistory struct{}

func (failingHistory) Record(context.Context, entity.DragOperation, time.Time) error {
	return errors.New("disk full")
}

func (failingHistory) Recent(context.Context, int) ([]repository.RecordedOperation, error) {
	return nil, errors.New("disk full")
}

func (failingHistory) Purge(context.Context, time.Time) (int64, error) {
	return 0, errors.New("disk full")
}

func newTestAdapter(t *testing.T, zone ZoneID, mover *stubMover) (*TargetAdapter, *Session, *IndicatorOverlay) {
	t.Helper()
	s, _ := newTestSession(t)
	overlay := NewIndicatorOverlay()
	emitter := NewCommitEmitter(mover, nil, nil, zerolog.Nop())
	adapter := NewTargetAdapter(zone, s, s.registry, emitter, TargetConfig{
		Indicator:     overlay,
		FallbackFrame: func() geometry.Rect { return geometry.Rect{X: 0, Y: 0, W: 100, H: 10} },
	}, zerolog.Nop())
	return adapter, s, overlay
}

func TestTargetAdapter_PointerFlowPublishesIndicator(t *testing.T) {
	adapter, s, overlay := newTestAdapter(t, "src", &stubMover{})
	beginTestDrag(s)

	adapter.PointerEntered(geometry.Point{X: 10, Y: 40})
	frame, visible := overlay.Current()
	require.True(t, visible)
	assert.Equal(t, 100.0, frame.W, "list indicators span the zone width")

	adapter.PointerExited()
	_, visible = overlay.Current()
	assert.False(t, visible)
	_, active := s.ActiveZone()
	assert.False(t, active)
}

func TestTargetAdapter_IgnoresStaleEvents(t *testing.T) {
	adapter, s, overlay := newTestAdapter(t, "src", &stubMover{})

	adapter.PointerEntered(geometry.Point{X: 10, Y: 10})
	adapter.PointerMoved(geometry.Point{X: 10, Y: 20})

	_, visible := overlay.Current()
	assert.False(t, visible)
	assert.False(t, s.IsDragging())
}

func TestTargetAdapter_DropCommitsReorder(t *testing.T) {
	mover := &stubMover{}
	adapter, s, overlay := newTestAdapter(t, "src", mover)
	beginTestDrag(s)
	adapter.PointerEntered(geometry.Point{X: 10, Y: 10})

	op, err := adapter.Drop(context.Background(), geometry.Point{X: 10, Y: 500})
	require.NoError(t, err)
	require.NotNil(t, op)

	assert.Equal(t, 2, op.TargetIndex)
	require.Len(t, mover.applied, 1)
	assert.Equal(t, *op, mover.applied[0])
	assert.False(t, s.IsDragging())

	_, visible := overlay.Current()
	assert.False(t, visible, "the indicator clears on drop")
}

func TestTargetAdapter_DropAtSourceIndexIsNoOp(t *testing.T) {
	mover := &stubMover{}
	adapter, s, _ := newTestAdapter(t, "src", mover)
	beginTestDrag(s)

	op, err := adapter.Drop(context.Background(), geometry.Point{X: 10, Y: 0})
	require.NoError(t, err)
	assert.Nil(t, op, "releasing at the original slot commits nothing")
	assert.Empty(t, mover.applied)
	assert.False(t, s.IsDragging())
}

func TestTargetAdapter_DropIntoForeignZone(t *testing.T) {
	mover := &stubMover{}
	adapter, s, _ := newTestAdapter(t, "dst", mover)
	beginTestDrag(s)

	op, err := adapter.Drop(context.Background(), geometry.Point{X: 10, Y: 500})
	require.NoError(t, err)
	require.NotNil(t, op)

	assert.Equal(t, entity.SpacePinned("space-1"), op.Target)
	assert.Equal(t, 1, op.TargetIndex, "foreign drops may append past the last tab")
	require.Len(t, mover.applied, 1)
}

func TestTargetAdapter_DispatchFailureSurfacesError(t *testing.T) {
	mover := &stubMover{err: errors.New("board rejected the move")}
	adapter, s, _ := newTestAdapter(t, "dst", mover)
	beginTestDrag(s)

	op, err := adapter.Drop(context.Background(), geometry.Point{X: 10, Y: 10})
	require.Error(t, err)
	assert.NotNil(t, op, "the staged operation is still reported")
	assert.False(t, s.IsDragging())
}

func TestTargetAdapter_EmptyZoneUsesFallbackIndicator(t *testing.T) {
	mover := &stubMover{}
	adapter, s, overlay := newTestAdapter(t, "dst", mover)
	s.registry.RegisterGeometry("dst", geometry.Size{W: 100, H: 30}, 4, 0, nil)
	beginTestDrag(s)

	adapter.PointerEntered(geometry.Point{X: 10, Y: 10})

	frame, visible := overlay.Current()
	require.True(t, visible)
	assert.Equal(t, geometry.Rect{X: 0, Y: 0, W: 100, H: 10}, frame)
}

func TestCommitEmitter_NoMoverConfigured(t *testing.T) {
	emitter := NewCommitEmitter(nil, nil, nil, zerolog.Nop())

	err := emitter.Dispatch(context.Background(), entity.DragOperation{TabID: "a"})
	assert.Error(t, err)
}

func TestCommitEmitter_HistoryFailureIsSwallowed(t *testing.T) {
	mover := &stubMover{}
	emitter := NewCommitEmitter(mover, nil, failingHistory{}, zerolog.Nop())

	err := emitter.Dispatch(context.Background(), entity.DragOperation{TabID: "a"})
	assert.NoError(t, err, "diagnostics writes must not fail the drop")
	assert.Len(t, mover.applied, 1)
}
