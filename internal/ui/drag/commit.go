package drag

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/tabdrag/internal/application/port"
	"github.com/bnema/tabdrag/internal/domain/entity"
	"github.com/bnema/tabdrag/internal/domain/repository"
)

// CommitEmitter hands a completed drag's single DragOperation to the
// tab-ownership collaborator, emits the commit cue, and optionally records
// the operation for diagnostics. At most one dispatch happens per drag.
type CommitEmitter struct {
	mover    port.TabMover
	feedback port.FeedbackSink
	history  repository.OperationHistoryRepository
	logger   zerolog.Logger
}

// NewCommitEmitter creates an emitter. history may be nil when diagnostics
// recording is disabled.
func NewCommitEmitter(mover port.TabMover, feedback port.FeedbackSink, history repository.OperationHistoryRepository, logger zerolog.Logger) *CommitEmitter {
	return &CommitEmitter{
		mover:    mover,
		feedback: feedback,
		history:  history,
		logger:   logger.With().Str("component", "commit-emitter").Logger(),
	}
}

// Dispatch applies one operation through the collaborator. The collaborator
// owns index validation against its live state; the engine does not retry.
func (e *CommitEmitter) Dispatch(ctx context.Context, op entity.DragOperation) error {
	if e.mover == nil {
		return fmt.Errorf("no tab mover configured")
	}
	if err := e.mover.ApplyDragOperation(ctx, op); err != nil {
		return fmt.Errorf("apply drag operation: %w", err)
	}

	e.logger.Info().Str("op", op.String()).Msg("drag operation committed")
	if e.feedback != nil {
		e.feedback.Emit(port.FeedbackDropCommitted)
	}
	if e.history != nil {
		if err := e.history.Record(ctx, op, time.Now()); err != nil {
			// History is diagnostics only; a write failure must not surface
			// as a failed drop.
			e.logger.Warn().Err(err).Msg("failed to record drag operation")
		}
	}
	return nil
}
