// Package usecase contains application use cases operating on domain
// entities. They are pure domain manipulation with no infrastructure
// dependencies.
package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/tabdrag/internal/domain/entity"
)

// ApplyDragOperationUseCase is the reference tab-ownership collaborator:
// it validates a DragOperation against the board's live state and performs
// the move as a single atomic step (the tab is never observable as absent
// from both containers, nor present in both).
//
// Same-container semantics: the tab is removed from its source index and
// inserted at the raw target index of the shortened list, so dragging the
// head of [A,B,C] to insertion index 2 yields [B,C,A].
type ApplyDragOperationUseCase struct {
	board *entity.Board
}

// NewApplyDragOperationUseCase creates a use case bound to a board.
func NewApplyDragOperationUseCase(board *entity.Board) *ApplyDragOperationUseCase {
	return &ApplyDragOperationUseCase{board: board}
}

// ApplyDragOperationInput carries the single commit artifact of one drag.
type ApplyDragOperationInput struct {
	Operation entity.DragOperation
}

// ApplyDragOperationOutput reports the applied move.
type ApplyDragOperationOutput struct {
	Moved       *entity.Tab
	TargetIndex int // Actual index after clamping against live state
}

// Execute validates and applies the operation.
func (uc *ApplyDragOperationUseCase) Execute(_ context.Context, input ApplyDragOperationInput) (*ApplyDragOperationOutput, error) {
	if err := uc.validate(input.Operation); err != nil {
		return nil, err
	}

	op := input.Operation
	tab := uc.board.RemoveAt(op.Source, op.SourceIndex)
	if tab == nil {
		return nil, fmt.Errorf("no tab at %s#%d", op.Source, op.SourceIndex)
	}
	if tab.ID != op.TabID {
		// Live state diverged from the drag's snapshot; put it back.
		uc.board.Insert(op.Source, op.SourceIndex, tab)
		return nil, fmt.Errorf("tab at %s#%d is %s, not %s", op.Source, op.SourceIndex, tab.ID, op.TabID)
	}

	target := op.TargetIndex
	if target > uc.board.Len(op.Target) {
		target = uc.board.Len(op.Target)
	}
	uc.board.Insert(op.Target, target, tab)

	return &ApplyDragOperationOutput{Moved: tab, TargetIndex: target}, nil
}

// ApplyDragOperation implements port.TabMover.
func (uc *ApplyDragOperationUseCase) ApplyDragOperation(ctx context.Context, op entity.DragOperation) error {
	_, err := uc.Execute(ctx, ApplyDragOperationInput{Operation: op})
	return err
}

func (uc *ApplyDragOperationUseCase) validate(op entity.DragOperation) error {
	if uc == nil || uc.board == nil {
		return fmt.Errorf("board is required")
	}
	if op.TabID == "" {
		return fmt.Errorf("tab id is required")
	}
	if op.SourceIndex < 0 {
		return fmt.Errorf("source index must not be negative: %d", op.SourceIndex)
	}
	if op.TargetIndex < 0 {
		return fmt.Errorf("target index must not be negative: %d", op.TargetIndex)
	}
	if op.SourceIndex >= uc.board.Len(op.Source) {
		return fmt.Errorf("source index %d out of range for %s (len %d)",
			op.SourceIndex, op.Source, uc.board.Len(op.Source))
	}
	if op.Source == op.Target && op.SourceIndex == op.TargetIndex {
		return fmt.Errorf("no-op move for tab %s", op.TabID)
	}
	return nil
}
