// Package port defines the interfaces the drag engine expects its external
// collaborators to implement: tab ownership, window management, and the
// platform feedback/indicator layers.
package port

import (
	"context"

	"github.com/bnema/tabdrag/internal/domain/entity"
)

// TabMover is the tab-ownership collaborator. It receives at most one
// DragOperation per completed drag and performs the atomic move. The engine
// does not retry or verify the result; the collaborator validates indices
// against its own live state.
type TabMover interface {
	ApplyDragOperation(ctx context.Context, op entity.DragOperation) error
}
