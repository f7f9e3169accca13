// Package repository defines persistence interfaces for the drag engine's
// diagnostics. Implementations live under internal/infrastructure.
package repository

import (
	"context"
	"time"

	"github.com/bnema/tabdrag/internal/domain/entity"
)

// RecordedOperation is one committed DragOperation with its apply time.
type RecordedOperation struct {
	ID        int64
	Operation entity.DragOperation
	AppliedAt time.Time
}

// OperationHistoryRepository persists committed drag operations for the
// `tabdrag history` diagnostics command.
type OperationHistoryRepository interface {
	// Record stores one applied operation.
	Record(ctx context.Context, op entity.DragOperation, appliedAt time.Time) error

	// Recent returns the most recent operations, newest first.
	Recent(ctx context.Context, limit int) ([]RecordedOperation, error)

	// Purge deletes records older than the cutoff, returning the count removed.
	Purge(ctx context.Context, olderThan time.Time) (int64, error)
}
