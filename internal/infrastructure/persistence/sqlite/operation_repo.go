package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/bnema/tabdrag/internal/domain/entity"
	"github.com/bnema/tabdrag/internal/domain/repository"
	"github.com/bnema/tabdrag/internal/logging"
)

type operationRepo struct {
	db *sql.DB
}

// NewOperationHistoryRepository creates the SQLite-backed operation log.
func NewOperationHistoryRepository(db *sql.DB) repository.OperationHistoryRepository {
	return &operationRepo{db: db}
}

func (r *operationRepo) Record(ctx context.Context, op entity.DragOperation, appliedAt time.Time) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("op", op.String()).Msg("recording drag operation")

	_, err := r.db.ExecContext(ctx, `
INSERT INTO drag_operations (
    tab_id,
    source_kind, source_group, source_folder, source_index,
    target_kind, target_group, target_folder, target_index,
    applied_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(op.TabID),
		int(op.Source.Kind), string(op.Source.GroupID), string(op.Source.FolderID), op.SourceIndex,
		int(op.Target.Kind), string(op.Target.GroupID), string(op.Target.FolderID), op.TargetIndex,
		appliedAt.UTC(),
	)
	return err
}

func (r *operationRepo) Recent(ctx context.Context, limit int) ([]repository.RecordedOperation, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT id,
       tab_id,
       source_kind, source_group, source_folder, source_index,
       target_kind, target_group, target_folder, target_index,
       applied_at
FROM drag_operations
ORDER BY applied_at DESC, id DESC
LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []repository.RecordedOperation
	for rows.Next() {
		var (
			rec                 repository.RecordedOperation
			tabID               string
			srcKind, tgtKind    int
			srcGroup, srcFolder string
			tgtGroup, tgtFolder string
			srcIndex, tgtIndex  int
			appliedAt           time.Time
		)
		if err := rows.Scan(
			&rec.ID, &tabID,
			&srcKind, &srcGroup, &srcFolder, &srcIndex,
			&tgtKind, &tgtGroup, &tgtFolder, &tgtIndex,
			&appliedAt,
		); err != nil {
			return nil, err
		}

		target := entity.Container{
			Kind:     entity.ContainerKind(tgtKind),
			GroupID:  entity.GroupID(tgtGroup),
			FolderID: entity.FolderID(tgtFolder),
		}
		rec.Operation = entity.DragOperation{
			TabID: entity.TabID(tabID),
			Source: entity.Container{
				Kind:     entity.ContainerKind(srcKind),
				GroupID:  entity.GroupID(srcGroup),
				FolderID: entity.FolderID(srcFolder),
			},
			SourceIndex: srcIndex,
			Target:      target,
			TargetIndex: tgtIndex,
			GroupID:     target.GroupingID(),
		}
		rec.AppliedAt = appliedAt
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *operationRepo) Purge(ctx context.Context, olderThan time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM drag_operations WHERE applied_at < ?`, olderThan.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
