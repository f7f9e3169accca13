package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabdrag/internal/domain/entity"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := NewConnection(context.Background(), filepath.Join(t.TempDir(), "test.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func sampleOp(tabID entity.TabID, targetIndex int) entity.DragOperation {
	target := entity.SpacePinned("space-1")
	return entity.DragOperation{
		TabID:       tabID,
		Source:      entity.SpaceRegular("space-1"),
		SourceIndex: 0,
		Target:      target,
		TargetIndex: targetIndex,
		GroupID:     target.GroupingID(),
	}
}

func TestOperationRepo_RecordAndRecent(t *testing.T) {
	repo := NewOperationHistoryRepository(newTestDB(t))
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.Record(ctx, sampleOp("a", 0), now.Add(-2*time.Minute)))
	require.NoError(t, repo.Record(ctx, sampleOp("b", 1), now.Add(-time.Minute)))
	require.NoError(t, repo.Record(ctx, sampleOp("c", 2), now))

	records, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, entity.TabID("c"), records[0].Operation.TabID, "newest first")
	assert.Equal(t, entity.TabID("b"), records[1].Operation.TabID)

	got := records[0].Operation
	assert.Equal(t, entity.SpaceRegular("space-1"), got.Source)
	assert.Equal(t, entity.SpacePinned("space-1"), got.Target)
	require.NotNil(t, got.GroupID)
	assert.Equal(t, entity.GroupID("space-1"), *got.GroupID)
}

func TestOperationRepo_RecentOnEmptyStore(t *testing.T) {
	repo := NewOperationHistoryRepository(newTestDB(t))

	records, err := repo.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestOperationRepo_Purge(t *testing.T) {
	repo := NewOperationHistoryRepository(newTestDB(t))
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.Record(ctx, sampleOp("old", 0), now.Add(-48*time.Hour)))
	require.NoError(t, repo.Record(ctx, sampleOp("new", 1), now))

	deleted, err := repo.Purge(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	records, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, entity.TabID("new"), records[0].Operation.TabID)
}
