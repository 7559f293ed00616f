package poses

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/fairwaylabs/swinglab/internal/database"
	"github.com/fairwaylabs/swinglab/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_poses_" + t.Name() + ".db"

	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func newFrame(id, sessionID string, frameIndex int, confidence float64) entities.PoseDetection {
	return entities.PoseDetection{
		ID:          id,
		SessionID:   sessionID,
		FrameIndex:  frameIndex,
		TimestampMs: int64(frameIndex) * 33,
		Keypoints:   datatypes.JSON([]byte(`[{"x":0.5,"y":0.5}]`)),
		Confidence:  confidence,
	}
}

func TestRepository_SaveBatchAndGetForSession(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	batch := []entities.PoseDetection{
		newFrame("p2", "s1", 2, 0.9),
		newFrame("p1", "s1", 1, 0.8),
		newFrame("p3", "s2", 1, 0.7),
	}
	require.NoError(t, repo.SaveBatch(batch))

	got, err := repo.GetForSession("s1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].FrameIndex, "frames come back in frame order")
	assert.Equal(t, 2, got[1].FrameIndex)
}

func TestRepository_SaveBatch_Empty(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.SaveBatch(nil))
}

func TestRepository_GetHighConfidence(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.SaveBatch([]entities.PoseDetection{
		newFrame("p1", "s1", 1, 0.4),
		newFrame("p2", "s1", 2, 0.95),
	}))

	got, err := repo.GetHighConfidence("s1", 0.9)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p2", got[0].ID)
}

func TestRepository_GetByID_Absent(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	got, err := repo.GetByID("missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRepository_DeleteForSession(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.SaveBatch([]entities.PoseDetection{
		newFrame("p1", "s1", 1, 0.8),
		newFrame("p2", "s2", 1, 0.8),
	}))

	require.NoError(t, repo.DeleteForSession("s1"))

	count, err := repo.CountForSession("s1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	other, err := repo.CountForSession("s2")
	require.NoError(t, err)
	assert.Equal(t, int64(1), other)
}

func TestRepository_WatchForSession(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watch, err := repo.WatchForSession(ctx, "s1")
	require.NoError(t, err)

	select {
	case snapshot := <-watch:
		assert.Empty(t, snapshot)
	case <-time.After(time.Second):
		t.Fatal("expected initial snapshot")
	}

	require.NoError(t, repo.SaveBatch([]entities.PoseDetection{
		newFrame("p1", "s1", 1, 0.8),
	}))

	select {
	case snapshot := <-watch:
		assert.Len(t, snapshot, 1)
	case <-time.After(time.Second):
		t.Fatal("expected refreshed snapshot after batch write")
	}
}
