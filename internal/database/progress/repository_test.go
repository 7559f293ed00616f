package progress

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairwaylabs/swinglab/internal/database"
	"github.com/fairwaylabs/swinglab/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_progress_" + t.Name() + ".db"

	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func TestRepository_UpsertAndGet(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	last := time.Date(2026, 5, 2, 16, 0, 0, 0, time.UTC)
	p := &entities.UserProgress{
		UserID:            "u1",
		TotalSwings:       120,
		SessionsCompleted: 8,
		AverageScore:      74.2,
		BestScore:         91,
		StreakDays:        3,
		LastSessionAt:     &last,
	}
	require.NoError(t, repo.Upsert(p))

	got, err := repo.GetForUser("u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 120, got.TotalSwings)
	assert.Equal(t, 91.0, got.BestScore)
}

func TestRepository_GetForUser_Absent(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	got, err := repo.GetForUser("nobody")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRepository_Upsert_ReplacesExistingRow(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Upsert(&entities.UserProgress{UserID: "u1", TotalSwings: 10}))
	require.NoError(t, repo.Upsert(&entities.UserProgress{UserID: "u1", TotalSwings: 25}))

	got, err := repo.GetForUser("u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 25, got.TotalSwings)
}

func TestRepository_DeleteForUser(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Upsert(&entities.UserProgress{UserID: "u1"}))
	require.NoError(t, repo.DeleteForUser("u1"))

	got, err := repo.GetForUser("u1")
	require.NoError(t, err)
	assert.Nil(t, got)
}
