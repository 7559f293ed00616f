package settings

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairwaylabs/swinglab/internal/database"
	"github.com/fairwaylabs/swinglab/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_settings_" + t.Name() + ".db"

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

	s := entities.DefaultUserSettings("u1")
	s.Difficulty = entities.DifficultyAdvanced
	require.NoError(t, repo.Upsert(&s))

	got, err := repo.GetForUser("u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entities.DifficultyAdvanced, got.Difficulty)
	assert.Equal(t, entities.UnitsImperial, got.Units)
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

	first := entities.DefaultUserSettings("u1")
	require.NoError(t, repo.Upsert(&first))

	second := entities.DefaultUserSettings("u1")
	second.Units = entities.UnitsMetric
	require.NoError(t, repo.Upsert(&second))

	got, err := repo.GetForUser("u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entities.UnitsMetric, got.Units)

	var count int64
	// One row per user regardless of how many upserts happen.
	require.NoError(t, repo.db.DB.Model(&entities.UserSettings{}).
		Where("user_id = ?", "u1").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRepository_DeleteForUser(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	s := entities.DefaultUserSettings("u1")
	require.NoError(t, repo.Upsert(&s))
	require.NoError(t, repo.DeleteForUser("u1"))

	got, err := repo.GetForUser("u1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRepository_WatchForUser(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watch, err := repo.WatchForUser(ctx, "u1")
	require.NoError(t, err)

	select {
	case snapshot := <-watch:
		assert.Nil(t, snapshot, "no settings yet")
	case <-time.After(time.Second):
		t.Fatal("expected initial snapshot")
	}

	s := entities.DefaultUserSettings("u1")
	require.NoError(t, repo.Upsert(&s))

	select {
	case snapshot := <-watch:
		require.NotNil(t, snapshot)
		assert.Equal(t, "u1", snapshot.UserID)
	case <-time.After(time.Second):
		t.Fatal("expected refreshed snapshot after upsert")
	}
}
