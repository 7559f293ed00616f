// Package settings provides database operations for per-user settings.
//
// # Usage
//
//	repo := settings.NewRepository(db)
//	current, err := repo.GetForUser(userID)
//
// Each user has at most one settings row, keyed by user ID. Field merging
// for partial updates is the caller's concern; this package writes whole
// records.
package settings

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fairwaylabs/swinglab/internal/database"
	"github.com/fairwaylabs/swinglab/internal/entities"
)

// Repository handles all user settings database operations.
type Repository struct {
	db *database.Database
}

// NewRepository creates a new settings repository.
func NewRepository(db *database.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) notify() {
	r.db.NotifyChange(entities.UserSettings{}.TableName())
}

// GetForUser retrieves a user's settings. Returns (nil, nil) when the user
// has never written settings.
func (r *Repository) GetForUser(userID string) (*entities.UserSettings, error) {
	var settings entities.UserSettings
	err := r.db.DB.Where("user_id = ?", userID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Upsert writes a user's settings, replacing any existing row for the same
// user. Last write wins.
func (r *Repository) Upsert(settings *entities.UserSettings) error {
	err := r.db.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(settings).Error
	if err != nil {
		return err
	}
	r.notify()
	return nil
}

// DeleteForUser removes a user's settings row.
func (r *Repository) DeleteForUser(userID string) error {
	err := r.db.DB.Where("user_id = ?", userID).Delete(&entities.UserSettings{}).Error
	if err != nil {
		return err
	}
	r.notify()
	return nil
}

// WatchForUser emits the user's settings immediately (nil when absent), then
// a refreshed value whenever the table changes, until ctx is done.
func (r *Repository) WatchForUser(ctx context.Context, userID string) (<-chan *entities.UserSettings, error) {
	snapshot, err := r.GetForUser(userID)
	if err != nil {
		return nil, err
	}

	changes, cancel := r.db.SubscribeChanges(entities.UserSettings{}.TableName())

	out := make(chan *entities.UserSettings, 1)
	out <- snapshot

	go func() {
		defer cancel()
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case <-changes:
				refreshed, err := r.GetForUser(userID)
				if err != nil {
					return
				}
				select {
				case out <- refreshed:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
