// Package progress provides database operations for user progress summaries.
//
// One row per user, replaced wholesale on each write.
package progress

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fairwaylabs/swinglab/internal/database"
	"github.com/fairwaylabs/swinglab/internal/entities"
)

// Repository handles all user progress database operations.
type Repository struct {
	db *database.Database
}

// NewRepository creates a new progress repository.
func NewRepository(db *database.Database) *Repository {
	return &Repository{db: db}
}

// GetForUser retrieves a user's progress summary. Returns (nil, nil) when
// the user has no recorded progress.
func (r *Repository) GetForUser(userID string) (*entities.UserProgress, error) {
	var progress entities.UserProgress
	err := r.db.DB.Where("user_id = ?", userID).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// Upsert writes a user's progress summary, replacing any existing row.
func (r *Repository) Upsert(progress *entities.UserProgress) error {
	err := r.db.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(progress).Error
	if err != nil {
		return err
	}
	r.db.NotifyChange(entities.UserProgress{}.TableName())
	return nil
}

// DeleteForUser removes a user's progress row.
func (r *Repository) DeleteForUser(userID string) error {
	err := r.db.DB.Where("user_id = ?", userID).Delete(&entities.UserProgress{}).Error
	if err != nil {
		return err
	}
	r.db.NotifyChange(entities.UserProgress{}.TableName())
	return nil
}
