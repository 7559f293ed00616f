// Package analyses provides database operations for swing analyses.
//
// # Usage
//
//	repo := analyses.NewRepository(db)
//	top, err := repo.GetTopByScore(userID, 5)
//
// Read operations model a missing record as a nil result, not an error.
// Update assumes the record already exists; callers must pre-check.
package analyses

import (
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fairwaylabs/swinglab/internal/database"
	"github.com/fairwaylabs/swinglab/internal/entities"
)

// Repository handles all swing analysis database operations.
type Repository struct {
	db *database.Database
}

// NewRepository creates a new analyses repository.
func NewRepository(db *database.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) notify() {
	r.db.NotifyChange(entities.SwingAnalysis{}.TableName())
}

// GetByID retrieves an analysis by ID. Returns (nil, nil) when absent.
func (r *Repository) GetByID(id string) (*entities.SwingAnalysis, error) {
	var analysis entities.SwingAnalysis
	err := r.db.DB.Where("id = ?", id).First(&analysis).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &analysis, nil
}

// GetAllForUser returns all analyses for a user, newest first.
func (r *Repository) GetAllForUser(userID string) ([]entities.SwingAnalysis, error) {
	var analyses []entities.SwingAnalysis
	err := r.db.DB.Where("user_id = ?", userID).
		Order("recorded_at DESC").Find(&analyses).Error
	return analyses, err
}

// GetByType returns a user's analyses of one swing type, newest first.
func (r *Repository) GetByType(userID string, swingType entities.SwingType) ([]entities.SwingAnalysis, error) {
	var analyses []entities.SwingAnalysis
	err := r.db.DB.Where("user_id = ? AND swing_type = ?", userID, swingType).
		Order("recorded_at DESC").Find(&analyses).Error
	return analyses, err
}

// GetByDateRange returns a user's analyses recorded within [from, to], newest first.
func (r *Repository) GetByDateRange(userID string, from, to time.Time) ([]entities.SwingAnalysis, error) {
	var analyses []entities.SwingAnalysis
	err := r.db.DB.Where("user_id = ? AND recorded_at BETWEEN ? AND ?", userID, from, to).
		Order("recorded_at DESC").Find(&analyses).Error
	return analyses, err
}

// GetWithMinScore returns a user's analyses scoring at or above min, best first.
func (r *Repository) GetWithMinScore(userID string, min float64) ([]entities.SwingAnalysis, error) {
	var analyses []entities.SwingAnalysis
	err := r.db.DB.Where("user_id = ? AND score >= ?", userID, min).
		Order("score DESC").Find(&analyses).Error
	return analyses, err
}

// GetUnprocessed returns a user's analyses still awaiting backend processing,
// oldest first so they are worked off in arrival order.
func (r *Repository) GetUnprocessed(userID string) ([]entities.SwingAnalysis, error) {
	var analyses []entities.SwingAnalysis
	err := r.db.DB.Where("user_id = ? AND processed = ?", userID, false).
		Order("recorded_at ASC").Find(&analyses).Error
	return analyses, err
}

// GetTopByScore returns a user's highest scoring analyses, limited to n.
func (r *Repository) GetTopByScore(userID string, n int) ([]entities.SwingAnalysis, error) {
	var analyses []entities.SwingAnalysis
	query := r.db.DB.Where("user_id = ?", userID).Order("score DESC")
	if n > 0 {
		query = query.Limit(n)
	}
	err := query.Find(&analyses).Error
	return analyses, err
}

// CountForUser returns the number of analyses a user has stored.
func (r *Repository) CountForUser(userID string) (int64, error) {
	var count int64
	err := r.db.DB.Model(&entities.SwingAnalysis{}).
		Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// AverageScoreForUser returns the mean score across a user's analyses, or
// nil when the user has none.
func (r *Repository) AverageScoreForUser(userID string) (*float64, error) {
	var avg sql.NullFloat64
	err := r.db.DB.Model(&entities.SwingAnalysis{}).
		Where("user_id = ?", userID).
		Select("AVG(score)").Scan(&avg).Error
	if err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

// Save inserts an analysis, replacing any existing record with the same ID.
// Last write wins on identifier collision.
func (r *Repository) Save(analysis *entities.SwingAnalysis) error {
	err := r.db.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(analysis).Error
	if err != nil {
		return err
	}
	r.notify()
	return nil
}

// SaveBatch inserts a batch of analyses with the same replace-on-collision
// semantics as Save. A single notification covers the whole batch.
func (r *Repository) SaveBatch(batch []entities.SwingAnalysis) error {
	if len(batch) == 0 {
		return nil
	}
	err := r.db.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&batch).Error
	if err != nil {
		return err
	}
	r.notify()
	return nil
}

// Update writes all fields of an existing analysis.
func (r *Repository) Update(analysis *entities.SwingAnalysis) error {
	err := r.db.DB.Save(analysis).Error
	if err != nil {
		return err
	}
	r.notify()
	return nil
}

// MarkSynced flags an analysis as pushed to the remote backend.
func (r *Repository) MarkSynced(id string) error {
	err := r.db.DB.Model(&entities.SwingAnalysis{}).
		Where("id = ?", id).Update("synced", true).Error
	if err != nil {
		return err
	}
	r.notify()
	return nil
}

// GetUnsynced returns all analyses not yet pushed to the remote backend,
// oldest first.
func (r *Repository) GetUnsynced() ([]entities.SwingAnalysis, error) {
	var analyses []entities.SwingAnalysis
	err := r.db.DB.Where("synced = ?", false).
		Order("recorded_at ASC").Find(&analyses).Error
	return analyses, err
}

// DeleteByID removes an analysis by ID.
func (r *Repository) DeleteByID(id string) error {
	err := r.db.DB.Where("id = ?", id).Delete(&entities.SwingAnalysis{}).Error
	if err != nil {
		return err
	}
	r.notify()
	return nil
}

// DeleteAllForUser removes every analysis belonging to a user.
func (r *Repository) DeleteAllForUser(userID string) error {
	err := r.db.DB.Where("user_id = ?", userID).Delete(&entities.SwingAnalysis{}).Error
	if err != nil {
		return err
	}
	r.notify()
	return nil
}
