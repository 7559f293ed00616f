// Package sessions provides database operations for swing sessions.
//
// # Usage
//
//	repo := sessions.NewRepository(db)
//	recent, err := repo.GetAllForUser(userID)
package sessions

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fairwaylabs/swinglab/internal/database"
	"github.com/fairwaylabs/swinglab/internal/entities"
)

// Repository handles all swing session database operations.
type Repository struct {
	db *database.Database
}

// NewRepository creates a new sessions repository.
func NewRepository(db *database.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) notify() {
	r.db.NotifyChange(entities.SwingSession{}.TableName())
}

// GetByID retrieves a session by ID. Returns (nil, nil) when absent.
func (r *Repository) GetByID(id string) (*entities.SwingSession, error) {
	var session entities.SwingSession
	err := r.db.DB.Where("id = ?", id).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// GetAllForUser returns all sessions for a user, newest first.
func (r *Repository) GetAllForUser(userID string) ([]entities.SwingSession, error) {
	var sessions []entities.SwingSession
	err := r.db.DB.Where("user_id = ?", userID).
		Order("started_at DESC").Find(&sessions).Error
	return sessions, err
}

// GetRecentForUser returns up to limit of a user's newest sessions.
func (r *Repository) GetRecentForUser(userID string, limit int) ([]entities.SwingSession, error) {
	var sessions []entities.SwingSession
	query := r.db.DB.Where("user_id = ?", userID).Order("started_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&sessions).Error
	return sessions, err
}

// CountForUser returns the number of sessions a user has stored.
func (r *Repository) CountForUser(userID string) (int64, error) {
	var count int64
	err := r.db.DB.Model(&entities.SwingSession{}).
		Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// Save inserts a session, replacing any existing record with the same ID.
func (r *Repository) Save(session *entities.SwingSession) error {
	err := r.db.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(session).Error
	if err != nil {
		return err
	}
	r.notify()
	return nil
}

// Update writes all fields of an existing session.
func (r *Repository) Update(session *entities.SwingSession) error {
	err := r.db.DB.Save(session).Error
	if err != nil {
		return err
	}
	r.notify()
	return nil
}

// MarkUploaded flags a session's video as delivered to the remote backend.
func (r *Repository) MarkUploaded(id string) error {
	err := r.db.DB.Model(&entities.SwingSession{}).
		Where("id = ?", id).Update("uploaded", true).Error
	if err != nil {
		return err
	}
	r.notify()
	return nil
}

// GetPendingUpload returns sessions that have a recorded video not yet
// uploaded, oldest first.
func (r *Repository) GetPendingUpload() ([]entities.SwingSession, error) {
	var sessions []entities.SwingSession
	err := r.db.DB.Where("video_path <> '' AND uploaded = ?", false).
		Order("started_at ASC").Find(&sessions).Error
	return sessions, err
}

// DeleteByID removes a session by ID.
func (r *Repository) DeleteByID(id string) error {
	err := r.db.DB.Where("id = ?", id).Delete(&entities.SwingSession{}).Error
	if err != nil {
		return err
	}
	r.notify()
	return nil
}

// DeleteAllForUser removes every session belonging to a user.
func (r *Repository) DeleteAllForUser(userID string) error {
	err := r.db.DB.Where("user_id = ?", userID).Delete(&entities.SwingSession{}).Error
	if err != nil {
		return err
	}
	r.notify()
	return nil
}
