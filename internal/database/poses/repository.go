// Package poses provides database operations for pose detection frames.
//
// Frames arrive in bursts from the on-device detector, so writes are
// batch-oriented and reads are scoped to a session.
package poses

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fairwaylabs/swinglab/internal/database"
	"github.com/fairwaylabs/swinglab/internal/entities"
)

// Repository handles all pose detection database operations.
type Repository struct {
	db *database.Database
}

// NewRepository creates a new poses repository.
func NewRepository(db *database.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) notify() {
	r.db.NotifyChange(entities.PoseDetection{}.TableName())
}

// GetByID retrieves a pose frame by ID. Returns (nil, nil) when absent.
func (r *Repository) GetByID(id string) (*entities.PoseDetection, error) {
	var pose entities.PoseDetection
	err := r.db.DB.Where("id = ?", id).First(&pose).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pose, nil
}

// GetForSession returns every frame of a session in frame order.
func (r *Repository) GetForSession(sessionID string) ([]entities.PoseDetection, error) {
	var poses []entities.PoseDetection
	err := r.db.DB.Where("session_id = ?", sessionID).
		Order("frame_index ASC").Find(&poses).Error
	return poses, err
}

// GetHighConfidence returns a session's frames at or above the confidence
// threshold, in frame order.
func (r *Repository) GetHighConfidence(sessionID string, min float64) ([]entities.PoseDetection, error) {
	var poses []entities.PoseDetection
	err := r.db.DB.Where("session_id = ? AND confidence >= ?", sessionID, min).
		Order("frame_index ASC").Find(&poses).Error
	return poses, err
}

// CountForSession returns the number of frames stored for a session.
func (r *Repository) CountForSession(sessionID string) (int64, error) {
	var count int64
	err := r.db.DB.Model(&entities.PoseDetection{}).
		Where("session_id = ?", sessionID).Count(&count).Error
	return count, err
}

// Save inserts a frame, replacing any existing record with the same ID.
func (r *Repository) Save(pose *entities.PoseDetection) error {
	err := r.db.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(pose).Error
	if err != nil {
		return err
	}
	r.notify()
	return nil
}

// SaveBatch inserts a burst of frames with replace-on-collision semantics.
// A single notification covers the whole batch.
func (r *Repository) SaveBatch(batch []entities.PoseDetection) error {
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

// DeleteForSession removes every frame belonging to a session.
func (r *Repository) DeleteForSession(sessionID string) error {
	err := r.db.DB.Where("session_id = ?", sessionID).Delete(&entities.PoseDetection{}).Error
	if err != nil {
		return err
	}
	r.notify()
	return nil
}

// WatchForSession emits the session's frames immediately, then a refreshed
// snapshot whenever the table changes, until ctx is done.
func (r *Repository) WatchForSession(ctx context.Context, sessionID string) (<-chan []entities.PoseDetection, error) {
	snapshot, err := r.GetForSession(sessionID)
	if err != nil {
		return nil, err
	}

	changes, cancel := r.db.SubscribeChanges(entities.PoseDetection{}.TableName())

	out := make(chan []entities.PoseDetection, 1)
	out <- snapshot

	go func() {
		defer cancel()
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case <-changes:
				refreshed, err := r.GetForSession(sessionID)
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
