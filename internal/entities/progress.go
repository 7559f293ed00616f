package entities

import (
	"time"
)

// UserProgress is the rolling summary of a user's practice history. One row
// per user, recomputed by the caller and replaced wholesale on write.
type UserProgress struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	UserID            string     `gorm:"uniqueIndex;size:36" json:"user_id"`
	TotalSwings       int        `gorm:"default:0" json:"total_swings"`
	SessionsCompleted int        `gorm:"default:0" json:"sessions_completed"`
	AverageScore      float64    `gorm:"default:0" json:"average_score"`
	BestScore         float64    `gorm:"default:0" json:"best_score"`
	StreakDays        int        `gorm:"default:0" json:"streak_days"`
	LastSessionAt     *time.Time `json:"last_session_at,omitempty"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}
