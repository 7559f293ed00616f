package entities

import (
	"time"
)

// SwingSession groups the swings recorded in one practice outing.
type SwingSession struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	UserID    string     `gorm:"index;size:36" json:"user_id"`
	ClubType  string     `gorm:"size:50" json:"club_type"`
	Location  string     `gorm:"size:255" json:"location"`
	Notes     string     `gorm:"type:text" json:"notes,omitempty"`
	VideoPath string     `gorm:"size:512" json:"video_path,omitempty"`
	Uploaded  bool       `gorm:"default:false" json:"uploaded"`
	StartedAt time.Time  `gorm:"index" json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (SwingSession) TableName() string {
	return "swing_sessions"
}
