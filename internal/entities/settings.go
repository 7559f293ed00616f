package entities

import (
	"time"
)

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
	DifficultyProfessional Difficulty = "Professional"
)

// ValidDifficulties lists every accepted difficulty level.
var ValidDifficulties = []Difficulty{
	DifficultyBeginner,
	DifficultyIntermediate,
	DifficultyAdvanced,
	DifficultyProfessional,
}

func (d Difficulty) IsValid() bool {
	for _, v := range ValidDifficulties {
		if d == v {
			return true
		}
	}
	return false
}

type UnitsSystem string

const (
	UnitsImperial UnitsSystem = "Imperial"
	UnitsMetric   UnitsSystem = "Metric"
)

func (u UnitsSystem) IsValid() bool {
	return u == UnitsImperial || u == UnitsMetric
}

// UserSettings holds per-user preferences. One row per user.
type UserSettings struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	UserID         string      `gorm:"uniqueIndex;size:36" json:"user_id"`
	PreferredClub  string      `gorm:"size:50" json:"preferred_club"`
	Difficulty     Difficulty  `gorm:"size:20" json:"difficulty"`
	Units          UnitsSystem `gorm:"size:20" json:"units"`
	Notifications  bool        `gorm:"default:true" json:"notifications"`
	SoundEffects   bool        `gorm:"default:true" json:"sound_effects"`
	AutoSaveVideos bool        `gorm:"default:false" json:"auto_save_videos"`
	SwingOverlay   bool        `gorm:"default:true" json:"swing_overlay"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

func (UserSettings) TableName() string {
	return "user_settings"
}

// DefaultUserSettings returns the settings a user starts with before any
// explicit update.
func DefaultUserSettings(userID string) UserSettings {
	return UserSettings{
		UserID:         userID,
		PreferredClub:  "driver",
		Difficulty:     DifficultyBeginner,
		Units:          UnitsImperial,
		Notifications:  true,
		SoundEffects:   true,
		AutoSaveVideos: false,
		SwingOverlay:   true,
	}
}
