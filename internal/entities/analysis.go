package entities

import (
	"time"

	"gorm.io/datatypes"
)

type SwingType string

const (
	SwingTypeDrive SwingType = "drive"
	SwingTypeIron  SwingType = "iron"
	SwingTypeChip  SwingType = "chip"
	SwingTypePutt  SwingType = "putt"
)

// ValidSwingTypes lists every accepted swing type tag.
var ValidSwingTypes = []SwingType{SwingTypeDrive, SwingTypeIron, SwingTypeChip, SwingTypePutt}

func (s SwingType) IsValid() bool {
	for _, v := range ValidSwingTypes {
		if s == v {
			return true
		}
	}
	return false
}

// SwingAnalysis is the stored outcome of analysing a single recorded swing.
// PhaseData and Biomechanics hold the structured payloads produced by the
// analysis backend and are opaque to this layer.
type SwingAnalysis struct {
	ID              string         `gorm:"primaryKey;size:36" json:"id"`
	UserID          string         `gorm:"index;size:36" json:"user_id"`
	SessionID       string         `gorm:"index;size:36" json:"session_id"`
	SwingType       SwingType      `gorm:"index;size:20" json:"swing_type"`
	Score           float64        `json:"score"`
	Recommendations string         `gorm:"type:text" json:"recommendations"`
	PhaseData       datatypes.JSON `json:"phase_data,omitempty"`
	Biomechanics    datatypes.JSON `json:"biomechanics,omitempty"`
	Processed       bool           `gorm:"default:false" json:"processed"`
	Synced          bool           `gorm:"default:false" json:"synced"`
	RecordedAt      time.Time      `gorm:"index" json:"recorded_at"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (SwingAnalysis) TableName() string {
	return "swing_analyses"
}
