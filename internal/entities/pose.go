package entities

import (
	"time"

	"gorm.io/datatypes"
)

// PoseDetection is a single frame of body keypoints captured during a
// session recording. Keypoints is the raw landmark array from the detector.
type PoseDetection struct {
	ID          string         `gorm:"primaryKey;size:36" json:"id"`
	SessionID   string         `gorm:"index;size:36" json:"session_id"`
	FrameIndex  int            `gorm:"index" json:"frame_index"`
	TimestampMs int64          `json:"timestamp_ms"`
	Keypoints   datatypes.JSON `json:"keypoints"`
	Confidence  float64        `json:"confidence"`
	CreatedAt   time.Time      `json:"created_at"`
}

func (PoseDetection) TableName() string {
	return "pose_detections"
}
