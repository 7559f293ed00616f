package usecases

import (
	"context"
	"time"

	"github.com/fairwaylabs/swinglab/internal/coachapi"
	"github.com/fairwaylabs/swinglab/internal/entities"
	"github.com/fairwaylabs/swinglab/internal/result"
)

// SettingsStore is the slice of the settings repository the settings use
// cases need.
type SettingsStore interface {
	GetForUser(userID string) (*entities.UserSettings, error)
	Upsert(settings *entities.UserSettings) error
}

// AnalysisStore is the slice of the analyses repository the analysis use
// cases need.
type AnalysisStore interface {
	GetByID(id string) (*entities.SwingAnalysis, error)
	GetAllForUser(userID string) ([]entities.SwingAnalysis, error)
	GetByType(userID string, swingType entities.SwingType) ([]entities.SwingAnalysis, error)
	GetByDateRange(userID string, from, to time.Time) ([]entities.SwingAnalysis, error)
	GetTopByScore(userID string, n int) ([]entities.SwingAnalysis, error)
	AverageScoreForUser(userID string) (*float64, error)
	Save(analysis *entities.SwingAnalysis) error
	Update(analysis *entities.SwingAnalysis) error
	DeleteByID(id string) error
	DeleteAllForUser(userID string) error
}

// PoseStore is the slice of the poses repository the pose use cases need.
type PoseStore interface {
	SaveBatch(batch []entities.PoseDetection) error
}

// ProgressStore is the slice of the progress repository the sync use case
// needs.
type ProgressStore interface {
	GetForUser(userID string) (*entities.UserProgress, error)
}

// RemoteGateway is the remote data source surface the network-facing use
// cases forward to.
type RemoteGateway interface {
	SubmitSwing(ctx context.Context, req coachapi.SubmitSwingRequest) result.Result[coachapi.SwingSubmission]
	UploadVideo(ctx context.Context, sessionID string, video []byte) result.Result[coachapi.VideoUpload]
	SubmitFeedback(ctx context.Context, submission coachapi.FeedbackSubmission) result.Result[struct{}]
	GetCoachingTips(ctx context.Context, level, clubType string) result.Result[[]coachapi.CoachingTip]
	SyncProgress(ctx context.Context, snapshot coachapi.ProgressSnapshot) result.Result[struct{}]
	GetLeaderboard(ctx context.Context, category, timeframe string) result.Result[coachapi.Leaderboard]
}
