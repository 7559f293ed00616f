package usecases

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fairwaylabs/swinglab/internal/coachapi"
	"github.com/fairwaylabs/swinglab/internal/entities"
	"github.com/fairwaylabs/swinglab/internal/result"
)

// Leaderboard request enumerations. The backend rejects anything else, so
// the use case refuses them before the request goes out.
var (
	leaderboardCategories = map[string]bool{
		"drive_distance": true,
		"accuracy":       true,
		"consistency":    true,
		"overall":        true,
	}
	leaderboardTimeframes = map[string]bool{
		"daily":    true,
		"weekly":   true,
		"monthly":  true,
		"all_time": true,
	}
)

// SubmitSwingForAnalysisParams carries one swing to submit remotely.
type SubmitSwingForAnalysisParams struct {
	UserID     string
	SessionID  string
	SwingType  entities.SwingType
	RecordedAt time.Time
	Keypoints  json.RawMessage
}

// SubmitSwingForAnalysis validates and forwards one swing submission.
type SubmitSwingForAnalysis struct {
	gateway RemoteGateway
}

func NewSubmitSwingForAnalysis(gateway RemoteGateway) *SubmitSwingForAnalysis {
	return &SubmitSwingForAnalysis{gateway: gateway}
}

func (uc *SubmitSwingForAnalysis) Execute(ctx context.Context, params SubmitSwingForAnalysisParams) result.Result[coachapi.SwingSubmission] {
	if params.UserID == "" {
		return result.Failure[coachapi.SwingSubmission](ErrUserIDRequired)
	}
	if params.SessionID == "" {
		return result.Failure[coachapi.SwingSubmission](ErrSessionIDRequired)
	}
	if !params.SwingType.IsValid() {
		return result.Failure[coachapi.SwingSubmission](ErrInvalidSwingType)
	}

	return uc.gateway.SubmitSwing(ctx, coachapi.SubmitSwingRequest{
		UserID:     params.UserID,
		SessionID:  params.SessionID,
		SwingType:  string(params.SwingType),
		RecordedAt: params.RecordedAt,
		Keypoints:  params.Keypoints,
	})
}

// UploadSwingVideoParams carries raw video bytes for a session.
type UploadSwingVideoParams struct {
	SessionID string
	Video     []byte
}

// UploadSwingVideo validates and forwards a video upload.
type UploadSwingVideo struct {
	gateway RemoteGateway
}

func NewUploadSwingVideo(gateway RemoteGateway) *UploadSwingVideo {
	return &UploadSwingVideo{gateway: gateway}
}

func (uc *UploadSwingVideo) Execute(ctx context.Context, params UploadSwingVideoParams) result.Result[coachapi.VideoUpload] {
	if params.SessionID == "" {
		return result.Failure[coachapi.VideoUpload](ErrSessionIDRequired)
	}
	if len(params.Video) == 0 {
		return result.Failure[coachapi.VideoUpload](ErrNoVideo)
	}

	return uc.gateway.UploadVideo(ctx, params.SessionID, params.Video)
}

// GetCoachingTipsParams selects tips by user level and club type.
type GetCoachingTipsParams struct {
	Level    entities.Difficulty
	ClubType string
}

// GetCoachingTips validates and forwards a tips request.
type GetCoachingTips struct {
	gateway RemoteGateway
}

func NewGetCoachingTips(gateway RemoteGateway) *GetCoachingTips {
	return &GetCoachingTips{gateway: gateway}
}

func (uc *GetCoachingTips) Execute(ctx context.Context, params GetCoachingTipsParams) result.Result[[]coachapi.CoachingTip] {
	if !params.Level.IsValid() {
		return result.Failure[[]coachapi.CoachingTip](ErrInvalidDifficulty)
	}
	if params.ClubType == "" {
		return result.Failure[[]coachapi.CoachingTip](ErrClubTypeRequired)
	}

	return uc.gateway.GetCoachingTips(ctx, string(params.Level), params.ClubType)
}

// GetLeaderboardParams selects a leaderboard slice.
type GetLeaderboardParams struct {
	Category  string
	Timeframe string
}

// GetLeaderboard validates and forwards a leaderboard request.
type GetLeaderboard struct {
	gateway RemoteGateway
}

func NewGetLeaderboard(gateway RemoteGateway) *GetLeaderboard {
	return &GetLeaderboard{gateway: gateway}
}

func (uc *GetLeaderboard) Execute(ctx context.Context, params GetLeaderboardParams) result.Result[coachapi.Leaderboard] {
	if !leaderboardCategories[params.Category] {
		return result.Failure[coachapi.Leaderboard](ErrInvalidCategory)
	}
	if !leaderboardTimeframes[params.Timeframe] {
		return result.Failure[coachapi.Leaderboard](ErrInvalidTimeframe)
	}

	return uc.gateway.GetLeaderboard(ctx, params.Category, params.Timeframe)
}

// SyncUserProgressParams identifies whose progress to push.
type SyncUserProgressParams struct {
	UserID string
}

// SyncUserProgress loads the stored progress summary and pushes it to the
// backend. The record must already exist; there is nothing to push otherwise.
type SyncUserProgress struct {
	store   ProgressStore
	gateway RemoteGateway
}

func NewSyncUserProgress(store ProgressStore, gateway RemoteGateway) *SyncUserProgress {
	return &SyncUserProgress{store: store, gateway: gateway}
}

func (uc *SyncUserProgress) Execute(ctx context.Context, params SyncUserProgressParams) result.Result[struct{}] {
	if params.UserID == "" {
		return result.Failure[struct{}](ErrUserIDRequired)
	}

	progress, err := uc.store.GetForUser(params.UserID)
	if err != nil {
		return result.Failure[struct{}](err)
	}
	if progress == nil {
		return result.Failure[struct{}](ErrProgressNotFound)
	}

	return uc.gateway.SyncProgress(ctx, coachapi.ProgressSnapshot{
		UserID:            progress.UserID,
		TotalSwings:       progress.TotalSwings,
		SessionsCompleted: progress.SessionsCompleted,
		AverageScore:      progress.AverageScore,
		BestScore:         progress.BestScore,
		StreakDays:        progress.StreakDays,
		LastSessionAt:     progress.LastSessionAt,
	})
}

// SubmitUserFeedbackParams carries free-form user feedback.
type SubmitUserFeedbackParams struct {
	UserID   string
	Category string
	Message  string
	Rating   int
}

// SubmitUserFeedback validates and forwards a feedback submission.
type SubmitUserFeedback struct {
	gateway RemoteGateway
}

func NewSubmitUserFeedback(gateway RemoteGateway) *SubmitUserFeedback {
	return &SubmitUserFeedback{gateway: gateway}
}

func (uc *SubmitUserFeedback) Execute(ctx context.Context, params SubmitUserFeedbackParams) result.Result[struct{}] {
	if params.UserID == "" {
		return result.Failure[struct{}](ErrUserIDRequired)
	}
	if params.Message == "" {
		return result.Failure[struct{}](ErrMessageRequired)
	}

	return uc.gateway.SubmitFeedback(ctx, coachapi.FeedbackSubmission{
		UserID:   params.UserID,
		Category: params.Category,
		Message:  params.Message,
		Rating:   params.Rating,
	})
}
