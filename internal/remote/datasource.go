// Package remote adapts the coaching API client into the uniform result
// shape the use-case layer speaks. Every method is a 1:1 forward of one API
// call; this is the only place a transport fault becomes a failure value, so
// callers above never see a raw error escape.
package remote

import (
	"context"

	"github.com/fairwaylabs/swinglab/internal/coachapi"
	"github.com/fairwaylabs/swinglab/internal/result"
)

// API is the subset of the coaching API client the data source forwards to.
type API interface {
	SubmitSwing(ctx context.Context, req coachapi.SubmitSwingRequest) (*coachapi.SwingSubmission, error)
	UploadVideo(ctx context.Context, sessionID string, video []byte) (*coachapi.VideoUpload, error)
	GetFeedback(ctx context.Context, analysisID string) (*coachapi.Feedback, error)
	SubmitFeedback(ctx context.Context, submission coachapi.FeedbackSubmission) error
	GetCoachingTips(ctx context.Context, level, clubType string) ([]coachapi.CoachingTip, error)
	SyncProgress(ctx context.Context, snapshot coachapi.ProgressSnapshot) error
	GetLeaderboard(ctx context.Context, category, timeframe string) (*coachapi.Leaderboard, error)
}

var _ API = (*coachapi.Client)(nil)

// DataSource wraps the coaching API in uniform results.
type DataSource struct {
	api API
}

// NewDataSource creates a data source over the given API client.
func NewDataSource(api API) *DataSource {
	return &DataSource{api: api}
}

// SubmitSwing submits a swing for analysis.
func (d *DataSource) SubmitSwing(ctx context.Context, req coachapi.SubmitSwingRequest) result.Result[coachapi.SwingSubmission] {
	submission, err := d.api.SubmitSwing(ctx, req)
	if err != nil {
		return result.Failure[coachapi.SwingSubmission](err)
	}
	return result.Success(*submission)
}

// UploadVideo uploads raw video bytes for a session.
func (d *DataSource) UploadVideo(ctx context.Context, sessionID string, video []byte) result.Result[coachapi.VideoUpload] {
	upload, err := d.api.UploadVideo(ctx, sessionID, video)
	if err != nil {
		return result.Failure[coachapi.VideoUpload](err)
	}
	return result.Success(*upload)
}

// GetFeedback fetches feedback for an analysis. Feedback that is not ready
// yet surfaces as a success with a nil payload, matching the read-path rule
// that absence is not an error.
func (d *DataSource) GetFeedback(ctx context.Context, analysisID string) result.Result[*coachapi.Feedback] {
	feedback, err := d.api.GetFeedback(ctx, analysisID)
	if err != nil {
		return result.Failure[*coachapi.Feedback](err)
	}
	return result.Success(feedback)
}

// SubmitFeedback sends a user's free-form feedback.
func (d *DataSource) SubmitFeedback(ctx context.Context, submission coachapi.FeedbackSubmission) result.Result[struct{}] {
	if err := d.api.SubmitFeedback(ctx, submission); err != nil {
		return result.Failure[struct{}](err)
	}
	return result.Success(struct{}{})
}

// GetCoachingTips fetches tips for a user level and club type.
func (d *DataSource) GetCoachingTips(ctx context.Context, level, clubType string) result.Result[[]coachapi.CoachingTip] {
	tips, err := d.api.GetCoachingTips(ctx, level, clubType)
	if err != nil {
		return result.Failure[[]coachapi.CoachingTip](err)
	}
	return result.Success(tips)
}

// SyncProgress pushes a progress snapshot.
func (d *DataSource) SyncProgress(ctx context.Context, snapshot coachapi.ProgressSnapshot) result.Result[struct{}] {
	if err := d.api.SyncProgress(ctx, snapshot); err != nil {
		return result.Failure[struct{}](err)
	}
	return result.Success(struct{}{})
}

// GetLeaderboard fetches a leaderboard for a category and timeframe.
func (d *DataSource) GetLeaderboard(ctx context.Context, category, timeframe string) result.Result[coachapi.Leaderboard] {
	board, err := d.api.GetLeaderboard(ctx, category, timeframe)
	if err != nil {
		return result.Failure[coachapi.Leaderboard](err)
	}
	return result.Success(*board)
}
