package remote

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fairwaylabs/swinglab/internal/coachapi"
)

// fakeAPI returns canned values or a shared error from every method.
type fakeAPI struct {
	err      error
	tips     []coachapi.CoachingTip
	feedback *coachapi.Feedback
}

func (f *fakeAPI) SubmitSwing(ctx context.Context, req coachapi.SubmitSwingRequest) (*coachapi.SwingSubmission, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &coachapi.SwingSubmission{AnalysisID: "an-1", Status: "queued"}, nil
}

func (f *fakeAPI) UploadVideo(ctx context.Context, sessionID string, video []byte) (*coachapi.VideoUpload, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &coachapi.VideoUpload{SessionID: sessionID, SizeBytes: int64(len(video))}, nil
}

func (f *fakeAPI) GetFeedback(ctx context.Context, analysisID string) (*coachapi.Feedback, error) {
	return f.feedback, f.err
}

func (f *fakeAPI) SubmitFeedback(ctx context.Context, submission coachapi.FeedbackSubmission) error {
	return f.err
}

func (f *fakeAPI) GetCoachingTips(ctx context.Context, level, clubType string) ([]coachapi.CoachingTip, error) {
	return f.tips, f.err
}

func (f *fakeAPI) SyncProgress(ctx context.Context, snapshot coachapi.ProgressSnapshot) error {
	return f.err
}

func (f *fakeAPI) GetLeaderboard(ctx context.Context, category, timeframe string) (*coachapi.Leaderboard, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &coachapi.Leaderboard{Category: category, Timeframe: timeframe}, nil
}

func TestDataSource_SubmitSwing_Success(t *testing.T) {
	ds := NewDataSource(&fakeAPI{})

	res := ds.SubmitSwing(context.Background(), coachapi.SubmitSwingRequest{UserID: "u1"})

	assert.True(t, res.IsSuccess())
	submission, _ := res.Value()
	assert.Equal(t, "an-1", submission.AnalysisID)
}

func TestDataSource_TransportFaultBecomesFailure(t *testing.T) {
	cause := errors.New("connection refused")
	ds := NewDataSource(&fakeAPI{err: cause})

	res := ds.SubmitSwing(context.Background(), coachapi.SubmitSwingRequest{})

	assert.True(t, res.IsFailure())
	assert.ErrorIs(t, res.Err(), cause)
}

func TestDataSource_GetFeedback_AbsenceIsSuccess(t *testing.T) {
	ds := NewDataSource(&fakeAPI{feedback: nil})

	res := ds.GetFeedback(context.Background(), "an-1")

	assert.True(t, res.IsSuccess())
	feedback, ok := res.Value()
	assert.True(t, ok)
	assert.Nil(t, feedback)
}

func TestDataSource_SyncProgress_FailurePassthrough(t *testing.T) {
	ds := NewDataSource(&fakeAPI{err: coachapi.ErrRateLimited})

	res := ds.SyncProgress(context.Background(), coachapi.ProgressSnapshot{UserID: "u1"})

	assert.True(t, res.IsFailure())
	assert.ErrorIs(t, res.Err(), coachapi.ErrRateLimited)
}

func TestDataSource_GetCoachingTips_Success(t *testing.T) {
	ds := NewDataSource(&fakeAPI{tips: []coachapi.CoachingTip{{ID: "tip-1"}}})

	res := ds.GetCoachingTips(context.Background(), "Beginner", "driver")

	assert.True(t, res.IsSuccess())
	tips, _ := res.Value()
	assert.Len(t, tips, 1)
}
