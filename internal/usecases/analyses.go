package usecases

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/fairwaylabs/swinglab/internal/entities"
	"github.com/fairwaylabs/swinglab/internal/result"
)

// SaveSwingAnalysisParams carries a new or replacement analysis record.
// A blank ID gets a generated identifier.
type SaveSwingAnalysisParams struct {
	ID              string
	UserID          string
	SessionID       string
	SwingType       entities.SwingType
	Score           float64
	Recommendations string
	PhaseData       []byte
	Biomechanics    []byte
	RecordedAt      time.Time
}

// SaveSwingAnalysis validates and stores one analysis record.
type SaveSwingAnalysis struct {
	store AnalysisStore
}

func NewSaveSwingAnalysis(store AnalysisStore) *SaveSwingAnalysis {
	return &SaveSwingAnalysis{store: store}
}

func (uc *SaveSwingAnalysis) Execute(params SaveSwingAnalysisParams) result.Result[entities.SwingAnalysis] {
	if params.UserID == "" {
		return result.Failure[entities.SwingAnalysis](ErrUserIDRequired)
	}
	if params.SessionID == "" {
		return result.Failure[entities.SwingAnalysis](ErrSessionIDRequired)
	}
	if !params.SwingType.IsValid() {
		return result.Failure[entities.SwingAnalysis](ErrInvalidSwingType)
	}
	if params.Score < 0 || params.Score > 100 {
		return result.Failure[entities.SwingAnalysis](ErrScoreOutOfRange)
	}

	id := params.ID
	if id == "" {
		id = uuid.New().String()
	}
	recordedAt := params.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now().UTC()
	}

	analysis := entities.SwingAnalysis{
		ID:              id,
		UserID:          params.UserID,
		SessionID:       params.SessionID,
		SwingType:       params.SwingType,
		Score:           params.Score,
		Recommendations: params.Recommendations,
		PhaseData:       datatypes.JSON(params.PhaseData),
		Biomechanics:    datatypes.JSON(params.Biomechanics),
		RecordedAt:      recordedAt,
	}
	if err := uc.store.Save(&analysis); err != nil {
		return result.Failure[entities.SwingAnalysis](err)
	}
	return result.Success(analysis)
}

// GetSwingAnalysesParams selects a user's analyses, optionally narrowed to
// one swing type or a date range.
type GetSwingAnalysesParams struct {
	UserID    string
	SwingType *entities.SwingType
	From, To  *time.Time
}

// GetSwingAnalyses lists a user's analyses newest first.
type GetSwingAnalyses struct {
	store AnalysisStore
}

func NewGetSwingAnalyses(store AnalysisStore) *GetSwingAnalyses {
	return &GetSwingAnalyses{store: store}
}

func (uc *GetSwingAnalyses) Execute(params GetSwingAnalysesParams) result.Result[[]entities.SwingAnalysis] {
	if params.UserID == "" {
		return result.Failure[[]entities.SwingAnalysis](ErrUserIDRequired)
	}
	if params.SwingType != nil && !params.SwingType.IsValid() {
		return result.Failure[[]entities.SwingAnalysis](ErrInvalidSwingType)
	}

	var (
		analyses []entities.SwingAnalysis
		err      error
	)
	switch {
	case params.SwingType != nil:
		analyses, err = uc.store.GetByType(params.UserID, *params.SwingType)
	case params.From != nil && params.To != nil:
		analyses, err = uc.store.GetByDateRange(params.UserID, *params.From, *params.To)
	default:
		analyses, err = uc.store.GetAllForUser(params.UserID)
	}
	if err != nil {
		return result.Failure[[]entities.SwingAnalysis](err)
	}
	return result.Success(analyses)
}

// GetTopAnalysesParams selects a user's best swings.
type GetTopAnalysesParams struct {
	UserID string
	Limit  int
}

// GetTopAnalyses lists a user's highest scoring analyses.
type GetTopAnalyses struct {
	store AnalysisStore
}

func NewGetTopAnalyses(store AnalysisStore) *GetTopAnalyses {
	return &GetTopAnalyses{store: store}
}

func (uc *GetTopAnalyses) Execute(params GetTopAnalysesParams) result.Result[[]entities.SwingAnalysis] {
	if params.UserID == "" {
		return result.Failure[[]entities.SwingAnalysis](ErrUserIDRequired)
	}

	analyses, err := uc.store.GetTopByScore(params.UserID, params.Limit)
	if err != nil {
		return result.Failure[[]entities.SwingAnalysis](err)
	}
	return result.Success(analyses)
}

// GetAverageScoreParams identifies whose average to compute.
type GetAverageScoreParams struct {
	UserID string
}

// GetAverageScore returns the user's mean score, nil when no swings exist.
type GetAverageScore struct {
	store AnalysisStore
}

func NewGetAverageScore(store AnalysisStore) *GetAverageScore {
	return &GetAverageScore{store: store}
}

func (uc *GetAverageScore) Execute(params GetAverageScoreParams) result.Result[*float64] {
	if params.UserID == "" {
		return result.Failure[*float64](ErrUserIDRequired)
	}

	avg, err := uc.store.AverageScoreForUser(params.UserID)
	if err != nil {
		return result.Failure[*float64](err)
	}
	return result.Success(avg)
}

// MarkAnalysisProcessedParams carries the backend's completed results for an
// analysis that must already exist locally.
type MarkAnalysisProcessedParams struct {
	AnalysisID      string
	Score           float64
	Recommendations string
	PhaseData       []byte
	Biomechanics    []byte
}

// MarkAnalysisProcessed attaches backend results to a stored analysis and
// flags it processed. A missing record is a validation failure, not a silent
// insert.
type MarkAnalysisProcessed struct {
	store AnalysisStore
}

func NewMarkAnalysisProcessed(store AnalysisStore) *MarkAnalysisProcessed {
	return &MarkAnalysisProcessed{store: store}
}

func (uc *MarkAnalysisProcessed) Execute(params MarkAnalysisProcessedParams) result.Result[entities.SwingAnalysis] {
	if params.AnalysisID == "" {
		return result.Failure[entities.SwingAnalysis](ErrAnalysisIDRequired)
	}
	if params.Score < 0 || params.Score > 100 {
		return result.Failure[entities.SwingAnalysis](ErrScoreOutOfRange)
	}

	existing, err := uc.store.GetByID(params.AnalysisID)
	if err != nil {
		return result.Failure[entities.SwingAnalysis](err)
	}
	if existing == nil {
		return result.Failure[entities.SwingAnalysis](ErrAnalysisNotFound)
	}

	existing.Score = params.Score
	existing.Recommendations = params.Recommendations
	if params.PhaseData != nil {
		existing.PhaseData = datatypes.JSON(params.PhaseData)
	}
	if params.Biomechanics != nil {
		existing.Biomechanics = datatypes.JSON(params.Biomechanics)
	}
	existing.Processed = true

	if err := uc.store.Update(existing); err != nil {
		return result.Failure[entities.SwingAnalysis](err)
	}
	return result.Success(*existing)
}

// DeleteAnalysisParams identifies the analysis to remove.
type DeleteAnalysisParams struct {
	AnalysisID string
}

// DeleteAnalysis removes one analysis. Deleting an absent record is a no-op
// success.
type DeleteAnalysis struct {
	store AnalysisStore
}

func NewDeleteAnalysis(store AnalysisStore) *DeleteAnalysis {
	return &DeleteAnalysis{store: store}
}

func (uc *DeleteAnalysis) Execute(params DeleteAnalysisParams) result.Result[struct{}] {
	if params.AnalysisID == "" {
		return result.Failure[struct{}](ErrAnalysisIDRequired)
	}

	if err := uc.store.DeleteByID(params.AnalysisID); err != nil {
		return result.Failure[struct{}](err)
	}
	return result.Success(struct{}{})
}

// PoseFrame is one detector frame in a RecordPoseFrames batch.
type PoseFrame struct {
	FrameIndex  int
	TimestampMs int64
	Keypoints   []byte
	Confidence  float64
}

// RecordPoseFramesParams carries a burst of frames for one session.
type RecordPoseFramesParams struct {
	SessionID string
	Frames    []PoseFrame
}

// RecordPoseFrames stores a detector burst as pose detection records.
type RecordPoseFrames struct {
	store PoseStore
}

func NewRecordPoseFrames(store PoseStore) *RecordPoseFrames {
	return &RecordPoseFrames{store: store}
}

func (uc *RecordPoseFrames) Execute(params RecordPoseFramesParams) result.Result[int] {
	if params.SessionID == "" {
		return result.Failure[int](ErrSessionIDRequired)
	}
	if len(params.Frames) == 0 {
		return result.Failure[int](ErrNoFrames)
	}

	batch := make([]entities.PoseDetection, 0, len(params.Frames))
	for _, frame := range params.Frames {
		batch = append(batch, entities.PoseDetection{
			ID:          uuid.New().String(),
			SessionID:   params.SessionID,
			FrameIndex:  frame.FrameIndex,
			TimestampMs: frame.TimestampMs,
			Keypoints:   datatypes.JSON(frame.Keypoints),
			Confidence:  frame.Confidence,
		})
	}

	if err := uc.store.SaveBatch(batch); err != nil {
		return result.Failure[int](err)
	}
	return result.Success(len(batch))
}
