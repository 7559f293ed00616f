package usecases

import "errors"

// Validation errors. A use case returns these as failure results before any
// store or network call happens.
var (
	ErrUserIDRequired     = errors.New("user id is required")
	ErrSessionIDRequired  = errors.New("session id is required")
	ErrAnalysisIDRequired = errors.New("analysis id is required")
	ErrAnalysisNotFound   = errors.New("analysis not found")
	ErrProgressNotFound   = errors.New("no progress recorded for user")
	ErrInvalidSwingType   = errors.New("swing type is not a recognized value")
	ErrInvalidDifficulty  = errors.New("difficulty level is not a recognized value")
	ErrInvalidUnits       = errors.New("units system is not a recognized value")
	ErrScoreOutOfRange    = errors.New("score must be between 0 and 100")
	ErrClubTypeRequired   = errors.New("club type is required")
	ErrMessageRequired    = errors.New("feedback message is required")
	ErrInvalidCategory    = errors.New("leaderboard category is not a recognized value")
	ErrInvalidTimeframe   = errors.New("leaderboard timeframe is not a recognized value")
	ErrNoFrames           = errors.New("at least one pose frame is required")
	ErrNoVideo            = errors.New("video payload is empty")
)
