// Package usecases holds the single-operation request handlers that sit
// between callers and the repositories. Each use case validates its
// parameter bundle, invokes one underlying operation, and returns a uniform
// result. Validation failures short-circuit before any write; lower-layer
// failures pass through unchanged.
package usecases

import (
	"time"

	"github.com/fairwaylabs/swinglab/internal/entities"
	"github.com/fairwaylabs/swinglab/internal/result"
)

// UpdateUserSettingsParams carries a partial settings update. Nil fields
// keep the value currently stored (merge-on-write).
type UpdateUserSettingsParams struct {
	UserID         string
	PreferredClub  *string
	Difficulty     *entities.Difficulty
	Units          *entities.UnitsSystem
	Notifications  *bool
	SoundEffects   *bool
	AutoSaveVideos *bool
	SwingOverlay   *bool
}

// UpdateUserSettings merges a partial update into the user's stored settings
// and stamps the write time.
type UpdateUserSettings struct {
	store SettingsStore
}

func NewUpdateUserSettings(store SettingsStore) *UpdateUserSettings {
	return &UpdateUserSettings{store: store}
}

func (uc *UpdateUserSettings) Execute(params UpdateUserSettingsParams) result.Result[entities.UserSettings] {
	if params.UserID == "" {
		return result.Failure[entities.UserSettings](ErrUserIDRequired)
	}
	if params.Difficulty != nil && !params.Difficulty.IsValid() {
		return result.Failure[entities.UserSettings](ErrInvalidDifficulty)
	}
	if params.Units != nil && !params.Units.IsValid() {
		return result.Failure[entities.UserSettings](ErrInvalidUnits)
	}

	current, err := uc.store.GetForUser(params.UserID)
	if err != nil {
		return result.Failure[entities.UserSettings](err)
	}

	merged := entities.DefaultUserSettings(params.UserID)
	if current != nil {
		merged = *current
	}

	if params.PreferredClub != nil {
		merged.PreferredClub = *params.PreferredClub
	}
	if params.Difficulty != nil {
		merged.Difficulty = *params.Difficulty
	}
	if params.Units != nil {
		merged.Units = *params.Units
	}
	if params.Notifications != nil {
		merged.Notifications = *params.Notifications
	}
	if params.SoundEffects != nil {
		merged.SoundEffects = *params.SoundEffects
	}
	if params.AutoSaveVideos != nil {
		merged.AutoSaveVideos = *params.AutoSaveVideos
	}
	if params.SwingOverlay != nil {
		merged.SwingOverlay = *params.SwingOverlay
	}
	merged.UpdatedAt = time.Now().UTC()

	if err := uc.store.Upsert(&merged); err != nil {
		return result.Failure[entities.UserSettings](err)
	}
	return result.Success(merged)
}

// GetUserSettingsParams identifies whose settings to load.
type GetUserSettingsParams struct {
	UserID string
}

// GetUserSettings returns the user's settings, falling back to defaults when
// the user has never written any.
type GetUserSettings struct {
	store SettingsStore
}

func NewGetUserSettings(store SettingsStore) *GetUserSettings {
	return &GetUserSettings{store: store}
}

func (uc *GetUserSettings) Execute(params GetUserSettingsParams) result.Result[entities.UserSettings] {
	if params.UserID == "" {
		return result.Failure[entities.UserSettings](ErrUserIDRequired)
	}

	settings, err := uc.store.GetForUser(params.UserID)
	if err != nil {
		return result.Failure[entities.UserSettings](err)
	}
	if settings == nil {
		return result.Success(entities.DefaultUserSettings(params.UserID))
	}
	return result.Success(*settings)
}
