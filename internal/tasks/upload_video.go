package tasks

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/fairwaylabs/swinglab/internal/coachapi"
	"github.com/fairwaylabs/swinglab/internal/entities"
)

// VideoUploader is the remote surface the upload task pushes through.
type VideoUploader interface {
	UploadVideo(ctx context.Context, sessionID string, video []byte) (*coachapi.VideoUpload, error)
}

// SessionUploadStore is the slice of the sessions repository the upload
// task needs.
type SessionUploadStore interface {
	GetByID(id string) (*entities.SwingSession, error)
	MarkUploaded(id string) error
}

// UploadVideoTask uploads one session's recorded video to the backend.
type UploadVideoTask struct {
	SessionID string `json:"session_id"`
}

// Config returns the queue configuration for video upload tasks. Uploads
// are large and flaky on mobile networks, so attempts are generous.
func (t UploadVideoTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "upload_video",
		MaxAttempts: 5,
		Backoff:     1 * time.Minute,
		Timeout:     10 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// UploadVideoProcessor creates the processor function for UploadVideoTask.
// A session that is gone or already uploaded completes the task without
// touching the network.
func UploadVideoProcessor(store SessionUploadStore, uploader VideoUploader) backlite.QueueProcessor[UploadVideoTask] {
	return func(ctx context.Context, task UploadVideoTask) error {
		session, err := store.GetByID(task.SessionID)
		if err != nil {
			return fmt.Errorf("load session %s: %w", task.SessionID, err)
		}
		if session == nil || session.Uploaded || session.VideoPath == "" {
			return nil
		}

		video, err := os.ReadFile(session.VideoPath)
		if err != nil {
			return fmt.Errorf("read video for session %s: %w", task.SessionID, err)
		}

		upload, err := uploader.UploadVideo(ctx, task.SessionID, video)
		if err != nil {
			return fmt.Errorf("upload video for session %s: %w", task.SessionID, err)
		}

		if err := store.MarkUploaded(task.SessionID); err != nil {
			return fmt.Errorf("mark session %s uploaded: %w", task.SessionID, err)
		}

		log.Printf("[TASK] Uploaded video for session %s (%d bytes) to %s",
			task.SessionID, upload.SizeBytes, upload.VideoURL)
		return nil
	}
}

// NewUploadVideoQueue creates a backlite queue for video upload tasks.
func NewUploadVideoQueue(store SessionUploadStore, uploader VideoUploader) backlite.Queue {
	return backlite.NewQueue(UploadVideoProcessor(store, uploader))
}
