// Package scheduler runs the periodic push of local state to the coaching
// backend.
package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/fairwaylabs/swinglab/internal/coachapi"
	"github.com/fairwaylabs/swinglab/internal/entities"
	"github.com/fairwaylabs/swinglab/internal/result"
)

// AnalysisSyncStore is the slice of the analyses repository the sync run
// needs.
type AnalysisSyncStore interface {
	GetUnsynced() ([]entities.SwingAnalysis, error)
	MarkSynced(id string) error
}

// ProgressStore loads the snapshot to push after analyses are synced.
type ProgressStore interface {
	GetForUser(userID string) (*entities.UserProgress, error)
}

// Gateway is the remote surface the scheduler pushes through.
type Gateway interface {
	SubmitSwing(ctx context.Context, req coachapi.SubmitSwingRequest) result.Result[coachapi.SwingSubmission]
	SyncProgress(ctx context.Context, snapshot coachapi.ProgressSnapshot) result.Result[struct{}]
}

// Config controls whether and when the scheduler runs.
type Config struct {
	Enabled  bool
	Schedule string // cron format, e.g. "*/30 * * * *"
}

// RemoteSyncScheduler manages the periodic remote sync job.
type RemoteSyncScheduler struct {
	store    AnalysisSyncStore
	progress ProgressStore
	gateway  Gateway
	config   Config

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	isSyncing  bool
	cancelFunc context.CancelFunc
}

// NewRemoteSyncScheduler creates a new scheduler instance.
func NewRemoteSyncScheduler(store AnalysisSyncStore, progress ProgressStore, gateway Gateway, config Config) *RemoteSyncScheduler {
	return &RemoteSyncScheduler{
		store:    store,
		progress: progress,
		gateway:  gateway,
		config:   config,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler if sync is enabled.
func (s *RemoteSyncScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if !s.config.Enabled {
		log.Printf("Remote sync scheduler: disabled")
		return nil
	}

	entryID, err := s.cron.AddFunc(s.config.Schedule, func() {
		s.RunSync(context.Background())
	})
	if err != nil {
		return fmt.Errorf("failed to schedule sync job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Remote sync scheduler: started with schedule '%s'", s.config.Schedule)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler, waiting for a running sync to finish.
func (s *RemoteSyncScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Remote sync scheduler: stopped")
}

// Reschedule swaps the cron expression for a running scheduler. A stopped
// or disabled scheduler just records the new schedule for the next Start.
func (s *RemoteSyncScheduler) Reschedule(schedule string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		s.config.Schedule = schedule
		return nil
	}

	entryID, err := s.cron.AddFunc(schedule, func() {
		s.RunSync(context.Background())
	})
	if err != nil {
		return fmt.Errorf("invalid sync schedule %q: %w", schedule, err)
	}

	s.cron.Remove(s.entryID)
	s.entryID = entryID
	s.config.Schedule = schedule

	log.Printf("Remote sync scheduler: rescheduled to '%s'", schedule)
	return nil
}

// RunNow triggers an immediate sync without waiting for the schedule.
func (s *RemoteSyncScheduler) RunNow() {
	go s.RunSync(context.Background())
}

// RunSync pushes all unsynced analyses, then the progress snapshot of every
// user that had something to push. Overlapping runs are skipped.
func (s *RemoteSyncScheduler) RunSync(ctx context.Context) {
	s.mu.Lock()
	if s.isSyncing {
		s.mu.Unlock()
		log.Printf("Remote sync: previous run still in progress, skipping")
		return
	}
	s.isSyncing = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.isSyncing = false
		s.mu.Unlock()
	}()

	unsynced, err := s.store.GetUnsynced()
	if err != nil {
		log.Printf("Remote sync: failed to load unsynced analyses: %v", err)
		return
	}
	if len(unsynced) == 0 {
		return
	}

	var pushed, failed int
	users := make(map[string]bool)
	for _, analysis := range unsynced {
		res := s.gateway.SubmitSwing(ctx, coachapi.SubmitSwingRequest{
			UserID:     analysis.UserID,
			SessionID:  analysis.SessionID,
			SwingType:  string(analysis.SwingType),
			RecordedAt: analysis.RecordedAt,
			Keypoints:  json.RawMessage(analysis.PhaseData),
		})
		if res.IsFailure() {
			log.Printf("Remote sync: failed to push analysis %s: %v", analysis.ID, res.Err())
			failed++
			continue
		}
		if err := s.store.MarkSynced(analysis.ID); err != nil {
			log.Printf("Remote sync: failed to mark analysis %s synced: %v", analysis.ID, err)
			failed++
			continue
		}
		users[analysis.UserID] = true
		pushed++
	}

	for userID := range users {
		progress, err := s.progress.GetForUser(userID)
		if err != nil {
			log.Printf("Remote sync: failed to load progress for %s: %v", userID, err)
			continue
		}
		if progress == nil {
			continue
		}
		res := s.gateway.SyncProgress(ctx, coachapi.ProgressSnapshot{
			UserID:            progress.UserID,
			TotalSwings:       progress.TotalSwings,
			SessionsCompleted: progress.SessionsCompleted,
			AverageScore:      progress.AverageScore,
			BestScore:         progress.BestScore,
			StreakDays:        progress.StreakDays,
			LastSessionAt:     progress.LastSessionAt,
		})
		if res.IsFailure() {
			log.Printf("Remote sync: failed to push progress for %s: %v", userID, res.Err())
		}
	}

	log.Printf("Remote sync: pushed %d analyses, %d failed", pushed, failed)
}
