// Package entrypoint wires the application together and runs it until a
// shutdown signal arrives.
package entrypoint

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fairwaylabs/swinglab/internal/coachapi"
	"github.com/fairwaylabs/swinglab/internal/config"
	"github.com/fairwaylabs/swinglab/internal/database"
	"github.com/fairwaylabs/swinglab/internal/database/analyses"
	"github.com/fairwaylabs/swinglab/internal/database/progress"
	"github.com/fairwaylabs/swinglab/internal/database/sessions"
	"github.com/fairwaylabs/swinglab/internal/remote"
	"github.com/fairwaylabs/swinglab/internal/scheduler"
	"github.com/fairwaylabs/swinglab/internal/tasks"
)

func Run(cfg *config.Config, version string) {
	log.Printf("Starting SwingLab v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	analysisRepo := analyses.NewRepository(db)
	sessionRepo := sessions.NewRepository(db)
	progressRepo := progress.NewRepository(db)

	if cfg.CoachAPI.Token == "" {
		log.Printf("WARNING: Coach API token is not set. Remote calls will be rejected. Set 'COACH_API_TOKEN' to enable.")
	}
	apiClient := coachapi.NewClient(cfg.CoachAPI.BaseURL, cfg.CoachAPI.Token)
	dataSource := remote.NewDataSource(apiClient)

	// Task queue for video uploads
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskClient, err = tasks.NewClient(cfg.Database.Path, tasks.Config{
			Workers:           cfg.Tasks.Workers,
			ReleaseAfter:      cfg.Tasks.ReleaseAfter,
			CleanupInterval:   cfg.Tasks.CleanupInterval,
			RetentionDuration: cfg.Tasks.RetentionDuration,
		})
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(
			tasks.NewUploadVideoQueue(sessionRepo, apiClient),
		)

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	// Periodic push of unsynced analyses and progress
	sync := scheduler.NewRemoteSyncScheduler(analysisRepo, progressRepo, dataSource, scheduler.Config{
		Enabled:  cfg.RemoteSync.Enabled,
		Schedule: cfg.RemoteSync.Schedule,
	})
	if err := sync.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start sync scheduler: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second
	log.Printf("Shutting down, waiting up to %v for background work", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	sync.Stop()
	if taskClient != nil && taskCtxCancel != nil {
		taskClient.Stop(ctx)
		taskCtxCancel()
	}

	log.Println("Exiting")
}
