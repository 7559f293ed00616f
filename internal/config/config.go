package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		Global
		Database
		CoachAPI
		RemoteSync
		Tasks
	}

	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	CoachAPI struct {
		BaseURL string
		Token   string
	}
	RemoteSync struct {
		Enabled  bool
		Schedule string // Cron format: "*/30 * * * *" = every 30 minutes
	}
	Tasks struct {
		Enabled           bool
		Workers           int
		ReleaseAfter      time.Duration
		CleanupInterval   time.Duration
		RetentionDuration time.Duration
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("coach_api_base_url", "")
	v.SetDefault("coach_api_token", "")
	v.SetDefault("remote_sync_enabled", false)
	v.SetDefault("remote_sync_schedule", DefaultSyncSchedule)

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 2)
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")
	v.SetDefault("task_retention_duration", "24h")

	return &Config{
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		CoachAPI: CoachAPI{
			BaseURL: v.GetString("COACH_API_BASE_URL"),
			Token:   v.GetString("COACH_API_TOKEN"),
		},
		RemoteSync: RemoteSync{
			Enabled:  v.GetBool("REMOTE_SYNC_ENABLED"),
			Schedule: v.GetString("REMOTE_SYNC_SCHEDULE"),
		},
		Tasks: Tasks{
			Enabled:           v.GetBool("TASKS_ENABLED"),
			Workers:           v.GetInt("TASK_WORKERS"),
			ReleaseAfter:      v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval:   v.GetDuration("TASK_CLEANUP_INTERVAL"),
			RetentionDuration: v.GetDuration("TASK_RETENTION_DURATION"),
		},
	}
}
