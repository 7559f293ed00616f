package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fairwaylabs/swinglab/internal/entities"
)

type Database struct {
	DB *gorm.DB

	notifier *changeNotifier
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto-migrate all entities
	err = db.AutoMigrate(
		&entities.SwingSession{},
		&entities.SwingAnalysis{},
		&entities.PoseDetection{},
		&entities.UserSettings{},
		&entities.UserProgress{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{
		DB:       db,
		notifier: newChangeNotifier(),
	}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// NotifyChange wakes every watcher subscribed to the given table. Repositories
// call it after each committed write.
func (d *Database) NotifyChange(table string) {
	d.notifier.Notify(table)
}

// SubscribeChanges registers a watcher for the given table. The returned
// channel receives a coalesced signal per change batch; the cancel func
// must be called when the watcher is done.
func (d *Database) SubscribeChanges(table string) (<-chan struct{}, func()) {
	return d.notifier.Subscribe(table)
}
