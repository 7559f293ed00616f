package analyses

import (
	"context"

	"github.com/fairwaylabs/swinglab/internal/entities"
)

// WatchAllForUser emits the user's analyses (newest first) immediately, then
// a refreshed snapshot whenever the table changes, until ctx is done. Each
// call is an independent subscription; re-subscribing yields current state
// right away. The channel is closed when the watch ends.
func (r *Repository) WatchAllForUser(ctx context.Context, userID string) (<-chan []entities.SwingAnalysis, error) {
	snapshot, err := r.GetAllForUser(userID)
	if err != nil {
		return nil, err
	}

	changes, cancel := r.db.SubscribeChanges(entities.SwingAnalysis{}.TableName())

	out := make(chan []entities.SwingAnalysis, 1)
	out <- snapshot

	go func() {
		defer cancel()
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case <-changes:
				refreshed, err := r.GetAllForUser(userID)
				if err != nil {
					// The store went away; the watch cannot continue.
					return
				}
				select {
				case out <- refreshed:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
