package history

import (
	"context"
	"sort"
	"time"

	"storeRanker/pkg/logger"
)

const maxSessions = 10000

// capSessions drops the least recently used logs once more than limit sessions are open.
func (s *Store) capSessions(limit int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.logs) <= limit {
		return 0
	}

	type logInfo struct {
		sessionID string
		lastUsed  time.Time
		entries   int
	}

	infos := make([]logInfo, 0, len(s.logs))
	for id, l := range s.logs {
		infos = append(infos, logInfo{
			sessionID: id,
			lastUsed:  l.idleSince(),
			entries:   l.Len(),
		})
	}

	// oldest & smallest first
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].lastUsed.Equal(infos[j].lastUsed) {
			return infos[i].entries < infos[j].entries
		}
		return infos[i].lastUsed.Before(infos[j].lastUsed)
	})

	toDrop := len(s.logs) - limit
	for i := 0; i < toDrop && i < len(infos); i++ {
		delete(s.logs, infos[i].sessionID)
	}
	return toDrop
}

// StartPruner removes session logs idle for longer than maxIdle, checking every interval,
// until ctx is done.
func (s *Store) StartPruner(ctx context.Context, interval, maxIdle time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				removed := s.PruneIdle(now.Add(-maxIdle))
				removed += s.capSessions(maxSessions)
				if removed > 0 {
					logger.Info("pruned search histories", "removed", removed, "remaining", s.Sessions())
				}
			}
		}
	}()
}
