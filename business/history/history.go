package history

import (
	"sync"
	"time"

	"storeRanker/domain"
)

// Log is an append-only search history for one session.
// Safe for concurrent use.
type Log struct {
	mu       sync.Mutex
	entries  []domain.SearchLogEntry
	lastUsed time.Time
}

func NewLog() *Log {
	return &Log{lastUsed: time.Now()}
}

// LogQuery appends entry.
func (l *Log) LogQuery(entry domain.SearchLogEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, entry)
	l.lastUsed = time.Now()
}

// RecentLogs returns up to n of the latest entries, most recent first.
func (l *Log) RecentLogs(n int) []domain.SearchLogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lastUsed = time.Now()

	if n <= 0 || len(l.entries) == 0 {
		return []domain.SearchLogEntry{}
	}
	if n > len(l.entries) {
		n = len(l.entries)
	}

	out := make([]domain.SearchLogEntry, 0, n)
	for i := len(l.entries) - 1; i >= len(l.entries)-n; i-- {
		out = append(out, l.entries[i])
	}
	return out
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *Log) idleSince() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastUsed
}

// Store owns one Log per session id.
type Store struct {
	mu   sync.Mutex
	logs map[string]*Log
}

func NewStore() *Store {
	return &Store{logs: make(map[string]*Log)}
}

// Open returns the session's log, creating it on first use.
func (s *Store) Open(sessionID string) *Log {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.logs[sessionID]
	if !ok {
		l = NewLog()
		s.logs[sessionID] = l
	}
	return l
}

// Get returns the session's log if it exists.
func (s *Store) Get(sessionID string) (*Log, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.logs[sessionID]
	return l, ok
}

// Sessions returns the number of open session logs.
func (s *Store) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.logs)
}

// PruneIdle drops logs not touched since cutoff and returns how many were removed.
func (s *Store) PruneIdle(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, l := range s.logs {
		if l.idleSince().Before(cutoff) {
			delete(s.logs, id)
			removed++
		}
	}
	return removed
}
