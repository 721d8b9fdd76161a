package session

import (
	"sync"
	"time"

	"sheetviz/adapters/classify"
	"sheetviz/domain/core"
	"sheetviz/domain/table"
)

// Session owns the current table snapshot for one browser session.
// Replacing the table swaps the snapshot and its classification
// together under one lock, so readers never observe a half-replaced
// state; prior classifications never survive a replace.
type Session struct {
	id         core.SessionID
	classifier *classify.Classifier

	mu             sync.RWMutex
	tbl            *table.Table
	classification classify.Classification
	source         string
	loadedAt       time.Time
}

// Snapshot is a consistent read of a session's state
type Snapshot struct {
	Table          *table.Table
	Classification classify.Classification
	Source         string
	LoadedAt       time.Time
}

// NewSession creates an empty session
func NewSession(id core.SessionID, classifier *classify.Classifier) *Session {
	return &Session{
		id:         id,
		classifier: classifier,
	}
}

// ID returns the session identifier
func (s *Session) ID() core.SessionID {
	return s.id
}

// Replace installs a new table wholesale, recomputing the column
// classification from the new snapshot. source names where the table
// came from ("upload:name.xlsx", "sample").
func (s *Session) Replace(t *table.Table, source string) {
	classification := s.classifier.Classify(t)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tbl = t
	s.classification = classification
	s.source = source
	s.loadedAt = time.Now()
}

// Snapshot returns the current table and classification. ok is false
// when no table has been loaded yet.
func (s *Session) Snapshot() (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.tbl == nil {
		return Snapshot{}, false
	}
	return Snapshot{
		Table:          s.tbl,
		Classification: s.classification,
		Source:         s.source,
		LoadedAt:       s.loadedAt,
	}, true
}

// Loaded reports whether the session has a table
func (s *Session) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tbl != nil
}
