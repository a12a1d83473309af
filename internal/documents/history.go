package documents

import (
	"context"
	"sync"

	"github.com/archplan-ai/archplan-backend/internal/documents/domain"
)

// SnapshotKey is the durable storage key for the document history.
const SnapshotKey = "archplan:documents"

// Snapshots is the persistence adapter contract the store writes
// through. Saves are best-effort; a failed load reads as absent data.
type Snapshots interface {
	Load(ctx context.Context, key string, dest any) bool
	Save(ctx context.Context, key string, value any)
}

// HistoryStore owns the append-only document history. Entries are kept
// most-recent-first; there is no update or single-document delete.
type HistoryStore struct {
	mu   sync.Mutex
	docs []domain.GeneratedDocument
	snap Snapshots
	ctx  context.Context
}

// NewHistoryStore builds a store and restores the persisted history.
// A missing or unparsable snapshot starts the store empty.
func NewHistoryStore(snap Snapshots) *HistoryStore {
	s := &HistoryStore{
		docs: make([]domain.GeneratedDocument, 0),
		snap: snap,
		ctx:  context.Background(),
	}
	if snap != nil {
		snap.Load(s.ctx, SnapshotKey, &s.docs)
	}
	return s
}

// Append prepends a freshly generated document.
func (s *HistoryStore) Append(doc domain.GeneratedDocument) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = append([]domain.GeneratedDocument{doc}, s.docs...)
	s.persist()
}

// ByProject returns the documents belonging to one project, preserving
// store order.
func (s *HistoryStore) ByProject(projectID string) []domain.GeneratedDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.GeneratedDocument, 0)
	for _, d := range s.docs {
		if d.ProjectID == projectID {
			out = append(out, d)
		}
	}
	return out
}

// Get returns a single document by id.
func (s *HistoryStore) Get(id string) (domain.GeneratedDocument, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.docs {
		if d.ID == id {
			return d, true
		}
	}
	return domain.GeneratedDocument{}, false
}

// PurgeByProject removes every document owned by projectID and reports
// how many were removed. Used only as part of cascading project
// deletion.
func (s *HistoryStore) PurgeByProject(projectID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.docs[:0]
	removed := 0
	for _, d := range s.docs {
		if d.ProjectID == projectID {
			removed++
			continue
		}
		kept = append(kept, d)
	}
	s.docs = kept
	if removed > 0 {
		s.persist()
	}
	return removed
}

// All returns a copy of the full history, most recent first.
func (s *HistoryStore) All() []domain.GeneratedDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.GeneratedDocument, len(s.docs))
	copy(out, s.docs)
	return out
}

// Len returns the total number of stored documents.
func (s *HistoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}

// CountByProject returns how many history entries belong to projectID.
func (s *HistoryStore) CountByProject(projectID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, d := range s.docs {
		if d.ProjectID == projectID {
			n++
		}
	}
	return n
}

// persist writes the whole collection snapshot. Callers hold s.mu.
func (s *HistoryStore) persist() {
	if s.snap == nil {
		return
	}
	s.snap.Save(s.ctx, SnapshotKey, s.docs)
}
