package documents

import (
	"testing"
	"time"

	"github.com/archplan-ai/archplan-backend/internal/documents/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doc(id, projectID string) domain.GeneratedDocument {
	return domain.GeneratedDocument{
		ID:           id,
		DocumentType: domain.TypeProjectBrief,
		Title:        "Project Brief - " + projectID,
		ProjectID:    projectID,
		GeneratedAt:  time.Now().UTC(),
	}
}

func TestHistoryStore_AppendPrepends(t *testing.T) {
	s := NewHistoryStore(nil)
	s.Append(doc("d1", "p1"))
	s.Append(doc("d2", "p1"))

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, "d2", all[0].ID)
	assert.Equal(t, "d1", all[1].ID)
}

func TestHistoryStore_ByProjectPreservesOrder(t *testing.T) {
	s := NewHistoryStore(nil)
	s.Append(doc("d1", "p1"))
	s.Append(doc("d2", "p2"))
	s.Append(doc("d3", "p1"))

	got := s.ByProject("p1")
	require.Len(t, got, 2)
	assert.Equal(t, "d3", got[0].ID)
	assert.Equal(t, "d1", got[1].ID)
	assert.Equal(t, 2, s.CountByProject("p1"))
}

func TestHistoryStore_PurgeByProject(t *testing.T) {
	s := NewHistoryStore(nil)
	s.Append(doc("d1", "p1"))
	s.Append(doc("d2", "p2"))
	s.Append(doc("d3", "p1"))

	removed := s.PurgeByProject("p1")
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, s.Len())
	assert.Empty(t, s.ByProject("p1"))

	remaining := s.All()
	require.Len(t, remaining, 1)
	assert.Equal(t, "d2", remaining[0].ID)

	assert.Zero(t, s.PurgeByProject("p1"))
}

func TestHistoryStore_Get(t *testing.T) {
	s := NewHistoryStore(nil)
	s.Append(doc("d1", "p1"))

	got, ok := s.Get("d1")
	require.True(t, ok)
	assert.Equal(t, "p1", got.ProjectID)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}
