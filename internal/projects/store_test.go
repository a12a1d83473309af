package projects

import (
	"testing"

	"github.com/archplan-ai/archplan-backend/internal/projects/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Create(t *testing.T) {
	s := NewStore(nil)

	p, err := s.Create(domain.Draft{Name: "Test Tower"})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, domain.InitialPhase, p.CurrentPhase)
	assert.Zero(t, p.DocumentsGenerated)
	assert.False(t, p.CreatedAt.IsZero())

	all := s.List()
	require.Len(t, all, 1)
	assert.Equal(t, "Test Tower", all[0].Name)
}

func TestStore_CreateRejectsBlankName(t *testing.T) {
	s := NewStore(nil)

	_, err := s.Create(domain.Draft{Name: ""})
	assert.ErrorIs(t, err, ErrEmptyName)
	_, err = s.Create(domain.Draft{Name: "   "})
	assert.ErrorIs(t, err, ErrEmptyName)

	assert.Empty(t, s.List())
}

func TestStore_CreatePrependsNewest(t *testing.T) {
	s := NewStore(nil)
	_, err := s.Create(domain.Draft{Name: "first"})
	require.NoError(t, err)
	_, err = s.Create(domain.Draft{Name: "second"})
	require.NoError(t, err)

	all := s.List()
	require.Len(t, all, 2)
	assert.Equal(t, "second", all[0].Name)
	assert.Equal(t, "first", all[1].Name)
}

func TestStore_Delete(t *testing.T) {
	s := NewStore(nil)
	p, err := s.Create(domain.Draft{Name: "doomed"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(p.ID))
	assert.Empty(t, s.List())
	assert.ErrorIs(t, s.Delete(p.ID), ErrProjectNotFound)
}

func TestStore_Filter(t *testing.T) {
	s := NewStore(nil)
	_, err := s.Create(domain.Draft{Name: "Riverside Villas", Location: "Mumbai", ProjectType: "Residential"})
	require.NoError(t, err)
	_, err = s.Create(domain.Draft{Name: "TechPark Tower", Location: "Bangalore", ProjectType: "Commercial"})
	require.NoError(t, err)
	_, err = s.Create(domain.Draft{Name: "School Campus", Location: "Jaipur", ProjectType: "Institutional"})
	require.NoError(t, err)

	// empty term + All returns everything in store order
	got := s.Filter("", domain.FilterAll)
	require.Len(t, got, 3)
	assert.Equal(t, "School Campus", got[0].Name)

	// case-insensitive substring on name
	got = s.Filter("techpark", domain.FilterAll)
	require.Len(t, got, 1)
	assert.Equal(t, "TechPark Tower", got[0].Name)

	// substring on location
	got = s.Filter("mumbai", domain.FilterAll)
	require.Len(t, got, 1)
	assert.Equal(t, "Riverside Villas", got[0].Name)

	// both predicates must hold
	got = s.Filter("tower", "Residential")
	assert.Empty(t, got)
	got = s.Filter("tower", "Commercial")
	require.Len(t, got, 1)

	// type filter alone
	got = s.Filter("", "Institutional")
	require.Len(t, got, 1)
	assert.Equal(t, "School Campus", got[0].Name)
}

func TestStore_RecordGeneration(t *testing.T) {
	s := NewStore(nil)
	p, err := s.Create(domain.Draft{Name: "active"})
	require.NoError(t, err)

	before, _ := s.Get(p.ID)
	s.RecordGeneration(p.ID)
	after, _ := s.Get(p.ID)
	assert.Equal(t, before.DocumentsGenerated+1, after.DocumentsGenerated)
	assert.False(t, after.LastActivity.Before(before.LastActivity))

	// unknown id is a defensive no-op
	s.RecordGeneration("gone")
}

func TestStore_Update(t *testing.T) {
	s := NewStore(nil)
	p, err := s.Create(domain.Draft{Name: "old name", Location: "old town"})
	require.NoError(t, err)

	updated, err := s.Update(p.ID, domain.Draft{Name: "new name", Location: "new town"}, "Schematic Design")
	require.NoError(t, err)
	assert.Equal(t, "new name", updated.Name)
	assert.Equal(t, "Schematic Design", updated.CurrentPhase)

	// phase kept when blank
	updated, err = s.Update(p.ID, domain.Draft{Name: "new name"}, "")
	require.NoError(t, err)
	assert.Equal(t, "Schematic Design", updated.CurrentPhase)

	_, err = s.Update(p.ID, domain.Draft{Name: " "}, "")
	assert.ErrorIs(t, err, ErrEmptyName)
	_, err = s.Update("missing", domain.Draft{Name: "x"}, "")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestStore_Stats(t *testing.T) {
	s := NewStore(nil)
	s.Replace(SampleProjects())

	// sample phases all contain "design" case-insensitively
	st := s.Stats(7)
	assert.Equal(t, 3, st.TotalProjects)
	assert.Equal(t, 7, st.TotalDocuments)
	assert.Equal(t, 3, st.PendingApprovals)

	_, err := s.Create(domain.Draft{Name: "built"})
	require.NoError(t, err)
	_, err = s.Update(s.List()[0].ID, domain.Draft{Name: "built"}, "Construction Administration")
	require.NoError(t, err)
	st = s.Stats(7)
	assert.Equal(t, 4, st.TotalProjects)
	assert.Equal(t, 3, st.PendingApprovals)
}

func TestStore_SetDocumentsGenerated(t *testing.T) {
	s := NewStore(nil)
	p, err := s.Create(domain.Draft{Name: "drifted"})
	require.NoError(t, err)

	assert.True(t, s.SetDocumentsGenerated(p.ID, 5))
	got, _ := s.Get(p.ID)
	assert.Equal(t, 5, got.DocumentsGenerated)

	// already consistent: no write reported
	assert.False(t, s.SetDocumentsGenerated(p.ID, 5))
	assert.False(t, s.SetDocumentsGenerated("missing", 1))
}
