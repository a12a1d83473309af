package projects

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/archplan-ai/archplan-backend/internal/projects/domain"
)

// SnapshotKey is the durable storage key for the project collection.
const SnapshotKey = "archplan:projects"

// Snapshots is the persistence adapter contract the store writes
// through. Saves are best-effort; a failed load reads as absent data.
type Snapshots interface {
	Load(ctx context.Context, key string, dest any) bool
	Save(ctx context.Context, key string, value any)
}

// Store owns the in-memory project collection, kept most-recent-first
// and mirrored to durable storage after every mutation.
type Store struct {
	mu       sync.Mutex
	projects []domain.Project
	snap     Snapshots
	ctx      context.Context
	now      func() time.Time
}

// NewStore builds a store and restores the persisted collection. A
// missing or unparsable snapshot starts the store empty.
func NewStore(snap Snapshots) *Store {
	s := &Store{
		projects: make([]domain.Project, 0),
		snap:     snap,
		ctx:      context.Background(),
		now:      time.Now,
	}
	if snap != nil {
		snap.Load(s.ctx, SnapshotKey, &s.projects)
	}
	return s
}

// Create registers a new project from the draft and prepends it to the
// collection. A blank name is rejected with ErrEmptyName and no state
// change.
func (s *Store) Create(draft domain.Draft) (domain.Project, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return domain.Project{}, ErrEmptyName
	}

	now := s.now().UTC()
	p := domain.Project{
		ID:                 NewProjectID(),
		Name:               draft.Name,
		Location:           draft.Location,
		PlotSize:           draft.PlotSize,
		PlotUnit:           draft.PlotUnit,
		ProjectType:        draft.ProjectType,
		BudgetMin:          draft.BudgetMin,
		BudgetMax:          draft.BudgetMax,
		StartDate:          draft.StartDate,
		TargetCompletion:   draft.TargetCompletion,
		Notes:              draft.Notes,
		CurrentPhase:       domain.InitialPhase,
		CreatedAt:          now,
		LastActivity:       now,
		DocumentsGenerated: 0,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = append([]domain.Project{p}, s.projects...)
	s.persist()
	return p, nil
}

// Get returns a project by id.
func (s *Store) Get(id string) (domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Project{}, ErrProjectNotFound
}

// List returns the full collection, most recent first.
func (s *Store) List() []domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// Delete removes the project. The caller is responsible for cascading
// the document purge and for resetting the workspace if the deleted
// project was open.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.projects {
		if p.ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			s.persist()
			return nil
		}
	}
	return ErrProjectNotFound
}

// Update applies an explicit edit to the named project. Blank names
// are rejected; the phase moves only when a non-empty value is given.
func (s *Store) Update(id string, draft domain.Draft, currentPhase string) (domain.Project, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return domain.Project{}, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID != id {
			continue
		}
		p := &s.projects[i]
		p.Name = draft.Name
		p.Location = draft.Location
		p.PlotSize = draft.PlotSize
		p.PlotUnit = draft.PlotUnit
		p.ProjectType = draft.ProjectType
		p.BudgetMin = draft.BudgetMin
		p.BudgetMax = draft.BudgetMax
		p.StartDate = draft.StartDate
		p.TargetCompletion = draft.TargetCompletion
		p.Notes = draft.Notes
		if strings.TrimSpace(currentPhase) != "" {
			p.CurrentPhase = currentPhase
		}
		p.LastActivity = s.now().UTC()
		s.persist()
		return *p, nil
	}
	return domain.Project{}, ErrProjectNotFound
}

// Filter returns the projects matching a case-insensitive substring
// search on name or location (empty term matches all) AND an exact
// project-type match unless the filter is "All".
func (s *Store) Filter(searchTerm, projectType string) []domain.Project {
	term := strings.ToLower(searchTerm)

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Project, 0, len(s.projects))
	for _, p := range s.projects {
		matchesSearch := term == "" ||
			strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Location), term)
		matchesType := projectType == "" || projectType == domain.FilterAll || p.ProjectType == projectType
		if matchesSearch && matchesType {
			out = append(out, p)
		}
	}
	return out
}

// RecordGeneration bumps the generation counter and refreshes
// lastActivity. A vanished project is a no-op: generation may race
// with deletion.
func (s *Store) RecordGeneration(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects[i].DocumentsGenerated++
			s.projects[i].LastActivity = s.now().UTC()
			s.persist()
			return
		}
	}
}

// SetDocumentsGenerated overwrites the counter for one project. Used by
// the reconciliation job when the counter has drifted from the history.
func (s *Store) SetDocumentsGenerated(id string, n int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID == id {
			if s.projects[i].DocumentsGenerated == n {
				return false
			}
			s.projects[i].DocumentsGenerated = n
			s.persist()
			return true
		}
	}
	return false
}

// Stats recomputes the dashboard metrics. historyLen is the document
// history size, counted independently from the per-project counters.
func (s *Store) Stats(historyLen int) domain.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := domain.Stats{
		TotalProjects:  len(s.projects),
		TotalDocuments: historyLen,
	}
	for _, p := range s.projects {
		phase := strings.ToLower(p.CurrentPhase)
		if strings.Contains(phase, "design") || strings.Contains(phase, "pre-design") {
			st.PendingApprovals++
		}
	}
	return st
}

// Replace swaps in a whole collection, used by the sample-data toggle.
func (s *Store) Replace(projects []domain.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = make([]domain.Project, len(projects))
	copy(s.projects, projects)
	s.persist()
}

// persist writes the whole collection snapshot. Callers hold s.mu.
func (s *Store) persist() {
	if s.snap == nil {
		return
	}
	s.snap.Save(s.ctx, SnapshotKey, s.projects)
}
