package domain

import "time"

// InitialPhase is the phase every project starts in.
const InitialPhase = "Pre-Design"

// FilterAll is the sentinel project-type filter that matches any type.
const FilterAll = "All"

// ProjectTypes enumerates the supported project classifications.
var ProjectTypes = []string{"Residential", "Commercial", "Institutional", "Mixed-Use"}

// PlotUnits enumerates the supported plot size units.
var PlotUnits = []string{"sqft", "sqm", "acres"}

// Project is a single architectural design project. Budget and plot
// fields are free-form strings entered by the user; no validation is
// applied to them.
type Project struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Location           string    `json:"location"`
	PlotSize           string    `json:"plotSize"`
	PlotUnit           string    `json:"plotUnit"`
	ProjectType        string    `json:"projectType"`
	BudgetMin          string    `json:"budgetMin"`
	BudgetMax          string    `json:"budgetMax"`
	StartDate          string    `json:"startDate"`
	TargetCompletion   string    `json:"targetCompletion"`
	Notes              string    `json:"notes"`
	CurrentPhase       string    `json:"currentPhase"`
	CreatedAt          time.Time `json:"createdAt"`
	LastActivity       time.Time `json:"lastActivity"`
	DocumentsGenerated int       `json:"documentsGenerated"`
}

// Draft carries the user-entered fields for creating or editing a
// project. Identity, phase, timestamps and the generation counter are
// assigned by the store.
type Draft struct {
	Name             string `json:"name"`
	Location         string `json:"location"`
	PlotSize         string `json:"plotSize"`
	PlotUnit         string `json:"plotUnit"`
	ProjectType      string `json:"projectType"`
	BudgetMin        string `json:"budgetMin"`
	BudgetMax        string `json:"budgetMax"`
	StartDate        string `json:"startDate"`
	TargetCompletion string `json:"targetCompletion"`
	Notes            string `json:"notes"`
}

// Stats are the dashboard metrics, recomputed on demand rather than
// stored. TotalDocuments comes from the history store so the two
// counting paths can be cross-checked against the per-project counters.
type Stats struct {
	TotalProjects    int `json:"totalProjects"`
	TotalDocuments   int `json:"totalDocuments"`
	PendingApprovals int `json:"pendingApprovals"`
}
