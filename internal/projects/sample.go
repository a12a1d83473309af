package projects

import (
	"time"

	"github.com/archplan-ai/archplan-backend/internal/projects/domain"
)

// SampleProjects is the demo dataset loaded by the sample-data toggle.
func SampleProjects() []domain.Project {
	return []domain.Project{
		{
			ID:                 "sp1",
			Name:               "Riverside Luxury Villas",
			Location:           "Mumbai, Maharashtra",
			PlotSize:           "15000",
			PlotUnit:           "sqft",
			ProjectType:        "Residential",
			BudgetMin:          "5000000",
			BudgetMax:          "8000000",
			StartDate:          "2025-03-01",
			TargetCompletion:   "2026-09-30",
			Notes:              "Premium gated community with clubhouse and landscaping.",
			CurrentPhase:       "Design Development",
			CreatedAt:          mustTime("2025-01-15T10:30:00Z"),
			LastActivity:       mustTime("2025-02-18T14:22:00Z"),
			DocumentsGenerated: 4,
		},
		{
			ID:                 "sp2",
			Name:               "TechPark Tower",
			Location:           "Bangalore, Karnataka",
			PlotSize:           "45000",
			PlotUnit:           "sqft",
			ProjectType:        "Commercial",
			BudgetMin:          "20000000",
			BudgetMax:          "35000000",
			StartDate:          "2025-06-01",
			TargetCompletion:   "2027-12-31",
			Notes:              "Grade-A commercial office space with green certification.",
			CurrentPhase:       "Schematic Design",
			CreatedAt:          mustTime("2025-02-01T09:00:00Z"),
			LastActivity:       mustTime("2025-02-20T11:45:00Z"),
			DocumentsGenerated: 2,
		},
		{
			ID:                 "sp3",
			Name:               "Heritage School Campus",
			Location:           "Jaipur, Rajasthan",
			PlotSize:           "5",
			PlotUnit:           "acres",
			ProjectType:        "Institutional",
			BudgetMin:          "12000000",
			BudgetMax:          "18000000",
			StartDate:          "2025-04-15",
			TargetCompletion:   "2027-06-30",
			Notes:              "K-12 school campus with sports facilities and auditorium.",
			CurrentPhase:       "Pre-Design",
			CreatedAt:          mustTime("2025-01-20T08:15:00Z"),
			LastActivity:       mustTime("2025-02-15T16:30:00Z"),
			DocumentsGenerated: 1,
		},
	}
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}
