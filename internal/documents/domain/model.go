package domain

import "time"

// Document type names accepted by the generation workflow.
const (
	TypeProjectBrief   = "Project Brief"
	TypePhasePlan      = "Phase Plan"
	TypeProposal       = "Proposal"
	TypeMeetingMinutes = "Meeting Minutes"
	TypeProgressReport = "Progress Report"
)

// DocumentTypes lists every generatable document type.
var DocumentTypes = []string{
	TypeProjectBrief,
	TypePhasePlan,
	TypeProposal,
	TypeMeetingMinutes,
	TypeProgressReport,
}

// IsDocumentType reports whether t is one of the known document types.
func IsDocumentType(t string) bool {
	for _, dt := range DocumentTypes {
		if dt == t {
			return true
		}
	}
	return false
}

// Subsection is a nested detail block inside a document section.
type Subsection struct {
	Subheading string `json:"subheading"`
	Details    string `json:"details"`
}

// Section is one ordered body section of a generated document.
type Section struct {
	Heading     string       `json:"heading"`
	Content     string       `json:"content"`
	Subsections []Subsection `json:"subsections"`
}

type Milestone struct {
	Phase        string `json:"phase"`
	Milestone    string `json:"milestone"`
	Duration     string `json:"duration"`
	Dependencies string `json:"dependencies"`
}

type FeeScheduleRow struct {
	Phase          string `json:"phase"`
	FeePercentage  string `json:"fee_percentage"`
	FeeAmount      string `json:"fee_amount"`
	PaymentTrigger string `json:"payment_trigger"`
}

type Deliverable struct {
	Item   string `json:"item"`
	Format string `json:"format"`
	Phase  string `json:"phase"`
}

type ActionItem struct {
	Action      string `json:"action"`
	Responsible string `json:"responsible"`
	Deadline    string `json:"deadline"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

type Risk struct {
	Risk        string `json:"risk"`
	Probability string `json:"probability"`
	Impact      string `json:"impact"`
	Mitigation  string `json:"mitigation"`
	Owner       string `json:"owner"`
}

// GeneratedDocument is the canonical, fully-populated document shape.
// Instances are immutable once created; the only mutations the system
// performs are creation and cascading bulk deletion.
type GeneratedDocument struct {
	ID           string           `json:"id"`
	DocumentType string           `json:"document_type"`
	Title        string           `json:"title"`
	Sections     []Section        `json:"sections"`
	Milestones   []Milestone      `json:"milestones"`
	FeeSchedule  []FeeScheduleRow `json:"fee_schedule"`
	Deliverables []Deliverable    `json:"deliverables"`
	ActionItems  []ActionItem     `json:"action_items"`
	Risks        []Risk           `json:"risks"`
	Summary      string           `json:"summary"`
	GeneratedAt  time.Time        `json:"generatedAt"`
	ProjectID    string           `json:"projectId"`
}

// ArtifactFile is a file output attached to a generation response.
type ArtifactFile struct {
	Name       string `json:"name"`
	FormatType string `json:"format_type"`
	FileURL    string `json:"file_url"`
}
