package generation

import (
	"encoding/json"
	"fmt"
	"strings"

	docdomain "github.com/archplan-ai/archplan-backend/internal/documents/domain"
	projdomain "github.com/archplan-ai/archplan-backend/internal/projects/domain"
)

// meetingContext mirrors the serialized context keys the agent fleet
// was trained against; the field order is fixed by the struct.
type meetingContext struct {
	Attendees       []Attendee `json:"attendees"`
	MeetingDate     string     `json:"meetingDate"`
	Agenda          string     `json:"agenda"`
	DiscussionNotes string     `json:"discussionNotes"`
}

type progressContext struct {
	PhaseStatuses []PhaseStatus `json:"phaseStatuses"`
	BudgetSpent   string        `json:"budgetSpent"`
	KeyIssues     string        `json:"keyIssues"`
}

type proposalContext struct {
	ClientName         string `json:"clientName"`
	ClientOrganization string `json:"clientOrganization"`
	ProposalValidUntil string `json:"proposalValidUntil"`
	SpecialTerms       string `json:"specialTerms"`
}

// BuildInstruction assembles the natural-language generation request
// for one document type, embedding the project's full attribute set
// and, for the context-bearing document types, the serialized form
// state. Attendees without a name are dropped from the context.
func BuildInstruction(p projdomain.Project, docType string, form FormState) string {
	context := additionalContext(docType, form)

	var b strings.Builder
	fmt.Fprintf(&b, "Generate a %s for the following architectural project:\n\n", docType)
	fmt.Fprintf(&b, "Project Name: %s\n", p.Name)
	fmt.Fprintf(&b, "Location: %s\n", p.Location)
	fmt.Fprintf(&b, "Plot Size: %s %s\n", p.PlotSize, p.PlotUnit)
	fmt.Fprintf(&b, "Project Type: %s\n", p.ProjectType)
	fmt.Fprintf(&b, "Budget Range: $%s - $%s\n", p.BudgetMin, p.BudgetMax)
	fmt.Fprintf(&b, "Timeline: %s to %s\n", p.StartDate, p.TargetCompletion)
	fmt.Fprintf(&b, "Additional Notes: %s\n\n", p.Notes)
	fmt.Fprintf(&b, "Document Type: %s\n", docType)
	if context != "" {
		fmt.Fprintf(&b, "Additional Context: %s\n", context)
	}
	fmt.Fprintf(&b, "\nPlease generate a comprehensive, professional %s document.", docType)
	return b.String()
}

func additionalContext(docType string, form FormState) string {
	var payload any
	switch docType {
	case docdomain.TypeMeetingMinutes:
		payload = meetingContext{
			Attendees:       namedAttendees(form.Meeting.Attendees),
			MeetingDate:     form.Meeting.MeetingDate,
			Agenda:          form.Meeting.Agenda,
			DiscussionNotes: form.Meeting.Notes,
		}
	case docdomain.TypeProgressReport:
		payload = progressContext{
			PhaseStatuses: form.Progress.Phases,
			BudgetSpent:   form.Progress.BudgetSpent,
			KeyIssues:     form.Progress.KeyIssues,
		}
	case docdomain.TypeProposal:
		payload = proposalContext{
			ClientName:         form.Proposal.ClientName,
			ClientOrganization: form.Proposal.ClientOrganization,
			ProposalValidUntil: form.Proposal.ValidUntil,
			SpecialTerms:       form.Proposal.SpecialTerms,
		}
	default:
		return ""
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return ""
	}
	return string(data)
}

func namedAttendees(in []Attendee) []Attendee {
	out := make([]Attendee, 0, len(in))
	for _, a := range in {
		if strings.TrimSpace(a.Name) != "" {
			out = append(out, a)
		}
	}
	return out
}
