package documents

import (
	"fmt"
	"time"

	"github.com/archplan-ai/archplan-backend/internal/documents/domain"
	"github.com/google/uuid"
)

// Normalize converts an untrusted agent result payload into a canonical
// GeneratedDocument. It is total: any payload shape, including nil,
// produces a fully populated document. Fields that are missing or of
// the wrong type fall back to their defaults; the id and generatedAt
// stamp always come from this side, never from the payload.
func Normalize(payload map[string]any, requestedType, projectName, projectID string) domain.GeneratedDocument {
	doc := domain.GeneratedDocument{
		ID:           uuid.New().String(),
		DocumentType: stringField(payload, "document_type", requestedType),
		Title:        stringField(payload, "title", fmt.Sprintf("%s - %s", requestedType, projectName)),
		Sections:     sections(payload["sections"]),
		Milestones:   milestones(payload["milestones"]),
		FeeSchedule:  feeSchedule(payload["fee_schedule"]),
		Deliverables: deliverables(payload["deliverables"]),
		ActionItems:  actionItems(payload["action_items"]),
		Risks:        risks(payload["risks"]),
		Summary:      stringField(payload, "summary", ""),
		GeneratedAt:  time.Now().UTC(),
		ProjectID:    projectID,
	}
	return doc
}

// stringField falls back only when the key is absent, null or not a
// string. An explicitly empty string is a value and is kept.
func stringField(m map[string]any, key, fallback string) string {
	if m == nil {
		return fallback
	}
	if s, ok := m[key].(string); ok {
		return s
	}
	return fallback
}

func str(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// records pulls the object elements out of a value expected to be an
// array. Anything that is not an array yields an empty slice; elements
// that are not objects are dropped.
func records(v any) []map[string]any {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(items))
	for _, it := range items {
		if m, ok := it.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func sections(v any) []domain.Section {
	out := make([]domain.Section, 0)
	for _, m := range records(v) {
		sec := domain.Section{
			Heading:     str(m, "heading"),
			Content:     str(m, "content"),
			Subsections: make([]domain.Subsection, 0),
		}
		for _, sub := range records(m["subsections"]) {
			sec.Subsections = append(sec.Subsections, domain.Subsection{
				Subheading: str(sub, "subheading"),
				Details:    str(sub, "details"),
			})
		}
		out = append(out, sec)
	}
	return out
}

func milestones(v any) []domain.Milestone {
	out := make([]domain.Milestone, 0)
	for _, m := range records(v) {
		out = append(out, domain.Milestone{
			Phase:        str(m, "phase"),
			Milestone:    str(m, "milestone"),
			Duration:     str(m, "duration"),
			Dependencies: str(m, "dependencies"),
		})
	}
	return out
}

func feeSchedule(v any) []domain.FeeScheduleRow {
	out := make([]domain.FeeScheduleRow, 0)
	for _, m := range records(v) {
		out = append(out, domain.FeeScheduleRow{
			Phase:          str(m, "phase"),
			FeePercentage:  str(m, "fee_percentage"),
			FeeAmount:      str(m, "fee_amount"),
			PaymentTrigger: str(m, "payment_trigger"),
		})
	}
	return out
}

func deliverables(v any) []domain.Deliverable {
	out := make([]domain.Deliverable, 0)
	for _, m := range records(v) {
		out = append(out, domain.Deliverable{
			Item:   str(m, "item"),
			Format: str(m, "format"),
			Phase:  str(m, "phase"),
		})
	}
	return out
}

func actionItems(v any) []domain.ActionItem {
	out := make([]domain.ActionItem, 0)
	for _, m := range records(v) {
		out = append(out, domain.ActionItem{
			Action:      str(m, "action"),
			Responsible: str(m, "responsible"),
			Deadline:    str(m, "deadline"),
			Priority:    str(m, "priority"),
			Status:      str(m, "status"),
		})
	}
	return out
}

func risks(v any) []domain.Risk {
	out := make([]domain.Risk, 0)
	for _, m := range records(v) {
		out = append(out, domain.Risk{
			Risk:        str(m, "risk"),
			Probability: str(m, "probability"),
			Impact:      str(m, "impact"),
			Mitigation:  str(m, "mitigation"),
			Owner:       str(m, "owner"),
		})
	}
	return out
}
