package export

import (
	"encoding/json"
	"testing"

	"github.com/archplan-ai/archplan-backend/internal/documents/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsJSON(t *testing.T) {
	doc := domain.GeneratedDocument{
		ID:           "d1",
		DocumentType: domain.TypeProjectBrief,
		Title:        "Project Brief - Tower",
		Sections:     []domain.Section{{Heading: "Scope"}},
	}

	data, name, err := AsJSON(doc)
	require.NoError(t, err)
	assert.Equal(t, "Project Brief - Tower.json", name)

	var round map[string]any
	require.NoError(t, json.Unmarshal(data, &round))
	assert.Equal(t, "d1", round["id"])

	_, name, err = AsJSON(domain.GeneratedDocument{})
	require.NoError(t, err)
	assert.Equal(t, "document.json", name)
}

func TestResolvePrintAction(t *testing.T) {
	// pdf by format type wins even when listed later
	action := ResolvePrintAction([]domain.ArtifactFile{
		{Name: "summary.docx", FormatType: "docx", FileURL: "https://f/summary.docx"},
		{Name: "brief", FormatType: "pdf", FileURL: "https://f/brief"},
	})
	assert.Equal(t, ActionOpenURL, action.Mode)
	assert.Equal(t, "https://f/brief", action.URL)

	// pdf by file name
	action = ResolvePrintAction([]domain.ArtifactFile{
		{Name: "plan.pdf", FileURL: "https://f/plan.pdf"},
	})
	assert.Equal(t, "https://f/plan.pdf", action.URL)

	// no pdf: first artifact with a URL
	action = ResolvePrintAction([]domain.ArtifactFile{
		{Name: "a.docx", FormatType: "docx", FileURL: "https://f/a.docx"},
		{Name: "b.docx", FormatType: "docx", FileURL: "https://f/b.docx"},
	})
	assert.Equal(t, "https://f/a.docx", action.URL)

	// nothing usable: fall back to browser print
	action = ResolvePrintAction(nil)
	assert.Equal(t, ActionPrint, action.Mode)
	assert.Empty(t, action.URL)
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$5.0M", FormatCurrency("5000000"))
	assert.Equal(t, "$8.5M", FormatCurrency("8500000"))
	assert.Equal(t, "$800K", FormatCurrency("800000"))
	assert.Equal(t, "$500", FormatCurrency("500"))
	assert.Equal(t, "TBD", FormatCurrency("TBD"))
	assert.Equal(t, "", FormatCurrency(""))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Mar 1, 2025", FormatDate("2025-03-01"))
	assert.Equal(t, "Feb 18, 2025", FormatDate("2025-02-18T14:22:00Z"))
	assert.Equal(t, "soon", FormatDate("soon"))
	assert.Equal(t, "", FormatDate(""))
}

func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, "Feb 18, 2025 02:22 PM", FormatTimestamp("2025-02-18T14:22:00Z"))
	assert.Equal(t, "", FormatTimestamp(""))
}
