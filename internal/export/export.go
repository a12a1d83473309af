package export

import (
	"encoding/json"
	"strings"

	"github.com/archplan-ai/archplan-backend/internal/documents/domain"
)

// Print action modes for the PDF-style export path.
const (
	ActionOpenURL = "open_url"
	ActionPrint   = "print"
)

// PrintAction tells the client how to produce a print-ready copy:
// open a generated artifact, or fall back to browser printing.
type PrintAction struct {
	Mode string `json:"mode"`
	URL  string `json:"url,omitempty"`
}

// AsJSON serializes a full document snapshot for download, returning
// the payload and a filename derived from the title.
func AsJSON(doc domain.GeneratedDocument) ([]byte, string, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, "", err
	}
	name := doc.Title
	if name == "" {
		name = "document"
	}
	return data, name + ".json", nil
}

// ResolvePrintAction picks the artifact to open for a print-ready
// export: the first PDF artifact, else the first artifact with a URL,
// else a plain print directive.
func ResolvePrintAction(files []domain.ArtifactFile) PrintAction {
	for _, f := range files {
		if (f.FormatType == "pdf" || strings.HasSuffix(f.Name, ".pdf")) && f.FileURL != "" {
			return PrintAction{Mode: ActionOpenURL, URL: f.FileURL}
		}
	}
	for _, f := range files {
		if f.FileURL != "" {
			return PrintAction{Mode: ActionOpenURL, URL: f.FileURL}
		}
	}
	return PrintAction{Mode: ActionPrint}
}
