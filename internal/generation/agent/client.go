package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/archplan-ai/archplan-backend/internal/documents/domain"
)

// ManagerAgentID is the orchestrating agent every generation request is
// routed through.
const ManagerAgentID = "69996390730bbd74d53e8b02"

// Info describes one agent in the documentation fleet. The roster is
// observability data for the workspace status panel.
type Info struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// Roster lists the documentation agents behind the manager.
var Roster = []Info{
	{ID: ManagerAgentID, Name: "Documentation Orchestrator", Role: "Routes to sub-agents, aggregates output"},
	{ID: "699963762361782dde9da362", Name: "Project Brief & Phase Plan Agent", Role: "Generates briefs and phase plans"},
	{ID: "69996376730bbd74d53e8af1", Name: "Proposal & Contracts Agent", Role: "Generates proposals and fee schedules"},
	{ID: "69996377730bbd74d53e8af3", Name: "Meeting & Reporting Agent", Role: "Generates meeting minutes and reports"},
}

// Client calls the external document-generation agent over HTTP.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New builds a client for the agent endpoint at base.
func New(base string) *Client {
	return &Client{
		BaseURL: base,
		HTTP:    &http.Client{Timeout: 120 * time.Second},
	}
}

type callRequest struct {
	Message string `json:"message"`
	AgentID string `json:"agent_id"`
}

// Response is the agent's reply. Every field is untrusted and
// optional; the result payload stays raw until it reaches the
// document normalizer, so a result of any JSON shape decodes.
type Response struct {
	Success      bool `json:"success"`
	ResponseBody *struct {
		Result json.RawMessage `json:"result"`
	} `json:"response"`
	ModuleOutputs *struct {
		ArtifactFiles []domain.ArtifactFile `json:"artifact_files"`
	} `json:"module_outputs"`
	Error string `json:"error"`
}

// Result returns the result payload as an object. A result that is
// present but not an object (string, array, number) still counts as a
// result, just one with no usable fields, and comes back as an empty
// map. An absent, null, empty-string, zero or false result comes back
// nil.
func (r *Response) Result() map[string]any {
	if r == nil || r.ResponseBody == nil || len(r.ResponseBody.Result) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(r.ResponseBody.Result, &v); err != nil {
		return nil
	}
	switch t := v.(type) {
	case map[string]any:
		return t
	case nil:
		return nil
	case string:
		if t == "" {
			return nil
		}
	case float64:
		if t == 0 {
			return nil
		}
	case bool:
		if !t {
			return nil
		}
	}
	return map[string]any{}
}

// ArtifactFiles returns the attached file outputs, or nil.
func (r *Response) ArtifactFiles() []domain.ArtifactFile {
	if r == nil || r.ModuleOutputs == nil {
		return nil
	}
	return r.ModuleOutputs.ArtifactFiles
}

// Call sends an instruction to the named agent. Transport and decode
// problems come back as errors; a reported failure comes back as a
// decoded Response with Success unset.
func (c *Client) Call(ctx context.Context, message, agentID string) (*Response, error) {
	body, _ := json.Marshal(callRequest{Message: message, AgentID: agentID})

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/agent/call", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("agent call: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("agent call: %w", err)
	}
	defer resp.Body.Close()

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("agent decode: %w", err)
	}
	if resp.StatusCode >= 400 {
		if out.Error != "" {
			return nil, fmt.Errorf("agent error (status %d): %s", resp.StatusCode, out.Error)
		}
		return nil, fmt.Errorf("agent error (status %d)", resp.StatusCode)
	}
	return &out, nil
}
