package generation

import (
	"context"
	"errors"
	"sync"

	"github.com/archplan-ai/archplan-backend/internal/documents"
	docdomain "github.com/archplan-ai/archplan-backend/internal/documents/domain"
	"github.com/archplan-ai/archplan-backend/internal/generation/agent"
	"github.com/archplan-ai/archplan-backend/internal/projects"
)

// Generation states.
const (
	StateIdle       = "idle"
	StateGenerating = "generating"
	StateSucceeded  = "succeeded"
	StateFailed     = "failed"
)

// Fallback messages when the agent reports no detail.
const (
	fallbackReportedError = "Failed to generate document. Please try again."
	fallbackException     = "An unexpected error occurred"
)

var (
	// ErrGenerationInFlight rejects a request while one is running.
	ErrGenerationInFlight = errors.New("a generation is already in flight")

	// ErrNoOpenProject rejects workspace operations without a project.
	ErrNoOpenProject = errors.New("no project is open in the workspace")

	// ErrUnknownDocumentType rejects a document type outside the fleet's
	// repertoire.
	ErrUnknownDocumentType = errors.New("unknown document type")

	// ErrDocumentNotFound reports a historic load against a missing id.
	ErrDocumentNotFound = errors.New("document not found")
)

// Caller is the external agent collaborator.
type Caller interface {
	Call(ctx context.Context, message, agentID string) (*agent.Response, error)
}

// Status is a point-in-time view of the workspace session.
type Status struct {
	State           string                       `json:"state"`
	Error           string                       `json:"error,omitempty"`
	ActiveAgentID   string                       `json:"activeAgentId,omitempty"`
	OpenProjectID   string                       `json:"openProjectId,omitempty"`
	ActiveDocType   string                       `json:"activeDocType,omitempty"`
	CurrentDocument *docdomain.GeneratedDocument `json:"currentDocument,omitempty"`
	FileOutputs     []docdomain.ArtifactFile     `json:"fileOutputs"`
}

// Orchestrator drives the document generation workflow for one
// workspace session: it enforces the single in-flight generation,
// unifies the agent's failure channels into one error message, and on
// success updates the history store and project counters together.
type Orchestrator struct {
	agent   Caller
	agentID string
	store   *projects.Store
	history *documents.HistoryStore

	mu          sync.Mutex
	state       string
	inFlight    bool
	lastError   string
	activeAgent string

	openProjectID string
	docType       string
	form          FormState
	current       *docdomain.GeneratedDocument
	fileOutputs   []docdomain.ArtifactFile
}

// NewOrchestrator wires the session against its stores and agent.
func NewOrchestrator(caller Caller, agentID string, store *projects.Store, history *documents.HistoryStore) *Orchestrator {
	if agentID == "" {
		agentID = agent.ManagerAgentID
	}
	return &Orchestrator{
		agent:   caller,
		agentID: agentID,
		store:   store,
		history: history,
		state:   StateIdle,
		docType: docdomain.TypeProjectBrief,
		form:    NewFormState(),
	}
}

// OpenProject navigates the workspace to a project: the contextual
// form state resets, the document type returns to Project Brief, and
// any displayed document, error and artifacts are cleared.
func (o *Orchestrator) OpenProject(id string) error {
	if _, err := o.store.Get(id); err != nil {
		return err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.openProjectID = id
	o.docType = docdomain.TypeProjectBrief
	o.form = NewFormState()
	o.current = nil
	o.fileOutputs = nil
	o.lastError = ""
	if !o.inFlight {
		o.state = StateIdle
	}
	return nil
}

// CloseWorkspace navigates back to the dashboard.
func (o *Orchestrator) CloseWorkspace() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.openProjectID = ""
	o.docType = docdomain.TypeProjectBrief
	o.form = NewFormState()
	o.current = nil
	o.fileOutputs = nil
	o.lastError = ""
	if !o.inFlight {
		o.state = StateIdle
	}
}

// ProjectDeleted resets the session if the deleted project was open.
func (o *Orchestrator) ProjectDeleted(id string) {
	o.mu.Lock()
	open := o.openProjectID == id
	o.mu.Unlock()
	if open {
		o.CloseWorkspace()
	}
}

// SetDocType selects the document type to generate next.
func (o *Orchestrator) SetDocType(t string) error {
	if !docdomain.IsDocumentType(t) {
		return ErrUnknownDocumentType
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.docType = t
	return nil
}

// SetForm replaces the contextual form state after sanitizing it.
func (o *Orchestrator) SetForm(f FormState) {
	f.Sanitize()
	o.mu.Lock()
	defer o.mu.Unlock()
	o.form = f
}

// Form returns a copy of the current form state.
func (o *Orchestrator) Form() FormState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.form
}

// Generate runs one document generation for the open project. Only a
// single generation may be in flight; a concurrent request is rejected
// with ErrGenerationInFlight and leaves no trace. Every terminal path
// clears the in-flight flag and the active-agent marker.
func (o *Orchestrator) Generate(ctx context.Context) (docdomain.GeneratedDocument, error) {
	return o.generate(ctx, "", nil)
}

// GenerateWith applies a document type and form for this request and
// then generates. The session is only touched after the single-flight
// gate admits the request, so a rejected request changes nothing.
func (o *Orchestrator) GenerateWith(ctx context.Context, docType string, form *FormState) (docdomain.GeneratedDocument, error) {
	if docType != "" && !docdomain.IsDocumentType(docType) {
		return docdomain.GeneratedDocument{}, ErrUnknownDocumentType
	}
	return o.generate(ctx, docType, form)
}

func (o *Orchestrator) generate(ctx context.Context, reqType string, reqForm *FormState) (docdomain.GeneratedDocument, error) {
	o.mu.Lock()
	if o.inFlight {
		o.mu.Unlock()
		return docdomain.GeneratedDocument{}, ErrGenerationInFlight
	}
	if o.openProjectID == "" {
		o.mu.Unlock()
		return docdomain.GeneratedDocument{}, ErrNoOpenProject
	}
	if reqType != "" {
		o.docType = reqType
	}
	if reqForm != nil {
		f := *reqForm
		f.Sanitize()
		o.form = f
	}
	projectID := o.openProjectID
	docType := o.docType
	form := o.form
	o.inFlight = true
	o.state = StateGenerating
	o.lastError = ""
	o.activeAgent = o.agentID
	o.mu.Unlock()

	project, err := o.store.Get(projectID)
	if err != nil {
		o.mu.Lock()
		o.inFlight = false
		o.activeAgent = ""
		o.state = StateFailed
		o.lastError = err.Error()
		o.mu.Unlock()
		return docdomain.GeneratedDocument{}, err
	}

	message := BuildInstruction(project, docType, form)
	resp, callErr := o.agent.Call(ctx, message, o.agentID)

	o.mu.Lock()
	defer o.mu.Unlock()
	o.inFlight = false
	o.activeAgent = ""

	if callErr != nil {
		o.state = StateFailed
		o.lastError = callErr.Error()
		if o.lastError == "" {
			o.lastError = fallbackException
		}
		return docdomain.GeneratedDocument{}, errors.New(o.lastError)
	}

	result := resp.Result()
	if !resp.Success || result == nil {
		o.state = StateFailed
		o.lastError = resp.Error
		if o.lastError == "" {
			o.lastError = fallbackReportedError
		}
		return docdomain.GeneratedDocument{}, errors.New(o.lastError)
	}

	doc := documents.Normalize(result, docType, project.Name, project.ID)
	o.history.Append(doc)
	o.store.RecordGeneration(project.ID)
	o.current = &doc
	o.fileOutputs = resp.ArtifactFiles()
	o.state = StateSucceeded
	return doc, nil
}

// LoadHistoricDocument displays a document from history, bypassing the
// generation path. Historic documents carry no export artifacts, so
// the file-output set is cleared.
func (o *Orchestrator) LoadHistoricDocument(docID string) (docdomain.GeneratedDocument, error) {
	doc, ok := o.history.Get(docID)
	if !ok {
		return docdomain.GeneratedDocument{}, ErrDocumentNotFound
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.current = &doc
	o.fileOutputs = nil
	return doc, nil
}

// FileOutputs returns the artifacts captured from the most recent
// generation.
func (o *Orchestrator) FileOutputs() []docdomain.ArtifactFile {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]docdomain.ArtifactFile, len(o.fileOutputs))
	copy(out, o.fileOutputs)
	return out
}

// Snapshot reports the session state for the status endpoint.
func (o *Orchestrator) Snapshot() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	st := Status{
		State:         o.state,
		Error:         o.lastError,
		ActiveAgentID: o.activeAgent,
		OpenProjectID: o.openProjectID,
		ActiveDocType: o.docType,
		FileOutputs:   make([]docdomain.ArtifactFile, len(o.fileOutputs)),
	}
	copy(st.FileOutputs, o.fileOutputs)
	if o.current != nil {
		docCopy := *o.current
		st.CurrentDocument = &docCopy
	}
	return st
}
