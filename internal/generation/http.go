package generation

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/archplan-ai/archplan-backend/internal/documents"
	"github.com/archplan-ai/archplan-backend/internal/export"
	"github.com/archplan-ai/archplan-backend/internal/generation/agent"
	"github.com/archplan-ai/archplan-backend/internal/markup"
	"github.com/archplan-ai/archplan-backend/internal/projects"
)

// Handler exposes the workspace session over HTTP: opening a project,
// running generations, browsing history and exporting documents.
type Handler struct {
	orch    *Orchestrator
	history *documents.HistoryStore
	store   *projects.Store
}

func Register(rg *gin.RouterGroup, orch *Orchestrator, history *documents.HistoryStore, store *projects.Store, generateMW ...gin.HandlerFunc) {
	h := &Handler{orch: orch, history: history, store: store}

	rg.POST("/projects/:id/open", h.openProject)
	rg.POST("/workspace/close", h.closeWorkspace)

	generate := append([]gin.HandlerFunc{}, generateMW...)
	generate = append(generate, h.generate)
	rg.POST("/generate", generate...)
	rg.GET("/generate/status", h.status)
	rg.GET("/agents", h.agents)

	rg.GET("/projects/:id/documents", h.projectDocuments)
	rg.POST("/documents/:id/load", h.loadDocument)
	rg.GET("/documents/:id/export", h.exportDocument)
	rg.GET("/export/print-action", h.printAction)
	rg.POST("/documents/:id/render", h.renderDocument)
}

func (h *Handler) openProject(c *gin.Context) {
	if err := h.orch.OpenProject(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "status": h.orch.Snapshot()})
}

func (h *Handler) closeWorkspace(c *gin.Context) {
	h.orch.CloseWorkspace()
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type generateReq struct {
	DocumentType string     `json:"document_type"`
	Form         *FormState `json:"form"`
}

func (h *Handler) generate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	doc, err := h.orch.GenerateWith(c.Request.Context(), req.DocumentType, req.Form)
	switch {
	case errors.Is(err, ErrGenerationInFlight):
		c.JSON(http.StatusConflict, gin.H{"ok": false, "error": err.Error()})
		return
	case errors.Is(err, ErrUnknownDocumentType), errors.Is(err, ErrNoOpenProject):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":          true,
		"document":    doc,
		"fileOutputs": h.orch.FileOutputs(),
	})
}

func (h *Handler) status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "status": h.orch.Snapshot()})
}

func (h *Handler) agents(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "agents": agent.Roster})
}

func (h *Handler) projectDocuments(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.store.Get(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "documents": h.history.ByProject(id)})
}

func (h *Handler) loadDocument(c *gin.Context) {
	doc, err := h.orch.LoadHistoricDocument(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "document not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "document": doc})
}

func (h *Handler) exportDocument(c *gin.Context) {
	doc, ok := h.history.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "document not found"})
		return
	}

	data, filename, err := export.AsJSON(doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/json", data)
}

func (h *Handler) printAction(c *gin.Context) {
	action := export.ResolvePrintAction(h.orch.FileOutputs())
	c.JSON(http.StatusOK, gin.H{"ok": true, "action": action})
}

type renderedSubsection struct {
	Subheading string         `json:"subheading"`
	Blocks     []markup.Block `json:"blocks"`
}

type renderedSection struct {
	Heading     string               `json:"heading"`
	Blocks      []markup.Block       `json:"blocks"`
	Subsections []renderedSubsection `json:"subsections"`
}

func (h *Handler) renderDocument(c *gin.Context) {
	doc, ok := h.history.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "document not found"})
		return
	}

	sections := make([]renderedSection, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		rs := renderedSection{
			Heading:     s.Heading,
			Blocks:      markup.Render(s.Content),
			Subsections: make([]renderedSubsection, 0, len(s.Subsections)),
		}
		for _, sub := range s.Subsections {
			rs.Subsections = append(rs.Subsections, renderedSubsection{
				Subheading: sub.Subheading,
				Blocks:     markup.Render(sub.Details),
			})
		}
		sections = append(sections, rs)
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":          true,
		"title":       doc.Title,
		"generatedAt": export.FormatTimestamp(doc.GeneratedAt.Format(time.RFC3339)),
		"summary":     markup.Render(doc.Summary),
		"sections":    sections,
	})
}
