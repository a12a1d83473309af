package projects

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/archplan-ai/archplan-backend/internal/export"
	"github.com/archplan-ai/archplan-backend/internal/projects/domain"
)

// DocumentCounter is the slice of the document history the project
// handlers need: the cascading purge on delete, and the total for the
// dashboard stats.
type DocumentCounter interface {
	PurgeByProject(projectID string) int
	Len() int
}

// Workspace lets the handlers reset the open session when its project
// disappears.
type Workspace interface {
	ProjectDeleted(id string)
}

type Handler struct {
	store     *Store
	history   DocumentCounter
	workspace Workspace
}

func Register(rg *gin.RouterGroup, store *Store, history DocumentCounter, workspace Workspace) {
	h := &Handler{store: store, history: history, workspace: workspace}

	rg.POST("/projects", h.create)
	rg.GET("/projects", h.list)
	rg.GET("/projects/:id", h.get)
	rg.PATCH("/projects/:id", h.update)
	rg.DELETE("/projects/:id", h.delete)
	rg.POST("/projects/sample", h.loadSample)
	rg.GET("/stats", h.stats)
}

func (h *Handler) create(c *gin.Context) {
	var draft domain.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, err := h.store.Create(draft)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

func (h *Handler) list(c *gin.Context) {
	search := c.Query("search")
	projectType := c.Query("type")

	var items []domain.Project
	if search == "" && projectType == "" {
		items = h.store.List()
	} else {
		items = h.store.Filter(search, projectType)
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.store.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"project": p,
		"display": gin.H{
			"budget":           export.FormatCurrency(p.BudgetMin) + " - " + export.FormatCurrency(p.BudgetMax),
			"startDate":        export.FormatDate(p.StartDate),
			"targetCompletion": export.FormatDate(p.TargetCompletion),
			"lastActivity":     export.FormatTimestamp(p.LastActivity.Format(time.RFC3339)),
		},
	})
}

type updateReq struct {
	domain.Draft
	CurrentPhase string `json:"currentPhase"`
}

func (h *Handler) update(c *gin.Context) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, err := h.store.Update(c.Param("id"), req.Draft, req.CurrentPhase)
	switch {
	case errors.Is(err, ErrProjectNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.store.Delete(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}

	purged := h.history.PurgeByProject(id)
	h.workspace.ProjectDeleted(id)

	c.JSON(http.StatusOK, gin.H{"ok": true, "documentsPurged": purged})
}

func (h *Handler) loadSample(c *gin.Context) {
	sample := SampleProjects()
	h.store.Replace(sample)
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": sample})
}

func (h *Handler) stats(c *gin.Context) {
	st := h.store.Stats(h.history.Len())
	c.JSON(http.StatusOK, gin.H{"ok": true, "stats": st})
}
