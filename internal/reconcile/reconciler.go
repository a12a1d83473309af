package reconcile

import (
	"log"

	"github.com/archplan-ai/archplan-backend/internal/documents"
	"github.com/archplan-ai/archplan-backend/internal/projects"
	"github.com/robfig/cron/v3"
)

// Reconciler keeps the per-project documentsGenerated counters in
// agreement with the document history. The two are maintained
// independently on the hot path and expected to agree; this job is
// the backstop that repairs drift.
type Reconciler struct {
	store   *projects.Store
	history *documents.HistoryStore
}

func New(store *projects.Store, history *documents.HistoryStore) *Reconciler {
	return &Reconciler{store: store, history: history}
}

// Run performs one reconciliation pass and returns how many counters
// were repaired.
func (r *Reconciler) Run() int {
	repaired := 0
	for _, p := range r.store.List() {
		actual := r.history.CountByProject(p.ID)
		if p.DocumentsGenerated == actual {
			continue
		}
		if r.store.SetDocumentsGenerated(p.ID, actual) {
			log.Printf("[warn] reconcile project=%s counter=%d history=%d repaired", p.ID, p.DocumentsGenerated, actual)
			repaired++
		}
	}
	return repaired
}

// Start schedules the nightly reconciliation pass (12:00 AM).
func (r *Reconciler) Start() *cron.Cron {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc("0 0 0 * * *", func() {
		if n := r.Run(); n > 0 {
			log.Printf("[warn] reconcile repaired %d project counters", n)
		}
	})
	if err != nil {
		log.Printf("Failed to create reconcile cron job: %v", err)
		return c
	}

	log.Println("Reconcile scheduler started (running nightly at 12:00AM)")
	c.Start()
	return c
}
