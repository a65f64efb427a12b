package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/hibiken/asynq"

	"github.com/davidhaley/medley/internal/items"
)

type FacetsPayload struct {
	ParentID string `json:"parent_id"`
}

// FacetsHandler recomputes the filter facets for one container.
type FacetsHandler struct {
	repo *items.Repository
}

func NewFacetsHandler(repo *items.Repository) *FacetsHandler {
	return &FacetsHandler{repo: repo}
}

func (h *FacetsHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var p FacetsPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}
	if err := h.repo.RefreshFacets(p.ParentID); err != nil {
		return fmt.Errorf("refresh facets for %s: %w", p.ParentID, err)
	}
	log.Printf("[jobs] refreshed facets for container %s", p.ParentID)
	return nil
}

// FacetsAllHandler fans one refresh task out per known container.
type FacetsAllHandler struct {
	repo  *items.Repository
	queue *Queue
}

func NewFacetsAllHandler(repo *items.Repository, queue *Queue) *FacetsAllHandler {
	return &FacetsAllHandler{repo: repo, queue: queue}
}

func (h *FacetsAllHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	ids, err := h.repo.ListContainerIDs()
	if err != nil {
		return fmt.Errorf("list containers: %w", err)
	}
	for _, id := range ids {
		if _, err := h.queue.Enqueue(TaskFacetsRefresh, FacetsPayload{ParentID: id}, asynq.Queue("low")); err != nil {
			log.Printf("[jobs] enqueue facets refresh for %s failed: %v", id, err)
		}
	}
	log.Printf("[jobs] scheduled facets refresh for %d containers", len(ids))
	return nil
}

func RegisterHandlers(q *Queue, repo *items.Repository) {
	q.RegisterHandler(TaskFacetsRefresh, NewFacetsHandler(repo))
	q.RegisterHandler(TaskFacetsRefreshAll, NewFacetsAllHandler(repo, q))
}
