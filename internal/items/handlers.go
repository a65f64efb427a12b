package items

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/davidhaley/medley/internal/auth"
	"github.com/davidhaley/medley/internal/httputil"
	"github.com/davidhaley/medley/internal/prefs"
	"github.com/davidhaley/medley/internal/views"
)

type Handler struct {
	repo     *Repository
	store    *views.CachedStore
	prefs    *prefs.Repository
	// enqueueFacets schedules a background facet refresh; injected so this
	// package stays ignorant of the queue implementation.
	enqueueFacets func(parentID string) error
}

func NewHandler(repo *Repository, store *views.CachedStore, prefsRepo *prefs.Repository,
	enqueueFacets func(parentID string) error) *Handler {
	return &Handler{repo: repo, store: store, prefs: prefsRepo, enqueueFacets: enqueueFacets}
}

func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Get("/browse/{category}", h.browse)
	r.Get("/{id}", h.getByID)
	r.Get("/containers/{id}/letters", h.letterIndex)
	r.Get("/containers/{id}/facets", h.facets)
	r.Post("/containers/{id}/facets/refresh", h.refreshFacets)
	return r
}

// browseResponse pairs one listing page with the display state that produced
// it, so the client renders without a second request.
type browseResponse struct {
	Parent      *Item             `json:"parent,omitempty"`
	Items       []Item            `json:"items"`
	Total       int               `json:"total_record_count"`
	Query       views.ItemQuery   `json:"query"`
	Settings    views.Settings    `json:"settings"`
	CardOptions views.CardOptions `json:"card_options"`
	HasFilters  bool              `json:"has_filters"`
	HasSortName bool              `json:"has_sort_name"`
}

// browse is the full pipeline: resolve the view key, load (or default) the
// settings record, build the listing query with the user's page size, run it,
// and pair the page with the resolved rendering options and derived flags.
func (h *Handler) browse(w http.ResponseWriter, r *http.Request) {
	u := auth.UserFromContext(r.Context())
	if u == nil {
		httputil.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "not authenticated")
		return
	}
	category := views.Category(chi.URLParam(r, "category"))
	parentID := r.URL.Query().Get("parent_id")

	settings, err := h.store.Load(r.Context(), u.UserID, category, parentID)
	if err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to load view settings")
		return
	}

	pageSize, err := h.prefs.PageSize(u.UserID)
	if err != nil {
		log.Printf("[items] page size lookup failed for %s: %v", u.UserID, err)
		pageSize = nil
	}

	query := views.BuildQuery(category, settings, pageSize)

	result, err := h.repo.List(parentID, query)
	if err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "INTERNAL", "listing query failed")
		return
	}

	resp := browseResponse{
		Items:       result.Items,
		Total:       result.TotalRecordCount,
		Query:       query,
		Settings:    settings,
		CardOptions: views.ResolveCardOptions(category, settings),
		HasFilters:  views.HasFilters(settings),
		HasSortName: views.HasSortName(settings),
	}
	if parentID != "" {
		parent, err := h.repo.GetByID(parentID)
		if err == nil {
			resp.Parent = parent
		}
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) getByID(w http.ResponseWriter, r *http.Request) {
	item, err := h.repo.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, http.StatusNotFound, "NOT_FOUND", "item not found")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) letterIndex(w http.ResponseWriter, r *http.Request) {
	index, err := h.repo.LetterIndex(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to build letter index")
		return
	}
	if index == nil {
		index = []LetterCount{}
	}
	httputil.WriteJSON(w, http.StatusOK, index)
}

func (h *Handler) facets(w http.ResponseWriter, r *http.Request) {
	facets, err := h.repo.FacetsFor(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to load facets")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, facets)
}

func (h *Handler) refreshFacets(w http.ResponseWriter, r *http.Request) {
	u := auth.UserFromContext(r.Context())
	if u == nil || !u.IsAdmin {
		httputil.WriteError(w, http.StatusForbidden, "FORBIDDEN", "admin access required")
		return
	}
	id := chi.URLParam(r, "id")
	if err := h.enqueueFacets(id); err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to schedule refresh")
		return
	}
	httputil.WriteJSON(w, http.StatusAccepted, map[string]string{"parent_id": id})
}
