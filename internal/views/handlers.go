package views

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/davidhaley/medley/internal/auth"
	"github.com/davidhaley/medley/internal/httputil"
)

// Notifier pushes events to a user's other connected clients.
type Notifier interface {
	Broadcast(userID, event string, data interface{})
}

type Handler struct {
	store    *CachedStore
	notifier Notifier
}

func NewHandler(store *CachedStore, notifier Notifier) *Handler {
	return &Handler{store: store, notifier: notifier}
}

func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Get("/{category}", h.get)
	r.Put("/{category}", h.update)
	r.Delete("/{category}", h.reset)
	return r
}

// viewResponse bundles the persisted record with everything derived from it,
// so a client gets the full display state in one round trip.
type viewResponse struct {
	Key         string      `json:"key"`
	Settings    Settings    `json:"settings"`
	CardOptions CardOptions `json:"card_options"`
	HasFilters  bool        `json:"has_filters"`
	HasSortName bool        `json:"has_sort_name"`
}

func buildViewResponse(c Category, parentID string, settings Settings) viewResponse {
	return viewResponse{
		Key:         SettingsKey(c, parentID),
		Settings:    settings,
		CardOptions: ResolveCardOptions(c, settings),
		HasFilters:  HasFilters(settings),
		HasSortName: HasSortName(settings),
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	u := auth.UserFromContext(r.Context())
	if u == nil {
		httputil.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "not authenticated")
		return
	}
	category := Category(chi.URLParam(r, "category"))
	parentID := r.URL.Query().Get("parent_id")

	settings, err := h.store.Load(r.Context(), u.UserID, category, parentID)
	if err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to load view settings")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, buildViewResponse(category, parentID, settings))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	u := auth.UserFromContext(r.Context())
	if u == nil {
		httputil.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "not authenticated")
		return
	}
	category := Category(chi.URLParam(r, "category"))
	parentID := r.URL.Query().Get("parent_id")

	var settings Settings
	if err := httputil.ReadJSON(r, &settings); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}
	if settings.StartIndex < 0 {
		httputil.WriteError(w, http.StatusBadRequest, "INVALID_INPUT", "start_index must not be negative")
		return
	}

	if err := h.store.Save(r.Context(), u.UserID, category, parentID, settings); err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to save view settings")
		return
	}

	resp := buildViewResponse(category, parentID, settings)
	h.notifier.Broadcast(u.UserID, "settings:update", resp)
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	u := auth.UserFromContext(r.Context())
	if u == nil {
		httputil.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "not authenticated")
		return
	}
	category := Category(chi.URLParam(r, "category"))
	parentID := r.URL.Query().Get("parent_id")

	if err := h.store.Delete(r.Context(), u.UserID, category, parentID); err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to reset view settings")
		return
	}

	settings := Defaults(category)
	resp := buildViewResponse(category, parentID, settings)
	h.notifier.Broadcast(u.UserID, "settings:update", resp)
	httputil.WriteJSON(w, http.StatusOK, resp)
}
