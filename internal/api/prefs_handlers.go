package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/davidhaley/medley/internal/auth"
	"github.com/davidhaley/medley/internal/httputil"
	"github.com/davidhaley/medley/internal/prefs"
)

type prefsHandler struct {
	repo *prefs.Repository
}

func newPrefsHandler(repo *prefs.Repository) *prefsHandler {
	return &prefsHandler{repo: repo}
}

func (h *prefsHandler) Router() chi.Router {
	r := chi.NewRouter()
	r.Get("/page-size", h.getPageSize)
	r.Put("/page-size", h.setPageSize)
	return r
}

func (h *prefsHandler) getPageSize(w http.ResponseWriter, r *http.Request) {
	u := auth.UserFromContext(r.Context())
	size, err := h.repo.PageSize(u.UserID)
	if err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to load preference")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{"page_size": size})
}

func (h *prefsHandler) setPageSize(w http.ResponseWriter, r *http.Request) {
	u := auth.UserFromContext(r.Context())
	var req struct {
		PageSize int `json:"page_size"`
	}
	if err := httputil.ReadJSON(r, &req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}
	if err := h.repo.SetPageSize(u.UserID, req.PageSize); err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to save preference")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]int{"page_size": req.PageSize})
}
