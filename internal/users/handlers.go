package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/davidhaley/medley/internal/auth"
	"github.com/davidhaley/medley/internal/httputil"
)

type Handler struct {
	repo *Repository
	auth *auth.Auth
}

func NewHandler(repo *Repository, a *auth.Auth) *Handler {
	return &Handler{repo: repo, auth: a}
}

// AuthRouter holds the unauthenticated endpoints; the login limiter is
// applied by the server when mounting.
func (h *Handler) AuthRouter() chi.Router {
	r := chi.NewRouter()
	r.Post("/login", h.login)
	r.Post("/register", h.register)
	r.Post("/logout", h.logout)
	return r
}

func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.list)
	r.Get("/me", h.me)
	r.Get("/{id}", h.getByID)
	return r
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := httputil.ReadJSON(r, &req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	user, err := h.repo.GetByEmail(auth.NormalizeEmail(req.Email))
	if err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "INTERNAL", "login failed")
		return
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		httputil.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid credentials")
		return
	}

	token, err := h.auth.IssueToken(user.ID, user.IsAdmin)
	if err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "INTERNAL", "login failed")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// register creates an account. The first account on the server becomes the
// admin; everyone after that is a regular user.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName string `json:"full_name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := httputil.ReadJSON(r, &req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}
	if req.Email == "" || len(req.Password) < 8 {
		httputil.WriteError(w, http.StatusBadRequest, "INVALID_INPUT", "email and a password of at least 8 characters are required")
		return
	}

	email := auth.NormalizeEmail(req.Email)
	existing, err := h.repo.GetByEmail(email)
	if err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "INTERNAL", "registration failed")
		return
	}
	if existing != nil {
		httputil.WriteError(w, http.StatusConflict, "EMAIL_TAKEN", "an account with this email already exists")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "INTERNAL", "registration failed")
		return
	}

	count, err := h.repo.Count()
	if err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "INTERNAL", "registration failed")
		return
	}

	user := &User{
		FullName:     req.FullName,
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      count == 0,
	}
	if err := h.repo.Create(user); err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "INTERNAL", "registration failed")
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, user)
}

// logout clears the session cookie. Tokens are stateless, so clients holding
// a bearer token simply discard it.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	u := auth.UserFromContext(r.Context())
	if u == nil || !u.IsAdmin {
		httputil.WriteError(w, http.StatusForbidden, "FORBIDDEN", "admin access required")
		return
	}
	users, err := h.repo.List()
	if err != nil {
		httputil.WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to list users")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, users)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	u := auth.UserFromContext(r.Context())
	if u == nil {
		httputil.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "not authenticated")
		return
	}
	user, err := h.repo.GetByID(u.UserID)
	if err != nil {
		httputil.WriteError(w, http.StatusNotFound, "NOT_FOUND", "user not found")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, user)
}

func (h *Handler) getByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	user, err := h.repo.GetByID(id)
	if err != nil {
		httputil.WriteError(w, http.StatusNotFound, "NOT_FOUND", "user not found")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, user)
}
