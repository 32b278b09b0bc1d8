package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"golang.org/x/crypto/bcrypt"

	"github.com/kevinjame2233/Carryluxe-Full1/internal/media"
	"github.com/kevinjame2233/Carryluxe-Full1/internal/models"
	"github.com/kevinjame2233/Carryluxe-Full1/internal/store"
)

const sessionName = "carryluxe-session"

// AdminConfig is everything the session guard and the bootstrap
// endpoints need, passed in at construction instead of read from the
// environment ad hoc.
type AdminConfig struct {
	// Env-derived credential used when no admin record is stored.
	Email    string
	Password string
	// One-time token gating POST /api/admin/setup.
	SetupToken string
	// Reported by the health endpoint: "file" or "mongo".
	DBMode string
}

// AdminHandler owns the authenticated surface: login/logout, one-time
// setup and product/order administration.
type AdminHandler struct {
	Store    store.Store
	Sessions *sessions.CookieStore
	Uploader media.Uploader
	Config   AdminConfig
}

// currentAdmin resolves the singleton credential: the stored record
// wins, otherwise one is derived from configuration with the hash
// computed on the fly. Returns nil when no admin is configured at all.
func (h *AdminHandler) currentAdmin(r *http.Request) (*models.Admin, error) {
	admin, err := h.Store.GetAdmin(r.Context())
	if err == nil {
		return admin, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	if h.Config.Email == "" || h.Config.Password == "" {
		return nil, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(h.Config.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &models.Admin{Email: h.Config.Email, Hash: string(hash)}, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	admin, err := h.currentAdmin(r)
	if err != nil {
		serverError(w, "Login failed", err)
		return
	}
	if admin == nil {
		writeError(w, http.StatusBadRequest, "Admin not set up")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Hash), []byte(req.Password)) != nil || req.Email != admin.Email {
		writeError(w, http.StatusUnauthorized, "Invalid")
		return
	}

	session, _ := h.Sessions.Get(r, sessionName)
	session.Values["authenticated"] = true
	if err := session.Save(r, w); err != nil {
		serverError(w, "Failed to save session", err)
		return
	}
	slog.Info("Admin login successful")
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := h.Sessions.Get(r, sessionName)
	session.Values["authenticated"] = false
	session.Options.MaxAge = -1 // Expire immediately
	_ = session.Save(r, w)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

type setupRequest struct {
	Token    string `json:"token"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Setup is the one-time admin bootstrap: it only works while the setup
// token matches and no admin identity exists yet.
func (h *AdminHandler) Setup(w http.ResponseWriter, r *http.Request) {
	var req setupRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if h.Config.SetupToken == "" || req.Token != h.Config.SetupToken {
		writeError(w, http.StatusUnauthorized, "Invalid setup token")
		return
	}

	admin, err := h.currentAdmin(r)
	if err != nil {
		serverError(w, "Setup failed", err)
		return
	}
	if admin != nil {
		writeError(w, http.StatusBadRequest, "Admin already created")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Missing")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		serverError(w, "Setup failed", err)
		return
	}
	if err := h.Store.PutAdmin(r.Context(), &models.Admin{Email: req.Email, Hash: string(hash)}); err != nil {
		serverError(w, "Setup failed", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// RequireAdmin guards the administrative endpoints: anonymous requests
// are rejected before any store access happens.
func (h *AdminHandler) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := h.Sessions.Get(r, sessionName)
		if auth, ok := session.Values["authenticated"].(bool); !ok || !auth {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next(w, r)
	}
}

func (h *AdminHandler) Health(w http.ResponseWriter, r *http.Request) {
	admin, err := h.currentAdmin(r)
	if err != nil {
		serverError(w, "Health check failed", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":          "ok",
		"adminConfigured": admin != nil,
		"db":              h.Config.DBMode,
	})
}
