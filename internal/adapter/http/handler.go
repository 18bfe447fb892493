package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/dayplan/weekly-planner/internal/domain"
	"github.com/dayplan/weekly-planner/internal/port"
	"github.com/dayplan/weekly-planner/internal/usecase/account"
)

// Handler exposes the planner API. Rendering is left entirely to the
// client; every endpoint speaks the {ok, ...} JSON envelope.
type Handler struct {
	svc            *account.Service
	hasher         port.CredentialHasher
	sessions       *SessionManager
	requestTimeout time.Duration
	log            *zap.Logger
}

func NewHandler(svc *account.Service, hasher port.CredentialHasher, sessions *SessionManager, requestTimeout time.Duration, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{svc: svc, hasher: hasher, sessions: sessions, requestTimeout: requestTimeout, log: log}
}

// Router builds the chi router with all routes and middleware attached.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if h.requestTimeout > 0 {
		r.Use(middleware.Timeout(h.requestTimeout))
	}

	r.Post("/api/register", h.Register)
	r.Post("/api/login", h.Login)
	r.Post("/api/logout", h.Logout)

	r.Group(func(r chi.Router) {
		r.Use(h.requireSession)
		r.Get("/api/day/{date}", h.ResolveDay)
		r.Post("/api/note", h.AddNote)
		r.Put("/api/schedule", h.SetSchedule)
	})

	h.serveStatic(r)
	return r
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Password = strings.TrimSpace(req.Password)
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "missing fields")
		return
	}

	hash, err := h.hasher.Hash(req.Password)
	if err != nil {
		h.log.Error("hash password", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	rec, err := h.svc.Register(r.Context(), req.Username, hash)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUser) {
			writeError(w, http.StatusConflict, "user exists")
			return
		}
		h.log.Error("register", zap.String("username", req.Username), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "storage failure")
		return
	}

	h.setSessionCookie(w, h.sessions.Issue(rec.Username))
	h.log.Info("user registered", zap.String("username", rec.Username))
	writeJSON(w, http.StatusCreated, map[string]any{"ok": true, "username": rec.Username})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	rec, err := h.svc.Find(r.Context(), strings.TrimSpace(req.Username))
	if err != nil || !h.hasher.Verify(rec.CredentialHash, req.Password) {
		writeError(w, http.StatusUnauthorized, "wrong username or password")
		return
	}

	h.setSessionCookie(w, h.sessions.Issue(rec.Username))
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "username": rec.Username})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(SessionCookie); err == nil {
		h.sessions.Revoke(c.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *Handler) ResolveDay(w http.ResponseWriter, r *http.Request) {
	username := usernameFrom(r)
	dateStr := chi.URLParam(r, "date")

	view, err := h.svc.ResolveDay(r.Context(), username, dateStr)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDate) {
			writeError(w, http.StatusBadRequest, "invalid date")
			return
		}
		h.log.Error("resolve day", zap.String("username", username), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":    true,
		"date":  view.Date,
		"items": view.Items,
		"notes": view.Notes,
	})
}

func (h *Handler) AddNote(w http.ResponseWriter, r *http.Request) {
	username := usernameFrom(r)
	var req struct {
		Date string `json:"date"`
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	note, err := h.svc.AddNote(r.Context(), username, req.Date, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBlankText):
			writeError(w, http.StatusBadRequest, "text required")
		case errors.Is(err, domain.ErrInvalidDate):
			writeError(w, http.StatusBadRequest, "invalid date")
		case errors.Is(err, domain.ErrRecordNotFound):
			writeError(w, http.StatusUnauthorized, "unknown user")
		default:
			h.log.Error("add note", zap.String("username", username), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "storage failure")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "note": note})
}

func (h *Handler) SetSchedule(w http.ResponseWriter, r *http.Request) {
	username := usernameFrom(r)
	var req map[string]string
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	raw := make(map[domain.Weekday]string, len(domain.Weekdays))
	for _, d := range domain.Weekdays {
		raw[d] = req[string(d)]
	}

	if _, err := h.svc.SetWeeklySchedule(r.Context(), username, raw); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			writeError(w, http.StatusUnauthorized, "unknown user")
			return
		}
		h.log.Error("set schedule", zap.String("username", username), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "storage failure")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"ok": false, "error": msg})
}
