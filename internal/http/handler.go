package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"activities-signup/internal/model"
	"activities-signup/internal/page"
	"activities-signup/internal/service"
)

// ActivityService — бизнес-операции, которые нужны обработчикам.
type ActivityService interface {
	ListActivities(ctx context.Context) (model.Catalog, error)
	Signup(ctx context.Context, activityName, email string) (string, error)
	RemoveParticipant(ctx context.Context, activityName, email string) (string, error)
}

// Options настраивает роутер.
type Options struct {
	// AllowedOrigins — источники, которым разрешены кросс-доменные запросы к API.
	AllowedOrigins []string
	// HideAfter — время жизни сообщения на странице записи.
	HideAfter time.Duration
}

type Handler struct {
	Activities ActivityService
	Log        *slog.Logger
	opts       Options
}

func NewHandler(activities ActivityService, log *slog.Logger, opts Options) *Handler {
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}
	if opts.HideAfter <= 0 {
		opts.HideAfter = page.DefaultHideAfter
	}
	return &Handler{
		Activities: activities,
		Log:        log,
		opts:       opts,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.handleHealth)
	r.Get("/", h.handleRoot)

	r.Route("/static", func(r chi.Router) {
		r.Get("/index.html", h.handlePage)
		r.Post("/signup", h.handlePageSignup)
	})

	r.Route("/activities", func(r chi.Router) {
		r.Get("/", h.handleActivitiesList)
		r.Post("/{activity}/signup", h.handleSignup)
		r.Delete("/{activity}/participants/{email}", h.handleRemoveParticipant)
	})

	return r
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, handlerName string, err error) {
	var appErr *service.AppError
	if !errors.As(err, &appErr) {
		appErr = service.ErrInternal("internal error", err)
	}

	level := slog.LevelWarn
	if appErr.Status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.Log.Log(r.Context(), level, "handler error",
		slog.String("handler", handlerName),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	detail := appErr.Message
	if appErr.Status >= http.StatusInternalServerError {
		detail = "internal error"
	}
	h.writeJSON(w, appErr.Status, errorResponse{Detail: detail})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}
