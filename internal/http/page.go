package http

import (
	"errors"
	"log/slog"
	"net/http"

	"activities-signup/internal/model"
	"activities-signup/internal/page"
	"activities-signup/internal/service"
)

func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, page.PageData{})
}

// handlePageSignup обслуживает отправку формы без JavaScript: записывает ученика
// и заново рисует страницу с сообщением. После отказа форма остаётся заполненной.
func (h *Handler) handlePageSignup(w http.ResponseWriter, r *http.Request) {
	const handlerName = "page_signup"

	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, handlerName, service.ErrBadRequest("invalid form"))
		return
	}
	req := model.SignupRequest{
		Activity: r.PostForm.Get("activity"),
		Email:    r.PostForm.Get("email"),
	}

	var msg page.Message
	text, err := h.Activities.Signup(r.Context(), req.Activity, req.Email)
	if err != nil {
		var appErr *service.AppError
		detail := ""
		if errors.As(err, &appErr) && appErr.Status < http.StatusInternalServerError {
			detail = appErr.Message
		} else {
			h.Log.Error("page signup failed",
				slog.String("handler", handlerName),
				slog.String("activity", req.Activity),
				slog.Any("err", err),
			)
		}
		msg = page.SignupMessage(false, model.SignupResult{Detail: detail})
	} else {
		msg = page.SignupMessage(true, model.SignupResult{Message: text})
	}

	data := page.PageData{Message: &msg}
	if !msg.IsSuccess() {
		data.Email = req.Email
		data.Activity = req.Activity
	}
	h.renderPage(w, r, data)
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, data page.PageData) {
	catalog, err := h.Activities.ListActivities(r.Context())
	if err != nil {
		h.Log.Error("error fetching activities", slog.Any("err", err))
		data.LoadFailed = true
	} else {
		data.Listing = page.Render(catalog)
	}
	data.HideAfter = h.opts.HideAfter

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.PageComponent(data).Render(r.Context(), w); err != nil {
		h.Log.Error("render page", slog.Any("err", err))
	}
}
