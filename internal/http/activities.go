package http

import (
	"net/http"
)

func (h *Handler) handleActivitiesList(w http.ResponseWriter, r *http.Request) {
	const handlerName = "activities_list"

	catalog, err := h.Activities.ListActivities(r.Context())
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, catalog)
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	const handlerName = "activity_signup"

	activity, err := pathParam(r, "activity")
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}
	if err := ValidateActivityName(activity); err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	email := r.URL.Query().Get("email")
	if err := ValidateEmail(email); err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	msg, err := h.Activities.Signup(r.Context(), activity, email)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

func (h *Handler) handleRemoveParticipant(w http.ResponseWriter, r *http.Request) {
	const handlerName = "activity_remove_participant"

	activity, err := pathParam(r, "activity")
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}
	email, err := pathParam(r, "email")
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}
	if err := ValidateActivityName(activity); err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}
	if err := ValidateEmail(email); err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	msg, err := h.Activities.RemoveParticipant(r.Context(), activity, email)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}
