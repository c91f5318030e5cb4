package handler

import (
	"net/http"

	"exchweb/internal/notify"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type NotificationsResponse struct {
	Notifications []notify.Notification `json:"notifications"`
}

// Notifications lists active toasts in push order. Expired ones are pruned
// on read.
//
//	@Summary	Active notifications
//	@Tags		notifications
//	@Produce	json
//	@Success	200	{object}	NotificationsResponse
//	@Router		/api/notifications [get]
func (h *Handler) Notifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, NotificationsResponse{Notifications: h.notes.Active()})
}

// DismissNotification removes one toast before its timeout. Dismissing an
// unknown or already-expired id is a no-op.
//
//	@Summary	Dismiss a notification
//	@Tags		notifications
//	@Produce	json
//	@Param		id	path	string	true	"notification id"
//	@Success	204
//	@Failure	400	{object}	errorResponse
//	@Router		/api/notifications/{id} [delete]
func (h *Handler) DismissNotification(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}
	h.notes.Dismiss(id)
	w.WriteHeader(http.StatusNoContent)
}
