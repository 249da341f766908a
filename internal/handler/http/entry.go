package http

import (
	"net/http"

	"github.com/MKhiriev/ff-to-go/internal/logger"
	"github.com/MKhiriev/ff-to-go/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) entryAction(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "entry")
	action := models.EntryAction(chi.URLParam(r, "action"))

	result, err := h.services.EntryService.Act(r.Context(), sessionFromRequest(r), entryID, action, r.URL.Query().Get("next"))
	h.writeAction(w, r, result, err, http.StatusOK)
}

func (h *Handler) commentAction(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "entry")
	commentID := chi.URLParam(r, "comment")
	action := models.EntryAction(chi.URLParam(r, "action"))

	result, err := h.services.EntryService.CommentAction(r.Context(), sessionFromRequest(r), entryID, commentID, action, r.URL.Query().Get("next"))
	h.writeAction(w, r, result, err, http.StatusOK)
}

func (h *Handler) comment(w http.ResponseWriter, r *http.Request) {
	var req models.CommentRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.comment").Msg("Invalid JSON was passed")
		h.writeError(w, r, err)
		return
	}
	req.EntryID = chi.URLParam(r, "entry")

	result, err := h.services.EntryService.Comment(r.Context(), sessionFromRequest(r), req)
	h.writeAction(w, r, result, err, http.StatusOK)
}

func (h *Handler) share(w http.ResponseWriter, r *http.Request) {
	var req models.ShareRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.share").Msg("Invalid JSON was passed")
		h.writeError(w, r, err)
		return
	}

	result, err := h.services.EntryService.Share(r.Context(), sessionFromRequest(r), req)
	h.writeAction(w, r, result, err, http.StatusCreated)
}

func (h *Handler) writeAction(w http.ResponseWriter, r *http.Request, result models.ActionResult, err error, status int) {
	if err != nil {
		logger.FromRequest(r).Err(err).Str("uri", r.RequestURI).Msg("entry action failed")
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, r, result, status)
}
