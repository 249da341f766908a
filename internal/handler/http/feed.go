package http

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/MKhiriev/ff-to-go/internal/logger"
	"github.com/MKhiriev/ff-to-go/models"
	"github.com/go-chi/chi/v5"
)

const (
	outputAtom      = "atom"
	atomContentType = "application/atom+xml; charset=utf-8"
)

// pageResponse is a feed page with its entries prepared for the viewer.
type pageResponse struct {
	models.FeedPage

	Entries []models.EntryView `json:"entries"`
	Hidden  []models.EntryView `json:"hidden"`
}

type roomsResponse struct {
	Rooms []models.RoomSummary `json:"rooms"`
}

type listsResponse struct {
	Lists []models.ListSummary `json:"lists"`
}

// pageRequest reads the paging arguments. A missing or unparsable start is
// the first page.
func pageRequest(r *http.Request) models.PageRequest {
	query := r.URL.Query()

	start, err := strconv.Atoi(query.Get("start"))
	if err != nil || start < 0 {
		start = 0
	}

	return models.PageRequest{
		Start:   start,
		Service: query.Get("service"),
	}
}

func (h *Handler) homeFeed(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.FeedService.Home(r.Context(), sessionFromRequest(r), pageRequest(r))
	h.writePage(w, r, page, err)
}

func (h *Handler) publicFeed(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.FeedService.Public(r.Context(), sessionFromRequest(r), pageRequest(r))
	h.writePage(w, r, page, err)
}

func (h *Handler) roomsFeed(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.FeedService.Rooms(r.Context(), sessionFromRequest(r), pageRequest(r))
	h.writePage(w, r, page, err)
}

func (h *Handler) roomFeed(w http.ResponseWriter, r *http.Request) {
	nickname := chi.URLParam(r, "nickname")
	page, err := h.services.FeedService.Room(r.Context(), sessionFromRequest(r), nickname, pageRequest(r))
	h.writePage(w, r, page, err)
}

func (h *Handler) listFeed(w http.ResponseWriter, r *http.Request) {
	nickname := chi.URLParam(r, "nickname")
	page, err := h.services.FeedService.List(r.Context(), sessionFromRequest(r), nickname, pageRequest(r))
	h.writePage(w, r, page, err)
}

func (h *Handler) userFeed(w http.ResponseWriter, r *http.Request) {
	nickname := chi.URLParam(r, "nickname")

	kind := models.UserFeedType(chi.URLParam(r, "kind"))
	if !kind.Valid() {
		logger.FromRequest(r).Warn().Str("kind", string(kind)).Msg("unknown user feed type")
		h.writeError(w, r, ErrUnknownFeedType)
		return
	}

	page, err := h.services.FeedService.User(r.Context(), sessionFromRequest(r), nickname, kind, pageRequest(r))
	h.writePage(w, r, page, err)
}

func (h *Handler) searchFeed(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("search")
	page, err := h.services.FeedService.Search(r.Context(), sessionFromRequest(r), query, pageRequest(r))
	h.writePage(w, r, page, err)
}

func (h *Handler) entryPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.FeedService.Entry(r.Context(), sessionFromRequest(r), chi.URLParam(r, "entry"))
	h.writePage(w, r, page, err)
}

func (h *Handler) roomsList(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.services.FeedService.RoomsList(r.Context(), sessionFromRequest(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, r, roomsResponse{Rooms: rooms}, http.StatusOK)
}

func (h *Handler) lists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.services.FeedService.Lists(r.Context(), sessionFromRequest(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, r, listsResponse{Lists: lists}, http.StatusOK)
}

// writePage answers with page as Atom when the request asks for output=atom,
// and as JSON otherwise.
func (h *Handler) writePage(w http.ResponseWriter, r *http.Request, page models.FeedPage, err error) {
	log := logger.FromRequest(r)

	if err != nil {
		log.Err(err).Str("uri", r.RequestURI).Msg("error fetching feed page")
		h.writeError(w, r, err)
		return
	}

	if r.URL.Query().Get("output") == outputAtom {
		var buf bytes.Buffer
		if err = h.atom.Write(&buf, page); err != nil {
			h.writeError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", atomContentType)
		w.WriteHeader(http.StatusOK)
		if _, err = w.Write(buf.Bytes()); err != nil {
			log.Err(err).Str("func", "*Handler.writePage").Msg("error writing atom document")
		}
		return
	}

	session := sessionFromRequest(r)
	settings := h.settingsOf(session)
	viewer := session.Nickname()

	writeJSON(w, r, pageResponse{
		FeedPage: page,
		Entries:  h.filters.Present(page.Entries, viewer, settings),
		Hidden:   h.filters.Present(page.Hidden, viewer, settings),
	}, http.StatusOK)
}
