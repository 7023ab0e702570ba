// Copyright (c) 2026 Linkstash. All rights reserved.

package bookmark

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/tdvu/linkstash/internal/platform/request"
	"github.com/tdvu/linkstash/internal/platform/respond"
	"github.com/tdvu/linkstash/internal/platform/validate"
	"github.com/tdvu/linkstash/pkg/pagination"
)

// Handler exposes the bookmark use cases over HTTP.
//
// All routes require authentication; the router mounts them behind the guard.
type Handler struct {
	service *Service
}

// NewHandler creates the bookmark HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes mounts the bookmark endpoints.
//
//	GET    /     → 200 paginated list
//	POST   /     → 201 created bookmark
//	GET    /{id} → 200 bookmark
//	PATCH  /{id} → 200 updated bookmark
//	DELETE /{id} → 204
func (h *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", h.list)
	router.Post("/", h.create)

	router.Route("/{bookmarkID}", func(r chi.Router) {
		r.Get("/", h.get)
		r.Patch("/", h.update)
		r.Delete("/", h.delete)
	})

	return router
}

// createRequest is the POST /bookmarks payload.
type createRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Link        string  `json:"link"`
}

// updateRequest is the PATCH /bookmarks/{id} payload. Absent fields stay unchanged.
type updateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Link        *string `json:"link"`
}

// list handles GET /bookmarks.
func (h *Handler) list(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page := pagination.FromRequest(request)

	bookmarks, meta, err := h.service.List(request.Context(), ownerID, page)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, bookmarks, meta)
}

// get handles GET /bookmarks/{id}.
func (h *Handler) get(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookmarkID := requestutil.ID(request, "bookmarkID")
	if err := (&validate.Validator{}).UUID("id", bookmarkID).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	found, err := h.service.Get(request.Context(), ownerID, bookmarkID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, found)
}

// create handles POST /bookmarks.
func (h *Handler) create(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload createRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.
		Required(FieldTitle, payload.Title).
		MaxLen(FieldTitle, payload.Title, MaxTitleLength).
		Required(FieldLink, payload.Link).
		MaxLen(FieldLink, payload.Link, MaxLinkLength)

	if payload.Link != "" {
		validator.URL(FieldLink, payload.Link)
	}
	if payload.Description != nil {
		validator.MaxLen(FieldDescription, *payload.Description, MaxDescriptionLength)
	}

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := h.service.Create(request.Context(), ownerID, payload.Title, payload.Description, payload.Link)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

// update handles PATCH /bookmarks/{id}.
func (h *Handler) update(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookmarkID := requestutil.ID(request, "bookmarkID")

	var payload updateRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.UUID("id", bookmarkID)

	if payload.Title != nil {
		validator.
			Required(FieldTitle, *payload.Title).
			MaxLen(FieldTitle, *payload.Title, MaxTitleLength)
	}
	if payload.Link != nil {
		validator.
			URL(FieldLink, *payload.Link).
			MaxLen(FieldLink, *payload.Link, MaxLinkLength)
	}
	if payload.Description != nil {
		validator.MaxLen(FieldDescription, *payload.Description, MaxDescriptionLength)
	}

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := h.service.Update(request.Context(), ownerID, bookmarkID, Update{
		Title:       payload.Title,
		Description: payload.Description,
		Link:        payload.Link,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

// delete handles DELETE /bookmarks/{id}.
func (h *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookmarkID := requestutil.ID(request, "bookmarkID")
	if err := (&validate.Validator{}).UUID("id", bookmarkID).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := h.service.Delete(request.Context(), ownerID, bookmarkID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
