// Copyright (c) 2026 Linkstash. All rights reserved.

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/tdvu/linkstash/internal/platform/request"
	"github.com/tdvu/linkstash/internal/platform/respond"
	"github.com/tdvu/linkstash/internal/platform/validate"
	"github.com/tdvu/linkstash/internal/users/auth"
)

// Handler exposes the profile use cases over HTTP.
//
// All routes require authentication; the router mounts them behind the guard.
type Handler struct {
	service *Service
}

// NewHandler creates the profile HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes mounts the profile endpoints.
//
//	GET   /me → 200 profile of the caller
//	PATCH /   → 200 updated profile
func (h *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/me", h.me)
	router.Patch("/", h.update)

	return router
}

// updateRequest is the PATCH /users payload. Absent fields stay unchanged.
type updateRequest struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// me handles GET /users/me.
func (h *Handler) me(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := h.service.Me(request.Context(), accountID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile)
}

// update handles PATCH /users.
func (h *Handler) update(writer http.ResponseWriter, request *http.Request) {
	accountID, err := requestutil.RequiredAccountID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload updateRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	if payload.Email != nil {
		validator.
			Required(auth.FieldEmail, *payload.Email).
			Email(auth.FieldEmail, *payload.Email).
			MaxLen(auth.FieldEmail, *payload.Email, auth.MaxEmailLength)
	}
	if payload.FirstName != nil {
		validator.MaxLen(auth.FieldFirstName, *payload.FirstName, auth.MaxNameLength)
	}
	if payload.LastName != nil {
		validator.MaxLen(auth.FieldLastName, *payload.LastName, auth.MaxNameLength)
	}

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	profile, err := h.service.UpdateProfile(request.Context(), accountID, ProfileUpdate{
		Email:     payload.Email,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile)
}
