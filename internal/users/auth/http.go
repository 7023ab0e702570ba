// Copyright (c) 2026 Linkstash. All rights reserved.

package auth

import (
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/tdvu/linkstash/internal/platform/request"
	"github.com/tdvu/linkstash/internal/platform/respond"
	"github.com/tdvu/linkstash/internal/platform/validate"
)

// Handler exposes the auth use cases over HTTP.
type Handler struct {
	service *Service
}

// NewHandler creates the auth HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes mounts the public auth endpoints.
//
//	POST /signup → 201 {access_token}
//	POST /login  → 200 {access_token}
func (h *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/signup", h.signup)
	router.Post("/login", h.login)

	return router
}

// signupRequest is the POST /auth/signup payload.
type signupRequest struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// loginRequest is the POST /auth/login payload.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// signup handles POST /auth/signup.
func (h *Handler) signup(writer http.ResponseWriter, request *http.Request) {
	var payload signupRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.
		Required(FieldEmail, payload.Email).
		MaxLen(FieldEmail, payload.Email, MaxEmailLength).
		Required(FieldPassword, payload.Password).
		MaxLen(FieldPassword, payload.Password, MaxPasswordLength)

	if payload.Email != "" {
		validator.Email(FieldEmail, payload.Email)
	}
	if payload.FirstName != nil {
		validator.MaxLen(FieldFirstName, *payload.FirstName, MaxNameLength)
	}
	if payload.LastName != nil {
		validator.MaxLen(FieldLastName, *payload.LastName, MaxNameLength)
	}

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	credential := Credential{Email: payload.Email, Password: payload.Password}

	result, err := h.service.Signup(request.Context(), credential, payload.FirstName, payload.LastName)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, result)
}

// login handles POST /auth/login.
func (h *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var payload loginRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	if err := validator.
		Required(FieldEmail, payload.Email).
		Required(FieldPassword, payload.Password).
		Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	credential := Credential{Email: payload.Email, Password: payload.Password}

	result, err := h.service.Login(request.Context(), credential, clientIP(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

// clientIP returns the request's source IP without the port.
//
// The RealIP middleware has already resolved proxy headers into RemoteAddr.
func clientIP(request *http.Request) string {
	host, _, err := net.SplitHostPort(request.RemoteAddr)
	if err != nil {
		return request.RemoteAddr
	}
	return host
}
