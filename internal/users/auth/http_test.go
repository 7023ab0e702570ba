// Copyright (c) 2026 Linkstash. All rights reserved.

package auth_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdvu/linkstash/internal/users/auth"
)

func newTestHandler(t *testing.T) (http.Handler, *fakeAccountRepo) {
	t.Helper()

	repo := newFakeAccountRepo()
	service := auth.NewService(repo, newFakeThrottle(), fakeTokens{})
	return auth.NewHandler(service).Routes(), repo
}

func postJSON(t *testing.T, handler http.Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)
	return recorder
}

func TestHTTP_Signup(t *testing.T) {
	handler, repo := newTestHandler(t)

	recorder := postJSON(t, handler, "/signup", map[string]any{
		"email":    "alice@example.com",
		"password": "correct horse battery",
	})

	assert.Equal(t, http.StatusCreated, recorder.Code)

	var envelope struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.NotEmpty(t, envelope.Data.AccessToken)

	// The password hash never leaks into the response body.
	account, err := repo.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.NotContains(t, recorder.Body.String(), account.PasswordHash)
}

func TestHTTP_Signup_Validation(t *testing.T) {
	handler, _ := newTestHandler(t)

	tests := []struct {
		name    string
		payload map[string]any
	}{
		{"missing_email", map[string]any{"password": "long enough password"}},
		{"missing_password", map[string]any{"email": "alice@example.com"}},
		{"invalid_email", map[string]any{"email": "not-an-email", "password": "long enough password"}},
		{"blank_password", map[string]any{"email": "alice@example.com", "password": "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := postJSON(t, handler, "/signup", tt.payload)

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.Contains(t, recorder.Body.String(), "VALIDATION_ERROR")
		})
	}
}

/*
TestHTTP_Signup_ShortPasswordAccepted verifies that any non-empty password is
accepted: length policy belongs to the client, not the API.
*/
func TestHTTP_Signup_ShortPasswordAccepted(t *testing.T) {
	handler, _ := newTestHandler(t)

	recorder := postJSON(t, handler, "/signup", map[string]any{
		"email":    "a@x.com",
		"password": "pw123",
	})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "access_token")
}

func TestHTTP_Signup_Duplicate(t *testing.T) {
	handler, _ := newTestHandler(t)

	first := postJSON(t, handler, "/signup", map[string]any{
		"email": "alice@example.com", "password": "long enough password",
	})
	require.Equal(t, http.StatusCreated, first.Code)

	second := postJSON(t, handler, "/signup", map[string]any{
		"email": "alice@example.com", "password": "another password",
	})

	assert.Equal(t, http.StatusForbidden, second.Code)
	assert.Contains(t, second.Body.String(), "DUPLICATE_ACCOUNT")
}

func TestHTTP_Login(t *testing.T) {
	handler, _ := newTestHandler(t)

	signup := postJSON(t, handler, "/signup", map[string]any{
		"email": "alice@example.com", "password": "correct horse battery",
	})
	require.Equal(t, http.StatusCreated, signup.Code)

	recorder := postJSON(t, handler, "/login", map[string]any{
		"email": "alice@example.com", "password": "correct horse battery",
	})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "access_token")
}

/*
TestHTTP_Login_UniformFailure verifies that unknown email and wrong password
produce byte-identical error responses.
*/
func TestHTTP_Login_UniformFailure(t *testing.T) {
	handler, _ := newTestHandler(t)

	signup := postJSON(t, handler, "/signup", map[string]any{
		"email": "alice@example.com", "password": "correct horse battery",
	})
	require.Equal(t, http.StatusCreated, signup.Code)

	unknownEmail := postJSON(t, handler, "/login", map[string]any{
		"email": "nobody@example.com", "password": "whatever",
	})
	wrongPassword := postJSON(t, handler, "/login", map[string]any{
		"email": "alice@example.com", "password": "not the password",
	})

	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, unknownEmail.Body.String(), wrongPassword.Body.String())
}

func TestHTTP_Login_InvalidJSON(t *testing.T) {
	handler, _ := newTestHandler(t)

	request := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader([]byte("{not json")))
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
