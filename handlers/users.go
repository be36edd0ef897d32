// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/bayroumeter/db"
	"github.com/danielhkuo/bayroumeter/metrics"
	"github.com/danielhkuo/bayroumeter/middleware"
	"github.com/danielhkuo/bayroumeter/models"
	"github.com/danielhkuo/bayroumeter/voting"
)

type UsersHandler struct {
	users *voting.UserRegistry
}

func NewUsersHandler(repo db.Repository, m *metrics.Metrics) *UsersHandler {
	return &UsersHandler{users: voting.NewUserRegistry(repo, m)}
}

// PostUser handles POST /postUser
// Returns 201 {id, pseudo, email}, 400 on bad input, 403 if the email is taken
func (h *UsersHandler) PostUser(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterUserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		writeError(w, h.users.Reject(voting.InvalidBody()), http.StatusForbidden)
		return
	}

	user, err := h.users.Register(r.Context(), req.Pseudo, req.Email)
	if err != nil {
		writeError(w, err, http.StatusForbidden)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, user)
}

// GetUsers handles GET /users
func (h *UsersHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		writeError(w, err, http.StatusInternalServerError)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, users)
}
