/*
Copyright 2025 the Petstore QA Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package petstored

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/petstore-qa/apitest/pkg/petstore"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var user petstore.User

	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid user payload")
		return
	}

	created, err := h.store.createUser(user)

	switch {
	case errors.Is(err, errConflict):
		h.writeError(w, http.StatusConflict, "username already exists")
	case errors.Is(err, errValidation):
		h.writeError(w, http.StatusBadRequest, "invalid user: username must be 1-50 characters")
	default:
		h.writeJSON(w, http.StatusOK, created)
	}
}

func (h *Handler) createUsersBatch(w http.ResponseWriter, r *http.Request) {
	var users []petstore.User

	if err := json.NewDecoder(r.Body).Decode(&users); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid users payload")
		return
	}

	for _, user := range users {
		if _, err := h.store.createUser(user); err != nil {
			if errors.Is(err, errConflict) {
				h.writeError(w, http.StatusConflict, fmt.Sprintf("username %q already exists", user.Username))
				return
			}

			h.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid user %q", user.Username))

			return
		}
	}

	h.writeJSON(w, http.StatusOK, petstore.APIResponse{Code: http.StatusOK, Message: "ok"})
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.store.getUser(chi.URLParam(r, "username"))
	if err != nil {
		h.writeError(w, http.StatusNotFound, "user not found")
		return
	}

	h.writeJSON(w, http.StatusOK, user)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var user petstore.User

	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid user payload")
		return
	}

	updated, err := h.store.updateUser(chi.URLParam(r, "username"), user)

	switch {
	case errors.Is(err, errNotFound):
		h.writeError(w, http.StatusNotFound, "user not found")
	case errors.Is(err, errConflict):
		h.writeError(w, http.StatusConflict, "username already exists")
	case errors.Is(err, errValidation):
		h.writeError(w, http.StatusBadRequest, "invalid user: username must be 1-50 characters")
	default:
		h.writeJSON(w, http.StatusOK, updated)
	}
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	if err := h.store.deleteUser(username); err != nil {
		h.writeError(w, http.StatusNotFound, "user not found")
		return
	}

	h.writeJSON(w, http.StatusOK, petstore.APIResponse{Code: http.StatusOK, Message: username})
}

func (h *Handler) loginUser(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	password := r.URL.Query().Get("password")

	if err := h.store.checkCredentials(username, password); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid username/password supplied")
		return
	}

	now := time.Now()

	w.Header().Set("X-Rate-Limit", "5000")
	w.Header().Set("X-Expires-After", now.Add(time.Hour).Format(time.RFC3339))

	h.writeJSON(w, http.StatusOK, fmt.Sprintf("logged in user session:%d", now.UnixNano()))
}

func (h *Handler) logoutUser(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, petstore.APIResponse{Code: http.StatusOK, Message: "ok"})
}
