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
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/petstore-qa/apitest/pkg/petstore"
)

func (h *Handler) createPet(w http.ResponseWriter, r *http.Request) {
	var pet petstore.Pet

	if err := json.NewDecoder(r.Body).Decode(&pet); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid pet payload")
		return
	}

	created, err := h.store.createPet(pet)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid pet: name and a known status are required")
		return
	}

	h.writeJSON(w, http.StatusOK, created)
}

func (h *Handler) getPet(w http.ResponseWriter, r *http.Request) {
	petID, err := strconv.ParseInt(chi.URLParam(r, "petId"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid pet ID supplied")
		return
	}

	pet, err := h.store.getPet(petID)
	if err != nil {
		h.writeError(w, http.StatusNotFound, "pet not found")
		return
	}

	h.writeJSON(w, http.StatusOK, pet)
}

func (h *Handler) updatePet(w http.ResponseWriter, r *http.Request) {
	var pet petstore.Pet

	if err := json.NewDecoder(r.Body).Decode(&pet); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid pet payload")
		return
	}

	updated, err := h.store.updatePet(pet)

	switch {
	case errors.Is(err, errNotFound):
		h.writeError(w, http.StatusNotFound, "pet not found")
	case errors.Is(err, errValidation):
		h.writeError(w, http.StatusBadRequest, "invalid pet: ID, name and a known status are required")
	default:
		h.writeJSON(w, http.StatusOK, updated)
	}
}

func (h *Handler) deletePet(w http.ResponseWriter, r *http.Request) {
	petID, err := strconv.ParseInt(chi.URLParam(r, "petId"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid pet ID supplied")
		return
	}

	if err := h.store.deletePet(petID); err != nil {
		h.writeError(w, http.StatusNotFound, "pet not found")
		return
	}

	h.writeJSON(w, http.StatusOK, petstore.APIResponse{Code: http.StatusOK, Message: strconv.FormatInt(petID, 10)})
}

func (h *Handler) findPetsByStatus(w http.ResponseWriter, r *http.Request) {
	status := petstore.PetStatus(r.URL.Query().Get("status"))

	pets, err := h.store.findPetsByStatus(status)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid status value")
		return
	}

	h.writeJSON(w, http.StatusOK, pets)
}

func (h *Handler) findPetsByTags(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("tags")

	var tags []string

	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	pets, err := h.store.findPetsByTags(tags)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid tag value")
		return
	}

	h.writeJSON(w, http.StatusOK, pets)
}
