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

// Package petstored is an in-memory implementation of the petstore API
// subset the test clients exercise. The suites boot it in-process for
// hermetic runs; cmd/petstored serves it standalone.
package petstored

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/petstore-qa/apitest/pkg/petstore"
)

// Handler serves the petstore API over an in-memory store.
type Handler struct {
	store  *memoryStore
	logger *slog.Logger
}

// New creates a handler with an empty store. A nil logger discards logs.
func New(logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Handler{
		store:  newMemoryStore(),
		logger: logger,
	}
}

// Router mounts all petstore routes.
func (h *Handler) Router() chi.Router {
	router := chi.NewRouter()

	router.Use(h.logRequests)

	router.Route("/pet", func(r chi.Router) {
		r.Post("/", h.createPet)
		r.Put("/", h.updatePet)
		r.Get("/findByStatus", h.findPetsByStatus)
		r.Get("/findByTags", h.findPetsByTags)
		r.Get("/{petId}", h.getPet)
		r.Delete("/{petId}", h.deletePet)
	})

	router.Route("/user", func(r chi.Router) {
		r.Post("/", h.createUser)
		r.Post("/createWithArray", h.createUsersBatch)
		r.Post("/createWithList", h.createUsersBatch)
		r.Get("/login", h.loginUser)
		r.Get("/logout", h.logoutUser)
		r.Get("/{username}", h.getUser)
		r.Put("/{username}", h.updateUser)
		r.Delete("/{username}", h.deleteUser)
	})

	router.Route("/store", func(r chi.Router) {
		r.Post("/order", h.placeOrder)
		r.Get("/order/{orderId}", h.getOrder)
		r.Delete("/order/{orderId}", h.deleteOrder)
		r.Get("/inventory", h.getInventory)
	})

	router.Get("/openapi.json", h.getOpenAPISpec)

	return router
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "requestID", r.Header.Get("X-Request-ID"))
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if body == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encoding response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, petstore.APIResponse{
		Code:    int32(status),
		Type:    "error",
		Message: message,
	})
}
