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

	"github.com/go-chi/chi/v5"

	"github.com/petstore-qa/apitest/pkg/petstore"
)

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var order petstore.Order

	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid order payload")
		return
	}

	placed, err := h.store.placeOrder(order)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid order: petId and a positive quantity are required")
		return
	}

	h.writeJSON(w, http.StatusOK, placed)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "orderId"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid order ID supplied")
		return
	}

	order, err := h.store.getOrder(orderID)

	switch {
	case errors.Is(err, errValidation):
		h.writeError(w, http.StatusBadRequest, "invalid order ID supplied")
	case errors.Is(err, errNotFound):
		h.writeError(w, http.StatusNotFound, "order not found")
	default:
		h.writeJSON(w, http.StatusOK, order)
	}
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "orderId"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid order ID supplied")
		return
	}

	deleteErr := h.store.deleteOrder(orderID)

	switch {
	case errors.Is(deleteErr, errValidation):
		h.writeError(w, http.StatusBadRequest, "invalid order ID supplied")
	case errors.Is(deleteErr, errNotFound):
		h.writeError(w, http.StatusNotFound, "order not found")
	default:
		h.writeJSON(w, http.StatusOK, petstore.APIResponse{Code: http.StatusOK, Message: strconv.FormatInt(orderID, 10)})
	}
}

func (h *Handler) getInventory(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.inventory())
}
