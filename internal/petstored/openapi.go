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
	_ "embed"
	"net/http"
)

// OpenAPISpec is the API document this server implements. The parity test
// keeps it in sync with the mounted routes.
//
//go:embed openapi.json
var OpenAPISpec []byte

func (h *Handler) getOpenAPISpec(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(OpenAPISpec); err != nil {
		h.logger.Error("writing openapi spec", "error", err)
	}
}
