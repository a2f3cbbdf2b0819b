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

package api

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/onsi/ginkgo/v2"

	"github.com/petstore-qa/apitest/internal/petstored"
	"github.com/petstore-qa/apitest/pkg/petstore"
	"github.com/petstore-qa/apitest/pkg/restclient"
)

// Harness wires the request builder and typed clients for a suite run.
// When the configuration names no external API it serves an in-process
// petstored so runs are hermetic.
type Harness struct {
	Config  *TestConfig
	Rest    *restclient.Client
	Clients *petstore.Clients

	server *httptest.Server
}

// NewHarness builds a harness from the given configuration.
func NewHarness(config *TestConfig) (*Harness, error) {
	harness := &Harness{Config: config}

	baseURL := config.BaseURL
	if baseURL == "" {
		harness.server = httptest.NewServer(petstored.New(nil).Router())
		baseURL = harness.server.URL
	}

	var transport restclient.Doer = &http.Client{Timeout: config.RequestTimeout}

	if config.LogRequests || config.LogResponses {
		transport = &loggingTransport{next: transport, logBodies: config.LogResponses}
	}

	rest, err := restclient.New(&restclient.Config{
		BaseURL:        baseURL,
		ConnectTimeout: config.ConnectTimeout,
		ReadTimeout:    config.RequestTimeout,
		Transport:      transport,
	})
	if err != nil {
		harness.Close()
		return nil, fmt.Errorf("building request client: %w", err)
	}

	harness.Rest = rest
	harness.Clients = petstore.NewClients(rest)

	return harness, nil
}

// Close shuts down the embedded server, if one was started.
func (h *Harness) Close() {
	if h.server != nil {
		h.server.Close()
	}
}

// loggingTransport writes one line per request to the Ginkgo writer so a
// failing spec can be correlated with server logs via the request ID. With
// logBodies set it also echoes the response body, truncated.
type loggingTransport struct {
	next      restclient.Doer
	logBodies bool
}

const maxLoggedBody = 2048

func (t *loggingTransport) Do(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.next.Do(req)

	duration := time.Since(start)
	requestID := req.Header.Get(restclient.HeaderRequestID)

	if err != nil {
		ginkgo.GinkgoWriter.Printf("[%s %s] ERROR duration=%s requestID=%s error=%v\n", req.Method, req.URL, duration, requestID, err)
		return resp, err
	}

	ginkgo.GinkgoWriter.Printf("[%s %s] status=%d duration=%s requestID=%s\n", req.Method, req.URL, resp.StatusCode, duration, requestID)

	if t.logBodies {
		body, readErr := io.ReadAll(resp.Body)

		resp.Body.Close()

		if readErr != nil {
			return resp, readErr
		}

		logged := body
		if len(logged) > maxLoggedBody {
			logged = logged[:maxLoggedBody]
		}

		ginkgo.GinkgoWriter.Printf("[%s %s] body=%s\n", req.Method, req.URL, logged)

		resp.Body = io.NopCloser(bytes.NewReader(body))
	}

	return resp, nil
}
