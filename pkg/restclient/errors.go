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

package restclient

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is returned by New for an unusable configuration.
	ErrConfiguration = errors.New("invalid client configuration")

	// ErrMalformedQuery is returned in strict mode for a query parameter
	// that is not a well-formed "key=value" string.
	ErrMalformedQuery = errors.New("malformed query parameter")
)

// RequestError is the single failure kind surfaced by the client: any
// non-2xx status, transport failure, timeout, oversized body or decode
// failure. The client never retries and never recovers locally; the caller
// decides whether the failure is fatal.
type RequestError struct {
	// Method and URL identify the attempted request.
	Method string
	URL    string

	// StatusCode is zero when no response was received.
	StatusCode int

	// Body is the raw response body, when one was read.
	Body string

	// Err is the underlying cause, when the failure was not an HTTP
	// status.
	Err error
}

func (e *RequestError) Error() string {
	msg := fmt.Sprintf("%s %s failed", e.Method, e.URL)

	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s: status %d", msg, e.StatusCode)
	}

	if e.Body != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Body)
	}

	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}

	return msg
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
