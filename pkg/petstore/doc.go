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

// Package petstore provides typed clients for the Pet, User and Store
// resources of the petstore API.
//
// # Separate Client Implementation
//
// This package intentionally maintains a hand-written client instead of the
// auto-generated OpenAPI client. An independent implementation triangulates
// on API correctness: any legitimate change to the API contract needs a
// compensating change here, which keeps contract evolution explicit and
// reviewable. It also gives the test suites direct access to status codes,
// response bodies and the request correlation header.
//
// Each client is a thin wrapper over restclient.Client with fixed path
// segments; all state, timeouts and error semantics live in restclient.
package petstore
