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

// Package api provides integration test utilities for the petstore API.
//
// # Hermetic by Default
//
// The harness runs against whatever API_BASE_URL names. When it is unset the
// harness boots an in-process petstored over httptest, so a plain `go test`
// run needs no environment, no network and no running server, and leaves no
// state behind. Pointing API_BASE_URL at a real deployment exercises the
// same suites as black-box integration tests.
//
// # Test Data
//
// Factories produce payloads with randomised names and usernames so specs
// never collide with each other or with leftovers from earlier runs against
// a shared deployment. Creation helpers register best-effort cleanup: a
// failed deletion is logged to the Ginkgo writer rather than failing the
// spec, since teardown noise should never mask a real result.
//
// # Request Correlation
//
// Every request carries a fresh X-Request-ID header. With LOG_REQUESTS
// enabled the harness logs one line per request including that ID, so a
// failing spec can be matched against server logs.
package api
