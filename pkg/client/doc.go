/*
Copyright 2026 the PetFriends QA Authors.

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

// Package client provides a thin HTTP client for the PetFriends API.
//
// # Pass-through Semantics
//
// The client translates method calls into HTTP requests and responses back
// into structured values, and nothing more. It never validates input before
// sending it, and it never turns an HTTP status into a Go error: every
// operation returns a Response carrying the status the server chose, and the
// caller decides what that status means. A Go error is returned only when no
// HTTP response was obtained at all.
//
// # Test-Specific Features
//
// The client is built for driving the live service from integration tests:
//   - W3C trace context propagation for request correlation
//   - Bounded request timeouts and retry of transient transport failures
//   - Optional request and response logging via the context logger
//   - Optional validation of successful responses against the embedded
//     OpenAPI description, reported through the logger only
package client
