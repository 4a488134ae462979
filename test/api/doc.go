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

// Package api provides integration test utilities for the PetFriends API.
//
// # Scenario Shape
//
// Every scenario authenticates, optionally establishes a precondition such as
// "at least one owned pet exists", acts once and asserts on the status code
// and payload. Preconditions are established by the fixtures in this package,
// which return a SetupError rather than asserting, so a scenario that could
// not be set up is reported apart from one whose assertion failed.
//
// # Target Service
//
// The suites run against the deployment named by API_BASE_URL. When it is
// unset an in-process fake server is started instead, so the scaffolding
// itself can be exercised without network access.
//
// # Future Improvements
//
// * Pets created by the scenarios are never cleaned up, mirroring how the
// live service is used by its own documentation. Registering DeferCleanup
// deletions would keep shared accounts tidy.
package api
