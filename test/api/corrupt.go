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

package api

import (
	"github.com/petfriends-qa/petfriends-api-tests/pkg/openapi"
)

// InvalidSuffix turns a valid key or pet ID into one the service rejects.
const InvalidSuffix = "8(800)555-35-35"

// Corrupt returns a value shaped like the given key or ID but no longer valid.
func Corrupt(value string) string {
	return value + InvalidSuffix
}

// CorruptAuthKey returns a copy of the key that the service will refuse.
func CorruptAuthKey(key openapi.AuthKey) openapi.AuthKey {
	return openapi.AuthKey{
		Key: Corrupt(key.Key),
	}
}
