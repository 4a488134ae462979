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

package openapi

import (
	"errors"
)

var ErrUnknownFilter = errors.New("unknown filter: must be empty or \"my_pets\"")

// Filter selects which pets the listing endpoint returns.
type Filter string

const (
	// FilterAll lists every pet known to the service.
	FilterAll Filter = ""
	// FilterMyPets lists pets owned by the caller.
	FilterMyPets Filter = "my_pets"
)

// Known reports whether the service recognises the filter.
func (f Filter) Known() bool {
	return f == FilterAll || f == FilterMyPets
}

func (f *Filter) UnmarshalText(text []byte) error {
	filter := Filter(text)

	if !filter.Known() {
		return ErrUnknownFilter
	}

	*f = filter

	return nil
}
