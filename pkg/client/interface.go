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

//go:generate mockgen -source=interface.go -destination=mock/interface.go -package=mock

package client

import (
	"context"

	"github.com/petfriends-qa/petfriends-api-tests/pkg/openapi"
)

// Interface is the set of PetFriends operations.
type Interface interface {
	GetAPIKey(ctx context.Context, email, password string) (*Response[openapi.AuthKey], error)
	ListPets(ctx context.Context, key openapi.AuthKey, filter openapi.Filter) (*Response[openapi.PetList], error)
	AddPet(ctx context.Context, key openapi.AuthKey, pet openapi.PetWrite, photoPath string) (*Response[openapi.Pet], error)
	AddPetWithoutPhoto(ctx context.Context, key openapi.AuthKey, pet openapi.PetWrite) (*Response[openapi.Pet], error)
	UpdatePet(ctx context.Context, key openapi.AuthKey, petID string, pet openapi.PetWrite) (*Response[openapi.Pet], error)
	DeletePet(ctx context.Context, key openapi.AuthKey, petID string) (*Response[any], error)
	SetPetPhoto(ctx context.Context, key openapi.AuthKey, petID, photoPath string) (*Response[openapi.Pet], error)
}
