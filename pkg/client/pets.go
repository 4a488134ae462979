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

package client

import (
	"context"
	"net/http"

	"github.com/petfriends-qa/petfriends-api-tests/pkg/openapi"
)

// GetAPIKey requests a key for the given credentials. Bad credentials yield a
// 403 response, not an error.
func (c *Client) GetAPIKey(ctx context.Context, email, password string) (*Response[openapi.AuthKey], error) {
	header := http.Header{}
	header.Set("email", email)
	header.Set("password", password)

	return send[openapi.AuthKey](ctx, c, &request{
		method:   http.MethodGet,
		path:     c.endpoints.APIKey(),
		template: APIKeyTemplate,
		header:   header,
	})
}

// ListPets lists pets. The filter is sent as given; the server decides
// whether it is meaningful.
func (c *Client) ListPets(ctx context.Context, key openapi.AuthKey, filter openapi.Filter) (*Response[openapi.PetList], error) {
	query, err := encodeFilterQuery(filter)
	if err != nil {
		return nil, err
	}

	return send[openapi.PetList](ctx, c, &request{
		method:   http.MethodGet,
		path:     c.endpoints.ListPets(),
		template: PetsTemplate,
		query:    query,
		header:   authHeader(key),
	})
}

// AddPet creates a pet with a photo read from photoPath.
func (c *Client) AddPet(ctx context.Context, key openapi.AuthKey, pet openapi.PetWrite, photoPath string) (*Response[openapi.Pet], error) {
	fields, err := encodeValues(pet)
	if err != nil {
		return nil, err
	}

	body, contentType, err := encodeMultipart(fields, photoPath)
	if err != nil {
		return nil, err
	}

	return send[openapi.Pet](ctx, c, &request{
		method:      http.MethodPost,
		path:        c.endpoints.CreatePet(),
		template:    PetsTemplate,
		header:      authHeader(key),
		contentType: contentType,
		body:        body,
	})
}

// AddPetWithoutPhoto creates a pet from form fields only.
func (c *Client) AddPetWithoutPhoto(ctx context.Context, key openapi.AuthKey, pet openapi.PetWrite) (*Response[openapi.Pet], error) {
	body, err := encodeForm(pet)
	if err != nil {
		return nil, err
	}

	return send[openapi.Pet](ctx, c, &request{
		method:      http.MethodPost,
		path:        c.endpoints.CreatePetSimple(),
		template:    CreatePetSimpleTemplate,
		header:      authHeader(key),
		contentType: formContentType,
		body:        body,
	})
}

// UpdatePet replaces the name, type and age of a pet.
func (c *Client) UpdatePet(ctx context.Context, key openapi.AuthKey, petID string, pet openapi.PetWrite) (*Response[openapi.Pet], error) {
	body, err := encodeForm(pet)
	if err != nil {
		return nil, err
	}

	return send[openapi.Pet](ctx, c, &request{
		method:      http.MethodPut,
		path:        c.endpoints.UpdatePet(petID),
		template:    PetTemplate,
		header:      authHeader(key),
		contentType: formContentType,
		body:        body,
	})
}

// DeletePet deletes a pet. The service answers 200 for unknown IDs too.
func (c *Client) DeletePet(ctx context.Context, key openapi.AuthKey, petID string) (*Response[any], error) {
	return send[any](ctx, c, &request{
		method:   http.MethodDelete,
		path:     c.endpoints.DeletePet(petID),
		template: PetTemplate,
		header:   authHeader(key),
	})
}

// SetPetPhoto replaces the photo of a pet. Unsupported formats are rejected by
// the server with a 500, which is returned as is.
func (c *Client) SetPetPhoto(ctx context.Context, key openapi.AuthKey, petID, photoPath string) (*Response[openapi.Pet], error) {
	body, contentType, err := encodeMultipart(nil, photoPath)
	if err != nil {
		return nil, err
	}

	return send[openapi.Pet](ctx, c, &request{
		method:      http.MethodPost,
		path:        c.endpoints.SetPetPhoto(petID),
		template:    PetPhotoTemplate,
		header:      authHeader(key),
		contentType: contentType,
		body:        body,
	})
}
