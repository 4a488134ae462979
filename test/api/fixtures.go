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
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/onsi/ginkgo/v2"
	"github.com/spjmurray/go-util/pkg/set"

	"github.com/petfriends-qa/petfriends-api-tests/pkg/client"
	"github.com/petfriends-qa/petfriends-api-tests/pkg/openapi"
)

var (
	// ErrSetup marks a scenario whose precondition could not be established.
	ErrSetup = errors.New("scenario setup failed")

	ErrNoOwnedPets = errors.New("there are no owned pets")

	ErrUnexpectedStatus = errors.New("unexpected status code")

	ErrTransport = errors.New("no response from service")
)

// SetupError reports which setup step failed and why.
type SetupError struct {
	Step string
	Err  error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrSetup, e.Step, e.Err)
}

func (e *SetupError) Unwrap() []error {
	return []error{ErrSetup, e.Err}
}

func setupFailed(step string, err error) error {
	return &SetupError{
		Step: step,
		Err:  err,
	}
}

// IsSetupError distinguishes a failed precondition from a failed assertion.
func IsSetupError(err error) bool {
	return errors.Is(err, ErrSetup)
}

// ExpectSetup fails the running scenario if setup did not succeed.
func ExpectSetup(err error) {
	if err == nil {
		return
	}

	ginkgo.Fail(err.Error(), 1)
}

// checkStatus turns a non-200 fixture call into an error.
func checkStatus[T any](resp *client.Response[T], err error) (*T, error) {
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	if resp.StatusCode() != http.StatusOK || resp.JSON200 == nil {
		return nil, fmt.Errorf("%w: %d, body: %s", ErrUnexpectedStatus, resp.StatusCode(), resp.Text())
	}

	return resp.JSON200, nil
}

// Authenticate obtains a key for the configured valid user.
func Authenticate(ctx context.Context, c client.Interface, config *TestConfig) (openapi.AuthKey, error) {
	key, err := checkStatus(c.GetAPIKey(ctx, config.ValidEmail, config.ValidPassword))
	if err != nil {
		return openapi.AuthKey{}, setupFailed("authenticate", err)
	}

	return *key, nil
}

// ListOwnedPets fetches the caller's pets.
func ListOwnedPets(ctx context.Context, c client.Interface, key openapi.AuthKey) (*openapi.PetList, error) {
	pets, err := checkStatus(c.ListPets(ctx, key, openapi.FilterMyPets))
	if err != nil {
		return nil, setupFailed("list owned pets", err)
	}

	return pets, nil
}

// OwnedPetIDs fetches the IDs of the caller's pets.
func OwnedPetIDs(ctx context.Context, c client.Interface, key openapi.AuthKey) (set.Set[string], error) {
	var ids set.Set[string]

	pets, err := ListOwnedPets(ctx, c, key)
	if err != nil {
		return ids, err
	}

	return set.New[string](pets.IDs()...), nil
}

// RequireOwnedPet returns the first owned pet and never creates one.
func RequireOwnedPet(ctx context.Context, c client.Interface, key openapi.AuthKey) (*openapi.Pet, error) {
	pets, err := ListOwnedPets(ctx, c, key)
	if err != nil {
		return nil, err
	}

	if len(pets.Pets) == 0 {
		return nil, setupFailed("require owned pet", ErrNoOwnedPets)
	}

	return &pets.Pets[0], nil
}

// EnsureOwnedPet returns the first owned pet, creating one with a photo when
// the caller owns none.
func EnsureOwnedPet(ctx context.Context, c client.Interface, config *TestConfig, key openapi.AuthKey) (*openapi.Pet, error) {
	pets, err := ListOwnedPets(ctx, c, key)
	if err != nil {
		return nil, err
	}

	if len(pets.Pets) > 0 {
		return &pets.Pets[0], nil
	}

	payload := NewPetPayload().WithName("Тестовый").WithAnimalType("котейка").WithAge("10").Build()

	created, err := checkStatus(c.AddPet(ctx, key, payload, PhotoPath(config, CatPhoto)))
	if err != nil {
		return nil, setupFailed("create owned pet", err)
	}

	return findOwnedPet(ctx, c, key, created.ID)
}

// EnsureOwnedPetWithoutPhoto returns the first owned pet if it has no photo,
// otherwise creates a pet without one and returns it.
func EnsureOwnedPetWithoutPhoto(ctx context.Context, c client.Interface, key openapi.AuthKey) (*openapi.Pet, error) {
	pets, err := ListOwnedPets(ctx, c, key)
	if err != nil {
		return nil, err
	}

	if len(pets.Pets) > 0 && !pets.Pets[0].HasPhoto() {
		return &pets.Pets[0], nil
	}

	payload := NewPetPayload().WithName("Тестовый").WithAnimalType("Собакен").WithAge("3").Build()

	created, err := checkStatus(c.AddPetWithoutPhoto(ctx, key, payload))
	if err != nil {
		return nil, setupFailed("create owned pet without photo", err)
	}

	return findOwnedPet(ctx, c, key, created.ID)
}

// findOwnedPet re-fetches the owned list and returns the given pet from it.
func findOwnedPet(ctx context.Context, c client.Interface, key openapi.AuthKey, petID string) (*openapi.Pet, error) {
	pets, err := ListOwnedPets(ctx, c, key)
	if err != nil {
		return nil, err
	}

	pet := pets.Find(petID)
	if pet == nil {
		return nil, setupFailed("find created pet", fmt.Errorf("%w: pet %s missing after creation", ErrNoOwnedPets, petID))
	}

	return pet, nil
}
