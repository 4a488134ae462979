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
	"fmt"

	"github.com/petfriends-qa/petfriends-api-tests/pkg/openapi"

	"k8s.io/apimachinery/pkg/util/rand"
)

func generateRandomName(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, rand.String(8))
}

func GenerateTestID() string {
	return generateRandomName("test")
}

// PetPayloadBuilder builds pet payloads for testing.
type PetPayloadBuilder struct {
	payload openapi.PetWrite
}

// NewPetPayload creates a builder for a uniquely named corgi.
func NewPetPayload() *PetPayloadBuilder {
	return &PetPayloadBuilder{
		payload: openapi.PetWrite{
			Name:       generateRandomName("pet"),
			AnimalType: "corgi",
			Age:        "3",
		},
	}
}

// WithName sets the pet name, which may be empty.
func (b *PetPayloadBuilder) WithName(name string) *PetPayloadBuilder {
	b.payload.Name = name
	return b
}

func (b *PetPayloadBuilder) WithAnimalType(animalType string) *PetPayloadBuilder {
	b.payload.AnimalType = animalType
	return b
}

func (b *PetPayloadBuilder) WithAge(age string) *PetPayloadBuilder {
	b.payload.Age = age
	return b
}

// Build returns the completed pet payload.
func (b *PetPayloadBuilder) Build() openapi.PetWrite {
	return b.payload
}
