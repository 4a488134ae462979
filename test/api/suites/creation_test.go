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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/petfriends-qa/petfriends-api-tests/pkg/openapi"
	"github.com/petfriends-qa/petfriends-api-tests/test/api"
)

var _ = Describe("Pet Creation", func() {
	var key openapi.AuthKey

	BeforeEach(func() {
		var err error

		key, err = api.Authenticate(ctx, client, config)
		api.ExpectSetup(err)
	})

	Context("When adding a pet with a photo", func() {
		Describe("Given valid pet data", func() {
			It("should create the pet", func() {
				payload := api.NewPetPayload().WithName("Frank").WithAnimalType("corgi").WithAge("3").Build()

				resp, err := client.AddPet(ctx, key, payload, api.PhotoPath(config, api.DogPhoto))
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode()).To(Equal(http.StatusOK))
				Expect(resp.JSON200).NotTo(BeNil())
				Expect(resp.JSON200.Name).To(Equal("Frank"))
				Expect(resp.JSON200.HasPhoto()).To(BeTrue())
			})
		})

		Describe("Given an empty name", func() {
			It("should accept the pet and list it", Label("quirk"), func() {
				payload := api.NewPetPayload().WithName("").WithAnimalType("corgi").WithAge("3").Build()

				resp, err := client.AddPet(ctx, key, payload, api.PhotoPath(config, api.DogPhoto))
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode()).To(Equal(http.StatusOK))
				Expect(resp.JSON200).NotTo(BeNil())
				Expect(resp.JSON200.Name).To(BeEmpty())

				pets, err := api.ListOwnedPets(ctx, client, key)
				api.ExpectSetup(err)

				listed := pets.Find(resp.JSON200.ID)
				Expect(listed).NotTo(BeNil())
				Expect(listed.Name).To(BeEmpty())
			})
		})
	})

	Context("When adding a pet without a photo", func() {
		Describe("Given valid pet data", func() {
			It("should create the pet", func() {
				payload := api.NewPetPayload().WithName("Jerax").WithAnimalType("corgi").WithAge("8").Build()

				resp, err := client.AddPetWithoutPhoto(ctx, key, payload)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode()).To(Equal(http.StatusOK))
				Expect(resp.JSON200).NotTo(BeNil())
				Expect(resp.JSON200.Name).To(Equal("Jerax"))
			})
		})

		Describe("Given a corrupted key", func() {
			It("should refuse the request", func() {
				payload := api.NewPetPayload().WithName("Jerax").WithAnimalType("corgi").WithAge("8").Build()

				resp, err := client.AddPetWithoutPhoto(ctx, api.CorruptAuthKey(key), payload)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode()).To(Equal(http.StatusForbidden))
			})
		})
	})
})
