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

var _ = Describe("Pet Update", func() {
	var (
		key openapi.AuthKey
		pet *openapi.Pet
	)

	BeforeEach(func() {
		var err error

		key, err = api.Authenticate(ctx, client, config)
		api.ExpectSetup(err)

		pet, err = api.RequireOwnedPet(ctx, client, key)
		api.ExpectSetup(err)
	})

	Context("When updating an owned pet", func() {
		Describe("Given a valid key", func() {
			It("should update the pet", func() {
				payload := api.NewPetPayload().WithName("Steve").WithAnimalType("Doge").WithAge("5").Build()

				resp, err := client.UpdatePet(ctx, key, pet.ID, payload)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode()).To(Equal(http.StatusOK))
				Expect(resp.JSON200).NotTo(BeNil())
				Expect(resp.JSON200.Name).To(Equal("Steve"))
				Expect(resp.JSON200.AnimalType).To(Equal("Doge"))
				Expect(resp.JSON200.Age).To(Equal("5"))
			})
		})

		Describe("Given a corrupted key", func() {
			It("should refuse the request", func() {
				payload := api.NewPetPayload().WithName("Steve").WithAnimalType("Doge").WithAge("5").Build()

				resp, err := client.UpdatePet(ctx, api.CorruptAuthKey(key), pet.ID, payload)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode()).To(Equal(http.StatusForbidden))
			})
		})
	})
})
