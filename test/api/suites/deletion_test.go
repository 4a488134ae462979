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
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/petfriends-qa/petfriends-api-tests/pkg/openapi"
	"github.com/petfriends-qa/petfriends-api-tests/test/api"
)

var _ = Describe("Pet Deletion", func() {
	var (
		key openapi.AuthKey
		pet *openapi.Pet
	)

	BeforeEach(func() {
		var err error

		key, err = api.Authenticate(ctx, client, config)
		api.ExpectSetup(err)

		pet, err = api.EnsureOwnedPet(ctx, client, config, key)
		api.ExpectSetup(err)
	})

	Context("When deleting an owned pet", func() {
		Describe("Given a valid key and id", func() {
			It("should remove the pet", func() {
				resp, err := client.DeletePet(ctx, key, pet.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode()).To(Equal(http.StatusOK))

				ids, err := api.OwnedPetIDs(ctx, client, key)
				api.ExpectSetup(err)
				Expect(slices.Collect(ids.All())).NotTo(ContainElement(pet.ID))
			})
		})

		Describe("Given a corrupted id", func() {
			It("should succeed without removing anything", Label("quirk"), func() {
				before, err := api.OwnedPetIDs(ctx, client, key)
				api.ExpectSetup(err)

				resp, err := client.DeletePet(ctx, key, api.Corrupt(pet.ID))
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode()).To(Equal(http.StatusOK))

				after, err := api.OwnedPetIDs(ctx, client, key)
				api.ExpectSetup(err)
				Expect(slices.Collect(before.Difference(after).All())).To(BeEmpty())
				Expect(slices.Collect(after.Difference(before).All())).To(BeEmpty())
			})
		})

		Describe("Given a corrupted key", func() {
			It("should refuse the request and keep the pet", func() {
				resp, err := client.DeletePet(ctx, api.CorruptAuthKey(key), pet.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode()).To(Equal(http.StatusForbidden))

				ids, err := api.OwnedPetIDs(ctx, client, key)
				api.ExpectSetup(err)
				Expect(slices.Collect(ids.All())).To(ContainElement(pet.ID))
			})
		})
	})
})
