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

var _ = Describe("Pet Photo", func() {
	var (
		key openapi.AuthKey
		pet *openapi.Pet
	)

	BeforeEach(func() {
		var err error

		key, err = api.Authenticate(ctx, client, config)
		api.ExpectSetup(err)

		pet, err = api.EnsureOwnedPetWithoutPhoto(ctx, client, key)
		api.ExpectSetup(err)
	})

	Context("When setting a photo on an owned pet", func() {
		Describe("Given a still image", func() {
			It("should attach the photo", func() {
				resp, err := client.SetPetPhoto(ctx, key, pet.ID, api.PhotoPath(config, api.DogPhoto))
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode()).To(Equal(http.StatusOK))
				Expect(resp.JSON200).NotTo(BeNil())
				Expect(resp.JSON200.ID).To(Equal(pet.ID))
				Expect(resp.JSON200.HasPhoto()).To(BeTrue())
			})
		})

		Describe("Given an animated image", func() {
			It("should fail with a server error", Label("quirk"), func() {
				resp, err := client.SetPetPhoto(ctx, key, pet.ID, api.PhotoPath(config, api.AnimatedDogPhoto))
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode()).To(Equal(http.StatusInternalServerError))
			})
		})

		Describe("Given a corrupted key", func() {
			It("should refuse the request", func() {
				resp, err := client.SetPetPhoto(ctx, api.CorruptAuthKey(key), pet.ID, api.PhotoPath(config, api.DogPhoto))
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode()).To(Equal(http.StatusForbidden))
			})
		})
	})
})
