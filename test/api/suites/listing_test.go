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

var _ = Describe("Pet Listing", func() {
	var key openapi.AuthKey

	BeforeEach(func() {
		var err error

		key, err = api.Authenticate(ctx, client, config)
		api.ExpectSetup(err)
	})

	Context("When listing pets", func() {
		Describe("Given a known filter", func() {
			It("should return all pets with an empty filter", func() {
				resp, err := client.ListPets(ctx, key, openapi.FilterAll)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode()).To(Equal(http.StatusOK))
				Expect(resp.JSON200).NotTo(BeNil())
				Expect(resp.JSON200.Pets).NotTo(BeEmpty())
			})

			It("should return owned pets with the my_pets filter", func() {
				resp, err := client.ListPets(ctx, key, openapi.FilterMyPets)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode()).To(Equal(http.StatusOK))
				Expect(resp.JSON200).NotTo(BeNil())
				Expect(resp.Text()).To(ContainSubstring("\"pets\""))
			})
		})

		Describe("Given an unknown filter", func() {
			It("should fail with a server error", Label("quirk"), func() {
				resp, err := client.ListPets(ctx, key, openapi.Filter("all_pets"))
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode()).To(Equal(http.StatusInternalServerError))
			})
		})
	})
})
