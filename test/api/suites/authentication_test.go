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
)

var _ = Describe("Authentication", func() {
	Context("When requesting an API key", func() {
		Describe("Given valid credentials", func() {
			It("should return a key", func() {
				resp, err := client.GetAPIKey(ctx, config.ValidEmail, config.ValidPassword)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode()).To(Equal(http.StatusOK))
				Expect(resp.JSON200).NotTo(BeNil())
				Expect(resp.JSON200.Key).NotTo(BeEmpty())
			})
		})

		Describe("Given invalid credentials", func() {
			It("should refuse an incorrect email", func() {
				resp, err := client.GetAPIKey(ctx, config.IncorrectEmail, config.ValidPassword)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode()).To(Equal(http.StatusForbidden))
				Expect(resp.JSON200).To(BeNil())
				Expect(resp.Text()).NotTo(ContainSubstring("\"key\""))
			})

			It("should refuse an incorrect password", func() {
				resp, err := client.GetAPIKey(ctx, config.ValidEmail, config.IncorrectPassword)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode()).To(Equal(http.StatusForbidden))
				Expect(resp.JSON200).To(BeNil())
			})
		})
	})
})
