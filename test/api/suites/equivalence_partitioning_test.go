/*
Copyright 2025 the Petstore QA Authors.

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

//nolint:testpackage,revive // Ginkgo suites share package-level harness state
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/petstore-qa/apitest/pkg/petstore"
	"github.com/petstore-qa/apitest/test/api"
)

var _ = Describe("Equivalence Partitioning", func() {
	Context("When partitioning pet status values", func() {
		It("should accept every value from the valid status partition", func() {
			// Given: One representative pet per valid status class
			// When: Each pet is created
			// Then: Each creation succeeds and the status round-trips
			for _, status := range []petstore.PetStatus{petstore.PetAvailable, petstore.PetPending, petstore.PetSold} {
				pet, err := api.CreatePetWithCleanup(ctx, clients, api.NewTestPetWithStatus(status))
				Expect(err).NotTo(HaveOccurred())
				Expect(pet.Status).To(Equal(status))
			}
		})

		It("should reject values from the invalid status partition", func() {
			// Given: A pet whose status is outside the documented set
			// When: The pet is created
			// Then: The API rejects it with a validation error
			pet := api.NewPetPayload().WithStatus("hibernating").Build()

			_, err := clients.Pets.Create(ctx, pet)
			Expect(err).To(HaveOccurred())
			Expect(statusOf(err)).To(Equal(http.StatusBadRequest))
		})

		It("should treat an omitted status as the available partition", func() {
			// Given: A pet with no status set
			// When: The pet is created
			// Then: The server defaults it to available
			pet := api.NewPetPayload().WithStatus("").Build()

			created, err := api.CreatePetWithCleanup(ctx, clients, pet)
			Expect(err).NotTo(HaveOccurred())
			Expect(created.Status).To(Equal(petstore.PetAvailable))
		})
	})

	Context("When partitioning pet identifiers", func() {
		It("should return a pet for an identifier in the existing partition", func() {
			created, err := api.CreatePetWithCleanup(ctx, clients, api.NewTestPet())
			Expect(err).NotTo(HaveOccurred())

			fetched, err := clients.Pets.Get(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(fetched.Name).To(Equal(created.Name))
		})

		It("should return not found for an identifier in the non-existing partition", func() {
			_, err := clients.Pets.Get(ctx, 99999999)
			Expect(err).To(HaveOccurred())
			Expect(statusOf(err)).To(Equal(http.StatusNotFound))
		})
	})

	Context("When partitioning user payloads", func() {
		It("should accept a fully populated valid user", func() {
			created, err := api.CreateUserWithCleanup(ctx, clients, api.NewFullTestUser())
			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).NotTo(BeZero())
		})

		It("should accept a minimally populated valid user", func() {
			user := api.NewUserPayload().
				WithName("", "").
				WithEmail("").
				WithPhone("").
				Build()

			created, err := api.CreateUserWithCleanup(ctx, clients, user)
			Expect(err).NotTo(HaveOccurred())
			Expect(created.Username).To(Equal(user.Username))
		})

		It("should reject a user from the blank username partition", func() {
			user := api.NewUserPayload().WithUsername("   ").Build()

			_, err := clients.Users.Create(ctx, user)
			Expect(err).To(HaveOccurred())
			Expect(statusOf(err)).To(Equal(http.StatusBadRequest))
		})
	})

	Context("When partitioning order quantities", func() {
		It("should accept a positive quantity", func() {
			order, err := clients.Store.PlaceOrder(ctx, &petstore.Order{PetID: 1, Quantity: 3})
			Expect(err).NotTo(HaveOccurred())
			Expect(order.Status).To(Equal(petstore.OrderPlaced))
		})

		It("should reject a zero quantity", func() {
			_, err := clients.Store.PlaceOrder(ctx, &petstore.Order{PetID: 1, Quantity: 0})
			Expect(err).To(HaveOccurred())
			Expect(statusOf(err)).To(Equal(http.StatusBadRequest))
		})

		It("should reject a negative quantity", func() {
			_, err := clients.Store.PlaceOrder(ctx, &petstore.Order{PetID: 1, Quantity: -1})
			Expect(err).To(HaveOccurred())
			Expect(statusOf(err)).To(Equal(http.StatusBadRequest))
		})
	})
})
