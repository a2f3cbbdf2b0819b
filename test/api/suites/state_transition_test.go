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

var _ = Describe("State Transition Testing", func() {
	Context("When walking the pet lifecycle", func() {
		It("should transition a pet through available, pending and sold", func() {
			// Given: A freshly created pet in the available state
			pet, err := api.CreatePetWithCleanup(ctx, clients, api.NewTestPet())
			Expect(err).NotTo(HaveOccurred())
			Expect(pet.Status).To(Equal(petstore.PetAvailable))

			// When: A buyer reserves the pet
			pet.Status = petstore.PetPending

			updated, err := clients.Pets.Update(ctx, pet)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(petstore.PetPending))

			// And: The sale completes
			updated.Status = petstore.PetSold

			sold, err := clients.Pets.Update(ctx, updated)
			Expect(err).NotTo(HaveOccurred())

			// Then: The stored pet reflects the final state
			fetched, err := clients.Pets.Get(ctx, sold.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(fetched.Status).To(Equal(petstore.PetSold))
		})

		It("should allow a sold pet to return to available", func() {
			// Given: A sold pet
			pet, err := api.CreatePetWithCleanup(ctx, clients, api.NewTestPetWithStatus(petstore.PetSold))
			Expect(err).NotTo(HaveOccurred())

			// When: The sale falls through
			pet.Status = petstore.PetAvailable

			updated, err := clients.Pets.Update(ctx, pet)

			// Then: The pet is available again
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(petstore.PetAvailable))
		})

		It("should refuse transitions on a deleted pet", func() {
			// Given: A pet that has been deleted
			pet, err := clients.Pets.Create(ctx, api.NewTestPet())
			Expect(err).NotTo(HaveOccurred())
			Expect(clients.Pets.Delete(ctx, pet.ID)).To(Succeed())

			// When: A state change is attempted
			pet.Status = petstore.PetSold

			_, err = clients.Pets.Update(ctx, pet)

			// Then: The terminal state is enforced
			Expect(statusOf(err)).To(Equal(http.StatusNotFound))

			// And: Deleting again fails the same way
			err = clients.Pets.Delete(ctx, pet.ID)
			Expect(statusOf(err)).To(Equal(http.StatusNotFound))
		})
	})

	Context("When walking the session lifecycle", func() {
		It("should move through logged-out, logged-in and logged-out states", func() {
			// Given: A registered account
			user, err := api.CreateUserWithCleanup(ctx, clients, api.NewTestUser())
			Expect(err).NotTo(HaveOccurred())

			// When: The user logs in
			session, err := clients.Users.Login(ctx, user.Username, user.Password)
			Expect(err).NotTo(HaveOccurred())
			Expect(session).To(ContainSubstring("logged in user session:"))

			// Then: Logging out succeeds
			Expect(clients.Users.Logout(ctx)).To(Succeed())
		})

		It("should refuse the logged-in transition for a deleted account", func() {
			// Given: An account that existed and was removed
			user, err := clients.Users.Create(ctx, api.NewTestUser())
			Expect(err).NotTo(HaveOccurred())
			Expect(clients.Users.Delete(ctx, user.Username)).To(Succeed())

			// When: The removed account attempts to log in
			_, err = clients.Users.Login(ctx, user.Username, user.Password)

			// Then: The transition is rejected
			Expect(statusOf(err)).To(Equal(http.StatusBadRequest))
		})
	})

	Context("When walking the order lifecycle", func() {
		It("should move an order from placed to deleted", func() {
			// Given: A placed order
			order, err := clients.Store.PlaceOrder(ctx, &petstore.Order{PetID: 1, Quantity: 1})
			Expect(err).NotTo(HaveOccurred())
			Expect(order.Status).To(Equal(petstore.OrderPlaced))

			// When: The order is fetched and then cancelled
			fetched, err := clients.Store.GetOrder(ctx, order.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(fetched.ID).To(Equal(order.ID))

			Expect(clients.Store.DeleteOrder(ctx, order.ID)).To(Succeed())

			// Then: The order no longer exists
			_, err = clients.Store.GetOrder(ctx, order.ID)
			Expect(statusOf(err)).To(Equal(http.StatusNotFound))
		})

		It("should preserve an explicitly approved state", func() {
			order, err := clients.Store.PlaceOrder(ctx, &petstore.Order{
				PetID:    1,
				Quantity: 1,
				Status:   petstore.OrderApproved,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(order.Status).To(Equal(petstore.OrderApproved))

			DeferCleanup(func() {
				_ = clients.Store.DeleteOrder(ctx, order.ID)
			})
		})
	})
})
