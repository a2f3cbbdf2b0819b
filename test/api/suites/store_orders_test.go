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
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/petstore-qa/apitest/pkg/petstore"
	"github.com/petstore-qa/apitest/test/api"
)

var _ = Describe("Store Orders", func() {
	Context("When placing orders", func() {
		It("should place an order against an existing pet", func() {
			// Given: A pet available for purchase
			pet, err := api.CreatePetWithCleanup(ctx, clients, api.NewTestPet())
			Expect(err).NotTo(HaveOccurred())

			// When: An order is placed for it
			shipDate := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)

			order, err := clients.Store.PlaceOrder(ctx, &petstore.Order{
				PetID:    pet.ID,
				Quantity: 1,
				ShipDate: shipDate,
			})
			Expect(err).NotTo(HaveOccurred())

			DeferCleanup(func() {
				_ = clients.Store.DeleteOrder(ctx, order.ID)
			})

			// Then: The order captures the request
			Expect(order.ID).NotTo(BeZero())
			Expect(order.PetID).To(Equal(pet.ID))
			Expect(order.ShipDate.Equal(shipDate)).To(BeTrue())
			Expect(order.Complete).To(BeFalse())
		})

		It("should assign increasing order identifiers", func() {
			first, err := clients.Store.PlaceOrder(ctx, &petstore.Order{PetID: 1, Quantity: 1})
			Expect(err).NotTo(HaveOccurred())

			second, err := clients.Store.PlaceOrder(ctx, &petstore.Order{PetID: 1, Quantity: 1})
			Expect(err).NotTo(HaveOccurred())

			DeferCleanup(func() {
				_ = clients.Store.DeleteOrder(ctx, first.ID)
				_ = clients.Store.DeleteOrder(ctx, second.ID)
			})

			Expect(second.ID).To(BeNumerically(">", first.ID))
		})

		It("should reject an order without a pet reference", func() {
			_, err := clients.Store.PlaceOrder(ctx, &petstore.Order{Quantity: 1})
			Expect(statusOf(err)).To(Equal(http.StatusBadRequest))
		})
	})

	Context("When looking up orders", func() {
		It("should retrieve a placed order by identifier", func() {
			placed, err := clients.Store.PlaceOrder(ctx, &petstore.Order{PetID: 7, Quantity: 2})
			Expect(err).NotTo(HaveOccurred())

			DeferCleanup(func() {
				_ = clients.Store.DeleteOrder(ctx, placed.ID)
			})

			fetched, err := clients.Store.GetOrder(ctx, placed.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(fetched.PetID).To(Equal(int64(7)))
			Expect(fetched.Quantity).To(Equal(int32(2)))
		})

		It("should report a missing order as not found", func() {
			_, err := clients.Store.GetOrder(ctx, 88888888)
			Expect(statusOf(err)).To(Equal(http.StatusNotFound))
		})
	})

	Context("When reading the inventory", func() {
		It("should count pets by status", func() {
			// Given: A known contribution to each status bucket
			before, err := clients.Store.Inventory(ctx)
			Expect(err).NotTo(HaveOccurred())

			_, err = api.CreatePetWithCleanup(ctx, clients, api.NewTestPetWithStatus(petstore.PetAvailable))
			Expect(err).NotTo(HaveOccurred())

			_, err = api.CreatePetWithCleanup(ctx, clients, api.NewTestPetWithStatus(petstore.PetSold))
			Expect(err).NotTo(HaveOccurred())

			// When: The inventory is read again
			after, err := clients.Store.Inventory(ctx)
			Expect(err).NotTo(HaveOccurred())

			// Then: Each bucket grew by the pets just added
			Expect(after["available"]).To(Equal(before["available"] + 1))
			Expect(after["sold"]).To(Equal(before["sold"] + 1))
		})
	})
})
