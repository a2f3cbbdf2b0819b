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

var _ = Describe("Pet Management", func() {
	Context("When managing a pet through its full lifecycle", func() {
		It("should create, read, update and delete a pet", func() {
			// Given: A fully populated pet payload
			payload := api.NewFullTestPet()

			// When: The pet is created
			created, err := clients.Pets.Create(ctx, payload)
			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).NotTo(BeZero())
			Expect(created.Name).To(Equal(payload.Name))
			Expect(created.Tags).To(HaveLen(2))

			DeferCleanup(func() {
				_ = clients.Pets.Delete(ctx, created.ID)
			})

			// Then: It can be read back unchanged
			fetched, err := clients.Pets.Get(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(fetched.Category.Name).To(Equal("Dogs"))
			Expect(fetched.PhotoURLs).To(Equal(payload.PhotoURLs))

			// And: Updates are persisted
			fetched.Name = fetched.Name + "-renamed"
			fetched.Status = petstore.PetPending

			updated, err := clients.Pets.Update(ctx, fetched)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(HaveSuffix("-renamed"))

			// And: Deletion removes it
			Expect(clients.Pets.Delete(ctx, created.ID)).To(Succeed())

			_, err = clients.Pets.Get(ctx, created.ID)
			Expect(statusOf(err)).To(Equal(http.StatusNotFound))
		})
	})

	Context("When searching the catalogue", func() {
		It("should find pets by status", func() {
			pet, err := api.CreatePetWithCleanup(ctx, clients, api.NewTestPetWithStatus(petstore.PetPending))
			Expect(err).NotTo(HaveOccurred())

			pending, err := clients.Pets.FindByStatus(ctx, petstore.PetPending)
			Expect(err).NotTo(HaveOccurred())

			ids := make([]int64, 0, len(pending))
			for i := range pending {
				Expect(pending[i].Status).To(Equal(petstore.PetPending))

				ids = append(ids, pending[i].ID)
			}

			Expect(ids).To(ContainElement(pet.ID))
		})

		It("should reject a search with an unknown status", func() {
			_, err := clients.Pets.FindByStatus(ctx, petstore.PetStatus("bogus"))
			Expect(statusOf(err)).To(Equal(http.StatusBadRequest))
		})

		It("should find pets matching any requested tag", func() {
			tagA := api.GenerateTestID()
			tagB := api.GenerateTestID()

			petA := api.NewTestPet()
			petA.Tags = []petstore.Tag{{ID: 1, Name: tagA}}

			petB := api.NewTestPet()
			petB.Tags = []petstore.Tag{{ID: 2, Name: tagB}}

			createdA, err := api.CreatePetWithCleanup(ctx, clients, petA)
			Expect(err).NotTo(HaveOccurred())

			createdB, err := api.CreatePetWithCleanup(ctx, clients, petB)
			Expect(err).NotTo(HaveOccurred())

			found, err := clients.Pets.FindByTags(ctx, []string{tagA, tagB})
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(HaveLen(2))
			Expect(found[0].ID).To(Equal(createdA.ID))
			Expect(found[1].ID).To(Equal(createdB.ID))
		})

		It("should return an empty result for an unmatched tag", func() {
			found, err := clients.Pets.FindByTags(ctx, []string{api.GenerateTestID()})
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeEmpty())
		})
	})
})
