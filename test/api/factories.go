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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"fmt"

	. "github.com/onsi/ginkgo/v2"

	"github.com/petstore-qa/apitest/pkg/petstore"
)

// NewTestPet creates a pet payload with basic data and a unique name.
func NewTestPet() *petstore.Pet {
	return &petstore.Pet{
		Name:      generateRandomName("TestPet"),
		Category:  &petstore.Category{ID: 1, Name: "Dogs"},
		PhotoURLs: []string{"https://example.com/testpet.jpg"},
		Status:    petstore.PetAvailable,
	}
}

// NewFullTestPet creates a pet payload with every field populated.
func NewFullTestPet() *petstore.Pet {
	return &petstore.Pet{
		Name:     generateRandomName("Fluffy"),
		Category: &petstore.Category{ID: 1, Name: "Dogs"},
		PhotoURLs: []string{
			"https://example.com/fluffy1.jpg",
			"https://example.com/fluffy2.jpg",
		},
		Tags: []petstore.Tag{
			{ID: 1, Name: "friendly"},
			{ID: 2, Name: "playful"},
		},
		Status: petstore.PetAvailable,
	}
}

// NewTestPetWithStatus creates a pet payload with the given status.
func NewTestPetWithStatus(status petstore.PetStatus) *petstore.Pet {
	pet := NewTestPet()
	pet.Name = generateRandomName("TestPet-" + string(status))
	pet.Status = status

	return pet
}

// NewTestUser creates a user payload with basic data and a unique username.
func NewTestUser() *petstore.User {
	return &petstore.User{
		Username:   UniqueUsername("testuser"),
		FirstName:  "Test",
		LastName:   "User",
		Email:      "test@example.com",
		Password:   "password123",
		Phone:      "+1234567890",
		UserStatus: 1,
	}
}

// NewFullTestUser creates a user payload with every field populated.
func NewFullTestUser() *petstore.User {
	return &petstore.User{
		Username:   UniqueUsername("fulluser"),
		FirstName:  "John",
		LastName:   "Doe",
		Email:      "john.doe@example.com",
		Password:   "securePassword123",
		Phone:      "+1-555-123-4567",
		UserStatus: 1,
	}
}

// NewTestPets creates a batch of pet payloads cycling through categories.
func NewTestPets(count int) []petstore.Pet {
	categories := []petstore.Category{
		{ID: 1, Name: "Dogs"},
		{ID: 2, Name: "Cats"},
		{ID: 3, Name: "Birds"},
	}

	pets := make([]petstore.Pet, count)

	for i := range count {
		category := categories[i%len(categories)]

		pets[i] = petstore.Pet{
			Name:      generateRandomName(fmt.Sprintf("BatchPet-%d", i)),
			Category:  &category,
			PhotoURLs: []string{fmt.Sprintf("https://example.com/batch%d.jpg", i)},
			Status:    petstore.PetAvailable,
		}
	}

	return pets
}

// NewTestUsers creates a batch of user payloads with unique usernames.
func NewTestUsers(count int) []petstore.User {
	users := make([]petstore.User, count)

	for i := range count {
		users[i] = petstore.User{
			Username:   UniqueUsername(fmt.Sprintf("batchuser-%d", i)),
			FirstName:  fmt.Sprintf("User%d", i),
			LastName:   "Batch",
			Email:      fmt.Sprintf("user%d@example.com", i),
			Password:   fmt.Sprintf("password%d", i),
			Phone:      fmt.Sprintf("+123456789%d", i),
			UserStatus: 1,
		}
	}

	return users
}

// PetBuilder builds pet payloads for partition and boundary specs.
type PetBuilder struct {
	pet petstore.Pet
}

// NewPetPayload creates a builder seeded with a valid unique pet.
func NewPetPayload() *PetBuilder {
	return &PetBuilder{pet: *NewTestPet()}
}

func (b *PetBuilder) WithName(name string) *PetBuilder {
	b.pet.Name = name
	return b
}

func (b *PetBuilder) WithStatus(status petstore.PetStatus) *PetBuilder {
	b.pet.Status = status
	return b
}

func (b *PetBuilder) WithCategory(id int64, name string) *PetBuilder {
	b.pet.Category = &petstore.Category{ID: id, Name: name}
	return b
}

func (b *PetBuilder) WithTags(names ...string) *PetBuilder {
	b.pet.Tags = make([]petstore.Tag, len(names))

	for i, name := range names {
		b.pet.Tags[i] = petstore.Tag{ID: int64(i + 1), Name: name}
	}

	return b
}

func (b *PetBuilder) WithPhotoURLs(urls ...string) *PetBuilder {
	b.pet.PhotoURLs = urls
	return b
}

// Build returns the completed pet payload.
func (b *PetBuilder) Build() *petstore.Pet {
	pet := b.pet
	return &pet
}

// UserBuilder builds user payloads for partition and boundary specs.
type UserBuilder struct {
	user petstore.User
}

// NewUserPayload creates a builder seeded with a valid unique user.
func NewUserPayload() *UserBuilder {
	return &UserBuilder{user: *NewTestUser()}
}

func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.user.Username = username
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.user.Password = password
	return b
}

func (b *UserBuilder) WithPhone(phone string) *UserBuilder {
	b.user.Phone = phone
	return b
}

func (b *UserBuilder) WithName(firstName, lastName string) *UserBuilder {
	b.user.FirstName = firstName
	b.user.LastName = lastName

	return b
}

func (b *UserBuilder) WithStatus(status int32) *UserBuilder {
	b.user.UserStatus = status
	return b
}

// Build returns the completed user payload.
func (b *UserBuilder) Build() *petstore.User {
	user := b.user
	return &user
}

// CreateUserWithCleanup creates a user and schedules best-effort deletion.
// Cleanup failures are logged, never fatal, matching how the suites treat
// teardown.
func CreateUserWithCleanup(ctx context.Context, clients *petstore.Clients, user *petstore.User) (*petstore.User, error) {
	created, err := clients.Users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	DeferCleanup(func(ctx context.Context) {
		if err := clients.Users.Delete(ctx, created.Username); err != nil {
			GinkgoWriter.Printf("Warning: failed to delete user %s: %v\n", created.Username, err)
		}
	})

	return created, nil
}

// CreatePetWithCleanup creates a pet and schedules best-effort deletion.
func CreatePetWithCleanup(ctx context.Context, clients *petstore.Clients, pet *petstore.Pet) (*petstore.Pet, error) {
	created, err := clients.Pets.Create(ctx, pet)
	if err != nil {
		return nil, err
	}

	DeferCleanup(func(ctx context.Context) {
		if err := clients.Pets.Delete(ctx, created.ID); err != nil {
			GinkgoWriter.Printf("Warning: failed to delete pet %d: %v\n", created.ID, err)
		}
	})

	return created, nil
}
