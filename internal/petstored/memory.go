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

package petstored

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/spjmurray/go-util/pkg/set"

	"github.com/petstore-qa/apitest/pkg/petstore"
)

var (
	errNotFound   = errors.New("resource not found")
	errConflict   = errors.New("resource already exists")
	errValidation = errors.New("invalid input")
)

// memoryStore holds all server state behind one lock. IDs are sequential
// per resource kind.
type memoryStore struct {
	mu          sync.Mutex
	pets        map[int64]petstore.Pet
	users       map[string]petstore.User
	orders      map[int64]petstore.Order
	nextPetID   int64
	nextUserID  int64
	nextOrderID int64
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		pets:   map[int64]petstore.Pet{},
		users:  map[string]petstore.User{},
		orders: map[int64]petstore.Order{},
	}
}

func validPetStatus(status petstore.PetStatus) bool {
	switch status {
	case "", petstore.PetAvailable, petstore.PetPending, petstore.PetSold:
		return true
	default:
		return false
	}
}

func (s *memoryStore) createPet(pet petstore.Pet) (petstore.Pet, error) {
	if pet.Name == "" {
		return petstore.Pet{}, errValidation
	}

	if !validPetStatus(pet.Status) {
		return petstore.Pet{}, errValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextPetID++
	pet.ID = s.nextPetID

	if pet.Status == "" {
		pet.Status = petstore.PetAvailable
	}

	s.pets[pet.ID] = pet

	return pet, nil
}

func (s *memoryStore) getPet(petID int64) (petstore.Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pet, ok := s.pets[petID]
	if !ok {
		return petstore.Pet{}, errNotFound
	}

	return pet, nil
}

func (s *memoryStore) updatePet(pet petstore.Pet) (petstore.Pet, error) {
	if pet.ID == 0 || pet.Name == "" || !validPetStatus(pet.Status) {
		return petstore.Pet{}, errValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pets[pet.ID]; !ok {
		return petstore.Pet{}, errNotFound
	}

	s.pets[pet.ID] = pet

	return pet, nil
}

func (s *memoryStore) deletePet(petID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pets[petID]; !ok {
		return errNotFound
	}

	delete(s.pets, petID)

	return nil
}

func (s *memoryStore) findPetsByStatus(status petstore.PetStatus) ([]petstore.Pet, error) {
	if status == "" || !validPetStatus(status) {
		return nil, errValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pets := []petstore.Pet{}

	for _, pet := range s.pets {
		if pet.Status == status {
			pets = append(pets, pet)
		}
	}

	sortPets(pets)

	return pets, nil
}

func (s *memoryStore) findPetsByTags(tags []string) ([]petstore.Pet, error) {
	if len(tags) == 0 {
		return nil, errValidation
	}

	requested := set.New[string](tags...)

	s.mu.Lock()
	defer s.mu.Unlock()

	pets := []petstore.Pet{}

	for _, pet := range s.pets {
		for _, tag := range pet.Tags {
			if requested.Contains(tag.Name) {
				pets = append(pets, pet)
				break
			}
		}
	}

	sortPets(pets)

	return pets, nil
}

func sortPets(pets []petstore.Pet) {
	sort.Slice(pets, func(i, j int) bool {
		return pets[i].ID < pets[j].ID
	})
}

func (s *memoryStore) createUser(user petstore.User) (petstore.User, error) {
	if err := validateUser(user); err != nil {
		return petstore.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Username]; ok {
		return petstore.User{}, errConflict
	}

	s.nextUserID++
	user.ID = s.nextUserID
	s.users[user.Username] = user

	return user, nil
}

func validateUser(user petstore.User) error {
	if user.Username == "" || len(user.Username) > 50 {
		return errValidation
	}

	if strings.TrimSpace(user.Username) == "" {
		return errValidation
	}

	return nil
}

func (s *memoryStore) getUser(username string) (petstore.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[username]
	if !ok {
		return petstore.User{}, errNotFound
	}

	return user, nil
}

func (s *memoryStore) updateUser(username string, user petstore.User) (petstore.User, error) {
	if err := validateUser(user); err != nil {
		return petstore.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.users[username]
	if !ok {
		return petstore.User{}, errNotFound
	}

	user.ID = existing.ID

	// A changed username moves the record.
	if user.Username != username {
		if _, ok := s.users[user.Username]; ok {
			return petstore.User{}, errConflict
		}

		delete(s.users, username)
	}

	s.users[user.Username] = user

	return user, nil
}

func (s *memoryStore) deleteUser(username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[username]; !ok {
		return errNotFound
	}

	delete(s.users, username)

	return nil
}

func (s *memoryStore) checkCredentials(username, password string) error {
	if username == "" || password == "" {
		return errValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[username]
	if !ok || user.Password != password {
		return errValidation
	}

	return nil
}

func (s *memoryStore) placeOrder(order petstore.Order) (petstore.Order, error) {
	if order.PetID <= 0 || order.Quantity <= 0 {
		return petstore.Order{}, errValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextOrderID++
	order.ID = s.nextOrderID

	if order.Status == "" {
		order.Status = petstore.OrderPlaced
	}

	s.orders[order.ID] = order

	return order, nil
}

func (s *memoryStore) getOrder(orderID int64) (petstore.Order, error) {
	if orderID <= 0 {
		return petstore.Order{}, errValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[orderID]
	if !ok {
		return petstore.Order{}, errNotFound
	}

	return order, nil
}

func (s *memoryStore) deleteOrder(orderID int64) error {
	if orderID <= 0 {
		return errValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[orderID]; !ok {
		return errNotFound
	}

	delete(s.orders, orderID)

	return nil
}

func (s *memoryStore) inventory() map[string]int32 {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := map[string]int32{}

	for _, pet := range s.pets {
		counts[string(pet.Status)]++
	}

	return counts
}
