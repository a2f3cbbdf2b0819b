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

package petstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/petstore-qa/apitest/pkg/restclient"
)

const petEndpoint = "pet"

// PetClient provides typed CRUD operations on pets.
type PetClient struct {
	rest *restclient.Client
}

// NewPetClient creates a pet client over the given request builder.
func NewPetClient(rest *restclient.Client) *PetClient {
	return &PetClient{rest: rest}
}

// Create adds a new pet to the store.
func (c *PetClient) Create(ctx context.Context, pet *Pet) (*Pet, error) {
	var created Pet

	if err := c.rest.Post(ctx, pet, &created, petEndpoint); err != nil {
		return nil, fmt.Errorf("creating pet: %w", err)
	}

	return &created, nil
}

// Get retrieves a pet by ID.
func (c *PetClient) Get(ctx context.Context, petID int64) (*Pet, error) {
	var pet Pet

	if err := c.rest.Get(ctx, &pet, petEndpoint, petID); err != nil {
		return nil, fmt.Errorf("getting pet %d: %w", petID, err)
	}

	return &pet, nil
}

// Update replaces an existing pet.
func (c *PetClient) Update(ctx context.Context, pet *Pet) (*Pet, error) {
	var updated Pet

	if err := c.rest.Put(ctx, pet, &updated, petEndpoint); err != nil {
		return nil, fmt.Errorf("updating pet %d: %w", pet.ID, err)
	}

	return &updated, nil
}

// Delete removes a pet by ID.
func (c *PetClient) Delete(ctx context.Context, petID int64) error {
	if err := c.rest.Delete(ctx, nil, petEndpoint, petID); err != nil {
		return fmt.Errorf("deleting pet %d: %w", petID, err)
	}

	return nil
}

// FindByStatus lists pets with the given availability status.
func (c *PetClient) FindByStatus(ctx context.Context, status PetStatus) ([]Pet, error) {
	query := []string{"status=" + string(status)}

	var pets []Pet

	if err := c.rest.GetWithQuery(ctx, &pets, query, petEndpoint, "findByStatus"); err != nil {
		return nil, fmt.Errorf("finding pets by status %q: %w", status, err)
	}

	return pets, nil
}

// FindByTags lists pets carrying any of the given tags.
func (c *PetClient) FindByTags(ctx context.Context, tags []string) ([]Pet, error) {
	query := []string{"tags=" + strings.Join(tags, ",")}

	var pets []Pet

	if err := c.rest.GetWithQuery(ctx, &pets, query, petEndpoint, "findByTags"); err != nil {
		return nil, fmt.Errorf("finding pets by tags: %w", err)
	}

	return pets, nil
}
