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

	"github.com/petstore-qa/apitest/pkg/restclient"
)

const storeEndpoint = "store"

// StoreClient provides typed operations on purchase orders and inventory.
type StoreClient struct {
	rest *restclient.Client
}

// NewStoreClient creates a store client over the given request builder.
func NewStoreClient(rest *restclient.Client) *StoreClient {
	return &StoreClient{rest: rest}
}

// PlaceOrder places a purchase order for a pet.
func (c *StoreClient) PlaceOrder(ctx context.Context, order *Order) (*Order, error) {
	var placed Order

	if err := c.rest.Post(ctx, order, &placed, storeEndpoint, "order"); err != nil {
		return nil, fmt.Errorf("placing order: %w", err)
	}

	return &placed, nil
}

// GetOrder retrieves a purchase order by ID.
func (c *StoreClient) GetOrder(ctx context.Context, orderID int64) (*Order, error) {
	var order Order

	if err := c.rest.Get(ctx, &order, storeEndpoint, "order", orderID); err != nil {
		return nil, fmt.Errorf("getting order %d: %w", orderID, err)
	}

	return &order, nil
}

// DeleteOrder deletes a purchase order by ID.
func (c *StoreClient) DeleteOrder(ctx context.Context, orderID int64) error {
	if err := c.rest.Delete(ctx, nil, storeEndpoint, "order", orderID); err != nil {
		return fmt.Errorf("deleting order %d: %w", orderID, err)
	}

	return nil
}

// Inventory returns pet counts keyed by status.
func (c *StoreClient) Inventory(ctx context.Context) (map[string]int32, error) {
	var inventory map[string]int32

	if err := c.rest.Get(ctx, &inventory, storeEndpoint, "inventory"); err != nil {
		return nil, fmt.Errorf("getting inventory: %w", err)
	}

	return inventory, nil
}

// Clients bundles the typed clients sharing one request builder.
type Clients struct {
	Pets  *PetClient
	Users *UserClient
	Store *StoreClient
}

// NewClients creates all typed clients over a shared request builder.
func NewClients(rest *restclient.Client) *Clients {
	return &Clients{
		Pets:  NewPetClient(rest),
		Users: NewUserClient(rest),
		Store: NewStoreClient(rest),
	}
}
