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

import "time"

// PetStatus is the availability of a pet in the store.
type PetStatus string

const (
	PetAvailable PetStatus = "available"
	PetPending   PetStatus = "pending"
	PetSold      PetStatus = "sold"
)

// Category groups pets.
type Category struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// Tag is a free-form label attached to a pet.
type Tag struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// Pet is a pet listed in the store.
type Pet struct {
	ID        int64     `json:"id,omitempty"`
	Name      string    `json:"name"`
	Category  *Category `json:"category,omitempty"`
	PhotoURLs []string  `json:"photoUrls"`
	Tags      []Tag     `json:"tags,omitempty"`
	Status    PetStatus `json:"status,omitempty"`
}

// User is a store account. UserStatus 0 is inactive, 1 is active.
type User struct {
	ID         int64  `json:"id,omitempty"`
	Username   string `json:"username"`
	FirstName  string `json:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
	Email      string `json:"email,omitempty"`
	Password   string `json:"password,omitempty"`
	Phone      string `json:"phone,omitempty"`
	UserStatus int32  `json:"userStatus"`
}

// OrderStatus is the fulfilment state of a purchase order.
type OrderStatus string

const (
	OrderPlaced    OrderStatus = "placed"
	OrderApproved  OrderStatus = "approved"
	OrderDelivered OrderStatus = "delivered"
)

// Order is a purchase order for a pet.
type Order struct {
	ID       int64       `json:"id,omitempty"`
	PetID    int64       `json:"petId"`
	Quantity int32       `json:"quantity"`
	ShipDate time.Time   `json:"shipDate,omitzero"`
	Status   OrderStatus `json:"status,omitempty"`
	Complete bool        `json:"complete"`
}

// APIResponse is the generic message envelope returned by several petstore
// operations.
type APIResponse struct {
	Code    int32  `json:"code"`
	Type    string `json:"type,omitempty"`
	Message string `json:"message,omitempty"`
}
