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

const userEndpoint = "user"

// UserClient provides typed operations on store accounts.
type UserClient struct {
	rest *restclient.Client
}

// NewUserClient creates a user client over the given request builder.
func NewUserClient(rest *restclient.Client) *UserClient {
	return &UserClient{rest: rest}
}

// Create registers a new user.
func (c *UserClient) Create(ctx context.Context, user *User) (*User, error) {
	var created User

	if err := c.rest.Post(ctx, user, &created, userEndpoint); err != nil {
		return nil, fmt.Errorf("creating user %q: %w", user.Username, err)
	}

	return &created, nil
}

// Get retrieves a user by username.
func (c *UserClient) Get(ctx context.Context, username string) (*User, error) {
	var user User

	if err := c.rest.Get(ctx, &user, userEndpoint, username); err != nil {
		return nil, fmt.Errorf("getting user %q: %w", username, err)
	}

	return &user, nil
}

// Update replaces the user stored under user.Username.
func (c *UserClient) Update(ctx context.Context, user *User) (*User, error) {
	var updated User

	if err := c.rest.Put(ctx, user, &updated, userEndpoint, user.Username); err != nil {
		return nil, fmt.Errorf("updating user %q: %w", user.Username, err)
	}

	return &updated, nil
}

// Delete removes a user by username.
func (c *UserClient) Delete(ctx context.Context, username string) error {
	if err := c.rest.Delete(ctx, nil, userEndpoint, username); err != nil {
		return fmt.Errorf("deleting user %q: %w", username, err)
	}

	return nil
}

// Login authenticates a user and returns the session message.
func (c *UserClient) Login(ctx context.Context, username, password string) (string, error) {
	query := []string{
		"username=" + username,
		"password=" + password,
	}

	var session string

	if err := c.rest.GetWithQuery(ctx, &session, query, userEndpoint, "login"); err != nil {
		return "", fmt.Errorf("logging in user %q: %w", username, err)
	}

	return session, nil
}

// Logout ends the current session.
func (c *UserClient) Logout(ctx context.Context) error {
	if err := c.rest.Get(ctx, nil, userEndpoint, "logout"); err != nil {
		return fmt.Errorf("logging out: %w", err)
	}

	return nil
}

// CreateWithArray registers a batch of users from an array payload.
func (c *UserClient) CreateWithArray(ctx context.Context, users []User) error {
	if err := c.rest.Post(ctx, users, nil, userEndpoint, "createWithArray"); err != nil {
		return fmt.Errorf("creating users with array: %w", err)
	}

	return nil
}

// CreateWithList registers a batch of users from a list payload.
func (c *UserClient) CreateWithList(ctx context.Context, users []User) error {
	if err := c.rest.Post(ctx, users, nil, userEndpoint, "createWithList"); err != nil {
		return fmt.Errorf("creating users with list: %w", err)
	}

	return nil
}
