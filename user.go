/*
Copyright 2025 Pawprint Authors.

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

package pawprint

import (
	"context"

	"github.com/pawprint-hq/pawprint/model"
)

// CreateUser creates a new user in the database.
func (p *Pawprint) CreateUser(user model.User) (model.User, error) {
	return p.datasource.CreateUser(user)
}

// GetUser retrieves a user by ID.
func (p *Pawprint) GetUser(ctx context.Context, id int64) (*model.User, error) {
	return p.datasource.GetUserByID(ctx, id)
}

// GetAllUsers retrieves all users.
func (p *Pawprint) GetAllUsers() ([]model.User, error) {
	return p.datasource.GetAllUsers()
}
