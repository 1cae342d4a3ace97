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
package model

import "time"

// Animal is a pet listed for adoption by an organization.
type Animal struct {
	ID               int64     `json:"id"`
	OrganizationID   int64     `json:"organization_id"`
	Name             string    `json:"name,omitempty"`
	Type             string    `json:"type"`
	Breed            string    `json:"breed,omitempty"`
	Size             string    `json:"size"`
	Gender           string    `json:"gender"`
	Age              string    `json:"age"`
	Description      string    `json:"description"`
	Status           string    `json:"status"`
	Color            string    `json:"color,omitempty"`
	Coat             string    `json:"coat,omitempty"`
	GoodWithChildren bool      `json:"good_with_children"`
	GoodWithDogs     bool      `json:"good_with_dogs"`
	GoodWithCats     bool      `json:"good_with_cats"`
	HouseTrained     bool      `json:"house_trained"`
	SpecialNeeds     string    `json:"special_needs,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}
