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

// Payment statuses. SUCCESS and FAILED are terminal; PENDING is only
// produced by the test-mode short circuit, never by the live gateway path.
const (
	StatusPending = "PENDING"
	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"
)

// Payment is the durable record of a single charge attempt. Records are
// append-only: once written with a terminal status they are never mutated.
type Payment struct {
	ID             int64     `json:"id"`
	OrganizationID int64     `json:"organization_id"`
	UserID         int64     `json:"user_id"`
	Amount         float64   `json:"amount"`
	Currency       string    `json:"currency"`
	PaymentMethod  string    `json:"payment_method"`
	Status         string    `json:"status"`
	ProviderRef    string    `json:"provider_ref,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PaymentAttempt is the input to the payment processor. Amount is in major
// currency units (19.99 means 19 units and 99 cents); the gateway converts
// to minor units. CardNumber is only consulted for card-based methods.
// Status and ProviderRef are honored in test mode only, where they let
// callers simulate gateway outcomes without a live charge.
type PaymentAttempt struct {
	OrganizationID string  `json:"organization_id"`
	UserID         string  `json:"user_id"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
	PaymentMethod  string  `json:"payment_method"`
	CardNumber     string  `json:"card_number,omitempty"`
	Status         string  `json:"status,omitempty"`
	ProviderRef    string  `json:"provider_ref,omitempty"`
}
