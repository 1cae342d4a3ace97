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

// Mail statuses. Both are terminal.
const (
	MailStatusSent   = "SENT"
	MailStatusFailed = "FAILED"
)

// Mail is the durable record of a single send attempt. Unlike payments,
// a Mail row exists for every attempt, including ones the transport
// rejected outright.
type Mail struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	SentAt       time.Time `json:"sent_at"`
	Status       string    `json:"status"`
	ErrorMessage string    `json:"error_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// MailAttempt is the input to the mail dispatcher.
type MailAttempt struct {
	UserID string `json:"user_id"`
	To     string `json:"to"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}
