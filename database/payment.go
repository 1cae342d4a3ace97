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

package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"

	"github.com/pawprint-hq/pawprint/internal/apierror"
	"github.com/pawprint-hq/pawprint/model"
)

// RecordPayment appends a payment outcome record. There is deliberately no
// update path: a record's status is terminal once written.
func (d Datasource) RecordPayment(ctx context.Context, payment *model.Payment) (*model.Payment, error) {
	payment.CreatedAt = time.Now()
	payment.UpdatedAt = payment.CreatedAt

	err := d.Conn.QueryRowContext(ctx, `
		INSERT INTO payments (organization_id, user_id, amount, currency, payment_method, status, provider_ref, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9)
		RETURNING id
	`, payment.OrganizationID, payment.UserID, payment.Amount, payment.Currency, payment.PaymentMethod,
		payment.Status, payment.ProviderRef, payment.CreatedAt, payment.UpdatedAt).Scan(&payment.ID)
	if err != nil {
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "failed to record payment", errors.Wrap(err, "inserting payment"))
	}

	return payment, nil
}

// GetPaymentByID retrieves a payment record by ID.
func (d Datasource) GetPaymentByID(ctx context.Context, id int64) (*model.Payment, error) {
	row := d.Conn.QueryRowContext(ctx, `
		SELECT id, organization_id, user_id, amount, currency, payment_method, status, COALESCE(provider_ref, ''), created_at, updated_at
		FROM payments
		WHERE id = $1
	`, id)

	payment := &model.Payment{}
	err := row.Scan(&payment.ID, &payment.OrganizationID, &payment.UserID, &payment.Amount, &payment.Currency,
		&payment.PaymentMethod, &payment.Status, &payment.ProviderRef, &payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apierror.NewAPIError(apierror.ErrNotFound, "payment not found", err)
		}
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "failed to retrieve payment", errors.Wrap(err, "scanning payment"))
	}

	return payment, nil
}

// GetAllPayments retrieves all payment records, newest first.
func (d Datasource) GetAllPayments(ctx context.Context) ([]model.Payment, error) {
	return d.queryPayments(ctx, `
		SELECT id, organization_id, user_id, amount, currency, payment_method, status, COALESCE(provider_ref, ''), created_at, updated_at
		FROM payments
		ORDER BY created_at DESC
	`)
}

// GetPaymentsByUserID retrieves all payment records for a user, newest first.
func (d Datasource) GetPaymentsByUserID(ctx context.Context, userID int64) ([]model.Payment, error) {
	return d.queryPayments(ctx, `
		SELECT id, organization_id, user_id, amount, currency, payment_method, status, COALESCE(provider_ref, ''), created_at, updated_at
		FROM payments
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
}

func (d Datasource) queryPayments(ctx context.Context, query string, args ...interface{}) ([]model.Payment, error) {
	rows, err := d.Conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "failed to retrieve payments", errors.Wrap(err, "querying payments"))
	}
	defer rows.Close()

	var payments []model.Payment
	for rows.Next() {
		payment := model.Payment{}
		if err := rows.Scan(&payment.ID, &payment.OrganizationID, &payment.UserID, &payment.Amount, &payment.Currency,
			&payment.PaymentMethod, &payment.Status, &payment.ProviderRef, &payment.CreatedAt, &payment.UpdatedAt); err != nil {
			return nil, apierror.NewAPIError(apierror.ErrInternalServer, "failed to scan payment", err)
		}
		payments = append(payments, payment)
	}

	return payments, rows.Err()
}
