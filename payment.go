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
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/pawprint-hq/pawprint/internal/apierror"
	"github.com/pawprint-hq/pawprint/internal/notification"
	"github.com/pawprint-hq/pawprint/model"
)

// CreatePayment processes a single payment attempt: card validation,
// then user and organization resolution, then one gateway charge, then
// one durable outcome record.
//
// The ordering carries the audit contract. Validation or resolution
// failure rejects the attempt with NO record written — no external
// charge is ever attempted for an unresolved party. Once the gateway is
// called, an outcome record is always written: SUCCESS with the
// provider reference, or FAILED before the gateway's error is re-raised
// to the caller.
//
// In test mode the live gateway is skipped: the stub synthesizes a
// provider reference (unless the caller supplied one) and the status
// defaults to PENDING, which is unreachable on the live path.
func (p *Pawprint) CreatePayment(ctx context.Context, attempt model.PaymentAttempt) (*model.Payment, error) {
	// Validating
	if IsCardMethod(attempt.PaymentMethod) && attempt.CardNumber != "" {
		if v := ValidateCard(attempt.CardNumber); !v.Valid {
			return nil, apierror.NewAPIError(apierror.ErrInvalidInput, v.Reason, fmt.Sprintf("card rejected: %s", v.Reason))
		}
	}

	// Resolving: user first, then organization — the order fixes which
	// party an error message names.
	user, err := p.resolveUser(ctx, attempt.UserID)
	if err != nil {
		return nil, err
	}
	org, err := p.resolveOrganization(ctx, attempt.OrganizationID)
	if err != nil {
		return nil, err
	}

	payment := &model.Payment{
		OrganizationID: org.ID,
		UserID:         user.ID,
		Amount:         attempt.Amount,
		Currency:       attempt.Currency,
		PaymentMethod:  attempt.PaymentMethod,
	}

	// Charging
	if p.testMode {
		payment.ProviderRef = attempt.ProviderRef
		if payment.ProviderRef == "" {
			payment.ProviderRef, _ = p.gateway.Charge(ctx, MinorUnits(attempt.Amount), attempt.Currency, []string{attempt.PaymentMethod})
		}
		payment.Status = attempt.Status
		if payment.Status == "" {
			payment.Status = model.StatusPending
		}
		return p.recordPayment(ctx, payment)
	}

	providerRef, chargeErr := p.gateway.Charge(ctx, MinorUnits(attempt.Amount), attempt.Currency, []string{attempt.PaymentMethod})
	if chargeErr != nil {
		// Recording on the failure path: the FAILED record is written
		// first, then the gateway's error is re-raised. Never swallowed.
		payment.Status = model.StatusFailed
		if _, recordErr := p.datasource.RecordPayment(ctx, payment); recordErr != nil {
			notification.NotifyError(recordErr)
			logrus.WithError(recordErr).Error("failed to record FAILED payment outcome")
		}
		notification.NotifyError(chargeErr)
		return nil, apierror.NewAPIError(apierror.ErrGateway, chargeErr.Error(), chargeErr)
	}

	// Recording
	payment.Status = model.StatusSuccess
	payment.ProviderRef = providerRef
	recorded, err := p.recordPayment(ctx, payment)
	if err != nil {
		// The charge went through; surface the reference so it is never
		// silently orphaned.
		return nil, apierror.NewAPIError(apierror.ErrInternalServer,
			fmt.Sprintf("charge %s captured but recording failed", providerRef), err)
	}
	return recorded, nil
}

func (p *Pawprint) recordPayment(ctx context.Context, payment *model.Payment) (*model.Payment, error) {
	recorded, err := p.datasource.RecordPayment(ctx, payment)
	if err != nil {
		notification.NotifyError(err)
		return nil, err
	}
	return recorded, nil
}

// GetPayment retrieves a payment record by its ID.
func (p *Pawprint) GetPayment(ctx context.Context, id int64) (*model.Payment, error) {
	return p.datasource.GetPaymentByID(ctx, id)
}

// GetAllPayments retrieves all payment records.
func (p *Pawprint) GetAllPayments(ctx context.Context) ([]model.Payment, error) {
	return p.datasource.GetAllPayments(ctx)
}

// GetPaymentsByUser retrieves all payment records for a user.
func (p *Pawprint) GetPaymentsByUser(ctx context.Context, userID int64) ([]model.Payment, error) {
	return p.datasource.GetPaymentsByUserID(ctx, userID)
}
