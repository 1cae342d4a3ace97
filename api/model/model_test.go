package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCreatePayment(t *testing.T) {
	tests := []struct {
		name    string
		payment CreatePayment
		wantErr bool
	}{
		{
			name: "valid card payment",
			payment: CreatePayment{
				UserID:         "12",
				OrganizationID: "7",
				Amount:         19.99,
				Currency:       "eur",
				PaymentMethod:  "card",
				CardNumber:     "4242424242424242",
			},
			wantErr: false,
		},
		{
			name: "valid bank transfer without card number",
			payment: CreatePayment{
				UserID:         "12",
				OrganizationID: "7",
				Amount:         50,
				Currency:       "eur",
				PaymentMethod:  "virement_bancaire",
			},
			wantErr: false,
		},
		{
			name: "missing amount",
			payment: CreatePayment{
				UserID:         "12",
				OrganizationID: "7",
				Currency:       "eur",
				PaymentMethod:  "card",
			},
			wantErr: true,
		},
		{
			name: "unsupported payment method",
			payment: CreatePayment{
				UserID:         "12",
				OrganizationID: "7",
				Amount:         10,
				Currency:       "eur",
				PaymentMethod:  "cheque",
			},
			wantErr: true,
		},
		{
			name: "missing organization reference",
			payment: CreatePayment{
				UserID:        "12",
				Amount:        10,
				Currency:      "eur",
				PaymentMethod: "paypal",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payment.ValidateCreatePayment()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestToPaymentAttempt(t *testing.T) {
	p := CreatePayment{
		UserID:         "12",
		OrganizationID: "7",
		Amount:         19.99,
		Currency:       "eur",
		PaymentMethod:  "card",
		CardNumber:     "4242424242424242",
		Status:         "processing",
		ProviderRef:    "pi_abc",
	}

	attempt := p.ToPaymentAttempt()
	assert.Equal(t, "12", attempt.UserID)
	assert.Equal(t, "7", attempt.OrganizationID)
	assert.Equal(t, 19.99, attempt.Amount)
	assert.Equal(t, "card", attempt.PaymentMethod)
	assert.Equal(t, "processing", attempt.Status)
	assert.Equal(t, "pi_abc", attempt.ProviderRef)
}

func TestValidateCreateAnimal(t *testing.T) {
	valid := CreateAnimal{OrganizationID: 7, Type: "Dog"}
	assert.NoError(t, valid.ValidateCreateAnimal())

	missing := CreateAnimal{Name: "Bella"}
	assert.Error(t, missing.ValidateCreateAnimal())
}
