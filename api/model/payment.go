package model

import "github.com/pawprint-hq/pawprint/model"

type CreatePayment struct {
	UserID         string  `json:"user_id"`
	OrganizationID string  `json:"organization_id"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
	PaymentMethod  string  `json:"payment_method"`
	CardNumber     string  `json:"card_number,omitempty"`
	Status         string  `json:"status,omitempty"`
	ProviderRef    string  `json:"provider_ref,omitempty"`
}

func (p *CreatePayment) ToPaymentAttempt() model.PaymentAttempt {
	return model.PaymentAttempt{
		UserID:         p.UserID,
		OrganizationID: p.OrganizationID,
		Amount:         p.Amount,
		Currency:       p.Currency,
		PaymentMethod:  p.PaymentMethod,
		CardNumber:     p.CardNumber,
		Status:         p.Status,
		ProviderRef:    p.ProviderRef,
	}
}
