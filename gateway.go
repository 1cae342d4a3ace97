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

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"github.com/pawprint-hq/pawprint/model"
)

// PaymentGateway captures a charge with an external provider. Amount is
// in minor currency units. A single attempt per call: the gateway
// returns the provider's reference for the charge or the provider's
// error, never both.
type PaymentGateway interface {
	Charge(ctx context.Context, amountMinor int64, currency string, methodTypes []string) (string, error)
}

// MinorUnits converts a major-unit amount (19.99) to minor units (1999),
// rounding half away from zero at the cent boundary.
func MinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// StripeGateway captures charges as Stripe payment intents. The client
// is constructed once at startup and shared across requests.
type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(secretKey string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api}
}

func (g *StripeGateway) Charge(ctx context.Context, amountMinor int64, currency string, methodTypes []string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountMinor),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice(methodTypes),
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return intent.ID, nil
}

// StubGateway stands in for the live provider in test mode. Every call
// synthesizes a fresh provider reference; identical inputs produce
// independent references because no deduplication is performed.
type StubGateway struct{}

func NewStubGateway() *StubGateway {
	return &StubGateway{}
}

func (g *StubGateway) Charge(_ context.Context, _ int64, _ string, _ []string) (string, error) {
	return model.GenerateUUIDWithPrefix("pi_test"), nil
}
