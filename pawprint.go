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
	"github.com/pawprint-hq/pawprint/config"
	"github.com/pawprint-hq/pawprint/database"
)

// Pawprint is the main service struct. The gateway, transport and
// petfinder clients are constructed once here and borrowed by every
// request; orchestrators hold no state of their own between invocations.
type Pawprint struct {
	datasource database.IDataSource
	gateway    PaymentGateway
	transport  MailTransport
	petfinder  *PetfinderClient
	testMode   bool
}

// NewPawprint initializes a new instance of Pawprint with the provided
// datasource. The payment gateway is chosen by the configuration's test
// mode switch: the stub in test mode, Stripe otherwise.
func NewPawprint(db database.IDataSource) (*Pawprint, error) {
	configuration, err := config.Fetch()
	if err != nil {
		return nil, err
	}

	var gateway PaymentGateway
	if configuration.Stripe.TestMode {
		gateway = NewStubGateway()
	} else {
		gateway = NewStripeGateway(configuration.Stripe.SecretKey)
	}

	transport := NewSMTPTransport(configuration.SMTP)
	petfinder := NewPetfinderClient(configuration.Petfinder)

	return &Pawprint{
		datasource: db,
		gateway:    gateway,
		transport:  transport,
		petfinder:  petfinder,
		testMode:   configuration.Stripe.TestMode,
	}, nil
}
