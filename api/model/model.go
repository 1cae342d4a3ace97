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

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func (p *CreatePayment) ValidateCreatePayment() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.UserID, validation.Required),
		validation.Field(&p.OrganizationID, validation.Required),
		validation.Field(&p.Amount, validation.Required, validation.Min(0.01)),
		validation.Field(&p.Currency, validation.Required),
		validation.Field(&p.PaymentMethod, validation.Required,
			validation.In("card", "carte_bancaire", "paypal", "virement_bancaire")),
	)
}

func (u *CreateUser) ValidateCreateUser() error {
	return validation.ValidateStruct(u,
		validation.Field(&u.Name, validation.Required),
	)
}

func (o *CreateOrganization) ValidateCreateOrganization() error {
	return validation.ValidateStruct(o,
		validation.Field(&o.Name, validation.Required),
	)
}

func (a *CreateAnimal) ValidateCreateAnimal() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.OrganizationID, validation.Required),
		validation.Field(&a.Type, validation.Required),
	)
}
