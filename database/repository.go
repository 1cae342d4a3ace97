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

	"github.com/pawprint-hq/pawprint/model"
)

// IDataSource defines the interface for data source operations, grouping related functionalities.
type IDataSource interface {
	user         // Interface for user-related operations
	organization // Interface for organization-related operations
	animal       // Interface for animal-related operations
	payment      // Interface for payment outcome records
	mail         // Interface for mail outcome records
}

// user defines methods for handling users.
type user interface {
	CreateUser(user model.User) (model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	GetAllUsers() ([]model.User, error)
}

// organization defines methods for handling organizations.
type organization interface {
	CreateOrganization(org model.Organization) (model.Organization, error)
	GetOrganizationByID(ctx context.Context, id int64) (*model.Organization, error)
	GetAllOrganizations() ([]model.Organization, error)
}

// animal defines methods for handling animals.
type animal interface {
	CreateAnimal(animal model.Animal) (model.Animal, error)
	GetAnimalByID(ctx context.Context, id int64) (*model.Animal, error)
	GetAllAnimals() ([]model.Animal, error)
}

// payment defines methods for payment outcome records. Records are
// append-only: there is no update or delete.
type payment interface {
	RecordPayment(ctx context.Context, payment *model.Payment) (*model.Payment, error)
	GetPaymentByID(ctx context.Context, id int64) (*model.Payment, error)
	GetAllPayments(ctx context.Context) ([]model.Payment, error)
	GetPaymentsByUserID(ctx context.Context, userID int64) ([]model.Payment, error)
}

// mail defines methods for mail outcome records. Append-only as well.
type mail interface {
	RecordMail(ctx context.Context, mail *model.Mail) (*model.Mail, error)
	GetAllMails(ctx context.Context) ([]model.Mail, error)
}
