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
package mocks

import (
	"context"

	"github.com/pawprint-hq/pawprint/model"
	"github.com/stretchr/testify/mock"
)

// MockDataSource is a mock implementation of the IDataSource interface
type MockDataSource struct {
	mock.Mock
}

// User methods

func (m *MockDataSource) CreateUser(user model.User) (model.User, error) {
	args := m.Called(user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockDataSource) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockDataSource) GetAllUsers() ([]model.User, error) {
	args := m.Called()
	return args.Get(0).([]model.User), args.Error(1)
}

// Organization methods

func (m *MockDataSource) CreateOrganization(org model.Organization) (model.Organization, error) {
	args := m.Called(org)
	return args.Get(0).(model.Organization), args.Error(1)
}

func (m *MockDataSource) GetOrganizationByID(ctx context.Context, id int64) (*model.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Organization), args.Error(1)
}

func (m *MockDataSource) GetAllOrganizations() ([]model.Organization, error) {
	args := m.Called()
	return args.Get(0).([]model.Organization), args.Error(1)
}

// Animal methods

func (m *MockDataSource) CreateAnimal(animal model.Animal) (model.Animal, error) {
	args := m.Called(animal)
	return args.Get(0).(model.Animal), args.Error(1)
}

func (m *MockDataSource) GetAnimalByID(ctx context.Context, id int64) (*model.Animal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Animal), args.Error(1)
}

func (m *MockDataSource) GetAllAnimals() ([]model.Animal, error) {
	args := m.Called()
	return args.Get(0).([]model.Animal), args.Error(1)
}

// Payment methods

func (m *MockDataSource) RecordPayment(ctx context.Context, payment *model.Payment) (*model.Payment, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *MockDataSource) GetPaymentByID(ctx context.Context, id int64) (*model.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *MockDataSource) GetAllPayments(ctx context.Context) ([]model.Payment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Payment), args.Error(1)
}

func (m *MockDataSource) GetPaymentsByUserID(ctx context.Context, userID int64) ([]model.Payment, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.Payment), args.Error(1)
}

// Mail methods

func (m *MockDataSource) RecordMail(ctx context.Context, mail *model.Mail) (*model.Mail, error) {
	args := m.Called(ctx, mail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Mail), args.Error(1)
}

func (m *MockDataSource) GetAllMails(ctx context.Context) ([]model.Mail, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Mail), args.Error(1)
}
