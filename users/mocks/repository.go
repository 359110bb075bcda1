// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"context"

	"github.com/asterna/accounts/users"
	"github.com/stretchr/testify/mock"
)

var _ users.Repository = (*Repository)(nil)

type Repository struct {
	mock.Mock
}

func (m *Repository) Save(ctx context.Context, u users.User) (users.User, error) {
	ret := m.Called(ctx, u)
	if err := ret.Error(1); err != nil {
		return users.User{}, err
	}

	return u, nil
}

func (m *Repository) Update(ctx context.Context, u users.User) (users.User, error) {
	ret := m.Called(ctx, u)
	if err := ret.Error(1); err != nil {
		return users.User{}, err
	}

	return u, nil
}

func (m *Repository) RetrieveByID(ctx context.Context, id string) (users.User, error) {
	ret := m.Called(ctx, id)

	return ret.Get(0).(users.User), ret.Error(1)
}

func (m *Repository) RetrieveByConfirmToken(ctx context.Context, token string) (users.User, error) {
	ret := m.Called(ctx, token)

	return ret.Get(0).(users.User), ret.Error(1)
}

func (m *Repository) RetrieveAll(ctx context.Context, pm users.PageMeta) (users.Page, error) {
	ret := m.Called(ctx, pm)

	return ret.Get(0).(users.Page), ret.Error(1)
}

func (m *Repository) Delete(ctx context.Context, id string) error {
	ret := m.Called(ctx, id)

	return ret.Error(0)
}
