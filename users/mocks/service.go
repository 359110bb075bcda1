// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"context"

	"github.com/asterna/accounts/users"
	"github.com/stretchr/testify/mock"
)

var _ users.Service = (*Service)(nil)

type Service struct {
	mock.Mock
}

func (m *Service) ListUsers(ctx context.Context, pm users.PageMeta) (users.Page, error) {
	ret := m.Called(ctx, pm)

	return ret.Get(0).(users.Page), ret.Error(1)
}

func (m *Service) ViewUser(ctx context.Context, id string) (users.User, error) {
	ret := m.Called(ctx, id)

	return ret.Get(0).(users.User), ret.Error(1)
}

func (m *Service) WriteUser(ctx context.Context, id string, payload []byte) (users.User, error) {
	ret := m.Called(ctx, id, payload)

	return ret.Get(0).(users.User), ret.Error(1)
}

func (m *Service) ConfirmUser(ctx context.Context, token string) (users.User, error) {
	ret := m.Called(ctx, token)

	return ret.Get(0).(users.User), ret.Error(1)
}

func (m *Service) DeleteUser(ctx context.Context, id string) error {
	ret := m.Called(ctx, id)

	return ret.Error(0)
}
