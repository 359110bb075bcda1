// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"context"

	"github.com/asterna/accounts/groups"
	"github.com/stretchr/testify/mock"
)

var _ groups.Service = (*Service)(nil)

type Service struct {
	mock.Mock
}

func (m *Service) ListGroups(ctx context.Context, pm groups.PageMeta) (groups.Page, error) {
	ret := m.Called(ctx, pm)

	return ret.Get(0).(groups.Page), ret.Error(1)
}

func (m *Service) ViewGroup(ctx context.Context, id string) (groups.Group, error) {
	ret := m.Called(ctx, id)

	return ret.Get(0).(groups.Group), ret.Error(1)
}

func (m *Service) WriteGroup(ctx context.Context, id string, payload []byte) (groups.Group, error) {
	ret := m.Called(ctx, id, payload)

	return ret.Get(0).(groups.Group), ret.Error(1)
}

func (m *Service) DeleteGroup(ctx context.Context, id string) error {
	ret := m.Called(ctx, id)

	return ret.Error(0)
}
