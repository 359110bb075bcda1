// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"context"

	"github.com/asterna/accounts/groups"
	"github.com/stretchr/testify/mock"
)

var _ groups.Repository = (*Repository)(nil)

type Repository struct {
	mock.Mock
}

func (m *Repository) Save(ctx context.Context, g groups.Group) (groups.Group, error) {
	ret := m.Called(ctx, g)
	if err := ret.Error(1); err != nil {
		return groups.Group{}, err
	}

	return g, nil
}

func (m *Repository) Update(ctx context.Context, g groups.Group) (groups.Group, error) {
	ret := m.Called(ctx, g)
	if err := ret.Error(1); err != nil {
		return groups.Group{}, err
	}

	return g, nil
}

func (m *Repository) RetrieveByID(ctx context.Context, id string) (groups.Group, error) {
	ret := m.Called(ctx, id)

	return ret.Get(0).(groups.Group), ret.Error(1)
}

func (m *Repository) RetrieveAll(ctx context.Context, pm groups.PageMeta) (groups.Page, error) {
	ret := m.Called(ctx, pm)

	return ret.Get(0).(groups.Page), ret.Error(1)
}

func (m *Repository) Delete(ctx context.Context, id string) error {
	ret := m.Called(ctx, id)

	return ret.Error(0)
}
