// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	"github.com/asterna/accounts/users"
	"github.com/stretchr/testify/mock"
)

var _ users.Emailer = (*Emailer)(nil)

type Emailer struct {
	mock.Mock
}

func (m *Emailer) SendConfirmation(to []string, host, token string) error {
	ret := m.Called(to, host, token)

	return ret.Error(0)
}
