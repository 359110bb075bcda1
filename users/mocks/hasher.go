// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	svcerr "github.com/asterna/accounts/pkg/errors/service"
	"github.com/asterna/accounts/users"
)

const hashSuffix = "-hashed"

var _ users.Hasher = (*hasherMock)(nil)

type hasherMock struct{}

// NewHasher returns a deterministic hasher for tests: the hash of a value
// is the value with a fixed suffix.
func NewHasher() users.Hasher {
	return &hasherMock{}
}

func (hm *hasherMock) Hash(pwd string) (string, error) {
	return pwd + hashSuffix, nil
}

func (hm *hasherMock) Compare(plain, hashed string) error {
	if hashed != plain+hashSuffix {
		return svcerr.ErrMalformedEntity
	}

	return nil
}
