// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

// Package hasher provides a hasher implementation utilising bcrypt.
package hasher

import (
	"github.com/asterna/accounts/pkg/errors"
	svcerr "github.com/asterna/accounts/pkg/errors/service"
	"github.com/asterna/accounts/users"
	"golang.org/x/crypto/bcrypt"
)

const cost int = 10

var _ users.Hasher = (*bcryptHasher)(nil)

type bcryptHasher struct{}

// New instantiates a bcrypt-based hasher implementation.
func New() users.Hasher {
	return &bcryptHasher{}
}

func (bh *bcryptHasher) Hash(pwd string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), cost)
	if err != nil {
		return "", errors.Wrap(svcerr.ErrMalformedEntity, err)
	}

	return string(hash), nil
}

func (bh *bcryptHasher) Compare(plain, hashed string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)); err != nil {
		return errors.Wrap(svcerr.ErrMalformedEntity, err)
	}

	return nil
}
