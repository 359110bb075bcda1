// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

package users

import (
	"context"
	"fmt"
	"time"

	"github.com/asterna/accounts"
	"github.com/asterna/accounts/pkg/binding"
	"github.com/asterna/accounts/pkg/errors"
	svcerr "github.com/asterna/accounts/pkg/errors/service"
)

type service struct {
	users      Repository
	binder     binding.Binder
	hasher     Hasher
	idProvider accounts.IDProvider
}

// NewService returns a new user service implementation.
func NewService(u Repository, b binding.Binder, h Hasher, idp accounts.IDProvider) Service {
	return service{
		users:      u,
		binder:     b,
		hasher:     h,
		idProvider: idp,
	}
}

func (svc service) ListUsers(ctx context.Context, pm PageMeta) (Page, error) {
	page, err := svc.users.RetrieveAll(ctx, pm)
	if err != nil {
		return Page{}, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	return page, nil
}

func (svc service) ViewUser(ctx context.Context, id string) (User, error) {
	return svc.findUserOrFail(ctx, id)
}

func (svc service) WriteUser(ctx context.Context, id string, payload []byte) (User, error) {
	if id == "" {
		return svc.register(ctx, payload)
	}

	stored, err := svc.findUserOrFail(ctx, id)
	if err != nil {
		return User{}, err
	}

	u := stored
	if err := svc.binder.Bind(ctx, payload, &u); err != nil {
		return User{}, err
	}

	// A bound password differing from the stored hash is a plain-text
	// replacement and must be hashed before it is persisted.
	if u.Password != stored.Password {
		hash, err := svc.hasher.Hash(u.Password)
		if err != nil {
			return User{}, errors.Wrap(svcerr.ErrMalformedEntity, err)
		}
		u.Password = hash
	}
	// The identifier, creation time and enablement state are server-owned:
	// confirmation is the only way an account becomes enabled, so a payload
	// carrying them must not rebind the fetched user.
	u.ID = stored.ID
	u.CreatedAt = stored.CreatedAt
	u.Enabled = stored.Enabled
	u.ConfirmToken = stored.ConfirmToken
	u.UpdatedAt = time.Now()

	user, err := svc.users.Update(ctx, u)
	if err != nil {
		return User{}, errors.Wrap(svcerr.ErrUpdateEntity, err)
	}

	return user, nil
}

// register creates a disabled account holding a hashed password and a fresh
// confirmation token. The account stays disabled until the token comes back
// through ConfirmUser.
func (svc service) register(ctx context.Context, payload []byte) (User, error) {
	var u User
	if err := svc.binder.Bind(ctx, payload, &u); err != nil {
		return User{}, err
	}

	hash, err := svc.hasher.Hash(u.Password)
	if err != nil {
		return User{}, errors.Wrap(svcerr.ErrMalformedEntity, err)
	}
	u.Password = hash

	uid, err := svc.idProvider.ID()
	if err != nil {
		return User{}, errors.Wrap(svcerr.ErrUniqueID, err)
	}
	u.ID = uid

	token, err := svc.idProvider.ID()
	if err != nil {
		return User{}, errors.Wrap(svcerr.ErrRecoveryToken, err)
	}
	u.ConfirmToken = token

	u.Enabled = false
	u.CreatedAt = time.Now()

	user, err := svc.users.Save(ctx, u)
	if err != nil {
		return User{}, errors.Wrap(svcerr.ErrCreateEntity, err)
	}

	return user, nil
}

func (svc service) ConfirmUser(ctx context.Context, token string) (User, error) {
	u, err := svc.users.RetrieveByConfirmToken(ctx, token)
	if err != nil {
		return User{}, errors.Wrap(svcerr.ErrNotFound, err)
	}

	u.Enabled = true
	u.ConfirmToken = ""
	u.UpdatedAt = time.Now()

	user, err := svc.users.Update(ctx, u)
	if err != nil {
		return User{}, errors.Wrap(svcerr.ErrUpdateEntity, err)
	}

	return user, nil
}

func (svc service) DeleteUser(ctx context.Context, id string) error {
	if _, err := svc.findUserOrFail(ctx, id); err != nil {
		return err
	}

	if err := svc.users.Delete(ctx, id); err != nil {
		return errors.Wrap(svcerr.ErrRemoveEntity, err)
	}

	return nil
}

func (svc service) findUserOrFail(ctx context.Context, id string) (User, error) {
	u, err := svc.users.RetrieveByID(ctx, id)
	if err != nil {
		return User{}, errors.Wrap(svcerr.ErrNotFound, errors.Wrap(fmt.Errorf("user %s does not exist", id), err))
	}

	return u, nil
}
