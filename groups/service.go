// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

package groups

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
	groups     Repository
	binder     binding.Binder
	idProvider accounts.IDProvider
}

// NewService returns a new group service implementation.
func NewService(g Repository, b binding.Binder, idp accounts.IDProvider) Service {
	return service{
		groups:     g,
		binder:     b,
		idProvider: idp,
	}
}

func (svc service) ListGroups(ctx context.Context, pm PageMeta) (Page, error) {
	page, err := svc.groups.RetrieveAll(ctx, pm)
	if err != nil {
		return Page{}, errors.Wrap(svcerr.ErrViewEntity, err)
	}

	return page, nil
}

func (svc service) ViewGroup(ctx context.Context, id string) (Group, error) {
	return svc.findGroupOrFail(ctx, id)
}

// WriteGroup is the shared create/update pipeline. The only difference
// between the two is the first step: an empty id means a fresh, enabled
// group is the binding target instead of a fetched one.
func (svc service) WriteGroup(ctx context.Context, id string, payload []byte) (Group, error) {
	g := Group{Enabled: true}
	var stored Group
	if id != "" {
		var err error
		if stored, err = svc.findGroupOrFail(ctx, id); err != nil {
			return Group{}, err
		}
		g = stored
	}

	if err := svc.binder.Bind(ctx, payload, &g); err != nil {
		return Group{}, err
	}

	if id != "" {
		// The identifier and creation time are server-owned: a payload
		// carrying them must not rebind the fetched group.
		g.ID = stored.ID
		g.CreatedAt = stored.CreatedAt
		g.UpdatedAt = time.Now()
		group, err := svc.groups.Update(ctx, g)
		if err != nil {
			return Group{}, errors.Wrap(svcerr.ErrUpdateEntity, err)
		}
		return group, nil
	}

	gid, err := svc.idProvider.ID()
	if err != nil {
		return Group{}, errors.Wrap(svcerr.ErrUniqueID, err)
	}
	g.ID = gid
	g.CreatedAt = time.Now()

	group, err := svc.groups.Save(ctx, g)
	if err != nil {
		return Group{}, errors.Wrap(svcerr.ErrCreateEntity, err)
	}

	return group, nil
}

func (svc service) DeleteGroup(ctx context.Context, id string) error {
	if _, err := svc.findGroupOrFail(ctx, id); err != nil {
		return err
	}

	if err := svc.groups.Delete(ctx, id); err != nil {
		return errors.Wrap(svcerr.ErrRemoveEntity, err)
	}

	return nil
}

// findGroupOrFail is the single point of identifier resolution so that
// view, write and delete share the same not-found semantics.
func (svc service) findGroupOrFail(ctx context.Context, id string) (Group, error) {
	g, err := svc.groups.RetrieveByID(ctx, id)
	if err != nil {
		return Group{}, errors.Wrap(svcerr.ErrNotFound, errors.Wrap(fmt.Errorf("group %s does not exist", id), err))
	}

	return g, nil
}
