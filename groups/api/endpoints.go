// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"

	"github.com/asterna/accounts/groups"
	"github.com/asterna/accounts/pkg/apiutil"
	"github.com/asterna/accounts/pkg/errors"
	"github.com/go-kit/kit/endpoint"
)

func listGroupsEndpoint(svc groups.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(listGroupsReq)
		if err := req.validate(); err != nil {
			return groupPageRes{}, errors.Wrap(apiutil.ErrValidation, err)
		}

		page, err := svc.ListGroups(ctx, req.PageMeta)
		if err != nil {
			return groupPageRes{}, err
		}

		return buildGroupsResponse(page), nil
	}
}

func viewGroupEndpoint(svc groups.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(groupReq)
		if err := req.validate(); err != nil {
			return viewGroupRes{}, errors.Wrap(apiutil.ErrValidation, err)
		}

		group, err := svc.ViewGroup(ctx, req.id)
		if err != nil {
			return viewGroupRes{}, err
		}

		return toViewGroupRes(group), nil
	}
}

func createGroupEndpoint(svc groups.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(createGroupReq)
		if err := req.validate(); err != nil {
			return viewGroupRes{}, errors.Wrap(apiutil.ErrValidation, err)
		}

		group, err := svc.WriteGroup(ctx, "", req.payload)
		if err != nil {
			return viewGroupRes{}, err
		}

		return toViewGroupRes(group), nil
	}
}

func updateGroupEndpoint(svc groups.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(updateGroupReq)
		if err := req.validate(); err != nil {
			return viewGroupRes{}, errors.Wrap(apiutil.ErrValidation, err)
		}

		group, err := svc.WriteGroup(ctx, req.id, req.payload)
		if err != nil {
			return viewGroupRes{}, err
		}

		return toViewGroupRes(group), nil
	}
}

func deleteGroupEndpoint(svc groups.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(groupReq)
		if err := req.validate(); err != nil {
			return deleteGroupRes{}, errors.Wrap(apiutil.ErrValidation, err)
		}

		if err := svc.DeleteGroup(ctx, req.id); err != nil {
			return deleteGroupRes{}, err
		}

		return deleteGroupRes{Deleted: true}, nil
	}
}

func buildGroupsResponse(gp groups.Page) groupPageRes {
	res := groupPageRes{
		pageRes: pageRes{
			Total: gp.Total,
			Page:  gp.Page,
			Count: gp.Count,
		},
		Groups: []viewGroupRes{},
	}

	for _, group := range gp.Groups {
		res.Groups = append(res.Groups, toViewGroupRes(group))
	}

	return res
}
