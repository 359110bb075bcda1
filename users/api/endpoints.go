// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"

	"github.com/asterna/accounts/pkg/apiutil"
	"github.com/asterna/accounts/pkg/errors"
	"github.com/asterna/accounts/users"
	"github.com/go-kit/kit/endpoint"
)

func listUsersEndpoint(svc users.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(listUsersReq)
		if err := req.validate(); err != nil {
			return userPageRes{}, errors.Wrap(apiutil.ErrValidation, err)
		}

		page, err := svc.ListUsers(ctx, req.PageMeta)
		if err != nil {
			return userPageRes{}, err
		}

		return buildUsersResponse(page), nil
	}
}

func viewUserEndpoint(svc users.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(userReq)
		if err := req.validate(); err != nil {
			return viewUserRes{}, errors.Wrap(apiutil.ErrValidation, err)
		}

		user, err := svc.ViewUser(ctx, req.id)
		if err != nil {
			return viewUserRes{}, err
		}

		return toViewUserRes(user), nil
	}
}

func registerUserEndpoint(svc users.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(registerUserReq)
		if err := req.validate(); err != nil {
			return viewUserRes{}, errors.Wrap(apiutil.ErrValidation, err)
		}

		user, err := svc.WriteUser(ctx, "", req.payload)
		if err != nil {
			return viewUserRes{}, err
		}

		res := toViewUserRes(user)
		res.created = true

		return res, nil
	}
}

func updateUserEndpoint(svc users.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(updateUserReq)
		if err := req.validate(); err != nil {
			return viewUserRes{}, errors.Wrap(apiutil.ErrValidation, err)
		}

		user, err := svc.WriteUser(ctx, req.id, req.payload)
		if err != nil {
			return viewUserRes{}, err
		}

		return toViewUserRes(user), nil
	}
}

func confirmUserEndpoint(svc users.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(confirmUserReq)
		if err := req.validate(); err != nil {
			return viewUserRes{}, errors.Wrap(apiutil.ErrValidation, err)
		}

		user, err := svc.ConfirmUser(ctx, req.Token)
		if err != nil {
			return viewUserRes{}, err
		}

		return toViewUserRes(user), nil
	}
}

func deleteUserEndpoint(svc users.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(userReq)
		if err := req.validate(); err != nil {
			return deleteUserRes{}, errors.Wrap(apiutil.ErrValidation, err)
		}

		if err := svc.DeleteUser(ctx, req.id); err != nil {
			return deleteUserRes{}, err
		}

		return deleteUserRes{Deleted: true}, nil
	}
}

func buildUsersResponse(up users.Page) userPageRes {
	res := userPageRes{
		pageRes: pageRes{
			Total: up.Total,
			Page:  up.Page,
			Count: up.Count,
		},
		Users: []viewUserRes{},
	}

	for _, user := range up.Users {
		res.Users = append(res.Users, toViewUserRes(user))
	}

	return res
}
