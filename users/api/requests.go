// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"github.com/asterna/accounts/internal/api"
	"github.com/asterna/accounts/pkg/apiutil"
	"github.com/asterna/accounts/users"
)

type listUsersReq struct {
	users.PageMeta
}

func (req listUsersReq) validate() error {
	if req.Page < 1 {
		return apiutil.ErrPageSize
	}
	if req.Count < 1 || req.Count > api.MaxLimitSize {
		return apiutil.ErrLimitSize
	}
	for _, dir := range req.Sort {
		if dir != api.AscDir && dir != api.DescDir {
			return apiutil.ErrInvalidDirection
		}
	}

	return nil
}

type userReq struct {
	id string
}

func (req userReq) validate() error {
	if req.id == "" {
		return apiutil.ErrMissingID
	}

	return nil
}

type registerUserReq struct {
	payload []byte
}

func (req registerUserReq) validate() error {
	if len(req.payload) == 0 {
		return apiutil.ErrMalformedEntity
	}

	return nil
}

type updateUserReq struct {
	id      string
	payload []byte
}

func (req updateUserReq) validate() error {
	if req.id == "" {
		return apiutil.ErrMissingID
	}
	if len(req.payload) == 0 {
		return apiutil.ErrMalformedEntity
	}

	return nil
}

type confirmUserReq struct {
	Token string `json:"token"`
}

func (req confirmUserReq) validate() error {
	if req.Token == "" {
		return apiutil.ErrMissingConfToken
	}

	return nil
}
