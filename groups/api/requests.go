// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"github.com/asterna/accounts/groups"
	"github.com/asterna/accounts/internal/api"
	"github.com/asterna/accounts/pkg/apiutil"
)

type listGroupsReq struct {
	groups.PageMeta
}

func (req listGroupsReq) validate() error {
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

type groupReq struct {
	id string
}

func (req groupReq) validate() error {
	if req.id == "" {
		return apiutil.ErrMissingID
	}

	return nil
}

type createGroupReq struct {
	payload []byte
}

func (req createGroupReq) validate() error {
	if len(req.payload) == 0 {
		return apiutil.ErrMalformedEntity
	}

	return nil
}

type updateGroupReq struct {
	id      string
	payload []byte
}

func (req updateGroupReq) validate() error {
	if req.id == "" {
		return apiutil.ErrMissingID
	}
	if len(req.payload) == 0 {
		return apiutil.ErrMalformedEntity
	}

	return nil
}
