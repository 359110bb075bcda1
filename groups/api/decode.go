// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/asterna/accounts/groups"
	"github.com/asterna/accounts/internal/api"
	"github.com/asterna/accounts/pkg/apiutil"
	"github.com/asterna/accounts/pkg/errors"
	"github.com/go-chi/chi/v5"
)

func decodeListGroupsRequest(_ context.Context, r *http.Request) (interface{}, error) {
	pm, err := decodePageMeta(r)
	if err != nil {
		return nil, err
	}

	return listGroupsReq{PageMeta: pm}, nil
}

func decodeGroupRequest(_ context.Context, r *http.Request) (interface{}, error) {
	req := groupReq{
		id: chi.URLParam(r, "groupID"),
	}

	return req, nil
}

func decodeGroupCreate(_ context.Context, r *http.Request) (interface{}, error) {
	if !strings.Contains(r.Header.Get("Content-Type"), api.ContentType) {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, errors.Wrap(apiutil.ErrMalformedEntity, err))
	}

	return createGroupReq{payload: payload}, nil
}

func decodeGroupUpdate(_ context.Context, r *http.Request) (interface{}, error) {
	if !strings.Contains(r.Header.Get("Content-Type"), api.ContentType) {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, errors.Wrap(apiutil.ErrMalformedEntity, err))
	}
	req := updateGroupReq{
		id:      chi.URLParam(r, "groupID"),
		payload: payload,
	}

	return req, nil
}

// decodePageMeta translates the raw list query parameters into page
// metadata. Only the enabled flag survives into the filter criteria;
// unsupported filter keys are silently dropped.
func decodePageMeta(r *http.Request) (groups.PageMeta, error) {
	page, err := apiutil.ReadNumQuery[uint64](r, api.PageKey, api.DefPage)
	if err != nil {
		return groups.PageMeta{}, errors.Wrap(apiutil.ErrValidation, err)
	}
	count, err := apiutil.ReadNumQuery[uint64](r, api.CountKey, api.DefCount)
	if err != nil {
		return groups.PageMeta{}, errors.Wrap(apiutil.ErrValidation, err)
	}
	sort, err := apiutil.ReadMapQuery(r, api.OrderByKey, api.AscDir)
	if err != nil {
		return groups.PageMeta{}, errors.Wrap(apiutil.ErrValidation, err)
	}
	enabled, err := apiutil.ReadFlagQuery(r, api.EnabledKey)
	if err != nil {
		return groups.PageMeta{}, errors.Wrap(apiutil.ErrValidation, err)
	}

	ret := groups.PageMeta{
		Page:    page,
		Count:   count,
		Sort:    sort,
		Enabled: enabled,
	}
	return ret, nil
}
