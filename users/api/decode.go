// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/asterna/accounts/internal/api"
	"github.com/asterna/accounts/pkg/apiutil"
	"github.com/asterna/accounts/pkg/errors"
	"github.com/asterna/accounts/users"
	"github.com/go-chi/chi/v5"
)

func decodeListUsersRequest(_ context.Context, r *http.Request) (interface{}, error) {
	pm, err := decodePageMeta(r)
	if err != nil {
		return nil, err
	}

	return listUsersReq{PageMeta: pm}, nil
}

func decodeUserRequest(_ context.Context, r *http.Request) (interface{}, error) {
	req := userReq{
		id: chi.URLParam(r, "userID"),
	}

	return req, nil
}

func decodeUserRegister(_ context.Context, r *http.Request) (interface{}, error) {
	payload, err := readJSONBody(r)
	if err != nil {
		return nil, err
	}

	return registerUserReq{payload: payload}, nil
}

func decodeUserUpdate(_ context.Context, r *http.Request) (interface{}, error) {
	payload, err := readJSONBody(r)
	if err != nil {
		return nil, err
	}
	req := updateUserReq{
		id:      chi.URLParam(r, "userID"),
		payload: payload,
	}

	return req, nil
}

func decodeUserConfirm(_ context.Context, r *http.Request) (interface{}, error) {
	payload, err := readJSONBody(r)
	if err != nil {
		return nil, err
	}
	var req confirmUserReq
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, errors.Wrap(apiutil.ErrMalformedEntity, err))
	}

	return req, nil
}

func readJSONBody(r *http.Request) ([]byte, error) {
	if !strings.Contains(r.Header.Get("Content-Type"), api.ContentType) {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, errors.Wrap(apiutil.ErrMalformedEntity, err))
	}

	return payload, nil
}

func decodePageMeta(r *http.Request) (users.PageMeta, error) {
	page, err := apiutil.ReadNumQuery[uint64](r, api.PageKey, api.DefPage)
	if err != nil {
		return users.PageMeta{}, errors.Wrap(apiutil.ErrValidation, err)
	}
	count, err := apiutil.ReadNumQuery[uint64](r, api.CountKey, api.DefCount)
	if err != nil {
		return users.PageMeta{}, errors.Wrap(apiutil.ErrValidation, err)
	}
	sort, err := apiutil.ReadMapQuery(r, api.OrderByKey, api.AscDir)
	if err != nil {
		return users.PageMeta{}, errors.Wrap(apiutil.ErrValidation, err)
	}
	enabled, err := apiutil.ReadFlagQuery(r, api.EnabledKey)
	if err != nil {
		return users.PageMeta{}, errors.Wrap(apiutil.ErrValidation, err)
	}

	ret := users.PageMeta{
		Page:    page,
		Count:   count,
		Sort:    sort,
		Enabled: enabled,
	}
	return ret, nil
}
