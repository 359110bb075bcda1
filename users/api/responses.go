// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"net/http"
	"time"

	"github.com/asterna/accounts"
	"github.com/asterna/accounts/users"
)

var (
	_ accounts.Response = (*viewUserRes)(nil)
	_ accounts.Response = (*userPageRes)(nil)
	_ accounts.Response = (*deleteUserRes)(nil)
)

// viewUserRes is the read projection of a user. The password hash and the
// confirmation token never appear in it.
type viewUserRes struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`

	created bool
}

func toViewUserRes(u users.User) viewUserRes {
	return viewUserRes{
		ID:        u.ID,
		Email:     u.Email,
		Enabled:   u.Enabled,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (res viewUserRes) Code() int {
	if res.created {
		return http.StatusCreated
	}

	return http.StatusOK
}

func (res viewUserRes) Headers() map[string]string {
	return map[string]string{}
}

func (res viewUserRes) Empty() bool {
	return false
}

type pageRes struct {
	Total uint64 `json:"total"`
	Page  uint64 `json:"page"`
	Count uint64 `json:"count"`
}

type userPageRes struct {
	pageRes
	Users []viewUserRes `json:"users"`
}

func (res userPageRes) Code() int {
	return http.StatusOK
}

func (res userPageRes) Headers() map[string]string {
	return map[string]string{}
}

func (res userPageRes) Empty() bool {
	return false
}

type deleteUserRes struct {
	Deleted bool `json:"deleted"`
}

func (res deleteUserRes) Code() int {
	return http.StatusOK
}

func (res deleteUserRes) Headers() map[string]string {
	return map[string]string{}
}

func (res deleteUserRes) Empty() bool {
	return false
}
