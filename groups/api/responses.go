// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"net/http"
	"time"

	"github.com/asterna/accounts"
	"github.com/asterna/accounts/groups"
)

var (
	_ accounts.Response = (*viewGroupRes)(nil)
	_ accounts.Response = (*groupPageRes)(nil)
	_ accounts.Response = (*deleteGroupRes)(nil)
)

// viewGroupRes is the read projection of a group: an explicit allow-list
// of attributes with no relation expansion.
type viewGroupRes struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Enabled   bool            `json:"enabled"`
	Metadata  groups.Metadata `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at,omitempty"`
}

func toViewGroupRes(g groups.Group) viewGroupRes {
	return viewGroupRes{
		ID:        g.ID,
		Name:      g.Name,
		Enabled:   g.Enabled,
		Metadata:  g.Metadata,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

func (res viewGroupRes) Code() int {
	return http.StatusOK
}

func (res viewGroupRes) Headers() map[string]string {
	return map[string]string{}
}

func (res viewGroupRes) Empty() bool {
	return false
}

type pageRes struct {
	Total uint64 `json:"total"`
	Page  uint64 `json:"page"`
	Count uint64 `json:"count"`
}

type groupPageRes struct {
	pageRes
	Groups []viewGroupRes `json:"groups"`
}

func (res groupPageRes) Code() int {
	return http.StatusOK
}

func (res groupPageRes) Headers() map[string]string {
	return map[string]string{}
}

func (res groupPageRes) Empty() bool {
	return false
}

type deleteGroupRes struct {
	Deleted bool `json:"deleted"`
}

func (res deleteGroupRes) Code() int {
	return http.StatusOK
}

func (res deleteGroupRes) Headers() map[string]string {
	return map[string]string{}
}

func (res deleteGroupRes) Empty() bool {
	return false
}
