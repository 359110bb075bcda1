// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

// Package groups contains the group resource domain: the entity, the
// persistence contract and the service operating on both.
package groups

import (
	"context"
	"time"
)

// Metadata to be used for customized group description.
type Metadata map[string]interface{}

// Group represents a named set of user accounts.
type Group struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required,max=1024"`
	Enabled   bool      `json:"enabled"`
	Metadata  Metadata  `json:"metadata,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// PageMeta contains page metadata that helps navigation.
// Enabled is the only supported filter criterion; nil means the flag is
// not part of the criteria and does not filter.
type PageMeta struct {
	Total   uint64            `json:"total"`
	Page    uint64            `json:"page"`
	Count   uint64            `json:"count"`
	Sort    map[string]string `json:"sort,omitempty"`
	Enabled *bool             `json:"enabled,omitempty"`
}

// Page contains page related metadata as well as list
// of Groups that belong to the page.
type Page struct {
	PageMeta
	Groups []Group
}

// Repository specifies a group persistence API.
type Repository interface {
	// Save persists a new group.
	Save(ctx context.Context, g Group) (Group, error)

	// Update persists an updated group.
	Update(ctx context.Context, g Group) (Group, error)

	// RetrieveByID retrieves group by its id.
	RetrieveByID(ctx context.Context, id string) (Group, error)

	// RetrieveAll retrieves the page of groups matching the page metadata.
	RetrieveAll(ctx context.Context, pm PageMeta) (Page, error)

	// Delete removes the group with the given id.
	Delete(ctx context.Context, id string) error
}

// Service specifies an API that must be fullfiled by the group service
// implementation, and all of its decorators (e.g. logging & metrics).
type Service interface {
	// ListGroups retrieves a page of groups matching the page metadata.
	ListGroups(ctx context.Context, pm PageMeta) (Page, error)

	// ViewGroup retrieves data about the group identified by ID.
	ViewGroup(ctx context.Context, id string) (Group, error)

	// WriteGroup binds the submitted payload onto the group identified by
	// id, or onto a fresh group when id is empty, and persists the result.
	WriteGroup(ctx context.Context, id string, payload []byte) (Group, error)

	// DeleteGroup removes the group identified by the given id.
	DeleteGroup(ctx context.Context, id string) error
}
