// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

// Package users holds the account entity, its persistence contract and the
// registration and maintenance operations exposed over HTTP.
package users

import (
	"context"
	"time"
)

// User represents a registered account. The password holds the bcrypt hash
// once the account passes through the registration pipeline; neither it nor
// the confirmation token ever leave the service.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email" validate:"required,email"`
	Password     string    `json:"password,omitempty" validate:"required,min=8,max=72"`
	Enabled      bool      `json:"enabled"`
	ConfirmToken string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
}

// PageMeta contains page metadata that helps navigation.
type PageMeta struct {
	Total   uint64            `json:"total"`
	Page    uint64            `json:"page"`
	Count   uint64            `json:"count"`
	Sort    map[string]string `json:"sort,omitempty"`
	Enabled *bool             `json:"enabled,omitempty"`
}

// Page contains a page of users.
type Page struct {
	PageMeta
	Users []User
}

// Hasher specifies an API for generating hashes of an arbitrary textual
// content.
type Hasher interface {
	// Hash generates the hashed string from plain-text.
	Hash(string) (string, error)

	// Compare compares plain-text version to the hashed one. An error should
	// indicate failed comparison.
	Compare(string, string) error
}

// Emailer wrapper around the email agent.
type Emailer interface {
	// SendConfirmation sends the account confirmation link built from the
	// given host and token.
	SendConfirmation(to []string, host, token string) error
}

// Repository specifies an account persistence API.
type Repository interface {
	// Save persists the user. A non-nil error is returned to indicate an
	// operation failure or an already taken email.
	Save(ctx context.Context, u User) (User, error)

	// Update updates the user identified by its ID.
	Update(ctx context.Context, u User) (User, error)

	// RetrieveByID retrieves the user identified by its ID.
	RetrieveByID(ctx context.Context, id string) (User, error)

	// RetrieveByConfirmToken retrieves the user holding the given
	// confirmation token.
	RetrieveByConfirmToken(ctx context.Context, token string) (User, error)

	// RetrieveAll retrieves a page of users restricted by the page metadata.
	RetrieveAll(ctx context.Context, pm PageMeta) (Page, error)

	// Delete removes the user identified by its ID.
	Delete(ctx context.Context, id string) error
}

// Service specifies the account operations API.
type Service interface {
	// ListUsers retrieves a page of users restricted by the page metadata.
	ListUsers(ctx context.Context, pm PageMeta) (Page, error)

	// ViewUser retrieves the user identified by the given ID.
	ViewUser(ctx context.Context, id string) (User, error)

	// WriteUser is the single write pipeline. An empty id registers a new
	// disabled account with a hashed password and a fresh confirmation
	// token; otherwise the payload is bound onto the stored user and the
	// result persisted.
	WriteUser(ctx context.Context, id string, payload []byte) (User, error)

	// ConfirmUser resolves the confirmation token, enables the account and
	// discards the token.
	ConfirmUser(ctx context.Context, token string) (User, error)

	// DeleteUser removes the user identified by the given ID.
	DeleteUser(ctx context.Context, id string) error
}
