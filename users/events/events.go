// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

// Package events publishes account lifecycle events and hosts the
// registration handler consuming them.
package events

import (
	"time"

	"github.com/asterna/accounts/pkg/events"
	"github.com/asterna/accounts/users"
)

const (
	userPrefix   = "user."
	userRegister = userPrefix + "register"
	userConfirm  = userPrefix + "confirm"
	userRemove   = userPrefix + "remove"
)

var (
	_ events.Event = (*registerUserEvent)(nil)
	_ events.Event = (*confirmUserEvent)(nil)
	_ events.Event = (*removeUserEvent)(nil)
)

type registerUserEvent struct {
	users.User
}

func (rue registerUserEvent) Encode() (map[string]interface{}, error) {
	return map[string]interface{}{
		"operation":  userRegister,
		"id":         rue.ID,
		"email":      rue.Email,
		"token":      rue.ConfirmToken,
		"created_at": rue.CreatedAt.Format(time.RFC3339),
	}, nil
}

type confirmUserEvent struct {
	users.User
}

func (cue confirmUserEvent) Encode() (map[string]interface{}, error) {
	return map[string]interface{}{
		"operation": userConfirm,
		"id":        cue.ID,
		"email":     cue.Email,
	}, nil
}

type removeUserEvent struct {
	id string
}

func (rue removeUserEvent) Encode() (map[string]interface{}, error) {
	return map[string]interface{}{
		"operation": userRemove,
		"id":        rue.id,
	}, nil
}
