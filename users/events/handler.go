// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

package events

import (
	"context"
	"log/slog"

	"github.com/asterna/accounts/pkg/errors"
	"github.com/asterna/accounts/pkg/events"
	"github.com/asterna/accounts/users"
)

var errMissingRecipient = errors.New("registration event carries no email")

var _ events.EventHandler = (*registrationHandler)(nil)

// registrationHandler reacts to completed registrations by dispatching the
// confirmation email. It runs off the event stream so that mail delivery
// never blocks the registration request itself.
type registrationHandler struct {
	emailer users.Emailer
	host    string
	logger  *slog.Logger
}

// NewRegistrationHandler returns an event handler sending a confirmation
// link for every registered account.
func NewRegistrationHandler(emailer users.Emailer, host string, logger *slog.Logger) events.EventHandler {
	return &registrationHandler{
		emailer: emailer,
		host:    host,
		logger:  logger,
	}
}

func (h *registrationHandler) Handle(ctx context.Context, event events.Event) error {
	msg, err := event.Encode()
	if err != nil {
		return err
	}

	if op := events.Read(msg, "operation", ""); op != userRegister {
		return nil
	}

	email := events.Read(msg, "email", "")
	if email == "" {
		return errMissingRecipient
	}
	token := events.Read(msg, "token", "")

	if err := h.emailer.SendConfirmation([]string{email}, h.host, token); err != nil {
		h.logger.Warn("failed to send confirmation email", slog.String("email", email), slog.Any("error", err))
		return err
	}
	h.logger.Info("confirmation email sent", slog.String("email", email))

	return nil
}
