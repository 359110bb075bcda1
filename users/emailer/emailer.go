// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

// Package emailer dispatches account confirmation emails through the shared
// email agent.
package emailer

import (
	"fmt"

	"github.com/asterna/accounts/internal/email"
	"github.com/asterna/accounts/users"
)

var _ users.Emailer = (*emailer)(nil)

type emailer struct {
	confirmURL string
	agent      *email.Agent
}

// New creates a new emailer utility.
func New(url string, c *email.Config) (users.Emailer, error) {
	e, err := email.New(c)
	return &emailer{confirmURL: url, agent: e}, err
}

func (e *emailer) SendConfirmation(to []string, host, token string) error {
	url := fmt.Sprintf("%s%s?token=%s", host, e.confirmURL, token)
	return e.agent.Send(to, "", "Account confirmation", "", to[0], url, "")
}
