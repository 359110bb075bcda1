// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

package events_test

import (
	"context"
	"testing"

	"github.com/asterna/accounts/logger"
	svcerr "github.com/asterna/accounts/pkg/errors/service"
	"github.com/asterna/accounts/users/events"
	"github.com/asterna/accounts/users/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const host = "http://localhost"

type mapEvent map[string]interface{}

func (me mapEvent) Encode() (map[string]interface{}, error) {
	return me, nil
}

func TestHandleRegistration(t *testing.T) {
	cases := []struct {
		desc    string
		event   mapEvent
		sendErr error
		sent    bool
		err     error
		to      string
		token   string
	}{
		{
			desc: "registration event dispatches the confirmation email",
			event: mapEvent{
				"operation": "user.register",
				"id":        "user-1",
				"email":     "jane.doe@example.com",
				"token":     "tok-1",
			},
			sent:  true,
			to:    "jane.doe@example.com",
			token: "tok-1",
		},
		{
			desc: "non-registration event is skipped",
			event: mapEvent{
				"operation": "user.remove",
				"id":        "user-1",
			},
			sent: false,
		},
		{
			desc: "registration event without recipient fails",
			event: mapEvent{
				"operation": "user.register",
				"id":        "user-1",
			},
			sent: false,
			err:  assert.AnError,
		},
		{
			desc: "mail delivery failure is propagated",
			event: mapEvent{
				"operation": "user.register",
				"email":     "jane.doe@example.com",
				"token":     "tok-1",
			},
			sendErr: svcerr.ErrCreateEntity,
			sent:    true,
			err:     svcerr.ErrCreateEntity,
			to:      "jane.doe@example.com",
			token:   "tok-1",
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			emailer := new(mocks.Emailer)
			emailer.On("SendConfirmation", mock.Anything, host, mock.Anything).Return(tc.sendErr)
			handler := events.NewRegistrationHandler(emailer, host, logger.NewMock())

			err := handler.Handle(context.Background(), tc.event)

			if tc.err != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tc.sent {
				emailer.AssertCalled(t, "SendConfirmation", []string{tc.to}, host, tc.token)
			} else {
				emailer.AssertNotCalled(t, "SendConfirmation", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}
