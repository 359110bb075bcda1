// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

package events

import (
	"context"

	"github.com/asterna/accounts/pkg/events"
	"github.com/asterna/accounts/pkg/events/redis"
	"github.com/asterna/accounts/users"
)

// StreamID is the stream carrying account lifecycle events.
const StreamID = "accounts.users"

var _ users.Service = (*eventStore)(nil)

type eventStore struct {
	events.Publisher
	svc users.Service
}

// NewEventStoreMiddleware returns wrapper around users service that sends
// events to event store.
func NewEventStoreMiddleware(svc users.Service, url string) (users.Service, error) {
	publisher, err := redis.NewPublisher(url, StreamID)
	if err != nil {
		return nil, err
	}

	return &eventStore{
		svc:       svc,
		Publisher: publisher,
	}, nil
}

func (es *eventStore) ListUsers(ctx context.Context, pm users.PageMeta) (users.Page, error) {
	return es.svc.ListUsers(ctx, pm)
}

func (es *eventStore) ViewUser(ctx context.Context, id string) (users.User, error) {
	return es.svc.ViewUser(ctx, id)
}

func (es *eventStore) WriteUser(ctx context.Context, id string, payload []byte) (users.User, error) {
	user, err := es.svc.WriteUser(ctx, id, payload)
	if err != nil {
		return user, err
	}

	if id == "" {
		if err := es.Publish(ctx, registerUserEvent{user}); err != nil {
			return user, err
		}
	}

	return user, nil
}

func (es *eventStore) ConfirmUser(ctx context.Context, token string) (users.User, error) {
	user, err := es.svc.ConfirmUser(ctx, token)
	if err != nil {
		return user, err
	}

	if err := es.Publish(ctx, confirmUserEvent{user}); err != nil {
		return user, err
	}

	return user, nil
}

func (es *eventStore) DeleteUser(ctx context.Context, id string) error {
	if err := es.svc.DeleteUser(ctx, id); err != nil {
		return err
	}

	return es.Publish(ctx, removeUserEvent{id})
}
