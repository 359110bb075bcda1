// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

package redis

import (
	"context"
	"time"

	"github.com/asterna/accounts/pkg/events"
	"github.com/go-redis/redis/v8"
)

var _ events.Publisher = (*pubEventStore)(nil)

type pubEventStore struct {
	client *redis.Client
	stream string
}

// NewPublisher returns a redis stream publisher.
func NewPublisher(url, stream string) (events.Publisher, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	return &pubEventStore{
		client: redis.NewClient(opts),
		stream: stream,
	}, nil
}

func (es *pubEventStore) Publish(ctx context.Context, event events.Event) error {
	values, err := event.Encode()
	if err != nil {
		return err
	}
	values["occurred_at"] = time.Now().UnixNano()

	record := &redis.XAddArgs{
		Stream: es.stream,
		MaxLen: events.MaxEventStreamLen,
		Approx: true,
		Values: values,
	}

	return es.client.XAdd(ctx, record).Err()
}

func (es *pubEventStore) Close() error {
	return es.client.Close()
}
