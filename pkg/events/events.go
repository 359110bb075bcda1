// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

// Package events provides the event stream abstraction used to decouple
// request handling from asynchronous handlers.
package events

import (
	"context"
)

// MaxEventStreamLen is the approximate upper bound of the stream length.
const MaxEventStreamLen int64 = 1e6

// Event represents an event.
type Event interface {
	// Encode encodes event to map.
	Encode() (map[string]interface{}, error)
}

// Publisher specifies events publishing API.
type Publisher interface {
	// Publish publishes event to stream.
	Publish(ctx context.Context, event Event) error

	// Close gracefully closes event publisher's connection.
	Close() error
}

// EventHandler represents event handler for Subscriber.
type EventHandler interface {
	// Handle handles events passed by underlying implementation.
	Handle(ctx context.Context, event Event) error
}

// SubscriberConfig represents event subscriber configuration.
type SubscriberConfig struct {
	Consumer string
	Stream   string
	Handler  EventHandler
}

// Subscriber specifies event subscription API.
type Subscriber interface {
	// Subscribe subscribes to the event stream and consumes events.
	Subscribe(ctx context.Context, cfg SubscriberConfig) error

	// Close gracefully closes event subscriber's connection.
	Close() error
}

// Read reads value from event map.
// If value is not of type T, returns default value.
func Read[T any](event map[string]interface{}, key string, def T) T {
	val, ok := event[key].(T)
	if !ok {
		return def
	}

	return val
}
