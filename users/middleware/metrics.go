// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"time"

	"github.com/asterna/accounts/users"
	"github.com/go-kit/kit/metrics"
)

var _ users.Service = (*metricsMiddleware)(nil)

type metricsMiddleware struct {
	counter metrics.Counter
	latency metrics.Histogram
	svc     users.Service
}

// MetricsMiddleware instruments the users service by tracking request count and latency.
func MetricsMiddleware(svc users.Service, counter metrics.Counter, latency metrics.Histogram) users.Service {
	return &metricsMiddleware{
		counter: counter,
		latency: latency,
		svc:     svc,
	}
}

func (ms *metricsMiddleware) ListUsers(ctx context.Context, pm users.PageMeta) (users.Page, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "list_users").Add(1)
		ms.latency.With("method", "list_users").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return ms.svc.ListUsers(ctx, pm)
}

func (ms *metricsMiddleware) ViewUser(ctx context.Context, id string) (users.User, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "view_user").Add(1)
		ms.latency.With("method", "view_user").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return ms.svc.ViewUser(ctx, id)
}

func (ms *metricsMiddleware) WriteUser(ctx context.Context, id string, payload []byte) (users.User, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "write_user").Add(1)
		ms.latency.With("method", "write_user").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return ms.svc.WriteUser(ctx, id, payload)
}

func (ms *metricsMiddleware) ConfirmUser(ctx context.Context, token string) (users.User, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "confirm_user").Add(1)
		ms.latency.With("method", "confirm_user").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return ms.svc.ConfirmUser(ctx, token)
}

func (ms *metricsMiddleware) DeleteUser(ctx context.Context, id string) error {
	defer func(begin time.Time) {
		ms.counter.With("method", "delete_user").Add(1)
		ms.latency.With("method", "delete_user").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return ms.svc.DeleteUser(ctx, id)
}
