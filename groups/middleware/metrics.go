// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"time"

	"github.com/asterna/accounts/groups"
	"github.com/go-kit/kit/metrics"
)

var _ groups.Service = (*metricsMiddleware)(nil)

type metricsMiddleware struct {
	counter metrics.Counter
	latency metrics.Histogram
	svc     groups.Service
}

// MetricsMiddleware instruments the groups service by tracking request count and latency.
func MetricsMiddleware(svc groups.Service, counter metrics.Counter, latency metrics.Histogram) groups.Service {
	return &metricsMiddleware{
		counter: counter,
		latency: latency,
		svc:     svc,
	}
}

func (ms *metricsMiddleware) ListGroups(ctx context.Context, pm groups.PageMeta) (groups.Page, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "list_groups").Add(1)
		ms.latency.With("method", "list_groups").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return ms.svc.ListGroups(ctx, pm)
}

func (ms *metricsMiddleware) ViewGroup(ctx context.Context, id string) (groups.Group, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "view_group").Add(1)
		ms.latency.With("method", "view_group").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return ms.svc.ViewGroup(ctx, id)
}

func (ms *metricsMiddleware) WriteGroup(ctx context.Context, id string, payload []byte) (groups.Group, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "write_group").Add(1)
		ms.latency.With("method", "write_group").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return ms.svc.WriteGroup(ctx, id, payload)
}

func (ms *metricsMiddleware) DeleteGroup(ctx context.Context, id string) error {
	defer func(begin time.Time) {
		ms.counter.With("method", "delete_group").Add(1)
		ms.latency.With("method", "delete_group").Observe(time.Since(begin).Seconds())
	}(time.Now())
	return ms.svc.DeleteGroup(ctx, id)
}
