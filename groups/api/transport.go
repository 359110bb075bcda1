// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"log/slog"
	"net/http"

	"github.com/asterna/accounts/groups"
	"github.com/asterna/accounts/internal/api"
	"github.com/asterna/accounts/pkg/apiutil"
	"github.com/go-chi/chi/v5"
	kithttp "github.com/go-kit/kit/transport/http"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// MakeHandler registers the group routes on the given router.
func MakeHandler(svc groups.Service, mux *chi.Mux, logger *slog.Logger) http.Handler {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(apiutil.LoggingErrorEncoder(logger, api.EncodeError)),
	}

	mux.Get("/groups", otelhttp.NewHandler(kithttp.NewServer(
		listGroupsEndpoint(svc),
		decodeListGroupsRequest,
		api.EncodeResponse,
		opts...,
	), "list_groups").ServeHTTP)

	mux.Get("/group/{groupID}", otelhttp.NewHandler(kithttp.NewServer(
		viewGroupEndpoint(svc),
		decodeGroupRequest,
		api.EncodeResponse,
		opts...,
	), "view_group").ServeHTTP)

	mux.Post("/group", otelhttp.NewHandler(kithttp.NewServer(
		createGroupEndpoint(svc),
		decodeGroupCreate,
		api.EncodeResponse,
		opts...,
	), "create_group").ServeHTTP)

	mux.Put("/group/{groupID}", otelhttp.NewHandler(kithttp.NewServer(
		updateGroupEndpoint(svc),
		decodeGroupUpdate,
		api.EncodeResponse,
		opts...,
	), "update_group").ServeHTTP)

	mux.Delete("/group/{groupID}", otelhttp.NewHandler(kithttp.NewServer(
		deleteGroupEndpoint(svc),
		decodeGroupRequest,
		api.EncodeResponse,
		opts...,
	), "delete_group").ServeHTTP)

	return mux
}
