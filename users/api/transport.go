// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"log/slog"
	"net/http"

	"github.com/asterna/accounts/internal/api"
	"github.com/asterna/accounts/pkg/apiutil"
	"github.com/asterna/accounts/users"
	"github.com/go-chi/chi/v5"
	kithttp "github.com/go-kit/kit/transport/http"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// MakeHandler registers the user routes on the given router.
func MakeHandler(svc users.Service, mux *chi.Mux, logger *slog.Logger) http.Handler {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(apiutil.LoggingErrorEncoder(logger, api.EncodeError)),
	}

	mux.Get("/users", otelhttp.NewHandler(kithttp.NewServer(
		listUsersEndpoint(svc),
		decodeListUsersRequest,
		api.EncodeResponse,
		opts...,
	), "list_users").ServeHTTP)

	mux.Post("/users", otelhttp.NewHandler(kithttp.NewServer(
		registerUserEndpoint(svc),
		decodeUserRegister,
		api.EncodeResponse,
		opts...,
	), "register_user").ServeHTTP)

	mux.Post("/users/confirm", otelhttp.NewHandler(kithttp.NewServer(
		confirmUserEndpoint(svc),
		decodeUserConfirm,
		api.EncodeResponse,
		opts...,
	), "confirm_user").ServeHTTP)

	mux.Get("/user/{userID}", otelhttp.NewHandler(kithttp.NewServer(
		viewUserEndpoint(svc),
		decodeUserRequest,
		api.EncodeResponse,
		opts...,
	), "view_user").ServeHTTP)

	mux.Put("/user/{userID}", otelhttp.NewHandler(kithttp.NewServer(
		updateUserEndpoint(svc),
		decodeUserUpdate,
		api.EncodeResponse,
		opts...,
	), "update_user").ServeHTTP)

	mux.Delete("/user/{userID}", otelhttp.NewHandler(kithttp.NewServer(
		deleteUserEndpoint(svc),
		decodeUserRequest,
		api.EncodeResponse,
		opts...,
	), "delete_user").ServeHTTP)

	return mux
}
