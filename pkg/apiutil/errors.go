// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

package apiutil

import "github.com/asterna/accounts/pkg/errors"

// Errors defined in this file are used by the LoggingErrorEncoder decorator
// to distinguish and log API request validation errors and avoid that service
// errors are logged twice.
var (
	// ErrValidation indicates that an error was returned by the API.
	ErrValidation = errors.New("something went wrong with the request")

	// ErrMissingID indicates missing entity ID.
	ErrMissingID = errors.New("missing entity id")

	// ErrInvalidIDFormat indicates an invalid ID format.
	ErrInvalidIDFormat = errors.New("invalid id format provided")

	// ErrMissingName indicates missing group name.
	ErrMissingName = errors.New("missing group name")

	// ErrNameSize indicates that name size exceeds the max.
	ErrNameSize = errors.New("invalid name size")

	// ErrMissingEmail indicates missing user email.
	ErrMissingEmail = errors.New("missing user email")

	// ErrMissingPass indicates missing user password.
	ErrMissingPass = errors.New("missing user password")

	// ErrMissingConfToken indicates missing confirmation token.
	ErrMissingConfToken = errors.New("missing confirmation token")

	// ErrPageSize indicates an invalid page number.
	ErrPageSize = errors.New("invalid page number")

	// ErrLimitSize indicates an invalid page size.
	ErrLimitSize = errors.New("invalid page size")

	// ErrInvalidDirection indicates an invalid sort direction.
	ErrInvalidDirection = errors.New("invalid sort direction provided")

	// ErrInvalidQueryParams indicates invalid query parameters.
	ErrInvalidQueryParams = errors.New("invalid query parameters")

	// ErrUnsupportedContentType indicates unacceptable or lack of Content-Type.
	ErrUnsupportedContentType = errors.New("unsupported content type")

	// ErrMalformedEntity indicates a malformed entity specification.
	ErrMalformedEntity = errors.New("malformed entity specification")
)
