// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	stderr "errors"
	"net/http"

	"github.com/asterna/accounts"
	"github.com/asterna/accounts/pkg/apiutil"
	"github.com/asterna/accounts/pkg/binding"
	"github.com/asterna/accounts/pkg/errors"
	svcerr "github.com/asterna/accounts/pkg/errors/service"
	"github.com/gofrs/uuid"
)

const (
	// PageKey is the list query parameter holding the requested page number.
	PageKey = "page"
	// CountKey is the list query parameter holding the requested page size.
	CountKey = "count"
	// OrderByKey is the list query parameter holding the sort specification.
	OrderByKey = "orderBy"
	// EnabledKey is the list query parameter filtering by the enabled flag.
	EnabledKey = "enabled"

	// DefPage is the page number used when the parameter is absent.
	DefPage = uint64(1)
	// DefCount is the page size used when the parameter is absent.
	DefCount = uint64(10)

	// AscDir and DescDir are the only accepted sort directions.
	AscDir  = "ASC"
	DescDir = "DESC"

	// ContentType represents JSON content type.
	ContentType = "application/json"

	// MaxLimitSize caps the page size to prevent unbounded result sets.
	MaxLimitSize = 100
	// MaxNameSize limits name size to prevent making them too complex.
	MaxNameSize = 1024
)

// ValidateUUID validates UUID format.
func ValidateUUID(extID string) (err error) {
	id, err := uuid.FromString(extID)
	if id.String() != extID || err != nil {
		return apiutil.ErrInvalidIDFormat
	}

	return nil
}

// EncodeResponse encodes successful response.
func EncodeResponse(_ context.Context, w http.ResponseWriter, response interface{}) error {
	if ar, ok := response.(accounts.Response); ok {
		for k, v := range ar.Headers() {
			w.Header().Set(k, v)
		}
		w.Header().Set("Content-Type", ContentType)
		w.WriteHeader(ar.Code())

		if ar.Empty() {
			return nil
		}
	}

	return json.NewEncoder(w).Encode(response)
}

// validationFailureRes is the body of a 400 response carrying the
// per-field failure set reported by the binding collaborator.
type validationFailureRes struct {
	Err    string             `json:"error"`
	Fields []binding.FieldError `json:"fields"`
}

// EncodeError encodes an error response.
func EncodeError(_ context.Context, err error, w http.ResponseWriter) {
	w.Header().Set("Content-Type", ContentType)

	var ferrs binding.Errors
	if stderr.As(err, &ferrs) {
		w.WriteHeader(http.StatusBadRequest)
		if err := json.NewEncoder(w).Encode(validationFailureRes{Err: "validation failed", Fields: ferrs}); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	var wrapper error
	if errors.Contains(err, apiutil.ErrValidation) {
		wrapper, err = errors.Unwrap(err)
	}

	switch {
	case errors.Contains(err, svcerr.ErrMalformedEntity),
		errors.Contains(err, apiutil.ErrMalformedEntity),
		errors.Contains(err, apiutil.ErrMissingID),
		errors.Contains(err, apiutil.ErrInvalidIDFormat),
		errors.Contains(err, apiutil.ErrMissingName),
		errors.Contains(err, apiutil.ErrNameSize),
		errors.Contains(err, apiutil.ErrMissingEmail),
		errors.Contains(err, apiutil.ErrMissingPass),
		errors.Contains(err, apiutil.ErrMissingConfToken),
		errors.Contains(err, apiutil.ErrPageSize),
		errors.Contains(err, apiutil.ErrLimitSize),
		errors.Contains(err, apiutil.ErrInvalidDirection),
		errors.Contains(err, apiutil.ErrInvalidQueryParams),
		errors.Contains(err, apiutil.ErrValidation):
		err = unwrap(err)
		w.WriteHeader(http.StatusBadRequest)

	case errors.Contains(err, svcerr.ErrNotFound):
		err = unwrap(err)
		w.WriteHeader(http.StatusNotFound)

	case errors.Contains(err, svcerr.ErrConflict):
		err = unwrap(err)
		w.WriteHeader(http.StatusConflict)

	case errors.Contains(err, apiutil.ErrUnsupportedContentType):
		err = unwrap(err)
		w.WriteHeader(http.StatusUnsupportedMediaType)

	case errors.Contains(err, svcerr.ErrCreateEntity),
		errors.Contains(err, svcerr.ErrUpdateEntity),
		errors.Contains(err, svcerr.ErrRemoveEntity):
		err = unwrap(err)
		w.WriteHeader(http.StatusUnprocessableEntity)

	default:
		w.WriteHeader(http.StatusInternalServerError)
	}

	if wrapper != nil {
		err = errors.Wrap(wrapper, err)
	}

	if errorVal, ok := err.(errors.Error); ok {
		if err := json.NewEncoder(w).Encode(errorVal); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
		}
	}
}

func unwrap(err error) error {
	wrapper, err := errors.Unwrap(err)
	if wrapper != nil {
		return wrapper
	}
	return err
}
