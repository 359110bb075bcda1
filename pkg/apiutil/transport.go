// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

package apiutil

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/asterna/accounts/pkg/errors"
	kithttp "github.com/go-kit/kit/transport/http"
)

// LoggingErrorEncoder is a go-kit error encoder logging decorator.
func LoggingErrorEncoder(logger *slog.Logger, enc kithttp.ErrorEncoder) kithttp.ErrorEncoder {
	return func(ctx context.Context, err error, w http.ResponseWriter) {
		if errors.Contains(err, ErrValidation) {
			logger.Error(err.Error())
		}
		enc(ctx, err, w)
	}
}

// ReadStringQuery reads the value of string http query parameters for a given key.
func ReadStringQuery(r *http.Request, key, def string) (string, error) {
	vals := r.URL.Query()[key]
	if len(vals) > 1 {
		return "", ErrInvalidQueryParams
	}

	if len(vals) == 0 {
		return def, nil
	}

	return vals[0], nil
}

// ReadBoolQuery reads boolean query parameters in a given http request.
func ReadBoolQuery(r *http.Request, key string, def bool) (bool, error) {
	vals := r.URL.Query()[key]
	if len(vals) > 1 {
		return false, ErrInvalidQueryParams
	}

	if len(vals) == 0 {
		return def, nil
	}

	b, err := strconv.ParseBool(vals[0])
	if err != nil {
		return false, errors.Wrap(ErrInvalidQueryParams, err)
	}

	return b, nil
}

// ReadFlagQuery reads an optional 0/1 query parameter. A nil result means
// the parameter was absent from the request.
func ReadFlagQuery(r *http.Request, key string) (*bool, error) {
	vals := r.URL.Query()[key]
	if len(vals) > 1 {
		return nil, ErrInvalidQueryParams
	}

	if len(vals) == 0 {
		return nil, nil
	}

	switch vals[0] {
	case "0":
		f := false
		return &f, nil
	case "1":
		f := true
		return &f, nil
	default:
		return nil, ErrInvalidQueryParams
	}
}

type number interface {
	int64 | float64 | uint16 | uint64
}

// ReadNumQuery returns a numeric value.
func ReadNumQuery[N number](r *http.Request, key string, def N) (N, error) {
	vals := r.URL.Query()[key]
	if len(vals) > 1 {
		return 0, ErrInvalidQueryParams
	}
	if len(vals) == 0 {
		return def, nil
	}
	val := vals[0]

	switch any(def).(type) {
	case int64:
		v, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return 0, errors.Wrap(ErrInvalidQueryParams, err)
		}
		return N(v), nil
	case uint64:
		v, err := strconv.ParseUint(val, 10, 64)
		if err != nil {
			return 0, errors.Wrap(ErrInvalidQueryParams, err)
		}
		return N(v), nil
	case uint16:
		v, err := strconv.ParseUint(val, 10, 16)
		if err != nil {
			return 0, errors.Wrap(ErrInvalidQueryParams, err)
		}
		return N(v), nil
	case float64:
		v, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, errors.Wrap(ErrInvalidQueryParams, err)
		}
		return N(v), nil
	default:
		return def, nil
	}
}

// ReadMapQuery reads query parameters given in the `key[field]=value` form
// and returns them as a field to value mapping. A bare `key=field` parameter
// is normalized to a single-entry mapping with the given default value.
func ReadMapQuery(r *http.Request, key, def string) (map[string]string, error) {
	res := map[string]string{}
	for k, vals := range r.URL.Query() {
		switch {
		case k == key:
			if len(vals) > 1 || vals[0] == "" {
				return nil, ErrInvalidQueryParams
			}
			res[vals[0]] = def
		case strings.HasPrefix(k, key+"[") && strings.HasSuffix(k, "]"):
			if len(vals) > 1 {
				return nil, ErrInvalidQueryParams
			}
			field := k[len(key)+1 : len(k)-1]
			if field == "" {
				return nil, ErrInvalidQueryParams
			}
			res[field] = vals[0]
		}
	}

	return res, nil
}
