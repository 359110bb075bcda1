// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

// Package binding maps raw submitted payloads onto entities and reports
// per-field validity.
package binding

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const tokenField = "_token"

type ctxKey struct{}

// FieldError describes a single failed constraint on a submitted field.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Errors is the structured per-field failure set reported by a binder.
type Errors []FieldError

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for _, fe := range e {
		fields = append(fields, fe.Field)
	}
	return "failed to validate fields: " + strings.Join(fields, ", ")
}

// Binder binds a submitted payload onto a target entity, validating its
// constraints. A failed binding is reported as Errors; the target is left
// in an unspecified state in that case.
type Binder interface {
	Bind(ctx context.Context, payload []byte, v interface{}) error
}

var _ Binder = (*binder)(nil)

type binder struct {
	validate  *validator.Validate
	checkCSRF bool
}

// Option configures a binder.
type Option func(*binder)

// WithoutCSRF disables the session token check. API bindings use it since
// API clients do not carry the session-bound token.
func WithoutCSRF() Option {
	return func(b *binder) {
		b.checkCSRF = false
	}
}

// New returns a payload binder. The CSRF token check is enabled unless
// WithoutCSRF is given.
func New(opts ...Option) Binder {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	b := &binder{
		validate:  v,
		checkCSRF: true,
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// WithToken stores the session token used by CSRF-protected bindings.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ctxKey{}, token)
}

func (b *binder) Bind(ctx context.Context, payload []byte, v interface{}) error {
	if b.checkCSRF {
		if err := b.verifyToken(ctx, payload); err != nil {
			return err
		}
	}

	if err := json.Unmarshal(payload, v); err != nil {
		return Errors{{Field: "payload", Rule: "json", Message: err.Error()}}
	}

	if err := b.validate.Struct(v); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return Errors{{Field: "payload", Rule: "struct", Message: err.Error()}}
		}
		ferrs := make(Errors, 0, len(verrs))
		for _, fe := range verrs {
			ferrs = append(ferrs, FieldError{
				Field:   fe.Field(),
				Rule:    fe.Tag(),
				Message: fmt.Sprintf("failed on the '%s' rule", fe.Tag()),
			})
		}
		return ferrs
	}

	return nil
}

func (b *binder) verifyToken(ctx context.Context, payload []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		return Errors{{Field: "payload", Rule: "json", Message: err.Error()}}
	}

	var token string
	if raw, ok := fields[tokenField]; ok {
		if err := json.Unmarshal(raw, &token); err != nil {
			return Errors{{Field: tokenField, Rule: "csrf", Message: "malformed session token"}}
		}
	}

	expected, _ := ctx.Value(ctxKey{}).(string)
	if token == "" || expected == "" || token != expected {
		return Errors{{Field: tokenField, Rule: "csrf", Message: "missing or invalid session token"}}
	}

	return nil
}
