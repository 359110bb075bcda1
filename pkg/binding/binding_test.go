// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

package binding_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/asterna/accounts/pkg/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type group struct {
	Name     string                 `json:"name" validate:"required,max=1024"`
	Enabled  bool                   `json:"enabled"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

func TestBind(t *testing.T) {
	b := binding.New(binding.WithoutCSRF())

	cases := []struct {
		desc    string
		payload string
		fields  []string
		rules   []string
	}{
		{
			desc:    "bind valid payload",
			payload: `{"name": "engineering", "enabled": false, "metadata": {"tier": "core"}}`,
		},
		{
			desc:    "bind payload with missing name",
			payload: `{"enabled": true}`,
			fields:  []string{"name"},
			rules:   []string{"required"},
		},
		{
			desc:    "bind payload with empty name",
			payload: `{"name": ""}`,
			fields:  []string{"name"},
			rules:   []string{"required"},
		},
		{
			desc:    "bind payload with overlong name",
			payload: fmt.Sprintf(`{"name": %q}`, strings.Repeat("x", 1025)),
			fields:  []string{"name"},
			rules:   []string{"max"},
		},
		{
			desc:    "bind malformed payload",
			payload: `{"name": `,
			fields:  []string{"payload"},
			rules:   []string{"json"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			var g group
			err := b.Bind(context.Background(), []byte(tc.payload), &g)

			if len(tc.fields) == 0 {
				assert.NoError(t, err)
				assert.Equal(t, "engineering", g.Name)
				return
			}

			var ferrs binding.Errors
			require.ErrorAs(t, err, &ferrs)
			require.Len(t, ferrs, len(tc.fields))
			for i, fe := range ferrs {
				assert.Equal(t, tc.fields[i], fe.Field)
				assert.Equal(t, tc.rules[i], fe.Rule)
			}
		})
	}
}

func TestBindReportsJSONFieldNames(t *testing.T) {
	b := binding.New(binding.WithoutCSRF())

	type entity struct {
		DisplayName string `json:"display_name" validate:"required"`
	}

	var e entity
	err := b.Bind(context.Background(), []byte(`{}`), &e)

	var ferrs binding.Errors
	require.ErrorAs(t, err, &ferrs)
	require.Len(t, ferrs, 1)
	assert.Equal(t, "display_name", ferrs[0].Field)
}

func TestBindCSRF(t *testing.T) {
	b := binding.New()

	cases := []struct {
		desc    string
		payload string
		token   string
		err     bool
	}{
		{
			desc:    "bind with matching token",
			payload: `{"name": "engineering", "_token": "s3cr3t"}`,
			token:   "s3cr3t",
			err:     false,
		},
		{
			desc:    "bind with mismatched token",
			payload: `{"name": "engineering", "_token": "forged"}`,
			token:   "s3cr3t",
			err:     true,
		},
		{
			desc:    "bind with missing token",
			payload: `{"name": "engineering"}`,
			token:   "s3cr3t",
			err:     true,
		},
		{
			desc:    "bind with no session token in context",
			payload: `{"name": "engineering", "_token": "s3cr3t"}`,
			token:   "",
			err:     true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			ctx := context.Background()
			if tc.token != "" {
				ctx = binding.WithToken(ctx, tc.token)
			}

			var g group
			err := b.Bind(ctx, []byte(tc.payload), &g)

			if !tc.err {
				assert.NoError(t, err)
				return
			}
			var ferrs binding.Errors
			require.ErrorAs(t, err, &ferrs)
			assert.Equal(t, "_token", ferrs[0].Field)
		})
	}
}

func TestErrorsMessage(t *testing.T) {
	ferrs := binding.Errors{
		{Field: "name", Rule: "required"},
		{Field: "email", Rule: "email"},
	}

	assert.Equal(t, "failed to validate fields: name, email", ferrs.Error())
}
