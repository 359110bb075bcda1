// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

package postgres

import (
	"fmt"
	"testing"

	"github.com/asterna/accounts/groups"
	"github.com/asterna/accounts/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBuildOrder(t *testing.T) {
	cases := []struct {
		desc  string
		sort  map[string]string
		order string
		err   error
	}{
		{
			desc:  "default order",
			sort:  nil,
			order: "ORDER BY created_at",
		},
		{
			desc:  "single field",
			sort:  map[string]string{"name": "desc"},
			order: "ORDER BY name desc",
		},
		{
			desc:  "multiple fields in field order",
			sort:  map[string]string{"updated_at": "desc", "enabled": "asc", "name": "asc"},
			order: "ORDER BY enabled asc, name asc, updated_at desc",
		},
		{
			desc: "unknown field",
			sort: map[string]string{"metadata": "asc"},
			err:  errInvalidSortField,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			// The clause must not depend on map iteration order.
			for i := 0; i < 10; i++ {
				order, err := buildOrder(groups.PageMeta{Sort: tc.sort})
				assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.err, err))
				assert.Equal(t, tc.order, order)
			}
		})
	}
}
