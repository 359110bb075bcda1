// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

package testsutil

import (
	"fmt"
	"testing"

	"github.com/asterna/accounts/pkg/uuid"
	"github.com/stretchr/testify/require"
)

// GenerateUUID returns a fresh UUID, failing the test on error.
func GenerateUUID(t *testing.T) string {
	idProvider := uuid.New()
	id, err := idProvider.ID()
	require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
	return id
}
