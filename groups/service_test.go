// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

package groups_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/asterna/accounts/groups"
	"github.com/asterna/accounts/groups/mocks"
	"github.com/asterna/accounts/internal/testsutil"
	"github.com/asterna/accounts/pkg/binding"
	"github.com/asterna/accounts/pkg/errors"
	repoerr "github.com/asterna/accounts/pkg/errors/repository"
	svcerr "github.com/asterna/accounts/pkg/errors/service"
	"github.com/asterna/accounts/pkg/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	validGroup = groups.Group{
		ID:        testID(1),
		Name:      "engineering",
		Enabled:   true,
		Metadata:  groups.Metadata{"tier": "core"},
		CreatedAt: time.Now().Add(-time.Hour),
	}
	idProvider = uuid.NewMock()
)

func testID(n int) string {
	return fmt.Sprintf("%s%012d", uuid.Prefix, n)
}

func newService(repo groups.Repository) groups.Service {
	return groups.NewService(repo, binding.New(binding.WithoutCSRF()), idProvider)
}

func TestListGroups(t *testing.T) {
	repo := new(mocks.Repository)
	svc := newService(repo)

	enabled := true

	cases := []struct {
		desc     string
		pageMeta groups.PageMeta
		resp     groups.Page
		repoErr  error
		err      error
	}{
		{
			desc: "list groups successfully",
			pageMeta: groups.PageMeta{
				Page:  1,
				Count: 10,
			},
			resp: groups.Page{
				PageMeta: groups.PageMeta{
					Total: 1,
					Page:  1,
					Count: 10,
				},
				Groups: []groups.Group{validGroup},
			},
			err: nil,
		},
		{
			desc: "list groups with enabled criteria and sort",
			pageMeta: groups.PageMeta{
				Page:    2,
				Count:   5,
				Sort:    map[string]string{"name": "DESC"},
				Enabled: &enabled,
			},
			resp: groups.Page{
				PageMeta: groups.PageMeta{
					Total:   1,
					Page:    2,
					Count:   5,
					Sort:    map[string]string{"name": "DESC"},
					Enabled: &enabled,
				},
				Groups: []groups.Group{validGroup},
			},
			err: nil,
		},
		{
			desc: "list groups with repo error",
			pageMeta: groups.PageMeta{
				Page:  1,
				Count: 10,
			},
			repoErr: repoerr.ErrViewEntity,
			err:     svcerr.ErrViewEntity,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repoCall := repo.On("RetrieveAll", context.Background(), tc.pageMeta).Return(tc.resp, tc.repoErr)
			page, err := svc.ListGroups(context.Background(), tc.pageMeta)
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.err, err))
			if err == nil {
				assert.Equal(t, tc.resp, page)
				repo.AssertCalled(t, "RetrieveAll", context.Background(), tc.pageMeta)
			}
			repoCall.Unset()
		})
	}
}

func TestViewGroup(t *testing.T) {
	repo := new(mocks.Repository)
	svc := newService(repo)

	cases := []struct {
		desc    string
		id      string
		resp    groups.Group
		repoErr error
		err     error
	}{
		{
			desc: "view existing group",
			id:   validGroup.ID,
			resp: validGroup,
			err:  nil,
		},
		{
			desc:    "view non-existing group",
			id:      testsutil.GenerateUUID(t),
			repoErr: repoerr.ErrNotFound,
			err:     svcerr.ErrNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repoCall := repo.On("RetrieveByID", context.Background(), tc.id).Return(tc.resp, tc.repoErr)
			group, err := svc.ViewGroup(context.Background(), tc.id)
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.err, err))
			assert.Equal(t, tc.resp, group)
			if tc.repoErr != nil {
				assert.Contains(t, err.Error(), tc.id)
			}
			repoCall.Unset()
		})
	}
}

func TestCreateGroup(t *testing.T) {
	cases := []struct {
		desc    string
		payload string
		repoErr error
		err     error
		fields  []string
	}{
		{
			desc:    "create group with valid payload",
			payload: `{"name": "engineering", "metadata": {"tier": "core"}}`,
			err:     nil,
		},
		{
			desc:    "create disabled group",
			payload: `{"name": "archive", "enabled": false}`,
			err:     nil,
		},
		{
			desc:    "create group with missing name",
			payload: `{"metadata": {"tier": "core"}}`,
			fields:  []string{"name"},
		},
		{
			desc:    "create group with overlong name",
			payload: fmt.Sprintf(`{"name": %q}`, strings.Repeat("a", 1025)),
			fields:  []string{"name"},
		},
		{
			desc:    "create group with malformed payload",
			payload: `{"name": `,
			fields:  []string{"payload"},
		},
		{
			desc:    "create group with conflicting name",
			payload: `{"name": "engineering"}`,
			repoErr: repoerr.ErrConflict,
			err:     svcerr.ErrCreateEntity,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repo := new(mocks.Repository)
			svc := newService(repo)
			repoCall := repo.On("Save", context.Background(), mock.Anything).Return(groups.Group{}, tc.repoErr)
			group, err := svc.WriteGroup(context.Background(), "", []byte(tc.payload))

			if len(tc.fields) > 0 {
				var ferrs binding.Errors
				require.ErrorAs(t, err, &ferrs)
				got := make([]string, 0, len(ferrs))
				for _, fe := range ferrs {
					got = append(got, fe.Field)
				}
				assert.ElementsMatch(t, tc.fields, got)
				repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
				repoCall.Unset()
				return
			}

			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.err, err))
			if err == nil {
				assert.NotEmpty(t, group.ID)
				assert.False(t, group.CreatedAt.IsZero())
				assert.True(t, group.UpdatedAt.IsZero())
			}
			repoCall.Unset()
		})
	}
}

func TestCreateGroupDefaultsEnabled(t *testing.T) {
	repo := new(mocks.Repository)
	svc := newService(repo)

	repoCall := repo.On("Save", context.Background(), mock.Anything).Return(groups.Group{}, nil)
	defer repoCall.Unset()

	group, err := svc.WriteGroup(context.Background(), "", []byte(`{"name": "fresh"}`))
	require.NoError(t, err)
	assert.True(t, group.Enabled, "a group created without an enabled flag must be enabled")
}

func TestUpdateGroup(t *testing.T) {
	cases := []struct {
		desc        string
		id          string
		payload     string
		retrieveErr error
		updateErr   error
		err         error
		fields      []string
	}{
		{
			desc:    "update existing group",
			id:      validGroup.ID,
			payload: `{"name": "platform", "enabled": false}`,
			err:     nil,
		},
		{
			desc:        "update non-existing group",
			id:          testsutil.GenerateUUID(t),
			payload:     `{"name": "platform"}`,
			retrieveErr: repoerr.ErrNotFound,
			err:         svcerr.ErrNotFound,
		},
		{
			desc:    "update group with missing name",
			id:      validGroup.ID,
			payload: `{"name": ""}`,
			fields:  []string{"name"},
		},
		{
			desc:      "update group with repo error",
			id:        validGroup.ID,
			payload:   `{"name": "platform"}`,
			updateErr: repoerr.ErrUpdateEntity,
			err:       svcerr.ErrUpdateEntity,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repo := new(mocks.Repository)
			svc := newService(repo)
			retrieveCall := repo.On("RetrieveByID", context.Background(), tc.id).Return(validGroup, tc.retrieveErr)
			updateCall := repo.On("Update", context.Background(), mock.Anything).Return(groups.Group{}, tc.updateErr)
			group, err := svc.WriteGroup(context.Background(), tc.id, []byte(tc.payload))

			if len(tc.fields) > 0 {
				var ferrs binding.Errors
				require.ErrorAs(t, err, &ferrs)
				repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			} else {
				assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.err, err))
			}
			if err == nil {
				assert.Equal(t, tc.id, group.ID)
				assert.Equal(t, "platform", group.Name)
				assert.False(t, group.UpdatedAt.IsZero())
			}
			retrieveCall.Unset()
			updateCall.Unset()
		})
	}
}

func TestUpdateGroupKeepsServerOwnedFields(t *testing.T) {
	repo := new(mocks.Repository)
	svc := newService(repo)
	retrieveCall := repo.On("RetrieveByID", context.Background(), validGroup.ID).Return(validGroup, nil)
	updateCall := repo.On("Update", context.Background(), mock.Anything).Return(groups.Group{}, nil)

	payload := fmt.Sprintf(`{"id": "%s", "name": "platform", "created_at": "2030-01-01T00:00:00Z"}`, testID(99))
	group, err := svc.WriteGroup(context.Background(), validGroup.ID, []byte(payload))
	require.NoError(t, err)
	assert.Equal(t, validGroup.ID, group.ID)
	assert.True(t, group.CreatedAt.Equal(validGroup.CreatedAt), fmt.Sprintf("expected created_at %s got %s\n", validGroup.CreatedAt, group.CreatedAt))
	assert.Equal(t, "platform", group.Name)

	retrieveCall.Unset()
	updateCall.Unset()
}

func TestDeleteGroup(t *testing.T) {
	repo := new(mocks.Repository)
	svc := newService(repo)

	cases := []struct {
		desc        string
		id          string
		retrieveErr error
		deleteErr   error
		err         error
	}{
		{
			desc: "delete existing group",
			id:   validGroup.ID,
			err:  nil,
		},
		{
			desc:        "delete non-existing group",
			id:          testsutil.GenerateUUID(t),
			retrieveErr: repoerr.ErrNotFound,
			err:         svcerr.ErrNotFound,
		},
		{
			desc:      "delete group with repo error",
			id:        validGroup.ID,
			deleteErr: repoerr.ErrRemoveEntity,
			err:       svcerr.ErrRemoveEntity,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			retrieveCall := repo.On("RetrieveByID", context.Background(), tc.id).Return(validGroup, tc.retrieveErr)
			deleteCall := repo.On("Delete", context.Background(), tc.id).Return(tc.deleteErr)
			err := svc.DeleteGroup(context.Background(), tc.id)
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.err, err))
			if tc.retrieveErr != nil {
				repo.AssertNotCalled(t, "Delete", mock.Anything, tc.id)
			}
			retrieveCall.Unset()
			deleteCall.Unset()
		})
	}
}
