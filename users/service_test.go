// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

package users_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/asterna/accounts/internal/testsutil"
	"github.com/asterna/accounts/pkg/binding"
	"github.com/asterna/accounts/pkg/errors"
	repoerr "github.com/asterna/accounts/pkg/errors/repository"
	svcerr "github.com/asterna/accounts/pkg/errors/service"
	"github.com/asterna/accounts/pkg/uuid"
	"github.com/asterna/accounts/users"
	"github.com/asterna/accounts/users/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	validUser = users.User{
		ID:        fmt.Sprintf("%s%012d", uuid.Prefix, 1),
		Email:     "jane.doe@example.com",
		Password:  "s3cr3tpass-hashed",
		Enabled:   true,
		CreatedAt: time.Now().Add(-time.Hour),
	}
	idProvider = uuid.NewMock()
)

func newService(repo users.Repository) users.Service {
	return users.NewService(repo, binding.New(binding.WithoutCSRF()), mocks.NewHasher(), idProvider)
}

func TestRegister(t *testing.T) {
	cases := []struct {
		desc    string
		payload string
		repoErr error
		err     error
		fields  []string
	}{
		{
			desc:    "register with valid payload",
			payload: `{"email": "jane.doe@example.com", "password": "s3cr3tpass"}`,
			err:     nil,
		},
		{
			desc:    "register with missing email",
			payload: `{"password": "s3cr3tpass"}`,
			fields:  []string{"email"},
		},
		{
			desc:    "register with malformed email",
			payload: `{"email": "not-an-email", "password": "s3cr3tpass"}`,
			fields:  []string{"email"},
		},
		{
			desc:    "register with short password",
			payload: `{"email": "jane.doe@example.com", "password": "short"}`,
			fields:  []string{"password"},
		},
		{
			desc:    "register with taken email",
			payload: `{"email": "jane.doe@example.com", "password": "s3cr3tpass"}`,
			repoErr: repoerr.ErrConflict,
			err:     svcerr.ErrConflict,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repo := new(mocks.Repository)
			svc := newService(repo)
			repoCall := repo.On("Save", context.Background(), mock.Anything).Return(users.User{}, tc.repoErr)
			user, err := svc.WriteUser(context.Background(), "", []byte(tc.payload))

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
				assert.NotEmpty(t, user.ID)
				assert.NotEmpty(t, user.ConfirmToken)
				assert.Equal(t, "s3cr3tpass-hashed", user.Password)
				assert.False(t, user.Enabled, "a registered account must stay disabled until confirmed")
				assert.False(t, user.CreatedAt.IsZero())
			}
			repoCall.Unset()
		})
	}
}

func TestConfirmUser(t *testing.T) {
	token := testsutil.GenerateUUID(t)
	pending := users.User{
		ID:           validUser.ID,
		Email:        validUser.Email,
		Password:     validUser.Password,
		Enabled:      false,
		ConfirmToken: token,
		CreatedAt:    validUser.CreatedAt,
	}

	cases := []struct {
		desc        string
		token       string
		retrieveErr error
		updateErr   error
		err         error
	}{
		{
			desc:  "confirm with valid token",
			token: token,
			err:   nil,
		},
		{
			desc:        "confirm with unknown token",
			token:       testsutil.GenerateUUID(t),
			retrieveErr: repoerr.ErrNotFound,
			err:         svcerr.ErrNotFound,
		},
		{
			desc:      "confirm with repo error",
			token:     token,
			updateErr: repoerr.ErrUpdateEntity,
			err:       svcerr.ErrUpdateEntity,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repo := new(mocks.Repository)
			svc := newService(repo)
			retrieveCall := repo.On("RetrieveByConfirmToken", context.Background(), tc.token).Return(pending, tc.retrieveErr)
			updateCall := repo.On("Update", context.Background(), mock.Anything).Return(users.User{}, tc.updateErr)
			user, err := svc.ConfirmUser(context.Background(), tc.token)
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.err, err))
			if err == nil {
				assert.True(t, user.Enabled)
				assert.Empty(t, user.ConfirmToken)
				assert.False(t, user.UpdatedAt.IsZero())
			}
			retrieveCall.Unset()
			updateCall.Unset()
		})
	}
}

func TestViewUser(t *testing.T) {
	repo := new(mocks.Repository)
	svc := newService(repo)

	cases := []struct {
		desc    string
		id      string
		repoErr error
		err     error
	}{
		{
			desc: "view existing user",
			id:   validUser.ID,
			err:  nil,
		},
		{
			desc:    "view non-existing user",
			id:      testsutil.GenerateUUID(t),
			repoErr: repoerr.ErrNotFound,
			err:     svcerr.ErrNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repoCall := repo.On("RetrieveByID", context.Background(), tc.id).Return(validUser, tc.repoErr)
			user, err := svc.ViewUser(context.Background(), tc.id)
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.err, err))
			if err == nil {
				assert.Equal(t, validUser, user)
			}
			if tc.repoErr != nil {
				assert.Contains(t, err.Error(), tc.id)
			}
			repoCall.Unset()
		})
	}
}

func TestListUsers(t *testing.T) {
	repo := new(mocks.Repository)
	svc := newService(repo)

	enabled := true
	pm := users.PageMeta{
		Page:    1,
		Count:   10,
		Enabled: &enabled,
	}
	resp := users.Page{
		PageMeta: users.PageMeta{
			Total:   1,
			Page:    1,
			Count:   10,
			Enabled: &enabled,
		},
		Users: []users.User{validUser},
	}

	cases := []struct {
		desc    string
		repoErr error
		err     error
	}{
		{
			desc: "list users successfully",
			err:  nil,
		},
		{
			desc:    "list users with repo error",
			repoErr: repoerr.ErrViewEntity,
			err:     svcerr.ErrViewEntity,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repoCall := repo.On("RetrieveAll", context.Background(), pm).Return(resp, tc.repoErr)
			page, err := svc.ListUsers(context.Background(), pm)
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.err, err))
			if err == nil {
				assert.Equal(t, resp, page)
			}
			repoCall.Unset()
		})
	}
}

func TestUpdateUser(t *testing.T) {
	cases := []struct {
		desc        string
		id          string
		payload     string
		retrieveErr error
		updateErr   error
		err         error
		password    string
	}{
		{
			desc:     "update email only",
			id:       validUser.ID,
			payload:  `{"email": "j.doe@example.com"}`,
			password: validUser.Password,
			err:      nil,
		},
		{
			desc:     "update password",
			id:       validUser.ID,
			payload:  `{"email": "jane.doe@example.com", "password": "n3wpassword"}`,
			password: "n3wpassword-hashed",
			err:      nil,
		},
		{
			desc:        "update non-existing user",
			id:          testsutil.GenerateUUID(t),
			payload:     `{"email": "j.doe@example.com"}`,
			retrieveErr: repoerr.ErrNotFound,
			err:         svcerr.ErrNotFound,
		},
		{
			desc:      "update with repo error",
			id:        validUser.ID,
			payload:   `{"email": "j.doe@example.com"}`,
			updateErr: repoerr.ErrUpdateEntity,
			err:       svcerr.ErrUpdateEntity,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repo := new(mocks.Repository)
			svc := newService(repo)
			retrieveCall := repo.On("RetrieveByID", context.Background(), tc.id).Return(validUser, tc.retrieveErr)
			updateCall := repo.On("Update", context.Background(), mock.Anything).Return(users.User{}, tc.updateErr)
			user, err := svc.WriteUser(context.Background(), tc.id, []byte(tc.payload))
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.err, err))
			if err == nil {
				assert.Equal(t, tc.password, user.Password)
				assert.False(t, user.UpdatedAt.IsZero())
			}
			retrieveCall.Unset()
			updateCall.Unset()
		})
	}
}

func TestUpdateUserKeepsServerOwnedFields(t *testing.T) {
	pending := users.User{
		ID:           validUser.ID,
		Email:        validUser.Email,
		Password:     validUser.Password,
		Enabled:      false,
		ConfirmToken: testsutil.GenerateUUID(t),
		CreatedAt:    validUser.CreatedAt,
	}

	repo := new(mocks.Repository)
	svc := newService(repo)
	retrieveCall := repo.On("RetrieveByID", context.Background(), pending.ID).Return(pending, nil)
	updateCall := repo.On("Update", context.Background(), mock.Anything).Return(users.User{}, nil)

	payload := fmt.Sprintf(`{"id": "%s%012d", "email": "j.doe@example.com", "enabled": true, "created_at": "2030-01-01T00:00:00Z"}`, uuid.Prefix, 99)
	user, err := svc.WriteUser(context.Background(), pending.ID, []byte(payload))
	require.NoError(t, err)
	assert.Equal(t, pending.ID, user.ID)
	assert.False(t, user.Enabled)
	assert.Equal(t, pending.ConfirmToken, user.ConfirmToken)
	assert.True(t, user.CreatedAt.Equal(pending.CreatedAt), fmt.Sprintf("expected created_at %s got %s\n", pending.CreatedAt, user.CreatedAt))
	assert.Equal(t, "j.doe@example.com", user.Email)

	retrieveCall.Unset()
	updateCall.Unset()
}

func TestDeleteUser(t *testing.T) {
	cases := []struct {
		desc        string
		id          string
		retrieveErr error
		deleteErr   error
		err         error
	}{
		{
			desc: "delete existing user",
			id:   validUser.ID,
			err:  nil,
		},
		{
			desc:        "delete non-existing user",
			id:          testsutil.GenerateUUID(t),
			retrieveErr: repoerr.ErrNotFound,
			err:         svcerr.ErrNotFound,
		},
		{
			desc:      "delete user with repo error",
			id:        validUser.ID,
			deleteErr: repoerr.ErrRemoveEntity,
			err:       svcerr.ErrRemoveEntity,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repo := new(mocks.Repository)
			svc := newService(repo)
			retrieveCall := repo.On("RetrieveByID", context.Background(), tc.id).Return(validUser, tc.retrieveErr)
			deleteCall := repo.On("Delete", context.Background(), tc.id).Return(tc.deleteErr)
			err := svc.DeleteUser(context.Background(), tc.id)
			assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("%s: expected %s got %s\n", tc.desc, tc.err, err))
			if tc.retrieveErr != nil {
				repo.AssertNotCalled(t, "Delete", mock.Anything, tc.id)
			}
			retrieveCall.Unset()
			deleteCall.Unset()
		})
	}
}
