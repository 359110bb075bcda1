// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/asterna/accounts/pkg/errors"
	repoerr "github.com/asterna/accounts/pkg/errors/repository"
	"github.com/asterna/accounts/pkg/postgres"
	"github.com/asterna/accounts/users"
)

var sortableColumns = map[string]bool{
	"id":         true,
	"email":      true,
	"enabled":    true,
	"created_at": true,
	"updated_at": true,
}

var errInvalidSortField = errors.New("invalid sort field")

var _ users.Repository = (*userRepository)(nil)

type userRepository struct {
	db postgres.Database
}

// New instantiates a PostgreSQL implementation of user repository.
func New(db postgres.Database) users.Repository {
	return &userRepository{
		db: db,
	}
}

func (repo userRepository) Save(ctx context.Context, u users.User) (users.User, error) {
	q := `INSERT INTO users (id, email, password, enabled, confirm_token, created_at)
		VALUES (:id, :email, :password, :enabled, :confirm_token, :created_at)
		RETURNING id, email, password, enabled, confirm_token, created_at, updated_at`

	row, err := repo.db.NamedQueryContext(ctx, q, toDBUser(u))
	if err != nil {
		return users.User{}, postgres.HandleError(repoerr.ErrCreateEntity, err)
	}
	defer row.Close()

	row.Next()
	dbu := dbUser{}
	if err := row.StructScan(&dbu); err != nil {
		return users.User{}, errors.Wrap(repoerr.ErrCreateEntity, err)
	}

	return toUser(dbu), nil
}

func (repo userRepository) Update(ctx context.Context, u users.User) (users.User, error) {
	q := `UPDATE users SET email = :email, password = :password, enabled = :enabled,
		confirm_token = :confirm_token, updated_at = :updated_at
		WHERE id = :id
		RETURNING id, email, password, enabled, confirm_token, created_at, updated_at`

	row, err := repo.db.NamedQueryContext(ctx, q, toDBUser(u))
	if err != nil {
		return users.User{}, postgres.HandleError(repoerr.ErrUpdateEntity, err)
	}
	defer row.Close()

	if ok := row.Next(); !ok {
		return users.User{}, errors.Wrap(repoerr.ErrNotFound, row.Err())
	}
	dbu := dbUser{}
	if err := row.StructScan(&dbu); err != nil {
		return users.User{}, errors.Wrap(repoerr.ErrUpdateEntity, err)
	}

	return toUser(dbu), nil
}

func (repo userRepository) RetrieveByID(ctx context.Context, id string) (users.User, error) {
	q := `SELECT id, email, password, enabled, confirm_token, created_at, updated_at FROM users WHERE id = :id`

	return repo.retrieveOne(ctx, q, dbUser{ID: id})
}

func (repo userRepository) RetrieveByConfirmToken(ctx context.Context, token string) (users.User, error) {
	q := `SELECT id, email, password, enabled, confirm_token, created_at, updated_at FROM users
		WHERE confirm_token = :confirm_token`

	return repo.retrieveOne(ctx, q, dbUser{ConfirmToken: toNullString(token)})
}

func (repo userRepository) retrieveOne(ctx context.Context, q string, dbu dbUser) (users.User, error) {
	row, err := repo.db.NamedQueryContext(ctx, q, dbu)
	if err != nil {
		return users.User{}, postgres.HandleError(repoerr.ErrViewEntity, err)
	}
	defer row.Close()

	if ok := row.Next(); !ok {
		return users.User{}, errors.Wrap(repoerr.ErrNotFound, row.Err())
	}
	dbu = dbUser{}
	if err := row.StructScan(&dbu); err != nil {
		return users.User{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	return toUser(dbu), nil
}

func (repo userRepository) RetrieveAll(ctx context.Context, pm users.PageMeta) (users.Page, error) {
	var query string
	if pm.Enabled != nil {
		query = "WHERE enabled = :enabled"
	}
	order, err := buildOrder(pm)
	if err != nil {
		return users.Page{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	q := fmt.Sprintf(`SELECT id, email, password, enabled, confirm_token, created_at, updated_at FROM users %s %s LIMIT :limit OFFSET :offset`, query, order)

	dbPage := toDBUserPage(pm)
	rows, err := repo.db.NamedQueryContext(ctx, q, dbPage)
	if err != nil {
		return users.Page{}, postgres.HandleError(repoerr.ErrViewEntity, err)
	}
	defer rows.Close()

	items := []users.User{}
	for rows.Next() {
		dbu := dbUser{}
		if err := rows.StructScan(&dbu); err != nil {
			return users.Page{}, errors.Wrap(repoerr.ErrViewEntity, err)
		}
		items = append(items, toUser(dbu))
	}

	cq := fmt.Sprintf("SELECT COUNT(*) FROM users %s", query)
	total, err := postgres.Total(ctx, repo.db, cq, dbPage)
	if err != nil {
		return users.Page{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	page := users.Page{
		PageMeta: pm,
		Users:    items,
	}
	page.Total = total

	return page, nil
}

func (repo userRepository) Delete(ctx context.Context, id string) error {
	q := `DELETE FROM users WHERE id = :id`

	res, err := repo.db.NamedExecContext(ctx, q, dbUser{ID: id})
	if err != nil {
		return postgres.HandleError(repoerr.ErrRemoveEntity, err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return repoerr.ErrNotFound
	}

	return nil
}

type dbUser struct {
	ID           string         `db:"id"`
	Email        string         `db:"email"`
	Password     string         `db:"password"`
	Enabled      bool           `db:"enabled"`
	ConfirmToken sql.NullString `db:"confirm_token"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    sql.NullTime   `db:"updated_at"`
}

func toDBUser(u users.User) dbUser {
	var updatedAt sql.NullTime
	if !u.UpdatedAt.IsZero() {
		updatedAt = sql.NullTime{Time: u.UpdatedAt, Valid: true}
	}

	return dbUser{
		ID:           u.ID,
		Email:        u.Email,
		Password:     u.Password,
		Enabled:      u.Enabled,
		ConfirmToken: toNullString(u.ConfirmToken),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func toUser(dbu dbUser) users.User {
	var updatedAt time.Time
	if dbu.UpdatedAt.Valid {
		updatedAt = dbu.UpdatedAt.Time
	}

	return users.User{
		ID:           dbu.ID,
		Email:        dbu.Email,
		Password:     strings.TrimRight(dbu.Password, " "),
		Enabled:      dbu.Enabled,
		ConfirmToken: dbu.ConfirmToken.String,
		CreatedAt:    dbu.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func toNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}

	return sql.NullString{String: s, Valid: true}
}

type dbUserPage struct {
	Enabled sql.NullBool `db:"enabled"`
	Limit   uint64       `db:"limit"`
	Offset  uint64       `db:"offset"`
}

func toDBUserPage(pm users.PageMeta) dbUserPage {
	var enabled sql.NullBool
	if pm.Enabled != nil {
		enabled = sql.NullBool{Bool: *pm.Enabled, Valid: true}
	}

	return dbUserPage{
		Enabled: enabled,
		Limit:   pm.Count,
		Offset:  (pm.Page - 1) * pm.Count,
	}
}

func buildOrder(pm users.PageMeta) (string, error) {
	if len(pm.Sort) == 0 {
		return "ORDER BY created_at", nil
	}

	fields := make([]string, 0, len(pm.Sort))
	for field := range pm.Sort {
		if !sortableColumns[field] {
			return "", errors.Wrap(errInvalidSortField, errors.New(field))
		}
		fields = append(fields, field)
	}
	// Map iteration order is random; the clause has to come out the same
	// for the same sort spec.
	sort.Strings(fields)

	clauses := make([]string, 0, len(fields))
	for _, field := range fields {
		clauses = append(clauses, fmt.Sprintf("%s %s", field, pm.Sort[field]))
	}

	return "ORDER BY " + strings.Join(clauses, ", "), nil
}
