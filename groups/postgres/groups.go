// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/asterna/accounts/groups"
	"github.com/asterna/accounts/pkg/errors"
	repoerr "github.com/asterna/accounts/pkg/errors/repository"
	"github.com/asterna/accounts/pkg/postgres"
)

// Sortable columns of the groups table. Anything else in the sort
// specification is rejected before reaching the query.
var sortableColumns = map[string]bool{
	"id":         true,
	"name":       true,
	"enabled":    true,
	"created_at": true,
	"updated_at": true,
}

var errInvalidSortField = errors.New("invalid sort field")

var _ groups.Repository = (*groupRepository)(nil)

type groupRepository struct {
	db postgres.Database
}

// New instantiates a PostgreSQL implementation of group repository.
func New(db postgres.Database) groups.Repository {
	return &groupRepository{
		db: db,
	}
}

func (repo groupRepository) Save(ctx context.Context, g groups.Group) (groups.Group, error) {
	q := `INSERT INTO groups (id, name, enabled, metadata, created_at)
		VALUES (:id, :name, :enabled, :metadata, :created_at)
		RETURNING id, name, enabled, metadata, created_at, updated_at`
	dbg, err := toDBGroup(g)
	if err != nil {
		return groups.Group{}, errors.Wrap(repoerr.ErrCreateEntity, err)
	}

	row, err := repo.db.NamedQueryContext(ctx, q, dbg)
	if err != nil {
		return groups.Group{}, postgres.HandleError(repoerr.ErrCreateEntity, err)
	}
	defer row.Close()

	row.Next()
	dbg = dbGroup{}
	if err := row.StructScan(&dbg); err != nil {
		return groups.Group{}, errors.Wrap(repoerr.ErrCreateEntity, err)
	}

	return toGroup(dbg)
}

func (repo groupRepository) Update(ctx context.Context, g groups.Group) (groups.Group, error) {
	q := `UPDATE groups SET name = :name, enabled = :enabled, metadata = :metadata, updated_at = :updated_at
		WHERE id = :id
		RETURNING id, name, enabled, metadata, created_at, updated_at`

	dbg, err := toDBGroup(g)
	if err != nil {
		return groups.Group{}, errors.Wrap(repoerr.ErrUpdateEntity, err)
	}

	row, err := repo.db.NamedQueryContext(ctx, q, dbg)
	if err != nil {
		return groups.Group{}, postgres.HandleError(repoerr.ErrUpdateEntity, err)
	}
	defer row.Close()

	if ok := row.Next(); !ok {
		return groups.Group{}, errors.Wrap(repoerr.ErrNotFound, row.Err())
	}
	dbg = dbGroup{}
	if err := row.StructScan(&dbg); err != nil {
		return groups.Group{}, errors.Wrap(repoerr.ErrUpdateEntity, err)
	}

	return toGroup(dbg)
}

func (repo groupRepository) RetrieveByID(ctx context.Context, id string) (groups.Group, error) {
	q := `SELECT id, name, enabled, metadata, created_at, updated_at FROM groups WHERE id = :id`

	dbg := dbGroup{
		ID: id,
	}

	row, err := repo.db.NamedQueryContext(ctx, q, dbg)
	if err != nil {
		return groups.Group{}, postgres.HandleError(repoerr.ErrViewEntity, err)
	}
	defer row.Close()

	if ok := row.Next(); !ok {
		return groups.Group{}, errors.Wrap(repoerr.ErrNotFound, row.Err())
	}
	dbg = dbGroup{}
	if err := row.StructScan(&dbg); err != nil {
		return groups.Group{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	return toGroup(dbg)
}

func (repo groupRepository) RetrieveAll(ctx context.Context, pm groups.PageMeta) (groups.Page, error) {
	query, err := buildQuery(pm)
	if err != nil {
		return groups.Page{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}
	order, err := buildOrder(pm)
	if err != nil {
		return groups.Page{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	q := fmt.Sprintf(`SELECT id, name, enabled, metadata, created_at, updated_at FROM groups %s %s LIMIT :limit OFFSET :offset`, query, order)

	dbPage := toDBGroupPage(pm)
	rows, err := repo.db.NamedQueryContext(ctx, q, dbPage)
	if err != nil {
		return groups.Page{}, postgres.HandleError(repoerr.ErrViewEntity, err)
	}
	defer rows.Close()

	items := []groups.Group{}
	for rows.Next() {
		dbg := dbGroup{}
		if err := rows.StructScan(&dbg); err != nil {
			return groups.Page{}, errors.Wrap(repoerr.ErrViewEntity, err)
		}
		group, err := toGroup(dbg)
		if err != nil {
			return groups.Page{}, errors.Wrap(repoerr.ErrViewEntity, err)
		}
		items = append(items, group)
	}

	cq := fmt.Sprintf("SELECT COUNT(*) FROM groups %s", query)
	total, err := postgres.Total(ctx, repo.db, cq, dbPage)
	if err != nil {
		return groups.Page{}, errors.Wrap(repoerr.ErrViewEntity, err)
	}

	page := groups.Page{
		PageMeta: pm,
		Groups:   items,
	}
	page.Total = total

	return page, nil
}

func (repo groupRepository) Delete(ctx context.Context, id string) error {
	q := `DELETE FROM groups WHERE id = :id`

	res, err := repo.db.NamedExecContext(ctx, q, dbGroup{ID: id})
	if err != nil {
		return postgres.HandleError(repoerr.ErrRemoveEntity, err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return repoerr.ErrNotFound
	}

	return nil
}

type dbGroup struct {
	ID        string       `db:"id"`
	Name      string       `db:"name"`
	Enabled   bool         `db:"enabled"`
	Metadata  []byte       `db:"metadata"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt sql.NullTime `db:"updated_at"`
}

func toDBGroup(g groups.Group) (dbGroup, error) {
	data := []byte("{}")
	if len(g.Metadata) > 0 {
		b, err := json.Marshal(g.Metadata)
		if err != nil {
			return dbGroup{}, errors.Wrap(repoerr.ErrMalformedEntity, err)
		}
		data = b
	}
	var updatedAt sql.NullTime
	if !g.UpdatedAt.IsZero() {
		updatedAt = sql.NullTime{Time: g.UpdatedAt, Valid: true}
	}

	return dbGroup{
		ID:        g.ID,
		Name:      g.Name,
		Enabled:   g.Enabled,
		Metadata:  data,
		CreatedAt: g.CreatedAt,
		UpdatedAt: updatedAt,
	}, nil
}

func toGroup(dbg dbGroup) (groups.Group, error) {
	var metadata groups.Metadata
	if len(dbg.Metadata) > 0 {
		if err := json.Unmarshal(dbg.Metadata, &metadata); err != nil {
			return groups.Group{}, errors.Wrap(repoerr.ErrMalformedEntity, err)
		}
	}
	var updatedAt time.Time
	if dbg.UpdatedAt.Valid {
		updatedAt = dbg.UpdatedAt.Time
	}

	return groups.Group{
		ID:        dbg.ID,
		Name:      dbg.Name,
		Enabled:   dbg.Enabled,
		Metadata:  metadata,
		CreatedAt: dbg.CreatedAt,
		UpdatedAt: updatedAt,
	}, nil
}

type dbGroupPage struct {
	Enabled sql.NullBool `db:"enabled"`
	Limit   uint64       `db:"limit"`
	Offset  uint64       `db:"offset"`
}

func toDBGroupPage(pm groups.PageMeta) dbGroupPage {
	var enabled sql.NullBool
	if pm.Enabled != nil {
		enabled = sql.NullBool{Bool: *pm.Enabled, Valid: true}
	}

	return dbGroupPage{
		Enabled: enabled,
		Limit:   pm.Count,
		Offset:  (pm.Page - 1) * pm.Count,
	}
}

func buildQuery(pm groups.PageMeta) (string, error) {
	if pm.Enabled == nil {
		return "", nil
	}

	return "WHERE enabled = :enabled", nil
}

func buildOrder(pm groups.PageMeta) (string, error) {
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
