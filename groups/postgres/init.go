// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

package postgres

import (
	_ "github.com/jackc/pgx/v5/stdlib" // required for SQL access
	migrate "github.com/rubenv/sql-migrate"
)

// Migration of the groups table.
func Migration() *migrate.MemoryMigrationSource {
	return &migrate.MemoryMigrationSource{
		Migrations: []*migrate.Migration{
			{
				Id: "groups_01",
				Up: []string{
					`CREATE TABLE IF NOT EXISTS groups (
						id			VARCHAR(36) PRIMARY KEY,
						name		VARCHAR(1024) NOT NULL,
						enabled		BOOLEAN NOT NULL DEFAULT true,
						metadata	JSONB,
						created_at	TIMESTAMP,
						updated_at	TIMESTAMP,
						UNIQUE		(name)
					)`,
				},
				Down: []string{
					`DROP TABLE IF EXISTS groups`,
				},
			},
		},
	}
}
