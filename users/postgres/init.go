// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

package postgres

import (
	_ "github.com/jackc/pgx/v5/stdlib" // required for SQL access
	migrate "github.com/rubenv/sql-migrate"
)

// Migration of the users table.
func Migration() *migrate.MemoryMigrationSource {
	return &migrate.MemoryMigrationSource{
		Migrations: []*migrate.Migration{
			{
				Id: "users_01",
				Up: []string{
					`CREATE TABLE IF NOT EXISTS users (
						id				VARCHAR(36) PRIMARY KEY,
						email			VARCHAR(254) NOT NULL,
						password		CHAR(60) NOT NULL,
						enabled			BOOLEAN NOT NULL DEFAULT false,
						confirm_token	VARCHAR(36),
						created_at		TIMESTAMP,
						updated_at		TIMESTAMP,
						UNIQUE			(email)
					)`,
				},
				Down: []string{
					`DROP TABLE IF EXISTS users`,
				},
			},
		},
	}
}
