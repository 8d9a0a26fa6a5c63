// Package database holds the SQL migrations of the service, embedded so the
// migrate command and tests do not depend on the working directory.
package database

import "embed"

// MigrationsDir is the directory inside Migrations holding the *.up.sql / *.down.sql pairs.
const MigrationsDir = "migrations"

//go:embed migrations/*.sql
var Migrations embed.FS
