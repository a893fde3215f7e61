package postgres

import "embed"

// MigrationsDir is the directory inside Migrations holding the goose files.
const MigrationsDir = "migrations"

// Migrations holds the goose SQL migrations, schema first, then the seed dataset.
//
//go:embed migrations/*.sql
var Migrations embed.FS
