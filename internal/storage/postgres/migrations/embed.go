package migrations

import "embed"

// Migrations holds the goose SQL migrations for the postgres backend
//
//go:embed *.sql
var Migrations embed.FS
