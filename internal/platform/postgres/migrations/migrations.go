// Package migrations embeds the goose SQL migrations for the clientes
// database schema.
package migrations

import "embed"

// Migrations holds the embedded SQL migration files, run by goose at
// application startup.
//
//go:embed *.sql
var Migrations embed.FS
