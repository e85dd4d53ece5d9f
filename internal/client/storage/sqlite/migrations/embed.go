// Package migrations embeds the sqlite schema migrations for the session
// state store, applied with goose at open time.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
