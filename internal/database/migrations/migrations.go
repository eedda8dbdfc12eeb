// Package migrations embeds the SQL that provisions the auth database.
//
// Every statement is written to be re-runnable (CREATE ... IF NOT EXISTS):
// the files are applied on each setup run without a version ledger.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
