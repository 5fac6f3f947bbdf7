// Package migrations embeds the SQL schema applied at startup.
package migrations

import "embed"

// FS holds the up and down migrations at its root.
//
//go:embed *.sql
var FS embed.FS
