// Package migrations embeds the admin store schema.
package migrations

import "embed"

// FS holds the forward-only SQL migrations in lexical order.
//
//go:embed *.sql
var FS embed.FS
