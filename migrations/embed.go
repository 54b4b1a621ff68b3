// Package migrations embeds the forward-only SQL migrations that
// internal/db applies on startup. Files are named NNNN_description.sql
// and run in numeric order.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS
