// Package migrations embeds the SQL schema so the binary and the tests apply
// exactly the same migrations.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
