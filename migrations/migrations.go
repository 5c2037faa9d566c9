// Package migrations embeds the goose SQL migrations so the binary can run
// them at startup without shipping loose files. Each supported driver has its
// own directory because the id columns need dialect-specific DDL: sqlite only
// autoincrements an INTEGER PRIMARY KEY rowid alias, postgres uses BIGSERIAL.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS
