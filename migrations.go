// Package evdemand embeds the database migrations so the binary can apply them
// without the source tree.
package evdemand

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
