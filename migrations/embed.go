// Package migrations embeds the document archive and audit trail migrations into the binary.
package migrations

import (
	"embed"

	"github.com/nerrad567/rigdesc/internal/infrastructure/database"
)

//go:embed *.sql
var migrationsFS embed.FS

func init() {
	database.Migrations = migrationsFS
}
