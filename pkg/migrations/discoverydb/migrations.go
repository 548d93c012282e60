// Package discoverydb holds all the migrations for the vault discovery database
package discoverydb

import (
	"github.com/uptrace/bun/migrate"
)

// Migrations is the ordered set of discovery database migrations.
var Migrations = migrate.NewMigrations()
