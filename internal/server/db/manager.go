// Package db wires the database connection, the repositories, and the
// startup migrations together behind a single manager.
package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/formhub/internal/server/forms"
	"github.com/dmitrijs2005/formhub/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Forms() forms.Repository
}
