// Package db wires the database connection to the repositories: it opens
// the pool, runs schema migrations, and vends repository implementations.
package db

import (
	"context"

	"github.com/dmitrijs2005/taskkeeper/internal/server/tasks"
	"github.com/dmitrijs2005/taskkeeper/internal/server/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Tasks() tasks.Repository
	RunMigrations(ctx context.Context) error
	Close() error
}
