// Package tasks implements task persistence and the task service. Every
// repository query is filtered by the owning user's ID; the ownership
// predicate lives here, at the data-access boundary, so a handler cannot
// forget it.
package tasks

import (
	"context"

	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

// Repository is the task store contract. Status and priority on Create are
// pointers: nil means the field was absent from the request and the schema
// default applies; a non-nil empty string is stored verbatim.
type Repository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Task, error)
	Create(ctx context.Context, task *models.Task, status, priority *string) (*models.Task, error)
	Delete(ctx context.Context, id string, ownerID string) error
	UpdateStatus(ctx context.Context, id string, ownerID string, status string) (*models.Task, error)
	UpdatePriority(ctx context.Context, id string, ownerID string, priority string) (*models.Task, error)
	UpdateText(ctx context.Context, id string, ownerID string, text string) (*models.Task, error)
}
