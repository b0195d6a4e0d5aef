package tasks

import (
	"context"

	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/google/uuid"
)

// Service wraps the repository. Every method takes the verified owner ID
// from the request context as an explicit argument; there is no path into
// the repository that skips it.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, ownerID string) ([]*models.Task, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *Service) Create(ctx context.Context, ownerID string, text string, status, priority *string) (*models.Task, error) {
	task := &models.Task{
		ID:     uuid.NewString(),
		UserID: ownerID,
		Text:   text,
	}
	return s.repo.Create(ctx, task, status, priority)
}

func (s *Service) Delete(ctx context.Context, id string, ownerID string) error {
	return s.repo.Delete(ctx, id, ownerID)
}

func (s *Service) UpdateStatus(ctx context.Context, id string, ownerID string, status string) (*models.Task, error) {
	return s.repo.UpdateStatus(ctx, id, ownerID, status)
}

func (s *Service) UpdatePriority(ctx context.Context, id string, ownerID string, priority string) (*models.Task, error) {
	return s.repo.UpdatePriority(ctx, id, ownerID, priority)
}

func (s *Service) UpdateText(ctx context.Context, id string, ownerID string, text string) (*models.Task, error) {
	return s.repo.UpdateText(ctx, id, ownerID, text)
}
