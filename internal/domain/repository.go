package domain

import "context"

// ProjectRepository defines persistence for projects. CountByOwner is the
// current-usage source consulted before limit enforcement.
type ProjectRepository interface {
	Create(ctx context.Context, project *Project) error
	ListByOwner(ctx context.Context, ownerID string) ([]Project, error)
	CountByOwner(ctx context.Context, ownerID string) (int, error)
}
