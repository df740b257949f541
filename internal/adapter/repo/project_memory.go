package repo

import (
	"context"
	"sort"
	"sync"

	"gateway/internal/domain"
)

// ProjectRepositoryMemory is an in-process domain.ProjectRepository used
// when no DATABASE_URL is configured, and by handler tests.
type ProjectRepositoryMemory struct {
	mu       sync.RWMutex
	projects []domain.Project
}

// NewProjectRepositoryMemory creates an empty in-memory project store.
func NewProjectRepositoryMemory() *ProjectRepositoryMemory {
	return &ProjectRepositoryMemory{}
}

// Create appends a copy of the project.
func (r *ProjectRepositoryMemory) Create(_ context.Context, project *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects = append(r.projects, *project)
	return nil
}

// ListByOwner returns the owner's projects, newest first.
func (r *ProjectRepositoryMemory) ListByOwner(_ context.Context, ownerID string) ([]domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Project
	for _, p := range r.projects {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// CountByOwner returns how many projects the owner has.
func (r *ProjectRepositoryMemory) CountByOwner(_ context.Context, ownerID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, p := range r.projects {
		if p.OwnerID == ownerID {
			count++
		}
	}
	return count, nil
}
