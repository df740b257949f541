package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"gateway/internal/domain"
)

// ProjectRepositoryPG implements domain.ProjectRepository backed by PostgreSQL.
type ProjectRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewProjectRepository creates a new ProjectRepositoryPG.
func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepositoryPG {
	return &ProjectRepositoryPG{pool: pool}
}

// Create inserts a project row.
func (r *ProjectRepositoryPG) Create(ctx context.Context, project *domain.Project) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO projects (id, owner_id, name, created_at)
VALUES ($1, $2, $3, $4);
`, project.ID, project.OwnerID, project.Name, project.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// ListByOwner fetches the owner's projects, newest first.
func (r *ProjectRepositoryPG) ListByOwner(ctx context.Context, ownerID string) ([]domain.Project, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, owner_id, name, created_at
FROM projects
WHERE owner_id = $1
ORDER BY created_at DESC;
`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return projects, nil
}

// CountByOwner returns how many projects the owner currently has. This is
// the usage figure consulted before limit enforcement.
func (r *ProjectRepositoryPG) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	row := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM projects WHERE owner_id = $1`, ownerID)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return count, nil
}
