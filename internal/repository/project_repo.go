package repository

import (
	"context"
	"errors"

	"gtd_assistant/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProjectRepository struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Project, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, title, status, created_at
		 FROM projects WHERE user_id = $1 ORDER BY created_at, id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Status, &p.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, &p)
	}
	return res, rows.Err()
}

// StatusesByID returns the project status lookup the scorer consumes.
func (r *ProjectRepository) StatusesByID(ctx context.Context, userID int64) (map[string]domain.ProjectStatus, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, status FROM projects WHERE user_id = $1`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statuses := make(map[string]domain.ProjectStatus)
	for rows.Next() {
		var id string
		var status domain.ProjectStatus
		if err := rows.Scan(&id, &status); err != nil {
			return nil, err
		}
		statuses[id] = status
	}
	return statuses, rows.Err()
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO projects (id, user_id, title, status) VALUES ($1,$2,$3,$4)
		 RETURNING created_at`,
		p.ID, p.UserID, p.Title, p.Status,
	).Scan(&p.CreatedAt)
}

func (r *ProjectRepository) UpdateStatus(ctx context.Context, userID int64, id string, status domain.ProjectStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE projects SET status = $1 WHERE user_id = $2 AND id = $3`,
		status, userID, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, userID int64, id string) (*domain.Project, error) {
	var p domain.Project
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, title, status, created_at
		 FROM projects WHERE user_id = $1 AND id = $2`,
		userID, id,
	).Scan(&p.ID, &p.UserID, &p.Title, &p.Status, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
