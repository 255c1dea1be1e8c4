package repository

import (
	"context"
	"errors"

	"gtd_assistant/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("not found")

const taskColumns = `id, user_id, title, COALESCE(description, ''), status, completed, completed_at,
		due_date, defer_date, waiting_for, project_id, contexts, COALESCE(energy, ''),
		COALESCE(estimated_minutes, 0), COALESCE(recurrence, ''), created_at, updated_at`

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

// ListByUser returns all of a user's tasks in creation order. The
// lifecycle engine and the suggestion selector both rely on this order
// being stable between calls.
func (r *TaskRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Task, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE user_id = $1 ORDER BY created_at, id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, rows.Err()
}

func (r *TaskRepository) GetByID(ctx context.Context, userID int64, id string) (*domain.Task, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE user_id = $1 AND id = $2`,
		userID, id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, ErrNotFound
	}
	return scanTask(rows)
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO tasks (id, user_id, title, description, status, due_date, defer_date,
				waiting_for, project_id, contexts, energy, estimated_minutes, recurrence)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		 RETURNING created_at, updated_at`,
		t.ID, t.UserID, t.Title, t.Description, t.Status, t.DueDate, t.DeferDate,
		t.WaitingFor, t.ProjectID, t.Contexts, string(t.Energy), t.EstimatedMinutes, string(t.Recurrence),
	).Scan(&t.CreatedAt, &t.UpdatedAt)
}

// Update rewrites every editable field of the task.
func (r *TaskRepository) Update(ctx context.Context, t *domain.Task) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE tasks
		 SET title = $1, description = $2, status = $3, completed = $4, completed_at = $5,
			 due_date = $6, defer_date = $7, waiting_for = $8, project_id = $9, contexts = $10,
			 energy = $11, estimated_minutes = $12, recurrence = $13, updated_at = now()
		 WHERE user_id = $14 AND id = $15`,
		t.Title, t.Description, t.Status, t.Completed, t.CompletedAt,
		t.DueDate, t.DeferDate, t.WaitingFor, t.ProjectID, t.Contexts,
		string(t.Energy), t.EstimatedMinutes, string(t.Recurrence),
		t.UserID, t.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateStatus persists a lifecycle move: the status field plus the
// waiting-for set, which PromoteReady clears on promotion.
func (r *TaskRepository) UpdateStatus(ctx context.Context, userID int64, id string, status domain.Status, waitingFor []string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE tasks SET status = $1, waiting_for = $2, updated_at = now()
		 WHERE user_id = $3 AND id = $4`,
		status, waitingFor, userID, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, userID int64, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanTask(rows pgx.Rows) (*domain.Task, error) {
	var t domain.Task
	var energy, recurrence string
	if err := rows.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.Status, &t.Completed, &t.CompletedAt,
		&t.DueDate, &t.DeferDate, &t.WaitingFor, &t.ProjectID, &t.Contexts, &energy,
		&t.EstimatedMinutes, &recurrence, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	t.Energy = domain.Energy(energy)
	t.Recurrence = domain.Recurrence(recurrence)
	return &t, nil
}
