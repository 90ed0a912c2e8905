package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BuzzLyutic/todo-auth-api/internal/model"
)

var (
	ErrorNotFound  = errors.New("not found")
	ErrorDuplicate = errors.New("duplicate")
)

type TaskRepo struct { // Репозиторий для работы непосредственно с БД
	pool *pgxpool.Pool
}

func NewTaskRepo(pool *pgxpool.Pool) *TaskRepo { // Конструктор
	return &TaskRepo{
		pool: pool,
	}
}

func (r *TaskRepo) Create(ctx context.Context, t model.Task) (model.Task, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (title, completed, category, due_date, description, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, title, completed, category, due_date, description, user_id, created_at
	`, t.Title, t.Completed, t.Category, t.DueDate, t.Description, t.UserID).Scan(
		&t.ID, &t.Title, &t.Completed, &t.Category, &t.DueDate, &t.Description, &t.UserID, &t.CreatedAt,
	)
	return t, mapError(err)
}

// Get ищет задачу по id И владельцу. Чужая задача дает тот же
// ErrorNotFound, что и несуществующая - существование не раскрывается
func (r *TaskRepo) Get(ctx context.Context, ownerID, id int64) (model.Task, error) {
	var t model.Task
	err := r.pool.QueryRow(ctx, `
		SELECT id, title, completed, category, due_date, description, user_id, created_at
		FROM tasks
		WHERE id = $1 AND user_id = $2
	`, id, ownerID).Scan(
		&t.ID, &t.Title, &t.Completed, &t.Category, &t.DueDate, &t.Description, &t.UserID, &t.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return t, ErrorNotFound
	}
	return t, err
}

func (r *TaskRepo) ListByOwner(ctx context.Context, ownerID int64) ([]model.Task, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, completed, category, due_date, description, user_id, created_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY id
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed, &t.Category, &t.DueDate, &t.Description, &t.UserID, &t.CreatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *TaskRepo) Update(ctx context.Context, t model.Task) (model.Task, error) {
	// reminded_at сбрасывается, чтобы напоминание сработало заново после правки
	err := r.pool.QueryRow(ctx, `
		UPDATE tasks
		SET title = $3, completed = $4, category = $5, due_date = $6, description = $7, reminded_at = NULL
		WHERE id = $1 AND user_id = $2
		RETURNING id, title, completed, category, due_date, description, user_id, created_at
	`, t.ID, t.UserID, t.Title, t.Completed, t.Category, t.DueDate, t.Description).Scan(
		&t.ID, &t.Title, &t.Completed, &t.Category, &t.DueDate, &t.Description, &t.UserID, &t.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return t, ErrorNotFound
	}
	return t, err
}

func (r *TaskRepo) Delete(ctx context.Context, ownerID, id int64) error {
	cmd, err := r.pool.Exec(ctx, "DELETE FROM tasks WHERE id = $1 AND user_id = $2", id, ownerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrorNotFound
	}
	return nil
}

func (r *TaskRepo) StatsByOwner(ctx context.Context, ownerID int64) (Stats, error) {
	var s Stats
	err := r.pool.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE completed),
			COUNT(*) FILTER (WHERE NOT completed),
			COUNT(*) FILTER (WHERE NOT completed AND due_date IS NOT NULL AND due_date < now())
		FROM tasks
		WHERE user_id = $1
	`, ownerID).Scan(&s.Total, &s.Completed, &s.Pending, &s.Overdue)
	return s, err
}

func mapError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" { // unique_violation
			return ErrorDuplicate
		}
	}
	return err
}
