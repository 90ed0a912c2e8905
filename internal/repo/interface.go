package repo

import (
	"context"

	"github.com/BuzzLyutic/todo-auth-api/internal/model"
)

// TaskRepository определяет интерфейс для работы с задачами.
// Все операции ограничены владельцем - чужие задачи не видны
type TaskRepository interface {
	Create(ctx context.Context, t model.Task) (model.Task, error)
	Get(ctx context.Context, ownerID, id int64) (model.Task, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Task, error)
	Update(ctx context.Context, t model.Task) (model.Task, error)
	Delete(ctx context.Context, ownerID, id int64) error
	StatsByOwner(ctx context.Context, ownerID int64) (Stats, error)
}

// UserRepository определяет интерфейс для работы с пользователями
type UserRepository interface {
	Create(ctx context.Context, u model.User) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
}

type Stats struct {
	Total     int64 `json:"total"`
	Completed int64 `json:"completed"`
	Pending   int64 `json:"pending"`
	Overdue   int64 `json:"overdue"`
}
