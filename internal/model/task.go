package model

import (
	"encoding/json"
	"time"
)

type Task struct {
	ID int64 `json:"id"`
	Title string `json:"title"`
	Completed bool `json:"completed"`
	Category string `json:"category"`
	DueDate *time.Time `json:"due_date"` // nil сериализуется как null
	Description string `json:"description"`
	UserID int64 `json:"user_id"`
	CreatedAt time.Time `json:"-"`
}

// TaskCreate - тело POST /tasks. Обязателен только title
type TaskCreate struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	DueDate     string `json:"due_date"`
	Description string `json:"description"`
}

// TaskUpdate - тело PUT /tasks/{id}. Меняются только присланные поля.
// DueDate как RawMessage различает три случая: поле отсутствует (nil),
// прислан null (сброс даты), прислана строка (перепарсить)
type TaskUpdate struct {
	Title       *string         `json:"title"`
	Completed   *bool           `json:"completed"`
	Category    *string         `json:"category"`
	Description *string         `json:"description"`
	DueDate     json.RawMessage `json:"due_date"`
}
