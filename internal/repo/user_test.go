// internal/repo/user_test.go
package repo

import (
    "context"
    "testing"

    "github.com/BuzzLyutic/todo-auth-api/internal/model"
)

func TestUserRepo_Create(t *testing.T) {
    pool := setupTestDB(t)
    defer pool.Close()

    repo := NewUserRepo(pool)
    user := model.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash"}

    created, err := repo.Create(context.Background(), user)
    if err != nil {
        t.Fatal(err)
    }
    if created.ID == 0 {
        t.Error("expected non-zero ID")
    }

    // Повторный email дает ErrorDuplicate, даже если остальные поля другие
    dup := model.User{Username: "alice2", Email: "alice@example.com", PasswordHash: "hash2"}
    if _, err := repo.Create(context.Background(), dup); err != ErrorDuplicate {
        t.Errorf("expected ErrorDuplicate, got %v", err)
    }
}

func TestUserRepo_GetByEmail(t *testing.T) {
    pool := setupTestDB(t)
    defer pool.Close()

    repo := NewUserRepo(pool)
    created, err := repo.Create(context.Background(), model.User{
        Username: "bob", Email: "bob@example.com", PasswordHash: "hash",
    })
    if err != nil {
        t.Fatal(err)
    }

    found, err := repo.GetByEmail(context.Background(), "bob@example.com")
    if err != nil {
        t.Fatal(err)
    }
    if found.ID != created.ID {
        t.Errorf("expected id %d, got %d", created.ID, found.ID)
    }

    if _, err := repo.GetByEmail(context.Background(), "nobody@example.com"); err != ErrorNotFound {
        t.Errorf("expected ErrorNotFound, got %v", err)
    }
}
