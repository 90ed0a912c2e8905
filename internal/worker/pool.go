package worker

import (
    "context"
    "sync"
    "time"

    "github.com/jackc/pgx/v5"
    "github.com/jackc/pgx/v5/pgxpool"
    "go.uber.org/zap"
)

// Pool рассылает напоминания о задачах, у которых подходит срок.
// Задача помечается reminded_at, чтобы два воркера не напомнили дважды
type Pool struct {
    pool   *pgxpool.Pool
    logger *zap.Logger
    count  int
    window time.Duration
    wg     sync.WaitGroup
    stop   chan struct{}
}

type reminder struct {
    TaskID  int64
    Title   string
    UserID  int64
    DueDate time.Time
}

func NewPool(pool *pgxpool.Pool, logger *zap.Logger, count int, window time.Duration) *Pool {
    return &Pool{
        pool:   pool,
        logger: logger,
        count:  count,
        window: window,
        stop:   make(chan struct{}),
    }
}

func (p *Pool) Start(ctx context.Context) {
    p.logger.Info("Starting reminder pool", zap.Int("workers", p.count))

    for i := 0; i < p.count; i++ {
        p.wg.Add(1)
        go p.worker(ctx, i)
    }
}

func (p *Pool) Stop() {
    p.logger.Info("Stopping reminder pool...")
    close(p.stop)
    p.wg.Wait()
    p.logger.Info("Reminder pool stopped")
}

func (p *Pool) worker(ctx context.Context, id int) {
    defer p.wg.Done()

    ticker := time.NewTicker(1 * time.Second)
    defer ticker.Stop()

    for {
        select {
        case <-p.stop:
            return
        case <-ctx.Done():
            return
        case <-ticker.C:
            if err := p.remindNext(ctx, id); err != nil && err != pgx.ErrNoRows {
                p.logger.Error("worker error", zap.Int("worker", id), zap.Error(err))
            }
        }
    }
}

func (p *Pool) remindNext(ctx context.Context, workerID int) error {
    rem, err := p.claimReminder(ctx)
    if err != nil {
        return err
    }

    overdue := time.Now().After(rem.DueDate)
    p.logger.Info("Task due",
        zap.Int("worker", workerID),
        zap.Int64("task_id", rem.TaskID),
        zap.Int64("user_id", rem.UserID),
        zap.String("title", rem.Title),
        zap.Time("due_date", rem.DueDate),
        zap.Bool("overdue", overdue),
    )
    return nil
}

func (p *Pool) claimReminder(ctx context.Context) (reminder, error) {
    var rem reminder

    // FOR UPDATE SKIP LOCKED, чтобы воркеры не дрались за одну задачу
    err := p.pool.QueryRow(ctx, `
        WITH claimed AS (
            SELECT id
            FROM tasks
            WHERE completed = false
              AND due_date IS NOT NULL
              AND due_date < $1
              AND reminded_at IS NULL
            ORDER BY due_date
            FOR UPDATE SKIP LOCKED
            LIMIT 1
        )
        UPDATE tasks
        SET reminded_at = now()
        FROM claimed
        WHERE tasks.id = claimed.id
        RETURNING tasks.id, tasks.title, tasks.user_id, tasks.due_date
    `, time.Now().Add(p.window)).Scan(&rem.TaskID, &rem.Title, &rem.UserID, &rem.DueDate)

    return rem, err
}
