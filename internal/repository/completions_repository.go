package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/pkg/cleanup"
	"github.com/limbo/momentum/pkg/entity"
)

type CompletionsRepository struct {
	conn PgConnection
}

func NewCompletionsRepo(cfg DBConfig) *CompletionsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for completionsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for completionsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing completionsRepo pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &CompletionsRepository{
		conn: pool,
	}
}

func NewCompletionsRepoWithConn(conn PgConnection) *CompletionsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for completionsRepo: " + err.Error())
	}
	return &CompletionsRepository{
		conn: conn,
	}
}

func (cr *CompletionsRepository) Upsert(ctx context.Context, completion *entity.ActivityCompletion) (*entity.ActivityCompletion, error) {
	result := entity.ActivityCompletion{
		DailyEntryID: completion.DailyEntryID,
		ActivityID:   completion.ActivityID,
	}
	row := cr.conn.QueryRow(ctx, `INSERT INTO activity_completions (daily_entry_id, activity_id, completed, duration, completed_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (daily_entry_id, activity_id) DO UPDATE
		SET completed = EXCLUDED.completed, duration = EXCLUDED.duration, completed_at = EXCLUDED.completed_at
		RETURNING id, completed, duration, completed_at;`,
		completion.DailyEntryID,
		completion.ActivityID,
		completion.Completed,
		completion.Duration,
		completion.CompletedAt,
	)
	if err := row.Scan(&result.ID, &result.Completed, &result.Duration, &result.CompletedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return nil, errorvalues.ErrEntryNotFound
			}
		}
		return nil, errors.New("upserting completion error: " + err.Error())
	}
	return &result, nil
}

func (cr *CompletionsRepository) GetByEntryID(ctx context.Context, entryID uuid.UUID) ([]entity.ActivityCompletion, error) {
	rows, err := cr.conn.Query(ctx, `SELECT id, daily_entry_id, activity_id, completed, duration, completed_at
		FROM activity_completions WHERE daily_entry_id = $1;`,
		entryID,
	)
	if err != nil {
		return nil, errors.New("getting completions error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.ActivityCompletion, 0)
	for rows.Next() {
		c := entity.ActivityCompletion{}
		err = rows.Scan(&c.ID, &c.DailyEntryID, &c.ActivityID, &c.Completed, &c.Duration, &c.CompletedAt)
		if err != nil {
			return nil, errors.New("completion row parsing error: " + err.Error())
		}
		result = append(result, c)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected completion rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (cr *CompletionsRepository) SeedForEntry(ctx context.Context, entryID uuid.UUID, activityIDs []uuid.UUID) error {
	for _, activityID := range activityIDs {
		_, err := cr.conn.Exec(ctx, `INSERT INTO activity_completions (daily_entry_id, activity_id, completed) VALUES ($1, $2, FALSE)
			ON CONFLICT (daily_entry_id, activity_id) DO NOTHING;`,
			entryID,
			activityID,
		)
		if err != nil {
			return errors.New("seeding completions error: " + err.Error())
		}
	}
	return nil
}
