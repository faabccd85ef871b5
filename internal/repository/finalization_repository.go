package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/pkg/cleanup"
)

// FinalizationRepository owns the transactional part of rolling a day over:
// the score freeze and the streak counters must never disagree, so both
// writes happen in one transaction.
type FinalizationRepository struct {
	conn PgConnection
}

func NewFinalizationRepo(cfg DBConfig) *FinalizationRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for finalizationRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for finalizationRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing finalizationRepo pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &FinalizationRepository{
		conn: pool,
	}
}

func NewFinalizationRepoWithConn(conn PgConnection) *FinalizationRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for finalizationRepo: " + err.Error())
	}
	return &FinalizationRepository{
		conn: conn,
	}
}

func (fr *FinalizationRepository) FinalizeDay(ctx context.Context, params FinalizeDayParams) error {
	tx, err := fr.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning finalize tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	// The is_finalized guard serializes concurrent finalize calls: only the
	// first one flips the flag, the rest see zero affected rows
	ct, err := tx.Exec(ctx, `UPDATE daily_entries SET score = $1, is_finalized = TRUE, auto_finalized = $2, finalized_at = NOW(), updated_at = NOW()
		WHERE id = $3 AND is_finalized = FALSE;`,
		params.Score,
		params.AutoFinalized,
		params.EntryID,
	)
	if err != nil {
		return errors.New("freezing entry score error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrAlreadyFinalized
	}

	// GREATEST keeps longest_streak monotonic regardless of what the caller
	// computed from a possibly stale read
	_, err = tx.Exec(ctx, `INSERT INTO streaks (user_id, current_streak, longest_streak, last_activity_date)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET current_streak = EXCLUDED.current_streak,
			longest_streak = GREATEST(streaks.longest_streak, EXCLUDED.longest_streak),
			last_activity_date = EXCLUDED.last_activity_date,
			updated_at = NOW();`,
		params.UserID,
		params.CurrentStreak,
		params.LongestStreak,
		params.LastActivityDate,
	)
	if err != nil {
		return errors.New("writing streak error: " + err.Error())
	}

	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing finalize tx error: " + err.Error())
	}
	return nil
}

func (fr *FinalizationRepository) UndoDay(ctx context.Context, entryID, uid uuid.UUID) error {
	tx, err := fr.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning undo tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	ct, err := tx.Exec(ctx, `UPDATE daily_entries SET score = 0, is_finalized = FALSE, auto_finalized = FALSE, finalized_at = NULL, updated_at = NOW()
		WHERE id = $1 AND is_finalized = TRUE;`,
		entryID,
	)
	if err != nil {
		return errors.New("reopening entry error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrNotFinalized
	}

	// Best-effort reversal: longest_streak stays as is, current_streak loses
	// one day with a floor at zero
	_, err = tx.Exec(ctx, `UPDATE streaks SET current_streak = GREATEST(current_streak - 1, 0), updated_at = NOW() WHERE user_id = $1;`, uid)
	if err != nil {
		return errors.New("decrementing streak error: " + err.Error())
	}

	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing undo tx error: " + err.Error())
	}
	return nil
}
