package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/pkg/cleanup"
	"github.com/limbo/momentum/pkg/entity"
)

type EntriesRepository struct {
	conn PgConnection
}

func NewEntriesRepo(cfg DBConfig) *EntriesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for entriesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for entriesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing entriesRepo pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &EntriesRepository{
		conn: pool,
	}
}

func NewEntriesRepoWithConn(conn PgConnection) *EntriesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for entriesRepo: " + err.Error())
	}
	return &EntriesRepository{
		conn: conn,
	}
}

func (er *EntriesRepository) Create(ctx context.Context, entry *entity.DailyEntry) (uuid.UUID, error) {
	var id uuid.UUID
	row := er.conn.QueryRow(ctx, `INSERT INTO daily_entries (user_id, date, reflection, score) VALUES ($1, $2, $3, $4) RETURNING id;`,
		entry.UserID,
		entry.Date,
		entry.Reflection,
		entry.Score,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return uuid.UUID{}, errorvalues.ErrEntryExists
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrUserNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating daily entry db error: " + err.Error())
	}
	return id, nil
}

func (er *EntriesRepository) CreateIfAbsent(ctx context.Context, uid uuid.UUID, date time.Time) error {
	_, err := er.conn.Exec(ctx, `INSERT INTO daily_entries (user_id, date, reflection, score) VALUES ($1, $2, '', 0)
		ON CONFLICT (user_id, date) DO NOTHING;`,
		uid,
		date,
	)
	if err != nil {
		return errors.New("provisioning daily entry error: " + err.Error())
	}
	return nil
}

func (er *EntriesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.DailyEntry, error) {
	var entry entity.DailyEntry
	entry.ID = id
	row := er.conn.QueryRow(ctx, `SELECT user_id, date, reflection, score, is_finalized, auto_finalized, finalized_at, created_at, updated_at
		FROM daily_entries WHERE id = $1;`, id)
	err := row.Scan(&entry.UserID, &entry.Date, &entry.Reflection, &entry.Score, &entry.IsFinalized,
		&entry.AutoFinalized, &entry.FinalizedAt, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrEntryNotFound
		}
		return nil, errors.New("getting daily entry by id error: " + err.Error())
	}
	return &entry, nil
}

func (er *EntriesRepository) GetByUserAndDate(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.DailyEntry, error) {
	var entry entity.DailyEntry
	row := er.conn.QueryRow(ctx, `SELECT id, user_id, date, reflection, score, is_finalized, auto_finalized, finalized_at, created_at, updated_at
		FROM daily_entries WHERE user_id = $1 AND date = $2;`, uid, date)
	err := row.Scan(&entry.ID, &entry.UserID, &entry.Date, &entry.Reflection, &entry.Score, &entry.IsFinalized,
		&entry.AutoFinalized, &entry.FinalizedAt, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrEntryNotFound
		}
		return nil, errors.New("getting daily entry by date error: " + err.Error())
	}
	return &entry, nil
}

func (er *EntriesRepository) GetByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]*entity.DailyEntry, error) {
	rows, err := er.conn.Query(ctx, `SELECT id, user_id, date, reflection, score, is_finalized, auto_finalized, finalized_at, created_at, updated_at
		FROM daily_entries WHERE user_id = $1 AND date >= $2 AND date <= $3 ORDER BY date DESC;`,
		uid,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting daily entries for period error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.DailyEntry, 0)
	for rows.Next() {
		entry := entity.DailyEntry{}
		err = rows.Scan(&entry.ID, &entry.UserID, &entry.Date, &entry.Reflection, &entry.Score, &entry.IsFinalized,
			&entry.AutoFinalized, &entry.FinalizedAt, &entry.CreatedAt, &entry.UpdatedAt)
		if err != nil {
			return nil, errors.New("daily entry row parsing error: " + err.Error())
		}
		result = append(result, &entry)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected daily entry rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (er *EntriesRepository) UpdateReflection(ctx context.Context, id uuid.UUID, reflection string) error {
	ct, err := er.conn.Exec(ctx, `UPDATE daily_entries SET reflection = $1, updated_at = NOW() WHERE id = $2 AND is_finalized = FALSE;`,
		reflection,
		id,
	)
	if err != nil {
		return errors.New("updating reflection error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		// Zero rows means the entry is finalized or gone
		var finalized bool
		row := er.conn.QueryRow(ctx, `SELECT is_finalized FROM daily_entries WHERE id = $1;`, id)
		if err := row.Scan(&finalized); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errorvalues.ErrEntryNotFound
			}
			return errors.New("updating reflection error: " + err.Error())
		}
		return errorvalues.ErrAlreadyFinalized
	}
	return nil
}
