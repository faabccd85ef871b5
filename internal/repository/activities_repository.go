package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/pkg/cleanup"
	"github.com/limbo/momentum/pkg/entity"
)

type ActivitiesRepository struct {
	conn PgConnection
}

func NewActivitiesRepo(cfg DBConfig) *ActivitiesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for activitiesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for activitiesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing activitiesRepo pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ActivitiesRepository{
		conn: pool,
	}
}

func NewActivitiesRepoWithConn(conn PgConnection) *ActivitiesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for activitiesRepo: " + err.Error())
	}
	return &ActivitiesRepository{
		conn: conn,
	}
}

func (ar *ActivitiesRepository) Create(ctx context.Context, activity *entity.Activity) (uuid.UUID, error) {
	var id uuid.UUID
	row := ar.conn.QueryRow(ctx, `INSERT INTO activities (user_id, name, icon, is_default) VALUES ($1, $2, $3, $4) RETURNING id;`,
		activity.UserID,
		activity.Name,
		activity.Icon,
		activity.IsDefault,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return uuid.UUID{}, errorvalues.ErrActivityExists
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrUserNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating activity db error: " + err.Error())
	}
	return id, nil
}

func (ar *ActivitiesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	var activity entity.Activity
	activity.ID = id
	row := ar.conn.QueryRow(ctx, `SELECT user_id, name, icon, is_default, created_at FROM activities WHERE id = $1;`, id)
	if err := row.Scan(&activity.UserID, &activity.Name, &activity.Icon, &activity.IsDefault, &activity.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrActivityNotFound
		}
		return nil, errors.New("getting activity by id error: " + err.Error())
	}
	return &activity, nil
}

func (ar *ActivitiesRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Activity, error) {
	activities := make([]*entity.Activity, 0)
	rows, err := ar.conn.Query(ctx, `SELECT id, user_id, name, icon, is_default, created_at
		FROM activities WHERE user_id = $1 ORDER BY created_at;`, uid)
	if err != nil {
		return nil, errors.New("getting activities by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		a := entity.Activity{}
		err = rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Icon, &a.IsDefault, &a.CreatedAt)
		if err != nil {
			return nil, errors.New("unmarshalling activity error: " + err.Error())
		}
		activities = append(activities, &a)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning: " + rows.Err().Error())
	}
	return activities, nil
}

func (ar *ActivitiesRepository) CountByUserID(ctx context.Context, uid uuid.UUID) (int, error) {
	var count int
	row := ar.conn.QueryRow(ctx, `SELECT COUNT(*) FROM activities WHERE user_id = $1;`, uid)
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting activities: " + err.Error())
	}
	return count, nil
}

func (ar *ActivitiesRepository) CreateBatch(ctx context.Context, activities []*entity.Activity) error {
	for _, a := range activities {
		_, err := ar.conn.Exec(ctx, `INSERT INTO activities (user_id, name, icon, is_default) VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id, name) DO NOTHING;`,
			a.UserID, a.Name, a.Icon, a.IsDefault,
		)
		if err != nil {
			return errors.New("batch creating activities error: " + err.Error())
		}
	}
	return nil
}

func (ar *ActivitiesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := ar.conn.Exec(ctx, `DELETE FROM activities WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting activity: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrActivityNotFound
	}
	return nil
}
