package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/lib/pq"
	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/internal/repository"
	"github.com/limbo/momentum/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	userID = uuid.New()
)

func TestCreateActivity(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewActivitiesRepoWithConn(mock)
	activity := entity.Activity{
		UserID: userID,
		Name:   "Gym Workout",
		Icon:   "dumbbell",
	}
	aid := uuid.New()
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO activities (user_id, name, icon, is_default) VALUES ($1, $2, $3, $4) RETURNING id;`)
	t.Run("successfully created", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(activity.UserID, activity.Name, activity.Icon, activity.IsDefault).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(aid))
		id, err := repo.Create(ctx, &activity)
		assert.NoError(t, err)
		assert.Equal(t, aid, id)
	})
	t.Run("unique violation", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(activity.UserID, activity.Name, activity.Icon, activity.IsDefault).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		_, err := repo.Create(ctx, &activity)
		assert.ErrorIs(t, err, errorvalues.ErrActivityExists)
	})
	t.Run("FK violation", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(activity.UserID, activity.Name, activity.Icon, activity.IsDefault).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.Create(ctx, &activity)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(activity.UserID, activity.Name, activity.Icon, activity.IsDefault).
			WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, &activity)
		assert.Error(t, err)
	})
}

func TestGetActivityByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewActivitiesRepoWithConn(mock)
	activity := entity.Activity{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Reading",
		Icon:      "book-open",
		IsDefault: true,
		CreatedAt: time.Now(),
	}
	query := regexp.QuoteMeta(`SELECT user_id, name, icon, is_default, created_at FROM activities WHERE id = $1;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(activity.ID).
			WillReturnRows(pgxmock.NewRows([]string{"user_id", "name", "icon", "is_default", "created_at"}).
				AddRow(activity.UserID, activity.Name, activity.Icon, activity.IsDefault, activity.CreatedAt),
			)
		result, err := repo.GetByID(ctx, activity.ID)
		assert.NoError(t, err)
		assert.Equal(t, activity, *result)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(activity.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, activity.ID)
		assert.ErrorIs(t, err, errorvalues.ErrActivityNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(activity.ID).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByID(ctx, activity.ID)
		assert.Error(t, err)
	})
}

func TestGetActivitiesByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewActivitiesRepoWithConn(mock)
	activities := []*entity.Activity{
		{
			ID:        uuid.New(),
			UserID:    userID,
			Name:      "Gym Workout",
			Icon:      "dumbbell",
			IsDefault: true,
			CreatedAt: time.Now(),
		},
		{
			ID:        uuid.New(),
			UserID:    userID,
			Name:      "Learning",
			Icon:      "brain",
			IsDefault: true,
			CreatedAt: time.Now().Add(time.Second),
		},
	}
	query := regexp.QuoteMeta(`SELECT id, user_id, name, icon, is_default, created_at
		FROM activities WHERE user_id = $1 ORDER BY created_at;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "user_id", "name", "icon", "is_default", "created_at"})
		for _, a := range activities {
			rows.AddRow(a.ID, a.UserID, a.Name, a.Icon, a.IsDefault, a.CreatedAt)
		}
		mock.ExpectQuery(query).
			WithArgs(userID).
			WillReturnRows(rows)
		result, err := repo.GetByUserID(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, len(activities), len(result))
		for i := range result {
			assert.Equal(t, *activities[i], *result[i])
		}
	})
	t.Run("empty list", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "name", "icon", "is_default", "created_at"}))
		result, err := repo.GetByUserID(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, 0, len(result))
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByUserID(ctx, userID)
		assert.Error(t, err)
	})
}

func TestCountActivitiesByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewActivitiesRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT COUNT(*) FROM activities WHERE user_id = $1;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))
		count, err := repo.CountByUserID(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, 3, count)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID).
			WillReturnError(errors.New("db error"))
		_, err := repo.CountByUserID(ctx, userID)
		assert.Error(t, err)
	})
}

func TestCreateActivitiesBatch(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewActivitiesRepoWithConn(mock)
	activities := []*entity.Activity{
		{UserID: userID, Name: "Gym Workout", Icon: "dumbbell", IsDefault: true},
		{UserID: userID, Name: "Learning", Icon: "brain", IsDefault: true},
	}
	query := regexp.QuoteMeta(`INSERT INTO activities (user_id, name, icon, is_default) VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id, name) DO NOTHING;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		for _, a := range activities {
			mock.ExpectExec(query).
				WithArgs(a.UserID, a.Name, a.Icon, a.IsDefault).
				WillReturnResult(pgxmock.NewResult("INSERT", 1))
		}
		err := repo.CreateBatch(ctx, activities)
		assert.NoError(t, err)
	})
	t.Run("duplicates skipped", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(activities[0].UserID, activities[0].Name, activities[0].Icon, activities[0].IsDefault).
			WillReturnResult(pgxmock.NewResult("INSERT", 0))
		mock.ExpectExec(query).
			WithArgs(activities[1].UserID, activities[1].Name, activities[1].Icon, activities[1].IsDefault).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		err := repo.CreateBatch(ctx, activities)
		assert.NoError(t, err)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(activities[0].UserID, activities[0].Name, activities[0].Icon, activities[0].IsDefault).
			WillReturnError(errors.New("db error"))
		err := repo.CreateBatch(ctx, activities)
		assert.Error(t, err)
	})
}

func TestDeleteActivity(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewActivitiesRepoWithConn(mock)
	query := regexp.QuoteMeta(`DELETE FROM activities WHERE id = $1;`)
	ctx := context.Background()
	id := uuid.New()
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		err := repo.Delete(ctx, id)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		err := repo.Delete(ctx, id)
		assert.ErrorIs(t, err, errorvalues.ErrActivityNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id).
			WillReturnError(errors.New("db error"))
		err := repo.Delete(ctx, id)
		assert.Error(t, err)
	})
}

func TestActivitiesIntegrational(t *testing.T) {
	cfg := setupRepoTestDB(t)
	repo := repository.NewActivitiesRepo(cfg)
	activities := []*entity.Activity{}
	for i := range 4 {
		activities = append(activities, &entity.Activity{
			UserID: userID,
			Name:   fmt.Sprintf("activity_n%d", i),
			Icon:   fmt.Sprintf("icon_n%d", i),
		})
	}
	ctx := context.Background()
	t.Run("create", func(t *testing.T) {
		t.Run("success", func(t *testing.T) {
			for _, a := range activities {
				id, err := repo.Create(ctx, a)
				assert.NoError(t, err)
				a.ID = id
			}
		})
		t.Run("already exist error", func(t *testing.T) {
			_, err := repo.Create(ctx, activities[0])
			assert.ErrorIs(t, err, errorvalues.ErrActivityExists)
		})
		t.Run("unknown user error", func(t *testing.T) {
			_, err := repo.Create(ctx, &entity.Activity{
				UserID: uuid.New(),
				Name:   "nnn",
				Icon:   "iii",
			})
			assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
		})
	})
	t.Run("list by user_id", func(t *testing.T) {
		result, err := repo.GetByUserID(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, len(activities), len(result))
		for i := range result {
			assert.Equal(t, activities[i].ID, result[i].ID)
			assert.Equal(t, activities[i].Name, result[i].Name)
		}
	})
	t.Run("count", func(t *testing.T) {
		count, err := repo.CountByUserID(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, len(activities), count)
	})
	t.Run("batch insert skips existing names", func(t *testing.T) {
		err := repo.CreateBatch(ctx, []*entity.Activity{
			{UserID: userID, Name: activities[0].Name, Icon: "other", IsDefault: true},
			{UserID: userID, Name: "brand_new", Icon: "sparkles", IsDefault: true},
		})
		assert.NoError(t, err)
		count, err := repo.CountByUserID(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, len(activities)+1, count)
	})
	t.Run("delete", func(t *testing.T) {
		t.Run("success", func(t *testing.T) {
			err := repo.Delete(ctx, activities[0].ID)
			assert.NoError(t, err)
			_, err = repo.GetByID(ctx, activities[0].ID)
			assert.ErrorIs(t, err, errorvalues.ErrActivityNotFound)
		})
		t.Run("not found", func(t *testing.T) {
			err := repo.Delete(ctx, uuid.New())
			assert.ErrorIs(t, err, errorvalues.ErrActivityNotFound)
		})
	})
}

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupRepoTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("momentum"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	connStr, err := container.ConnectionString(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	connStr += "sslmode=disable"
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	err = goose.Up(conn, "../../migrations")
	if err != nil {
		t.Fatal(err)
	}
	_, err = conn.Exec(`INSERT INTO users (id, name, password_hash) VALUES ($1, $2, $3);`, userID, "test_name", "pass_hash")
	if err != nil {
		t.Fatal(err)
	}
	conn.Close()
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	return &testPGConfig{
		connStr: connStr,
	}
}
