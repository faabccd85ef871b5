package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/momentum/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type ActivitiesRepositoryI interface {
	// Creates new activity. Only UserID, Name, Icon, IsDefault are necessary
	Create(ctx context.Context, activity *entity.Activity) (uuid.UUID, error)
	// Searches activity with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error)
	// Lists activities owned by user with uid, oldest first
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Activity, error)
	// Returns count of activities owned by user with uid
	CountByUserID(ctx context.Context, uid uuid.UUID) (int, error)
	// Inserts a batch of activities, silently skipping names the user already has
	CreateBatch(ctx context.Context, activities []*entity.Activity) error
	// Deletes activity with id. Past completions keep referencing it
	Delete(ctx context.Context, id uuid.UUID) error
}

type EntriesRepositoryI interface {
	// Creates new daily entry for (entry.UserID, entry.Date)
	Create(ctx context.Context, entry *entity.DailyEntry) (uuid.UUID, error)
	// Creates an open entry for (uid, date) unless one already exists.
	// Safe to call repeatedly, used for next-day provisioning
	CreateIfAbsent(ctx context.Context, uid uuid.UUID, date time.Time) error
	// Searches entry with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DailyEntry, error)
	// Searches entry of uid for a calendar date
	GetByUserAndDate(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.DailyEntry, error)
	// Provides entries of uid within [from, to], newest first
	GetByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]*entity.DailyEntry, error)
	// Updates reflection text of an open entry
	UpdateReflection(ctx context.Context, id uuid.UUID, reflection string) error
}

type CompletionsRepositoryI interface {
	// Creates or updates the completion keyed by (DailyEntryID, ActivityID).
	// At most one row per key can ever exist
	Upsert(ctx context.Context, completion *entity.ActivityCompletion) (*entity.ActivityCompletion, error)
	// Provides all completions of a daily entry
	GetByEntryID(ctx context.Context, entryID uuid.UUID) ([]entity.ActivityCompletion, error)
	// Creates one uncompleted row per activity for a freshly provisioned entry.
	// Existing rows are left untouched
	SeedForEntry(ctx context.Context, entryID uuid.UUID, activityIDs []uuid.UUID) error
}

type StreaksRepositoryI interface {
	// Provides streak counters of user with uid
	GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.Streak, error)
}

// FinalizeDayParams carries the precomputed outcome of a day into the
// finalization transaction
type FinalizeDayParams struct {
	EntryID          uuid.UUID
	UserID           uuid.UUID
	Score            float64
	AutoFinalized    bool
	CurrentStreak    int
	LongestStreak    int
	LastActivityDate time.Time
}

type FinalizationRepositoryI interface {
	// Atomically freezes the entry score and writes the streak counters.
	// The entry update is conditional on is_finalized = FALSE, which
	// serializes concurrent finalize calls for the same day
	FinalizeDay(ctx context.Context, params FinalizeDayParams) error
	// Atomically reopens a finalized entry and decrements the current
	// streak, floored at zero
	UndoDay(ctx context.Context, entryID, uid uuid.UUID) error
}

type QuotesRepositoryI interface {
	// Provides a random motivational quote
	GetRandom(ctx context.Context) (*entity.Quote, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
