package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/momentum/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type CreateActivityRequest struct {
	Name string `validate:"required,min=1,max=60"`
	Icon string `validate:"required,min=1,max=60"`
}

type SetCompletionRequest struct {
	EntryID    uuid.UUID
	ActivityID uuid.UUID
	Completed  bool
	Duration   *int `validate:"omitempty,gte=0"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type ActivitiesServiceI interface {
	// Lists activities of uid, seeding the default set for brand-new users
	ListActivities(ctx context.Context, uid uuid.UUID) ([]*entity.Activity, error)
	// Creates activity for uid. Free-tier users are capped
	CreateActivity(ctx context.Context, uid uuid.UUID, req *CreateActivityRequest) (*entity.Activity, error)
	// Deletes activity after ownership check
	DeleteActivity(ctx context.Context, activityID, uid uuid.UUID) error
}

type DaysServiceI interface {
	// Returns the entry of (uid, date), creating an open one when absent
	GetOrCreateEntry(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.DailyEntry, error)
	// Replaces reflection text of an open entry
	UpdateReflection(ctx context.Context, entryID, uid uuid.UUID, reflection string) (*entity.DailyEntry, error)
	// Creates or updates the completion of (entry, activity)
	SetCompletion(ctx context.Context, uid uuid.UUID, req *SetCompletionRequest) (*entity.ActivityCompletion, error)
	// Lists completions of an entry after ownership check
	GetCompletions(ctx context.Context, entryID, uid uuid.UUID) ([]entity.ActivityCompletion, error)
	// Computes the live preview score for (uid, date). Never persisted
	GetLiveScore(ctx context.Context, uid uuid.UUID, date time.Time) (float64, error)
	// Aggregates a month of entries into the report the UI renders
	GetMonthlyReport(ctx context.Context, uid uuid.UUID, year, month int) (*entity.MonthlyReport, error)
}

type FinalizeServiceI interface {
	// Freezes the score of (uid, date), advances the streak and provisions
	// the next day. Second call for the same day fails with AlreadyFinalized
	Finalize(ctx context.Context, uid uuid.UUID, date time.Time) (float64, error)
	// Same as Finalize but records the boundary-crossing trigger
	AutoFinalize(ctx context.Context, uid uuid.UUID, date time.Time) (float64, error)
	// Reopens a finalized day, best-effort streak rollback
	Undo(ctx context.Context, uid uuid.UUID, date time.Time) error
}

type StreaksServiceI interface {
	// Returns streak counters, zero values for users without a row yet
	GetStreak(ctx context.Context, uid uuid.UUID) (*entity.Streak, error)
}

type QuotesServiceI interface {
	GetRandomQuote(ctx context.Context) (*entity.Quote, error)
}
