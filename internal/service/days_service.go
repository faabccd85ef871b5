package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/internal/repository"
	"github.com/limbo/momentum/pkg/entity"
)

// a month averaging below this reads as unproductive in the report
const unproductiveMonthThreshold = 6.0

type DaysService struct {
	entriesRepo     repository.EntriesRepositoryI
	completionsRepo repository.CompletionsRepositoryI
	activitiesRepo  repository.ActivitiesRepositoryI
	streaksRepo     repository.StreaksRepositoryI
}

func NewDaysService(
	entriesRepo repository.EntriesRepositoryI,
	completionsRepo repository.CompletionsRepositoryI,
	activitiesRepo repository.ActivitiesRepositoryI,
	streaksRepo repository.StreaksRepositoryI,
) *DaysService {
	if entriesRepo == nil || completionsRepo == nil || activitiesRepo == nil || streaksRepo == nil {
		log.Fatal("provided nil repos to days service")
	}
	return &DaysService{
		entriesRepo:     entriesRepo,
		completionsRepo: completionsRepo,
		activitiesRepo:  activitiesRepo,
		streaksRepo:     streaksRepo,
	}
}

func (ds *DaysService) GetOrCreateEntry(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.DailyEntry, error) {
	entry, err := ds.entriesRepo.GetByUserAndDate(ctx, uid, date)
	if err == nil {
		return entry, nil
	}
	if !errors.Is(err, errorvalues.ErrEntryNotFound) {
		return nil, errors.New("entries repository error: " + err.Error())
	}
	_, err = ds.entriesRepo.Create(ctx, &entity.DailyEntry{
		UserID:     uid,
		Date:       date,
		Reflection: "",
		Score:      0,
	})
	// A concurrent request may have created the row in between, the
	// re-read below picks it up either way
	if err != nil && !errors.Is(err, errorvalues.ErrEntryExists) {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("entries repository error: " + err.Error())
	}
	entry, err = ds.entriesRepo.GetByUserAndDate(ctx, uid, date)
	if err != nil {
		return nil, errors.New("entries repository error: " + err.Error())
	}
	return entry, nil
}

func (ds *DaysService) UpdateReflection(ctx context.Context, entryID, uid uuid.UUID, reflection string) (*entity.DailyEntry, error) {
	entry, err := ds.entriesRepo.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			return nil, err
		}
		return nil, errors.New("entries repository error: " + err.Error())
	}
	if entry.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	if entry.IsFinalized {
		return nil, errorvalues.ErrAlreadyFinalized
	}
	if err = ds.entriesRepo.UpdateReflection(ctx, entryID, reflection); err != nil {
		if errors.Is(err, errorvalues.ErrAlreadyFinalized) || errors.Is(err, errorvalues.ErrEntryNotFound) {
			return nil, err
		}
		return nil, errors.New("entries repository error: " + err.Error())
	}
	entry, err = ds.entriesRepo.GetByID(ctx, entryID)
	if err != nil {
		return nil, errors.New("entries repository error: " + err.Error())
	}
	return entry, nil
}

func (ds *DaysService) SetCompletion(ctx context.Context, uid uuid.UUID, req *SetCompletionRequest) (*entity.ActivityCompletion, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errors.New("validation error: ")
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return nil, err
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	entry, err := ds.entriesRepo.GetByID(ctx, req.EntryID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			return nil, err
		}
		return nil, errors.New("entries repository error: " + err.Error())
	}
	if entry.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	if entry.IsFinalized {
		return nil, errorvalues.ErrAlreadyFinalized
	}
	activity, err := ds.activitiesRepo.GetByID(ctx, req.ActivityID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrActivityNotFound) {
			return nil, err
		}
		return nil, errors.New("activities repository error: " + err.Error())
	}
	if activity.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	completion := entity.ActivityCompletion{
		DailyEntryID: req.EntryID,
		ActivityID:   req.ActivityID,
		Completed:    req.Completed,
		Duration:     req.Duration,
	}
	if req.Completed {
		now := time.Now()
		completion.CompletedAt = &now
	}
	result, err := ds.completionsRepo.Upsert(ctx, &completion)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			return nil, err
		}
		return nil, errors.New("completions repository error: " + err.Error())
	}
	return result, nil
}

func (ds *DaysService) GetCompletions(ctx context.Context, entryID, uid uuid.UUID) ([]entity.ActivityCompletion, error) {
	entry, err := ds.entriesRepo.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			return nil, err
		}
		return nil, errors.New("entries repository error: " + err.Error())
	}
	if entry.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	completions, err := ds.completionsRepo.GetByEntryID(ctx, entryID)
	if err != nil {
		return nil, errors.New("completions repository error: " + err.Error())
	}
	return completions, nil
}

func (ds *DaysService) GetLiveScore(ctx context.Context, uid uuid.UUID, date time.Time) (float64, error) {
	entry, err := ds.entriesRepo.GetByUserAndDate(ctx, uid, date)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			return 0, err
		}
		return 0, errors.New("entries repository error: " + err.Error())
	}
	if entry.IsFinalized {
		return entry.Score, nil
	}
	activities, err := ds.activitiesRepo.GetByUserID(ctx, uid)
	if err != nil {
		return 0, errors.New("activities repository error: " + err.Error())
	}
	completions, err := ds.completionsRepo.GetByEntryID(ctx, entry.ID)
	if err != nil {
		return 0, errors.New("completions repository error: " + err.Error())
	}
	currentStreak := 0
	streak, err := ds.streaksRepo.GetByUserID(ctx, uid)
	switch {
	case err == nil:
		currentStreak = streak.CurrentStreak
	case errors.Is(err, errorvalues.ErrStreakNotFound):
		// no streak row yet, preview without the bonus
	default:
		return 0, errors.New("streaks repository error: " + err.Error())
	}
	return ComputeScore(completions, activities, currentStreak), nil
}

func (ds *DaysService) GetMonthlyReport(ctx context.Context, uid uuid.UUID, year, month int) (*entity.MonthlyReport, error) {
	if year < 1 || month < 1 || month > 12 {
		return nil, errorvalues.ErrInvalidDate
	}
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	entries, err := ds.entriesRepo.GetByUserAndDateRange(ctx, uid, from, to)
	if err != nil {
		return nil, errors.New("entries repository error: " + err.Error())
	}
	var average float64
	if len(entries) > 0 {
		var total float64
		for _, entry := range entries {
			total += entry.Score
		}
		average = RoundScore(total / float64(len(entries)))
	}
	return &entity.MonthlyReport{
		Entries:        entries,
		Average:        average,
		IsUnproductive: average < unproductiveMonthThreshold,
	}, nil
}
