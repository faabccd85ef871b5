package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/internal/repository"
	"github.com/limbo/momentum/pkg/entity"
)

// FinalizeService drives the OPEN -> FINALIZED -> (undo) OPEN state
// machine of a daily entry
type FinalizeService struct {
	entriesRepo      repository.EntriesRepositoryI
	completionsRepo  repository.CompletionsRepositoryI
	activitiesRepo   repository.ActivitiesRepositoryI
	streaksRepo      repository.StreaksRepositoryI
	finalizationRepo repository.FinalizationRepositoryI
}

func NewFinalizeService(
	entriesRepo repository.EntriesRepositoryI,
	completionsRepo repository.CompletionsRepositoryI,
	activitiesRepo repository.ActivitiesRepositoryI,
	streaksRepo repository.StreaksRepositoryI,
	finalizationRepo repository.FinalizationRepositoryI,
) *FinalizeService {
	if entriesRepo == nil || completionsRepo == nil || activitiesRepo == nil || streaksRepo == nil || finalizationRepo == nil {
		log.Fatal("provided nil repos to finalize service")
	}
	return &FinalizeService{
		entriesRepo:      entriesRepo,
		completionsRepo:  completionsRepo,
		activitiesRepo:   activitiesRepo,
		streaksRepo:      streaksRepo,
		finalizationRepo: finalizationRepo,
	}
}

func (fs *FinalizeService) Finalize(ctx context.Context, uid uuid.UUID, date time.Time) (float64, error) {
	return fs.finalize(ctx, uid, date, false)
}

func (fs *FinalizeService) AutoFinalize(ctx context.Context, uid uuid.UUID, date time.Time) (float64, error) {
	return fs.finalize(ctx, uid, date, true)
}

func (fs *FinalizeService) finalize(ctx context.Context, uid uuid.UUID, date time.Time, auto bool) (float64, error) {
	entry, err := fs.entriesRepo.GetByUserAndDate(ctx, uid, date)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			return 0, err
		}
		return 0, errors.New("entries repository error: " + err.Error())
	}
	if entry.IsFinalized {
		return 0, errorvalues.ErrAlreadyFinalized
	}
	activities, err := fs.activitiesRepo.GetByUserID(ctx, uid)
	if err != nil {
		return 0, errors.New("activities repository error: " + err.Error())
	}
	completions, err := fs.completionsRepo.GetByEntryID(ctx, entry.ID)
	if err != nil {
		return 0, errors.New("completions repository error: " + err.Error())
	}
	// The frozen score deliberately excludes the streak bonus: the bonus
	// rewards walking into the day with a streak and only shows up in the
	// live preview
	finalScore := ComputeScore(completions, activities, 0)

	currentStreak, longestStreak := 0, 0
	streak, err := fs.streaksRepo.GetByUserID(ctx, uid)
	switch {
	case err == nil:
		currentStreak, longestStreak = streak.CurrentStreak, streak.LongestStreak
	case errors.Is(err, errorvalues.ErrStreakNotFound):
		// first finalized day ever, counters start at zero
	default:
		return 0, errors.New("streaks repository error: " + err.Error())
	}
	if finalScore >= ProductiveScoreThreshold {
		currentStreak++
		if currentStreak > longestStreak {
			longestStreak = currentStreak
		}
	} else {
		currentStreak = 0
	}

	err = fs.finalizationRepo.FinalizeDay(ctx, repository.FinalizeDayParams{
		EntryID:          entry.ID,
		UserID:           uid,
		Score:            finalScore,
		AutoFinalized:    auto,
		CurrentStreak:    currentStreak,
		LongestStreak:    longestStreak,
		LastActivityDate: date,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrAlreadyFinalized) {
			return 0, err
		}
		return 0, errors.New("finalization repository error: " + err.Error())
	}

	// Provisioning is outside the transaction and fully idempotent, the
	// lazy get-or-create path recreates anything missed here
	if err = fs.provisionNextDay(ctx, uid, date.AddDate(0, 0, 1), activities); err != nil {
		slog.Warn("next day provisioning failed",
			slog.String("uid", uid.String()),
			slog.String("error", err.Error()),
		)
	}
	return finalScore, nil
}

func (fs *FinalizeService) provisionNextDay(ctx context.Context, uid uuid.UUID, date time.Time, activities []*entity.Activity) error {
	if err := fs.entriesRepo.CreateIfAbsent(ctx, uid, date); err != nil {
		return err
	}
	entry, err := fs.entriesRepo.GetByUserAndDate(ctx, uid, date)
	if err != nil {
		return err
	}
	activityIDs := make([]uuid.UUID, 0, len(activities))
	for _, a := range activities {
		activityIDs = append(activityIDs, a.ID)
	}
	return fs.completionsRepo.SeedForEntry(ctx, entry.ID, activityIDs)
}

func (fs *FinalizeService) Undo(ctx context.Context, uid uuid.UUID, date time.Time) error {
	entry, err := fs.entriesRepo.GetByUserAndDate(ctx, uid, date)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			return err
		}
		return errors.New("entries repository error: " + err.Error())
	}
	if !entry.IsFinalized {
		return errorvalues.ErrNotFinalized
	}
	err = fs.finalizationRepo.UndoDay(ctx, entry.ID, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNotFinalized) {
			return err
		}
		return errors.New("finalization repository error: " + err.Error())
	}
	return nil
}
