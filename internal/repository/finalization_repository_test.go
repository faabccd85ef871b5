package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/internal/repository"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

var (
	finalizeEntryQuery = regexp.QuoteMeta(`UPDATE daily_entries SET score = $1, is_finalized = TRUE, auto_finalized = $2, finalized_at = NOW(), updated_at = NOW()
		WHERE id = $3 AND is_finalized = FALSE;`)
	finalizeStreakQuery = regexp.QuoteMeta(`INSERT INTO streaks (user_id, current_streak, longest_streak, last_activity_date)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET current_streak = EXCLUDED.current_streak,
			longest_streak = GREATEST(streaks.longest_streak, EXCLUDED.longest_streak),
			last_activity_date = EXCLUDED.last_activity_date,
			updated_at = NOW();`)
	undoEntryQuery = regexp.QuoteMeta(`UPDATE daily_entries SET score = 0, is_finalized = FALSE, auto_finalized = FALSE, finalized_at = NULL, updated_at = NOW()
		WHERE id = $1 AND is_finalized = TRUE;`)
	undoStreakQuery = regexp.QuoteMeta(`UPDATE streaks SET current_streak = GREATEST(current_streak - 1, 0), updated_at = NOW() WHERE user_id = $1;`)
)

func TestFinalizeDay(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewFinalizationRepoWithConn(mock)
	lastActivityDate := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	params := repository.FinalizeDayParams{
		EntryID:          uuid.New(),
		UserID:           userID,
		Score:            7.5,
		AutoFinalized:    false,
		CurrentStreak:    4,
		LongestStreak:    4,
		LastActivityDate: lastActivityDate,
	}
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(finalizeEntryQuery).
			WithArgs(params.Score, params.AutoFinalized, params.EntryID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(finalizeStreakQuery).
			WithArgs(params.UserID, params.CurrentStreak, params.LongestStreak, params.LastActivityDate).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()
		err := repo.FinalizeDay(ctx, params)
		assert.NoError(t, err)
	})
	t.Run("already finalized", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(finalizeEntryQuery).
			WithArgs(params.Score, params.AutoFinalized, params.EntryID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectRollback()
		err := repo.FinalizeDay(ctx, params)
		assert.ErrorIs(t, err, errorvalues.ErrAlreadyFinalized)
	})
	t.Run("streak write fails, tx rolled back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(finalizeEntryQuery).
			WithArgs(params.Score, params.AutoFinalized, params.EntryID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(finalizeStreakQuery).
			WithArgs(params.UserID, params.CurrentStreak, params.LongestStreak, params.LastActivityDate).
			WillReturnError(errors.New("db error"))
		mock.ExpectRollback()
		err := repo.FinalizeDay(ctx, params)
		assert.Error(t, err)
	})
	t.Run("begin fails", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(errors.New("db error"))
		err := repo.FinalizeDay(ctx, params)
		assert.Error(t, err)
	})
}

func TestUndoDay(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewFinalizationRepoWithConn(mock)
	entryID := uuid.New()
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(undoEntryQuery).
			WithArgs(entryID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(undoStreakQuery).
			WithArgs(userID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()
		err := repo.UndoDay(ctx, entryID, userID)
		assert.NoError(t, err)
	})
	t.Run("not finalized", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(undoEntryQuery).
			WithArgs(entryID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectRollback()
		err := repo.UndoDay(ctx, entryID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrNotFinalized)
	})
	t.Run("streak decrement fails, tx rolled back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(undoEntryQuery).
			WithArgs(entryID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(undoStreakQuery).
			WithArgs(userID).
			WillReturnError(errors.New("db error"))
		mock.ExpectRollback()
		err := repo.UndoDay(ctx, entryID, userID)
		assert.Error(t, err)
	})
}
