package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/internal/repository/mocks"
	"github.com/limbo/momentum/internal/service"
	"github.com/limbo/momentum/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func newDaysService(ctrl *gomock.Controller) (
	*service.DaysService,
	*mocks.MockEntriesRepositoryI,
	*mocks.MockCompletionsRepositoryI,
	*mocks.MockActivitiesRepositoryI,
	*mocks.MockStreaksRepositoryI,
) {
	entriesRepo := mocks.NewMockEntriesRepositoryI(ctrl)
	completionsRepo := mocks.NewMockCompletionsRepositoryI(ctrl)
	activitiesRepo := mocks.NewMockActivitiesRepositoryI(ctrl)
	streaksRepo := mocks.NewMockStreaksRepositoryI(ctrl)
	return service.NewDaysService(entriesRepo, completionsRepo, activitiesRepo, streaksRepo),
		entriesRepo, completionsRepo, activitiesRepo, streaksRepo
}

func TestGetOrCreateEntry(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	serv, entriesRepo, _, _, _ := newDaysService(ctrl)
	uid := uuid.New()
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	entry := &entity.DailyEntry{
		ID:     uuid.New(),
		UserID: uid,
		Date:   date,
	}
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "already exists",
			Error: nil,
			MockPrepFunc: func() {
				entriesRepo.EXPECT().GetByUserAndDate(gomock.Any(), uid, date).Return(entry, nil)
			},
		},
		{
			Desc:  "created when absent",
			Error: nil,
			MockPrepFunc: func() {
				entriesRepo.EXPECT().GetByUserAndDate(gomock.Any(), uid, date).Return(nil, errorvalues.ErrEntryNotFound)
				entriesRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entry.ID, nil)
				entriesRepo.EXPECT().GetByUserAndDate(gomock.Any(), uid, date).Return(entry, nil)
			},
		},
		{
			Desc:  "lost creation race, re-read wins",
			Error: nil,
			MockPrepFunc: func() {
				entriesRepo.EXPECT().GetByUserAndDate(gomock.Any(), uid, date).Return(nil, errorvalues.ErrEntryNotFound)
				entriesRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.UUID{}, errorvalues.ErrEntryExists)
				entriesRepo.EXPECT().GetByUserAndDate(gomock.Any(), uid, date).Return(entry, nil)
			},
		},
		{
			Desc:  "error unexist user",
			Error: errorvalues.ErrUserNotFound,
			MockPrepFunc: func() {
				entriesRepo.EXPECT().GetByUserAndDate(gomock.Any(), uid, date).Return(nil, errorvalues.ErrEntryNotFound)
				entriesRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.UUID{}, errorvalues.ErrUserNotFound)
			},
		},
		{
			Desc:  "db error",
			Error: nil,
			MockPrepFunc: func() {
				entriesRepo.EXPECT().GetByUserAndDate(gomock.Any(), uid, date).Return(nil, errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			result, err := serv.GetOrCreateEntry(ctx, uid, date)
			if tc.Desc == "db error" {
				assert.Error(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.Error)
			if tc.Error == nil {
				assert.Equal(t, entry, result)
			}
		})
	}
}

func TestUpdateReflection(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	serv, entriesRepo, _, _, _ := newDaysService(ctrl)
	uid := uuid.New()
	entryID := uuid.New()
	reflection := "kept the pace today"
	openEntry := &entity.DailyEntry{
		ID:     entryID,
		UserID: uid,
	}
	updatedEntry := &entity.DailyEntry{
		ID:         entryID,
		UserID:     uid,
		Reflection: reflection,
	}
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "success",
			Error: nil,
			MockPrepFunc: func() {
				entriesRepo.EXPECT().GetByID(gomock.Any(), entryID).Return(openEntry, nil)
				entriesRepo.EXPECT().UpdateReflection(gomock.Any(), entryID, reflection).Return(nil)
				entriesRepo.EXPECT().GetByID(gomock.Any(), entryID).Return(updatedEntry, nil)
			},
		},
		{
			Desc:  "error entry not found",
			Error: errorvalues.ErrEntryNotFound,
			MockPrepFunc: func() {
				entriesRepo.EXPECT().GetByID(gomock.Any(), entryID).Return(nil, errorvalues.ErrEntryNotFound)
			},
		},
		{
			Desc:  "error wrong owner",
			Error: errorvalues.ErrWrongOwner,
			MockPrepFunc: func() {
				entriesRepo.EXPECT().GetByID(gomock.Any(), entryID).Return(&entity.DailyEntry{
					ID:     entryID,
					UserID: uuid.New(),
				}, nil)
			},
		},
		{
			Desc:  "error already finalized",
			Error: errorvalues.ErrAlreadyFinalized,
			MockPrepFunc: func() {
				entriesRepo.EXPECT().GetByID(gomock.Any(), entryID).Return(&entity.DailyEntry{
					ID:          entryID,
					UserID:      uid,
					IsFinalized: true,
				}, nil)
			},
		},
		{
			Desc:  "error finalized between read and write",
			Error: errorvalues.ErrAlreadyFinalized,
			MockPrepFunc: func() {
				entriesRepo.EXPECT().GetByID(gomock.Any(), entryID).Return(openEntry, nil)
				entriesRepo.EXPECT().UpdateReflection(gomock.Any(), entryID, reflection).Return(errorvalues.ErrAlreadyFinalized)
			},
		},
		{
			Desc:  "error deleted between read and write",
			Error: errorvalues.ErrEntryNotFound,
			MockPrepFunc: func() {
				entriesRepo.EXPECT().GetByID(gomock.Any(), entryID).Return(openEntry, nil)
				entriesRepo.EXPECT().UpdateReflection(gomock.Any(), entryID, reflection).Return(errorvalues.ErrEntryNotFound)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			result, err := serv.UpdateReflection(ctx, entryID, uid, reflection)
			assert.ErrorIs(t, err, tc.Error)
			if tc.Error == nil {
				assert.Equal(t, reflection, result.Reflection)
			}
		})
	}
}

func TestSetCompletion(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	serv, entriesRepo, completionsRepo, activitiesRepo, _ := newDaysService(ctrl)
	uid := uuid.New()
	entryID := uuid.New()
	testActivityID := uuid.New()
	openEntry := &entity.DailyEntry{
		ID:     entryID,
		UserID: uid,
	}
	ownedActivity := &entity.Activity{
		ID:     testActivityID,
		UserID: uid,
	}
	req := &service.SetCompletionRequest{
		EntryID:    entryID,
		ActivityID: testActivityID,
		Completed:  true,
	}
	ctx := context.Background()
	t.Run("success, completion timestamp set", func(t *testing.T) {
		entriesRepo.EXPECT().GetByID(gomock.Any(), entryID).Return(openEntry, nil)
		activitiesRepo.EXPECT().GetByID(gomock.Any(), testActivityID).Return(ownedActivity, nil)
		completionsRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, c *entity.ActivityCompletion) (*entity.ActivityCompletion, error) {
				assert.True(t, c.Completed)
				assert.NotNil(t, c.CompletedAt)
				return c, nil
			},
		)
		result, err := serv.SetCompletion(ctx, uid, req)
		assert.NoError(t, err)
		assert.True(t, result.Completed)
	})
	t.Run("unchecking clears the timestamp", func(t *testing.T) {
		entriesRepo.EXPECT().GetByID(gomock.Any(), entryID).Return(openEntry, nil)
		activitiesRepo.EXPECT().GetByID(gomock.Any(), testActivityID).Return(ownedActivity, nil)
		completionsRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, c *entity.ActivityCompletion) (*entity.ActivityCompletion, error) {
				assert.False(t, c.Completed)
				assert.Nil(t, c.CompletedAt)
				return c, nil
			},
		)
		result, err := serv.SetCompletion(ctx, uid, &service.SetCompletionRequest{
			EntryID:    entryID,
			ActivityID: testActivityID,
			Completed:  false,
		})
		assert.NoError(t, err)
		assert.False(t, result.Completed)
	})
	t.Run("error negative duration", func(t *testing.T) {
		duration := -5
		_, err := serv.SetCompletion(ctx, uid, &service.SetCompletionRequest{
			EntryID:    entryID,
			ActivityID: testActivityID,
			Completed:  true,
			Duration:   &duration,
		})
		assert.Error(t, err)
	})
	t.Run("error entry not found", func(t *testing.T) {
		entriesRepo.EXPECT().GetByID(gomock.Any(), entryID).Return(nil, errorvalues.ErrEntryNotFound)
		_, err := serv.SetCompletion(ctx, uid, req)
		assert.ErrorIs(t, err, errorvalues.ErrEntryNotFound)
	})
	t.Run("error wrong entry owner", func(t *testing.T) {
		entriesRepo.EXPECT().GetByID(gomock.Any(), entryID).Return(&entity.DailyEntry{
			ID:     entryID,
			UserID: uuid.New(),
		}, nil)
		_, err := serv.SetCompletion(ctx, uid, req)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("error entry finalized", func(t *testing.T) {
		entriesRepo.EXPECT().GetByID(gomock.Any(), entryID).Return(&entity.DailyEntry{
			ID:          entryID,
			UserID:      uid,
			IsFinalized: true,
		}, nil)
		_, err := serv.SetCompletion(ctx, uid, req)
		assert.ErrorIs(t, err, errorvalues.ErrAlreadyFinalized)
	})
	t.Run("error activity not found", func(t *testing.T) {
		entriesRepo.EXPECT().GetByID(gomock.Any(), entryID).Return(openEntry, nil)
		activitiesRepo.EXPECT().GetByID(gomock.Any(), testActivityID).Return(nil, errorvalues.ErrActivityNotFound)
		_, err := serv.SetCompletion(ctx, uid, req)
		assert.ErrorIs(t, err, errorvalues.ErrActivityNotFound)
	})
	t.Run("error wrong activity owner", func(t *testing.T) {
		entriesRepo.EXPECT().GetByID(gomock.Any(), entryID).Return(openEntry, nil)
		activitiesRepo.EXPECT().GetByID(gomock.Any(), testActivityID).Return(&entity.Activity{
			ID:     testActivityID,
			UserID: uuid.New(),
		}, nil)
		_, err := serv.SetCompletion(ctx, uid, req)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
}

func TestGetCompletions(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	serv, entriesRepo, completionsRepo, _, _ := newDaysService(ctrl)
	uid := uuid.New()
	entryID := uuid.New()
	completions := []entity.ActivityCompletion{
		{ID: uuid.New(), DailyEntryID: entryID, ActivityID: uuid.New(), Completed: true},
	}
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		entriesRepo.EXPECT().GetByID(gomock.Any(), entryID).Return(&entity.DailyEntry{
			ID:     entryID,
			UserID: uid,
		}, nil)
		completionsRepo.EXPECT().GetByEntryID(gomock.Any(), entryID).Return(completions, nil)
		result, err := serv.GetCompletions(ctx, entryID, uid)
		assert.NoError(t, err)
		assert.Equal(t, completions, result)
	})
	t.Run("error entry not found", func(t *testing.T) {
		entriesRepo.EXPECT().GetByID(gomock.Any(), entryID).Return(nil, errorvalues.ErrEntryNotFound)
		_, err := serv.GetCompletions(ctx, entryID, uid)
		assert.ErrorIs(t, err, errorvalues.ErrEntryNotFound)
	})
	t.Run("error wrong owner", func(t *testing.T) {
		entriesRepo.EXPECT().GetByID(gomock.Any(), entryID).Return(&entity.DailyEntry{
			ID:     entryID,
			UserID: uuid.New(),
		}, nil)
		_, err := serv.GetCompletions(ctx, entryID, uid)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
}

func TestGetLiveScore(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	serv, entriesRepo, completionsRepo, activitiesRepo, streaksRepo := newDaysService(ctrl)
	uid := uuid.New()
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	entryID := uuid.New()
	openEntry := &entity.DailyEntry{
		ID:     entryID,
		UserID: uid,
		Date:   date,
	}
	activities := []*entity.Activity{
		{ID: uuid.New(), UserID: uid},
		{ID: uuid.New(), UserID: uid},
	}
	completions := []entity.ActivityCompletion{
		{DailyEntryID: entryID, ActivityID: activities[0].ID, Completed: true},
		{DailyEntryID: entryID, ActivityID: activities[1].ID, Completed: false},
	}
	ctx := context.Background()
	t.Run("finalized day returns the frozen score", func(t *testing.T) {
		entriesRepo.EXPECT().GetByUserAndDate(gomock.Any(), uid, date).Return(&entity.DailyEntry{
			ID:          entryID,
			UserID:      uid,
			Date:        date,
			Score:       7.5,
			IsFinalized: true,
		}, nil)
		score, err := serv.GetLiveScore(ctx, uid, date)
		assert.NoError(t, err)
		assert.Equal(t, 7.5, score)
	})
	t.Run("open day computed with streak bonus", func(t *testing.T) {
		entriesRepo.EXPECT().GetByUserAndDate(gomock.Any(), uid, date).Return(openEntry, nil)
		activitiesRepo.EXPECT().GetByUserID(gomock.Any(), uid).Return(activities, nil)
		completionsRepo.EXPECT().GetByEntryID(gomock.Any(), entryID).Return(completions, nil)
		streaksRepo.EXPECT().GetByUserID(gomock.Any(), uid).Return(&entity.Streak{
			UserID:        uid,
			CurrentStreak: 5,
		}, nil)
		score, err := serv.GetLiveScore(ctx, uid, date)
		assert.NoError(t, err)
		assert.Equal(t, 6.0, score)
	})
	t.Run("no streak row yet, no bonus", func(t *testing.T) {
		entriesRepo.EXPECT().GetByUserAndDate(gomock.Any(), uid, date).Return(openEntry, nil)
		activitiesRepo.EXPECT().GetByUserID(gomock.Any(), uid).Return(activities, nil)
		completionsRepo.EXPECT().GetByEntryID(gomock.Any(), entryID).Return(completions, nil)
		streaksRepo.EXPECT().GetByUserID(gomock.Any(), uid).Return(nil, errorvalues.ErrStreakNotFound)
		score, err := serv.GetLiveScore(ctx, uid, date)
		assert.NoError(t, err)
		assert.Equal(t, 5.0, score)
	})
	t.Run("error entry not found", func(t *testing.T) {
		entriesRepo.EXPECT().GetByUserAndDate(gomock.Any(), uid, date).Return(nil, errorvalues.ErrEntryNotFound)
		_, err := serv.GetLiveScore(ctx, uid, date)
		assert.ErrorIs(t, err, errorvalues.ErrEntryNotFound)
	})
}

func TestGetMonthlyReport(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	serv, entriesRepo, _, _, _ := newDaysService(ctrl)
	uid := uuid.New()
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()
	t.Run("error month out of range", func(t *testing.T) {
		_, err := serv.GetMonthlyReport(ctx, uid, 2025, 13)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidDate)
		_, err = serv.GetMonthlyReport(ctx, uid, 0, 6)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidDate)
	})
	t.Run("productive month", func(t *testing.T) {
		entriesRepo.EXPECT().GetByUserAndDateRange(gomock.Any(), uid, from, to).Return([]*entity.DailyEntry{
			{UserID: uid, Score: 8.0},
			{UserID: uid, Score: 4.0},
		}, nil)
		report, err := serv.GetMonthlyReport(ctx, uid, 2025, 6)
		assert.NoError(t, err)
		assert.Equal(t, 6.0, report.Average)
		assert.False(t, report.IsUnproductive)
		assert.Equal(t, 2, len(report.Entries))
	})
	t.Run("unproductive month", func(t *testing.T) {
		entriesRepo.EXPECT().GetByUserAndDateRange(gomock.Any(), uid, from, to).Return([]*entity.DailyEntry{
			{UserID: uid, Score: 4.0},
			{UserID: uid, Score: 5.0},
		}, nil)
		report, err := serv.GetMonthlyReport(ctx, uid, 2025, 6)
		assert.NoError(t, err)
		assert.Equal(t, 4.5, report.Average)
		assert.True(t, report.IsUnproductive)
	})
	t.Run("empty month", func(t *testing.T) {
		entriesRepo.EXPECT().GetByUserAndDateRange(gomock.Any(), uid, from, to).Return([]*entity.DailyEntry{}, nil)
		report, err := serv.GetMonthlyReport(ctx, uid, 2025, 6)
		assert.NoError(t, err)
		assert.Equal(t, 0.0, report.Average)
		assert.True(t, report.IsUnproductive)
	})
}
