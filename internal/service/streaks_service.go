package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/internal/repository"
	"github.com/limbo/momentum/pkg/entity"
)

type StreaksService struct {
	repo repository.StreaksRepositoryI
}

func NewStreaksService(streaksRepo repository.StreaksRepositoryI) *StreaksService {
	if streaksRepo == nil {
		log.Fatal("provided nil streaksRepo")
	}
	return &StreaksService{
		repo: streaksRepo,
	}
}

func (ss *StreaksService) GetStreak(ctx context.Context, uid uuid.UUID) (*entity.Streak, error) {
	streak, err := ss.repo.GetByUserID(ctx, uid)
	if err != nil {
		// Streak rows appear lazily on first finalization, absence
		// just means zero counters
		if errors.Is(err, errorvalues.ErrStreakNotFound) {
			return &entity.Streak{UserID: uid}, nil
		}
		return nil, errors.New("streaks repository error: " + err.Error())
	}
	return streak, nil
}
