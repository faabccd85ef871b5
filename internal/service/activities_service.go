package service

import (
	"context"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/internal/repository"
	"github.com/limbo/momentum/pkg/entity"
)

// FreeTierActivityCap limits how many activities a non-pro user may track
const FreeTierActivityCap = 3

var defaultActivities = []struct {
	Name string
	Icon string
}{
	{Name: "Gym Workout", Icon: "dumbbell"},
	{Name: "Learning", Icon: "brain"},
	{Name: "Reading", Icon: "book-open"},
}

type ActivitiesService struct {
	repo      repository.ActivitiesRepositoryI
	usersRepo repository.UsersRepositoryI
}

func NewActivitiesService(activitiesRepo repository.ActivitiesRepositoryI, usersRepo repository.UsersRepositoryI) *ActivitiesService {
	if activitiesRepo == nil || usersRepo == nil {
		log.Fatal("provided nil repos to activities service")
	}
	return &ActivitiesService{
		repo:      activitiesRepo,
		usersRepo: usersRepo,
	}
}

func (as *ActivitiesService) ListActivities(ctx context.Context, uid uuid.UUID) ([]*entity.Activity, error) {
	activities, err := as.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("activities repository error: " + err.Error())
	}
	if len(activities) > 0 {
		return activities, nil
	}
	// Brand-new user: seed the default set and read it back
	defaults := make([]*entity.Activity, 0, len(defaultActivities))
	for _, d := range defaultActivities {
		defaults = append(defaults, &entity.Activity{
			UserID:    uid,
			Name:      d.Name,
			Icon:      d.Icon,
			IsDefault: true,
		})
	}
	if err = as.repo.CreateBatch(ctx, defaults); err != nil {
		return nil, errors.New("seeding default activities error: " + err.Error())
	}
	activities, err = as.repo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("activities repository error: " + err.Error())
	}
	return activities, nil
}

func (as *ActivitiesService) CreateActivity(ctx context.Context, uid uuid.UUID, req *CreateActivityRequest) (*entity.Activity, error) {
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
	user, err := as.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	if !user.IsPro {
		count, err := as.repo.CountByUserID(ctx, uid)
		if err != nil {
			return nil, errors.New("activities repository error: " + err.Error())
		}
		if count >= FreeTierActivityCap {
			return nil, errorvalues.ErrQuotaExceeded
		}
	}
	id, err := as.repo.Create(ctx, &entity.Activity{
		UserID: uid,
		Name:   req.Name,
		Icon:   req.Icon,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrActivityExists):
			return nil, err
		case errors.Is(err, errorvalues.ErrUserNotFound):
			return nil, err
		}
		return nil, errors.New("activities repository error: " + err.Error())
	}
	activity, err := as.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrActivityNotFound) {
			return nil, err
		}
		return nil, errors.New("activities repository error: " + err.Error())
	}
	return activity, nil
}

func (as *ActivitiesService) DeleteActivity(ctx context.Context, activityID, uid uuid.UUID) error {
	activity, err := as.repo.GetByID(ctx, activityID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrActivityNotFound) {
			return err
		}
		return errors.New("activities repository error: " + err.Error())
	}
	if activity.UserID != uid {
		return errorvalues.ErrWrongOwner
	}
	// Past completions keep their activity_id for audit, the scoring
	// filter drops them once the activity is gone
	err = as.repo.Delete(ctx, activityID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrActivityNotFound) {
			return err
		}
		return errors.New("activities repository error: " + err.Error())
	}
	return nil
}
