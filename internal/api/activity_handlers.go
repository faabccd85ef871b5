package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/internal/service"
	"github.com/limbo/momentum/pkg/entity"
	"github.com/limbo/momentum/pkg/httputil"
)

type CreateActivityRequest struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type GetActivitiesResponse struct {
	UserID     string             `json:"uid"`
	Activities []*entity.Activity `json:"activities"`
}

func (s *Server) GetActivities(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get activities error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	activities, err := s.activitiesService.ListActivities(ctx, uid)
	if err != nil {
		logger.Error("getting activities list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting activities list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetActivitiesResponse{
		UserID:     uid.String(),
		Activities: activities,
	})
	logger.Info("activities provided")
}

func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create activity error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateActivityRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create activity error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	activity, err := s.activitiesService.CreateActivity(ctx, uid, &service.CreateActivityRequest{
		Name: req.Name,
		Icon: req.Icon,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrQuotaExceeded):
			logger.Error("create activity error: free tier cap reached")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "free tier allows up to 3 activities, upgrade to add more", nil)
		case errors.Is(err, errorvalues.ErrActivityExists):
			logger.Error("create activity error: attempt to create existed activity")
			httputil.WriteErrorResponse(w, http.StatusConflict, "activity with such name already exists", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create activity error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't create activity: user doesn't exists", nil)
		case httputil.IsValidationError(err):
			logger.Error("create activity error: validation failed", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		default:
			logger.Error("create activity error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating activity", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, activity)
	logger.Info("activity created")
}

func (s *Server) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("activity deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("activity deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid activity id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.activitiesService.DeleteActivity(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrActivityNotFound):
			logger.Error("activity deletion error: unexist activity")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "activity doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("activity deletion error: activity has different owner")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "activity doesn't exist", nil)
		default:
			logger.Error("activity deletion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting activity", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": "deleted"})
	logger.Info("activity deleted")
}
