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

type UpdateReflectionRequest struct {
	Reflection string `json:"reflection"`
}

type SetCompletionRequest struct {
	Completed bool `json:"completed"`
	Duration  *int `json:"duration,omitempty"`
}

type GetCompletionsResponse struct {
	EntryID     string                      `json:"entry_id"`
	Completions []entity.ActivityCompletion `json:"completions"`
}

func (s *Server) UpdateReflection(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("reflection update error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	entryID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("reflection update error: invalid entry id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid entry id in path value", nil)
		return
	}
	var req UpdateReflectionRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("reflection update error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	entry, err := s.daysService.UpdateReflection(ctx, entryID, uid, req.Reflection)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrEntryNotFound):
			logger.Error("reflection update error: unexist entry")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "entry doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("reflection update error: entry has different owner")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "entry doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrAlreadyFinalized):
			logger.Error("reflection update error: entry already finalized")
			httputil.WriteErrorResponse(w, http.StatusConflict, "day is already finalized", nil)
		default:
			logger.Error("reflection update error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating reflection", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
	logger.Info("reflection updated")
}

func (s *Server) GetCompletions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get completions error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	entryID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get completions error: invalid entry id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid entry id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	completions, err := s.daysService.GetCompletions(ctx, entryID, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrEntryNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("get completions error: unexist entry")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "entry doesn't exist", nil)
		default:
			logger.Error("get completions error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting completions", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetCompletionsResponse{
		EntryID:     entryID.String(),
		Completions: completions,
	})
	logger.Info("completions provided")
}

func (s *Server) SetCompletion(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("set completion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	entryID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("set completion error: invalid entry id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid entry id in path value", nil)
		return
	}
	activityID, err := uuid.Parse(r.PathValue("activityID"))
	if err != nil {
		logger.Error("set completion error: invalid activity id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid activity id in path value", nil)
		return
	}
	var req SetCompletionRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("set completion error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	completion, err := s.daysService.SetCompletion(ctx, uid, &service.SetCompletionRequest{
		EntryID:    entryID,
		ActivityID: activityID,
		Completed:  req.Completed,
		Duration:   req.Duration,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrEntryNotFound):
			logger.Error("set completion error: unexist entry")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "entry doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrActivityNotFound):
			logger.Error("set completion error: unexist activity")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "activity doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("set completion error: wrong owner")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "entry or activity doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrAlreadyFinalized):
			logger.Error("set completion error: entry already finalized")
			httputil.WriteErrorResponse(w, http.StatusConflict, "day is already finalized", nil)
		case httputil.IsValidationError(err):
			logger.Error("set completion error: validation failed", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		default:
			logger.Error("set completion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while setting completion", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, completion)
	logger.Info("completion upserted")
}
