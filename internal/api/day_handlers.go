package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	errorvalues "github.com/limbo/momentum/internal/error_values"
	"github.com/limbo/momentum/internal/service"
	"github.com/limbo/momentum/pkg/httputil"
	"github.com/limbo/momentum/pkg/metrics"
)

type LiveScoreResponse struct {
	Date  string  `json:"date"`
	Score float64 `json:"score"`
}

type FinalizeResponse struct {
	Date  string  `json:"date"`
	Score float64 `json:"score"`
}

func (s *Server) GetDailyEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get daily entry error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	date, err := service.ParseDate(r.PathValue("date"))
	if err != nil {
		logger.Error("get daily entry error: invalid date in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	entry, err := s.daysService.GetOrCreateEntry(ctx, uid, date)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("get daily entry error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
			return
		}
		logger.Error("get daily entry error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting daily entry", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, entry)
	logger.Info("daily entry provided")
}

func (s *Server) GetLiveScore(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("live score error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	date, err := service.ParseDate(r.PathValue("date"))
	if err != nil {
		logger.Error("live score error: invalid date in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	score, err := s.daysService.GetLiveScore(ctx, uid, date)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEntryNotFound) {
			logger.Error("live score error: unexist entry")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no entry for this day yet", nil)
			return
		}
		logger.Error("live score error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while computing score", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, LiveScoreResponse{
		Date:  date.Format(time.DateOnly),
		Score: score,
	})
	logger.Info("live score provided")
}

func (s *Server) FinalizeDay(w http.ResponseWriter, r *http.Request) {
	s.finalizeDay(w, r, "manual")
}

func (s *Server) AutoFinalizeDay(w http.ResponseWriter, r *http.Request) {
	s.finalizeDay(w, r, "auto")
}

func (s *Server) finalizeDay(w http.ResponseWriter, r *http.Request, trigger string) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("finalize error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	date, err := service.ParseDate(r.PathValue("date"))
	if err != nil {
		logger.Error("finalize error: invalid date in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	var score float64
	if trigger == "auto" {
		score, err = s.finalizeService.AutoFinalize(ctx, uid, date)
	} else {
		score, err = s.finalizeService.Finalize(ctx, uid, date)
	}
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrEntryNotFound):
			metrics.FinalizeCount.WithLabelValues(trigger, "not_found").Inc()
			logger.Error("finalize error: unexist entry")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no entry for this day yet", nil)
		case errors.Is(err, errorvalues.ErrAlreadyFinalized):
			metrics.FinalizeCount.WithLabelValues(trigger, "conflict").Inc()
			logger.Error("finalize error: day already finalized")
			httputil.WriteErrorResponse(w, http.StatusConflict, "day is already finalized", nil)
		default:
			metrics.FinalizeCount.WithLabelValues(trigger, "error").Inc()
			logger.Error("finalize error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while finalizing day", nil)
		}
		return
	}
	metrics.FinalizeCount.WithLabelValues(trigger, "ok").Inc()
	httputil.WriteJSONResponse(w, http.StatusOK, FinalizeResponse{
		Date:  date.Format(time.DateOnly),
		Score: score,
	})
	logger.Info("day finalized", slog.String("trigger", trigger), slog.Float64("score", score))
}

func (s *Server) UndoDay(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("undo error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	date, err := service.ParseDate(r.PathValue("date"))
	if err != nil {
		logger.Error("undo error: invalid date in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.finalizeService.Undo(ctx, uid, date)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrEntryNotFound):
			logger.Error("undo error: unexist entry")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no entry for this day yet", nil)
		case errors.Is(err, errorvalues.ErrNotFinalized):
			logger.Error("undo error: day is not finalized")
			httputil.WriteErrorResponse(w, http.StatusConflict, "day is not finalized", nil)
		default:
			logger.Error("undo error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while reopening day", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": "reopened"})
	logger.Info("day reopened")
}

func (s *Server) GetStreak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get streak error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	streak, err := s.streaksService.GetStreak(ctx, uid)
	if err != nil {
		logger.Error("get streak error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting streak", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, streak)
	logger.Info("streak provided")
}

func (s *Server) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("monthly report error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil {
		logger.Error("monthly report error: invalid year in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid year in path value", nil)
		return
	}
	month, err := strconv.Atoi(r.PathValue("month"))
	if err != nil {
		logger.Error("monthly report error: invalid month in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid month in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	report, err := s.daysService.GetMonthlyReport(ctx, uid, year, month)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidDate) {
			logger.Error("monthly report error: month out of range")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "month out of range", nil)
			return
		}
		logger.Error("monthly report error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while building report", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, report)
	logger.Info("monthly report provided")
}

func (s *Server) GetRandomQuote(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	quote, err := s.quotesService.GetRandomQuote(ctx)
	if err != nil {
		if errors.Is(err, errorvalues.ErrQuoteNotFound) {
			logger.Error("get quote error: quotes table is empty")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no quotes available", nil)
			return
		}
		logger.Error("get quote error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting quote", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, quote)
	logger.Info("quote provided")
}
