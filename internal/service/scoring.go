package service

import (
	"math"

	"github.com/google/uuid"
	"github.com/limbo/momentum/pkg/entity"
)

const (
	maxScore = 10.0
	// streak length from which the daily bonus point applies
	streakBonusThreshold = 3
	streakBonus          = 1.0
	// a finalized day counts toward the streak from this score up
	ProductiveScoreThreshold = 5.0
)

// ComputeScore turns a day's completion ledger into a score in [0, 10].
// The base is purely proportional to the completed share of the user's
// current activities; completions referencing deleted activities are
// ignored. A +1 bonus applies when the running streak is 3 days or more,
// unless the base already sits at 10. The result is rounded half away
// from zero to one decimal place.
//
// Total function: never errors, never panics, malformed inputs are coerced.
func ComputeScore(completions []entity.ActivityCompletion, activities []*entity.Activity, currentStreak int) float64 {
	totalActivities := len(activities)
	if totalActivities == 0 {
		return 0
	}
	if currentStreak < 0 {
		currentStreak = 0
	}
	known := make(map[uuid.UUID]struct{}, totalActivities)
	for _, a := range activities {
		if a == nil {
			totalActivities--
			continue
		}
		known[a.ID] = struct{}{}
	}
	if totalActivities == 0 {
		return 0
	}
	completedCount := 0
	for _, c := range completions {
		if _, ok := known[c.ActivityID]; !ok {
			continue
		}
		if c.Completed {
			completedCount++
		}
	}
	score := float64(completedCount) / float64(totalActivities) * maxScore
	if score < maxScore && currentStreak >= streakBonusThreshold {
		score += streakBonus
	}
	return math.Min(math.Max(RoundScore(score), 0), maxScore)
}

// RoundScore rounds to one decimal place, half away from zero
func RoundScore(score float64) float64 {
	return math.Round(score*10) / 10
}
