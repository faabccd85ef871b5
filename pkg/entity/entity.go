package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
	IsPro        bool
}

type Activity struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"uid"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}

type DailyEntry struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"uid"`
	Date          time.Time  `json:"date"`
	Reflection    string     `json:"reflection"`
	Score         float64    `json:"score"`
	IsFinalized   bool       `json:"is_finalized"`
	AutoFinalized bool       `json:"auto_finalized"`
	FinalizedAt   *time.Time `json:"finalized_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type ActivityCompletion struct {
	ID           uuid.UUID  `json:"id"`
	DailyEntryID uuid.UUID  `json:"daily_entry_id"`
	ActivityID   uuid.UUID  `json:"activity_id"`
	Completed    bool       `json:"completed"`
	Duration     *int       `json:"duration,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

type Streak struct {
	UserID           uuid.UUID  `json:"uid"`
	CurrentStreak    int        `json:"current_streak"`
	LongestStreak    int        `json:"longest_streak"`
	LastActivityDate *time.Time `json:"last_activity_date,omitempty"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type Quote struct {
	ID       uuid.UUID `json:"id"`
	Text     string    `json:"text"`
	Author   string    `json:"author,omitempty"`
	Category string    `json:"category"`
}

type MonthlyReport struct {
	Entries        []*DailyEntry `json:"entries"`
	Average        float64       `json:"average"`
	IsUnproductive bool          `json:"is_unproductive"`
}
