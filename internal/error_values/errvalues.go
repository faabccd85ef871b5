package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrActivityExists   = errors.New("user already has activity with such name")
	ErrActivityNotFound = errors.New("activity doesn't exist")
	ErrQuotaExceeded    = errors.New("free tier activity limit reached")

	ErrEntryNotFound      = errors.New("daily entry doesn't exist")
	ErrEntryExists        = errors.New("daily entry for this date already exists")
	ErrAlreadyFinalized   = errors.New("daily entry is already finalized")
	ErrNotFinalized       = errors.New("daily entry is not finalized")
	ErrCompletionNotFound = errors.New("activity completion doesn't exist")

	ErrWrongOwner     = errors.New("resource belongs to a different user")
	ErrInvalidDate    = errors.New("date must be in YYYY-MM-DD format")
	ErrQuoteNotFound  = errors.New("no quotes available")
	ErrStreakNotFound = errors.New("streak doesn't exist")
)
