package services

import "errors"

var (
	ErrDayNotFound        = errors.New("day not found")
	ErrFutureDay          = errors.New("day has not started yet")
	ErrRecordNotPersisted = errors.New("day record was not persisted")
	ErrSettingsNotFound   = errors.New("user settings not found")
	ErrConfigNotFound     = errors.New("ramadan config not found")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
