package config

import "errors"

var (
	ErrJWTSecretMissing   = errors.New("JWT_SECRET is required")
	ErrInvalidStep        = errors.New("SCHEDULING_STEP_MINUTES must be positive")
	ErrInvalidTimezone    = errors.New("SCHEDULING_DEFAULT_TIMEZONE must be an IANA zone name")
	ErrInvalidEditorHours = errors.New("EDITOR_FIRST_HOUR/EDITOR_LAST_HOUR must satisfy 0 <= first < last <= 24")
	ErrInvalidEditorDays  = errors.New("EDITOR_DAYS must be positive")
)
