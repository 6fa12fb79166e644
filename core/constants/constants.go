package constants

import "time"

const (
	DefaultTimeout        = 5 * time.Second
	DefaultRequestTimeout = 10 * time.Second

	// ContextTokenData is the echo context key holding *utils.TokenClaims.
	ContextTokenData = "token_data"

	ScopeTokenAccess = "access"

	RedisKeyAvailabilitySaveLock = "availability:save-lock:"

	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes

	DefaultPageSize = 20
)

// Task types handled by the queue worker.
const (
	TaskInterviewBlockParticipants = "interview:block_participants"
)
