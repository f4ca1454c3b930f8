// File: utils/constants.go
package utils

// Header used by the backend's development-mode email authentication.
const DevEmailHeader = "X-User-Email"

// Gin context keys.
const (
	SessionContextKey = "session"
	LoggerContextKey  = "logger"
	RequestIDKey      = "requestID"
)
