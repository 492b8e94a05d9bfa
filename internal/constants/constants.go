package constants

// ContextKeyUserID is the key used for the authenticated user in both the
// session and the Gin context.
const ContextKeyUserID = "user_id"

// MinPasswordLength is the minimum accepted password length at registration.
const MinPasswordLength = 8

// Pagination bounds for list endpoints.
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Dashboard limits.
const (
	DashboardRecentActivityLimit = 10
	DashboardNotificationLimit   = 20
)
