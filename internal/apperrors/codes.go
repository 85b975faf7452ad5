package apperrors

// Error codes grouped by concern.
const (
	CodeUnauthenticated ErrorCode = "UNAUTHENTICATED"
	CodeAuthFailed      ErrorCode = "AUTH_FAILED"
	CodeForbidden       ErrorCode = "FORBIDDEN"

	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeInvalidState     ErrorCode = "INVALID_STATE"

	CodeUpstreamUnavailable ErrorCode = "UPSTREAM_UNAVAILABLE"
	CodeInternalError       ErrorCode = "INTERNAL_ERROR"
)
