package apperrors

// Error codes grouped by domain.
const (
	// Authentication and authorization
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"

	// Resources
	CodeNotFound       ErrorCode = "NOT_FOUND"
	CodeUserNotFound   ErrorCode = "USER_NOT_FOUND"
	CodePersonNotFound ErrorCode = "PERSON_NOT_FOUND"
	CodeCostNotFound   ErrorCode = "COST_NOT_FOUND"
	CodeGradeNotFound  ErrorCode = "GRADE_NOT_FOUND"

	// Business rules
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeUserNotActive      ErrorCode = "USER_NOT_ACTIVE"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
