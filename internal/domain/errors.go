package domain

import "errors"

// Domain errors (для бизнес-логики)
var (
	// Validation errors
	ErrInvalidTaskTitle    = errors.New("invalid task title")
	ErrInvalidTaskStatus   = errors.New("invalid task status")
	ErrInvalidTaskPriority = errors.New("invalid task priority")
	ErrInvalidNewsID       = errors.New("invalid news id")
	ErrInvalidPeriod       = errors.New("invalid statistics period")
	ErrInvalidDateRange    = errors.New("invalid date range")

	// User errors
	ErrUserNotFound = errors.New("user not found")
	ErrUserInactive = errors.New("user is not active")

	// News errors
	ErrNewsNotFound = errors.New("news item not found")

	// Task errors
	ErrTaskNotFound = errors.New("task not found")

	// Access errors
	ErrForbidden = errors.New("operation requires admin role")
)

// HTTPError для тела ответа об ошибке
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error HTTPError `json:"error"`
}

// Маппинг domain ошибок в HTTP ошибки
var ErrorMapping = map[error]HTTPError{
	ErrInvalidTaskTitle:    {Code: "INVALID_TASK", Message: "task title and description are required"},
	ErrInvalidTaskStatus:   {Code: "INVALID_STATUS", Message: "unknown task status"},
	ErrInvalidTaskPriority: {Code: "INVALID_PRIORITY", Message: "unknown task priority"},
	ErrInvalidNewsID:       {Code: "INVALID_NEWS_ID", Message: "news id must be a positive integer"},
	ErrInvalidPeriod:       {Code: "INVALID_PERIOD", Message: "period must be one of: week, month, year, all"},
	ErrInvalidDateRange:    {Code: "INVALID_RANGE", Message: "start_date must precede end_date"},
	ErrUserNotFound:        {Code: "NOT_FOUND", Message: "user not found"},
	ErrUserInactive:        {Code: "USER_INACTIVE", Message: "user account is deactivated"},
	ErrNewsNotFound:        {Code: "NOT_FOUND", Message: "news item not found"},
	ErrTaskNotFound:        {Code: "NOT_FOUND", Message: "task not found"},
	ErrForbidden:           {Code: "FORBIDDEN", Message: "statistics are available to admins only"},
}

// ToHTTPError преобразует domain ошибку в HTTP ошибку
func ToHTTPError(err error) (HTTPError, bool) {
	httpErr, exists := ErrorMapping[err]
	return httpErr, exists
}
