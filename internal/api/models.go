package api

const (
	ErrCodeUnauthenticated      = "UNAUTHENTICATED"
	ErrCodeStudentsOnly         = "STUDENTS_ONLY"
	ErrCodeTeachersOnly         = "TEACHERS_ONLY"
	ErrCodeNotProjectOwner      = "NOT_PROJECT_OWNER"
	ErrCodeNoProjectAccess      = "NO_PROJECT_ACCESS"
	ErrCodeTargetNotTeacher     = "TARGET_NOT_TEACHER"
	ErrCodePendingRequestExists = "PENDING_REQUEST_EXISTS"
	ErrCodeAlreadyResolved      = "ALREADY_RESOLVED"
	ErrCodeInvalidTransition    = "INVALID_TRANSITION"
	ErrCodeNotFound             = "NOT_FOUND"

	ErrCodeInternalError  = "INTERNAL_ERROR"
	ErrCodeInvalidRequest = "INVALID_REQUEST"
)

// Error represents a standardized error structure
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error Error `json:"error"`
}
