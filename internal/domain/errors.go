package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode - код ошибки для API
type ErrorCode string

const (
	ErrorCodeUnauthenticated   ErrorCode = "UNAUTHENTICATED"
	ErrorCodeStudentsOnly      ErrorCode = "STUDENTS_ONLY"
	ErrorCodeTeachersOnly      ErrorCode = "TEACHERS_ONLY"
	ErrorCodeNotProjectOwner   ErrorCode = "NOT_PROJECT_OWNER"
	ErrorCodeNoProjectAccess   ErrorCode = "NO_PROJECT_ACCESS"
	ErrorCodeNotRequestTeacher ErrorCode = "NOT_REQUEST_TEACHER"
	ErrorCodeNotRequestStudent ErrorCode = "NOT_REQUEST_STUDENT"
	ErrorCodeNotCommentAuthor  ErrorCode = "NOT_COMMENT_AUTHOR"
	ErrorCodeNotGradeAuthor    ErrorCode = "NOT_GRADE_AUTHOR"
	ErrorCodeTargetNotTeacher  ErrorCode = "TARGET_NOT_TEACHER"
	ErrorCodePendingExists     ErrorCode = "PENDING_REQUEST_EXISTS"
	ErrorCodeAlreadyResolved   ErrorCode = "ALREADY_RESOLVED"
	ErrorCodeInvalidTransition ErrorCode = "INVALID_TRANSITION"
	ErrorCodeNotFound          ErrorCode = "NOT_FOUND"
	ErrorCodeInternalError     ErrorCode = "INTERNAL_ERROR"
	ErrorCodeInvalidInput      ErrorCode = "INVALID_INPUT"
)

// Error - доменная ошибка с HTTP статусом и кодом
type Error struct {
	Status  int       // HTTP status code
	Code    ErrorCode // Код ошибки для API
	Message string    // Сообщение об ошибке
	Err     error     // Wrapped error для контекста
}

// Error реализует интерфейс error
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap позволяет использовать errors.Is и errors.As
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError создаёт новую доменную ошибку
func NewError(status int, code ErrorCode, message string, err error) *Error {
	return &Error{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Предопределённые доменные ошибки
var (
	// ErrUnauthenticated - личность вызывающего не установлена
	ErrUnauthenticated = NewError(
		http.StatusUnauthorized,
		ErrorCodeUnauthenticated,
		"user is not authenticated",
		nil,
	)

	// ErrStudentsOnly - операция доступна только студентам
	ErrStudentsOnly = NewError(
		http.StatusForbidden,
		ErrorCodeStudentsOnly,
		"only students can perform this operation",
		nil,
	)

	// ErrTeachersOnly - операция доступна только преподавателям
	ErrTeachersOnly = NewError(
		http.StatusForbidden,
		ErrorCodeTeachersOnly,
		"only teachers can perform this operation",
		nil,
	)

	// ErrNotProjectOwner - вызывающий не является создателем проекта
	ErrNotProjectOwner = NewError(
		http.StatusForbidden,
		ErrorCodeNotProjectOwner,
		"only the project creator can request a review",
		nil,
	)

	// ErrNoProjectAccess - у вызывающего нет доступа к проекту
	ErrNoProjectAccess = NewError(
		http.StatusForbidden,
		ErrorCodeNoProjectAccess,
		"no access to this project",
		nil,
	)

	// ErrNotRequestTeacher - заявка адресована другому преподавателю
	ErrNotRequestTeacher = NewError(
		http.StatusForbidden,
		ErrorCodeNotRequestTeacher,
		"review request is addressed to a different teacher",
		nil,
	)

	// ErrNotRequestStudent - заявка создана другим студентом
	ErrNotRequestStudent = NewError(
		http.StatusForbidden,
		ErrorCodeNotRequestStudent,
		"review request belongs to a different student",
		nil,
	)

	// ErrNotCommentAuthor - комментарий принадлежит другому пользователю
	ErrNotCommentAuthor = NewError(
		http.StatusForbidden,
		ErrorCodeNotCommentAuthor,
		"only the comment author can delete it",
		nil,
	)

	// ErrNotGradeAuthor - оценка выставлена другим преподавателем
	ErrNotGradeAuthor = NewError(
		http.StatusForbidden,
		ErrorCodeNotGradeAuthor,
		"only the grading teacher can delete this grade",
		nil,
	)

	// ErrTargetNotTeacher - пользователь с указанным email не является преподавателем
	ErrTargetNotTeacher = NewError(
		http.StatusBadRequest,
		ErrorCodeTargetNotTeacher,
		"target user is not a teacher",
		nil,
	)

	// ErrPendingRequestExists - для пары (проект, преподаватель) уже есть pending заявка
	ErrPendingRequestExists = NewError(
		http.StatusConflict,
		ErrorCodePendingExists,
		"a pending review request for this teacher already exists",
		nil,
	)

	// ErrAlreadyResolved - заявка уже была отвечена
	ErrAlreadyResolved = NewError(
		http.StatusConflict,
		ErrorCodeAlreadyResolved,
		"review request has already been responded to",
		nil,
	)

	// ErrInvalidTransition - операция недопустима в текущем статусе заявки
	ErrInvalidTransition = NewError(
		http.StatusConflict,
		ErrorCodeInvalidTransition,
		"operation is not allowed in the current request status",
		nil,
	)

	// ErrResourceNotFound - ресурс не найден
	ErrResourceNotFound = NewError(
		http.StatusNotFound,
		ErrorCodeNotFound,
		"resource not found",
		nil,
	)

	// ErrInternal - внутренняя ошибка сервера
	ErrInternal = NewError(
		http.StatusInternalServerError,
		ErrorCodeInternalError,
		"internal server error",
		nil,
	)

	// ErrInvalidInput - невалидные входные данные
	ErrInvalidInput = NewError(
		http.StatusBadRequest,
		ErrorCodeInvalidInput,
		"invalid input data",
		nil,
	)
)

// IsDomainError проверяет, является ли ошибка доменной
func IsDomainError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

// WrapError оборачивает обычную ошибку в доменную с контекстом
func WrapError(err error, status int, code ErrorCode, message string) *Error {
	return NewError(status, code, message, err)
}
