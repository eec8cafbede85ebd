package domain

import "time"

// Role - роль пользователя платформы
type Role string

const (
	RoleStudent Role = "estudiante"
	RoleTeacher Role = "docente"
)

// ReviewStatus - статус заявки на ревью
type ReviewStatus string

const (
	ReviewStatusPending   ReviewStatus = "pending"
	ReviewStatusAccepted  ReviewStatus = "accepted"
	ReviewStatusRejected  ReviewStatus = "rejected"
	ReviewStatusCompleted ReviewStatus = "completed"
)

// CommentStatus - статус комментария преподавателя
type CommentStatus string

const (
	CommentStatusPending  CommentStatus = "pending"
	CommentStatusResolved CommentStatus = "resolved"
)

// Имена уровней доступа из каталога permissions
const (
	PermissionCreator = "creador"
	PermissionView    = "vista"
	PermissionEdit    = "editar"
	PermissionComment = "comentar"
)

// Actor - аутентифицированный пользователь, от имени которого выполняется операция
type Actor struct {
	ID   int
	Role Role
}

// UserRef - денормализованные данные пользователя для ответов API
type UserRef struct {
	ID    int
	Name  string
	Email string
	Role  Role
}

// ProjectRef - денормализованные данные проекта для ответов API
type ProjectRef struct {
	ID        int
	Title     string
	StartedAt *time.Time
}

// ReviewRequest - domain модель заявки студента на ревью проекта
type ReviewRequest struct {
	ID          int
	ProjectID   int
	StudentID   int
	TeacherID   int
	Message     *string
	Status      ReviewStatus
	RequestedAt time.Time
	RespondedAt *time.Time
	CompletedAt *time.Time

	Student UserRef
	Teacher UserRef
	Project ProjectRef
}

// User - domain модель пользователя
type User struct {
	ID    int
	Name  string
	Email string
	Role  Role
}

// Permission - уровень доступа из каталога
type Permission struct {
	ID   int
	Name string
}

// ProjectAccess - запись о доступе пользователя к проекту
type ProjectAccess struct {
	UserID       int
	ProjectID    int
	PermissionID int
	Permission   string
}

// Comment - комментарий преподавателя к проекту или элементу диаграммы
type Comment struct {
	ID          int
	ProjectID   int
	AuthorID    int
	ElementID   *string
	ElementType *string
	Content     string
	Kind        string
	Status      CommentStatus
	CreatedAt   time.Time
	ResolvedAt  *time.Time

	Author UserRef
}

// Grade - оценка проекта преподавателем, одна на пару (проект, преподаватель)
type Grade struct {
	ID        int
	ProjectID int
	TeacherID int
	Score     float64
	MaxScore  float64
	Comment   *string
	GradedAt  time.Time
	UpdatedAt time.Time

	Teacher UserRef
}

// Input/Output DTOs для методов сервиса

// CreateReviewRequestInput - входные данные для создания заявки на ревью
type CreateReviewRequestInput struct {
	ProjectID    int
	TeacherEmail string
	Message      *string
}

// RespondReviewRequestInput - входные данные для ответа преподавателя на заявку
type RespondReviewRequestInput struct {
	RequestID int
	Decision  ReviewStatus // ReviewStatusAccepted или ReviewStatusRejected
}

// CreateCommentInput - входные данные для создания комментария
type CreateCommentInput struct {
	ProjectID   int
	ElementID   *string
	ElementType *string
	Content     string
	Kind        string
}

// UpdateCommentStatusInput - входные данные для смены статуса комментария
type UpdateCommentStatusInput struct {
	CommentID int
	Status    CommentStatus
}

// UpsertGradeInput - входные данные для выставления/обновления оценки
type UpsertGradeInput struct {
	ProjectID int
	Score     float64
	MaxScore  float64
	Comment   *string
}

// ProjectGrades - оценки проекта вместе с нормализованным средним баллом
type ProjectGrades struct {
	Grades  []Grade
	Average *float64 // среднее по шкале 0-100, nil если оценок нет
}
