package storage

import (
	"context"

	"diagramadoria/internal/domain"
)

// TxManager управляет транзакциями базы данных
//
//go:generate mockery --name=TxManager --output=../mocks --outpkg=mocks --filename=tx_manager_mock.go
type TxManager interface {
	// Do выполняет функцию fn внутри транзакции
	// Если fn возвращает ошибку, транзакция откатывается
	// Иначе транзакция коммитится
	Do(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx представляет транзакцию с доступом к репозиториям
//
//go:generate mockery --name=Tx --output=../mocks --outpkg=mocks --filename=tx_mock.go
type Tx interface {
	ReviewRequestRepo() ReviewRequestRepository
	UserRepo() UserRepository
	AccessRepo() ProjectAccessRepository
	PermissionRepo() PermissionRepository
	CommentRepo() CommentRepository
	GradeRepo() GradeRepository
}

// ReviewRequestRepository определяет операции с заявками на ревью
//
//go:generate mockery --name=ReviewRequestRepository --output=../mocks --outpkg=mocks --filename=review_request_repository_mock.go
type ReviewRequestRepository interface {
	// Create создаёт новую заявку со статусом pending
	Create(ctx context.Context, r *domain.ReviewRequest) error

	// GetByID возвращает заявку по ID с денормализованными полями
	GetByID(ctx context.Context, id int) (*domain.ReviewRequest, error)

	// FindByProjectAndTeacher возвращает заявку для пары (проект, преподаватель)
	FindByProjectAndTeacher(ctx context.Context, projectID, teacherID int) (*domain.ReviewRequest, error)

	// ListByStudent возвращает заявки студента, новые первыми
	ListByStudent(ctx context.Context, studentID int) ([]domain.ReviewRequest, error)

	// ListByTeacher возвращает заявки преподавателя, новые первыми
	ListByTeacher(ctx context.Context, teacherID int) ([]domain.ReviewRequest, error)

	// Transition атомарно переводит заявку из статуса from в to.
	// Возвращает ErrConflict, если заявка уже не в статусе from.
	Transition(ctx context.Context, id int, from, to domain.ReviewStatus) (*domain.ReviewRequest, error)

	// Delete удаляет заявку
	Delete(ctx context.Context, id int) error
}

// UserRepository определяет операции с пользователями
//
//go:generate mockery --name=UserRepository --output=../mocks --outpkg=mocks --filename=user_repository_mock.go
type UserRepository interface {
	// GetByID возвращает пользователя по ID
	GetByID(ctx context.Context, id int) (*domain.User, error)

	// GetByEmail возвращает пользователя по email
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// ProjectAccessRepository определяет операции с записями доступа к проектам
//
//go:generate mockery --name=ProjectAccessRepository --output=../mocks --outpkg=mocks --filename=project_access_repository_mock.go
type ProjectAccessRepository interface {
	// GetAccess возвращает запись доступа пользователя к проекту c именем уровня
	GetAccess(ctx context.Context, userID, projectID int) (*domain.ProjectAccess, error)

	// CreateAccess создаёт запись доступа с указанным уровнем
	CreateAccess(ctx context.Context, userID, projectID, permissionID int) error
}

// PermissionRepository определяет операции с каталогом уровней доступа
//
//go:generate mockery --name=PermissionRepository --output=../mocks --outpkg=mocks --filename=permission_repository_mock.go
type PermissionRepository interface {
	// FindByName возвращает уровень доступа по точному имени
	FindByName(ctx context.Context, name string) (*domain.Permission, error)

	// FindViewLevel ищет уровень "вид" по эвристике имён (vista/view/solo lectura)
	FindViewLevel(ctx context.Context) (*domain.Permission, error)
}

// CommentRepository определяет операции с комментариями
//
//go:generate mockery --name=CommentRepository --output=../mocks --outpkg=mocks --filename=comment_repository_mock.go
type CommentRepository interface {
	// Create создаёт комментарий
	Create(ctx context.Context, c *domain.Comment) error

	// GetByID возвращает комментарий по ID
	GetByID(ctx context.Context, id int) (*domain.Comment, error)

	// ListByProject возвращает комментарии проекта, новые первыми
	ListByProject(ctx context.Context, projectID int) ([]domain.Comment, error)

	// ListByElement возвращает комментарии элемента диаграммы, новые первыми
	ListByElement(ctx context.Context, projectID int, elementID string) ([]domain.Comment, error)

	// UpdateStatus меняет статус комментария и метку resolved_at
	UpdateStatus(ctx context.Context, id int, status domain.CommentStatus) (*domain.Comment, error)

	// Delete удаляет комментарий
	Delete(ctx context.Context, id int) error
}

// GradeRepository определяет операции с оценками
//
//go:generate mockery --name=GradeRepository --output=../mocks --outpkg=mocks --filename=grade_repository_mock.go
type GradeRepository interface {
	// GetByID возвращает оценку по ID
	GetByID(ctx context.Context, id int) (*domain.Grade, error)

	// FindByProjectAndTeacher возвращает оценку для пары (проект, преподаватель)
	FindByProjectAndTeacher(ctx context.Context, projectID, teacherID int) (*domain.Grade, error)

	// Create создаёт оценку
	Create(ctx context.Context, g *domain.Grade) error

	// Update обновляет оценку
	Update(ctx context.Context, g *domain.Grade) error

	// ListByProject возвращает оценки проекта, новые первыми
	ListByProject(ctx context.Context, projectID int) ([]domain.Grade, error)

	// Delete удаляет оценку
	Delete(ctx context.Context, id int) error
}
