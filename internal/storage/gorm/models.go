package gorm

import (
	"time"
)

// User - модель БД для пользователя
type User struct {
	ID    int    `gorm:"column:id;primaryKey;autoIncrement"`
	Name  string `gorm:"column:name;not null"`
	Email string `gorm:"column:email;not null;uniqueIndex"`
	Role  string `gorm:"column:role;not null"`
}

func (User) TableName() string {
	return "users"
}

// Project - модель БД для проекта (диаграммы)
type Project struct {
	ID        int        `gorm:"column:id;primaryKey;autoIncrement"`
	Title     string     `gorm:"column:title;not null"`
	StartedAt *time.Time `gorm:"column:started_at"`
}

func (Project) TableName() string {
	return "projects"
}

// Permission - модель БД для каталога уровней доступа
type Permission struct {
	ID   int    `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:name;not null;uniqueIndex"`
}

func (Permission) TableName() string {
	return "permissions"
}

// ProjectAccess - модель БД для связи пользователь-проект-уровень доступа
type ProjectAccess struct {
	UserID       int `gorm:"column:user_id;primaryKey"`
	ProjectID    int `gorm:"column:project_id;primaryKey"`
	PermissionID int `gorm:"column:permission_id;not null"`
}

func (ProjectAccess) TableName() string {
	return "project_access"
}

// ReviewRequest - модель БД для заявки на ревью
// Уникальный индекс на (project_id, teacher_id) обеспечивает не более
// одной заявки на пару
type ReviewRequest struct {
	ID          int        `gorm:"column:id;primaryKey;autoIncrement"`
	ProjectID   int        `gorm:"column:project_id;not null;uniqueIndex:idx_review_project_teacher"`
	StudentID   int        `gorm:"column:student_id;not null"`
	TeacherID   int        `gorm:"column:teacher_id;not null;uniqueIndex:idx_review_project_teacher"`
	Message     *string    `gorm:"column:message"`
	Status      string     `gorm:"column:status;not null;default:pending"`
	RequestedAt time.Time  `gorm:"column:requested_at;not null;default:CURRENT_TIMESTAMP"`
	RespondedAt *time.Time `gorm:"column:responded_at"`
	CompletedAt *time.Time `gorm:"column:completed_at"`
}

func (ReviewRequest) TableName() string {
	return "review_requests"
}

// Comment - модель БД для комментария преподавателя
type Comment struct {
	ID          int        `gorm:"column:id;primaryKey;autoIncrement"`
	ProjectID   int        `gorm:"column:project_id;not null"`
	AuthorID    int        `gorm:"column:author_id;not null"`
	ElementID   *string    `gorm:"column:element_id"`
	ElementType *string    `gorm:"column:element_type"`
	Content     string     `gorm:"column:content;not null"`
	Kind        string     `gorm:"column:kind;not null;default:comment"`
	Status      string     `gorm:"column:status;not null;default:pending"`
	CreatedAt   time.Time  `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
	ResolvedAt  *time.Time `gorm:"column:resolved_at"`
}

func (Comment) TableName() string {
	return "comments"
}

// Grade - модель БД для оценки, уникальна на пару (проект, преподаватель)
type Grade struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement"`
	ProjectID int       `gorm:"column:project_id;not null;uniqueIndex:idx_grade_project_teacher"`
	TeacherID int       `gorm:"column:teacher_id;not null;uniqueIndex:idx_grade_project_teacher"`
	Score     float64   `gorm:"column:score;not null"`
	MaxScore  float64   `gorm:"column:max_score;not null;default:100"`
	Comment   *string   `gorm:"column:comment"`
	GradedAt  time.Time `gorm:"column:graded_at;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:CURRENT_TIMESTAMP"`
}

func (Grade) TableName() string {
	return "grades"
}
