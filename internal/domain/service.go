package domain

import "context"

// ReviewService - интерфейс бизнес-логики платформы ревью диаграмм
//
//go:generate mockery --name=ReviewService --output=../mocks --outpkg=mocks --filename=review_service_mock.go
type ReviewService interface {
	// CreateReviewRequest создаёт заявку студента на ревью проекта указанным преподавателем
	CreateReviewRequest(ctx context.Context, actor Actor, input *CreateReviewRequestInput) (*ReviewRequest, error)

	// ListSentReviewRequests возвращает заявки, отправленные студентом (новые первыми)
	ListSentReviewRequests(ctx context.Context, actor Actor) ([]ReviewRequest, error)

	// ListReceivedReviewRequests возвращает заявки, адресованные преподавателю (новые первыми)
	ListReceivedReviewRequests(ctx context.Context, actor Actor) ([]ReviewRequest, error)

	// RespondToReviewRequest принимает или отклоняет pending заявку от имени адресованного преподавателя
	RespondToReviewRequest(ctx context.Context, actor Actor, input *RespondReviewRequestInput) (*ReviewRequest, error)

	// CompleteReviewRequest переводит accepted заявку в completed
	CompleteReviewRequest(ctx context.Context, actor Actor, requestID int) (*ReviewRequest, error)

	// CancelReviewRequest удаляет pending заявку по инициативе создавшего её студента
	CancelReviewRequest(ctx context.Context, actor Actor, requestID int) error

	// CreateComment создаёт комментарий преподавателя к проекту или элементу диаграммы
	CreateComment(ctx context.Context, actor Actor, input *CreateCommentInput) (*Comment, error)

	// ListProjectComments возвращает все комментарии проекта (новые первыми)
	ListProjectComments(ctx context.Context, actor Actor, projectID int) ([]Comment, error)

	// ListElementComments возвращает комментарии конкретного элемента диаграммы
	ListElementComments(ctx context.Context, actor Actor, projectID int, elementID string) ([]Comment, error)

	// UpdateCommentStatus меняет статус комментария (например, помечает resolved)
	UpdateCommentStatus(ctx context.Context, actor Actor, input *UpdateCommentStatusInput) (*Comment, error)

	// DeleteComment удаляет комментарий, доступно только его автору
	DeleteComment(ctx context.Context, actor Actor, commentID int) error

	// UpsertGrade выставляет или обновляет оценку преподавателя за проект
	UpsertGrade(ctx context.Context, actor Actor, input *UpsertGradeInput) (*Grade, error)

	// ListProjectGrades возвращает оценки проекта и нормализованное среднее
	ListProjectGrades(ctx context.Context, actor Actor, projectID int) (*ProjectGrades, error)

	// DeleteGrade удаляет оценку, доступно только выставившему её преподавателю
	DeleteGrade(ctx context.Context, actor Actor, gradeID int) error
}
