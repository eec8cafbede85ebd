package gorm

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"diagramadoria/internal/domain"
	"diagramadoria/internal/logger"
	"diagramadoria/internal/storage"
)

type reviewRequestRepository struct {
	db *gorm.DB
}

// NewReviewRequestRepository создаёт новый репозиторий заявок на ревью
func NewReviewRequestRepository(db *gorm.DB) storage.ReviewRequestRepository {
	return &reviewRequestRepository{db: db}
}

// Create создаёт новую заявку на ревью
func (r *reviewRequestRepository) Create(ctx context.Context, req *domain.ReviewRequest) error {
	requestID := logger.GetRequestID(ctx)

	log.Info().
		Str("request_id", requestID).
		Str("layer", "storage").
		Int("project_id", req.ProjectID).
		Int("teacher_id", req.TeacherID).
		Msg("creating review request in database")

	dbReq := &ReviewRequest{
		ProjectID: req.ProjectID,
		StudentID: req.StudentID,
		TeacherID: req.TeacherID,
		Message:   req.Message,
		Status:    string(req.Status),
	}

	result := r.db.WithContext(ctx).Clauses(clause.Returning{}).Create(dbReq)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == storage.UniqueViolation {
			log.Warn().
				Str("request_id", requestID).
				Str("layer", "storage").
				Int("project_id", req.ProjectID).
				Int("teacher_id", req.TeacherID).
				Msg("review request for this pair already exists")
			return storage.ErrAlreadyExists
		}
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return storage.ErrAlreadyExists
		}
		log.Error().
			Err(result.Error).
			Str("request_id", requestID).
			Str("layer", "storage").
			Int("project_id", req.ProjectID).
			Msg("error creating review request")
		return result.Error
	}

	req.ID = dbReq.ID
	req.RequestedAt = dbReq.RequestedAt

	if err := r.hydrate(ctx, req); err != nil {
		return err
	}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "storage").
		Int("review_request_id", req.ID).
		Msg("successfully created review request")

	return nil
}

// GetByID получает заявку по ID
func (r *reviewRequestRepository) GetByID(ctx context.Context, id int) (*domain.ReviewRequest, error) {
	requestID := logger.GetRequestID(ctx)

	var dbReq ReviewRequest
	result := r.db.WithContext(ctx).First(&dbReq, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			log.Warn().
				Str("request_id", requestID).
				Str("layer", "storage").
				Int("review_request_id", id).
				Msg("review request not found")
			return nil, storage.ErrNotFound
		}
		log.Error().
			Err(result.Error).
			Str("request_id", requestID).
			Str("layer", "storage").
			Int("review_request_id", id).
			Msg("error fetching review request")
		return nil, result.Error
	}

	req := toDomainReviewRequest(&dbReq)
	if err := r.hydrate(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// FindByProjectAndTeacher возвращает заявку для пары (проект, преподаватель)
func (r *reviewRequestRepository) FindByProjectAndTeacher(ctx context.Context, projectID, teacherID int) (*domain.ReviewRequest, error) {
	var dbReq ReviewRequest
	result := r.db.WithContext(ctx).
		Where("project_id = ? AND teacher_id = ?", projectID, teacherID).
		First(&dbReq)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		log.Error().
			Err(result.Error).
			Str("request_id", logger.GetRequestID(ctx)).
			Str("layer", "storage").
			Int("project_id", projectID).
			Int("teacher_id", teacherID).
			Msg("error fetching review request for pair")
		return nil, result.Error
	}

	return toDomainReviewRequest(&dbReq), nil
}

// ListByStudent возвращает заявки студента, новые первыми
func (r *reviewRequestRepository) ListByStudent(ctx context.Context, studentID int) ([]domain.ReviewRequest, error) {
	return r.list(ctx, "student_id = ?", studentID)
}

// ListByTeacher возвращает заявки преподавателя, новые первыми
func (r *reviewRequestRepository) ListByTeacher(ctx context.Context, teacherID int) ([]domain.ReviewRequest, error) {
	return r.list(ctx, "teacher_id = ?", teacherID)
}

func (r *reviewRequestRepository) list(ctx context.Context, query string, arg int) ([]domain.ReviewRequest, error) {
	requestID := logger.GetRequestID(ctx)

	var dbReqs []ReviewRequest
	result := r.db.WithContext(ctx).
		Where(query, arg).
		Order("requested_at DESC").
		Find(&dbReqs)
	if result.Error != nil {
		log.Error().
			Err(result.Error).
			Str("request_id", requestID).
			Str("layer", "storage").
			Msg("error listing review requests")
		return nil, result.Error
	}

	reqs := make([]domain.ReviewRequest, len(dbReqs))
	for i := range dbReqs {
		req := toDomainReviewRequest(&dbReqs[i])
		if err := r.hydrate(ctx, req); err != nil {
			return nil, err
		}
		reqs[i] = *req
	}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "storage").
		Int("count", len(reqs)).
		Msg("successfully listed review requests")

	return reqs, nil
}

// Transition атомарно переводит заявку из статуса from в to.
// Условный UPDATE на ожидаемый текущий статус гарантирует, что два
// конкурентных ответа не переведут одну pending заявку дважды.
func (r *reviewRequestRepository) Transition(ctx context.Context, id int, from, to domain.ReviewStatus) (*domain.ReviewRequest, error) {
	requestID := logger.GetRequestID(ctx)

	log.Info().
		Str("request_id", requestID).
		Str("layer", "storage").
		Int("review_request_id", id).
		Str("from", string(from)).
		Str("to", string(to)).
		Msg("transitioning review request status")

	now := time.Now().UTC()
	updates := map[string]interface{}{"status": string(to)}
	switch to {
	case domain.ReviewStatusAccepted, domain.ReviewStatusRejected:
		updates["responded_at"] = now
	case domain.ReviewStatusCompleted:
		updates["completed_at"] = now
	}

	result := r.db.WithContext(ctx).
		Model(&ReviewRequest{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(updates)
	if result.Error != nil {
		log.Error().
			Err(result.Error).
			Str("request_id", requestID).
			Str("layer", "storage").
			Int("review_request_id", id).
			Msg("error updating review request status")
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		// Заявка либо не существует, либо статус уже изменился
		var dbReq ReviewRequest
		if err := r.db.WithContext(ctx).First(&dbReq, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, storage.ErrNotFound
			}
			return nil, err
		}
		log.Warn().
			Str("request_id", requestID).
			Str("layer", "storage").
			Int("review_request_id", id).
			Str("current_status", dbReq.Status).
			Msg("review request no longer in expected status")
		return nil, storage.ErrConflict
	}

	return r.GetByID(ctx, id)
}

// Delete удаляет заявку
func (r *reviewRequestRepository) Delete(ctx context.Context, id int) error {
	requestID := logger.GetRequestID(ctx)

	result := r.db.WithContext(ctx).Delete(&ReviewRequest{}, "id = ?", id)
	if result.Error != nil {
		log.Error().
			Err(result.Error).
			Str("request_id", requestID).
			Str("layer", "storage").
			Int("review_request_id", id).
			Msg("error deleting review request")
		return result.Error
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "storage").
		Int("review_request_id", id).
		Msg("successfully deleted review request")

	return nil
}

// hydrate подтягивает денормализованные данные студента, преподавателя и проекта
func (r *reviewRequestRepository) hydrate(ctx context.Context, req *domain.ReviewRequest) error {
	var student, teacher User
	var project Project

	if err := r.db.WithContext(ctx).First(&student, "id = ?", req.StudentID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err := r.db.WithContext(ctx).First(&teacher, "id = ?", req.TeacherID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err := r.db.WithContext(ctx).First(&project, "id = ?", req.ProjectID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	req.Student = domain.UserRef{ID: student.ID, Name: student.Name, Email: student.Email, Role: domain.Role(student.Role)}
	req.Teacher = domain.UserRef{ID: teacher.ID, Name: teacher.Name, Email: teacher.Email, Role: domain.Role(teacher.Role)}
	req.Project = domain.ProjectRef{ID: project.ID, Title: project.Title, StartedAt: project.StartedAt}
	return nil
}

func toDomainReviewRequest(dbReq *ReviewRequest) *domain.ReviewRequest {
	return &domain.ReviewRequest{
		ID:          dbReq.ID,
		ProjectID:   dbReq.ProjectID,
		StudentID:   dbReq.StudentID,
		TeacherID:   dbReq.TeacherID,
		Message:     dbReq.Message,
		Status:      domain.ReviewStatus(dbReq.Status),
		RequestedAt: dbReq.RequestedAt,
		RespondedAt: dbReq.RespondedAt,
		CompletedAt: dbReq.CompletedAt,
	}
}
