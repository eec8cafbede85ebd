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

type gradeRepository struct {
	db *gorm.DB
}

// NewGradeRepository создаёт новый репозиторий оценок
func NewGradeRepository(db *gorm.DB) storage.GradeRepository {
	return &gradeRepository{db: db}
}

// GetByID возвращает оценку по ID
func (r *gradeRepository) GetByID(ctx context.Context, id int) (*domain.Grade, error) {
	requestID := logger.GetRequestID(ctx)

	var dbGrade Grade
	result := r.db.WithContext(ctx).First(&dbGrade, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			log.Warn().
				Str("request_id", requestID).
				Str("layer", "storage").
				Int("grade_id", id).
				Msg("grade not found")
			return nil, storage.ErrNotFound
		}
		log.Error().
			Err(result.Error).
			Str("request_id", requestID).
			Str("layer", "storage").
			Int("grade_id", id).
			Msg("error fetching grade")
		return nil, result.Error
	}

	g := toDomainGrade(&dbGrade)
	if err := r.hydrate(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// FindByProjectAndTeacher возвращает оценку для пары (проект, преподаватель)
func (r *gradeRepository) FindByProjectAndTeacher(ctx context.Context, projectID, teacherID int) (*domain.Grade, error) {
	var dbGrade Grade
	result := r.db.WithContext(ctx).
		Where("project_id = ? AND teacher_id = ?", projectID, teacherID).
		First(&dbGrade)
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
			Msg("error fetching grade for pair")
		return nil, result.Error
	}

	return toDomainGrade(&dbGrade), nil
}

// Create создаёт оценку
func (r *gradeRepository) Create(ctx context.Context, g *domain.Grade) error {
	requestID := logger.GetRequestID(ctx)

	log.Info().
		Str("request_id", requestID).
		Str("layer", "storage").
		Int("project_id", g.ProjectID).
		Int("teacher_id", g.TeacherID).
		Msg("creating grade in database")

	dbGrade := &Grade{
		ProjectID: g.ProjectID,
		TeacherID: g.TeacherID,
		Score:     g.Score,
		MaxScore:  g.MaxScore,
		Comment:   g.Comment,
	}

	result := r.db.WithContext(ctx).Clauses(clause.Returning{}).Create(dbGrade)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == storage.UniqueViolation {
			return storage.ErrAlreadyExists
		}
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return storage.ErrAlreadyExists
		}
		log.Error().
			Err(result.Error).
			Str("request_id", requestID).
			Str("layer", "storage").
			Int("project_id", g.ProjectID).
			Msg("error creating grade")
		return result.Error
	}

	g.ID = dbGrade.ID
	g.GradedAt = dbGrade.GradedAt
	g.UpdatedAt = dbGrade.UpdatedAt

	return r.hydrate(ctx, g)
}

// Update обновляет оценку
func (r *gradeRepository) Update(ctx context.Context, g *domain.Grade) error {
	requestID := logger.GetRequestID(ctx)

	now := time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&Grade{}).
		Where("id = ?", g.ID).
		Updates(map[string]interface{}{
			"score":      g.Score,
			"max_score":  g.MaxScore,
			"comment":    g.Comment,
			"updated_at": now,
		})
	if result.Error != nil {
		log.Error().
			Err(result.Error).
			Str("request_id", requestID).
			Str("layer", "storage").
			Int("grade_id", g.ID).
			Msg("error updating grade")
		return result.Error
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}

	g.UpdatedAt = now

	log.Info().
		Str("request_id", requestID).
		Str("layer", "storage").
		Int("grade_id", g.ID).
		Msg("successfully updated grade")

	return r.hydrate(ctx, g)
}

// ListByProject возвращает оценки проекта, новые первыми
func (r *gradeRepository) ListByProject(ctx context.Context, projectID int) ([]domain.Grade, error) {
	requestID := logger.GetRequestID(ctx)

	var dbGrades []Grade
	result := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("graded_at DESC").
		Find(&dbGrades)
	if result.Error != nil {
		log.Error().
			Err(result.Error).
			Str("request_id", requestID).
			Str("layer", "storage").
			Int("project_id", projectID).
			Msg("error listing grades")
		return nil, result.Error
	}

	grades := make([]domain.Grade, len(dbGrades))
	for i := range dbGrades {
		g := toDomainGrade(&dbGrades[i])
		if err := r.hydrate(ctx, g); err != nil {
			return nil, err
		}
		grades[i] = *g
	}

	return grades, nil
}

// Delete удаляет оценку
func (r *gradeRepository) Delete(ctx context.Context, id int) error {
	requestID := logger.GetRequestID(ctx)

	result := r.db.WithContext(ctx).Delete(&Grade{}, "id = ?", id)
	if result.Error != nil {
		log.Error().
			Err(result.Error).
			Str("request_id", requestID).
			Str("layer", "storage").
			Int("grade_id", id).
			Msg("error deleting grade")
		return result.Error
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// hydrate подтягивает денормализованные данные преподавателя
func (r *gradeRepository) hydrate(ctx context.Context, g *domain.Grade) error {
	var teacher User
	if err := r.db.WithContext(ctx).First(&teacher, "id = ?", g.TeacherID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	g.Teacher = domain.UserRef{ID: teacher.ID, Name: teacher.Name, Email: teacher.Email, Role: domain.Role(teacher.Role)}
	return nil
}

func toDomainGrade(dbGrade *Grade) *domain.Grade {
	return &domain.Grade{
		ID:        dbGrade.ID,
		ProjectID: dbGrade.ProjectID,
		TeacherID: dbGrade.TeacherID,
		Score:     dbGrade.Score,
		MaxScore:  dbGrade.MaxScore,
		Comment:   dbGrade.Comment,
		GradedAt:  dbGrade.GradedAt,
		UpdatedAt: dbGrade.UpdatedAt,
	}
}
