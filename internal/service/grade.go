package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"diagramadoria/internal/domain"
	"diagramadoria/internal/logger"
	"diagramadoria/internal/metrics"
	"diagramadoria/internal/storage"
)

// UpsertGrade выставляет или обновляет оценку преподавателя за проект.
// На пару (проект, преподаватель) существует не более одной оценки.
func (s *Service) UpsertGrade(outerCtx context.Context, actor domain.Actor, input *domain.UpsertGradeInput) (*domain.Grade, error) {
	const op = "service.UpsertGrade"
	requestID := logger.GetRequestID(outerCtx)
	var grade *domain.Grade

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int("actor_id", actor.ID).
		Int("project_id", input.ProjectID).
		Float64("score", input.Score).
		Msg("upserting grade")

	if actor.Role != domain.RoleTeacher {
		return nil, domain.ErrTeachersOnly
	}

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		if err := requireProjectAccess(ctx, tx, actor.ID, input.ProjectID); err != nil {
			return err
		}

		maxScore := input.MaxScore
		if maxScore == 0 {
			maxScore = 100
		}

		existing, err := tx.GradeRepo().FindByProjectAndTeacher(ctx, input.ProjectID, actor.ID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		if existing != nil {
			existing.Score = input.Score
			existing.MaxScore = maxScore
			existing.Comment = input.Comment
			if err := tx.GradeRepo().Update(ctx, existing); err != nil {
				return err
			}
			grade = existing
			return nil
		}

		grade = &domain.Grade{
			ProjectID: input.ProjectID,
			TeacherID: actor.ID,
			Score:     input.Score,
			MaxScore:  maxScore,
			Comment:   input.Comment,
		}
		return tx.GradeRepo().Create(ctx, grade)
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	metrics.GradesUpsertedTotal.Inc()

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int("grade_id", grade.ID).
		Msg("successfully upserted grade")

	return grade, nil
}

// ListProjectGrades возвращает оценки проекта и среднее по шкале 0-100
func (s *Service) ListProjectGrades(outerCtx context.Context, actor domain.Actor, projectID int) (*domain.ProjectGrades, error) {
	const op = "service.ListProjectGrades"
	var result *domain.ProjectGrades

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		if err := requireProjectAccess(ctx, tx, actor.ID, projectID); err != nil {
			return err
		}

		grades, err := tx.GradeRepo().ListByProject(ctx, projectID)
		if err != nil {
			return err
		}

		result = &domain.ProjectGrades{Grades: grades}
		if len(grades) > 0 {
			var sum float64
			for _, g := range grades {
				sum += g.Score / g.MaxScore * 100
			}
			avg := sum / float64(len(grades))
			result.Average = &avg
		}

		return nil
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return result, nil
}

// DeleteGrade удаляет оценку, доступно только выставившему её преподавателю
func (s *Service) DeleteGrade(outerCtx context.Context, actor domain.Actor, gradeID int) error {
	const op = "service.DeleteGrade"
	requestID := logger.GetRequestID(outerCtx)

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int("actor_id", actor.ID).
		Int("grade_id", gradeID).
		Msg("deleting grade")

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		existing, err := tx.GradeRepo().GetByID(ctx, gradeID)
		if err != nil {
			return err
		}

		if existing.TeacherID != actor.ID {
			return domain.ErrNotGradeAuthor
		}

		return tx.GradeRepo().Delete(ctx, existing.ID)
	})
	if err != nil {
		return s.formatError(outerCtx, op, err)
	}

	return nil
}
