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

// CreateComment создаёт комментарий преподавателя к проекту или элементу диаграммы
func (s *Service) CreateComment(outerCtx context.Context, actor domain.Actor, input *domain.CreateCommentInput) (*domain.Comment, error) {
	const op = "service.CreateComment"
	requestID := logger.GetRequestID(outerCtx)
	var comment *domain.Comment

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int("actor_id", actor.ID).
		Int("project_id", input.ProjectID).
		Msg("creating comment")

	// Комментарии в панели ревью оставляют только преподаватели
	if actor.Role != domain.RoleTeacher {
		return nil, domain.ErrTeachersOnly
	}

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		if err := requireProjectAccess(ctx, tx, actor.ID, input.ProjectID); err != nil {
			return err
		}

		kind := input.Kind
		if kind == "" {
			kind = "comment"
		}

		comment = &domain.Comment{
			ProjectID:   input.ProjectID,
			AuthorID:    actor.ID,
			ElementID:   input.ElementID,
			ElementType: input.ElementType,
			Content:     input.Content,
			Kind:        kind,
			Status:      domain.CommentStatusPending,
		}

		return tx.CommentRepo().Create(ctx, comment)
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	metrics.CommentsCreatedTotal.Inc()

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int("comment_id", comment.ID).
		Msg("successfully created comment")

	return comment, nil
}

// ListProjectComments возвращает все комментарии проекта (новые первыми)
func (s *Service) ListProjectComments(outerCtx context.Context, actor domain.Actor, projectID int) ([]domain.Comment, error) {
	const op = "service.ListProjectComments"
	var comments []domain.Comment

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		if err := requireProjectAccess(ctx, tx, actor.ID, projectID); err != nil {
			return err
		}

		var err error
		comments, err = tx.CommentRepo().ListByProject(ctx, projectID)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return comments, nil
}

// ListElementComments возвращает комментарии конкретного элемента диаграммы
func (s *Service) ListElementComments(outerCtx context.Context, actor domain.Actor, projectID int, elementID string) ([]domain.Comment, error) {
	const op = "service.ListElementComments"
	var comments []domain.Comment

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		if err := requireProjectAccess(ctx, tx, actor.ID, projectID); err != nil {
			return err
		}

		var err error
		comments, err = tx.CommentRepo().ListByElement(ctx, projectID, elementID)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return comments, nil
}

// UpdateCommentStatus меняет статус комментария. Разрешено коллаборатору
// проекта или автору комментария.
func (s *Service) UpdateCommentStatus(outerCtx context.Context, actor domain.Actor, input *domain.UpdateCommentStatusInput) (*domain.Comment, error) {
	const op = "service.UpdateCommentStatus"
	requestID := logger.GetRequestID(outerCtx)
	var comment *domain.Comment

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int("actor_id", actor.ID).
		Int("comment_id", input.CommentID).
		Str("status", string(input.Status)).
		Msg("updating comment status")

	if input.Status != domain.CommentStatusPending && input.Status != domain.CommentStatusResolved {
		return nil, domain.ErrInvalidInput
	}

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		existing, err := tx.CommentRepo().GetByID(ctx, input.CommentID)
		if err != nil {
			return err
		}

		if existing.AuthorID != actor.ID {
			_, err := tx.AccessRepo().GetAccess(ctx, actor.ID, existing.ProjectID)
			if errors.Is(err, storage.ErrNotFound) {
				return domain.ErrNoProjectAccess
			}
			if err != nil {
				return err
			}
		}

		comment, err = tx.CommentRepo().UpdateStatus(ctx, existing.ID, input.Status)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return comment, nil
}

// DeleteComment удаляет комментарий, доступно только его автору
func (s *Service) DeleteComment(outerCtx context.Context, actor domain.Actor, commentID int) error {
	const op = "service.DeleteComment"
	requestID := logger.GetRequestID(outerCtx)

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int("actor_id", actor.ID).
		Int("comment_id", commentID).
		Msg("deleting comment")

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		existing, err := tx.CommentRepo().GetByID(ctx, commentID)
		if err != nil {
			return err
		}

		if existing.AuthorID != actor.ID {
			return domain.ErrNotCommentAuthor
		}

		return tx.CommentRepo().Delete(ctx, existing.ID)
	})
	if err != nil {
		return s.formatError(outerCtx, op, err)
	}

	return nil
}

// requireProjectAccess проверяет наличие записи доступа вызывающего к проекту
func requireProjectAccess(ctx context.Context, tx storage.Tx, userID, projectID int) error {
	_, err := tx.AccessRepo().GetAccess(ctx, userID, projectID)
	if errors.Is(err, storage.ErrNotFound) {
		return domain.ErrNoProjectAccess
	}
	return err
}
