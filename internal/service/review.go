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

// CreateReviewRequest создаёт заявку студента на ревью проекта указанным преподавателем
func (s *Service) CreateReviewRequest(outerCtx context.Context, actor domain.Actor, input *domain.CreateReviewRequestInput) (*domain.ReviewRequest, error) {
	const op = "service.CreateReviewRequest"
	requestID := logger.GetRequestID(outerCtx)
	var req *domain.ReviewRequest

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int("actor_id", actor.ID).
		Int("project_id", input.ProjectID).
		Str("teacher_email", input.TeacherEmail).
		Msg("creating review request")

	if actor.Role != domain.RoleStudent {
		return nil, domain.ErrStudentsOnly
	}

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		// Заявку может создать только создатель проекта
		access, err := tx.AccessRepo().GetAccess(ctx, actor.ID, input.ProjectID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return domain.ErrNotProjectOwner
			}
			return err
		}
		if access.Permission != domain.PermissionCreator {
			return domain.ErrNotProjectOwner
		}

		// Преподаватель ищется по email и должен иметь роль docente
		teacher, err := tx.UserRepo().GetByEmail(ctx, input.TeacherEmail)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return domain.ErrResourceNotFound
			}
			return err
		}
		if teacher.Role != domain.RoleTeacher {
			return domain.ErrTargetNotTeacher
		}

		// Для пары (проект, преподаватель) существует не более одной заявки:
		// pending и accepted всё ещё активны и конфликтуют, терминальные
		// rejected/completed удаляются и создаётся новая
		existing, err := tx.ReviewRequestRepo().FindByProjectAndTeacher(ctx, input.ProjectID, teacher.ID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return err
		}
		if existing != nil {
			if !domain.IsTerminal(existing.Status) {
				return domain.ErrPendingRequestExists
			}
			if err := tx.ReviewRequestRepo().Delete(ctx, existing.ID); err != nil {
				return err
			}
			log.Info().
				Str("request_id", requestID).
				Str("layer", "service").
				Int("review_request_id", existing.ID).
				Str("old_status", string(existing.Status)).
				Msg("replacing terminal review request for pair")
		}

		req = &domain.ReviewRequest{
			ProjectID: input.ProjectID,
			StudentID: actor.ID,
			TeacherID: teacher.ID,
			Message:   input.Message,
			Status:    domain.ReviewStatusPending,
		}

		return tx.ReviewRequestRepo().Create(ctx, req)
	})

	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	metrics.ReviewRequestsCreatedTotal.Inc()

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int("review_request_id", req.ID).
		Msg("successfully created review request")

	return req, nil
}

// ListSentReviewRequests возвращает заявки, отправленные студентом (новые первыми)
func (s *Service) ListSentReviewRequests(outerCtx context.Context, actor domain.Actor) ([]domain.ReviewRequest, error) {
	const op = "service.ListSentReviewRequests"
	var reqs []domain.ReviewRequest

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		var err error
		reqs, err = tx.ReviewRequestRepo().ListByStudent(ctx, actor.ID)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return reqs, nil
}

// ListReceivedReviewRequests возвращает заявки, адресованные преподавателю (новые первыми)
func (s *Service) ListReceivedReviewRequests(outerCtx context.Context, actor domain.Actor) ([]domain.ReviewRequest, error) {
	const op = "service.ListReceivedReviewRequests"
	var reqs []domain.ReviewRequest

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		var err error
		reqs, err = tx.ReviewRequestRepo().ListByTeacher(ctx, actor.ID)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return reqs, nil
}

// RespondToReviewRequest принимает или отклоняет pending заявку от имени
// адресованного преподавателя. Выдача доступа на accept выполняется вне
// транзакции перехода: её сбой логируется, но не откатывает accept.
func (s *Service) RespondToReviewRequest(outerCtx context.Context, actor domain.Actor, input *domain.RespondReviewRequestInput) (*domain.ReviewRequest, error) {
	const op = "service.RespondToReviewRequest"
	requestID := logger.GetRequestID(outerCtx)
	var req *domain.ReviewRequest

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int("actor_id", actor.ID).
		Int("review_request_id", input.RequestID).
		Str("decision", string(input.Decision)).
		Msg("responding to review request")

	var action domain.ReviewAction
	switch input.Decision {
	case domain.ReviewStatusAccepted:
		action = domain.ReviewActionAccept
	case domain.ReviewStatusRejected:
		action = domain.ReviewActionReject
	default:
		return nil, domain.ErrInvalidInput
	}

	if actor.Role != domain.RoleTeacher {
		return nil, domain.ErrTeachersOnly
	}

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		existing, err := tx.ReviewRequestRepo().GetByID(ctx, input.RequestID)
		if err != nil {
			return err
		}

		if existing.TeacherID != actor.ID {
			return domain.ErrNotRequestTeacher
		}

		next, err := domain.NextStatus(existing.Status, action)
		if err != nil {
			return err
		}

		req, err = tx.ReviewRequestRepo().Transition(ctx, existing.ID, existing.Status, next)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	metrics.ReviewRequestsRespondedTotal.WithLabelValues(string(input.Decision)).Inc()

	// Best-effort выдача доступа уровня "vista", чтобы преподаватель мог
	// открыть проект и комментировать
	if input.Decision == domain.ReviewStatusAccepted {
		s.grantViewAccess(outerCtx, req.TeacherID, req.ProjectID)
	}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int("review_request_id", req.ID).
		Str("status", string(req.Status)).
		Msg("successfully responded to review request")

	return req, nil
}

// grantViewAccess выдаёт преподавателю доступ уровня "vista" к проекту,
// если записи доступа ещё нет. Любая ошибка здесь некритична для accept:
// она логируется и проглатывается.
func (s *Service) grantViewAccess(outerCtx context.Context, teacherID, projectID int) {
	requestID := logger.GetRequestID(outerCtx)

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		perm, err := tx.PermissionRepo().FindByName(ctx, domain.PermissionView)
		if errors.Is(err, storage.ErrNotFound) {
			perm, err = tx.PermissionRepo().FindViewLevel(ctx)
		}
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				// В каталоге нет уровня "вид" - пропускаем выдачу,
				// accept уже состоялся
				log.Warn().
					Str("request_id", requestID).
					Str("layer", "service").
					Int("project_id", projectID).
					Msg("no view permission level in catalog, skipping access grant")
				return nil
			}
			return err
		}

		_, err = tx.AccessRepo().GetAccess(ctx, teacherID, projectID)
		if err == nil {
			log.Info().
				Str("request_id", requestID).
				Str("layer", "service").
				Int("teacher_id", teacherID).
				Int("project_id", projectID).
				Msg("teacher already has project access, grant not needed")
			return nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		if err := tx.AccessRepo().CreateAccess(ctx, teacherID, projectID, perm.ID); err != nil {
			if errors.Is(err, storage.ErrAlreadyExists) {
				return nil
			}
			return err
		}

		metrics.AccessGrantsCreatedTotal.Inc()

		log.Info().
			Str("request_id", requestID).
			Str("layer", "service").
			Int("teacher_id", teacherID).
			Int("project_id", projectID).
			Str("permission", perm.Name).
			Msg("granted view access to teacher")

		return nil
	})
	if err != nil {
		metrics.AccessGrantFailuresTotal.Inc()
		log.Error().
			Err(err).
			Str("request_id", requestID).
			Str("layer", "service").
			Int("teacher_id", teacherID).
			Int("project_id", projectID).
			Msg("view access grant failed, accept transition is already committed")
	}
}

// CompleteReviewRequest переводит accepted заявку в completed
func (s *Service) CompleteReviewRequest(outerCtx context.Context, actor domain.Actor, reqID int) (*domain.ReviewRequest, error) {
	const op = "service.CompleteReviewRequest"
	requestID := logger.GetRequestID(outerCtx)
	var req *domain.ReviewRequest

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int("actor_id", actor.ID).
		Int("review_request_id", reqID).
		Msg("completing review request")

	if actor.Role != domain.RoleTeacher {
		return nil, domain.ErrTeachersOnly
	}

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		existing, err := tx.ReviewRequestRepo().GetByID(ctx, reqID)
		if err != nil {
			return err
		}

		if existing.TeacherID != actor.ID {
			return domain.ErrNotRequestTeacher
		}

		next, err := domain.NextStatus(existing.Status, domain.ReviewActionComplete)
		if err != nil {
			return err
		}

		req, err = tx.ReviewRequestRepo().Transition(ctx, existing.ID, existing.Status, next)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	metrics.ReviewRequestsCompletedTotal.Inc()

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int("review_request_id", req.ID).
		Msg("successfully completed review request")

	return req, nil
}

// CancelReviewRequest удаляет pending заявку по инициативе создавшего её студента
func (s *Service) CancelReviewRequest(outerCtx context.Context, actor domain.Actor, reqID int) error {
	const op = "service.CancelReviewRequest"
	requestID := logger.GetRequestID(outerCtx)

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int("actor_id", actor.ID).
		Int("review_request_id", reqID).
		Msg("cancelling review request")

	if actor.Role != domain.RoleStudent {
		return domain.ErrStudentsOnly
	}

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		existing, err := tx.ReviewRequestRepo().GetByID(ctx, reqID)
		if err != nil {
			return err
		}

		if existing.StudentID != actor.ID {
			return domain.ErrNotRequestStudent
		}

		// Отменить можно только не отвеченную заявку
		if existing.Status != domain.ReviewStatusPending {
			return domain.ErrInvalidTransition
		}

		return tx.ReviewRequestRepo().Delete(ctx, existing.ID)
	})
	if err != nil {
		return s.formatError(outerCtx, op, err)
	}

	metrics.ReviewRequestsCancelledTotal.Inc()

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int("review_request_id", reqID).
		Msg("successfully cancelled review request")

	return nil
}
