package service

import (
	"context"
	"errors"
	"github.com/rs/zerolog/log"

	"diagramadoria/internal/domain"
	"diagramadoria/internal/storage"
)

// Service реализует domain.ReviewService используя storage.TxManager
type Service struct {
	txmgr storage.TxManager
}

// Проверка что Service реализует интерфейс domain.ReviewService
var _ domain.ReviewService = (*Service)(nil)

// New создаёт новый Service с TxManager
func New(txmgr storage.TxManager) *Service {
	return &Service{
		txmgr: txmgr,
	}
}

// formatError преобразует ошибки storage слоя в доменные ошибки с правильными HTTP кодами
func (s *Service) formatError(ctx context.Context, op string, err error) error {
	switch {
	case domain.IsDomainError(err):
		return err
	case errors.Is(err, storage.ErrNotFound):
		return domain.ErrResourceNotFound
	case errors.Is(err, storage.ErrAlreadyExists):
		// Уникальный индекс на (project_id, teacher_id) сработал при
		// конкурентном создании заявки для одной пары
		if op == "service.CreateReviewRequest" {
			return domain.ErrPendingRequestExists
		}
		return domain.ErrInternal
	case errors.Is(err, storage.ErrConflict):
		// Конкурентный писатель успел изменить статус первым
		if op == "service.CompleteReviewRequest" {
			return domain.ErrInvalidTransition
		}
		return domain.ErrAlreadyResolved
	case errors.Is(err, ctx.Err()):
		return ctx.Err()
	default:
		log.Error().Err(err).Str("operation", op).Msg("operation failed")
		return domain.ErrInternal
	}
}
