package gorm

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"diagramadoria/internal/domain"
	"diagramadoria/internal/logger"
	"diagramadoria/internal/storage"
)

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository создаёт новый репозиторий комментариев
func NewCommentRepository(db *gorm.DB) storage.CommentRepository {
	return &commentRepository{db: db}
}

// Create создаёт комментарий
func (r *commentRepository) Create(ctx context.Context, c *domain.Comment) error {
	requestID := logger.GetRequestID(ctx)

	log.Info().
		Str("request_id", requestID).
		Str("layer", "storage").
		Int("project_id", c.ProjectID).
		Int("author_id", c.AuthorID).
		Msg("creating comment in database")

	dbComment := &Comment{
		ProjectID:   c.ProjectID,
		AuthorID:    c.AuthorID,
		ElementID:   c.ElementID,
		ElementType: c.ElementType,
		Content:     c.Content,
		Kind:        c.Kind,
		Status:      string(c.Status),
	}

	result := r.db.WithContext(ctx).Clauses(clause.Returning{}).Create(dbComment)
	if result.Error != nil {
		log.Error().
			Err(result.Error).
			Str("request_id", requestID).
			Str("layer", "storage").
			Int("project_id", c.ProjectID).
			Msg("error creating comment")
		return result.Error
	}

	c.ID = dbComment.ID
	c.CreatedAt = dbComment.CreatedAt

	return r.hydrate(ctx, c)
}

// GetByID возвращает комментарий по ID
func (r *commentRepository) GetByID(ctx context.Context, id int) (*domain.Comment, error) {
	requestID := logger.GetRequestID(ctx)

	var dbComment Comment
	result := r.db.WithContext(ctx).First(&dbComment, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			log.Warn().
				Str("request_id", requestID).
				Str("layer", "storage").
				Int("comment_id", id).
				Msg("comment not found")
			return nil, storage.ErrNotFound
		}
		log.Error().
			Err(result.Error).
			Str("request_id", requestID).
			Str("layer", "storage").
			Int("comment_id", id).
			Msg("error fetching comment")
		return nil, result.Error
	}

	c := toDomainComment(&dbComment)
	if err := r.hydrate(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListByProject возвращает комментарии проекта, новые первыми
func (r *commentRepository) ListByProject(ctx context.Context, projectID int) ([]domain.Comment, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("project_id = ?", projectID))
}

// ListByElement возвращает комментарии конкретного элемента диаграммы
func (r *commentRepository) ListByElement(ctx context.Context, projectID int, elementID string) ([]domain.Comment, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("project_id = ? AND element_id = ?", projectID, elementID))
}

func (r *commentRepository) list(ctx context.Context, query *gorm.DB) ([]domain.Comment, error) {
	requestID := logger.GetRequestID(ctx)

	var dbComments []Comment
	result := query.Order("created_at DESC").Find(&dbComments)
	if result.Error != nil {
		log.Error().
			Err(result.Error).
			Str("request_id", requestID).
			Str("layer", "storage").
			Msg("error listing comments")
		return nil, result.Error
	}

	comments := make([]domain.Comment, len(dbComments))
	for i := range dbComments {
		c := toDomainComment(&dbComments[i])
		if err := r.hydrate(ctx, c); err != nil {
			return nil, err
		}
		comments[i] = *c
	}

	return comments, nil
}

// UpdateStatus меняет статус комментария; resolved_at выставляется только
// при переходе в resolved и сбрасывается при обратном переходе
func (r *commentRepository) UpdateStatus(ctx context.Context, id int, status domain.CommentStatus) (*domain.Comment, error) {
	requestID := logger.GetRequestID(ctx)

	log.Info().
		Str("request_id", requestID).
		Str("layer", "storage").
		Int("comment_id", id).
		Str("status", string(status)).
		Msg("updating comment status")

	updates := map[string]interface{}{"status": string(status)}
	if status == domain.CommentStatusResolved {
		updates["resolved_at"] = time.Now().UTC()
	} else {
		updates["resolved_at"] = nil
	}

	result := r.db.WithContext(ctx).
		Model(&Comment{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		log.Error().
			Err(result.Error).
			Str("request_id", requestID).
			Str("layer", "storage").
			Int("comment_id", id).
			Msg("error updating comment status")
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, storage.ErrNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete удаляет комментарий
func (r *commentRepository) Delete(ctx context.Context, id int) error {
	requestID := logger.GetRequestID(ctx)

	result := r.db.WithContext(ctx).Delete(&Comment{}, "id = ?", id)
	if result.Error != nil {
		log.Error().
			Err(result.Error).
			Str("request_id", requestID).
			Str("layer", "storage").
			Int("comment_id", id).
			Msg("error deleting comment")
		return result.Error
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "storage").
		Int("comment_id", id).
		Msg("successfully deleted comment")

	return nil
}

// hydrate подтягивает денормализованные данные автора
func (r *commentRepository) hydrate(ctx context.Context, c *domain.Comment) error {
	var author User
	if err := r.db.WithContext(ctx).First(&author, "id = ?", c.AuthorID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	c.Author = domain.UserRef{ID: author.ID, Name: author.Name, Email: author.Email, Role: domain.Role(author.Role)}
	return nil
}

func toDomainComment(dbComment *Comment) *domain.Comment {
	return &domain.Comment{
		ID:          dbComment.ID,
		ProjectID:   dbComment.ProjectID,
		AuthorID:    dbComment.AuthorID,
		ElementID:   dbComment.ElementID,
		ElementType: dbComment.ElementType,
		Content:     dbComment.Content,
		Kind:        dbComment.Kind,
		Status:      domain.CommentStatus(dbComment.Status),
		CreatedAt:   dbComment.CreatedAt,
		ResolvedAt:  dbComment.ResolvedAt,
	}
}
