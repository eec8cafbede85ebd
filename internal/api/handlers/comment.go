package handlers

import (
	"net/http"

	"diagramadoria/internal/api"
	"diagramadoria/internal/api/middleware"
	"diagramadoria/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// CreateComment обрабатывает создание комментария преподавателя к проекту
func (h *Handler) CreateComment(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req struct {
		ProjectID   int     `json:"project_id" binding:"required"`
		ElementID   *string `json:"element_id"`
		ElementType *string `json:"element_type"`
		Content     string  `json:"content" binding:"required"`
		Kind        string  `json:"kind"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error().
			Err(err).
			Str("request_id", c.MustGet(middleware.RequestIDKey).(string)).
			Str("layer", "handler").
			Msg("failed to parse request")

		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Error: api.Error{
				Code:    api.ErrCodeInvalidRequest,
				Message: "Failed to parse request: " + err.Error(),
			},
		})
		return
	}

	log.Info().
		Str("request_id", c.MustGet(middleware.RequestIDKey).(string)).
		Str("layer", "handler").
		Int("project_id", req.ProjectID).
		Msg("creating comment")

	input := &domain.CreateCommentInput{
		ProjectID:   req.ProjectID,
		ElementID:   req.ElementID,
		ElementType: req.ElementType,
		Content:     req.Content,
		Kind:        req.Kind,
	}

	comment, err := h.service.CreateComment(c.Request.Context(), actor, input)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	log.Info().
		Str("request_id", c.MustGet(middleware.RequestIDKey).(string)).
		Str("layer", "handler").
		Int("comment_id", comment.ID).
		Int("project_id", comment.ProjectID).
		Msg("successfully created comment")

	c.JSON(http.StatusCreated, map[string]interface{}{
		"comment": mapCommentToAPI(comment),
	})
}

// ListProjectComments возвращает все комментарии проекта
func (h *Handler) ListProjectComments(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	projectID, ok := pathParamInt(c, "projectId")
	if !ok {
		return
	}

	comments, err := h.service.ListProjectComments(c.Request.Context(), actor, projectID)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"comments": mapCommentsToAPI(comments),
	})
}

// ListElementComments возвращает комментарии конкретного элемента диаграммы
func (h *Handler) ListElementComments(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	projectID, ok := pathParamInt(c, "projectId")
	if !ok {
		return
	}

	elementID := c.Param("elementId")
	if elementID == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Error: api.Error{
				Code:    api.ErrCodeInvalidRequest,
				Message: "invalid elementId parameter",
			},
		})
		return
	}

	comments, err := h.service.ListElementComments(c.Request.Context(), actor, projectID, elementID)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"comments": mapCommentsToAPI(comments),
	})
}

// UpdateCommentStatus обрабатывает смену статуса комментария
func (h *Handler) UpdateCommentStatus(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	commentID, ok := pathParamInt(c, "commentId")
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error().
			Err(err).
			Str("request_id", c.MustGet(middleware.RequestIDKey).(string)).
			Str("layer", "handler").
			Msg("failed to parse request")

		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Error: api.Error{
				Code:    api.ErrCodeInvalidRequest,
				Message: "Failed to parse request: " + err.Error(),
			},
		})
		return
	}

	input := &domain.UpdateCommentStatusInput{
		CommentID: commentID,
		Status:    domain.CommentStatus(req.Status),
	}

	comment, err := h.service.UpdateCommentStatus(c.Request.Context(), actor, input)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	log.Info().
		Str("request_id", c.MustGet(middleware.RequestIDKey).(string)).
		Str("layer", "handler").
		Int("comment_id", comment.ID).
		Str("status", string(comment.Status)).
		Msg("successfully updated comment status")

	c.JSON(http.StatusOK, map[string]interface{}{
		"comment": mapCommentToAPI(comment),
	})
}

// DeleteComment обрабатывает удаление комментария его автором
func (h *Handler) DeleteComment(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	commentID, ok := pathParamInt(c, "commentId")
	if !ok {
		return
	}

	if err := h.service.DeleteComment(c.Request.Context(), actor, commentID); err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"message": "comment deleted",
	})
}
