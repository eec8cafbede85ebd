package handlers

import (
	"net/http"

	"diagramadoria/internal/api"
	"diagramadoria/internal/api/middleware"
	"diagramadoria/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// UpsertGrade обрабатывает выставление или обновление оценки проекта
func (h *Handler) UpsertGrade(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req struct {
		ProjectID int     `json:"project_id" binding:"required"`
		Score     float64 `json:"score" binding:"required"`
		MaxScore  float64 `json:"max_score"`
		Comment   *string `json:"comment"`
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
		Float64("score", req.Score).
		Msg("upserting grade")

	input := &domain.UpsertGradeInput{
		ProjectID: req.ProjectID,
		Score:     req.Score,
		MaxScore:  req.MaxScore,
		Comment:   req.Comment,
	}

	grade, err := h.service.UpsertGrade(c.Request.Context(), actor, input)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	log.Info().
		Str("request_id", c.MustGet(middleware.RequestIDKey).(string)).
		Str("layer", "handler").
		Int("grade_id", grade.ID).
		Int("project_id", grade.ProjectID).
		Msg("successfully upserted grade")

	c.JSON(http.StatusOK, map[string]interface{}{
		"grade": mapGradeToAPI(grade),
	})
}

// ListProjectGrades возвращает оценки проекта со средним баллом
func (h *Handler) ListProjectGrades(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	projectID, ok := pathParamInt(c, "projectId")
	if !ok {
		return
	}

	grades, err := h.service.ListProjectGrades(c.Request.Context(), actor, projectID)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapProjectGradesToAPI(grades))
}

// DeleteGrade обрабатывает удаление оценки её автором
func (h *Handler) DeleteGrade(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	gradeID, ok := pathParamInt(c, "gradeId")
	if !ok {
		return
	}

	if err := h.service.DeleteGrade(c.Request.Context(), actor, gradeID); err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"message": "grade deleted",
	})
}
