package handlers

import (
	"net/http"
	"strconv"

	"diagramadoria/internal/api"
	"diagramadoria/internal/api/middleware"
	"diagramadoria/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// actorFromContext достаёт аутентифицированного пользователя, положенного auth middleware
func actorFromContext(c *gin.Context) (domain.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		handleDomainError(c, domain.ErrUnauthenticated)
		return domain.Actor{}, false
	}
	return actor, true
}

// pathParamInt парсит числовой path параметр, отвечая 400 на мусор
func pathParamInt(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil || value <= 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Error: api.Error{
				Code:    api.ErrCodeInvalidRequest,
				Message: "invalid " + name + " parameter",
			},
		})
		return 0, false
	}
	return value, true
}

// CreateReviewRequest обрабатывает создание заявки студента на ревью проекта
func (h *Handler) CreateReviewRequest(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req struct {
		ProjectID    int     `json:"project_id" binding:"required"`
		TeacherEmail string  `json:"teacher_email" binding:"required,email"`
		Message      *string `json:"message"`
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
		Str("teacher_email", req.TeacherEmail).
		Msg("creating review request")

	input := &domain.CreateReviewRequestInput{
		ProjectID:    req.ProjectID,
		TeacherEmail: req.TeacherEmail,
		Message:      req.Message,
	}

	request, err := h.service.CreateReviewRequest(c.Request.Context(), actor, input)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	log.Info().
		Str("request_id", c.MustGet(middleware.RequestIDKey).(string)).
		Str("layer", "handler").
		Int("review_request_id", request.ID).
		Int("teacher_id", request.TeacherID).
		Msg("successfully created review request")

	c.JSON(http.StatusCreated, map[string]interface{}{
		"request": mapReviewRequestToAPI(request),
	})
}

// ListSentReviewRequests возвращает заявки, созданные текущим студентом
func (h *Handler) ListSentReviewRequests(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	requests, err := h.service.ListSentReviewRequests(c.Request.Context(), actor)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"requests": mapReviewRequestsToAPI(requests),
	})
}

// ListReceivedReviewRequests возвращает заявки, адресованные текущему преподавателю
func (h *Handler) ListReceivedReviewRequests(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	requests, err := h.service.ListReceivedReviewRequests(c.Request.Context(), actor)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"requests": mapReviewRequestsToAPI(requests),
	})
}

// RespondToReviewRequest обрабатывает решение преподавателя по заявке
func (h *Handler) RespondToReviewRequest(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	requestID, ok := pathParamInt(c, "requestId")
	if !ok {
		return
	}

	var req struct {
		Decision string `json:"decision" binding:"required"`
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
		Int("review_request_id", requestID).
		Str("decision", req.Decision).
		Msg("responding to review request")

	input := &domain.RespondReviewRequestInput{
		RequestID: requestID,
		Decision:  domain.ReviewStatus(req.Decision),
	}

	request, err := h.service.RespondToReviewRequest(c.Request.Context(), actor, input)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	log.Info().
		Str("request_id", c.MustGet(middleware.RequestIDKey).(string)).
		Str("layer", "handler").
		Int("review_request_id", request.ID).
		Str("status", string(request.Status)).
		Msg("successfully responded to review request")

	c.JSON(http.StatusOK, map[string]interface{}{
		"request": mapReviewRequestToAPI(request),
	})
}

// CompleteReviewRequest обрабатывает завершение принятого ревью преподавателем
func (h *Handler) CompleteReviewRequest(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	requestID, ok := pathParamInt(c, "requestId")
	if !ok {
		return
	}

	log.Info().
		Str("request_id", c.MustGet(middleware.RequestIDKey).(string)).
		Str("layer", "handler").
		Int("review_request_id", requestID).
		Msg("completing review request")

	request, err := h.service.CompleteReviewRequest(c.Request.Context(), actor, requestID)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	log.Info().
		Str("request_id", c.MustGet(middleware.RequestIDKey).(string)).
		Str("layer", "handler").
		Int("review_request_id", request.ID).
		Msg("successfully completed review request")

	c.JSON(http.StatusOK, map[string]interface{}{
		"request": mapReviewRequestToAPI(request),
	})
}

// CancelReviewRequest обрабатывает отмену pending заявки студентом
func (h *Handler) CancelReviewRequest(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	requestID, ok := pathParamInt(c, "requestId")
	if !ok {
		return
	}

	log.Info().
		Str("request_id", c.MustGet(middleware.RequestIDKey).(string)).
		Str("layer", "handler").
		Int("review_request_id", requestID).
		Msg("cancelling review request")

	if err := h.service.CancelReviewRequest(c.Request.Context(), actor, requestID); err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"message": "review request cancelled",
	})
}
