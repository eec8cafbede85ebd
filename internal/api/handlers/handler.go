package handlers

import (
	"diagramadoria/internal/api/middleware"
	"diagramadoria/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ReviewPathRoute       = "/reviews"
	MyRequestsRoute       = "/my-requests"
	ReceivedRequestsRoute = "/received"
	RespondRequestRoute   = "/:requestId/respond"
	CompleteRequestRoute  = "/:requestId/complete"
	CancelRequestRoute    = "/:requestId"

	CommentPathRoute     = "/comments"
	ProjectCommentsRoute = "/project/:projectId"
	ElementCommentsRoute = "/project/:projectId/element/:elementId"
	CommentStatusRoute   = "/:commentId/status"
	DeleteCommentRoute   = "/:commentId"

	GradePathRoute     = "/grades"
	ProjectGradesRoute = "/project/:projectId"
	DeleteGradeRoute   = "/:gradeId"

	MetricsRoute = "/metrics"
)

type Handler struct {
	service   domain.ReviewService
	jwtSecret string
}

func NewHandler(service domain.ReviewService, jwtSecret string) *Handler {
	return &Handler{service: service, jwtSecret: jwtSecret}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(
		middleware.LoggerMiddleware(),
		middleware.RecoveryMiddleware(),
		middleware.CORSMiddleware(),
		middleware.MetricsMiddleware(),
	)

	r.GET(MetricsRoute, gin.WrapH(promhttp.Handler()))

	auth := middleware.AuthMiddleware(h.jwtSecret)

	reviewGroup := r.Group(ReviewPathRoute, auth)
	{
		reviewGroup.POST("", h.CreateReviewRequest)
		reviewGroup.GET(MyRequestsRoute, h.ListSentReviewRequests)
		reviewGroup.GET(ReceivedRequestsRoute, h.ListReceivedReviewRequests)
		reviewGroup.PUT(RespondRequestRoute, h.RespondToReviewRequest)
		reviewGroup.PUT(CompleteRequestRoute, h.CompleteReviewRequest)
		reviewGroup.DELETE(CancelRequestRoute, h.CancelReviewRequest)
	}

	commentGroup := r.Group(CommentPathRoute, auth)
	{
		commentGroup.POST("", h.CreateComment)
		commentGroup.GET(ProjectCommentsRoute, h.ListProjectComments)
		commentGroup.GET(ElementCommentsRoute, h.ListElementComments)
		commentGroup.PUT(CommentStatusRoute, h.UpdateCommentStatus)
		commentGroup.DELETE(DeleteCommentRoute, h.DeleteComment)
	}

	gradeGroup := r.Group(GradePathRoute, auth)
	{
		gradeGroup.POST("", h.UpsertGrade)
		gradeGroup.GET(ProjectGradesRoute, h.ListProjectGrades)
		gradeGroup.DELETE(DeleteGradeRoute, h.DeleteGrade)
	}

	return r
}
