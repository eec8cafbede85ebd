package handlers

import (
	"diagramadoria/internal/domain"
)

// mapUserRefToAPI конвертирует domain.UserRef в API response
func mapUserRefToAPI(user domain.UserRef) map[string]interface{} {
	return map[string]interface{}{
		"user_id": user.ID,
		"name":    user.Name,
		"email":   user.Email,
		"role":    string(user.Role),
	}
}

// mapProjectRefToAPI конвертирует domain.ProjectRef в API response
func mapProjectRefToAPI(project domain.ProjectRef) map[string]interface{} {
	return map[string]interface{}{
		"project_id": project.ID,
		"title":      project.Title,
		"started_at": project.StartedAt,
	}
}

// mapReviewRequestToAPI конвертирует domain.ReviewRequest в API response
func mapReviewRequestToAPI(request *domain.ReviewRequest) map[string]interface{} {
	return map[string]interface{}{
		"request_id":   request.ID,
		"message":      request.Message,
		"status":       string(request.Status),
		"requested_at": request.RequestedAt,
		"responded_at": request.RespondedAt,
		"completed_at": request.CompletedAt,
		"student":      mapUserRefToAPI(request.Student),
		"teacher":      mapUserRefToAPI(request.Teacher),
		"project":      mapProjectRefToAPI(request.Project),
	}
}

// mapReviewRequestsToAPI конвертирует список заявок в API response
func mapReviewRequestsToAPI(requests []domain.ReviewRequest) []map[string]interface{} {
	result := make([]map[string]interface{}, len(requests))
	for i := range requests {
		result[i] = mapReviewRequestToAPI(&requests[i])
	}
	return result
}

// mapCommentToAPI конвертирует domain.Comment в API response
func mapCommentToAPI(comment *domain.Comment) map[string]interface{} {
	return map[string]interface{}{
		"comment_id":   comment.ID,
		"project_id":   comment.ProjectID,
		"element_id":   comment.ElementID,
		"element_type": comment.ElementType,
		"content":      comment.Content,
		"kind":         comment.Kind,
		"status":       string(comment.Status),
		"created_at":   comment.CreatedAt,
		"resolved_at":  comment.ResolvedAt,
		"author":       mapUserRefToAPI(comment.Author),
	}
}

// mapCommentsToAPI конвертирует список комментариев в API response
func mapCommentsToAPI(comments []domain.Comment) []map[string]interface{} {
	result := make([]map[string]interface{}, len(comments))
	for i := range comments {
		result[i] = mapCommentToAPI(&comments[i])
	}
	return result
}

// mapGradeToAPI конвертирует domain.Grade в API response
func mapGradeToAPI(grade *domain.Grade) map[string]interface{} {
	return map[string]interface{}{
		"grade_id":   grade.ID,
		"project_id": grade.ProjectID,
		"score":      grade.Score,
		"max_score":  grade.MaxScore,
		"comment":    grade.Comment,
		"graded_at":  grade.GradedAt,
		"updated_at": grade.UpdatedAt,
		"teacher":    mapUserRefToAPI(grade.Teacher),
	}
}

// mapProjectGradesToAPI конвертирует оценки проекта со средним баллом в API response
func mapProjectGradesToAPI(grades *domain.ProjectGrades) map[string]interface{} {
	items := make([]map[string]interface{}, len(grades.Grades))
	for i := range grades.Grades {
		items[i] = mapGradeToAPI(&grades.Grades[i])
	}

	return map[string]interface{}{
		"grades":  items,
		"average": grades.Average,
	}
}
