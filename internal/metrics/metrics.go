package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Review Request Metrics
var (
	// ReviewRequestsCreatedTotal - количество созданных заявок на ревью
	ReviewRequestsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "review_requests_created_total",
		Help: "Total number of review requests created",
	})

	// ReviewRequestsRespondedTotal - количество ответов преподавателей по решениям
	ReviewRequestsRespondedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "review_requests_responded_total",
		Help: "Total number of review request responses by decision",
	}, []string{"decision"})

	// ReviewRequestsCompletedTotal - количество завершённых ревью
	ReviewRequestsCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "review_requests_completed_total",
		Help: "Total number of review requests completed",
	})

	// ReviewRequestsCancelledTotal - количество отменённых студентами заявок
	ReviewRequestsCancelledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "review_requests_cancelled_total",
		Help: "Total number of review requests cancelled by students",
	})

	// ReviewRequestsByStatus - текущее количество заявок по статусам
	ReviewRequestsByStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "review_requests_by_status",
		Help: "Current number of review requests by status",
	}, []string{"status"})

	// TeacherPendingRequestsCount - очередь pending заявок по преподавателям
	TeacherPendingRequestsCount = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "teacher_pending_requests_count",
		Help: "Number of pending review requests per teacher",
	}, []string{"teacher_id"})
)

// Access Grant Metrics
var (
	// AccessGrantsCreatedTotal - количество выданных доступов уровня vista
	AccessGrantsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "access_grants_created_total",
		Help: "Total number of view access grants created on accept",
	})

	// AccessGrantFailuresTotal - количество сбоев best-effort выдачи доступа
	AccessGrantFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "access_grant_failures_total",
		Help: "Total number of failed view access grants (accept still committed)",
	})
)

// Comment and Grade Metrics
var (
	// CommentsCreatedTotal - количество созданных комментариев
	CommentsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "comments_created_total",
		Help: "Total number of review comments created",
	})

	// CommentsOpenCount - текущее количество нерешённых комментариев
	CommentsOpenCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "comments_open_count",
		Help: "Current number of unresolved comments",
	})

	// GradesUpsertedTotal - количество выставленных/обновлённых оценок
	GradesUpsertedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "grades_upserted_total",
		Help: "Total number of grades created or updated",
	})
)

// HTTP Metrics
var (
	// HTTPRequestsTotal - общее количество HTTP запросов
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration - время обработки запроса
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP request in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)

// Database Metrics
var (
	// DBTransactionDuration - время выполнения транзакций
	DBTransactionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "db_transaction_duration_seconds",
		Help:    "Duration of database transaction in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// DBTransactionTotal - количество транзакций
	DBTransactionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "db_transaction_total",
		Help: "Total number of database transactions",
	}, []string{"status"})

	// DBConnectionPoolActive - активные соединения
	DBConnectionPoolActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "db_connection_pool_active",
		Help: "Number of active database connections",
	})

	// DBConnectionPoolIdle - idle соединения
	DBConnectionPoolIdle = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "db_connection_pool_idle",
		Help: "Number of idle database connections",
	})
)

// Error Metrics
var (
	// DomainErrorsTotal - доменные ошибки по кодам
	DomainErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "domain_errors_total",
		Help: "Total number of domain errors",
	}, []string{"error_code"})
)
