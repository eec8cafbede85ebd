package gorm

import (
	"context"
	"diagramadoria/internal/config"
	"diagramadoria/internal/metrics"
	"diagramadoria/internal/storage"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// txManager реализует storage.TxManager для GORM
type txManager struct {
	db *gorm.DB
}

// NewTxManager создаёт новый менеджер транзакций для GORM
func NewTxManager(envConf *config.Config) (storage.TxManager, error) {
	db, err := ConnectDB(envConf)
	if err != nil {
		return nil, err
	}

	// Получаем *sql.DB для мониторинга connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Запускаем коллектор метрик connection pool
	stopCh := make(chan struct{})
	go metrics.StartDBStatsCollector(sqlDB, 5*time.Second, stopCh)

	// Запускаем горутину для пересчёта доменных gauge-метрик из БД
	go func() {
		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()
		type statusRow struct {
			Status string
			Count  int
		}
		type teacherRow struct {
			TeacherID int
			Count     int
		}

		for {
			select {
			case <-ticker.C:
				// Пересчитываем заявки по статусам
				var statuses []statusRow
				err := db.Raw(`SELECT status, COUNT(*) as count FROM review_requests GROUP BY status`).Scan(&statuses).Error
				if err != nil {
					log.Error().Err(err).Msg("failed to query review request status counts")
					continue
				}

				metrics.ReviewRequestsByStatus.Reset()
				for _, s := range statuses {
					metrics.ReviewRequestsByStatus.WithLabelValues(s.Status).Set(float64(s.Count))
				}

				// Пересчитываем очередь pending заявок по преподавателям
				var teachers []teacherRow
				err = db.Raw(`SELECT teacher_id, COUNT(*) as count FROM review_requests WHERE status = 'pending' GROUP BY teacher_id`).Scan(&teachers).Error
				if err != nil {
					log.Error().Err(err).Msg("failed to query pending requests per teacher")
					continue
				}

				metrics.TeacherPendingRequestsCount.Reset()
				for _, t := range teachers {
					metrics.TeacherPendingRequestsCount.WithLabelValues(strconv.Itoa(t.TeacherID)).Set(float64(t.Count))
				}

				// Пересчитываем нерешённые комментарии
				var openComments int
				err = db.Raw(`SELECT COUNT(*) FROM comments WHERE status = 'pending'`).Scan(&openComments).Error
				if err != nil {
					log.Error().Err(err).Msg("failed to query open comment count")
				} else {
					metrics.CommentsOpenCount.Set(float64(openComments))
				}

			case <-stopCh:
				log.Info().Msg("stopping metrics reconciliation goroutine")
				return
			}
		}
	}()

	return &txManager{db: db}, nil
}

// Do выполняет функцию внутри транзации с автоматическим commit/rollback
func (tm *txManager) Do(ctx context.Context, fn func(ctx context.Context, tx storage.Tx) error) error {
	start := time.Now()

	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txWrapper := &transaction{
			db: tx,
		}

		err := fn(ctx, txWrapper)
		if err != nil {
			// GORM автоматически сделает ROLLBACK
			metrics.DBTransactionTotal.WithLabelValues("error").Inc()
			return err
		}

		// GORM автоматически сделает COMMIT
		metrics.DBTransactionTotal.WithLabelValues("success").Inc()
		return nil
	})

	// Записываем длительность транзакции
	metrics.DBTransactionDuration.Observe(time.Since(start).Seconds())

	return err
}

// transaction - обёртка над gorm.DB, реализует storage.Tx
type transaction struct {
	db *gorm.DB
}

// ReviewRequestRepo возвращает репозиторий заявок в рамках транзакции
func (t *transaction) ReviewRequestRepo() storage.ReviewRequestRepository {
	return NewReviewRequestRepository(t.db)
}

// UserRepo возвращает репозиторий пользователей в рамках транзакции
func (t *transaction) UserRepo() storage.UserRepository {
	return NewUserRepository(t.db)
}

// AccessRepo возвращает репозиторий доступов к проектам в рамках транзакции
func (t *transaction) AccessRepo() storage.ProjectAccessRepository {
	return NewProjectAccessRepository(t.db)
}

// PermissionRepo возвращает репозиторий каталога уровней доступа в рамках транзакции
func (t *transaction) PermissionRepo() storage.PermissionRepository {
	return NewPermissionRepository(t.db)
}

// CommentRepo возвращает репозиторий комментариев в рамках транзакции
func (t *transaction) CommentRepo() storage.CommentRepository {
	return NewCommentRepository(t.db)
}

// GradeRepo возвращает репозиторий оценок в рамках транзакции
func (t *transaction) GradeRepo() storage.GradeRepository {
	return NewGradeRepository(t.db)
}
