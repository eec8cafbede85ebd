package metrics

import (
	"database/sql"
	"time"
)

// StartDBStatsCollector - запускает периодический сбор статистики пула соединений
func StartDBStatsCollector(db *sql.DB, interval time.Duration, stopCh <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				stats := db.Stats()
				DBConnectionPoolActive.Set(float64(stats.InUse))
				DBConnectionPoolIdle.Set(float64(stats.Idle))
			case <-stopCh:
				return
			}
		}
	}()
}
