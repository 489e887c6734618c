package metrics

import (
	"database/sql"

	"github.com/robfig/cron/v3"
)

// StatsSource - источник статистики пула (*sql.DB)
type StatsSource interface {
	Stats() sql.DBStats
}

// DBStatsCollector периодически переносит статистику пула соединений в db_connections_open
type DBStatsCollector struct {
	cron    *cron.Cron
	service string
	db      StatsSource
}

func NewDBStatsCollector(service string, db StatsSource) *DBStatsCollector {
	return &DBStatsCollector{
		cron:    cron.New(),
		service: service,
		db:      db,
	}
}

// Start регистрирует задачу по расписанию (например "@every 15s") и сразу снимает первое значение
func (c *DBStatsCollector) Start(schedule string) error {
	if _, err := c.cron.AddFunc(schedule, c.Collect); err != nil {
		return err
	}

	c.Collect()
	c.cron.Start()
	return nil
}

func (c *DBStatsCollector) Collect() {
	stats := c.db.Stats()
	DbConnectionsOpen.WithLabelValues(c.service, "idle").Set(float64(stats.Idle))
	DbConnectionsOpen.WithLabelValues(c.service, "in_use").Set(float64(stats.InUse))
}

func (c *DBStatsCollector) Stop() {
	<-c.cron.Stop().Done()
}
