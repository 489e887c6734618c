package metrics

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStats struct {
	stats sql.DBStats
}

func (f fakeStats) Stats() sql.DBStats {
	return f.stats
}

func TestDBStatsCollector_Collect(t *testing.T) {
	collector := NewDBStatsCollector("dbstats-test", fakeStats{stats: sql.DBStats{Idle: 3, InUse: 2}})

	collector.Collect()

	assert.Equal(t, float64(3), testutil.ToFloat64(DbConnectionsOpen.WithLabelValues("dbstats-test", "idle")))
	assert.Equal(t, float64(2), testutil.ToFloat64(DbConnectionsOpen.WithLabelValues("dbstats-test", "in_use")))
}

func TestDBStatsCollector_StartRejectsBadSchedule(t *testing.T) {
	collector := NewDBStatsCollector("dbstats-test", fakeStats{})

	err := collector.Start("not a schedule")

	assert.Error(t, err)
}

func TestDBStatsCollector_StartStop(t *testing.T) {
	collector := NewDBStatsCollector("dbstats-start", fakeStats{stats: sql.DBStats{Idle: 1}})

	require.NoError(t, collector.Start("@every 1h"))
	collector.Stop()

	assert.Equal(t, float64(1), testutil.ToFloat64(DbConnectionsOpen.WithLabelValues("dbstats-start", "idle")))
}

func TestGinPrometheusMiddleware_UsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(GinPrometheusMiddleware("middleware-test"))
	router.GET("/items/:id", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/1", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/2", nil))

	assert.Equal(t, float64(2), testutil.ToFloat64(HttpRequestsTotal.WithLabelValues("middleware-test", "GET", "/items/:id", "204")))
}

func TestClientTimer_Observe(t *testing.T) {
	NewClientTimer("client-test", "catalogue", "GET").Observe(http.StatusOK)
	NewClientTimer("client-test", "catalogue", "GET").Observe(0)

	assert.Equal(t, float64(1), testutil.ToFloat64(HttpClientRequestsTotal.WithLabelValues("client-test", "catalogue", "GET", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(HttpClientRequestsTotal.WithLabelValues("client-test", "catalogue", "GET", "error")))
}
