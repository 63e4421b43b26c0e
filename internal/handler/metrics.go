package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/BUka228/ProgressQuestWeb/dao/model"
	"github.com/BUka228/ProgressQuestWeb/internal/resputil"
)

type MetricsMgr struct {
	name string
	db   *gorm.DB
}

func NewMetricsMgr(conf *RegisterConfig) Manager {
	return &MetricsMgr{
		name: "metrics",
		db:   conf.DB,
	}
}

func (mgr *MetricsMgr) GetName() string { return mgr.name }

func (mgr *MetricsMgr) RegisterPublic(metrics *gin.RouterGroup) {
	metrics.GET("", mgr.GetMetrics)
}

func (mgr *MetricsMgr) RegisterProtected(_ *gin.RouterGroup) {}

func (mgr *MetricsMgr) RegisterAdmin(_ *gin.RouterGroup) {}

var registry *prometheus.Registry

var promHTTPHandler http.Handler

// Counters fed by the task handlers as rewards are credited.
var (
	completedTasksCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "completed_tasks_total",
		Help: "Total number of task completions",
	})
	pomodoroSessionsCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pomodoro_sessions_total",
		Help: "Total number of recorded pomodoro sessions",
	})
	xpGrantedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "xp_granted_total",
		Help: "Total XP credited to users",
	})
)

// Gauges recomputed from the database on every scrape.
var (
	tasksByStatusGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "tasks_by_status",
		Help: "Number of tasks per status",
	}, []string{"status"})
	registeredUsersGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "registered_users_total",
		Help: "Total number of registered users",
	})
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewMetricsMgr)
	registry = prometheus.NewRegistry()
	promHTTPHandler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
	registry.MustRegister(completedTasksCounter)
	registry.MustRegister(pomodoroSessionsCounter)
	registry.MustRegister(xpGrantedCounter)
	registry.MustRegister(tasksByStatusGauge)
	registry.MustRegister(registeredUsersGauge)
}

// GetMetrics godoc
//
//	@Summary		Expose the service metrics
//	@Description	Refreshes the database-derived gauges and serves the Prometheus text format
//	@Tags			Metrics
//	@Produce		plain
//	@Success		200	{string}	string	"metrics in Prometheus exposition format"
//	@Router			/metrics [get]
func (mgr *MetricsMgr) GetMetrics(c *gin.Context) {
	type statusCount struct {
		Status model.TaskStatus
		Count  int64
	}
	var counts []statusCount
	err := mgr.db.WithContext(c).Model(&model.Task{}).
		Select("status", "count(*) as count").
		Group("status").
		Scan(&counts).Error
	if err != nil {
		resputil.Error(c, err.Error(), resputil.NotSpecified)
		return
	}
	tasksByStatusGauge.Reset()
	for _, sc := range counts {
		tasksByStatusGauge.WithLabelValues(string(sc.Status)).Set(float64(sc.Count))
	}

	var users int64
	if err := mgr.db.WithContext(c).Model(&model.User{}).Count(&users).Error; err != nil {
		resputil.Error(c, err.Error(), resputil.NotSpecified)
		return
	}
	registeredUsersGauge.Set(float64(users))

	promHTTPHandler.ServeHTTP(c.Writer, c.Request)
}
