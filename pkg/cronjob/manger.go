package cronjob

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/BUka228/ProgressQuestWeb/pkg/alert"
	"github.com/BUka228/ProgressQuestWeb/pkg/cleaner"
	"github.com/BUka228/ProgressQuestWeb/pkg/config"
	"github.com/BUka228/ProgressQuestWeb/pkg/logutils"
)

type CronJobManager struct {
	DB           *gorm.DB
	sweepClients *cleaner.Clients
	cron         *cron.Cron
	cronMutex    sync.RWMutex
}

func NewCronJobManager(db *gorm.DB, alerter alert.Interface) *CronJobManager {
	return &CronJobManager{
		DB: db,
		sweepClients: &cleaner.Clients{
			DB:      db,
			Alerter: alerter,
		},
		cron: cron.New(cron.WithLocation(time.Local)),
	}
}

// AddCronJob schedules one sweep by name with the given cron spec.
func (cm *CronJobManager) AddCronJob(jobName, jobSpec string) (cron.EntryID, error) {
	f, err := cleaner.GetWrapSweepFunc(jobName, cm.sweepClients)
	if err != nil {
		logutils.Log.Error(err)
		return -1, err
	}

	entryID, err := cm.cron.AddFunc(jobSpec, f)
	if err != nil {
		logutils.Log.Error(err)
		return -1, err
	}
	return entryID, nil
}

// Start registers the configured sweeps and starts the scheduler. An empty
// spec disables the corresponding sweep.
func (cm *CronJobManager) Start() {
	cm.cronMutex.Lock()
	defer cm.cronMutex.Unlock()

	maintenance := config.GetConfig().Maintenance
	jobs := map[string]string{
		cleaner.SweepDanglingMembershipJob: maintenance.MembershipSweepSpec,
		cleaner.SweepStreakJob:             maintenance.StreakSweepSpec,
	}

	for name, spec := range jobs {
		if spec == "" {
			logutils.Log.Infof("CronJobManager: sweep %s disabled", name)
			continue
		}
		if _, err := cm.AddCronJob(name, spec); err != nil {
			logutils.Log.Errorf("CronJobManager: failed to add %s with spec %s: %v", name, spec, err)
			continue
		}
		logutils.Log.Infof("CronJobManager: scheduled %s with spec %q", name, spec)
	}

	cm.cron.Start()
}

// StopCron stops the cron scheduler.
func (cm *CronJobManager) StopCron() {
	cm.cronMutex.Lock()
	defer cm.cronMutex.Unlock()
	cm.cron.Stop()
}
