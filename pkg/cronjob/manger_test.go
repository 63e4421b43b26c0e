package cronjob

import (
	"testing"

	. "github.com/bytedance/mockey"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/BUka228/ProgressQuestWeb/pkg/cleaner"
	"github.com/BUka228/ProgressQuestWeb/pkg/config"
)

func TestCronJobManager(t *testing.T) {
	t.Run("AddCronJob", func(t *testing.T) {
		manager := NewCronJobManager(nil, nil)
		PatchConvey("AddCronJob", t, func() {
			entryID, err := manager.AddCronJob(cleaner.SweepDanglingMembershipJob, "0 3 * * *")
			So(err, ShouldBeNil)
			So(entryID, ShouldBeGreaterThan, 0)

			entryID, err = manager.AddCronJob(cleaner.SweepStreakJob, "15 0 * * *")
			So(err, ShouldBeNil)
			So(entryID, ShouldBeGreaterThan, 0)

			_, err = manager.AddCronJob("unknown", "0 3 * * *")
			So(err, ShouldNotBeNil)

			_, err = manager.AddCronJob(cleaner.SweepStreakJob, "not a cron spec")
			So(err, ShouldNotBeNil)
		})
	})

	t.Run("Start", func(t *testing.T) {
		PatchConvey("Start schedules the configured sweeps and skips empty specs", t, func() {
			conf := &config.Config{}
			conf.Maintenance.MembershipSweepSpec = "0 3 * * *"
			conf.Maintenance.StreakSweepSpec = ""
			Mock(config.GetConfig).Return(conf).Build()

			manager := NewCronJobManager(nil, nil)
			manager.Start()
			defer manager.StopCron()

			So(manager.cron.Entries(), ShouldHaveLength, 1)
		})
	})
}
