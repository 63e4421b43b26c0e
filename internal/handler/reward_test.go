package handler

import (
	"testing"

	. "github.com/bytedance/mockey"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
	"gorm.io/gorm"

	"github.com/BUka228/ProgressQuestWeb/dao/model"
)

func TestRewardMetrics(t *testing.T) {
	PatchConvey("a rolled-back credit moves no counters", t, func() {
		db := &gorm.DB{}
		Mock((*gorm.DB).Clauses).Return(db).Build()
		Mock((*gorm.DB).Where).Return(db).Build()
		Mock((*gorm.DB).First).To(func(d *gorm.DB, dest any, _ ...any) *gorm.DB {
			user := dest.(*model.User)
			*user = model.User{UID: "alice", Level: 1}
			d.Error = nil
			return d
		}).Build()
		Mock((*gorm.DB).Save).To(func(d *gorm.DB, _ any) *gorm.DB {
			d.Error = gorm.ErrInvalidTransaction
			return d
		}).Build()

		tasksBefore := testutil.ToFloat64(completedTasksCounter)
		sessionsBefore := testutil.ToFloat64(pomodoroSessionsCounter)
		xpBefore := testutil.ToFloat64(xpGrantedCounter)

		_, err := creditTaskCompletion(db, "alice")
		So(err, ShouldNotBeNil)
		_, err = creditPomodoro(db, "alice")
		So(err, ShouldNotBeNil)

		So(testutil.ToFloat64(completedTasksCounter), ShouldEqual, tasksBefore)
		So(testutil.ToFloat64(pomodoroSessionsCounter), ShouldEqual, sessionsBefore)
		So(testutil.ToFloat64(xpGrantedCounter), ShouldEqual, xpBefore)
	})

	Convey("a committed reward moves the counters exactly once", t, func() {
		tasksBefore := testutil.ToFloat64(completedTasksCounter)
		xpBefore := testutil.ToFloat64(xpGrantedCounter)

		recordTaskCompletionMetrics(&xpReward{XP: 15})
		So(testutil.ToFloat64(completedTasksCounter), ShouldEqual, tasksBefore+1)
		So(testutil.ToFloat64(xpGrantedCounter), ShouldEqual, xpBefore+15)

		sessionsBefore := testutil.ToFloat64(pomodoroSessionsCounter)
		recordPomodoroMetrics(&xpReward{XP: 5})
		So(testutil.ToFloat64(pomodoroSessionsCounter), ShouldEqual, sessionsBefore+1)
		So(testutil.ToFloat64(xpGrantedCounter), ShouldEqual, xpBefore+20)
	})

	Convey("a status change that completed nothing records nothing", t, func() {
		tasksBefore := testutil.ToFloat64(completedTasksCounter)
		sessionsBefore := testutil.ToFloat64(pomodoroSessionsCounter)
		xpBefore := testutil.ToFloat64(xpGrantedCounter)

		recordTaskCompletionMetrics(nil)
		recordPomodoroMetrics(nil)

		So(testutil.ToFloat64(completedTasksCounter), ShouldEqual, tasksBefore)
		So(testutil.ToFloat64(pomodoroSessionsCounter), ShouldEqual, sessionsBefore)
		So(testutil.ToFloat64(xpGrantedCounter), ShouldEqual, xpBefore)
	})
}
