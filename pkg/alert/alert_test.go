package alert

import (
	"context"
	"testing"

	. "github.com/bytedance/mockey"
	. "github.com/smartystreets/goconvey/convey"
	"gorm.io/datatypes"

	"github.com/BUka228/ProgressQuestWeb/dao/model"
	"github.com/BUka228/ProgressQuestWeb/pkg/config"
)

type recordingHandler struct {
	subjects []string
}

func (r *recordingHandler) SendMessageTo(_ context.Context, _ *model.User, subject, _ string) error {
	r.subjects = append(r.subjects, subject)
	return nil
}

func userWithAchievements(enabled bool) *model.User {
	prefs := model.DefaultUserPreferences()
	prefs.Notifications.Achievements = enabled
	return &model.User{
		UID:         "u-1",
		Email:       "alice@example.com",
		DisplayName: "alice",
		Preferences: datatypes.NewJSONType(prefs),
	}
}

func TestInitAlertMgr(t *testing.T) {
	PatchConvey("an empty channel disables notifications", t, func() {
		conf := &config.Config{}
		Mock(config.GetConfig).Return(conf).Build()

		mgr := initAlertMgr()
		So(mgr, ShouldHaveSameTypeAs, &noopAlerter{})
	})

	PatchConvey("the webhook channel builds a robot-backed manager", t, func() {
		conf := &config.Config{}
		conf.Notify.Channel = "webhook"
		conf.Notify.WebhookAddress = "http://robot.example.com/send"
		Mock(config.GetConfig).Return(conf).Build()

		mgr := initAlertMgr()
		So(mgr, ShouldHaveSameTypeAs, &alertMgr{})
	})
}

func TestAchievementPreference(t *testing.T) {
	Convey("achievement alerts honor the user preference", t, func() {
		rec := &recordingHandler{}
		mgr := &alertMgr{handler: rec}
		ctx := context.Background()

		So(mgr.LevelUpAlert(ctx, userWithAchievements(false), 3), ShouldBeNil)
		So(mgr.StreakKeptAlert(ctx, userWithAchievements(false), 7), ShouldBeNil)
		So(rec.subjects, ShouldBeEmpty)

		So(mgr.LevelUpAlert(ctx, userWithAchievements(true), 3), ShouldBeNil)
		So(mgr.StreakKeptAlert(ctx, userWithAchievements(true), 7), ShouldBeNil)
		So(rec.subjects, ShouldHaveLength, 2)
	})

	Convey("membership alerts always go out", t, func() {
		rec := &recordingHandler{}
		mgr := &alertMgr{handler: rec}

		workspace := &model.Workspace{ID: "w-1", Name: "Team Phoenix"}
		err := mgr.MemberAddedAlert(context.Background(), userWithAchievements(false), workspace, model.RoleEditor)
		So(err, ShouldBeNil)
		So(rec.subjects, ShouldHaveLength, 1)
	})
}
