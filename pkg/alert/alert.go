package alert

import (
	"context"
	"fmt"
	"sync"

	"github.com/BUka228/ProgressQuestWeb/dao/model"
	"github.com/BUka228/ProgressQuestWeb/pkg/config"
	"github.com/BUka228/ProgressQuestWeb/pkg/logutils"
)

type alertMgr struct {
	handler alertHandlerInterface
}

var (
	once    sync.Once
	alerter Interface
)

func GetAlertMgr() Interface {
	once.Do(func() {
		alerter = initAlertMgr()
	})
	return alerter
}

func initAlertMgr() Interface {
	switch config.GetConfig().Notify.Channel {
	case "smtp":
		return &alertMgr{handler: newSMTPAlerter()}
	case "webhook":
		return &alertMgr{handler: newWebhookRobot()}
	default:
		logutils.Log.Info("notifications disabled")
		return &noopAlerter{}
	}
}

func (a *alertMgr) LevelUpAlert(ctx context.Context, user *model.User, newLevel int) error {
	if !user.Preferences.Data().Notifications.Achievements {
		return nil
	}
	subject := "Level up!"
	body := fmt.Sprintf("%s, you reached level %d. Keep it going!", user.DisplayName, newLevel)
	return a.handler.SendMessageTo(ctx, user, subject, body)
}

func (a *alertMgr) MemberAddedAlert(ctx context.Context, user *model.User, workspace *model.Workspace, role model.Role) error {
	subject := "Added to a workspace"
	body := fmt.Sprintf("%s, you were added to workspace %q as %s.", user.DisplayName, workspace.Name, role)
	return a.handler.SendMessageTo(ctx, user, subject, body)
}

func (a *alertMgr) StreakKeptAlert(ctx context.Context, user *model.User, streak int) error {
	if !user.Preferences.Data().Notifications.Achievements {
		return nil
	}
	subject := "Streak bonus"
	body := fmt.Sprintf("%s, your streak is now %d days. Bonus XP credited.", user.DisplayName, streak)
	return a.handler.SendMessageTo(ctx, user, subject, body)
}

type noopAlerter struct{}

func (n *noopAlerter) LevelUpAlert(context.Context, *model.User, int) error { return nil }
func (n *noopAlerter) MemberAddedAlert(context.Context, *model.User, *model.Workspace, model.Role) error {
	return nil
}
func (n *noopAlerter) StreakKeptAlert(context.Context, *model.User, int) error { return nil }
