package alert

import (
	"context"

	"github.com/BUka228/ProgressQuestWeb/dao/model"
)

// Interface is the notification component. Scenarios:
//  1. level-up notification after an XP credit crosses a level boundary
//  2. membership notification when a user is added to a workspace
//  3. streak-kept notification from the nightly sweep
type Interface interface {
	LevelUpAlert(ctx context.Context, user *model.User, newLevel int) error
	MemberAddedAlert(ctx context.Context, user *model.User, workspace *model.Workspace, role model.Role) error
	StreakKeptAlert(ctx context.Context, user *model.User, streak int) error
}

// alertHandlerInterface is the transport behind the notification component;
// the SMTP sender and the chat webhook both implement it.
type alertHandlerInterface interface {
	SendMessageTo(ctx context.Context, user *model.User, subject, body string) error
}
