package handler

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BUka228/ProgressQuestWeb/dao/model"
	"github.com/BUka228/ProgressQuestWeb/pkg/gamify"
)

// xpReward is what a completed task or pomodoro earned, carried out of the
// transaction so notifications fire only after the commit.
type xpReward struct {
	User      model.User
	XP        int
	LeveledUp bool
}

// creditTaskCompletion runs inside the status-update transaction: base XP,
// the streak bookkeeping and the level are all written with the task row, so
// a rollback cannot leave a paid-for task undone or an unpaid one done.
func creditTaskCompletion(tx *gorm.DB, userID string) (*xpReward, error) {
	return creditXP(tx, userID, func(user *model.User, now time.Time) int {
		earned := gamify.XPPerTask
		switch {
		case user.LastCompletedAt != nil && sameDay(*user.LastCompletedAt, now):
			// Streak already counted today.
		case user.LastCompletedAt != nil && sameDay(*user.LastCompletedAt, now.AddDate(0, 0, -1)):
			user.StreakCount++
			earned += gamify.XPBonusStreak
		default:
			user.StreakCount = 1
		}
		user.TotalTasksCompleted++
		user.LastCompletedAt = &now
		return earned
	})
}

// creditPomodoro credits a finished focus session. Pomodoros do not feed the
// daily streak.
func creditPomodoro(tx *gorm.DB, userID string) (*xpReward, error) {
	return creditXP(tx, userID, func(user *model.User, _ time.Time) int {
		user.TotalPomodoroCompleted++
		return gamify.XPPerPomodoro
	})
}

// The Prometheus counters move only after the surrounding transaction has
// committed; a rollback must not leave them overcounted.
func recordTaskCompletionMetrics(reward *xpReward) {
	if reward == nil {
		return
	}
	completedTasksCounter.Inc()
	xpGrantedCounter.Add(float64(reward.XP))
}

func recordPomodoroMetrics(reward *xpReward) {
	if reward == nil {
		return
	}
	pomodoroSessionsCounter.Inc()
	xpGrantedCounter.Add(float64(reward.XP))
}

func creditXP(tx *gorm.DB, userID string, apply func(user *model.User, now time.Time) int) (*xpReward, error) {
	var user model.User
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("uid = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	earned := apply(&user, now)
	user.XP += earned

	newLevel := gamify.LevelForXP(user.XP)
	leveledUp := newLevel > user.Level
	user.Level = newLevel

	if err := tx.Save(&user).Error; err != nil {
		return nil, err
	}
	return &xpReward{User: user, XP: earned, LeveledUp: leveledUp}, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
