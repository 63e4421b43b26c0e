package cleaner

import (
	"context"
	"fmt"
	"time"

	"github.com/BUka228/ProgressQuestWeb/dao/model"
	"github.com/BUka228/ProgressQuestWeb/pkg/logutils"
)

// SweepStreaksResult reports the outcome of the nightly streak sweep.
type SweepStreaksResult struct {
	ResetStreaks int64 `json:"resetStreaks"`
	KeptStreaks  int   `json:"keptStreaks"`
}

// SweepStreaks runs once a day, shortly after midnight. Users who completed
// nothing yesterday lose their streak; users who kept it get a notification.
// The streak counter itself is incremented at completion time, the sweep only
// expires stale ones.
func SweepStreaks(ctx context.Context, clients *Clients) (*SweepStreaksResult, error) {
	now := time.Now().UTC()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	startOfYesterday := startOfToday.AddDate(0, 0, -1)

	result := &SweepStreaksResult{}

	res := clients.DB.WithContext(ctx).
		Model(&model.User{}).
		Where("streak_count > 0").
		Where("last_completed_at IS NULL OR last_completed_at < ?", startOfYesterday).
		Update("streak_count", 0)
	if res.Error != nil {
		return nil, fmt.Errorf("SweepStreaks: reset: %w", res.Error)
	}
	result.ResetStreaks = res.RowsAffected

	var keepers []model.User
	err := clients.DB.WithContext(ctx).
		Where("streak_count > 0").
		Where("last_completed_at >= ? AND last_completed_at < ?", startOfYesterday, startOfToday).
		Find(&keepers).Error
	if err != nil {
		return nil, fmt.Errorf("SweepStreaks: keepers: %w", err)
	}

	for i := range keepers {
		user := &keepers[i]
		if err := clients.Alerter.StreakKeptAlert(ctx, user, user.StreakCount); err != nil {
			logutils.Log.Errorf("SweepStreaks: alert %s: %v", user.UID, err)
		}
	}
	result.KeptStreaks = len(keepers)

	logutils.Log.Infof("SweepStreaks: reset %d streaks, %d kept", result.ResetStreaks, result.KeptStreaks)
	return result, nil
}
