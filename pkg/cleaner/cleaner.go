// Package cleaner holds the maintenance sweeps that run on a schedule:
// removing memberships whose workspace is gone and expiring completion
// streaks that were not kept up.
package cleaner

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/BUka228/ProgressQuestWeb/dao/model"
	"github.com/BUka228/ProgressQuestWeb/pkg/alert"
	"github.com/BUka228/ProgressQuestWeb/pkg/logutils"
)

const (
	SweepDanglingMembershipJob = "sweep-dangling-memberships"
	SweepStreakJob             = "sweep-streaks"
)

// Clients bundles the dependencies the sweep functions need.
type Clients struct {
	DB      *gorm.DB
	Alerter alert.Interface
}

// SweepFunc runs one maintenance sweep and returns a result for the record.
type SweepFunc func(ctx context.Context) (any, error)

// GetSweepFunc resolves a sweep function by job name.
func GetSweepFunc(jobName string, clients *Clients) (SweepFunc, error) {
	switch jobName {
	case SweepDanglingMembershipJob:
		return func(ctx context.Context) (any, error) {
			return SweepDanglingMemberships(ctx, clients)
		}, nil
	case SweepStreakJob:
		return func(ctx context.Context) (any, error) {
			return SweepStreaks(ctx, clients)
		}, nil
	default:
		return nil, fmt.Errorf("unsupported sweep job name: %s", jobName)
	}
}

// GetWrapSweepFunc resolves and wraps a sweep function in one call.
func GetWrapSweepFunc(jobName string, clients *Clients) (func(), error) {
	sweepFunc, err := GetSweepFunc(jobName, clients)
	if err != nil {
		return nil, err
	}
	return WrapSweepFunc(jobName, clients.DB, sweepFunc), nil
}

// WrapSweepFunc adds the shared error handling and record keeping around a
// sweep function.
func WrapSweepFunc(jobName string, db *gorm.DB, sweepFunc SweepFunc) func() {
	return func() {
		ctx := context.Background()
		jobResult, err := sweepFunc(ctx)
		status := model.MaintenanceRecordStatusSuccess
		message := ""
		if err != nil {
			status = model.MaintenanceRecordStatusFailed
			message = err.Error()
			logutils.Log.Errorf("sweep %s failed: %v", jobName, err)
		}

		rec := &model.MaintenanceRecord{
			Name:        jobName,
			ExecuteTime: time.Now(),
			Status:      status,
			Message:     message,
		}

		if jobResult != nil {
			if data, err := json.Marshal(jobResult); err != nil {
				logutils.Log.Errorf("sweep %s failed to marshal result: %v", jobName, err)
			} else {
				rec.JobData = datatypes.JSON(data)
			}
		}

		if err := db.Create(rec).Error; err != nil {
			logutils.Log.Errorf("sweep %s failed to create record: %v", jobName, err)
		}
	}
}
