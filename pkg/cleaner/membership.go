package cleaner

import (
	"context"
	"fmt"

	"github.com/BUka228/ProgressQuestWeb/dao/model"
	"github.com/BUka228/ProgressQuestWeb/pkg/logutils"
)

// SweepDanglingMembershipsResult reports how many orphaned membership rows
// the sweep removed.
type SweepDanglingMembershipsResult struct {
	DeletedMemberships int64 `json:"deletedMemberships"`
}

// SweepDanglingMemberships deletes membership rows whose workspace no longer
// exists. Workspace deletion removes its memberships in the same transaction,
// so this only has work to do after a partial failure; read paths already
// skip orphaned rows, the sweep reclaims the storage.
func SweepDanglingMemberships(ctx context.Context, clients *Clients) (*SweepDanglingMembershipsResult, error) {
	workspaceIDs := clients.DB.WithContext(ctx).
		Model(&model.Workspace{}).
		Select("id")

	res := clients.DB.WithContext(ctx).
		Where("workspace_id NOT IN (?)", workspaceIDs).
		Delete(&model.WorkspaceMember{})
	if res.Error != nil {
		return nil, fmt.Errorf("SweepDanglingMemberships: %w", res.Error)
	}

	if res.RowsAffected > 0 {
		logutils.Log.Infof("SweepDanglingMemberships: removed %d orphaned memberships", res.RowsAffected)
	}
	return &SweepDanglingMembershipsResult{DeletedMemberships: res.RowsAffected}, nil
}
