package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BUka228/ProgressQuestWeb/dao/model"
	"github.com/BUka228/ProgressQuestWeb/internal/resputil"
)

// resolveMembership is the access check in front of every workspace-scoped
// operation. The membership row is looked up before the workspace itself, so
// a caller without one gets PermissionDenied whether or not the workspace
// exists; a membership pointing at a deleted workspace is removed on the
// spot and reported as NotFound.
func resolveMembership(
	c *gin.Context,
	db *gorm.DB,
	workspaceID, userID string,
) (*model.Workspace, *model.WorkspaceMember, bool) {
	var member model.WorkspaceMember
	err := db.WithContext(c).
		Where("workspace_id = ? AND user_id = ?", workspaceID, userID).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resputil.Error(c, "No access to this workspace", resputil.PermissionDenied)
		} else {
			resputil.InternalError(c, err, "failed to load membership")
		}
		return nil, nil, false
	}

	var workspace model.Workspace
	err = db.WithContext(c).Where("id = ?", workspaceID).First(&workspace).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Dangling membership, heal it instead of waiting for the sweep.
			db.WithContext(c).Delete(&member)
			resputil.Error(c, "Workspace not found", resputil.NotFound)
		} else {
			resputil.InternalError(c, err, "failed to load workspace")
		}
		return nil, nil, false
	}

	return &workspace, &member, true
}

// requirePrivilege rejects the request unless the member holds at least the
// given role.
func requirePrivilege(c *gin.Context, member *model.WorkspaceMember, min model.Role) bool {
	if !member.Role.HasPrivilege(min) {
		resputil.Error(c, "Insufficient workspace role", resputil.PermissionDenied)
		return false
	}
	return true
}
