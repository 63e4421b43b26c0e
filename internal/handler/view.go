package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/BUka228/ProgressQuestWeb/dao/model"
	"github.com/BUka228/ProgressQuestWeb/internal/resputil"
	"github.com/BUka228/ProgressQuestWeb/internal/util"
)

type (
	ViewURI struct {
		WorkspaceID string `uri:"workspace" binding:"required"`
		ViewID      string `uri:"id" binding:"required"`
	}

	CreateViewReq struct {
		Name    string             `json:"name" binding:"required,max=64"`
		Filters model.TaskViewSpec `json:"filters"`
	}

	UpdateViewReq struct {
		Name    *string             `json:"name"`
		Filters *model.TaskViewSpec `json:"filters"`
	}
)

// ListViews godoc
//
//	@Summary	List the saved task views of a workspace
//	@Tags		TaskView
//	@Produce	json
//	@Security	Bearer
//	@Param		workspace	path		string	true	"workspace id"
//	@Success	200			{object}	resputil.Response[[]model.TaskView]
//	@Router		/v1/workspaces/{workspace}/views [get]
func (mgr *TaskMgr) ListViews(c *gin.Context) {
	var uri WorkspaceURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	token := util.GetToken(c)

	workspace, _, ok := resolveMembership(c, mgr.db, uri.WorkspaceID, token.UserID)
	if !ok {
		return
	}

	var views []model.TaskView
	if err := mgr.db.WithContext(c).Where("workspace_id = ?", workspace.ID).Find(&views).Error; err != nil {
		resputil.InternalError(c, err, "failed to list views")
		return
	}
	resputil.Success(c, views)
}

// CreateView godoc
//
//	@Summary	Save a filter/sort configuration as a named view
//	@Tags		TaskView
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		workspace	path		string			true	"workspace id"
//	@Param		data		body		CreateViewReq	true	"view payload"
//	@Success	200			{object}	resputil.Response[model.TaskView]
//	@Router		/v1/workspaces/{workspace}/views [post]
func (mgr *TaskMgr) CreateView(c *gin.Context) {
	var uri WorkspaceURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	var req CreateViewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	token := util.GetToken(c)

	workspace, member, ok := resolveMembership(c, mgr.db, uri.WorkspaceID, token.UserID)
	if !ok {
		return
	}
	if !requirePrivilege(c, member, model.RoleMember) {
		return
	}

	view := model.TaskView{
		ID:          uuid.New().String(),
		WorkspaceID: workspace.ID,
		Name:        req.Name,
		Filters:     datatypes.NewJSONType(req.Filters),
	}
	if err := mgr.db.WithContext(c).Create(&view).Error; err != nil {
		resputil.InternalError(c, err, "failed to create view")
		return
	}
	resputil.Success(c, view)
}

// UpdateView godoc
//
//	@Summary	Rename a view or replace its filters
//	@Tags		TaskView
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		workspace	path		string			true	"workspace id"
//	@Param		id			path		string			true	"view id"
//	@Param		data		body		UpdateViewReq	true	"fields to change"
//	@Success	200			{object}	resputil.Response[model.TaskView]
//	@Router		/v1/workspaces/{workspace}/views/{id} [put]
func (mgr *TaskMgr) UpdateView(c *gin.Context) {
	var uri ViewURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	var req UpdateViewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	token := util.GetToken(c)

	workspace, member, ok := resolveMembership(c, mgr.db, uri.WorkspaceID, token.UserID)
	if !ok {
		return
	}
	if !requirePrivilege(c, member, model.RoleMember) {
		return
	}

	var view model.TaskView
	err := mgr.db.WithContext(c).
		Where("id = ? AND workspace_id = ?", uri.ViewID, workspace.ID).
		First(&view).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resputil.Error(c, "View not found", resputil.NotFound)
		} else {
			resputil.InternalError(c, err, "failed to load view")
		}
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Filters != nil {
		updates["filters"] = datatypes.NewJSONType(*req.Filters)
	}
	if len(updates) == 0 {
		resputil.BadRequestError(c, "no fields to update")
		return
	}

	if err := mgr.db.WithContext(c).Model(&view).Updates(updates).Error; err != nil {
		resputil.InternalError(c, err, "failed to update view")
		return
	}
	resputil.Success(c, view)
}

// DeleteView godoc
//
//	@Summary	Delete a saved view
//	@Tags		TaskView
//	@Produce	json
//	@Security	Bearer
//	@Param		workspace	path		string	true	"workspace id"
//	@Param		id			path		string	true	"view id"
//	@Success	200			{object}	resputil.Response[string]
//	@Router		/v1/workspaces/{workspace}/views/{id} [delete]
func (mgr *TaskMgr) DeleteView(c *gin.Context) {
	var uri ViewURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	token := util.GetToken(c)

	workspace, member, ok := resolveMembership(c, mgr.db, uri.WorkspaceID, token.UserID)
	if !ok {
		return
	}
	if !requirePrivilege(c, member, model.RoleMember) {
		return
	}

	res := mgr.db.WithContext(c).
		Where("id = ? AND workspace_id = ?", uri.ViewID, workspace.ID).
		Delete(&model.TaskView{})
	if res.Error != nil {
		resputil.InternalError(c, res.Error, "failed to delete view")
		return
	}
	if res.RowsAffected == 0 {
		resputil.Error(c, "View not found", resputil.NotFound)
		return
	}
	resputil.Success(c, "deleted")
}
