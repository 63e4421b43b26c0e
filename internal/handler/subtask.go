package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BUka228/ProgressQuestWeb/dao/model"
	"github.com/BUka228/ProgressQuestWeb/internal/resputil"
	"github.com/BUka228/ProgressQuestWeb/internal/util"
)

type (
	SubtaskURI struct {
		WorkspaceID string `uri:"workspace" binding:"required"`
		TaskID      string `uri:"id" binding:"required"`
		SubtaskID   string `uri:"subtask" binding:"required"`
	}

	CreateSubtaskReq struct {
		Title       string `json:"title" binding:"required,max=128"`
		OrderInList int    `json:"orderInList"`
	}

	UpdateSubtaskReq struct {
		Title       *string `json:"title"`
		Completed   *bool   `json:"completed"`
		OrderInList *int    `json:"orderInList"`
	}
)

// ListSubtasks godoc
//
//	@Summary	List the checklist items of a task
//	@Tags		Task
//	@Produce	json
//	@Security	Bearer
//	@Param		workspace	path		string	true	"workspace id"
//	@Param		id			path		string	true	"task id"
//	@Success	200			{object}	resputil.Response[[]model.Subtask]
//	@Router		/v1/workspaces/{workspace}/tasks/{id}/subtasks [get]
func (mgr *TaskMgr) ListSubtasks(c *gin.Context) {
	var uri TaskURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	token := util.GetToken(c)

	workspace, member, ok := resolveMembership(c, mgr.db, uri.WorkspaceID, token.UserID)
	if !ok {
		return
	}
	task, ok := mgr.loadTask(c, workspace, member, token.UserID, uri.TaskID)
	if !ok {
		return
	}

	var subtasks []model.Subtask
	err := mgr.db.WithContext(c).
		Where("task_id = ?", task.ID).
		Order("order_in_list ASC, created_at ASC").
		Find(&subtasks).Error
	if err != nil {
		resputil.InternalError(c, err, "failed to list subtasks")
		return
	}
	resputil.Success(c, subtasks)
}

// CreateSubtask godoc
//
//	@Summary		Add a checklist item to a task
//	@Description	Anyone allowed to edit the parent task may manage its subtasks
//	@Tags			Task
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			workspace	path		string				true	"workspace id"
//	@Param			id			path		string				true	"task id"
//	@Param			data		body		CreateSubtaskReq	true	"subtask payload"
//	@Success		200			{object}	resputil.Response[model.Subtask]
//	@Failure		403			{object}	resputil.Response[any]	"not allowed to edit the parent task"
//	@Router			/v1/workspaces/{workspace}/tasks/{id}/subtasks [post]
func (mgr *TaskMgr) CreateSubtask(c *gin.Context) {
	var uri TaskURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	var req CreateSubtaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	token := util.GetToken(c)

	workspace, member, ok := resolveMembership(c, mgr.db, uri.WorkspaceID, token.UserID)
	if !ok {
		return
	}
	task, ok := mgr.loadTask(c, workspace, member, token.UserID, uri.TaskID)
	if !ok {
		return
	}
	if !canEditTask(task, member, token.UserID) {
		resputil.Error(c, "Not allowed to edit this task", resputil.PermissionDenied)
		return
	}

	subtask := model.Subtask{
		ID:          uuid.New().String(),
		TaskID:      task.ID,
		WorkspaceID: workspace.ID,
		Title:       req.Title,
		OrderInList: req.OrderInList,
	}
	if err := mgr.db.WithContext(c).Create(&subtask).Error; err != nil {
		resputil.InternalError(c, err, "failed to create subtask")
		return
	}
	resputil.Success(c, subtask)
}

// UpdateSubtask godoc
//
//	@Summary	Update a checklist item
//	@Tags		Task
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		workspace	path		string				true	"workspace id"
//	@Param		id			path		string				true	"task id"
//	@Param		subtask		path		string				true	"subtask id"
//	@Param		data		body		UpdateSubtaskReq	true	"fields to change"
//	@Success	200			{object}	resputil.Response[model.Subtask]
//	@Router		/v1/workspaces/{workspace}/tasks/{id}/subtasks/{subtask} [put]
func (mgr *TaskMgr) UpdateSubtask(c *gin.Context) {
	var uri SubtaskURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	var req UpdateSubtaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	token := util.GetToken(c)

	workspace, member, ok := resolveMembership(c, mgr.db, uri.WorkspaceID, token.UserID)
	if !ok {
		return
	}
	task, ok := mgr.loadTask(c, workspace, member, token.UserID, uri.TaskID)
	if !ok {
		return
	}
	if !canEditTask(task, member, token.UserID) {
		resputil.Error(c, "Not allowed to edit this task", resputil.PermissionDenied)
		return
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Completed != nil {
		updates["completed"] = *req.Completed
	}
	if req.OrderInList != nil {
		updates["order_in_list"] = *req.OrderInList
	}
	if len(updates) == 0 {
		resputil.BadRequestError(c, "no fields to update")
		return
	}

	res := mgr.db.WithContext(c).Model(&model.Subtask{}).
		Where("id = ? AND task_id = ?", uri.SubtaskID, task.ID).
		Updates(updates)
	if res.Error != nil {
		resputil.InternalError(c, res.Error, "failed to update subtask")
		return
	}
	if res.RowsAffected == 0 {
		resputil.Error(c, "Subtask not found", resputil.NotFound)
		return
	}

	var subtask model.Subtask
	if err := mgr.db.WithContext(c).Where("id = ?", uri.SubtaskID).First(&subtask).Error; err != nil {
		resputil.InternalError(c, err, "failed to load subtask")
		return
	}
	resputil.Success(c, subtask)
}

// DeleteSubtask godoc
//
//	@Summary	Delete a checklist item
//	@Tags		Task
//	@Produce	json
//	@Security	Bearer
//	@Param		workspace	path		string	true	"workspace id"
//	@Param		id			path		string	true	"task id"
//	@Param		subtask		path		string	true	"subtask id"
//	@Success	200			{object}	resputil.Response[string]
//	@Router		/v1/workspaces/{workspace}/tasks/{id}/subtasks/{subtask} [delete]
func (mgr *TaskMgr) DeleteSubtask(c *gin.Context) {
	var uri SubtaskURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	token := util.GetToken(c)

	workspace, member, ok := resolveMembership(c, mgr.db, uri.WorkspaceID, token.UserID)
	if !ok {
		return
	}
	task, ok := mgr.loadTask(c, workspace, member, token.UserID, uri.TaskID)
	if !ok {
		return
	}
	if !canEditTask(task, member, token.UserID) {
		resputil.Error(c, "Not allowed to edit this task", resputil.PermissionDenied)
		return
	}

	res := mgr.db.WithContext(c).
		Where("id = ? AND task_id = ?", uri.SubtaskID, task.ID).
		Delete(&model.Subtask{})
	if res.Error != nil {
		resputil.InternalError(c, res.Error, "failed to delete subtask")
		return
	}
	if res.RowsAffected == 0 {
		resputil.Error(c, "Subtask not found", resputil.NotFound)
		return
	}
	resputil.Success(c, "deleted")
}
