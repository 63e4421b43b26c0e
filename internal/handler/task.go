package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BUka228/ProgressQuestWeb/dao/model"
	"github.com/BUka228/ProgressQuestWeb/internal/resputil"
	"github.com/BUka228/ProgressQuestWeb/internal/util"
	"github.com/BUka228/ProgressQuestWeb/pkg/alert"
	"github.com/BUka228/ProgressQuestWeb/pkg/listcache"
	"github.com/BUka228/ProgressQuestWeb/pkg/logutils"
	"github.com/BUka228/ProgressQuestWeb/pkg/taskview"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewTaskMgr)
}

func taskListTag(workspaceID string) string {
	return "workspace-tasks:" + workspaceID
}

type TaskMgr struct {
	name    string
	db      *gorm.DB
	alerter alert.Interface
	cache   *listcache.Cache
}

func NewTaskMgr(conf *RegisterConfig) Manager {
	return &TaskMgr{
		name:    "workspaces",
		db:      conf.DB,
		alerter: conf.Alerter,
		cache:   conf.Cache,
	}
}

func (mgr *TaskMgr) GetName() string { return mgr.name }

func (mgr *TaskMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *TaskMgr) RegisterProtected(g *gin.RouterGroup) {
	g.POST("/:workspace/tasks", mgr.Create)
	g.GET("/:workspace/tasks", mgr.List)
	g.GET("/:workspace/tasks/:id", mgr.Get)
	g.PUT("/:workspace/tasks/:id", mgr.Update)
	g.PUT("/:workspace/tasks/:id/status", mgr.UpdateStatus)
	g.DELETE("/:workspace/tasks/:id", mgr.Delete)
	g.POST("/:workspace/tasks/:id/pomodoro", mgr.CompletePomodoro)

	g.GET("/:workspace/tasks/:id/subtasks", mgr.ListSubtasks)
	g.POST("/:workspace/tasks/:id/subtasks", mgr.CreateSubtask)
	g.PUT("/:workspace/tasks/:id/subtasks/:subtask", mgr.UpdateSubtask)
	g.DELETE("/:workspace/tasks/:id/subtasks/:subtask", mgr.DeleteSubtask)

	g.GET("/:workspace/views", mgr.ListViews)
	g.POST("/:workspace/views", mgr.CreateView)
	g.PUT("/:workspace/views/:id", mgr.UpdateView)
	g.DELETE("/:workspace/views/:id", mgr.DeleteView)
}

func (mgr *TaskMgr) RegisterAdmin(_ *gin.RouterGroup) {}

type (
	TaskURI struct {
		WorkspaceID string `uri:"workspace" binding:"required"`
		TaskID      string `uri:"id" binding:"required"`
	}

	CreateTaskReq struct {
		Title                    string                `json:"title" binding:"required,max=128"`
		Description              *string               `json:"description"`
		Priority                 *model.TaskPriority   `json:"priority"`
		DueDate                  *time.Time            `json:"dueDate"`
		AssigneeUID              *string               `json:"assigneeUid"`
		Tags                     []string              `json:"tags"`
		PomodoroEstimatedCycles  *int                  `json:"pomodoroEstimatedCycles"`
		PomodoroEstimatedMinutes *int                  `json:"pomodoroEstimatedMinutes"`
		ApproachParams           *model.ApproachParams `json:"approachParams"`
		OrderInList              int                   `json:"orderInList"`
	}

	UpdateTaskReq struct {
		Title                    *string               `json:"title"`
		Description              *string               `json:"description"`
		Priority                 *model.TaskPriority   `json:"priority"`
		DueDate                  *time.Time            `json:"dueDate"`
		ClearDueDate             bool                  `json:"clearDueDate"`
		AssigneeUID              *string               `json:"assigneeUid"`
		ClearAssignee            bool                  `json:"clearAssignee"`
		Tags                     *[]string             `json:"tags"`
		PomodoroEstimatedCycles  *int                  `json:"pomodoroEstimatedCycles"`
		PomodoroEstimatedMinutes *int                  `json:"pomodoroEstimatedMinutes"`
		ApproachParams           *model.ApproachParams `json:"approachParams"`
		OrderInList              *int                  `json:"orderInList"`
	}

	UpdateStatusReq struct {
		Status model.TaskStatus `json:"status" binding:"required"`
	}

	ListTasksReq struct {
		ViewID        string   `form:"viewId"`
		Status        []string `form:"status"`
		Priority      []string `form:"priority"`
		TagsInclude   []string `form:"tagsInclude"`
		TagsExclude   []string `form:"tagsExclude"`
		Assignee      *string  `form:"assignee"`
		Search        string   `form:"search"`
		DueStart      string   `form:"dueStart"`
		DueEnd        string   `form:"dueEnd"`
		SortBy        string   `form:"sortBy"`
		SortDirection string   `form:"sortDirection"`
	}
)

// Create godoc
//
//	@Summary		Create a task
//	@Description	Plain members need the allowMembersToCreateTasks setting, editors can always create
//	@Tags			Task
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			workspace	path		string			true	"workspace id"
//	@Param			data		body		CreateTaskReq	true	"task payload"
//	@Success		200			{object}	resputil.Response[model.Task]
//	@Failure		403			{object}	resputil.Response[any]	"creation not allowed for this role"
//	@Router			/v1/workspaces/{workspace}/tasks [post]
func (mgr *TaskMgr) Create(c *gin.Context) {
	var uri WorkspaceURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	var req CreateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	token := util.GetToken(c)

	workspace, member, ok := resolveMembership(c, mgr.db, uri.WorkspaceID, token.UserID)
	if !ok {
		return
	}
	minCreateRole := model.RoleEditor
	if workspace.Settings.Data().AllowMembersToCreateTasks {
		minCreateRole = model.RoleMember
	}
	if !requirePrivilege(c, member, minCreateRole) {
		return
	}

	priority := model.PriorityMedium
	if req.Priority != nil {
		if !req.Priority.Valid() {
			resputil.BadRequestError(c, "unknown priority")
			return
		}
		priority = *req.Priority
	}

	task := model.Task{
		ID:                       uuid.New().String(),
		Title:                    req.Title,
		Description:              req.Description,
		Status:                   model.StatusTodo,
		Priority:                 priority,
		DueDate:                  req.DueDate,
		CreatorUID:               token.UserID,
		AssigneeUID:              req.AssigneeUID,
		WorkspaceID:              workspace.ID,
		Tags:                     req.Tags,
		PomodoroEstimatedCycles:  req.PomodoroEstimatedCycles,
		PomodoroEstimatedMinutes: req.PomodoroEstimatedMinutes,
		OrderInList:              req.OrderInList,
	}
	if req.ApproachParams != nil {
		params := datatypes.NewJSONType(*req.ApproachParams)
		task.ApproachParams = &params
	}

	if err := mgr.db.WithContext(c).Create(&task).Error; err != nil {
		resputil.InternalError(c, err, "failed to create task")
		return
	}

	mgr.cache.Invalidate(taskListTag(workspace.ID))
	resputil.Success(c, task)
}

// List godoc
//
//	@Summary		List workspace tasks
//	@Description	Loads the workspace's tasks (cached per workspace), applies the saved view if viewId is given, then the query parameters on top
//	@Tags			Task
//	@Produce		json
//	@Security		Bearer
//	@Param			workspace	path		string	true	"workspace id"
//	@Param			viewId		query		string	false	"saved view to apply"
//	@Success		200			{object}	resputil.Response[[]model.Task]
//	@Router			/v1/workspaces/{workspace}/tasks [get]
func (mgr *TaskMgr) List(c *gin.Context) {
	var uri WorkspaceURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	var req ListTasksReq
	if err := c.ShouldBindQuery(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	token := util.GetToken(c)

	workspace, member, ok := resolveMembership(c, mgr.db, uri.WorkspaceID, token.UserID)
	if !ok {
		return
	}

	spec, sortBy, direction, ok := mgr.buildListSpec(c, workspace.ID, token.UserID, &req)
	if !ok {
		return
	}

	tasks, cached := mgr.cachedTasks(workspace.ID)
	if !cached {
		if err := mgr.db.WithContext(c).
			Where("workspace_id = ?", workspace.ID).
			Find(&tasks).Error; err != nil {
			resputil.InternalError(c, err, "failed to list tasks")
			return
		}
		mgr.cache.Set(listcache.Key("tasks", workspace.ID), tasks, taskListTag(workspace.ID))
	}

	tasks = restrictVisibility(tasks, workspace, member, token.UserID)
	tasks = taskview.Filter(tasks, spec)
	tasks = taskview.SortTasks(tasks, sortBy, direction)
	resputil.Success(c, tasks)
}

func (mgr *TaskMgr) cachedTasks(workspaceID string) ([]model.Task, bool) {
	value, ok := mgr.cache.Get(listcache.Key("tasks", workspaceID))
	if !ok {
		return nil, false
	}
	tasks, ok := value.([]model.Task)
	return tasks, ok
}

// buildListSpec resolves the saved view, if any, and layers the explicit
// query parameters over it.
func (mgr *TaskMgr) buildListSpec(
	c *gin.Context,
	workspaceID, callerUID string,
	req *ListTasksReq,
) (spec taskview.FilterSpec, sortBy string, direction taskview.Direction, ok bool) {
	spec.CallerUID = callerUID

	if req.ViewID != "" {
		var view model.TaskView
		err := mgr.db.WithContext(c).
			Where("id = ? AND workspace_id = ?", req.ViewID, workspaceID).
			First(&view).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				resputil.Error(c, "View not found", resputil.NotFound)
			} else {
				resputil.InternalError(c, err, "failed to load view")
			}
			return spec, "", "", false
		}
		saved := view.Filters.Data()
		spec.Status = saved.Status
		spec.Priority = saved.Priority
		spec.TagsInclude = saved.TagsInclude
		spec.TagsExclude = saved.TagsExclude
		spec.Assignee = saved.Assignee
		if saved.Search != nil {
			spec.Search = *saved.Search
		}
		spec.DueStart = saved.DueStart
		spec.DueEnd = saved.DueEnd
		if saved.SortBy != nil {
			sortBy = *saved.SortBy
		}
		if saved.SortDirection != nil {
			direction = taskview.Direction(*saved.SortDirection)
		}
	}

	if len(req.Status) > 0 {
		spec.Status = spec.Status[:0]
		for _, s := range req.Status {
			status := model.TaskStatus(s)
			if !status.Valid() {
				resputil.BadRequestError(c, "unknown status "+s)
				return spec, "", "", false
			}
			spec.Status = append(spec.Status, status)
		}
	}
	if len(req.Priority) > 0 {
		spec.Priority = spec.Priority[:0]
		for _, p := range req.Priority {
			priority := model.TaskPriority(p)
			if !priority.Valid() {
				resputil.BadRequestError(c, "unknown priority "+p)
				return spec, "", "", false
			}
			spec.Priority = append(spec.Priority, priority)
		}
	}
	if len(req.TagsInclude) > 0 {
		spec.TagsInclude = req.TagsInclude
	}
	if len(req.TagsExclude) > 0 {
		spec.TagsExclude = req.TagsExclude
	}
	if req.Assignee != nil {
		spec.Assignee = req.Assignee
	}
	if req.Search != "" {
		spec.Search = req.Search
	}
	if req.DueStart != "" {
		t, err := time.Parse(time.RFC3339, req.DueStart)
		if err != nil {
			resputil.BadRequestError(c, "dueStart must be RFC3339")
			return spec, "", "", false
		}
		spec.DueStart = &t
	}
	if req.DueEnd != "" {
		t, err := time.Parse(time.RFC3339, req.DueEnd)
		if err != nil {
			resputil.BadRequestError(c, "dueEnd must be RFC3339")
			return spec, "", "", false
		}
		spec.DueEnd = &t
	}
	if req.SortBy != "" {
		sortBy = req.SortBy
	}
	if req.SortDirection != "" {
		direction = taskview.Direction(req.SortDirection)
	}
	return spec, sortBy, direction, true
}

// restrictVisibility applies the workspace's taskVisibility setting: with
// "assigned", members below editor only see tasks they created or hold.
func restrictVisibility(
	tasks []model.Task,
	workspace *model.Workspace,
	member *model.WorkspaceMember,
	callerUID string,
) []model.Task {
	if workspace.Settings.Data().TaskVisibility != model.TaskVisibilityAssigned {
		return tasks
	}
	if member.Role.HasPrivilege(model.RoleEditor) {
		return tasks
	}
	out := make([]model.Task, 0, len(tasks))
	for i := range tasks {
		t := &tasks[i]
		if t.CreatorUID == callerUID || (t.AssigneeUID != nil && *t.AssigneeUID == callerUID) {
			out = append(out, tasks[i])
		}
	}
	return out
}

// loadTask fetches one task scoped to the workspace, honoring the
// visibility setting.
func (mgr *TaskMgr) loadTask(
	c *gin.Context,
	workspace *model.Workspace,
	member *model.WorkspaceMember,
	callerUID, taskID string,
) (*model.Task, bool) {
	var task model.Task
	err := mgr.db.WithContext(c).
		Where("id = ? AND workspace_id = ?", taskID, workspace.ID).
		First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resputil.Error(c, "Task not found", resputil.NotFound)
		} else {
			resputil.InternalError(c, err, "failed to load task")
		}
		return nil, false
	}
	if len(restrictVisibility([]model.Task{task}, workspace, member, callerUID)) == 0 {
		resputil.Error(c, "No access to this task", resputil.PermissionDenied)
		return nil, false
	}
	return &task, true
}

// canEditTask: editors touch everything, others only their own tasks.
func canEditTask(task *model.Task, member *model.WorkspaceMember, callerUID string) bool {
	if member.Role.HasPrivilege(model.RoleEditor) {
		return true
	}
	if !member.Role.HasPrivilege(model.RoleMember) {
		return false
	}
	return task.CreatorUID == callerUID || (task.AssigneeUID != nil && *task.AssigneeUID == callerUID)
}

// Get godoc
//
//	@Summary	Get one task
//	@Tags		Task
//	@Produce	json
//	@Security	Bearer
//	@Param		workspace	path		string	true	"workspace id"
//	@Param		id			path		string	true	"task id"
//	@Success	200			{object}	resputil.Response[model.Task]
//	@Router		/v1/workspaces/{workspace}/tasks/{id} [get]
func (mgr *TaskMgr) Get(c *gin.Context) {
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
	resputil.Success(c, task)
}

// Update godoc
//
//	@Summary		Update task fields
//	@Description	Partial update; due date and assignee have explicit clear flags so null keeps its "absent" meaning
//	@Tags			Task
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			workspace	path		string			true	"workspace id"
//	@Param			id			path		string			true	"task id"
//	@Param			data		body		UpdateTaskReq	true	"fields to change"
//	@Success		200			{object}	resputil.Response[model.Task]
//	@Failure		403			{object}	resputil.Response[any]	"not allowed to edit this task"
//	@Router			/v1/workspaces/{workspace}/tasks/{id} [put]
func (mgr *TaskMgr) Update(c *gin.Context) {
	var uri TaskURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	var req UpdateTaskReq
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
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Priority != nil {
		if !req.Priority.Valid() {
			resputil.BadRequestError(c, "unknown priority")
			return
		}
		updates["priority"] = *req.Priority
	}
	if req.ClearDueDate {
		updates["due_date"] = nil
	} else if req.DueDate != nil {
		updates["due_date"] = *req.DueDate
	}
	if req.ClearAssignee {
		updates["assignee_uid"] = nil
	} else if req.AssigneeUID != nil {
		updates["assignee_uid"] = *req.AssigneeUID
	}
	if req.Tags != nil {
		updates["tags"] = datatypes.JSONSlice[string](*req.Tags)
	}
	if req.PomodoroEstimatedCycles != nil {
		updates["pomodoro_estimated_cycles"] = *req.PomodoroEstimatedCycles
	}
	if req.PomodoroEstimatedMinutes != nil {
		updates["pomodoro_estimated_minutes"] = *req.PomodoroEstimatedMinutes
	}
	if req.ApproachParams != nil {
		updates["approach_params"] = datatypes.NewJSONType(*req.ApproachParams)
	}
	if req.OrderInList != nil {
		updates["order_in_list"] = *req.OrderInList
	}
	if len(updates) == 0 {
		resputil.BadRequestError(c, "no fields to update")
		return
	}

	if err := mgr.db.WithContext(c).Model(task).Updates(updates).Error; err != nil {
		resputil.InternalError(c, err, "failed to update task")
		return
	}

	mgr.cache.Invalidate(taskListTag(workspace.ID))
	resputil.Success(c, task)
}

// UpdateStatus godoc
//
//	@Summary		Change a task's status
//	@Description	Moving to DONE stamps completedAt and credits XP in the same transaction; leaving DONE clears the stamp but earned XP is kept
//	@Tags			Task
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			workspace	path		string			true	"workspace id"
//	@Param			id			path		string			true	"task id"
//	@Param			data		body		UpdateStatusReq	true	"new status"
//	@Success		200			{object}	resputil.Response[model.Task]
//	@Router			/v1/workspaces/{workspace}/tasks/{id}/status [put]
func (mgr *TaskMgr) UpdateStatus(c *gin.Context) {
	var uri TaskURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	var req UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	if !req.Status.Valid() {
		resputil.BadRequestError(c, "unknown status")
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

	var reward *xpReward
	err := mgr.db.WithContext(c).Transaction(func(tx *gorm.DB) error {
		var current model.Task
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", task.ID).First(&current).Error; err != nil {
			return err
		}

		updates := map[string]any{"status": req.Status}
		completing := req.Status == model.StatusDone && current.Status != model.StatusDone
		if completing {
			now := time.Now()
			updates["completed_at"] = now
		} else if current.Status == model.StatusDone && req.Status != model.StatusDone {
			updates["completed_at"] = nil
		}
		if err := tx.Model(&current).Updates(updates).Error; err != nil {
			return err
		}
		*task = current

		if !completing {
			return nil
		}
		var err error
		reward, err = creditTaskCompletion(tx, token.UserID)
		return err
	})
	if err != nil {
		resputil.InternalError(c, err, "failed to update status")
		return
	}

	recordTaskCompletionMetrics(reward)
	mgr.notifyReward(c, reward)
	mgr.cache.Invalidate(taskListTag(workspace.ID))
	resputil.Success(c, task)
}

// Delete godoc
//
//	@Summary	Delete a task
//	@Tags		Task
//	@Produce	json
//	@Security	Bearer
//	@Param		workspace	path		string	true	"workspace id"
//	@Param		id			path		string	true	"task id"
//	@Success	200			{object}	resputil.Response[string]
//	@Router		/v1/workspaces/{workspace}/tasks/{id} [delete]
func (mgr *TaskMgr) Delete(c *gin.Context) {
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
	if !canEditTask(task, member, token.UserID) {
		resputil.Error(c, "Not allowed to delete this task", resputil.PermissionDenied)
		return
	}

	if err := mgr.db.WithContext(c).Delete(task).Error; err != nil {
		resputil.InternalError(c, err, "failed to delete task")
		return
	}

	mgr.cache.Invalidate(taskListTag(workspace.ID))
	resputil.Success(c, "deleted")
}

// CompletePomodoro godoc
//
//	@Summary		Record a finished pomodoro session on a task
//	@Description	Increments the task's counter and credits pomodoro XP in one transaction
//	@Tags			Task
//	@Produce		json
//	@Security		Bearer
//	@Param			workspace	path		string	true	"workspace id"
//	@Param			id			path		string	true	"task id"
//	@Success		200			{object}	resputil.Response[model.Task]
//	@Router			/v1/workspaces/{workspace}/tasks/{id}/pomodoro [post]
func (mgr *TaskMgr) CompletePomodoro(c *gin.Context) {
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
	if !canEditTask(task, member, token.UserID) {
		resputil.Error(c, "Not allowed to edit this task", resputil.PermissionDenied)
		return
	}

	var reward *xpReward
	err := mgr.db.WithContext(c).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Task{}).
			Where("id = ?", task.ID).
			Update("pomodoro_count", gorm.Expr("pomodoro_count + 1"))
		if res.Error != nil {
			return res.Error
		}
		task.PomodoroCount++

		var err error
		reward, err = creditPomodoro(tx, token.UserID)
		return err
	})
	if err != nil {
		resputil.InternalError(c, err, "failed to record pomodoro")
		return
	}

	recordPomodoroMetrics(reward)
	mgr.notifyReward(c, reward)
	mgr.cache.Invalidate(taskListTag(workspace.ID))
	resputil.Success(c, task)
}

func (mgr *TaskMgr) notifyReward(c *gin.Context, reward *xpReward) {
	if reward == nil || !reward.LeveledUp {
		return
	}
	if err := mgr.alerter.LevelUpAlert(c, &reward.User, reward.User.Level); err != nil {
		logutils.Log.Errorf("level up alert: %v", err)
	}
}
