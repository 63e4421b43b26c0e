package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"
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
	Registers = append(Registers, NewWorkspaceMgr)
}

// workspaceListTag invalidates every cached workspace listing; per-workspace
// task listings carry their own tag, see task.go.
const workspaceListTag = "workspaces"

type WorkspaceMgr struct {
	name    string
	db      *gorm.DB
	alerter alert.Interface
	cache   *listcache.Cache
}

func NewWorkspaceMgr(conf *RegisterConfig) Manager {
	return &WorkspaceMgr{
		name:    "workspaces",
		db:      conf.DB,
		alerter: conf.Alerter,
		cache:   conf.Cache,
	}
}

func (mgr *WorkspaceMgr) GetName() string { return mgr.name }

func (mgr *WorkspaceMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *WorkspaceMgr) RegisterProtected(g *gin.RouterGroup) {
	g.POST("", mgr.Create)
	g.GET("", mgr.List)
	g.GET("/:workspace", mgr.Get)
	g.PUT("/:workspace", mgr.Update)
	g.DELETE("/:workspace", mgr.Delete)

	g.GET("/:workspace/members", mgr.ListMembers)
	g.POST("/:workspace/members", mgr.AddMember)
	g.PUT("/:workspace/members/:uid", mgr.UpdateMember)
	g.DELETE("/:workspace/members/:uid", mgr.RemoveMember)
}

func (mgr *WorkspaceMgr) RegisterAdmin(g *gin.RouterGroup) {
	g.GET("", mgr.ListAll)
}

type (
	WorkspaceURI struct {
		WorkspaceID string `uri:"workspace" binding:"required"`
	}

	CreateWorkspaceReq struct {
		Name           string                   `json:"name" binding:"required,max=64"`
		Description    *string                  `json:"description"`
		IsPersonal     bool                     `json:"isPersonal"`
		TeamID         *string                  `json:"teamId"`
		ActiveApproach *model.Approach          `json:"activeApproach"`
		DefaultTags    []string                 `json:"defaultTags"`
		Settings       *model.WorkspaceSettings `json:"settings"`
	}

	UpdateWorkspaceReq struct {
		Name           *string                  `json:"name"`
		Description    *string                  `json:"description"`
		ActiveApproach *model.Approach          `json:"activeApproach"`
		DefaultTags    *[]string                `json:"defaultTags"`
		Settings       *model.WorkspaceSettings `json:"settings"`
	}

	ListWorkspacesReq struct {
		Search        string   `form:"search"`
		Tags          []string `form:"tags"`
		SortBy        string   `form:"sortBy"`
		SortDirection string   `form:"sortDirection"`
	}

	// WorkspaceResp is the only shape a workspace leaves the API in: every
	// read and write responds with the workspace merged with the caller's
	// own role in it.
	WorkspaceResp struct {
		model.Workspace
		CallerRole  model.Role `json:"callerRole"`
		MemberCount int64      `json:"memberCount"`
	}
)

// workspaceListing is the cached per-user join of workspaces with the
// caller's role and the member count of each.
type workspaceListing struct {
	Workspaces []model.Workspace
	Roles      map[string]model.Role
	Members    map[string]int64
}

// Create godoc
//
//	@Summary		Create a workspace
//	@Description	The caller becomes the owner; the workspace and the owner membership are created atomically
//	@Tags			Workspace
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			data	body		CreateWorkspaceReq	true	"workspace payload"
//	@Success		200		{object}	resputil.Response[WorkspaceResp]
//	@Failure		400		{object}	resputil.Response[any]	"invalid payload"
//	@Router			/v1/workspaces [post]
func (mgr *WorkspaceMgr) Create(c *gin.Context) {
	var req CreateWorkspaceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	approach := model.ApproachDefault
	if req.ActiveApproach != nil {
		if !req.ActiveApproach.Valid() {
			resputil.BadRequestError(c, "unknown approach")
			return
		}
		approach = *req.ActiveApproach
	}
	settings := model.DefaultWorkspaceSettings()
	if req.Settings != nil {
		settings = *req.Settings
	}

	token := util.GetToken(c)
	workspace := model.Workspace{
		ID:             uuid.New().String(),
		Name:           req.Name,
		Description:    req.Description,
		OwnerUID:       token.UserID,
		IsPersonal:     req.IsPersonal,
		TeamID:         req.TeamID,
		ActiveApproach: approach,
		DefaultTags:    req.DefaultTags,
		Settings:       datatypes.NewJSONType(settings),
	}

	err := mgr.db.WithContext(c).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&workspace).Error; err != nil {
			return err
		}
		member := model.WorkspaceMember{
			WorkspaceID: workspace.ID,
			UserID:      token.UserID,
			Role:        model.RoleOwner,
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "workspace_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"role"}),
		}).Create(&member).Error
	})
	if err != nil {
		resputil.InternalError(c, err, "failed to create workspace")
		return
	}

	mgr.cache.Invalidate(workspaceListTag)
	resputil.Success(c, WorkspaceResp{
		Workspace:   workspace,
		CallerRole:  model.RoleOwner,
		MemberCount: 1,
	})
}

// List godoc
//
//	@Summary		List the caller's workspaces
//	@Description	Returns the workspaces the caller is a member of, filtered and sorted in memory
//	@Tags			Workspace
//	@Produce		json
//	@Security		Bearer
//	@Param			search			query		string	false	"substring over name and description"
//	@Param			tags			query		[]string	false	"match on default tags"
//	@Param			sortBy			query		string	false	"name, createdAt or updatedAt"
//	@Param			sortDirection	query		string	false	"asc or desc"
//	@Success		200				{object}	resputil.Response[[]WorkspaceResp]
//	@Router			/v1/workspaces [get]
func (mgr *WorkspaceMgr) List(c *gin.Context) {
	var req ListWorkspacesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	token := util.GetToken(c)

	listing, ok := mgr.cachedWorkspaces(token.UserID)
	if !ok {
		var err error
		listing, err = mgr.loadWorkspacesForUser(c, token.UserID)
		if err != nil {
			resputil.InternalError(c, err, "failed to list workspaces")
			return
		}
		mgr.cache.Set(listcache.Key("workspaces", token.UserID), listing, workspaceListTag)
	}

	workspaces := taskview.FilterWorkspaces(listing.Workspaces, taskview.WorkspaceFilter{
		Search: req.Search,
		Tags:   req.Tags,
	})
	workspaces = taskview.SortWorkspaces(workspaces, req.SortBy, taskview.Direction(req.SortDirection))
	resputil.Success(c, attachCallerRoles(workspaces, listing.Roles, listing.Members))
}

func (mgr *WorkspaceMgr) cachedWorkspaces(userID string) (workspaceListing, bool) {
	value, ok := mgr.cache.Get(listcache.Key("workspaces", userID))
	if !ok {
		return workspaceListing{}, false
	}
	listing, ok := value.(workspaceListing)
	return listing, ok
}

// attachCallerRoles merges each workspace with the caller's role in it and
// its member count, after filtering and sorting are done.
func attachCallerRoles(
	workspaces []model.Workspace,
	roles map[string]model.Role,
	members map[string]int64,
) []WorkspaceResp {
	return lo.Map(workspaces, func(w model.Workspace, _ int) WorkspaceResp {
		return WorkspaceResp{
			Workspace:   w,
			CallerRole:  roles[w.ID],
			MemberCount: members[w.ID],
		}
	})
}

// loadWorkspacesForUser joins the caller's memberships to their workspaces.
// Memberships whose workspace is gone are deleted on the way out, so one bad
// row cannot break the listing forever.
func (mgr *WorkspaceMgr) loadWorkspacesForUser(c *gin.Context, userID string) (workspaceListing, error) {
	listing := workspaceListing{
		Workspaces: []model.Workspace{},
		Roles:      map[string]model.Role{},
		Members:    map[string]int64{},
	}

	var members []model.WorkspaceMember
	if err := mgr.db.WithContext(c).Where("user_id = ?", userID).Find(&members).Error; err != nil {
		return listing, err
	}
	if len(members) == 0 {
		return listing, nil
	}

	ids := lo.Map(members, func(m model.WorkspaceMember, _ int) string { return m.WorkspaceID })
	if err := mgr.db.WithContext(c).Where("id IN ?", ids).Find(&listing.Workspaces).Error; err != nil {
		return listing, err
	}

	found := lo.SliceToMap(listing.Workspaces, func(w model.Workspace) (string, bool) { return w.ID, true })
	for i := range members {
		if !found[members[i].WorkspaceID] {
			logutils.Log.Warnf("dropping dangling membership %s/%s", members[i].WorkspaceID, userID)
			mgr.db.WithContext(c).Delete(&members[i])
			continue
		}
		listing.Roles[members[i].WorkspaceID] = members[i].Role
	}

	type memberCount struct {
		WorkspaceID string
		Count       int64
	}
	var counts []memberCount
	err := mgr.db.WithContext(c).Model(&model.WorkspaceMember{}).
		Select("workspace_id", "count(*) as count").
		Where("workspace_id IN ?", ids).
		Group("workspace_id").
		Scan(&counts).Error
	if err != nil {
		return listing, err
	}
	for _, mc := range counts {
		listing.Members[mc.WorkspaceID] = mc.Count
	}
	return listing, nil
}

// Get godoc
//
//	@Summary	Get one workspace with the caller's role
//	@Tags		Workspace
//	@Produce	json
//	@Security	Bearer
//	@Param		workspace	path		string	true	"workspace id"
//	@Success	200			{object}	resputil.Response[WorkspaceResp]
//	@Failure	403			{object}	resputil.Response[any]	"not a member"
//	@Failure	404			{object}	resputil.Response[any]	"workspace gone"
//	@Router		/v1/workspaces/{workspace} [get]
func (mgr *WorkspaceMgr) Get(c *gin.Context) {
	var uri WorkspaceURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	token := util.GetToken(c)

	workspace, member, ok := resolveMembership(c, mgr.db, uri.WorkspaceID, token.UserID)
	if !ok {
		return
	}

	memberCount, err := mgr.countMembers(c, workspace.ID)
	if err != nil {
		resputil.InternalError(c, err, "failed to count members")
		return
	}

	resputil.Success(c, WorkspaceResp{
		Workspace:   *workspace,
		CallerRole:  member.Role,
		MemberCount: memberCount,
	})
}

func (mgr *WorkspaceMgr) countMembers(c *gin.Context, workspaceID string) (int64, error) {
	var count int64
	err := mgr.db.WithContext(c).Model(&model.WorkspaceMember{}).
		Where("workspace_id = ?", workspaceID).Count(&count).Error
	return count, err
}

// Update godoc
//
//	@Summary		Update workspace fields
//	@Description	Partial update, absent fields stay untouched. Requires an admin-level role
//	@Tags			Workspace
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			workspace	path		string				true	"workspace id"
//	@Param			data		body		UpdateWorkspaceReq	true	"fields to change"
//	@Success		200			{object}	resputil.Response[WorkspaceResp]
//	@Failure		403			{object}	resputil.Response[any]	"role below admin"
//	@Router			/v1/workspaces/{workspace} [put]
func (mgr *WorkspaceMgr) Update(c *gin.Context) {
	var uri WorkspaceURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	var req UpdateWorkspaceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	token := util.GetToken(c)

	workspace, member, ok := resolveMembership(c, mgr.db, uri.WorkspaceID, token.UserID)
	if !ok {
		return
	}
	if !requirePrivilege(c, member, model.RoleAdmin) {
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ActiveApproach != nil {
		if !req.ActiveApproach.Valid() {
			resputil.BadRequestError(c, "unknown approach")
			return
		}
		updates["active_approach"] = *req.ActiveApproach
	}
	if req.DefaultTags != nil {
		updates["default_tags"] = datatypes.JSONSlice[string](*req.DefaultTags)
	}
	if req.Settings != nil {
		updates["settings"] = datatypes.NewJSONType(*req.Settings)
	}
	if len(updates) == 0 {
		resputil.BadRequestError(c, "no fields to update")
		return
	}

	if err := mgr.db.WithContext(c).Model(workspace).Updates(updates).Error; err != nil {
		resputil.InternalError(c, err, "failed to update workspace")
		return
	}

	memberCount, err := mgr.countMembers(c, workspace.ID)
	if err != nil {
		resputil.InternalError(c, err, "failed to count members")
		return
	}

	mgr.cache.Invalidate(workspaceListTag)
	resputil.Success(c, WorkspaceResp{
		Workspace:   *workspace,
		CallerRole:  member.Role,
		MemberCount: memberCount,
	})
}

// Delete godoc
//
//	@Summary		Delete a workspace
//	@Description	Only the literal owner may delete; tasks, views and memberships go with it
//	@Tags			Workspace
//	@Produce		json
//	@Security		Bearer
//	@Param			workspace	path		string	true	"workspace id"
//	@Success		200			{object}	resputil.Response[string]
//	@Failure		403			{object}	resputil.Response[any]	"caller is not the owner"
//	@Router			/v1/workspaces/{workspace} [delete]
func (mgr *WorkspaceMgr) Delete(c *gin.Context) {
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
	// The role grid does not apply here: deletion is reserved for the user
	// recorded as owner, an admin-role member included is rejected.
	if workspace.OwnerUID != token.UserID {
		resputil.Error(c, "Only the owner can delete a workspace", resputil.PermissionDenied)
		return
	}

	err := mgr.db.WithContext(c).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("workspace_id = ?", workspace.ID).Delete(&model.Subtask{}).Error; err != nil {
			return err
		}
		if err := tx.Where("workspace_id = ?", workspace.ID).Delete(&model.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("workspace_id = ?", workspace.ID).Delete(&model.TaskView{}).Error; err != nil {
			return err
		}
		if err := tx.Where("workspace_id = ?", workspace.ID).Delete(&model.WorkspaceMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(workspace).Error
	})
	if err != nil {
		resputil.InternalError(c, err, "failed to delete workspace")
		return
	}

	mgr.cache.Invalidate(workspaceListTag, taskListTag(workspace.ID))
	resputil.Success(c, "deleted")
}

type (
	MemberURI struct {
		WorkspaceID string `uri:"workspace" binding:"required"`
		UserID      string `uri:"uid" binding:"required"`
	}

	AddMemberReq struct {
		UserID string     `json:"userId" binding:"required"`
		Role   model.Role `json:"role" binding:"required"`
	}

	UpdateMemberReq struct {
		Role model.Role `json:"role" binding:"required"`
	}

	MemberResp struct {
		UserID      string     `json:"userId"`
		DisplayName string     `json:"displayName"`
		Email       string     `json:"email"`
		Role        model.Role `json:"role"`
	}
)

// ListMembers godoc
//
//	@Summary	List workspace members with their profiles
//	@Tags		Workspace
//	@Produce	json
//	@Security	Bearer
//	@Param		workspace	path		string	true	"workspace id"
//	@Success	200			{object}	resputil.Response[[]MemberResp]
//	@Router		/v1/workspaces/{workspace}/members [get]
func (mgr *WorkspaceMgr) ListMembers(c *gin.Context) {
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

	var members []model.WorkspaceMember
	if err := mgr.db.WithContext(c).Where("workspace_id = ?", workspace.ID).Find(&members).Error; err != nil {
		resputil.InternalError(c, err, "failed to list members")
		return
	}

	ids := lo.Map(members, func(m model.WorkspaceMember, _ int) string { return m.UserID })
	var users []model.User
	if err := mgr.db.WithContext(c).Where("uid IN ?", ids).Find(&users).Error; err != nil {
		resputil.InternalError(c, err, "failed to load member profiles")
		return
	}
	profiles := lo.SliceToMap(users, func(u model.User) (string, model.User) { return u.UID, u })

	resp := lo.Map(members, func(m model.WorkspaceMember, _ int) MemberResp {
		u := profiles[m.UserID]
		return MemberResp{
			UserID:      m.UserID,
			DisplayName: u.DisplayName,
			Email:       u.Email,
			Role:        m.Role,
		}
	})
	resputil.Success(c, resp)
}

// AddMember godoc
//
//	@Summary		Add a user to the workspace
//	@Description	Managers can always invite; plain members only when the settings allow it. The granted role may not exceed the caller's own and owner is never grantable
//	@Tags			Workspace
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			workspace	path		string			true	"workspace id"
//	@Param			data		body		AddMemberReq	true	"user and role"
//	@Success		200			{object}	resputil.Response[model.WorkspaceMember]
//	@Failure		403			{object}	resputil.Response[any]	"caller may not invite or grants too much"
//	@Router			/v1/workspaces/{workspace}/members [post]
func (mgr *WorkspaceMgr) AddMember(c *gin.Context) {
	var uri WorkspaceURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	var req AddMemberReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	token := util.GetToken(c)

	workspace, member, ok := resolveMembership(c, mgr.db, uri.WorkspaceID, token.UserID)
	if !ok {
		return
	}

	minInviteRole := model.RoleManager
	if workspace.Settings.Data().AllowMemberInvites {
		minInviteRole = model.RoleMember
	}
	if !requirePrivilege(c, member, minInviteRole) {
		return
	}
	if req.Role >= model.RoleOwner || req.Role > member.Role {
		resputil.Error(c, "Cannot grant a role above your own", resputil.PermissionDenied)
		return
	}

	var user model.User
	if err := mgr.db.WithContext(c).Where("uid = ?", req.UserID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resputil.Error(c, "User not found", resputil.NotFound)
		} else {
			resputil.InternalError(c, err, "failed to load user")
		}
		return
	}

	newMember := model.WorkspaceMember{
		WorkspaceID: workspace.ID,
		UserID:      req.UserID,
		Role:        req.Role,
	}
	err := mgr.db.WithContext(c).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "workspace_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"role"}),
	}).Create(&newMember).Error
	if err != nil {
		resputil.InternalError(c, err, "failed to add member")
		return
	}

	if err := mgr.alerter.MemberAddedAlert(c, &user, workspace, req.Role); err != nil {
		logutils.Log.Errorf("member added alert: %v", err)
	}

	mgr.cache.Invalidate(workspaceListTag)
	resputil.Success(c, newMember)
}

// UpdateMember godoc
//
//	@Summary		Change a member's role
//	@Description	Requires a manager-level role; the owner's row is immutable and the new role may not exceed the caller's own
//	@Tags			Workspace
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			workspace	path		string			true	"workspace id"
//	@Param			uid			path		string			true	"member user id"
//	@Param			data		body		UpdateMemberReq	true	"new role"
//	@Success		200			{object}	resputil.Response[model.WorkspaceMember]
//	@Router			/v1/workspaces/{workspace}/members/{uid} [put]
func (mgr *WorkspaceMgr) UpdateMember(c *gin.Context) {
	var uri MemberURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	var req UpdateMemberReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	token := util.GetToken(c)

	workspace, member, ok := resolveMembership(c, mgr.db, uri.WorkspaceID, token.UserID)
	if !ok {
		return
	}
	if !requirePrivilege(c, member, model.RoleManager) {
		return
	}
	if uri.UserID == workspace.OwnerUID {
		resputil.Error(c, "The owner's role cannot be changed", resputil.PermissionDenied)
		return
	}
	if req.Role >= model.RoleOwner || req.Role > member.Role {
		resputil.Error(c, "Cannot grant a role above your own", resputil.PermissionDenied)
		return
	}

	var target model.WorkspaceMember
	err := mgr.db.WithContext(c).
		Where("workspace_id = ? AND user_id = ?", workspace.ID, uri.UserID).
		First(&target).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resputil.Error(c, "Member not found", resputil.NotFound)
		} else {
			resputil.InternalError(c, err, "failed to load member")
		}
		return
	}

	if err := mgr.db.WithContext(c).Model(&target).Update("role", req.Role).Error; err != nil {
		resputil.InternalError(c, err, "failed to update member")
		return
	}
	resputil.Success(c, target)
}

// RemoveMember godoc
//
//	@Summary		Remove a member
//	@Description	Managers can remove others, anyone can leave on their own; the owner cannot be removed
//	@Tags			Workspace
//	@Produce		json
//	@Security		Bearer
//	@Param			workspace	path		string	true	"workspace id"
//	@Param			uid			path		string	true	"member user id"
//	@Success		200			{object}	resputil.Response[string]
//	@Router			/v1/workspaces/{workspace}/members/{uid} [delete]
func (mgr *WorkspaceMgr) RemoveMember(c *gin.Context) {
	var uri MemberURI
	if err := c.ShouldBindUri(&uri); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	token := util.GetToken(c)

	workspace, member, ok := resolveMembership(c, mgr.db, uri.WorkspaceID, token.UserID)
	if !ok {
		return
	}
	if uri.UserID == workspace.OwnerUID {
		resputil.Error(c, "The owner cannot be removed", resputil.PermissionDenied)
		return
	}
	selfLeave := uri.UserID == token.UserID
	if !selfLeave && !requirePrivilege(c, member, model.RoleManager) {
		return
	}

	res := mgr.db.WithContext(c).
		Where("workspace_id = ? AND user_id = ?", workspace.ID, uri.UserID).
		Delete(&model.WorkspaceMember{})
	if res.Error != nil {
		resputil.InternalError(c, res.Error, "failed to remove member")
		return
	}
	if res.RowsAffected == 0 {
		resputil.Error(c, "Member not found", resputil.NotFound)
		return
	}

	mgr.cache.Invalidate(workspaceListTag)
	resputil.Success(c, "removed")
}

// ListAll godoc
//
//	@Summary	List every workspace (operators only)
//	@Tags		Workspace
//	@Produce	json
//	@Security	Bearer
//	@Success	200	{object}	resputil.Response[[]model.Workspace]
//	@Router		/v1/admin/workspaces [get]
func (mgr *WorkspaceMgr) ListAll(c *gin.Context) {
	var workspaces []model.Workspace
	if err := mgr.db.WithContext(c).Find(&workspaces).Error; err != nil {
		resputil.InternalError(c, err, "failed to list workspaces")
		return
	}
	resputil.Success(c, workspaces)
}
