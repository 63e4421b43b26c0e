package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	. "github.com/bytedance/mockey"
	"github.com/gin-gonic/gin"
	. "github.com/smartystreets/goconvey/convey"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/BUka228/ProgressQuestWeb/dao/model"
	"github.com/BUka228/ProgressQuestWeb/internal/resputil"
)

func TestSubtasks(t *testing.T) {
	workspace := &model.Workspace{
		ID:       "w1",
		OwnerUID: "alice",
		Settings: datatypes.NewJSONType(model.DefaultWorkspaceSettings()),
	}
	task := &model.Task{ID: "t1", WorkspaceID: "w1", CreatorUID: "alice"}
	taskParams := []gin.Param{
		{Key: "workspace", Value: "w1"},
		{Key: "id", Value: "t1"},
	}

	PatchConvey("creating a subtask attaches it to the parent task", t, func() {
		owner := &model.WorkspaceMember{WorkspaceID: "w1", UserID: "alice", Role: model.RoleOwner}
		Mock(resolveMembership).Return(workspace, owner, true).Build()
		Mock((*TaskMgr).loadTask).Return(task, true).Build()

		db := &gorm.DB{}
		var created model.Subtask
		Mock((*gorm.DB).WithContext).Return(db).Build()
		Mock((*gorm.DB).Create).To(func(d *gorm.DB, value any) *gorm.DB {
			created = *(value.(*model.Subtask))
			return d
		}).Build()

		mgr := &TaskMgr{name: "workspaces", db: db}
		c, w := authedContext("alice", `{"title":"write outline"}`, taskParams...)
		mgr.CreateSubtask(c)

		So(w.Code, ShouldEqual, http.StatusOK)
		So(created.ID, ShouldNotBeEmpty)
		So(created.TaskID, ShouldEqual, "t1")
		So(created.WorkspaceID, ShouldEqual, "w1")
		So(created.Title, ShouldEqual, "write outline")
		So(created.Completed, ShouldBeFalse)

		var body struct {
			Code resputil.ErrorCode `json:"code"`
			Data model.Subtask      `json:"data"`
		}
		So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
		So(body.Code, ShouldEqual, resputil.OK)
		So(body.Data.Title, ShouldEqual, "write outline")
	})

	PatchConvey("viewers cannot manage subtasks", t, func() {
		viewer := &model.WorkspaceMember{WorkspaceID: "w1", UserID: "eve", Role: model.RoleViewer}
		Mock(resolveMembership).Return(workspace, viewer, true).Build()
		Mock((*TaskMgr).loadTask).Return(task, true).Build()

		creates := 0
		Mock((*gorm.DB).Create).To(func(d *gorm.DB, _ any) *gorm.DB {
			creates++
			return d
		}).Build()

		mgr := &TaskMgr{name: "workspaces", db: &gorm.DB{}}
		c, w := authedContext("eve", `{"title":"sneak in"}`, taskParams...)
		mgr.CreateSubtask(c)

		So(creates, ShouldEqual, 0)
		So(w.Code, ShouldEqual, http.StatusForbidden)
		So(decodeEnvelope(w).Code, ShouldEqual, resputil.PermissionDenied)
	})

	PatchConvey("deleting a missing subtask reports NotFound", t, func() {
		owner := &model.WorkspaceMember{WorkspaceID: "w1", UserID: "alice", Role: model.RoleOwner}
		Mock(resolveMembership).Return(workspace, owner, true).Build()
		Mock((*TaskMgr).loadTask).Return(task, true).Build()

		db := &gorm.DB{}
		Mock((*gorm.DB).WithContext).Return(db).Build()
		Mock((*gorm.DB).Where).Return(db).Build()
		Mock((*gorm.DB).Delete).To(func(d *gorm.DB, _ any, _ ...any) *gorm.DB {
			d.RowsAffected = 0
			return d
		}).Build()

		mgr := &TaskMgr{name: "workspaces", db: db}
		params := append(append([]gin.Param{}, taskParams...), gin.Param{Key: "subtask", Value: "missing"})
		c, w := authedContext("alice", "", params...)
		mgr.DeleteSubtask(c)

		So(w.Code, ShouldEqual, http.StatusNotFound)
		So(decodeEnvelope(w).Code, ShouldEqual, resputil.NotFound)
	})
}
