package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	. "github.com/bytedance/mockey"
	. "github.com/smartystreets/goconvey/convey"
	"gorm.io/gorm"

	"github.com/BUka228/ProgressQuestWeb/dao/model"
	"github.com/BUka228/ProgressQuestWeb/internal/resputil"
	"github.com/BUka228/ProgressQuestWeb/pkg/listcache"
)

func TestWorkspaceRespShape(t *testing.T) {
	Convey("a workspace payload always carries the caller's role", t, func() {
		raw, err := json.Marshal(WorkspaceResp{
			Workspace:   model.Workspace{ID: "w1", Name: "Quest Log"},
			CallerRole:  model.RoleOwner,
			MemberCount: 3,
		})
		So(err, ShouldBeNil)

		var payload map[string]any
		So(json.Unmarshal(raw, &payload), ShouldBeNil)
		So(payload, ShouldContainKey, "callerRole")
		So(payload["callerRole"], ShouldEqual, "owner")
		So(payload["memberCount"], ShouldEqual, float64(3))
		So(payload["id"], ShouldEqual, "w1")
	})
}

func TestAttachCallerRoles(t *testing.T) {
	Convey("each workspace is zipped with the caller's role and its member count", t, func() {
		workspaces := []model.Workspace{{ID: "w1"}, {ID: "w2"}}
		roles := map[string]model.Role{"w1": model.RoleOwner, "w2": model.RoleViewer}
		counts := map[string]int64{"w1": 3, "w2": 1}

		resp := attachCallerRoles(workspaces, roles, counts)

		So(resp, ShouldHaveLength, 2)
		So(resp[0].ID, ShouldEqual, "w1")
		So(resp[0].CallerRole, ShouldEqual, model.RoleOwner)
		So(resp[0].MemberCount, ShouldEqual, 3)
		So(resp[1].CallerRole, ShouldEqual, model.RoleViewer)
		So(resp[1].MemberCount, ShouldEqual, 1)
	})

	Convey("an empty listing stays an empty slice", t, func() {
		So(attachCallerRoles(nil, nil, nil), ShouldHaveLength, 0)
	})
}

func TestCreateWorkspaceResponse(t *testing.T) {
	PatchConvey("the creator comes back as owner of a one-member workspace", t, func() {
		db := &gorm.DB{}
		Mock((*gorm.DB).WithContext).Return(db).Build()
		Mock((*gorm.DB).Transaction).Return(nil).Build()

		mgr := &WorkspaceMgr{name: "workspaces", db: db, cache: listcache.New(time.Minute)}
		c, w := authedContext("alice", `{"name":"Quest Log"}`)
		mgr.Create(c)

		So(w.Code, ShouldEqual, http.StatusOK)
		var body struct {
			Code resputil.ErrorCode `json:"code"`
			Data map[string]any     `json:"data"`
		}
		So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
		So(body.Code, ShouldEqual, resputil.OK)
		So(body.Data["callerRole"], ShouldEqual, "owner")
		So(body.Data["memberCount"], ShouldEqual, float64(1))
		So(body.Data["name"], ShouldEqual, "Quest Log")
	})
}
