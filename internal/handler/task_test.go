package handler

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"gorm.io/datatypes"
	"k8s.io/utils/ptr"

	"github.com/BUka228/ProgressQuestWeb/dao/model"
)

func TestCanEditTask(t *testing.T) {
	task := &model.Task{
		ID:          "t1",
		CreatorUID:  "alice",
		AssigneeUID: ptr.To("bob"),
	}

	Convey("editors and above edit everything", t, func() {
		So(canEditTask(task, &model.WorkspaceMember{Role: model.RoleEditor}, "carol"), ShouldBeTrue)
		So(canEditTask(task, &model.WorkspaceMember{Role: model.RoleOwner}, "carol"), ShouldBeTrue)
	})

	Convey("members edit what they created or hold", t, func() {
		member := &model.WorkspaceMember{Role: model.RoleMember}
		So(canEditTask(task, member, "alice"), ShouldBeTrue)
		So(canEditTask(task, member, "bob"), ShouldBeTrue)
		So(canEditTask(task, member, "carol"), ShouldBeFalse)
	})

	Convey("viewers edit nothing", t, func() {
		So(canEditTask(task, &model.WorkspaceMember{Role: model.RoleViewer}, "alice"), ShouldBeFalse)
	})
}

func TestRestrictVisibility(t *testing.T) {
	tasks := []model.Task{
		{ID: "t1", CreatorUID: "alice"},
		{ID: "t2", CreatorUID: "bob", AssigneeUID: ptr.To("alice")},
		{ID: "t3", CreatorUID: "bob"},
	}

	workspaceWith := func(visibility model.TaskVisibility) *model.Workspace {
		settings := model.DefaultWorkspaceSettings()
		settings.TaskVisibility = visibility
		return &model.Workspace{
			ID:       "w1",
			Settings: datatypes.NewJSONType(settings),
		}
	}

	Convey("with 'all' visibility everyone sees everything", t, func() {
		ws := workspaceWith(model.TaskVisibilityAll)
		member := &model.WorkspaceMember{Role: model.RoleViewer}
		So(restrictVisibility(tasks, ws, member, "alice"), ShouldHaveLength, 3)
	})

	Convey("with 'assigned' visibility plain members see their own tasks only", t, func() {
		ws := workspaceWith(model.TaskVisibilityAssigned)
		member := &model.WorkspaceMember{Role: model.RoleMember}
		visible := restrictVisibility(tasks, ws, member, "alice")
		So(visible, ShouldHaveLength, 2)
		So(visible[0].ID, ShouldEqual, "t1")
		So(visible[1].ID, ShouldEqual, "t2")
	})

	Convey("editors are exempt from the visibility restriction", t, func() {
		ws := workspaceWith(model.TaskVisibilityAssigned)
		member := &model.WorkspaceMember{Role: model.RoleEditor}
		So(restrictVisibility(tasks, ws, member, "alice"), ShouldHaveLength, 3)
	})
}

func TestSameDay(t *testing.T) {
	Convey("sameDay compares calendar days in UTC", t, func() {
		a := time.Date(2024, 8, 20, 23, 59, 0, 0, time.UTC)
		b := time.Date(2024, 8, 20, 0, 1, 0, 0, time.UTC)
		c := time.Date(2024, 8, 21, 0, 1, 0, 0, time.UTC)
		So(sameDay(a, b), ShouldBeTrue)
		So(sameDay(a, c), ShouldBeFalse)
	})
}
