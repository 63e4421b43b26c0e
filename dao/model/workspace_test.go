package model

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestWorkspaceSettings(t *testing.T) {
	Convey("known keys round-trip", t, func() {
		in := `{"allowMembersToCreateTasks":false,"taskVisibility":"assigned"}`
		var s WorkspaceSettings
		So(json.Unmarshal([]byte(in), &s), ShouldBeNil)
		So(s.AllowMembersToCreateTasks, ShouldBeFalse)
		So(s.TaskVisibility, ShouldEqual, TaskVisibilityAssigned)
	})

	Convey("unknown keys are rejected instead of silently dropped", t, func() {
		in := `{"allowMembersToCreateTasks":true,"allowGuestAccess":true}`
		var s WorkspaceSettings
		So(json.Unmarshal([]byte(in), &s), ShouldNotBeNil)
	})

	Convey("defaults are permissive and UTC", t, func() {
		s := DefaultWorkspaceSettings()
		So(s.AllowMembersToCreateTasks, ShouldBeTrue)
		So(s.AllowMemberInvites, ShouldBeTrue)
		So(s.TaskVisibility, ShouldEqual, TaskVisibilityAll)
		So(s.Timezone, ShouldEqual, "UTC")
	})
}
