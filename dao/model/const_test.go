package model

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRole(t *testing.T) {
	Convey("roles are ordered by privilege", t, func() {
		So(RoleOwner.HasPrivilege(RoleAdmin), ShouldBeTrue)
		So(RoleAdmin.HasPrivilege(RoleManager), ShouldBeTrue)
		So(RoleEditor.HasPrivilege(RoleEditor), ShouldBeTrue)
		So(RoleMember.HasPrivilege(RoleEditor), ShouldBeFalse)
		So(RoleViewer.HasPrivilege(RoleMember), ShouldBeFalse)
	})

	Convey("roles travel as strings over the wire", t, func() {
		data, err := json.Marshal(RoleEditor)
		So(err, ShouldBeNil)
		So(string(data), ShouldEqual, `"editor"`)

		var r Role
		So(json.Unmarshal([]byte(`"owner"`), &r), ShouldBeNil)
		So(r, ShouldEqual, RoleOwner)

		So(json.Unmarshal([]byte(`"king"`), &r), ShouldNotBeNil)
	})

	Convey("the zero role is invalid on both paths", t, func() {
		_, err := json.Marshal(Role(0))
		So(err, ShouldNotBeNil)

		_, err = ParseRole("")
		So(err, ShouldNotBeNil)
	})
}

func TestEnums(t *testing.T) {
	Convey("status validation", t, func() {
		So(StatusDone.Valid(), ShouldBeTrue)
		So(TaskStatus("CANCELLED").Valid(), ShouldBeFalse)
	})

	Convey("priority ranks give a total order", t, func() {
		So(PriorityLow.Rank(), ShouldBeLessThan, PriorityMedium.Rank())
		So(PriorityMedium.Rank(), ShouldBeLessThan, PriorityHigh.Rank())
		So(PriorityHigh.Rank(), ShouldBeLessThan, PriorityCritical.Rank())
		So(TaskPriority("URGENT").Valid(), ShouldBeFalse)
	})

	Convey("approach validation and default", t, func() {
		So(ApproachDefault, ShouldEqual, ApproachCalendar)
		So(ApproachKanban.Valid(), ShouldBeTrue)
		So(Approach("SCRUM").Valid(), ShouldBeFalse)
	})
}
