package taskview

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/BUka228/ProgressQuestWeb/dao/model"
)

func TestSortTasks(t *testing.T) {
	early := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2024, 8, 20, 0, 0, 0, 0, time.UTC)

	tasks := []model.Task{
		{ID: "a", Title: "banana", Priority: model.PriorityLow, DueDate: &late},
		{ID: "b", Title: "Apple", Priority: model.PriorityCritical},
		{ID: "c", Title: "cherry", Priority: model.PriorityLow, DueDate: &early},
	}

	Convey("sorting by priority ascending", t, func() {
		out := SortTasks(tasks, SortByPriority, Asc)
		So(out[0].ID, ShouldEqual, "a")
		So(out[1].ID, ShouldEqual, "c")
		So(out[2].ID, ShouldEqual, "b")
	})

	Convey("equal keys keep their input order in both directions", t, func() {
		asc := SortTasks(tasks, SortByPriority, Asc)
		So(asc[0].ID, ShouldEqual, "a") // a before c, as in the input
		So(asc[1].ID, ShouldEqual, "c")

		desc := SortTasks(tasks, SortByPriority, Desc)
		So(desc[0].ID, ShouldEqual, "b")
		So(desc[1].ID, ShouldEqual, "a")
		So(desc[2].ID, ShouldEqual, "c")
	})

	Convey("title sort ignores case", t, func() {
		out := SortTasks(tasks, SortByTitle, Asc)
		So(out[0].ID, ShouldEqual, "b")
		So(out[1].ID, ShouldEqual, "a")
		So(out[2].ID, ShouldEqual, "c")
	})

	Convey("tasks without a due date sort last ascending", t, func() {
		out := SortTasks(tasks, SortByDueDate, Asc)
		So(out[0].ID, ShouldEqual, "c")
		So(out[1].ID, ShouldEqual, "a")
		So(out[2].ID, ShouldEqual, "b")
	})

	Convey("an unknown field returns a copy in input order", t, func() {
		out := SortTasks(tasks, "nonsense", Asc)
		So(out, ShouldHaveLength, 3)
		So(out[0].ID, ShouldEqual, "a")
		So(out[2].ID, ShouldEqual, "c")
	})

	Convey("the input slice is never reordered", t, func() {
		_ = SortTasks(tasks, SortByTitle, Desc)
		So(tasks[0].ID, ShouldEqual, "a")
		So(tasks[1].ID, ShouldEqual, "b")
		So(tasks[2].ID, ShouldEqual, "c")
	})
}

func TestSortWorkspaces(t *testing.T) {
	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	workspaces := []model.Workspace{
		{ID: "w1", Name: "zeta", CreatedAt: older},
		{ID: "w2", Name: "Alpha", CreatedAt: newer},
	}

	Convey("name sort ignores case", t, func() {
		out := SortWorkspaces(workspaces, SortByName, Asc)
		So(out[0].ID, ShouldEqual, "w2")
	})

	Convey("createdAt descending puts the newest first", t, func() {
		out := SortWorkspaces(workspaces, SortByCreatedAt, Desc)
		So(out[0].ID, ShouldEqual, "w2")
	})
}
