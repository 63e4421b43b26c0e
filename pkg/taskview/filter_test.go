package taskview

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"k8s.io/utils/ptr"

	"github.com/BUka228/ProgressQuestWeb/dao/model"
)

func sampleTasks() []model.Task {
	due := time.Date(2024, 8, 20, 12, 0, 0, 0, time.UTC)
	return []model.Task{
		{
			ID:          "t1",
			Title:       "Write release notes",
			Status:      model.StatusTodo,
			Priority:    model.PriorityHigh,
			CreatorUID:  "alice",
			AssigneeUID: ptr.To("alice"),
			Tags:        []string{"docs", "release"},
			DueDate:     &due,
		},
		{
			ID:          "t2",
			Title:       "Fix login redirect",
			Description: ptr.To("broken after the oauth change"),
			Status:      model.StatusInProgress,
			Priority:    model.PriorityCritical,
			CreatorUID:  "bob",
			AssigneeUID: ptr.To("bob"),
			Tags:        []string{"bug"},
		},
		{
			ID:         "t3",
			Title:      "Plan next sprint",
			Status:     model.StatusDone,
			Priority:   model.PriorityLow,
			CreatorUID: "alice",
			Tags:       []string{"planning"},
		},
	}
}

func TestFilter(t *testing.T) {
	tasks := sampleTasks()

	Convey("an empty spec keeps everything in input order", t, func() {
		out := Filter(tasks, FilterSpec{})
		So(out, ShouldHaveLength, 3)
		So(out[0].ID, ShouldEqual, "t1")
		So(out[2].ID, ShouldEqual, "t3")
	})

	Convey("status and priority are OR within the field, AND across fields", t, func() {
		out := Filter(tasks, FilterSpec{
			Status: []model.TaskStatus{model.StatusTodo, model.StatusInProgress},
		})
		So(out, ShouldHaveLength, 2)

		out = Filter(tasks, FilterSpec{
			Status:   []model.TaskStatus{model.StatusTodo, model.StatusInProgress},
			Priority: []model.TaskPriority{model.PriorityCritical},
		})
		So(out, ShouldHaveLength, 1)
		So(out[0].ID, ShouldEqual, "t2")
	})

	Convey("tag include needs one match, exclude vetoes", t, func() {
		out := Filter(tasks, FilterSpec{TagsInclude: []string{"docs", "planning"}})
		So(out, ShouldHaveLength, 2)

		out = Filter(tasks, FilterSpec{TagsExclude: []string{"bug"}})
		So(out, ShouldHaveLength, 2)
		So(out[0].ID, ShouldEqual, "t1")
		So(out[1].ID, ShouldEqual, "t3")
	})

	Convey("assignee sentinels resolve against the caller", t, func() {
		out := Filter(tasks, FilterSpec{Assignee: ptr.To(AssigneeMe), CallerUID: "alice"})
		So(out, ShouldHaveLength, 1)
		So(out[0].ID, ShouldEqual, "t1")

		out = Filter(tasks, FilterSpec{Assignee: ptr.To(AssigneeUnassigned)})
		So(out, ShouldHaveLength, 1)
		So(out[0].ID, ShouldEqual, "t3")

		out = Filter(tasks, FilterSpec{Assignee: ptr.To("bob")})
		So(out, ShouldHaveLength, 1)
		So(out[0].ID, ShouldEqual, "t2")
	})

	Convey("search is case-insensitive over title and description", t, func() {
		out := Filter(tasks, FilterSpec{Search: "LOGIN"})
		So(out, ShouldHaveLength, 1)
		So(out[0].ID, ShouldEqual, "t2")

		out = Filter(tasks, FilterSpec{Search: "oauth"})
		So(out, ShouldHaveLength, 1)
		So(out[0].ID, ShouldEqual, "t2")
	})

	Convey("a due range drops tasks without a due date", t, func() {
		start := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 8, 31, 0, 0, 0, 0, time.UTC)
		out := Filter(tasks, FilterSpec{DueStart: &start, DueEnd: &end})
		So(out, ShouldHaveLength, 1)
		So(out[0].ID, ShouldEqual, "t1")
	})

	Convey("filtering twice with the same spec is idempotent", t, func() {
		spec := FilterSpec{Status: []model.TaskStatus{model.StatusTodo}}
		once := Filter(tasks, spec)
		twice := Filter(once, spec)
		So(twice, ShouldResemble, once)
	})

	Convey("the input slice is never mutated", t, func() {
		before := sampleTasks()
		_ = Filter(tasks, FilterSpec{Search: "sprint"})
		So(tasks, ShouldResemble, before)
	})
}

func TestFilterWorkspaces(t *testing.T) {
	workspaces := []model.Workspace{
		{ID: "w1", Name: "Home projects", DefaultTags: []string{"home"}},
		{ID: "w2", Name: "Team Phoenix", Description: ptr.To("backend work"), DefaultTags: []string{"work"}},
	}

	Convey("search matches name and description", t, func() {
		out := FilterWorkspaces(workspaces, WorkspaceFilter{Search: "phoenix"})
		So(out, ShouldHaveLength, 1)
		So(out[0].ID, ShouldEqual, "w2")

		out = FilterWorkspaces(workspaces, WorkspaceFilter{Search: "backend"})
		So(out, ShouldHaveLength, 1)
		So(out[0].ID, ShouldEqual, "w2")
	})

	Convey("tag filter intersects default tags", t, func() {
		out := FilterWorkspaces(workspaces, WorkspaceFilter{Tags: []string{"home", "garden"}})
		So(out, ShouldHaveLength, 1)
		So(out[0].ID, ShouldEqual, "w1")
	})
}
