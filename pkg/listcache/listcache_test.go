package listcache

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCache(t *testing.T) {
	Convey("Key is deterministic over operation and params", t, func() {
		So(Key("tasks", "w1"), ShouldEqual, "tasks?w1")
		So(Key("tasks", "w1", "done"), ShouldEqual, "tasks?w1&done")
		So(Key("tasks", "w1"), ShouldNotEqual, Key("tasks", "w2"))
	})

	Convey("Set then Get returns the stored value", t, func() {
		c := New(time.Minute)
		c.Set(Key("tasks", "w1"), []string{"a", "b"}, "workspace-tasks:w1")

		value, ok := c.Get(Key("tasks", "w1"))
		So(ok, ShouldBeTrue)
		So(value, ShouldResemble, []string{"a", "b"})

		_, ok = c.Get(Key("tasks", "w2"))
		So(ok, ShouldBeFalse)
	})

	Convey("entries expire after the TTL", t, func() {
		c := New(time.Millisecond)
		c.Set("k", 1)
		time.Sleep(5 * time.Millisecond)

		_, ok := c.Get("k")
		So(ok, ShouldBeFalse)
		So(c.Len(), ShouldEqual, 0)
	})

	Convey("Invalidate drops entries by tag and only those", t, func() {
		c := New(time.Minute)
		c.Set("a", 1, "workspace-tasks:w1")
		c.Set("b", 2, "workspace-tasks:w1", "workspaces")
		c.Set("c", 3, "workspace-tasks:w2")

		c.Invalidate("workspace-tasks:w1")

		_, ok := c.Get("a")
		So(ok, ShouldBeFalse)
		_, ok = c.Get("b")
		So(ok, ShouldBeFalse)
		_, ok = c.Get("c")
		So(ok, ShouldBeTrue)
	})

	Convey("Invalidate with no tags is a no-op", t, func() {
		c := New(time.Minute)
		c.Set("a", 1, "t")
		c.Invalidate()
		So(c.Len(), ShouldEqual, 1)
	})
}
