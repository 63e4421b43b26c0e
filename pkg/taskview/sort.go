package taskview

import (
	"sort"
	"strings"
	"time"

	"github.com/BUka228/ProgressQuestWeb/dao/model"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Task sort fields.
const (
	SortByTitle       = "title"
	SortByPriority    = "priority"
	SortByDueDate     = "dueDate"
	SortByCreatedAt   = "createdAt"
	SortByUpdatedAt   = "updatedAt"
	SortByStatus      = "status"
	SortByOrderInList = "orderInList"
)

// Workspace sort fields.
const (
	SortByName = "name"
)

// SortTasks returns a new slice ordered by the given field. The comparator
// is a strict weak order with ties broken by input position, so equal keys
// keep their original relative order. An unknown field leaves the order
// untouched (copy still returned).
func SortTasks(tasks []model.Task, field string, direction Direction) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)

	less := taskLess(field)
	if less == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		if direction == Desc {
			return less(&out[j], &out[i])
		}
		return less(&out[i], &out[j])
	})
	return out
}

func taskLess(field string) func(a, b *model.Task) bool {
	switch field {
	case SortByTitle:
		return func(a, b *model.Task) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	case SortByPriority:
		return func(a, b *model.Task) bool {
			return a.Priority.Rank() < b.Priority.Rank()
		}
	case SortByDueDate:
		return func(a, b *model.Task) bool {
			return timePtrBefore(a.DueDate, b.DueDate)
		}
	case SortByCreatedAt:
		return func(a, b *model.Task) bool {
			return a.CreatedAt.Before(b.CreatedAt)
		}
	case SortByUpdatedAt:
		return func(a, b *model.Task) bool {
			return a.UpdatedAt.Before(b.UpdatedAt)
		}
	case SortByStatus:
		return func(a, b *model.Task) bool {
			return statusRank(a.Status) < statusRank(b.Status)
		}
	case SortByOrderInList:
		return func(a, b *model.Task) bool {
			return a.OrderInList < b.OrderInList
		}
	}
	return nil
}

// Tasks without a due date sort after dated ones.
func timePtrBefore(a, b *time.Time) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return a.Before(*b)
	}
}

func statusRank(s model.TaskStatus) int {
	switch s {
	case model.StatusTodo:
		return 1
	case model.StatusInProgress:
		return 2
	case model.StatusDone:
		return 3
	}
	return 0
}

// SortWorkspaces orders a workspace listing by name, createdAt or updatedAt.
func SortWorkspaces(workspaces []model.Workspace, field string, direction Direction) []model.Workspace {
	out := make([]model.Workspace, len(workspaces))
	copy(out, workspaces)

	less := workspaceLess(field)
	if less == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		if direction == Desc {
			return less(&out[j], &out[i])
		}
		return less(&out[i], &out[j])
	})
	return out
}

func workspaceLess(field string) func(a, b *model.Workspace) bool {
	switch field {
	case SortByName:
		return func(a, b *model.Workspace) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	case SortByCreatedAt:
		return func(a, b *model.Workspace) bool {
			return a.CreatedAt.Before(b.CreatedAt)
		}
	case SortByUpdatedAt:
		return func(a, b *model.Workspace) bool {
			return a.UpdatedAt.Before(b.UpdatedAt)
		}
	}
	return nil
}
