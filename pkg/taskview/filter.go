// Package taskview is the pure filtering and sorting engine behind task and
// workspace listings. Every function returns a fresh slice and never mutates
// its input, so a cached collection can be re-filtered safely.
package taskview

import (
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/BUka228/ProgressQuestWeb/dao/model"
)

// Assignee sentinels accepted by FilterSpec.Assignee.
const (
	AssigneeMe         = "me"
	AssigneeUnassigned = "unassigned"
)

// FilterSpec is the predicate for task listings. Zero-valued fields do not
// constrain the result.
type FilterSpec struct {
	Status      []model.TaskStatus
	Priority    []model.TaskPriority
	TagsInclude []string // task must carry at least one
	TagsExclude []string // task must carry none
	Assignee    *string  // exact uid, or the "me"/"unassigned" sentinels
	CallerUID   string   // resolves the "me" sentinel
	Search      string   // case-insensitive substring over title+description
	DueStart    *time.Time
	DueEnd      *time.Time
}

// Filter returns the tasks matching every constraint of the spec, in input
// order.
func Filter(tasks []model.Task, spec FilterSpec) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for i := range tasks {
		if matches(&tasks[i], &spec) {
			out = append(out, tasks[i])
		}
	}
	return out
}

func matches(t *model.Task, spec *FilterSpec) bool {
	if len(spec.Status) > 0 && !lo.Contains(spec.Status, t.Status) {
		return false
	}
	if len(spec.Priority) > 0 && !lo.Contains(spec.Priority, t.Priority) {
		return false
	}
	if len(spec.TagsInclude) > 0 && !lo.Some(t.Tags, spec.TagsInclude) {
		return false
	}
	if len(spec.TagsExclude) > 0 && lo.Some(t.Tags, spec.TagsExclude) {
		return false
	}
	if spec.Assignee != nil && !matchesAssignee(t, spec) {
		return false
	}
	if spec.Search != "" && !matchesSearch(t, spec.Search) {
		return false
	}
	if spec.DueStart != nil || spec.DueEnd != nil {
		if t.DueDate == nil {
			return false
		}
		if spec.DueStart != nil && t.DueDate.Before(*spec.DueStart) {
			return false
		}
		if spec.DueEnd != nil && t.DueDate.After(*spec.DueEnd) {
			return false
		}
	}
	return true
}

func matchesAssignee(t *model.Task, spec *FilterSpec) bool {
	switch *spec.Assignee {
	case AssigneeUnassigned:
		return t.AssigneeUID == nil
	case AssigneeMe:
		return t.AssigneeUID != nil && *t.AssigneeUID == spec.CallerUID
	default:
		return t.AssigneeUID != nil && *t.AssigneeUID == *spec.Assignee
	}
}

func matchesSearch(t *model.Task, search string) bool {
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(t.Title), needle) {
		return true
	}
	return t.Description != nil && strings.Contains(strings.ToLower(*t.Description), needle)
}

// WorkspaceFilter is the workspace-listing counterpart: text search over
// name+description plus a default-tag intersection.
type WorkspaceFilter struct {
	Search string
	Tags   []string // workspace must share at least one default tag
}

func FilterWorkspaces(workspaces []model.Workspace, spec WorkspaceFilter) []model.Workspace {
	out := make([]model.Workspace, 0, len(workspaces))
	for i := range workspaces {
		if matchesWorkspace(&workspaces[i], &spec) {
			out = append(out, workspaces[i])
		}
	}
	return out
}

func matchesWorkspace(w *model.Workspace, spec *WorkspaceFilter) bool {
	if spec.Search != "" {
		needle := strings.ToLower(spec.Search)
		inName := strings.Contains(strings.ToLower(w.Name), needle)
		inDesc := w.Description != nil && strings.Contains(strings.ToLower(*w.Description), needle)
		if !inName && !inDesc {
			return false
		}
	}
	if len(spec.Tags) > 0 && !lo.Some(w.DefaultTags, spec.Tags) {
		return false
	}
	return true
}
