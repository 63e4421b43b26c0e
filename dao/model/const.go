// Constants mapped to database columns.
// Gin rejects zero values for fields tagged as required, so the first value
// of every enum starts at iota + 1 and zero stays invalid.
package model

import (
	"encoding/json"
	"fmt"
)

// Role is a privilege level inside a workspace, ordered from the least to
// the most privileged. Comparisons go through HasPrivilege instead of ad hoc
// set membership checks. The platform-wide role of a user reuses the same
// type (RoleMember for regular users, RoleAdmin for operators).
type Role uint8

const (
	RoleViewer Role = iota + 1
	RoleMember
	RoleEditor
	RoleManager
	RoleAdmin
	RoleOwner
)

var roleNames = map[Role]string{
	RoleViewer:  "viewer",
	RoleMember:  "member",
	RoleEditor:  "editor",
	RoleManager: "manager",
	RoleAdmin:   "admin",
	RoleOwner:   "owner",
}

// HasPrivilege reports whether the role grants at least the privilege
// level of min.
func (r Role) HasPrivilege(min Role) bool {
	return r >= min
}

func (r Role) String() string {
	return roleNames[r]
}

// Role is stored as a small integer but travels as a string over the wire.
func (r Role) MarshalJSON() ([]byte, error) {
	name, ok := roleNames[r]
	if !ok {
		return nil, fmt.Errorf("unknown role %d", r)
	}
	return json.Marshal(name)
}

func (r *Role) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	role, err := ParseRole(name)
	if err != nil {
		return err
	}
	*r = role
	return nil
}

func ParseRole(name string) (Role, error) {
	for role, n := range roleNames {
		if n == name {
			return role, nil
		}
	}
	return 0, fmt.Errorf("unknown role %q", name)
}

// TaskStatus values match the wire format of the original clients.
type TaskStatus string

const (
	StatusTodo       TaskStatus = "TODO"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusDone       TaskStatus = "DONE"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow      TaskPriority = "LOW"
	PriorityMedium   TaskPriority = "MEDIUM"
	PriorityHigh     TaskPriority = "HIGH"
	PriorityCritical TaskPriority = "CRITICAL"
)

func (p TaskPriority) Valid() bool {
	return p.Rank() != 0
}

// Rank gives priorities a total order for sorting.
func (p TaskPriority) Rank() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	case PriorityCritical:
		return 4
	}
	return 0
}

// Approach is the organizational methodology active for a workspace.
type Approach string

const (
	ApproachCalendar   Approach = "CALENDAR"
	ApproachGTD        Approach = "GTD"
	ApproachKanban     Approach = "KANBAN"
	ApproachEisenhower Approach = "EISENHOWER"
)

// ApproachDefault is applied when a workspace is created without one.
const ApproachDefault = ApproachCalendar

func (a Approach) Valid() bool {
	switch a {
	case ApproachCalendar, ApproachGTD, ApproachKanban, ApproachEisenhower:
		return true
	}
	return false
}

// TaskVisibility controls which tasks plain members see in a workspace.
type TaskVisibility string

const (
	TaskVisibilityAll      TaskVisibility = "all"
	TaskVisibilityAssigned TaskVisibility = "assigned"
)

func (v TaskVisibility) Valid() bool {
	return v == TaskVisibilityAll || v == TaskVisibilityAssigned
}
