package model

import (
	"time"

	"gorm.io/datatypes"
)

type Task struct {
	ID          string                      `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Title       string                      `gorm:"type:varchar(128);not null" json:"title"`
	Description *string                     `gorm:"type:varchar(2048)" json:"description"`
	Status      TaskStatus                  `gorm:"type:varchar(16);not null;index" json:"status"`
	Priority    TaskPriority                `gorm:"type:varchar(16);not null" json:"priority"`
	DueDate     *time.Time                  `json:"dueDate"`
	CompletedAt *time.Time                  `json:"completedAt"`
	CreatorUID  string                      `gorm:"type:varchar(36);not null" json:"creatorUid"`
	AssigneeUID *string                     `gorm:"type:varchar(36);index" json:"assigneeUid"`
	WorkspaceID string                      `gorm:"type:varchar(36);not null;index" json:"workspaceId"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`

	PomodoroEstimatedCycles  *int `json:"pomodoroEstimatedCycles"`
	PomodoroEstimatedMinutes *int `json:"pomodoroEstimatedMinutes"`
	PomodoroCount            int  `gorm:"not null;default:0" json:"pomodoroCount"`

	ApproachParams *datatypes.JSONType[ApproachParams] `json:"approachParams"`
	OrderInList    int                                 `gorm:"not null;default:0" json:"orderInList"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ApproachParams is a tagged union: exactly the parameter set matching the
// workspace's active approach is expected to be present.
type ApproachParams struct {
	Calendar   *CalendarParams   `json:"calendar,omitempty"`
	Gtd        *GtdParams        `json:"gtd,omitempty"`
	Eisenhower *EisenhowerParams `json:"eisenhower,omitempty"`
	Frog       *FrogParams       `json:"frog,omitempty"`
}

type CalendarParams struct {
	EventID        *string `json:"eventId"`
	IsAllDay       bool    `json:"isAllDay"`
	RecurrenceRule *string `json:"recurrenceRule"`
}

type GtdParams struct {
	Context     *string `json:"context"`
	NextAction  bool    `json:"nextAction"`
	ProjectLink *string `json:"projectLink"`
	WaitingFor  *string `json:"waitingFor"`
}

type EisenhowerParams struct {
	Urgency    int `json:"urgency"`
	Importance int `json:"importance"`
}

type FrogParams struct {
	IsFrog     bool   `json:"isFrog"`
	Difficulty string `json:"difficulty"` // EASY, MEDIUM, HARD
}

// Subtask is a checklist item under a task. Toggling one completed does not
// feed the XP side effects; deleting the parent task does not cascade here,
// the workspace-level delete does.
type Subtask struct {
	ID          string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	TaskID      string `gorm:"type:varchar(36);not null;index" json:"taskId"`
	WorkspaceID string `gorm:"type:varchar(36);not null;index" json:"workspaceId"`
	Title       string `gorm:"type:varchar(128);not null" json:"title"`
	Completed   bool   `gorm:"not null;default:false" json:"completed"`
	OrderInList int    `gorm:"not null;default:0" json:"orderInList"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TaskView is a saved filter/sort configuration scoped to a workspace.
// Listing tasks by view id resolves the workspace and the stored spec.
type TaskView struct {
	ID          string                           `gorm:"primaryKey;type:varchar(36)" json:"id"`
	WorkspaceID string                           `gorm:"type:varchar(36);not null;index" json:"workspaceId"`
	Name        string                           `gorm:"type:varchar(64);not null" json:"name"`
	Filters     datatypes.JSONType[TaskViewSpec] `json:"filters"`
	CreatedAt   time.Time                        `json:"createdAt"`
	UpdatedAt   time.Time                        `json:"updatedAt"`
}

// TaskViewSpec mirrors the filter shape of the list endpoint so a view can
// be applied verbatim.
type TaskViewSpec struct {
	Status        []TaskStatus   `json:"status,omitempty"`
	Priority      []TaskPriority `json:"priority,omitempty"`
	TagsInclude   []string       `json:"tagsInclude,omitempty"`
	TagsExclude   []string       `json:"tagsExclude,omitempty"`
	Assignee      *string        `json:"assignee,omitempty"`
	Search        *string        `json:"search,omitempty"`
	DueStart      *time.Time     `json:"dueStart,omitempty"`
	DueEnd        *time.Time     `json:"dueEnd,omitempty"`
	SortBy        *string        `json:"sortBy,omitempty"`
	SortDirection *string        `json:"sortDirection,omitempty"`
}
