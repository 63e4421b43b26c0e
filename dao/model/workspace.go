package model

import (
	"bytes"
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Workspace is a named container scoping tasks and memberships, either
// personal or team-oriented.
type Workspace struct {
	ID             string                                `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name           string                                `gorm:"type:varchar(64);not null" json:"name"`
	Description    *string                               `gorm:"type:varchar(512)" json:"description"`
	OwnerUID       string                                `gorm:"type:varchar(36);not null;index" json:"ownerUid"`
	IsPersonal     bool                                  `gorm:"not null" json:"isPersonal"`
	TeamID         *string                               `gorm:"type:varchar(36)" json:"teamId"`
	ActiveApproach Approach                              `gorm:"type:varchar(16);not null" json:"activeApproach"`
	DefaultTags    datatypes.JSONSlice[string]           `json:"defaultTags"`
	Settings       datatypes.JSONType[WorkspaceSettings] `json:"settings"`
	CreatedAt      time.Time                             `json:"createdAt"`
	UpdatedAt      time.Time                             `json:"updatedAt"`

	Members []WorkspaceMember `gorm:"foreignKey:WorkspaceID;references:ID" json:"-"`
}

// WorkspaceMember grants a user a role within a workspace. The composite
// unique index keeps at most one row per (workspace, user) pair; creation
// goes through an upsert keyed on it.
type WorkspaceMember struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	WorkspaceID string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_workspace_user" json:"workspaceId"`
	UserID      string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_workspace_user" json:"userId"`
	Role        Role      `gorm:"not null" json:"role"`
	JoinedAt    time.Time `gorm:"autoCreateTime" json:"joinedAt"`
}

// WorkspaceSettings is the fixed set of recognized workspace options. The
// original stored an open key-value map; unknown keys are rejected here so a
// typo cannot silently become dead configuration.
type WorkspaceSettings struct {
	AllowMembersToCreateTasks bool           `json:"allowMembersToCreateTasks"`
	AllowMemberInvites        bool           `json:"allowMemberInvites"`
	TaskVisibility            TaskVisibility `json:"taskVisibility"`
	Timezone                  string         `json:"timezone"`
}

func DefaultWorkspaceSettings() WorkspaceSettings {
	return WorkspaceSettings{
		AllowMembersToCreateTasks: true,
		AllowMemberInvites:        true,
		TaskVisibility:            TaskVisibilityAll,
		Timezone:                  "UTC",
	}
}

func (s *WorkspaceSettings) UnmarshalJSON(data []byte) error {
	type settings WorkspaceSettings // drop methods to avoid recursion
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var parsed settings
	if err := dec.Decode(&parsed); err != nil {
		return err
	}
	*s = WorkspaceSettings(parsed)
	return nil
}
