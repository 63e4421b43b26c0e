package model

import (
	"time"

	"gorm.io/datatypes"
)

// User is the basic entity of the system. The gamification counters are
// mutated as a side effect of completing tasks and pomodoro sessions.
type User struct {
	UID         string  `gorm:"primaryKey;type:varchar(36)" json:"uid"`
	Email       string  `gorm:"uniqueIndex;type:varchar(128);not null" json:"email"`
	DisplayName string  `gorm:"type:varchar(64);not null" json:"displayName"`
	Password    *string `gorm:"type:varchar(128)" json:"-"`
	Role        Role    `gorm:"not null" json:"role"` // platform role (member, admin)

	Level                  int        `gorm:"not null;default:1" json:"level"`
	XP                     int        `gorm:"not null;default:0" json:"xp"`
	StreakCount            int        `gorm:"not null;default:0" json:"streakCount"`
	TotalTasksCompleted    int        `gorm:"not null;default:0" json:"totalTasksCompleted"`
	TotalPomodoroCompleted int        `gorm:"not null;default:0" json:"totalPomodoroCompleted"`
	LastCompletedAt        *time.Time `json:"lastCompletedAt"`

	Preferences datatypes.JSONType[UserPreferences] `json:"preferences"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UserPreferences struct {
	Theme         string                  `json:"theme"`
	Language      string                  `json:"language"`
	Timezone      string                  `json:"timezone"`
	Notifications NotificationPreferences `json:"notifications"`
	Pomodoro      PomodoroPreferences     `json:"pomodoro"`
}

type NotificationPreferences struct {
	Email         bool `json:"email"`
	Achievements  bool `json:"achievements"`
	TaskReminders bool `json:"taskReminders"`
}

type PomodoroPreferences struct {
	WorkDuration       int `json:"workDuration"`       // minutes
	ShortBreakDuration int `json:"shortBreakDuration"` // minutes
	LongBreakDuration  int `json:"longBreakDuration"`  // minutes
	LongBreakInterval  int `json:"longBreakInterval"`
}

func DefaultUserPreferences() UserPreferences {
	return UserPreferences{
		Theme:    "system",
		Language: "en",
		Timezone: "UTC",
		Notifications: NotificationPreferences{
			Email:         true,
			Achievements:  true,
			TaskReminders: true,
		},
		Pomodoro: PomodoroPreferences{
			WorkDuration:       25,
			ShortBreakDuration: 5,
			LongBreakDuration:  15,
			LongBreakInterval:  4,
		},
	}
}
