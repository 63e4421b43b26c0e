// Package gamify holds the XP and level arithmetic of the motivational
// layer. Completing tasks and pomodoro sessions credits XP; levels follow a
// geometric curve (100 XP for level 2, then x1.5 per level).
package gamify

const (
	XPPerTask     = 10
	XPPerPomodoro = 5
	XPBonusStreak = 5

	baseXPForLevel = 100
	xpMultiplier   = 1.5
)

// XPForLevel returns the XP needed to advance from the given level to the
// next one.
func XPForLevel(level int) int {
	required := float64(baseXPForLevel)
	for l := 2; l < level+1; l++ {
		required *= xpMultiplier
	}
	return int(required)
}

// LevelForXP maps a total XP amount to a level. Level 1 starts at 0 XP.
func LevelForXP(totalXP int) int {
	level := 1
	remaining := totalXP
	for {
		need := XPForLevel(level)
		if remaining < need {
			return level
		}
		remaining -= need
		level++
	}
}

// Progress describes how far into the current level a user is.
type Progress struct {
	Level          int `json:"level"`
	CurrentLevelXP int `json:"currentLevelXP"`
	NextLevelXP    int `json:"nextLevelXP"`
	Percent        int `json:"percent"`
}

func ProgressForXP(totalXP int) Progress {
	level := 1
	remaining := totalXP
	for {
		need := XPForLevel(level)
		if remaining < need {
			return Progress{
				Level:          level,
				CurrentLevelXP: remaining,
				NextLevelXP:    need,
				Percent:        remaining * 100 / need,
			}
		}
		remaining -= need
		level++
	}
}
