package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	MaintenanceRecordStatusSuccess = "Success"
	MaintenanceRecordStatusFailed  = "Failed"
)

// MaintenanceRecord keeps one row per sweep execution so operators can audit
// what the nightly jobs actually did.
type MaintenanceRecord struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"type:varchar(64);not null;index" json:"name"`
	ExecuteTime time.Time      `gorm:"not null" json:"executeTime"`
	Status      string         `gorm:"type:varchar(16);not null" json:"status"`
	Message     string         `gorm:"type:varchar(256)" json:"message"`
	JobData     datatypes.JSON `json:"jobData"`
}
