package dao

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/BUka228/ProgressQuestWeb/dao/model"
)

// Migrate applies the schema migrations. The initial migration creates the
// whole schema via AutoMigrate; later structural changes get their own
// numbered entries so deployed databases can roll forward.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "202408260001",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(
					&model.User{},
					&model.Workspace{},
					&model.WorkspaceMember{},
					&model.Task{},
					&model.TaskView{},
					&model.MaintenanceRecord{},
				)
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(
					&model.MaintenanceRecord{},
					&model.TaskView{},
					&model.Task{},
					&model.WorkspaceMember{},
					&model.Workspace{},
					&model.User{},
				)
			},
		},
		{
			ID: "202409010001",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&model.Subtask{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(&model.Subtask{})
			},
		},
	})
	return m.Migrate()
}
