package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BUka228/ProgressQuestWeb/dao/model"
	"github.com/BUka228/ProgressQuestWeb/internal/resputil"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewMaintenanceMgr)
}

type MaintenanceMgr struct {
	name string
	db   *gorm.DB
}

func NewMaintenanceMgr(conf *RegisterConfig) Manager {
	return &MaintenanceMgr{
		name: "maintenance",
		db:   conf.DB,
	}
}

func (mgr *MaintenanceMgr) GetName() string { return mgr.name }

func (mgr *MaintenanceMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *MaintenanceMgr) RegisterProtected(_ *gin.RouterGroup) {}

func (mgr *MaintenanceMgr) RegisterAdmin(g *gin.RouterGroup) {
	g.GET("/records", mgr.ListRecords)
	g.DELETE("/records", mgr.DeleteRecords)
}

type ListRecordsReq struct {
	Name      string `form:"name"`
	Status    string `form:"status"`
	StartTime string `form:"startTime"`
	EndTime   string `form:"endTime"`
}

// ListRecords godoc
//
//	@Summary	List sweep execution records (operators only)
//	@Tags		Maintenance
//	@Produce	json
//	@Security	Bearer
//	@Param		name		query		string	false	"sweep name"
//	@Param		status		query		string	false	"Success or Failed"
//	@Param		startTime	query		string	false	"RFC3339 lower bound"
//	@Param		endTime		query		string	false	"RFC3339 upper bound"
//	@Success	200			{object}	resputil.Response[[]model.MaintenanceRecord]
//	@Router		/v1/admin/maintenance/records [get]
func (mgr *MaintenanceMgr) ListRecords(c *gin.Context) {
	var req ListRecordsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	tx := mgr.db.WithContext(c).Model(&model.MaintenanceRecord{})
	if req.Name != "" {
		tx = tx.Where("name = ?", req.Name)
	}
	if req.Status != "" {
		tx = tx.Where("status = ?", req.Status)
	}
	if req.StartTime != "" {
		t, err := time.Parse(time.RFC3339, req.StartTime)
		if err != nil {
			resputil.BadRequestError(c, "startTime must be RFC3339")
			return
		}
		tx = tx.Where("execute_time >= ?", t)
	}
	if req.EndTime != "" {
		t, err := time.Parse(time.RFC3339, req.EndTime)
		if err != nil {
			resputil.BadRequestError(c, "endTime must be RFC3339")
			return
		}
		tx = tx.Where("execute_time <= ?", t)
	}

	var records []model.MaintenanceRecord
	if err := tx.Order("execute_time DESC").Find(&records).Error; err != nil {
		resputil.InternalError(c, err, "failed to list maintenance records")
		return
	}
	resputil.Success(c, records)
}

type DeleteRecordsReq struct {
	Before string `form:"before" binding:"required"`
}

// DeleteRecords godoc
//
//	@Summary	Delete sweep records older than a point in time (operators only)
//	@Tags		Maintenance
//	@Produce	json
//	@Security	Bearer
//	@Param		before	query		string	true	"RFC3339 cutoff"
//	@Success	200		{object}	resputil.Response[int64]	"number of deleted records"
//	@Router		/v1/admin/maintenance/records [delete]
func (mgr *MaintenanceMgr) DeleteRecords(c *gin.Context) {
	var req DeleteRecordsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	cutoff, err := time.Parse(time.RFC3339, req.Before)
	if err != nil {
		resputil.BadRequestError(c, "before must be RFC3339")
		return
	}

	res := mgr.db.WithContext(c).
		Where("execute_time < ?", cutoff).
		Delete(&model.MaintenanceRecord{})
	if res.Error != nil {
		resputil.InternalError(c, res.Error, "failed to delete maintenance records")
		return
	}
	resputil.Success(c, res.RowsAffected)
}
