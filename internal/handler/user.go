package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/BUka228/ProgressQuestWeb/dao/model"
	"github.com/BUka228/ProgressQuestWeb/internal/resputil"
	"github.com/BUka228/ProgressQuestWeb/internal/util"
	"github.com/BUka228/ProgressQuestWeb/pkg/gamify"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewUserMgr)
}

type UserMgr struct {
	name string
	db   *gorm.DB
}

func NewUserMgr(conf *RegisterConfig) Manager {
	return &UserMgr{
		name: "users",
		db:   conf.DB,
	}
}

func (mgr *UserMgr) GetName() string { return mgr.name }

func (mgr *UserMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *UserMgr) RegisterProtected(g *gin.RouterGroup) {
	g.GET("/me", mgr.GetProfile)
	g.PUT("/me/preferences", mgr.UpdatePreferences)
}

func (mgr *UserMgr) RegisterAdmin(g *gin.RouterGroup) {
	g.GET("", mgr.ListUsers)
}

type ProfileResp struct {
	model.User
	Progress gamify.Progress `json:"progress"`
}

// GetProfile godoc
//
//	@Summary		Get the caller's profile
//	@Description	Profile plus the level progress derived from the XP total
//	@Tags			User
//	@Produce		json
//	@Security		Bearer
//	@Success		200	{object}	resputil.Response[ProfileResp]
//	@Router			/v1/users/me [get]
func (mgr *UserMgr) GetProfile(c *gin.Context) {
	token := util.GetToken(c)

	var user model.User
	if err := mgr.db.WithContext(c).Where("uid = ?", token.UserID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resputil.Error(c, "User not found", resputil.NotFound)
		} else {
			resputil.InternalError(c, err, "failed to load user")
		}
		return
	}

	resputil.Success(c, ProfileResp{
		User:     user,
		Progress: gamify.ProgressForXP(user.XP),
	})
}

// UpdatePreferences godoc
//
//	@Summary	Replace the caller's preferences
//	@Tags		User
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		data	body		model.UserPreferences	true	"full preferences object"
//	@Success	200		{object}	resputil.Response[model.UserPreferences]
//	@Router		/v1/users/me/preferences [put]
func (mgr *UserMgr) UpdatePreferences(c *gin.Context) {
	var prefs model.UserPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	token := util.GetToken(c)

	res := mgr.db.WithContext(c).Model(&model.User{}).
		Where("uid = ?", token.UserID).
		Update("preferences", datatypes.NewJSONType(prefs))
	if res.Error != nil {
		resputil.InternalError(c, res.Error, "failed to update preferences")
		return
	}
	if res.RowsAffected == 0 {
		resputil.Error(c, "User not found", resputil.NotFound)
		return
	}
	resputil.Success(c, prefs)
}

// ListUsers godoc
//
//	@Summary	List all users (operators only)
//	@Tags		User
//	@Produce	json
//	@Security	Bearer
//	@Success	200	{object}	resputil.Response[[]model.User]
//	@Router		/v1/admin/users [get]
func (mgr *UserMgr) ListUsers(c *gin.Context) {
	var users []model.User
	if err := mgr.db.WithContext(c).Find(&users).Error; err != nil {
		resputil.InternalError(c, err, "failed to list users")
		return
	}
	resputil.Success(c, users)
}
