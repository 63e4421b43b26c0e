package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BUka228/ProgressQuestWeb/dao/model"
	"github.com/BUka228/ProgressQuestWeb/internal/resputil"
	"github.com/BUka228/ProgressQuestWeb/internal/util"
	"github.com/BUka228/ProgressQuestWeb/pkg/logutils"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewAuthMgr)
}

type AuthMgr struct {
	name     string
	db       *gorm.DB
	tokenMgr *util.TokenManager
}

func NewAuthMgr(conf *RegisterConfig) Manager {
	return &AuthMgr{
		name:     "auth",
		db:       conf.DB,
		tokenMgr: util.GetTokenMgr(),
	}
}

func (mgr *AuthMgr) GetName() string { return mgr.name }

func (mgr *AuthMgr) RegisterPublic(g *gin.RouterGroup) {
	g.POST("/signup", mgr.Signup)
	g.POST("/login", mgr.Login)
	g.POST("/refresh", mgr.RefreshToken)
}

func (mgr *AuthMgr) RegisterProtected(_ *gin.RouterGroup) {}

func (mgr *AuthMgr) RegisterAdmin(_ *gin.RouterGroup) {}

type (
	SignupReq struct {
		Email       string `json:"email" binding:"required,email"`
		Password    string `json:"password" binding:"required,min=8"`
		DisplayName string `json:"displayName" binding:"required"`
	}

	LoginReq struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	LoginResp struct {
		AccessToken  string      `json:"accessToken"`
		RefreshToken string      `json:"refreshToken"`
		User         *model.User `json:"user"`
	}
)

// Signup godoc
//
//	@Summary		Register a new account
//	@Description	Creates the user together with a personal workspace and returns a token pair
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			data	body		SignupReq	true	"signup payload"
//	@Success		200		{object}	resputil.Response[LoginResp]	"token pair and profile"
//	@Failure		400		{object}	resputil.Response[any]	"invalid payload"
//	@Failure		409		{object}	resputil.Response[any]	"email already registered"
//	@Router			/auth/signup [post]
func (mgr *AuthMgr) Signup(c *gin.Context) {
	var req SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		resputil.InternalError(c, err, "failed to hash password")
		return
	}
	password := string(hashed)

	user := model.User{
		UID:         uuid.New().String(),
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Password:    &password,
		Role:        model.RoleMember,
		Level:       1,
		Preferences: datatypes.NewJSONType(model.DefaultUserPreferences()),
	}

	// The user and their personal workspace appear together or not at all.
	err = mgr.db.WithContext(c).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		workspace := model.Workspace{
			ID:             uuid.New().String(),
			Name:           "Personal",
			OwnerUID:       user.UID,
			IsPersonal:     true,
			ActiveApproach: model.ApproachDefault,
			Settings:       datatypes.NewJSONType(model.DefaultWorkspaceSettings()),
		}
		if err := tx.Create(&workspace).Error; err != nil {
			return err
		}
		member := model.WorkspaceMember{
			WorkspaceID: workspace.ID,
			UserID:      user.UID,
			Role:        model.RoleOwner,
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "workspace_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"role"}),
		}).Create(&member).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			resputil.Error(c, "Email already registered", resputil.EmailAlreadyUsed)
			return
		}
		resputil.InternalError(c, err, "failed to create user")
		return
	}

	mgr.respondWithTokens(c, &user)
}

// Login godoc
//
//	@Summary		Log in with email and password
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			data	body		LoginReq	true	"credentials"
//	@Success		200		{object}	resputil.Response[LoginResp]
//	@Failure		401		{object}	resputil.Response[any]	"wrong email or password"
//	@Router			/auth/login [post]
func (mgr *AuthMgr) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	l := logutils.Log.WithFields(logutils.Fields{"email": req.Email})

	var user model.User
	if err := mgr.db.WithContext(c).Where("email = ?", req.Email).First(&user).Error; err != nil {
		l.Error("login: ", err)
		resputil.Error(c, "Invalid credentials", resputil.InvalidCredentials)
		return
	}
	if user.Password == nil ||
		bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(req.Password)) != nil {
		l.Error("login: password mismatch")
		resputil.Error(c, "Invalid credentials", resputil.InvalidCredentials)
		return
	}

	mgr.respondWithTokens(c, &user)
}

func (mgr *AuthMgr) respondWithTokens(c *gin.Context, user *model.User) {
	jwtMessage := util.JWTMessage{
		UserID:       user.UID,
		Username:     user.DisplayName,
		RolePlatform: user.Role,
	}
	accessToken, refreshToken, err := mgr.tokenMgr.CreateTokens(&jwtMessage)
	if err != nil {
		resputil.HTTPError(c, http.StatusInternalServerError, err.Error(), resputil.NotSpecified)
		return
	}
	resputil.Success(c, LoginResp{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	})
}

type (
	RefreshReq struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}

	RefreshResp struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
)

// RefreshToken godoc
//
//	@Summary		Exchange a refresh token for a new token pair
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			data	body		RefreshReq	true	"refresh token"
//	@Success		200		{object}	resputil.Response[RefreshResp]
//	@Failure		401		{object}	resputil.Response[any]	"token invalid or expired"
//	@Router			/auth/refresh [post]
func (mgr *AuthMgr) RefreshToken(c *gin.Context) {
	var req RefreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	claims, err := mgr.tokenMgr.CheckToken(req.RefreshToken)
	if err != nil {
		resputil.Error(c, "Invalid refresh token", resputil.TokenInvalid)
		return
	}

	accessToken, refreshToken, err := mgr.tokenMgr.CreateTokens(&claims)
	if err != nil {
		resputil.HTTPError(c, http.StatusInternalServerError, err.Error(), resputil.NotSpecified)
		return
	}

	resputil.Success(c, RefreshResp{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}
