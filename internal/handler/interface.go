package handler

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BUka228/ProgressQuestWeb/pkg/alert"
	"github.com/BUka228/ProgressQuestWeb/pkg/listcache"
)

type Manager interface {
	GetName() string
	RegisterPublic(group *gin.RouterGroup)
	RegisterProtected(group *gin.RouterGroup)
	RegisterAdmin(group *gin.RouterGroup)
}

// RegisterConfig carries the shared collaborators handed to every manager
// constructor.
type RegisterConfig struct {
	DB      *gorm.DB
	Alerter alert.Interface
	Cache   *listcache.Cache
}

// Registers collects the manager constructors; each handler file appends
// its own constructor from init().
var Registers []func(conf *RegisterConfig) Manager
