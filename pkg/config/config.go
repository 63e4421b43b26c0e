package config

import (
	"os"
	"sync"

	"github.com/gin-gonic/gin"
	"sigs.k8s.io/yaml"

	"github.com/BUka228/ProgressQuestWeb/pkg/logutils"
)

type Config struct {
	// Port Settings
	Host        string `json:"host"`       // The domain name of the server.
	ServerAddr  string `json:"serverAddr"` // The address the server endpoint binds to.
	FrontendURL string `json:"frontendURL"`

	Auth struct {
		AccessTokenSecret  string `json:"accessTokenSecret"`
		RefreshTokenSecret string `json:"refreshTokenSecret"`
	} `json:"auth"`

	Postgres struct {
		Host     string `json:"host"`
		Port     string `json:"port"`
		DBName   string `json:"dbname"`
		User     string `json:"user"`
		Password string `json:"password"`
		SSLMode  string `json:"sslmode"`
		TimeZone string `json:"TimeZone"`
	} `json:"postgres"`

	SMTP struct {
		Host     string `json:"host"`
		Port     int    `json:"port"`
		User     string `json:"user"`
		Password string `json:"password"`
		From     string `json:"from"`
	} `json:"smtp"`

	// Robot webhook for team chat notifications. Used instead of SMTP
	// when Notify.Channel is "webhook".
	Notify struct {
		Channel        string `json:"channel"` // "smtp", "webhook" or "" (disabled)
		WebhookAddress string `json:"webhookAddress"`
	} `json:"notify"`

	Maintenance struct {
		MembershipSweepSpec string `json:"membershipSweepSpec"` // cron spec, e.g. "0 3 * * *"
		StreakSweepSpec     string `json:"streakSweepSpec"`
	} `json:"maintenance"`
}

var (
	once   sync.Once
	config *Config
)

func GetConfig() *Config {
	once.Do(func() {
		config = initConfig()
	})
	return config
}

func IsDebugMode() bool {
	return gin.Mode() == gin.DebugMode
}

// initConfig reads the configuration file. In debug mode the path can be
// overridden with PQ_DEBUG_CONFIG_PATH, otherwise the ConfigMap mount
// location is used.
func initConfig() *Config {
	config := &Config{}
	var configPath string
	if IsDebugMode() {
		if os.Getenv("PQ_DEBUG_CONFIG_PATH") != "" {
			configPath = os.Getenv("PQ_DEBUG_CONFIG_PATH")
		} else {
			configPath = "./etc/debug-config.yaml"
		}
	} else {
		configPath = "/etc/config/config.yaml"
	}
	logutils.Log.Info("config path: ", configPath)

	err := readConfig(configPath, config)
	if err != nil {
		logutils.Log.Error("init config: ", err)
		panic(err)
	}
	return config
}

func readConfig(filePath string, config *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, config)
}
