package configs

import (
	"errors"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config struct
type Config struct {
	App             `mapstructure:"app"`
	Session         `mapstructure:"session"`
	Google          `mapstructure:"google"`
	OpenWeather     `mapstructure:"openweather"`
	Insight         `mapstructure:"insight"`
	Gemini          `mapstructure:"gemini"`
	LMStudio        `mapstructure:"lmstudio"`
	CredentialStore `mapstructure:"credential_store"`
	Postgres        `mapstructure:"postgres"`
}

// App struct
type App struct {
	Debug        bool   `mapstructure:"debug"`
	Env          string `mapstructure:"env"`
	Port         string `mapstructure:"port"`
	ClientOrigin string `mapstructure:"client_origin"`
}

// Session struct
// Timeout is in minutes, PurgeInterval in minutes. Zero values are replaced
// with defaults by the wiring layer.
type Session struct {
	Secret        string `mapstructure:"secret"`
	Timeout       int    `mapstructure:"timeout"`
	CookieSecure  bool   `mapstructure:"cookie_secure"`
	PurgeInterval int    `mapstructure:"purge_interval"`
}

// Google struct - OAuth client registered in Google Cloud Console
type Google struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RedirectURI  string `mapstructure:"redirect_uri"`
	AuthURL      string `mapstructure:"auth_url"`
	TokenURL     string `mapstructure:"token_url"`
	CalendarURL  string `mapstructure:"calendar_url"`
}

// OpenWeather struct
type OpenWeather struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"`
}

// Insight struct - selects the generative-text backend ("gemini" or "lmstudio")
type Insight struct {
	Provider string `mapstructure:"provider"`
}

// Gemini struct
type Gemini struct {
	APIKey     string `mapstructure:"api_key"`
	BaseURL    string `mapstructure:"base_url"`
	APIVersion string `mapstructure:"api_version"`
	Model      string `mapstructure:"model"`
	Timeout    int    `mapstructure:"timeout"`
}

// LMStudio struct
type LMStudio struct {
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
	Timeout int    `mapstructure:"timeout"`
}

// CredentialStore struct - Driver is one of "memory", "postgres", "badger"
type CredentialStore struct {
	Driver     string `mapstructure:"driver"`
	BadgerPath string `mapstructure:"badger_path"`
}

// Postgres struct
type Postgres struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DbName   string `mapstructure:"database"`
	SSLMode  bool   `mapstructure:"sslmode"`
}

var config Config

// InitViper func
func InitViper(path, env string) {
	getConfig(path, env)
}

// GetViper func
func GetViper() *Config {
	return &config
}

func setDefaults() {
	viper.SetDefault("app.port", "5000")
	viper.SetDefault("app.client_origin", "http://localhost:5173")
	viper.SetDefault("session.timeout", 1440)
	viper.SetDefault("session.purge_interval", 15)
	viper.SetDefault("openweather.base_url", "https://api.openweathermap.org")
	viper.SetDefault("insight.provider", "gemini")
	viper.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com/")
	viper.SetDefault("gemini.api_version", "v1beta")
	viper.SetDefault("gemini.model", "gemini-1.5-flash")
	viper.SetDefault("credential_store.driver", "memory")
}

func getConfig(path, env string) {
	viper.SetConfigName("config")
	viper.AddConfigPath(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	// PORT is what most hosting platforms inject
	_ = viper.BindEnv("app.port", "APP_PORT", "PORT")
	setDefaults()
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}
	if env != "" {
		viper.SetConfigName("config." + env)
		if err := viper.MergeInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				logrus.Warnf("Failed to merge config overlay for env %s: %v", env, err)
			}
		}
	}
	viper.WatchConfig()
	viper.OnConfigChange(func(e fsnotify.Event) {
		logrus.Infoln("Config file has changed: ", e.Name)
	})
	err = viper.Unmarshal(&config)
	if err != nil {
		logrus.Fatalln(err)
	}
	if config.App.Env == "" {
		config.App.Env = env
	}
}
