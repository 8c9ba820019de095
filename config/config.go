package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Store providers selectable via store.provider.
const (
	StoreProviderGoogle = "google"
	StoreProviderCalDAV = "caldav"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Calendar Copilot specifics
	Dify           DifyConfig
	Store          StoreConfig
	GoogleCalendar GoogleCalendarConfig
	CalDAV         CalDAVConfig
	Schedule       ScheduleConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DifyConfig struct {
	BaseURL string
	APIKey  string
	User    string
}

// StoreConfig selects which calendar backend the service talks to.
type StoreConfig struct {
	Provider string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
	TasksListID     string
}

type CalDAVConfig struct {
	URL          string
	Username     string
	Password     string
	CalendarPath string
	TodoPath     string
}

type ScheduleConfig struct {
	Timezone          string
	SuggestRatePerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Dify completion service
	cfg.Dify.BaseURL = viper.GetString("dify.base_url")
	cfg.Dify.APIKey = viper.GetString("dify.api_key")
	cfg.Dify.User = viper.GetString("dify.user")
	if difyKey := viper.GetString("dify_api_key"); difyKey != "" {
		cfg.Dify.APIKey = difyKey
	}

	// Store backend
	cfg.Store.Provider = viper.GetString("store.provider")

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.TasksListID = viper.GetString("google_calendar.tasks_list_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.CalDAV.URL = viper.GetString("caldav.url")
	cfg.CalDAV.Username = viper.GetString("caldav.username")
	cfg.CalDAV.Password = viper.GetString("caldav.password")
	cfg.CalDAV.CalendarPath = viper.GetString("caldav.calendar_path")
	cfg.CalDAV.TodoPath = viper.GetString("caldav.todo_path")
	if caldavPassword := viper.GetString("caldav_password"); caldavPassword != "" {
		cfg.CalDAV.Password = caldavPassword
	}

	cfg.Schedule.Timezone = viper.GetString("schedule.timezone")
	cfg.Schedule.SuggestRatePerMin = viper.GetInt("schedule.suggest_rate_per_min")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("dify.base_url", "https://api.dify.ai/v1")
	viper.SetDefault("dify.user", "calendar-copilot")
	viper.SetDefault("store.provider", StoreProviderGoogle)
	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.tasks_list_id", "@default")
	viper.SetDefault("schedule.timezone", "Local")
	viper.SetDefault("schedule.suggest_rate_per_min", 6)
}

func validate(cfg *Config) error {
	if cfg.Dify.APIKey == "" {
		return fmt.Errorf("dify.api_key is required")
	}

	switch cfg.Store.Provider {
	case StoreProviderGoogle:
		if cfg.GoogleCalendar.CredentialsPath == "" {
			return fmt.Errorf("google_calendar.credentials_path is required for the %s store", StoreProviderGoogle)
		}
	case StoreProviderCalDAV:
		if cfg.CalDAV.URL == "" {
			return fmt.Errorf("caldav.url is required for the %s store", StoreProviderCalDAV)
		}
	default:
		return fmt.Errorf("unknown store.provider %q (expected %s or %s)", cfg.Store.Provider, StoreProviderGoogle, StoreProviderCalDAV)
	}

	return nil
}
