package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Twilio       Twilio       `mapstructure:",squash"`
	Groq         Groq         `mapstructure:",squash"`
	Spreadsheet  Spreadsheet  `mapstructure:",squash"`
	Redis        Redis        `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	ForecastSync ForecastSync `mapstructure:",squash"`

	Location *time.Location `mapstructure:"-"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Timezone string `mapstructure:"app_timezone"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Twilio struct {
	AccountSID        string `mapstructure:"twilio_account_sid"`
	AuthToken         string `mapstructure:"twilio_auth_token"`
	WhatsAppFrom      string `mapstructure:"twilio_whatsapp_from"`
	ValidateSignature bool   `mapstructure:"twilio_validate_signature"`
	// WebhookURL is the public URL Twilio posts to; the signature is computed over it.
	WebhookURL string `mapstructure:"twilio_webhook_url"`
}

type Groq struct {
	APIKey      string        `mapstructure:"groq_api_key"`
	BaseURL     string        `mapstructure:"groq_base_url"`
	Model       string        `mapstructure:"groq_model"`
	Temperature float64       `mapstructure:"llm_temperature"`
	Timeout     time.Duration `mapstructure:"llm_timeout"`
}

type Spreadsheet struct {
	CredentialsFile string        `mapstructure:"google_creds_file"`
	Name            string        `mapstructure:"spreadsheet_name"`
	ID              string        `mapstructure:"spreadsheet_id"`
	Timeout         time.Duration `mapstructure:"sheets_timeout"`
}

type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type ForecastSync struct {
	CronSchedule string        `mapstructure:"forecast_sync_cron"`
	Enabled      bool          `mapstructure:"forecast_sync_enabled"`
	CacheTTL     time.Duration `mapstructure:"forecast_cache_ttl"`
	NotifyTo     string        `mapstructure:"forecast_notify_to"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("APP_TIMEZONE", "Local")

	viper.SetDefault("TWILIO_ACCOUNT_SID", "")
	viper.SetDefault("TWILIO_AUTH_TOKEN", "")
	viper.SetDefault("TWILIO_WHATSAPP_FROM", "whatsapp:+14155238886") // sandbox sender
	viper.SetDefault("TWILIO_VALIDATE_SIGNATURE", false)
	viper.SetDefault("TWILIO_WEBHOOK_URL", "")

	viper.SetDefault("GROQ_API_KEY", "")
	viper.SetDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1")
	viper.SetDefault("GROQ_MODEL", "llama3-8b-8192")
	viper.SetDefault("LLM_TEMPERATURE", 0.3)
	viper.SetDefault("LLM_TIMEOUT", "30s")

	viper.SetDefault("GOOGLE_CREDS_FILE", "credentials.json")
	viper.SetDefault("SPREADSHEET_NAME", "Banarsi_Sari_Sales")
	viper.SetDefault("SPREADSHEET_ID", "")
	viper.SetDefault("SHEETS_TIMEOUT", "30s")

	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("AUTH_SECRET", "")

	viper.SetDefault("FORECAST_SYNC_CRON", "0 2 * * *") // every day at 02:00
	viper.SetDefault("FORECAST_SYNC_ENABLED", false)
	viper.SetDefault("FORECAST_CACHE_TTL", "26h")
	viper.SetDefault("FORECAST_NOTIFY_TO", "")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("viper could not read .env, relying on process environment: ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, errors.Wrap(err, "config: unmarshal")
	}

	config.Location, err = loadLocation(config.App.Timezone)
	if err != nil {
		return nil, err
	}

	return config, nil
}

// Validate reports the settings the webhook server cannot run without.
func (c *Config) Validate() error {
	var missing []string
	if c.Twilio.AccountSID == "" {
		missing = append(missing, "TWILIO_ACCOUNT_SID")
	}
	if c.Twilio.AuthToken == "" {
		missing = append(missing, "TWILIO_AUTH_TOKEN")
	}
	if c.Groq.APIKey == "" {
		missing = append(missing, "GROQ_API_KEY")
	}
	if c.Spreadsheet.CredentialsFile == "" {
		missing = append(missing, "GOOGLE_CREDS_FILE")
	}
	if c.Twilio.ValidateSignature && c.Twilio.WebhookURL == "" {
		missing = append(missing, "TWILIO_WEBHOOK_URL")
	}
	if len(missing) > 0 {
		return errors.Errorf("config: missing required settings: %s", strings.Join(missing, ", "))
	}
	return nil
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Wrapf(err, "config: invalid APP_TIMEZONE %q", name)
	}
	return loc, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not resolve working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env loaded from: ", location)
			return
		}
	}

	logrus.Debug("no .env file found, using process environment")
}
