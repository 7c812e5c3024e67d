package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppName           string `mapstructure:"APP_NAME"`
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB     int    `mapstructure:"REDIS_CACHE_DB"`
	RedisLockDB      int    `mapstructure:"REDIS_LOCK_DB"`
	RedisMailQueueDB int    `mapstructure:"REDIS_MAIL_QUEUE_DB"`

	// Google Sheets booking store. An empty range means the repository derives
	// it from its own column layout.
	SheetsSpreadsheetID   string `mapstructure:"SHEETS_SPREADSHEET_ID"`
	SheetsCredentialsFile string `mapstructure:"SHEETS_CREDENTIALS_FILE"`
	SheetsBookingRange    string `mapstructure:"SHEETS_BOOKING_RANGE"`

	// Razorpay payment gateway.
	RazorpayKeyID     string `mapstructure:"RAZORPAY_KEY_ID"`
	RazorpayKeySecret string `mapstructure:"RAZORPAY_KEY_SECRET"`

	// SMTP for confirmation emails.
	SMTPHost   string `mapstructure:"SMTP_HOST"`
	SMTPPort   int    `mapstructure:"SMTP_PORT"`
	SMTPUser   string `mapstructure:"SMTP_USER"`
	SMTPPass   string `mapstructure:"SMTP_PASS"`
	SMTPFrom   string `mapstructure:"SMTP_FROM"`
	AdminEmail string `mapstructure:"ADMIN_EMAIL"`

	// Booking policy.
	AvailabilityFailMode string `mapstructure:"AVAILABILITY_FAIL_MODE"` // "failOpen" or "failClosed"
	MinDepositAmount     int64  `mapstructure:"MIN_DEPOSIT_AMOUNT"`
	MaxDepositAmount     int64  `mapstructure:"MAX_DEPOSIT_AMOUNT"`
	BalanceDueDays       int    `mapstructure:"BALANCE_DUE_DAYS"`

	// Cancellation policy thresholds (days before event). Not exercised by the
	// booking engine itself; surfaced to clients for display.
	CancelFullRefundDays    int `mapstructure:"CANCEL_FULL_REFUND_DAYS"`
	CancelPartialRefundDays int `mapstructure:"CANCEL_PARTIAL_REFUND_DAYS"`
	CancelRefundPercentage  int `mapstructure:"CANCEL_REFUND_PERCENTAGE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_NAME", "VTCC Bookings")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_LOCK_DB", 1)
	viper.SetDefault("REDIS_MAIL_QUEUE_DB", 2)
	viper.SetDefault("AVAILABILITY_FAIL_MODE", "failOpen")
	viper.SetDefault("MIN_DEPOSIT_AMOUNT", 30)
	viper.SetDefault("MAX_DEPOSIT_AMOUNT", 1000000)
	viper.SetDefault("BALANCE_DUE_DAYS", 7)
	viper.SetDefault("CANCEL_FULL_REFUND_DAYS", 30)
	viper.SetDefault("CANCEL_PARTIAL_REFUND_DAYS", 15)
	viper.SetDefault("CANCEL_REFUND_PERCENTAGE", 50)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
