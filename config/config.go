package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB         int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB          int    `mapstructure:"REDIS_AUTH_DB"`
	RedisOTPDB           int    `mapstructure:"REDIS_OTP_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Clinic scheduling defaults. WorkingDays is the set of weekday names the
	// default slot templates are generated for; the front desk can still add
	// date-specific slots on any other day.
	WorkingDays []string `mapstructure:"WORKING_DAYS"`
	SlotMinutes int      `mapstructure:"SLOT_MINUTES"`

	// Payment / messaging providers.
	StripeKey       string `mapstructure:"STRIPE_KEY"`
	SendgridKey     string `mapstructure:"SENDGRID_KEY"`
	EmailSender     string `mapstructure:"EMAIL_SENDER"`
	WhatsAppAPIURL  string `mapstructure:"WHATSAPP_API_URL"`
	WhatsAppAPIKey  string `mapstructure:"WHATSAPP_API_KEY"`
	ReminderMinutes int    `mapstructure:"REMINDER_MINUTES"`
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
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_OTP_DB", 2)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 3)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "clinicbook")
	// Thursday and Sunday are clinic off-days; the default template generator
	// skips them. Override here if the clinic changes its week.
	viper.SetDefault("WORKING_DAYS", []string{"Monday", "Tuesday", "Wednesday", "Friday", "Saturday"})
	viper.SetDefault("SLOT_MINUTES", 15)
	viper.SetDefault("EMAIL_SENDER", "noreply@clinicbook.local")
	viper.SetDefault("REMINDER_MINUTES", 60)

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
