package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	AllowedOrigins    string `mapstructure:"ALLOWED_ORIGINS"`

	// NepWork REST backend.
	APIBaseURL   string        `mapstructure:"API_BASE_URL"`
	APITimeout   time.Duration `mapstructure:"API_TIMEOUT"`
	DevEmailAuth bool          `mapstructure:"DEV_EMAIL_AUTH"`

	// Secret shared with the identity provider (NextAuth) for session tokens.
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// Read session claims without checking the signature. Development only.
	InsecureSkipJWTVerify bool `mapstructure:"INSECURE_SKIP_JWT_VERIFY"`

	// Role/token preference store: "redis" or "memory".
	PreferenceStore string        `mapstructure:"PREFERENCE_STORE"`
	PreferenceTTL   time.Duration `mapstructure:"PREFERENCE_TTL"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisPrefDB   int    `mapstructure:"REDIS_PREF_DB"`

	// Activity log: "mongo" or "memory".
	ActivityStore string `mapstructure:"ACTIVITY_STORE"`
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	DatabaseName  string `mapstructure:"DATABASE_NAME"`
}

var AppConfig Config

func LoadConfig() {
	// A local .env is optional; real environment variables win.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	viper.SetDefault("ALLOWED_ORIGINS", "*")
	viper.SetDefault("API_BASE_URL", "http://localhost:8000/api")
	viper.SetDefault("API_TIMEOUT", 15*time.Second)
	viper.SetDefault("DEV_EMAIL_AUTH", false)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("INSECURE_SKIP_JWT_VERIFY", false)
	viper.SetDefault("PREFERENCE_STORE", "redis")
	viper.SetDefault("PREFERENCE_TTL", 30*24*time.Hour)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_PREF_DB", 0)
	viper.SetDefault("ACTIVITY_STORE", "mongo")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "nepwork")
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// Origins splits ALLOWED_ORIGINS on commas.
func Origins() []string {
	var out []string
	for _, o := range strings.Split(AppConfig.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// Validate rejects settings that would let callers claim arbitrary
// identities in production.
func (c Config) Validate() error {
	if c.Env != "production" {
		return nil
	}
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required in production"))
	}
	if c.InsecureSkipJWTVerify {
		errs = append(errs, errors.New("INSECURE_SKIP_JWT_VERIFY must be off in production"))
	}
	if c.DevEmailAuth {
		errs = append(errs, errors.New("DEV_EMAIL_AUTH must be off in production"))
	}
	return errors.Join(errs...)
}
