package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"billsense/internal/classifier"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	DB         DBConfig
	Redis      RedisConfig
	Log        LogConfig
	CORS       CORSConfig
	Admin      AdminConfig
	Metrics    MetricsConfig
	Classifier ClassifierConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings for the classification history.
type DBConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// RedisConfig holds result cache settings.
type RedisConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Address  string        `mapstructure:"address"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
	Prefix   string        `mapstructure:"prefix"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AdminConfig holds the credentials guarding the admin endpoints.
// An empty PasswordHash disables the admin routes.
type AdminConfig struct {
	PasswordHash string `mapstructure:"password_hash"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// ClassifierConfig holds request limits and the decision thresholds.
type ClassifierConfig struct {
	MaxTextBytes int                   `mapstructure:"max_text_bytes"`
	IncludeDebug bool                  `mapstructure:"include_debug"`
	LogTrace     bool                  `mapstructure:"log_trace"`
	Thresholds   classifier.Thresholds `mapstructure:"thresholds"`
}

// thresholdKeys maps each classifier.thresholds.* key to its setter.
var thresholdKeys = []struct {
	key string
	set func(*classifier.Thresholds, int)
	get func(*classifier.Thresholds) int
}{
	{"strong_weight", func(t *classifier.Thresholds, v int) { t.StrongWeight = v }, func(t *classifier.Thresholds) int { return t.StrongWeight }},
	{"medium_weight", func(t *classifier.Thresholds, v int) { t.MediumWeight = v }, func(t *classifier.Thresholds) int { return t.MediumWeight }},
	{"weak_weight", func(t *classifier.Thresholds, v int) { t.WeakWeight = v }, func(t *classifier.Thresholds) int { return t.WeakWeight }},
	{"required_category_bonus", func(t *classifier.Thresholds, v int) { t.RequiredCategoryBonus = v }, func(t *classifier.Thresholds) int { return t.RequiredCategoryBonus }},
	{"not_a_bill_bonus", func(t *classifier.Thresholds, v int) { t.NotABillBonus = v }, func(t *classifier.Thresholds) int { return t.NotABillBonus }},
	{"disqualification_negative_count", func(t *classifier.Thresholds, v int) { t.DisqualificationNegativeCount = v }, func(t *classifier.Thresholds) int { return t.DisqualificationNegativeCount }},
	{"required_categories_min", func(t *classifier.Thresholds, v int) { t.RequiredCategoriesMin = v }, func(t *classifier.Thresholds) int { return t.RequiredCategoriesMin }},
	{"medical_bill_min_score", func(t *classifier.Thresholds, v int) { t.MedicalBillMinScore = v }, func(t *classifier.Thresholds) int { return t.MedicalBillMinScore }},
	{"eob_min_score", func(t *classifier.Thresholds, v int) { t.EOBMinScore = v }, func(t *classifier.Thresholds) int { return t.EOBMinScore }},
	{"disqualified_confidence", func(t *classifier.Thresholds, v int) { t.DisqualifiedConfidence = v }, func(t *classifier.Thresholds) int { return t.DisqualifiedConfidence }},
	{"insufficient_confidence", func(t *classifier.Thresholds, v int) { t.InsufficientConfidence = v }, func(t *classifier.Thresholds) int { return t.InsufficientConfidence }},
	{"explicit_eob_confidence", func(t *classifier.Thresholds, v int) { t.ExplicitEOBConfidence = v }, func(t *classifier.Thresholds) int { return t.ExplicitEOBConfidence }},
	{"eob_base_confidence", func(t *classifier.Thresholds, v int) { t.EOBBaseConfidence = v }, func(t *classifier.Thresholds) int { return t.EOBBaseConfidence }},
	{"eob_max_confidence", func(t *classifier.Thresholds, v int) { t.EOBMaxConfidence = v }, func(t *classifier.Thresholds) int { return t.EOBMaxConfidence }},
	{"bill_base_confidence", func(t *classifier.Thresholds, v int) { t.BillBaseConfidence = v }, func(t *classifier.Thresholds) int { return t.BillBaseConfidence }},
	{"bill_max_confidence", func(t *classifier.Thresholds, v int) { t.BillMaxConfidence = v }, func(t *classifier.Thresholds) int { return t.BillMaxConfidence }},
	{"bill_score_divisor", func(t *classifier.Thresholds, v int) { t.BillScoreDivisor = v }, func(t *classifier.Thresholds) int { return t.BillScoreDivisor }},
	{"default_bill_confidence", func(t *classifier.Thresholds, v int) { t.DefaultBillConfidence = v }, func(t *classifier.Thresholds) int { return t.DefaultBillConfidence }},
}

// Load reads configuration from environment variables with the BILLSENSE_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BILLSENSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.enabled", false)
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "billsense")
	v.SetDefault("db.password", "billsense_secret")
	v.SetDefault("db.name", "billsense_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Redis defaults
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", "24h")
	v.SetDefault("redis.prefix", "billsense:classify:")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	v.SetDefault("admin.password_hash", "")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	// Classifier defaults
	v.SetDefault("classifier.max_text_bytes", 1<<20)
	v.SetDefault("classifier.include_debug", true)
	v.SetDefault("classifier.log_trace", true)
	defaults := classifier.DefaultThresholds()
	for _, k := range thresholdKeys {
		v.SetDefault("classifier.thresholds."+k.key, k.get(&defaults))
	}

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                "BILLSENSE_SERVER_PORT",
		"server.read_timeout":        "BILLSENSE_SERVER_READ_TIMEOUT",
		"server.write_timeout":       "BILLSENSE_SERVER_WRITE_TIMEOUT",
		"server.environment":         "BILLSENSE_SERVER_ENVIRONMENT",
		"db.enabled":                 "BILLSENSE_DB_ENABLED",
		"db.host":                    "BILLSENSE_DB_HOST",
		"db.port":                    "BILLSENSE_DB_PORT",
		"db.user":                    "BILLSENSE_DB_USER",
		"db.password":                "BILLSENSE_DB_PASSWORD",
		"db.name":                    "BILLSENSE_DB_NAME",
		"db.sslmode":                 "BILLSENSE_DB_SSLMODE",
		"db.max_open":                "BILLSENSE_DB_MAX_OPEN",
		"db.max_idle":                "BILLSENSE_DB_MAX_IDLE",
		"redis.enabled":              "BILLSENSE_REDIS_ENABLED",
		"redis.address":              "BILLSENSE_REDIS_ADDRESS",
		"redis.password":             "BILLSENSE_REDIS_PASSWORD",
		"redis.db":                   "BILLSENSE_REDIS_DB",
		"redis.ttl":                  "BILLSENSE_REDIS_TTL",
		"redis.prefix":               "BILLSENSE_REDIS_PREFIX",
		"log.level":                  "BILLSENSE_LOG_LEVEL",
		"log.format":                 "BILLSENSE_LOG_FORMAT",
		"cors.allowed_origins":       "BILLSENSE_CORS_ALLOWED_ORIGINS",
		"admin.password_hash":        "BILLSENSE_ADMIN_PASSWORD_HASH",
		"metrics.enabled":            "BILLSENSE_METRICS_ENABLED",
		"metrics.path":               "BILLSENSE_METRICS_PATH",
		"classifier.max_text_bytes":  "BILLSENSE_CLASSIFIER_MAX_TEXT_BYTES",
		"classifier.include_debug":   "BILLSENSE_CLASSIFIER_INCLUDE_DEBUG",
		"classifier.log_trace":       "BILLSENSE_CLASSIFIER_LOG_TRACE",
	}
	for _, k := range thresholdKeys {
		envBindings["classifier.thresholds."+k.key] = "BILLSENSE_CLASSIFIER_THRESHOLDS_" + strings.ToUpper(k.key)
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if BILLSENSE_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("BILLSENSE_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Enabled:  v.GetBool("db.enabled"),
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Redis = RedisConfig{
		Enabled:  v.GetBool("redis.enabled"),
		Address:  v.GetString("redis.address"),
		Password: v.GetString("redis.password"),
		DB:       v.GetInt("redis.db"),
		TTL:      v.GetDuration("redis.ttl"),
		Prefix:   v.GetString("redis.prefix"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}
	cfg.Admin = AdminConfig{
		PasswordHash: v.GetString("admin.password_hash"),
	}
	cfg.Metrics = MetricsConfig{
		Enabled: v.GetBool("metrics.enabled"),
		Path:    v.GetString("metrics.path"),
	}

	cfg.Classifier = ClassifierConfig{
		MaxTextBytes: v.GetInt("classifier.max_text_bytes"),
		IncludeDebug: v.GetBool("classifier.include_debug"),
		LogTrace:     v.GetBool("classifier.log_trace"),
	}
	for _, k := range thresholdKeys {
		k.set(&cfg.Classifier.Thresholds, v.GetInt("classifier.thresholds."+k.key))
	}
	if err := cfg.Classifier.Thresholds.Validate(len(classifier.RequiredCategoryKeys)); err != nil {
		return nil, fmt.Errorf("validating classifier thresholds: %w", err)
	}

	return cfg, nil
}
