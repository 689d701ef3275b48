package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type R2 struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
	PublicURL  string
}

// Enabled reports whether media should be mirrored to the bucket.
func (r R2) Enabled() bool {
	return r.AccountID != "" && r.AccessKey != "" && r.SecretKey != "" && r.BucketName != ""
}

type Generation struct {
	GeminiAPIKey     string
	GeminiBaseURL    string
	OpenAIAPIKey     string
	OpenAIBaseURL    string
	GeminiTextModel  string
	GeminiImageModel string
	OpenAIImageModel string
	TextTimeout      time.Duration
	ImageTimeout     time.Duration
}

type Logging struct {
	Level  string
	Format string
}

type Config struct {
	Port                 string
	PostgresURI          string
	MigrationsPath       string
	RedisURI             string
	CORSOrigins          []string
	Generation           Generation
	R2                   R2
	AnalyticsCacheTTL    time.Duration
	OverdueSweepSchedule string
	Logging              Logging
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "3000")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com")
	v.SetDefault("OPENAI_BASE_URL", "https://api.openai.com")
	v.SetDefault("GEMINI_TEXT_MODEL", "gemini-2.5-flash")
	v.SetDefault("GEMINI_IMAGE_MODEL", "gemini-2.5-flash-image")
	v.SetDefault("OPENAI_IMAGE_MODEL", "gpt-image-1")
	v.SetDefault("TEXT_TIMEOUT", "60s")
	v.SetDefault("IMAGE_TIMEOUT", "90s")
	v.SetDefault("ANALYTICS_CACHE_TTL", "15s")
	v.SetDefault("OVERDUE_SWEEP_SCHEDULE", "@every 10m")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

// LoadConfig reads .env (if any) and the process environment.
func LoadConfig() *Config {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	shared := v.GetString("LLM_API_KEY")

	return &Config{
		Port:           v.GetString("PORT"),
		PostgresURI:    v.GetString("POSTGRES_URI"),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),
		RedisURI:       v.GetString("REDIS_URI"),
		CORSOrigins:    splitList(v.GetString("CORS_ORIGINS")),
		Generation: Generation{
			GeminiAPIKey:     firstNonEmpty(v.GetString("GEMINI_API_KEY"), shared),
			GeminiBaseURL:    v.GetString("GEMINI_BASE_URL"),
			OpenAIAPIKey:     firstNonEmpty(v.GetString("OPENAI_API_KEY"), shared),
			OpenAIBaseURL:    v.GetString("OPENAI_BASE_URL"),
			GeminiTextModel:  v.GetString("GEMINI_TEXT_MODEL"),
			GeminiImageModel: v.GetString("GEMINI_IMAGE_MODEL"),
			OpenAIImageModel: v.GetString("OPENAI_IMAGE_MODEL"),
			TextTimeout:      v.GetDuration("TEXT_TIMEOUT"),
			ImageTimeout:     v.GetDuration("IMAGE_TIMEOUT"),
		},
		R2: R2{
			AccountID:  v.GetString("R2_ACCOUNT_ID"),
			AccessKey:  v.GetString("R2_ACCESS_KEY"),
			SecretKey:  v.GetString("R2_SECRET_KEY"),
			BucketName: v.GetString("R2_BUCKET_NAME"),
			PublicURL:  strings.TrimRight(v.GetString("R2_PUBLIC_URL"), "/"),
		},
		AnalyticsCacheTTL:    v.GetDuration("ANALYTICS_CACHE_TTL"),
		OverdueSweepSchedule: v.GetString("OVERDUE_SWEEP_SCHEDULE"),
		Logging: Logging{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}
}

func (c *Config) Validate() error {
	if c.PostgresURI == "" {
		return errors.New("POSTGRES_URI is required")
	}
	if c.Generation.TextTimeout <= 0 || c.Generation.ImageTimeout <= 0 {
		return errors.New("generation timeouts must be positive")
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
