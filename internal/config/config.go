package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL    string `env:"DATABASE_URL"`
	HTTPPort       string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"file://migrations"`
	DBMaxConns     int    `env:"DB_MAX_CONNS" envDefault:"10"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Stats Config
	StatsTimeWindowMinutes int `env:"STATS_TIME_WINDOW_MINUTES" envDefault:"1440"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`

	// Deepgram Config
	DeepgramAPIKey   string `env:"DEEPGRAM_API_KEY"`
	DeepgramURL      string `env:"DEEPGRAM_URL" envDefault:"wss://api.deepgram.com/v1/listen"`
	DeepgramModel    string `env:"DEEPGRAM_MODEL" envDefault:"nova-2"`
	DeepgramLanguage string `env:"DEEPGRAM_LANGUAGE" envDefault:"en-US"`

	// Voice Config
	TranscriptKeepAlive time.Duration `env:"TRANSCRIPT_KEEPALIVE" envDefault:"1s"`
	VoiceAudioRPS       float64       `env:"VOICE_AUDIO_RPS" envDefault:"50"`
	VoiceAudioBurst     int           `env:"VOICE_AUDIO_BURST" envDefault:"100"`

	// Analysis Config - задержки пошагового показа ответов агентов
	AnalysisTypingDelay  time.Duration `env:"ANALYSIS_TYPING_DELAY" envDefault:"800ms"`
	AnalysisRevealDelay  time.Duration `env:"ANALYSIS_REVEAL_DELAY" envDefault:"1200ms"`
	AnalysisSummaryDelay time.Duration `env:"ANALYSIS_SUMMARY_DELAY" envDefault:"500ms"`

	// UI Config
	SystemName       string `env:"SYSTEM_NAME" envDefault:"ResponderAI"`
	MapProviderToken string `env:"MAP_PROVIDER_TOKEN"`

	// Log export Config
	LogExportBucket string `env:"LOG_EXPORT_BUCKET"`
	AWSRegion       string `env:"AWS_REGION" envDefault:"us-east-1"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		MigrationsPath:         getEnv("MIGRATIONS_PATH", "file://migrations"),
		DBMaxConns:             getEnvAsInt("DB_MAX_CONNS", 10),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		WebhookURL:             os.Getenv("WEBHOOK_URL"),
		WebhookSecret:          os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:         getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:      getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:       getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		StatsTimeWindowMinutes: getEnvAsInt("STATS_TIME_WINDOW_MINUTES", 1440),
		DeepgramAPIKey:         os.Getenv("DEEPGRAM_API_KEY"),
		DeepgramURL:            getEnv("DEEPGRAM_URL", "wss://api.deepgram.com/v1/listen"),
		DeepgramModel:          getEnv("DEEPGRAM_MODEL", "nova-2"),
		DeepgramLanguage:       getEnv("DEEPGRAM_LANGUAGE", "en-US"),
		TranscriptKeepAlive:    getEnvAsDuration("TRANSCRIPT_KEEPALIVE", time.Second),
		VoiceAudioRPS:          getEnvAsFloat("VOICE_AUDIO_RPS", 50),
		VoiceAudioBurst:        getEnvAsInt("VOICE_AUDIO_BURST", 100),
		AnalysisTypingDelay:    getEnvAsDuration("ANALYSIS_TYPING_DELAY", 800*time.Millisecond),
		AnalysisRevealDelay:    getEnvAsDuration("ANALYSIS_REVEAL_DELAY", 1200*time.Millisecond),
		AnalysisSummaryDelay:   getEnvAsDuration("ANALYSIS_SUMMARY_DELAY", 500*time.Millisecond),
		SystemName:             getEnv("SYSTEM_NAME", "ResponderAI"),
		MapProviderToken:       os.Getenv("MAP_PROVIDER_TOKEN"),
		LogExportBucket:        os.Getenv("LOG_EXPORT_BUCKET"),
		AWSRegion:              getEnv("AWS_REGION", "us-east-1"),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		for _, key := range strings.Split(apiKeysStr, ",") {
			if key = strings.TrimSpace(key); key != "" {
				cfg.APIKeys = append(cfg.APIKeys, key)
			}
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// VoiceEnabled - задан ли ключ Deepgram
func (c *Config) VoiceEnabled() bool {
	return c.DeepgramAPIKey != ""
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
